// Package texture decodes and prepares images for upload as GL textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	// Formats accepted for globe textures.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Decode decodes image data, using the file name only to pick out TGA.
func Decode(name string, data []byte) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// ToRGBA converts img to a tightly packed RGBA image anchored at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == b.Dx()*4 {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Fit downscales img so neither side exceeds maxSize, keeping the aspect
// ratio. Images already within bounds, or maxSize <= 0, are returned as is.
func Fit(img *image.RGBA, maxSize int) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}

	nw, nh := maxSize, maxSize
	if w >= h {
		nh = max(1, h*maxSize/w)
	} else {
		nw = max(1, w*maxSize/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FlipVertical mirrors img top to bottom in place. GL expects the first row
// of texel data to be the bottom of the image.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	rowSize := img.Bounds().Dx() * 4
	tmp := make([]byte, rowSize)

	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		bottomOff := (h - 1 - y) * img.Stride
		bottom := img.Pix[bottomOff : bottomOff+rowSize]

		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Prepare turns decoded image data into an upload-ready RGBA image: the
// result is at most maxSize on each side and flipped for GL.
func Prepare(img image.Image, maxSize int) *image.RGBA {
	rgba := Fit(ToRGBA(img), maxSize)
	if rgba == img {
		// Never flip the caller's image in place.
		rgba = cloneRGBA(rgba)
	}
	FlipVertical(rgba)
	return rgba
}

func cloneRGBA(img *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(img.Rect)
	copy(dst.Pix, img.Pix)
	return dst
}
