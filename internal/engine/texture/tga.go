package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types understood by DecodeTGA.
const (
	tgaTypeUncompressed = 2
	tgaTypeRLE          = 10

	tgaHeaderSize = 18
)

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed or RLE true-color TGA image.
// TGA has no magic number, so it is selected by file extension rather than
// through image.RegisterFormat.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: header too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	r := &tgaReader{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		stride:      bpp / 8,
		topToBottom: topToBottom,
	}

	var err error
	if imageType == tgaTypeUncompressed {
		err = r.readRaw(width * height)
	} else {
		err = r.readRLE()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

// tgaReader walks BGR(A) pixel data and writes it into img in scan order.
type tgaReader struct {
	img         *image.RGBA
	src         []byte
	pos         int
	pixel       int
	width       int
	height      int
	stride      int
	topToBottom bool
}

func (r *tgaReader) next() (color.RGBA, error) {
	if r.pos+r.stride > len(r.src) {
		return color.RGBA{}, errTGATruncated
	}
	p := r.src[r.pos : r.pos+r.stride]
	r.pos += r.stride

	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.stride == 4 {
		c.A = p[3]
	}
	return c, nil
}

func (r *tgaReader) put(c color.RGBA) {
	x := r.pixel % r.width
	y := r.pixel / r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.pixel++
}

func (r *tgaReader) readRaw(count int) error {
	total := r.width * r.height
	for i := 0; i < count && r.pixel < total; i++ {
		c, err := r.next()
		if err != nil {
			return err
		}
		r.put(c)
	}
	return nil
}

func (r *tgaReader) readRLE() error {
	total := r.width * r.height
	for r.pixel < total {
		if r.pos >= len(r.src) {
			return errTGATruncated
		}
		packet := r.src[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 == 0 {
			if err := r.readRaw(count); err != nil {
				return err
			}
			continue
		}

		c, err := r.next()
		if err != nil {
			return err
		}
		for i := 0; i < count && r.pixel < total; i++ {
			r.put(c)
		}
	}
	return nil
}
