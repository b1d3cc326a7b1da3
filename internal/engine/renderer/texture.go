package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/globe/internal/engine/scene"
)

// NewTexture creates an empty texture object. Drawing with it before an
// upload samples nothing useful but is valid.
func (r *Renderer) NewTexture() scene.TextureHandle {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	setFilters()
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures = append(r.textures, tex)
	return scene.TextureHandle(len(r.textures))
}

// UploadTexture replaces the contents of tex with img and rebuilds its
// mipmaps. Row 0 of img becomes the first row GL stores, so callers flip
// images beforehand.
func (r *Renderer) UploadTexture(tex scene.TextureHandle, img *image.RGBA) error {
	id := r.texture(tex)
	if id == 0 {
		return fmt.Errorf("texture %d: unknown handle", tex)
	}
	if img == nil {
		return errors.New("texture upload: nil image")
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return fmt.Errorf("texture upload: empty image %dx%d", w, h)
	}
	if img.Stride != w*4 {
		return fmt.Errorf("texture upload: stride %d does not match width %d", img.Stride, w)
	}

	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	setFilters()
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return checkError("texture upload")
}

func (r *Renderer) texture(h scene.TextureHandle) uint32 {
	i := int(h) - 1
	if i < 0 || i >= len(r.textures) {
		return 0
	}
	return r.textures[i]
}

func setFilters() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_NEAREST)
}
