package scene

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshHandle identifies mesh buffers already uploaded to the GPU.
type MeshHandle uint32

// TextureHandle identifies a texture object. It may be drawn with before
// any image data has been uploaded into it.
type TextureHandle uint32

// Drawable ties one uploaded mesh and texture to the transform that places it.
type Drawable struct {
	Name      string
	Mesh      MeshHandle
	Texture   TextureHandle
	Transform TransformFunc

	// Normals controls whether the mesh's normal buffer is bound when drawing.
	Normals bool
}

// DrawCall is everything the graphics backend needs for one object.
type DrawCall struct {
	Mesh      MeshHandle
	Texture   TextureHandle
	ModelView mgl32.Mat4
	Normals   bool
}

// Graphics is the subset of the GPU context the driver talks to.
type Graphics interface {
	SetViewport(width, height int)
	Clear()
	SetProjection(p mgl32.Mat4)
	Draw(call DrawCall)
	UploadTexture(tex TextureHandle, img *image.RGBA) error
}

// Surface reports the current drawable size of the display.
type Surface interface {
	DrawableSize() (width, height int)
}

// Projector supplies the combined view-projection matrix for an aspect ratio.
type Projector interface {
	ViewProjection(aspect float32) mgl32.Mat4
}
