// Package camera provides the fixed viewer camera.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Fixed is a camera whose projection parameters and view never change
// during a session. Only the aspect ratio is supplied per frame.
type Fixed struct {
	FovY float32 // vertical field of view, degrees
	Near float32
	Far  float32

	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
}

// NewFixed creates a camera looking from eye towards center.
func NewFixed(fovY, near, far float32, eye, center, up mgl32.Vec3) *Fixed {
	return &Fixed{
		FovY:   fovY,
		Near:   near,
		Far:    far,
		Eye:    eye,
		Center: center,
		Up:     up,
	}
}

// Projection returns the perspective matrix for the given width/height ratio.
func (c *Fixed) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// View returns the look-at matrix.
func (c *Fixed) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

// ViewProjection returns Projection * View, the matrix uploaded as the
// shader's projection uniform. Per-object model-view matrices are applied
// after it.
func (c *Fixed) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}
