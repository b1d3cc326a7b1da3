package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TransformFunc composes an object's model transform onto the stack top
// for the given animation state.
type TransformFunc func(s *Stack, a AnimationState)

// OrbitParams holds the fixed orbital parameters of the earth/moon pair.
// Rates multiply the accumulated angles; Tilt is in degrees.
type OrbitParams struct {
	// WobblePivot is the point the whole system sways around.
	WobblePivot mgl32.Vec3
	WobbleRate  float64

	EarthSpinRate float64

	// MoonOffset is the moon's position relative to earth's center. The
	// moon mesh is generated around this point.
	MoonOffset     mgl32.Vec3
	Tilt           float64
	RevolutionRate float64
	MoonSpinRate   float64
}

// DefaultOrbitParams returns the classic earth/moon setup.
func DefaultOrbitParams() OrbitParams {
	return OrbitParams{
		WobblePivot:    mgl32.Vec3{0, 0, 20},
		WobbleRate:     0.8,
		EarthSpinRate:  1,
		MoonOffset:     mgl32.Vec3{5, -3, 0},
		Tilt:           30,
		RevolutionRate: 2,
		MoonSpinRate:   1,
	}
}

// wobble sways the frame around WobblePivot. Both bodies share it so the
// moon stays attached to earth.
func (o OrbitParams) wobble(s *Stack, a AnimationState) {
	s.Translate(o.WobblePivot)
	s.RotateY(degrees(a.EarthAngle * o.WobbleRate))
	s.Translate(o.WobblePivot.Mul(-1))
}

// EarthTransform applies the wobble followed by earth's own spin.
func (o OrbitParams) EarthTransform(s *Stack, a AnimationState) {
	o.wobble(s, a)
	s.RotateY(degrees(a.EarthAngle * o.EarthSpinRate))
}

// MoonTransform applies the wobble, the revolution around earth in a plane
// tilted by Tilt, and the moon's spin about its own center.
func (o OrbitParams) MoonTransform(s *Stack, a AnimationState) {
	o.wobble(s, a)

	tilt := float32(o.Tilt)
	s.RotateZ(-tilt)
	s.RotateY(degrees(a.EarthAngle * o.RevolutionRate))
	s.RotateZ(tilt)

	s.Translate(o.MoonOffset)
	s.RotateY(degrees(a.MoonAngle * o.MoonSpinRate))
	s.Translate(o.MoonOffset.Mul(-1))
}

// ModelView composes fn onto base and returns the result. The stack is left
// at the depth it was found; a transform that pops what it did not push, or
// leaves extra matrices pushed, is reported and its leftovers discarded.
func ModelView(s *Stack, base mgl32.Mat4, fn TransformFunc, a AnimationState) (mgl32.Mat4, error) {
	depth := s.Depth()
	s.Push()
	s.Load(base)
	fn(s, a)
	m := s.Top()
	if err := s.Pop(); err != nil {
		return mgl32.Mat4{}, err
	}

	switch extra := s.Depth() - depth; {
	case extra < 0:
		return mgl32.Mat4{}, ErrStackUnderflow
	case extra > 0:
		for s.Depth() > depth {
			_ = s.Pop()
		}
		return mgl32.Mat4{}, fmt.Errorf("%w: %d left pushed", ErrStackLeak, extra)
	}
	return m, nil
}

// degrees reduces an unbounded angle before narrowing it to float32.
func degrees(a float64) float32 {
	return float32(math.Mod(a, 360))
}
