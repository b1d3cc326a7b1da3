package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// mgl32's ApproxEqualThreshold is relative and collapses to eps*eps when a
// component is zero, which float32 rotations never hit exactly.

func nearVec4(a, b mgl32.Vec4, tol float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tol {
			return false
		}
	}
	return true
}

func nearMat4(a, b mgl32.Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tol {
			return false
		}
	}
	return true
}
