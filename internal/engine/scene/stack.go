package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
)

// ErrStackUnderflow is returned when Pop is called without a matching Push.
var ErrStackUnderflow = errors.New("matrix stack: pop without matching push")

// ErrStackLeak is returned when a transform pushes without a matching Pop.
var ErrStackLeak = errors.New("matrix stack: push without matching pop")

// Stack is a model-view matrix stack. Every transform right-multiplies the
// top matrix, so the most recently applied operation is the first one a
// vertex sees.
type Stack struct {
	ms *matstack.MatStack
}

// NewStack returns a stack holding a single identity matrix.
func NewStack() *Stack {
	return &Stack{ms: matstack.NewMatStack()}
}

// Top returns the current matrix.
func (s *Stack) Top() mgl32.Mat4 {
	return s.ms.Peek()
}

// Depth returns the number of saved matrices below the top.
func (s *Stack) Depth() int {
	return len(*s.ms) - 1
}

// Load replaces the current matrix.
func (s *Stack) Load(m mgl32.Mat4) {
	s.ms.Load(m)
}

// Push saves a copy of the current matrix.
func (s *Stack) Push() {
	s.ms.Push()
}

// Pop restores the most recently pushed matrix.
func (s *Stack) Pop() error {
	if s.Depth() == 0 {
		return ErrStackUnderflow
	}
	if err := s.ms.Pop(); err != nil {
		return fmt.Errorf("%w: %v", ErrStackUnderflow, err)
	}
	return nil
}

// Mul right-multiplies the current matrix by m.
func (s *Stack) Mul(m mgl32.Mat4) {
	s.ms.RightMul(m)
}

// Translate applies a translation by v.
func (s *Stack) Translate(v mgl32.Vec3) {
	s.ms.RightMul(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
}

// Rotate applies a rotation of deg degrees about axis.
func (s *Stack) Rotate(deg float32, axis mgl32.Vec3) {
	s.ms.RightMul(mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()))
}

// RotateY applies a rotation of deg degrees about the vertical axis.
func (s *Stack) RotateY(deg float32) {
	s.ms.RightMul(mgl32.HomogRotate3DY(mgl32.DegToRad(deg)))
}

// RotateZ applies a rotation of deg degrees about the Z axis.
func (s *Stack) RotateZ(deg float32) {
	s.ms.RightMul(mgl32.HomogRotate3DZ(mgl32.DegToRad(deg)))
}
