package scene

import "time"

// AnimationState holds the two accumulated rotation angles in degrees.
// Angles are never wrapped; they are only consumed through trig functions.
type AnimationState struct {
	EarthAngle float64
	MoonAngle  float64

	last   time.Time
	primed bool
}

// Advance moves both angles forward by degPerMs for every millisecond
// elapsed since the previous call. The first call only records now.
func (a *AnimationState) Advance(now time.Time, degPerMs float64) {
	if a.primed {
		elapsed := float64(now.Sub(a.last)) / float64(time.Millisecond)
		a.MoonAngle += degPerMs * elapsed
		a.EarthAngle += degPerMs * elapsed
	}
	a.last = now
	a.primed = true
}

// LastFrame returns the timestamp recorded by the previous Advance and
// whether one has been recorded at all.
func (a *AnimationState) LastFrame() (time.Time, bool) {
	return a.last, a.primed
}

// SceneState is the mutable per-session state owned by the render driver.
type SceneState struct {
	Anim  AnimationState
	Stack *Stack
}

// NewSceneState creates a state with the given starting angles.
func NewSceneState(earthAngle, moonAngle float64) *SceneState {
	return &SceneState{
		Anim: AnimationState{
			EarthAngle: earthAngle,
			MoonAngle:  moonAngle,
		},
		Stack: NewStack(),
	}
}
