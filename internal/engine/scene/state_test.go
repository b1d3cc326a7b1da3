package scene

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAdvanceFirstFrameOnlyPrimes(t *testing.T) {
	a := AnimationState{EarthAngle: 10, MoonAngle: 180}

	if _, ok := a.LastFrame(); ok {
		t.Fatal("fresh state reports a previous frame")
	}

	a.Advance(epoch, 0.05)

	if a.EarthAngle != 10 || a.MoonAngle != 180 {
		t.Errorf("angles moved on first frame: earth=%v moon=%v", a.EarthAngle, a.MoonAngle)
	}
	if last, ok := a.LastFrame(); !ok || !last.Equal(epoch) {
		t.Errorf("LastFrame() = %v, %v; want %v, true", last, ok, epoch)
	}
}

func TestAdvanceOneSecond(t *testing.T) {
	var a AnimationState
	a.Advance(epoch, 0.05)
	a.Advance(epoch.Add(1000*time.Millisecond), 0.05)

	if a.EarthAngle != 50 {
		t.Errorf("EarthAngle = %v, want 50", a.EarthAngle)
	}
	if a.MoonAngle != 50 {
		t.Errorf("MoonAngle = %v, want 50", a.MoonAngle)
	}
}

func TestAdvanceIsLinear(t *testing.T) {
	steps := []time.Duration{
		16 * time.Millisecond,
		17 * time.Millisecond,
		250 * time.Microsecond,
		3 * time.Second,
		0,
	}

	a := AnimationState{EarthAngle: 3, MoonAngle: 180}
	now := epoch
	a.Advance(now, 0.05)

	for _, step := range steps {
		earth, moon := a.EarthAngle, a.MoonAngle
		now = now.Add(step)
		a.Advance(now, 0.05)

		elapsed := float64(step) / float64(time.Millisecond)
		if a.EarthAngle != earth+0.05*elapsed {
			t.Errorf("step %v: EarthAngle = %v, want %v", step, a.EarthAngle, earth+0.05*elapsed)
		}
		if a.MoonAngle != moon+0.05*elapsed {
			t.Errorf("step %v: MoonAngle = %v, want %v", step, a.MoonAngle, moon+0.05*elapsed)
		}
	}
}

func TestAdvanceDoesNotWrap(t *testing.T) {
	var a AnimationState
	a.Advance(epoch, 0.05)
	a.Advance(epoch.Add(time.Hour), 0.05)

	// One hour at 0.05 deg/ms is 180000 degrees.
	if a.EarthAngle != 180000 {
		t.Errorf("EarthAngle = %v, want 180000", a.EarthAngle)
	}
}

func TestNewSceneState(t *testing.T) {
	s := NewSceneState(0, 180)
	if s.Anim.EarthAngle != 0 || s.Anim.MoonAngle != 180 {
		t.Errorf("angles = %v/%v, want 0/180", s.Anim.EarthAngle, s.Anim.MoonAngle)
	}
	if s.Stack == nil || s.Stack.Depth() != 0 {
		t.Error("expected an empty matrix stack")
	}
}
