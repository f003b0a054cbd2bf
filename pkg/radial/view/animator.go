package view

import "time"

// Rotation animation defaults. Speed adjusts in SpeedStep increments and
// is clamped to [0, MaxDegPerSec].
const (
	DefaultDegPerSec = 15.0
	SpeedStep        = 5.0
	MaxDegPerSec     = 360.0
)

// Animator advances a view's rotation over wall-clock time. Each tick sees
// the delta since its own immediately preceding tick, so rotation speed is
// independent of frame rate. The first tick after enabling only records
// its timestamp and does not jump.
type Animator struct {
	DegPerSec float64

	running bool
	last    time.Time
}

// NewAnimator creates a stopped animator at the default speed.
func NewAnimator() *Animator {
	return &Animator{DegPerSec: DefaultDegPerSec}
}

// Running reports whether the animation is enabled.
func (a *Animator) Running() bool { return a.running }

// Toggle flips the animation on or off and returns the new state.
// Toggling resets the tick baseline so a long pause never becomes a jump.
func (a *Animator) Toggle() bool {
	a.running = !a.running
	a.last = time.Time{}
	return a.running
}

// SpeedUp raises the rotation speed by one step, clamped to MaxDegPerSec.
func (a *Animator) SpeedUp() {
	a.DegPerSec = min(MaxDegPerSec, a.DegPerSec+SpeedStep)
}

// SpeedDown lowers the rotation speed by one step, clamped at zero.
func (a *Animator) SpeedDown() {
	a.DegPerSec = max(0, a.DegPerSec-SpeedStep)
}

// Advance rotates the view by the elapsed time since the previous tick.
// now must come from a monotonic clock source. Returns true if the view
// rotation changed.
func (a *Animator) Advance(now time.Time, v *View) bool {
	if !a.running {
		return false
	}
	if a.last.IsZero() {
		a.last = now
		return false
	}

	dt := now.Sub(a.last).Seconds()
	a.last = now
	if dt <= 0 || a.DegPerSec == 0 {
		return false
	}

	v.Rotate(a.DegPerSec * dt)
	return true
}
