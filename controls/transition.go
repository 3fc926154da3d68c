package controls

import (
	"time"

	"github.com/Carmen-Shannon/oxy-view/viewstate"
)

// InterruptionPolicy decides what happens to an in-flight animated
// transition when a new gesture or viewport change arrives.
type InterruptionPolicy int

const (
	// InterruptionBreak cancels the running transition at its last
	// interpolated value; the new gesture proceeds from there.
	InterruptionBreak InterruptionPolicy = iota

	// InterruptionIgnore drops incoming changes while a transition runs.
	InterruptionIgnore

	// InterruptionSnap jumps to the transition's end state before the new
	// change is applied.
	InterruptionSnap
)

// TransitionSpec describes whether and how a proposed viewport change is
// animated. A zero Duration means the change applies instantly and the
// remaining fields are ignored.
type TransitionSpec struct {
	// Duration is the animation length. 0 = apply instantly.
	Duration time.Duration

	// Easing remaps linear progress [0,1] to eased progress. nil = identity.
	Easing func(t float64) float64

	// Interpolator blends the start and end props. nil = linear.
	Interpolator viewstate.Interpolator

	// Interruption is the policy applied when a new change arrives while
	// this transition is running.
	Interruption InterruptionPolicy
}

// linearTransitionDuration is the length of the canonical animated spec
// used for double-tap zoom.
const linearTransitionDuration = 300 * time.Millisecond

// InstantTransition returns the canonical "no animation" spec.
//
// Returns:
//   - TransitionSpec: zero-duration spec for direct application
func InstantTransition() TransitionSpec {
	return TransitionSpec{}
}

// LinearTransition returns the canonical 300ms linearly-eased,
// linearly-interpolated spec with Break interruption.
//
// Returns:
//   - TransitionSpec: the canonical animated spec
func LinearTransition() TransitionSpec {
	return TransitionSpec{
		Duration:     linearTransitionDuration,
		Easing:       func(t float64) float64 { return t },
		Interpolator: viewstate.LinearInterpolator{},
		Interruption: InterruptionBreak,
	}
}

// transitionManager drives at most one animated transition. It holds no
// timer of its own: the owning controller feeds it the host's frame clock
// through tick, so transitions advance only when the host renders.
type transitionManager struct {
	active bool
	spec   TransitionSpec

	start viewstate.ViewportProps
	end   viewstate.ViewportProps

	// startedAt is stamped by the first tick after begin, keeping gesture
	// handling itself clock-free.
	startedAt time.Time
	started   bool
}

// begin arms the manager with a new transition. Any previous transition is
// discarded; the caller applies the interruption policy first.
func (tm *transitionManager) begin(spec TransitionSpec, start, end viewstate.ViewportProps) {
	tm.active = true
	tm.spec = spec
	tm.start = start
	tm.end = end
	tm.started = false
	tm.startedAt = time.Time{}
}

// cancel discards the active transition, leaving the viewport wherever the
// last tick put it.
func (tm *transitionManager) cancel() {
	tm.active = false
	tm.started = false
}

// tick advances the transition to the given frame time.
//
// Returns:
//   - viewstate.ViewportProps: the props for this frame
//   - bool: true when the transition completed on this tick
//   - bool: true when the manager was active and produced props
func (tm *transitionManager) tick(now time.Time) (viewstate.ViewportProps, bool, bool) {
	if !tm.active {
		return viewstate.ViewportProps{}, false, false
	}
	if !tm.started {
		tm.started = true
		tm.startedAt = now
	}

	t := float64(now.Sub(tm.startedAt)) / float64(tm.spec.Duration)
	if t >= 1 {
		tm.cancel()
		return tm.end, true, true
	}
	if t < 0 {
		t = 0
	}
	if tm.spec.Easing != nil {
		t = tm.spec.Easing(t)
	}

	interp := tm.spec.Interpolator
	if interp == nil {
		interp = viewstate.LinearInterpolator{}
	}
	return interp.Interpolate(tm.start, tm.end, t), false, true
}
