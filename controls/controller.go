package controls

import (
	"time"

	"github.com/Carmen-Shannon/oxy-view/viewstate"
)

// ViewportChangeHandler receives a proposed viewport change. spec describes
// whether the new props should be applied instantly (zero duration) or
// animated; for animated proposals the controller also delivers the
// interpolated frames through subsequent Tick calls, each with an instant
// spec, so owners may follow either the target or the frames.
type ViewportChangeHandler func(newProps, oldProps viewstate.ViewportProps, spec TransitionSpec)

// StateChangeHandler receives the interaction state whenever it changes.
type StateChangeHandler func(state viewstate.InteractionState)

// Controller binds a gesture event source to a viewport state variant. It
// owns the transient interaction state, reduces each gesture against a
// per-event ViewportState, and proposes resulting viewport changes to its
// owner. The owner remains the source of truth for the viewport props and
// pushes them back through SetProps.
//
// A controller is single-threaded by design: events, Tick, and SetOptions
// must all be called from one logical thread of control (the host's event
// loop). Event sources that receive input on other threads are responsible
// for funneling events through a serialized queue before dispatch.
type Controller interface {
	// HandleEvent reduces one gesture event against the current state.
	//
	// Parameters:
	//   - ev: the gesture event
	//
	// Returns:
	//   - bool: true if the event was handled, false for unknown gesture
	//     types, disabled interactions, or guarded invalid input
	HandleEvent(ev Event) bool

	// Tick advances any active animated transition to the given frame time,
	// firing the viewport change handler with interpolated props. Hosts call
	// it once per display frame.
	//
	// Parameters:
	//   - now: the host's frame timestamp
	//
	// Returns:
	//   - bool: true while a transition remains in flight
	Tick(now time.Time) bool

	// SetProps replaces the controller's view of the current viewport props.
	// Owners call this whenever their authoritative props change outside the
	// controller (e.g. a window resize).
	//
	// Parameters:
	//   - props: the authoritative viewport props
	SetProps(props viewstate.ViewportProps)

	// SetOptions re-applies configuration and re-diffs the event
	// subscriptions against the new desired set. This is the only way to
	// reconfigure a controller after construction.
	//
	// Parameters:
	//   - options: functional options to apply
	SetOptions(options ...ControllerOption)

	// ViewportProps returns the controller's current viewport props.
	//
	// Returns:
	//   - viewstate.ViewportProps: the current props
	ViewportProps() viewstate.ViewportProps

	// InteractionState returns the current transient interaction state.
	//
	// Returns:
	//   - viewstate.InteractionState: the current interaction state
	InteractionState() viewstate.InteractionState

	// Detach unsubscribes the controller from its event source. The
	// controller can be re-attached with SetOptions(WithEventSource(...)).
	Detach()
}
