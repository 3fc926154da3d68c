package controls

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Gesture event names emitted by an EventSource. These are the only names a
// controller ever subscribes to.
const (
	EventWheel      = "wheel"
	EventPanStart   = "panstart"
	EventPanMove    = "panmove"
	EventPanEnd     = "panend"
	EventPinchStart = "pinchstart"
	EventPinchMove  = "pinchmove"
	EventPinchEnd   = "pinchend"
	EventDoubleTap  = "doubletap"
	EventKeyDown    = "keydown"
)

// allEvents lists every recognized gesture event name, in subscription
// order.
var allEvents = []string{
	EventWheel,
	EventPanStart,
	EventPanMove,
	EventPanEnd,
	EventPinchStart,
	EventPinchMove,
	EventPinchEnd,
	EventDoubleTap,
	EventKeyDown,
}

// SourceEvent carries the low-level input attributes of the event that
// produced a gesture: modifier keys, which button was involved, and the raw
// key code for keyboard events.
type SourceEvent struct {
	// FunctionKey is true when a modifier key (ctrl, alt, shift, or meta)
	// was held during the gesture. It switches pan to rotate, inverts
	// double-tap zoom, and switches arrow keys from pan to rotate.
	FunctionKey bool

	// SecondaryButton is true when the gesture was performed with the
	// secondary (right) pointer button. Treated like FunctionKey for drags.
	SecondaryButton bool

	// KeyCode is the virtual key code for keydown events, using the GLFW
	// key numbering from the common package.
	KeyCode uint32
}

// Event is one typed gesture event. DeltaX/DeltaY are cumulative pixel
// deltas from the start of the gesture sequence (zero for one-shot events
// except wheel, where DeltaY is the scroll amount: negative scrolls
// up/zooms in, matching pointer wheel conventions).
type Event struct {
	// Type is one of the Event* gesture names.
	Type string

	// OffsetCenter is the gesture position in viewport pixel coordinates.
	OffsetCenter mgl64.Vec2

	// DeltaX is the cumulative horizontal pixel delta of the gesture.
	DeltaX float64

	// DeltaY is the cumulative vertical pixel delta of the gesture, or the
	// scroll amount for wheel events.
	DeltaY float64

	// Scale is the pinch scale relative to pinch start (1 = unchanged).
	Scale float64

	// Rotation is the absolute pinch rotation in degrees as reported by the
	// gesture recognizer.
	Rotation float64

	// Src carries the low-level attributes of the originating input event.
	Src SourceEvent
}

// Handler consumes one gesture event.
type Handler func(Event)

// EventSource is the contract a gesture event provider implements. A
// controller registers at most one handler per event name; Off removes
// whatever handler is registered for that name.
type EventSource interface {
	// On registers the handler for the named gesture event.
	On(name string, handler Handler)

	// Off removes the handler registered for the named gesture event.
	Off(name string)
}
