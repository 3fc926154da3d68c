package viewstate

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ViewportProps is the externally visible part of a viewport configuration.
// It is plain data: the owner of the viewport holds the source of truth and
// the rendering layer consumes it as-is.
//
// The map-like variant interprets Longitude/Latitude as degrees on a Web
// Mercator projection and Bearing/Pitch as compass heading and camera tilt.
// The planar variant reuses the same fields as Cartesian world X/Y and
// rotation around the screen normal (Bearing) and horizontal axis (Pitch).
type ViewportProps struct {
	// Longitude is the horizontal center coordinate (degrees, or world X for
	// the planar variant).
	Longitude float64

	// Latitude is the vertical center coordinate (degrees, or world Y for
	// the planar variant).
	Latitude float64

	// Zoom is the power-of-two zoom level. Zoom 0 shows the whole world in
	// one 512px tile for the map variant; each +1 doubles the scale.
	Zoom float64

	// Bearing is the rotation around the screen normal in degrees,
	// normalized to (-180, 180].
	Bearing float64

	// Pitch is the camera tilt in degrees away from top-down.
	Pitch float64

	// Width is the viewport width in pixels.
	Width float64

	// Height is the viewport height in pixels.
	Height float64
}

// propsEqualEpsilon is the tolerance used for fieldwise ViewportProps
// comparison. Interaction deltas are well above this; float drift from
// project/unproject round trips is well below it.
const propsEqualEpsilon = 1e-9

// Equal reports whether two ViewportProps are fieldwise equal within a small
// floating point tolerance.
//
// Parameters:
//   - other: the props to compare against
//
// Returns:
//   - bool: true if every field matches within tolerance
func (p ViewportProps) Equal(other ViewportProps) bool {
	return mgl64.FloatEqualThreshold(p.Longitude, other.Longitude, propsEqualEpsilon) &&
		mgl64.FloatEqualThreshold(p.Latitude, other.Latitude, propsEqualEpsilon) &&
		mgl64.FloatEqualThreshold(p.Zoom, other.Zoom, propsEqualEpsilon) &&
		mgl64.FloatEqualThreshold(p.Bearing, other.Bearing, propsEqualEpsilon) &&
		mgl64.FloatEqualThreshold(p.Pitch, other.Pitch, propsEqualEpsilon) &&
		mgl64.FloatEqualThreshold(p.Width, other.Width, propsEqualEpsilon) &&
		mgl64.FloatEqualThreshold(p.Height, other.Height, propsEqualEpsilon)
}

// InteractionState is the transient, non-persisted half of a viewport state.
// The zero value means "idle". The controller owns the current value across
// events; gesture anchors captured by Start operations travel inside the
// unexported anchor block so a state can be rebuilt per event without any
// hidden long-lived object.
type InteractionState struct {
	// IsDragging is true while any pointer drag sequence is in flight.
	IsDragging bool

	// IsPanning is true while a drag is translating the viewport.
	IsPanning bool

	// IsRotating is true while a drag or pinch is rotating the viewport.
	IsRotating bool

	// IsZooming is true while a pinch zoom sequence is in flight.
	IsZooming bool

	// StartPinchRotation is the rotation reported by the gesture recognizer
	// at pinch start, used to derive relative rotation during the pinch.
	StartPinchRotation float64

	// InTransition is true while an animated transition is running.
	InTransition bool

	// anchors carries the world-space and numeric anchors captured by the
	// Start operations. Opaque outside this package.
	anchors anchorState
}

// anchorState holds per-gesture anchors. World coordinates are
// longitude/latitude for the map variant and Cartesian X/Y for the planar
// variant; the owning variant is the only reader.
type anchorState struct {
	panActive bool
	panWorld  mgl64.Vec2 // world coordinate pinned under the cursor

	zoomActive bool
	zoomWorld  mgl64.Vec2 // world coordinate pinned under the zoom anchor
	zoomStart  float64    // zoom level at ZoomStart

	rotateActive       bool
	rotateStartBearing float64
	rotateStartPitch   float64
}

// clearGestures resets every gesture flag and anchor, preserving only the
// transition flag. Called by the End operations.
func (is InteractionState) clearGestures() InteractionState {
	return InteractionState{InTransition: is.InTransition}
}

// ViewportState is the capability set every viewport variant implements.
// Every operation is a pure function of the receiver and its parameters:
// a new ViewportState is returned, the receiver is never mutated, and no
// operation reads the clock or any global.
//
// Call discipline is the caller's responsibility: a Start operation precedes
// any number of its continuation calls and is terminated by exactly one End.
// Zoom tolerates a missing ZoomStart by anchoring freshly (wheel events are
// one-shot), but Pan and Rotate continuations without a Start are no-ops.
type ViewportState interface {
	// PanStart pins the world coordinate under pos as the drag anchor.
	PanStart(pos mgl64.Vec2) ViewportState

	// Pan moves the viewport so the anchor pinned by PanStart stays under
	// pos.
	Pan(pos mgl64.Vec2) ViewportState

	// PanEnd terminates a pan sequence and resets the gesture flags.
	PanEnd() ViewportState

	// RotateStart records the bearing and pitch the rotation is relative to.
	RotateStart(pos mgl64.Vec2) ViewportState

	// Rotate applies dimensionless rotation deltas. deltaScaleX and
	// deltaScaleY are fractions of the viewport dimensions in [-1, 1];
	// a full-width drag maps to a half-turn of bearing and a full-height
	// drag maps to the remaining pitch range.
	Rotate(deltaScaleX, deltaScaleY float64) ViewportState

	// RotateEnd terminates a rotate sequence and resets the gesture flags.
	RotateEnd() ViewportState

	// ZoomStart pins the world coordinate under pos and the current zoom
	// level as the reference for subsequent Zoom calls.
	ZoomStart(pos mgl64.Vec2) ViewportState

	// Zoom multiplies the reference zoom level by scale (> 0), clamped to
	// the variant's bounds and re-centered so the world coordinate under
	// pos stays under pos. Without a prior ZoomStart the current state is
	// the reference.
	Zoom(pos mgl64.Vec2, scale float64) ViewportState

	// ZoomEnd terminates a zoom sequence and resets the gesture flags.
	ZoomEnd() ViewportState

	// ZoomIn zooms in by one level about the viewport center.
	ZoomIn() ViewportState

	// ZoomOut zooms out by one level about the viewport center.
	ZoomOut() ViewportState

	// MoveLeft shifts the view one keyboard pan step to the left.
	MoveLeft() ViewportState

	// MoveRight shifts the view one keyboard pan step to the right.
	MoveRight() ViewportState

	// MoveUp shifts the view one keyboard pan step up.
	MoveUp() ViewportState

	// MoveDown shifts the view one keyboard pan step down.
	MoveDown() ViewportState

	// RotateLeft turns the bearing one keyboard step counter-clockwise.
	RotateLeft() ViewportState

	// RotateRight turns the bearing one keyboard step clockwise.
	RotateRight() ViewportState

	// RotateUp tilts the pitch one keyboard step toward its maximum.
	RotateUp() ViewportState

	// RotateDown tilts the pitch one keyboard step toward its minimum.
	RotateDown() ViewportState

	// ViewportProps returns the persisted half of the state.
	ViewportProps() ViewportProps

	// InteractionState returns the transient half of the state.
	InteractionState() InteractionState
}

// PitchRotor is an optional capability for variants with map-like
// drag-to-tilt geometry. The controller type-asserts this interface on the
// active variant; variants that do not implement it get the plain
// proportional drag-to-rotate mapping instead.
type PitchRotor interface {
	// RotateScale converts a drag from startPos to pos (with cumulative
	// pixel deltas deltaX/deltaY) into the dimensionless deltaScaleX and
	// deltaScaleY consumed by Rotate.
	RotateScale(startPos, pos mgl64.Vec2, deltaX, deltaY float64) (deltaScaleX, deltaScaleY float64)
}

// StateFactory builds a fresh ViewportState for one gesture event from the
// current props and interaction state. Variants are selected by passing
// their factory to the controller.
type StateFactory func(props ViewportProps, interaction InteractionState) ViewportState
