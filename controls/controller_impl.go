package controls

import (
	"errors"
	"math"
	"time"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/viewstate"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoVariant is returned by NewController when no viewport state variant
// factory is supplied.
var ErrNoVariant = errors.New("controls: no viewport state variant configured")

// wheelZoomAccel shapes the saturating wheel-delta-to-scale curve. At 0.01
// a typical 100px wheel notch lands around scale 1.46, and arbitrarily
// large deltas saturate at 2x per event.
const wheelZoomAccel = 0.01

// doubleTapZoomScale is the zoom factor applied by a double tap (inverted
// when a function key is held).
const doubleTapZoomScale = 2.0

// dragMode tracks which operation the current pan gesture sequence drives.
type dragMode int

const (
	dragModeNone dragMode = iota
	dragModePan
	dragModeRotate
)

// controller is the single implementation of Controller.
type controller struct {
	variant viewstate.StateFactory

	props       viewstate.ViewportProps
	interaction viewstate.InteractionState

	onViewportChange ViewportChangeHandler
	onStateChange    StateChangeHandler

	eventSource EventSource
	active      map[string]bool // currently subscribed event names

	// Interaction toggles.
	scrollZoom      bool
	dragPan         bool
	dragRotate      bool
	doubleClickZoom bool
	touchZoom       bool
	touchRotate     bool
	keyboard        bool

	// Animated transition configuration for double-tap zoom.
	transitionDuration time.Duration
	interpolator       viewstate.Interpolator

	transition transitionManager

	// Per-drag bookkeeping. The controller owns call discipline, so the
	// mode chosen at panstart routes every panmove until panend.
	mode        dragMode
	startPanPos mgl64.Vec2
}

var _ Controller = &controller{}

// NewController creates a controller for the given viewport state variant.
// All interaction toggles default to enabled except touch rotation; the
// double-tap transition defaults to the canonical 300ms linear spec.
//
// Parameters:
//   - variant: the ViewportState factory selecting the variant (required)
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the configured controller
//   - error: ErrNoVariant if variant is nil
func NewController(variant viewstate.StateFactory, options ...ControllerOption) (Controller, error) {
	if variant == nil {
		return nil, ErrNoVariant
	}

	c := &controller{
		variant:            variant,
		active:             make(map[string]bool),
		scrollZoom:         true,
		dragPan:            true,
		dragRotate:         true,
		doubleClickZoom:    true,
		touchZoom:          true,
		touchRotate:        false,
		keyboard:           true,
		transitionDuration: linearTransitionDuration,
		interpolator:       viewstate.LinearInterpolator{},
	}
	for _, option := range options {
		option(c)
	}
	c.updateSubscriptions()
	return c, nil
}

// --- Controller implementation ---

func (c *controller) HandleEvent(ev Event) bool {
	switch ev.Type {
	case EventWheel:
		return c.onWheel(ev)
	case EventPanStart:
		return c.onPanStart(ev)
	case EventPanMove:
		return c.onPanMove(ev)
	case EventPanEnd:
		return c.onPanEnd(ev)
	case EventPinchStart:
		return c.onPinchStart(ev)
	case EventPinchMove:
		return c.onPinchMove(ev)
	case EventPinchEnd:
		return c.onPinchEnd(ev)
	case EventDoubleTap:
		return c.onDoubleTap(ev)
	case EventKeyDown:
		return c.onKeyDown(ev)
	default:
		return false
	}
}

func (c *controller) Tick(now time.Time) bool {
	props, done, ok := c.transition.tick(now)
	if !ok {
		return false
	}

	old := c.props
	if !props.Equal(old) {
		c.props = props
		c.fireViewportChange(props, old, InstantTransition())
	}
	if done {
		c.setInTransition(false)
		return false
	}
	return true
}

func (c *controller) SetProps(props viewstate.ViewportProps) {
	c.props = props
}

func (c *controller) SetOptions(options ...ControllerOption) {
	for _, option := range options {
		option(c)
	}
	c.updateSubscriptions()
}

func (c *controller) ViewportProps() viewstate.ViewportProps {
	return c.props
}

func (c *controller) InteractionState() viewstate.InteractionState {
	return c.interaction
}

func (c *controller) Detach() {
	c.detachAll()
}

// --- gesture handlers ---

func (c *controller) onWheel(ev Event) bool {
	if !c.scrollZoom || !c.viewportValid() {
		return false
	}
	delta := ev.DeltaY
	if delta == 0 {
		return false
	}
	if !c.resolveTransition() {
		return false
	}

	// Saturating delta-to-scale curve: smooth near zero, bounded at 2x per
	// event no matter how large the delta. Negative delta (scroll up) zooms
	// in, positive zooms out.
	scale := 2 / (1 + math.Exp(-math.Abs(delta)*wheelZoomAccel))
	if delta > 0 {
		scale = 1 / scale
	}

	next := c.newState().Zoom(ev.OffsetCenter, scale)
	c.propose(next, InstantTransition())
	return true
}

func (c *controller) onPanStart(ev Event) bool {
	alternate := ev.Src.FunctionKey || ev.Src.SecondaryButton

	var mode dragMode
	switch {
	case alternate && c.dragRotate:
		mode = dragModeRotate
	case !alternate && c.dragPan:
		mode = dragModePan
	default:
		return false
	}
	if !c.resolveTransition() {
		return false
	}

	c.mode = mode
	c.startPanPos = ev.OffsetCenter

	var next viewstate.ViewportState
	if mode == dragModeRotate {
		next = c.newState().RotateStart(ev.OffsetCenter)
	} else {
		next = c.newState().PanStart(ev.OffsetCenter)
	}
	c.propose(next, InstantTransition())
	return true
}

func (c *controller) onPanMove(ev Event) bool {
	if !c.viewportValid() || c.mode == dragModeNone {
		return false
	}
	if !c.resolveTransition() {
		return false
	}

	if c.mode == dragModeRotate {
		state := c.newState()
		dsx, dsy := c.rotateScale(state, ev)
		c.propose(state.Rotate(dsx, dsy), InstantTransition())
		return true
	}
	c.propose(c.newState().Pan(ev.OffsetCenter), InstantTransition())
	return true
}

func (c *controller) onPanEnd(ev Event) bool {
	if c.mode == dragModeNone {
		return false
	}
	if !c.resolveTransition() {
		return false
	}

	mode := c.mode
	c.mode = dragModeNone

	var next viewstate.ViewportState
	if mode == dragModeRotate {
		next = c.newState().RotateEnd()
	} else {
		next = c.newState().PanEnd()
	}
	c.propose(next, InstantTransition())
	return true
}

func (c *controller) onPinchStart(ev Event) bool {
	if !c.touchZoom && !c.touchRotate {
		return false
	}
	if !c.resolveTransition() {
		return false
	}

	// The recognizer's absolute rotation at pinch start becomes the
	// reference for relative rotation during the pinch.
	is := c.interaction
	is.StartPinchRotation = ev.Rotation

	state := c.variant(c.props, is)
	if c.touchZoom {
		state = state.ZoomStart(ev.OffsetCenter)
	}
	if c.touchRotate {
		state = state.RotateStart(ev.OffsetCenter)
	}
	c.propose(state, InstantTransition())
	return true
}

func (c *controller) onPinchMove(ev Event) bool {
	if !c.viewportValid() {
		return false
	}
	zoom := c.touchZoom && ev.Scale > 0
	if !zoom && !c.touchRotate {
		return false
	}
	if !c.resolveTransition() {
		return false
	}

	state := c.newState()
	if zoom {
		state = state.Zoom(ev.OffsetCenter, ev.Scale)
	}
	if c.touchRotate {
		// Compensation for recognizers whose reported rotation is only
		// reliable relative to pinch start. Adapter policy, not geometry.
		deltaRotation := ev.Rotation - c.interaction.StartPinchRotation
		state = state.Rotate(-deltaRotation/180, 0)
	}
	c.propose(state, InstantTransition())
	return true
}

func (c *controller) onPinchEnd(ev Event) bool {
	if !c.touchZoom && !c.touchRotate {
		return false
	}
	if !c.resolveTransition() {
		return false
	}
	c.propose(c.newState().ZoomEnd(), InstantTransition())
	return true
}

func (c *controller) onDoubleTap(ev Event) bool {
	if !c.doubleClickZoom || !c.viewportValid() {
		return false
	}

	if !c.resolveTransition() {
		return false
	}

	scale := doubleTapZoomScale
	if ev.Src.FunctionKey {
		scale = 1 / scale
	}
	next := c.newState().Zoom(ev.OffsetCenter, scale)
	c.propose(next, c.animatedSpec())
	return true
}

func (c *controller) onKeyDown(ev Event) bool {
	if !c.keyboard || !c.viewportValid() {
		return false
	}

	var step func(viewstate.ViewportState) viewstate.ViewportState
	switch ev.Src.KeyCode {
	case common.KeyMinus, common.KeyKPSubtract:
		step = viewstate.ViewportState.ZoomOut
	case common.KeyEqual, common.KeyKPAdd:
		step = viewstate.ViewportState.ZoomIn
	case common.KeyLeft:
		if ev.Src.FunctionKey {
			step = viewstate.ViewportState.RotateLeft
		} else {
			step = viewstate.ViewportState.MoveLeft
		}
	case common.KeyRight:
		if ev.Src.FunctionKey {
			step = viewstate.ViewportState.RotateRight
		} else {
			step = viewstate.ViewportState.MoveRight
		}
	case common.KeyUp:
		if ev.Src.FunctionKey {
			step = viewstate.ViewportState.RotateUp
		} else {
			step = viewstate.ViewportState.MoveUp
		}
	case common.KeyDown:
		if ev.Src.FunctionKey {
			step = viewstate.ViewportState.RotateDown
		} else {
			step = viewstate.ViewportState.MoveDown
		}
	default:
		return false
	}
	if !c.resolveTransition() {
		return false
	}

	c.propose(step(c.newState()), InstantTransition())
	return true
}

// --- internal helpers ---

// newState builds the per-event ViewportState from the current props and
// interaction state.
func (c *controller) newState() viewstate.ViewportState {
	return c.variant(c.props, c.interaction)
}

// rotateScale converts a rotate-drag into dimensionless deltas, using the
// variant's tilt geometry when it provides one.
func (c *controller) rotateScale(state viewstate.ViewportState, ev Event) (float64, float64) {
	if rotor, ok := state.(viewstate.PitchRotor); ok {
		return rotor.RotateScale(c.startPanPos, ev.OffsetCenter, ev.DeltaX, ev.DeltaY)
	}
	return ev.DeltaX / c.props.Width, ev.DeltaY / c.props.Height
}

// viewportValid guards against division by a zero viewport dimension.
func (c *controller) viewportValid() bool {
	return c.props.Width > 0 && c.props.Height > 0
}

// animatedSpec builds the transition spec for double-tap zoom from the
// configured duration and interpolator.
func (c *controller) animatedSpec() TransitionSpec {
	if c.transitionDuration <= 0 {
		return InstantTransition()
	}
	return TransitionSpec{
		Duration:     c.transitionDuration,
		Easing:       func(t float64) float64 { return t },
		Interpolator: c.interpolator,
		Interruption: InterruptionBreak,
	}
}

// resolveTransition applies the active transition's interruption policy to
// an incoming gesture. Returns false when the gesture must be dropped.
// Handlers call it after their toggle and validity guards, so events that
// will not be handled never interrupt a running transition.
func (c *controller) resolveTransition() bool {
	if !c.transition.active {
		return true
	}

	switch c.transition.spec.Interruption {
	case InterruptionIgnore:
		return false
	case InterruptionSnap:
		old := c.props
		end := c.transition.end
		c.transition.cancel()
		c.setInTransition(false)
		if !end.Equal(old) {
			c.props = end
			c.fireViewportChange(end, old, InstantTransition())
		}
	default: // InterruptionBreak: continue from the last interpolated value.
		c.transition.cancel()
		c.setInTransition(false)
	}
	return true
}

// propose diffs the reduced state against the current one and fires the
// owner callbacks. Props carrying non-finite values are discarded without
// firing anything.
func (c *controller) propose(next viewstate.ViewportState, spec TransitionSpec) {
	newProps := next.ViewportProps()
	if !propsFinite(newProps) {
		return
	}

	if newIS := next.InteractionState(); newIS != c.interaction {
		c.interaction = newIS
		c.fireStateChange()
	}

	if newProps.Equal(c.props) {
		return
	}

	old := c.props
	if spec.Duration > 0 {
		// Propose the target with the animated spec; Tick delivers the
		// interpolated frames from old toward newProps.
		c.transition.begin(spec, old, newProps)
		c.setInTransition(true)
		c.fireViewportChange(newProps, old, spec)
		return
	}

	c.props = newProps
	c.fireViewportChange(newProps, old, InstantTransition())
}

func (c *controller) setInTransition(inTransition bool) {
	if c.interaction.InTransition == inTransition {
		return
	}
	c.interaction.InTransition = inTransition
	c.fireStateChange()
}

func (c *controller) fireViewportChange(newProps, oldProps viewstate.ViewportProps, spec TransitionSpec) {
	if c.onViewportChange != nil {
		c.onViewportChange(newProps, oldProps, spec)
	}
}

func (c *controller) fireStateChange() {
	if c.onStateChange != nil {
		c.onStateChange(c.interaction)
	}
}

// propsFinite reports whether every field is a finite number.
func propsFinite(p viewstate.ViewportProps) bool {
	for _, v := range []float64{p.Longitude, p.Latitude, p.Zoom, p.Bearing, p.Pitch, p.Width, p.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
