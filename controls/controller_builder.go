package controls

import (
	"time"

	"github.com/Carmen-Shannon/oxy-view/viewstate"
)

// ControllerOption is a functional option for configuring a Controller.
// Options are applied at construction and by SetOptions; subscriptions are
// re-diffed after every batch.
type ControllerOption func(*controller)

// WithViewportChangeHandler sets the handler receiving proposed viewport
// changes. With no handler registered the controller subscribes to nothing.
//
// Parameters:
//   - handler: callback for proposed viewport changes (nil to disable)
//
// Returns:
//   - ControllerOption: functional option to set the handler
func WithViewportChangeHandler(handler ViewportChangeHandler) ControllerOption {
	return func(c *controller) {
		c.onViewportChange = handler
	}
}

// WithStateChangeHandler sets the handler receiving interaction state
// changes.
//
// Parameters:
//   - handler: callback for interaction state changes (nil to disable)
//
// Returns:
//   - ControllerOption: functional option to set the handler
func WithStateChangeHandler(handler StateChangeHandler) ControllerOption {
	return func(c *controller) {
		c.onStateChange = handler
	}
}

// WithEventSource sets the gesture event source. Swapping sources detaches
// every active subscription from the old source first.
//
// Parameters:
//   - source: the event source to bind (nil to unbind)
//
// Returns:
//   - ControllerOption: functional option to set the event source
func WithEventSource(source EventSource) ControllerOption {
	return func(c *controller) {
		if c.eventSource == source {
			return
		}
		c.detachAll()
		c.eventSource = source
	}
}

// WithViewportProps sets the initial viewport props.
//
// Parameters:
//   - props: the starting viewport configuration
//
// Returns:
//   - ControllerOption: functional option to set the props
func WithViewportProps(props viewstate.ViewportProps) ControllerOption {
	return func(c *controller) {
		c.props = props
	}
}

// WithScrollZoom enables or disables wheel zoom.
//
// Parameters:
//   - enabled: true to zoom on wheel events
//
// Returns:
//   - ControllerOption: functional option to set the toggle
func WithScrollZoom(enabled bool) ControllerOption {
	return func(c *controller) {
		c.scrollZoom = enabled
	}
}

// WithDragPan enables or disables drag-to-pan.
//
// Parameters:
//   - enabled: true to translate on primary-button drags
//
// Returns:
//   - ControllerOption: functional option to set the toggle
func WithDragPan(enabled bool) ControllerOption {
	return func(c *controller) {
		c.dragPan = enabled
	}
}

// WithDragRotate enables or disables drag-to-rotate (function key or
// secondary button held during the drag).
//
// Parameters:
//   - enabled: true to rotate on modified drags
//
// Returns:
//   - ControllerOption: functional option to set the toggle
func WithDragRotate(enabled bool) ControllerOption {
	return func(c *controller) {
		c.dragRotate = enabled
	}
}

// WithDoubleClickZoom enables or disables animated double-tap zoom.
//
// Parameters:
//   - enabled: true to zoom on double taps
//
// Returns:
//   - ControllerOption: functional option to set the toggle
func WithDoubleClickZoom(enabled bool) ControllerOption {
	return func(c *controller) {
		c.doubleClickZoom = enabled
	}
}

// WithTouchZoom enables or disables pinch zoom.
//
// Parameters:
//   - enabled: true to zoom on pinch gestures
//
// Returns:
//   - ControllerOption: functional option to set the toggle
func WithTouchZoom(enabled bool) ControllerOption {
	return func(c *controller) {
		c.touchZoom = enabled
	}
}

// WithTouchRotate enables or disables pinch rotation. Disabled by default:
// many gesture recognizers report pinch rotation unreliably.
//
// Parameters:
//   - enabled: true to rotate on pinch gestures
//
// Returns:
//   - ControllerOption: functional option to set the toggle
func WithTouchRotate(enabled bool) ControllerOption {
	return func(c *controller) {
		c.touchRotate = enabled
	}
}

// WithKeyboard enables or disables keyboard navigation.
//
// Parameters:
//   - enabled: true to handle keydown events
//
// Returns:
//   - ControllerOption: functional option to set the toggle
func WithKeyboard(enabled bool) ControllerOption {
	return func(c *controller) {
		c.keyboard = enabled
	}
}

// WithTransitionDuration sets the duration of the animated double-tap
// transition. 0 makes double-tap zoom instant.
//
// Parameters:
//   - duration: animation length
//
// Returns:
//   - ControllerOption: functional option to set the duration
func WithTransitionDuration(duration time.Duration) ControllerOption {
	return func(c *controller) {
		if duration < 0 {
			duration = 0
		}
		c.transitionDuration = duration
	}
}

// WithInterpolator sets the interpolator used by animated transitions.
//
// Parameters:
//   - interpolator: the interpolator (nil restores the linear default)
//
// Returns:
//   - ControllerOption: functional option to set the interpolator
func WithInterpolator(interpolator viewstate.Interpolator) ControllerOption {
	return func(c *controller) {
		if interpolator == nil {
			interpolator = viewstate.LinearInterpolator{}
		}
		c.interpolator = interpolator
	}
}
