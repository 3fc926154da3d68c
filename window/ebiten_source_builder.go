package window

import "time"

// EbitenSourceOption is a functional option for configuring an Ebitengine
// event source.
type EbitenSourceOption func(*ebitenSource)

// WithEbitenDoubleTapWindow sets the maximum interval between two clicks
// that still counts as a double tap.
//
// Parameters:
//   - window: maximum click interval
//
// Returns:
//   - EbitenSourceOption: option function to apply
func WithEbitenDoubleTapWindow(window time.Duration) EbitenSourceOption {
	return func(s *ebitenSource) {
		if window > 0 {
			s.doubleTapWindow = window
		}
	}
}

// WithEbitenDoubleTapSlop sets the maximum pixel distance between two
// clicks that still counts as a double tap.
//
// Parameters:
//   - slop: maximum distance in pixels
//
// Returns:
//   - EbitenSourceOption: option function to apply
func WithEbitenDoubleTapSlop(slop float64) EbitenSourceOption {
	return func(s *ebitenSource) {
		if slop > 0 {
			s.doubleTapSlop = slop
		}
	}
}

// WithEbitenWheelScale sets the pixel delta one wheel notch maps to.
//
// Parameters:
//   - scale: pixels per wheel notch
//
// Returns:
//   - EbitenSourceOption: option function to apply
func WithEbitenWheelScale(scale float64) EbitenSourceOption {
	return func(s *ebitenSource) {
		if scale > 0 {
			s.wheelScale = scale
		}
	}
}
