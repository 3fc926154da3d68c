package window

import "time"

// GLFWSourceOption is a functional option for configuring a GLFW event
// source.
type GLFWSourceOption func(*glfwSource)

// WithDoubleTapWindow sets the maximum interval between two clicks that
// still counts as a double tap.
//
// Parameters:
//   - window: maximum click interval
//
// Returns:
//   - GLFWSourceOption: option function to apply
func WithDoubleTapWindow(window time.Duration) GLFWSourceOption {
	return func(s *glfwSource) {
		if window > 0 {
			s.doubleTapWindow = window
		}
	}
}

// WithDoubleTapSlop sets the maximum pixel distance between two clicks that
// still counts as a double tap.
//
// Parameters:
//   - slop: maximum distance in pixels
//
// Returns:
//   - GLFWSourceOption: option function to apply
func WithDoubleTapSlop(slop float64) GLFWSourceOption {
	return func(s *glfwSource) {
		if slop > 0 {
			s.doubleTapSlop = slop
		}
	}
}

// WithWheelScale sets the pixel delta one wheel notch maps to.
//
// Parameters:
//   - scale: pixels per wheel notch
//
// Returns:
//   - GLFWSourceOption: option function to apply
func WithWheelScale(scale float64) GLFWSourceOption {
	return func(s *glfwSource) {
		if scale > 0 {
			s.wheelScale = scale
		}
	}
}
