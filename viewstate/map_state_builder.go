package viewstate

// mapStateConfig holds the bounds a map state factory stamps onto every
// state it builds.
type mapStateConfig struct {
	minZoom, maxZoom   float64
	minPitch, maxPitch float64
}

// MapStateOption is a functional option for configuring the map variant's
// factory bounds.
type MapStateOption func(*mapStateConfig)

// WithZoomBounds sets the minimum and maximum zoom levels.
//
// Parameters:
//   - min: lowest zoom level (floor, never below 0)
//   - max: highest zoom level
//
// Returns:
//   - MapStateOption: functional option to set zoom bounds
func WithZoomBounds(min, max float64) MapStateOption {
	return func(cfg *mapStateConfig) {
		if min < 0 {
			min = 0
		}
		if max < min {
			max = min
		}
		cfg.minZoom = min
		cfg.maxZoom = max
	}
}

// WithPitchBounds sets the minimum and maximum pitch in degrees.
//
// Parameters:
//   - min: lowest camera tilt in degrees
//   - max: highest camera tilt in degrees
//
// Returns:
//   - MapStateOption: functional option to set pitch bounds
func WithPitchBounds(min, max float64) MapStateOption {
	return func(cfg *mapStateConfig) {
		if max < min {
			max = min
		}
		cfg.minPitch = min
		cfg.maxPitch = max
	}
}
