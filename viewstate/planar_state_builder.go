package viewstate

// planarStateConfig holds the bounds a planar state factory stamps onto
// every state it builds.
type planarStateConfig struct {
	minZoom, maxZoom float64
}

// PlanarStateOption is a functional option for configuring the planar
// variant's factory bounds.
type PlanarStateOption func(*planarStateConfig)

// WithPlanarZoomBounds sets the minimum and maximum zoom levels for the
// planar variant. Negative levels are valid: zoom -1 renders one world unit
// per half pixel.
//
// Parameters:
//   - min: lowest zoom level
//   - max: highest zoom level
//
// Returns:
//   - PlanarStateOption: functional option to set zoom bounds
func WithPlanarZoomBounds(min, max float64) PlanarStateOption {
	return func(cfg *planarStateConfig) {
		if max < min {
			max = min
		}
		cfg.minZoom = min
		cfg.maxZoom = max
	}
}
