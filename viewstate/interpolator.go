package viewstate

// Interpolator produces an intermediate ViewportProps between two snapshots
// for a progress fraction t in [0, 1]. Implementations must be deterministic
// and return start at t=0 and end at t=1 within floating tolerance.
type Interpolator interface {
	// Interpolate blends start and end at progress t.
	//
	// Parameters:
	//   - start: props at t=0
	//   - end: props at t=1
	//   - t: progress fraction, clamped by callers to [0, 1]
	//
	// Returns:
	//   - ViewportProps: the blended snapshot
	Interpolate(start, end ViewportProps, t float64) ViewportProps
}

// LinearInterpolator blends every numeric field independently. This is the
// default interpolator for animated transitions.
type LinearInterpolator struct{}

var _ Interpolator = LinearInterpolator{}

func (LinearInterpolator) Interpolate(start, end ViewportProps, t float64) ViewportProps {
	return ViewportProps{
		Longitude: lerp(start.Longitude, end.Longitude, t),
		Latitude:  lerp(start.Latitude, end.Latitude, t),
		Zoom:      lerp(start.Zoom, end.Zoom, t),
		Bearing:   lerp(start.Bearing, end.Bearing, t),
		Pitch:     lerp(start.Pitch, end.Pitch, t),
		Width:     lerp(start.Width, end.Width, t),
		Height:    lerp(start.Height, end.Height, t),
	}
}

// lerp linearly interpolates between a and b. Written so t=1 returns b
// exactly rather than accumulating a rounding residue.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
