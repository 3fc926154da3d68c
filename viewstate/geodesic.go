package viewstate

import (
	"github.com/golang/geo/s2"
)

// GeodesicInterpolator blends the map center along the great circle between
// the two endpoints, so animated transitions fly over the globe instead of
// cutting across the Mercator plane. Bearing follows the shortest angular
// arc; the remaining fields blend linearly.
//
// Only meaningful for the map variant: the planar variant's coordinates are
// not geographic.
type GeodesicInterpolator struct{}

var _ Interpolator = GeodesicInterpolator{}

func (GeodesicInterpolator) Interpolate(start, end ViewportProps, t float64) ViewportProps {
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(start.Latitude, start.Longitude))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(end.Latitude, end.Longitude))
	mid := s2.LatLngFromPoint(s2.Interpolate(t, a, b))

	return ViewportProps{
		Longitude: mid.Lng.Degrees(),
		Latitude:  mid.Lat.Degrees(),
		Zoom:      lerp(start.Zoom, end.Zoom, t),
		Bearing:   lerpBearing(start.Bearing, end.Bearing, t),
		Pitch:     lerp(start.Pitch, end.Pitch, t),
		Width:     lerp(start.Width, end.Width, t),
		Height:    lerp(start.Height, end.Height, t),
	}
}

// lerpBearing interpolates two bearings along the shortest angular arc and
// normalizes the result into (-180, 180].
func lerpBearing(a, b, t float64) float64 {
	return normalizeBearing(a + normalizeBearing(b-a)*t)
}
