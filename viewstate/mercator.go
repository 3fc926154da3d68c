package viewstate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// mercatorTileSize is the pixel size of the zoom-0 world tile.
	mercatorTileSize = 512

	// maxMercatorLatitude is the latitude at which the Web Mercator
	// projection becomes singular. Centers are clamped inside it.
	maxMercatorLatitude = 85.05113

	degreesToRadians = math.Pi / 180
	radiansToDegrees = 180 / math.Pi
)

// mercatorWorldSize returns the world size in pixels at the given zoom.
func mercatorWorldSize(zoom float64) float64 {
	return mercatorTileSize * math.Exp2(zoom)
}

// lngLatToWorld projects a longitude/latitude pair to world pixel
// coordinates at the given zoom. X grows east, Y grows south (screen
// convention), so screen and world offsets compose without sign flips.
func lngLatToWorld(lngLat mgl64.Vec2, zoom float64) mgl64.Vec2 {
	size := mercatorWorldSize(zoom)
	latRad := lngLat.Y() * degreesToRadians
	x := (lngLat.X() + 180) / 360 * size
	y := (1 - math.Log(math.Tan(math.Pi/4+latRad/2))/math.Pi) / 2 * size
	return mgl64.Vec2{x, y}
}

// worldToLngLat unprojects world pixel coordinates at the given zoom back to
// a longitude/latitude pair.
func worldToLngLat(world mgl64.Vec2, zoom float64) mgl64.Vec2 {
	size := mercatorWorldSize(zoom)
	lng := world.X()/size*360 - 180
	n := math.Pi * (1 - 2*world.Y()/size)
	lat := radiansToDegrees * math.Atan(math.Sinh(n))
	return mgl64.Vec2{lng, lat}
}

// normalizeBearing wraps a bearing in degrees into (-180, 180].
func normalizeBearing(bearing float64) float64 {
	b := math.Mod(bearing, 360)
	if b > 180 {
		b -= 360
	} else if b <= -180 {
		b += 360
	}
	return b
}
