package viewstate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Default zoom and pitch bounds for the map variant. Pitch is capped at 60
// degrees so the Mercator horizon never enters the viewport.
const (
	defaultMinZoom  = 0
	defaultMaxZoom  = 20
	defaultMinPitch = 0
	defaultMaxPitch = 60
)

// Keyboard step sizes shared by both variants: one zoom level per key press,
// a tenth of the viewport per pan step, and fixed angular steps for rotation.
const (
	keyboardZoomStep    = 1
	keyboardPanFraction = 0.1
	keyboardBearingStep = 15
	keyboardPitchStep   = 10
)

// Drag-to-tilt geometry constants: vertical drags shorter than the threshold
// do not change pitch, and downward drags are accelerated so the full tilt
// range is reachable without dragging off the window.
const (
	pitchMouseThreshold = 5
	pitchAccel          = 1.2
)

// mapState is the Web Mercator ViewportState variant. Longitude/latitude
// center, power-of-two zoom, compass bearing, and camera pitch. Values are
// immutable; every operation derives a new instance.
type mapState struct {
	props       ViewportProps
	interaction InteractionState

	minZoom, maxZoom   float64
	minPitch, maxPitch float64
}

var (
	_ ViewportState = mapState{}
	_ PitchRotor    = mapState{}
)

// NewMapStateFactory returns a StateFactory producing map-like viewport
// states. The factory captures the configured bounds so every per-event
// state is built with the same constraints.
//
// Parameters:
//   - options: functional options to configure zoom and pitch bounds
//
// Returns:
//   - StateFactory: factory the controller calls once per gesture event
func NewMapStateFactory(options ...MapStateOption) StateFactory {
	cfg := mapStateConfig{
		minZoom:  defaultMinZoom,
		maxZoom:  defaultMaxZoom,
		minPitch: defaultMinPitch,
		maxPitch: defaultMaxPitch,
	}
	for _, option := range options {
		option(&cfg)
	}

	return func(props ViewportProps, interaction InteractionState) ViewportState {
		s := mapState{
			props:       props,
			interaction: interaction,
			minZoom:     cfg.minZoom,
			maxZoom:     cfg.maxZoom,
			minPitch:    cfg.minPitch,
			maxPitch:    cfg.maxPitch,
		}
		s.props = s.clampProps(s.props)
		return s
	}
}

// --- internal helpers ---

// clampProps forces props back inside the variant's bounds.
func (s mapState) clampProps(p ViewportProps) ViewportProps {
	p.Zoom = mgl64.Clamp(p.Zoom, s.minZoom, s.maxZoom)
	p.Pitch = mgl64.Clamp(p.Pitch, s.minPitch, s.maxPitch)
	p.Latitude = mgl64.Clamp(p.Latitude, -maxMercatorLatitude, maxMercatorLatitude)
	p.Bearing = normalizeBearing(p.Bearing)
	return p
}

// with rebuilds the state around new props and interaction values.
func (s mapState) with(p ViewportProps, is InteractionState) mapState {
	next := s
	next.props = s.clampProps(p)
	next.interaction = is
	return next
}

// halfDim returns the screen center in pixels.
func (s mapState) halfDim() mgl64.Vec2 {
	return mgl64.Vec2{s.props.Width / 2, s.props.Height / 2}
}

// unprojectScreen returns the world longitude/latitude under a screen
// position at the current center and zoom.
func (s mapState) unprojectScreen(pos mgl64.Vec2) mgl64.Vec2 {
	center := lngLatToWorld(mgl64.Vec2{s.props.Longitude, s.props.Latitude}, s.props.Zoom)
	return worldToLngLat(center.Add(pos).Sub(s.halfDim()), s.props.Zoom)
}

// centerForAnchor computes the center longitude/latitude that places the
// world coordinate anchor exactly under the screen position pos at zoom.
func (s mapState) centerForAnchor(anchor, pos mgl64.Vec2, zoom float64) mgl64.Vec2 {
	world := lngLatToWorld(anchor, zoom)
	return worldToLngLat(world.Sub(pos).Add(s.halfDim()), zoom)
}

// --- pan ---

func (s mapState) PanStart(pos mgl64.Vec2) ViewportState {
	is := s.interaction
	is.IsDragging = true
	is.IsPanning = true
	is.anchors.panActive = true
	is.anchors.panWorld = s.unprojectScreen(pos)
	return s.with(s.props, is)
}

func (s mapState) Pan(pos mgl64.Vec2) ViewportState {
	if !s.interaction.anchors.panActive {
		return s
	}
	center := s.centerForAnchor(s.interaction.anchors.panWorld, pos, s.props.Zoom)
	p := s.props
	p.Longitude = center.X()
	p.Latitude = center.Y()
	return s.with(p, s.interaction)
}

func (s mapState) PanEnd() ViewportState {
	return s.with(s.props, s.interaction.clearGestures())
}

// --- rotate ---

func (s mapState) RotateStart(pos mgl64.Vec2) ViewportState {
	is := s.interaction
	is.IsDragging = true
	is.IsRotating = true
	is.anchors.rotateActive = true
	is.anchors.rotateStartBearing = s.props.Bearing
	is.anchors.rotateStartPitch = s.props.Pitch
	return s.with(s.props, is)
}

func (s mapState) Rotate(deltaScaleX, deltaScaleY float64) ViewportState {
	if !s.interaction.anchors.rotateActive {
		return s
	}
	startBearing := s.interaction.anchors.rotateStartBearing
	startPitch := s.interaction.anchors.rotateStartPitch

	p := s.props
	p.Bearing = normalizeBearing(startBearing + 180*deltaScaleX)
	// Positive deltas tilt toward the max pitch, negative toward the min,
	// scaled by the remaining range so a full-scale drag reaches the bound.
	switch {
	case deltaScaleY > 0:
		p.Pitch = startPitch + deltaScaleY*(s.maxPitch-startPitch)
	case deltaScaleY < 0:
		p.Pitch = startPitch + deltaScaleY*(startPitch-s.minPitch)
	default:
		p.Pitch = startPitch
	}
	return s.with(p, s.interaction)
}

func (s mapState) RotateEnd() ViewportState {
	return s.with(s.props, s.interaction.clearGestures())
}

// RotateScale implements the map-like drag-to-tilt geometry. Horizontal
// motion maps proportionally to bearing. Vertical motion below the start
// point accelerates toward full tilt, while motion above the start point
// scales by how far toward the top of the viewport the cursor has travelled.
func (s mapState) RotateScale(startPos, pos mgl64.Vec2, deltaX, deltaY float64) (deltaScaleX, deltaScaleY float64) {
	if s.props.Width <= 0 || s.props.Height <= 0 {
		return 0, 0
	}
	deltaScaleX = deltaX / s.props.Width

	startY := startPos.Y()
	if deltaY > 0 {
		if math.Abs(s.props.Height-startY) > pitchMouseThreshold {
			deltaScaleY = deltaY / (startY - s.props.Height) * pitchAccel
		}
	} else if deltaY < 0 && startY > pitchMouseThreshold {
		deltaScaleY = 1 - pos.Y()/startY
	}
	deltaScaleY = mgl64.Clamp(deltaScaleY, -1, 1)
	return deltaScaleX, deltaScaleY
}

// --- zoom ---

func (s mapState) ZoomStart(pos mgl64.Vec2) ViewportState {
	is := s.interaction
	is.IsZooming = true
	is.anchors.zoomActive = true
	is.anchors.zoomWorld = s.unprojectScreen(pos)
	is.anchors.zoomStart = s.props.Zoom
	return s.with(s.props, is)
}

func (s mapState) Zoom(pos mgl64.Vec2, scale float64) ViewportState {
	if scale <= 0 {
		return s
	}

	startZoom := s.props.Zoom
	anchor := s.interaction.anchors.zoomWorld
	if s.interaction.anchors.zoomActive {
		startZoom = s.interaction.anchors.zoomStart
	} else {
		// One-shot zoom (wheel): anchor freshly under the cursor.
		anchor = s.unprojectScreen(pos)
	}

	p := s.props
	p.Zoom = mgl64.Clamp(startZoom*scale, s.minZoom, s.maxZoom)
	center := s.centerForAnchor(anchor, pos, p.Zoom)
	p.Longitude = center.X()
	p.Latitude = center.Y()
	return s.with(p, s.interaction)
}

func (s mapState) ZoomEnd() ViewportState {
	return s.with(s.props, s.interaction.clearGestures())
}

// --- keyboard steps ---

// Keyboard zoom is anchored at the viewport center, so only the level moves.

func (s mapState) ZoomIn() ViewportState {
	p := s.props
	p.Zoom += keyboardZoomStep
	return s.with(p, s.interaction)
}

func (s mapState) ZoomOut() ViewportState {
	p := s.props
	p.Zoom -= keyboardZoomStep
	return s.with(p, s.interaction)
}

// panFromCenter performs a synthetic drag from the viewport center by the
// given pixel delta, leaving the gesture flags untouched.
func (s mapState) panFromCenter(delta mgl64.Vec2) ViewportState {
	center := s.halfDim()
	return s.PanStart(center).Pan(center.Add(delta)).PanEnd()
}

func (s mapState) MoveLeft() ViewportState {
	return s.panFromCenter(mgl64.Vec2{keyboardPanFraction * s.props.Width, 0})
}

func (s mapState) MoveRight() ViewportState {
	return s.panFromCenter(mgl64.Vec2{-keyboardPanFraction * s.props.Width, 0})
}

func (s mapState) MoveUp() ViewportState {
	return s.panFromCenter(mgl64.Vec2{0, keyboardPanFraction * s.props.Height})
}

func (s mapState) MoveDown() ViewportState {
	return s.panFromCenter(mgl64.Vec2{0, -keyboardPanFraction * s.props.Height})
}

func (s mapState) RotateLeft() ViewportState {
	p := s.props
	p.Bearing = normalizeBearing(p.Bearing - keyboardBearingStep)
	return s.with(p, s.interaction)
}

func (s mapState) RotateRight() ViewportState {
	p := s.props
	p.Bearing = normalizeBearing(p.Bearing + keyboardBearingStep)
	return s.with(p, s.interaction)
}

func (s mapState) RotateUp() ViewportState {
	p := s.props
	p.Pitch += keyboardPitchStep
	return s.with(p, s.interaction)
}

func (s mapState) RotateDown() ViewportState {
	p := s.props
	p.Pitch -= keyboardPitchStep
	return s.with(p, s.interaction)
}

// --- accessors ---

func (s mapState) ViewportProps() ViewportProps {
	return s.props
}

func (s mapState) InteractionState() InteractionState {
	return s.interaction
}
