package viewstate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation bounds for the planar variant: bearing wraps freely, pitch (the
// rotation around the horizontal axis) covers a full hemisphere.
const (
	planarMinPitch = -90
	planarMaxPitch = 90
)

// planarState is the Cartesian ViewportState variant for non-geographic
// views (node graphs, schematics, plain 2.5D scenes). Longitude/Latitude
// carry world X/Y, with Y growing down to match screen coordinates. One
// world unit spans 2^zoom screen pixels.
type planarState struct {
	props       ViewportProps
	interaction InteractionState

	minZoom, maxZoom float64
}

var _ ViewportState = planarState{}

// NewPlanarStateFactory returns a StateFactory producing planar viewport
// states. The planar variant has no drag-to-tilt geometry, so controllers
// fall back to the proportional rotate mapping.
//
// Parameters:
//   - options: functional options to configure zoom bounds
//
// Returns:
//   - StateFactory: factory the controller calls once per gesture event
func NewPlanarStateFactory(options ...PlanarStateOption) StateFactory {
	cfg := planarStateConfig{
		minZoom: defaultMinZoom,
		maxZoom: defaultMaxZoom,
	}
	for _, option := range options {
		option(&cfg)
	}

	return func(props ViewportProps, interaction InteractionState) ViewportState {
		s := planarState{
			props:       props,
			interaction: interaction,
			minZoom:     cfg.minZoom,
			maxZoom:     cfg.maxZoom,
		}
		s.props = s.clampProps(s.props)
		return s
	}
}

// --- internal helpers ---

func (s planarState) clampProps(p ViewportProps) ViewportProps {
	p.Zoom = mgl64.Clamp(p.Zoom, s.minZoom, s.maxZoom)
	p.Pitch = mgl64.Clamp(p.Pitch, planarMinPitch, planarMaxPitch)
	p.Bearing = normalizeBearing(p.Bearing)
	return p
}

func (s planarState) with(p ViewportProps, is InteractionState) planarState {
	next := s
	next.props = s.clampProps(p)
	next.interaction = is
	return next
}

func (s planarState) halfDim() mgl64.Vec2 {
	return mgl64.Vec2{s.props.Width / 2, s.props.Height / 2}
}

// pixelsPerUnit returns the screen pixels spanned by one world unit.
func pixelsPerUnit(zoom float64) float64 {
	return math.Exp2(zoom)
}

// unprojectScreen returns the world coordinate under a screen position.
func (s planarState) unprojectScreen(pos mgl64.Vec2) mgl64.Vec2 {
	k := pixelsPerUnit(s.props.Zoom)
	offset := pos.Sub(s.halfDim()).Mul(1 / k)
	return mgl64.Vec2{s.props.Longitude, s.props.Latitude}.Add(offset)
}

// centerForAnchor computes the center that places anchor under pos at zoom.
func (s planarState) centerForAnchor(anchor, pos mgl64.Vec2, zoom float64) mgl64.Vec2 {
	k := pixelsPerUnit(zoom)
	return anchor.Sub(pos.Sub(s.halfDim()).Mul(1 / k))
}

// --- pan ---

func (s planarState) PanStart(pos mgl64.Vec2) ViewportState {
	is := s.interaction
	is.IsDragging = true
	is.IsPanning = true
	is.anchors.panActive = true
	is.anchors.panWorld = s.unprojectScreen(pos)
	return s.with(s.props, is)
}

func (s planarState) Pan(pos mgl64.Vec2) ViewportState {
	if !s.interaction.anchors.panActive {
		return s
	}
	center := s.centerForAnchor(s.interaction.anchors.panWorld, pos, s.props.Zoom)
	p := s.props
	p.Longitude = center.X()
	p.Latitude = center.Y()
	return s.with(p, s.interaction)
}

func (s planarState) PanEnd() ViewportState {
	return s.with(s.props, s.interaction.clearGestures())
}

// --- rotate ---

func (s planarState) RotateStart(pos mgl64.Vec2) ViewportState {
	is := s.interaction
	is.IsDragging = true
	is.IsRotating = true
	is.anchors.rotateActive = true
	is.anchors.rotateStartBearing = s.props.Bearing
	is.anchors.rotateStartPitch = s.props.Pitch
	return s.with(s.props, is)
}

func (s planarState) Rotate(deltaScaleX, deltaScaleY float64) ViewportState {
	if !s.interaction.anchors.rotateActive {
		return s
	}
	p := s.props
	p.Bearing = normalizeBearing(s.interaction.anchors.rotateStartBearing + 180*deltaScaleX)
	p.Pitch = s.interaction.anchors.rotateStartPitch + 90*deltaScaleY
	return s.with(p, s.interaction)
}

func (s planarState) RotateEnd() ViewportState {
	return s.with(s.props, s.interaction.clearGestures())
}

// --- zoom ---

func (s planarState) ZoomStart(pos mgl64.Vec2) ViewportState {
	is := s.interaction
	is.IsZooming = true
	is.anchors.zoomActive = true
	is.anchors.zoomWorld = s.unprojectScreen(pos)
	is.anchors.zoomStart = s.props.Zoom
	return s.with(s.props, is)
}

func (s planarState) Zoom(pos mgl64.Vec2, scale float64) ViewportState {
	if scale <= 0 {
		return s
	}

	startZoom := s.props.Zoom
	anchor := s.interaction.anchors.zoomWorld
	if s.interaction.anchors.zoomActive {
		startZoom = s.interaction.anchors.zoomStart
	} else {
		anchor = s.unprojectScreen(pos)
	}

	p := s.props
	p.Zoom = mgl64.Clamp(startZoom*scale, s.minZoom, s.maxZoom)
	center := s.centerForAnchor(anchor, pos, p.Zoom)
	p.Longitude = center.X()
	p.Latitude = center.Y()
	return s.with(p, s.interaction)
}

func (s planarState) ZoomEnd() ViewportState {
	return s.with(s.props, s.interaction.clearGestures())
}

// --- keyboard steps ---

func (s planarState) ZoomIn() ViewportState {
	p := s.props
	p.Zoom += keyboardZoomStep
	return s.with(p, s.interaction)
}

func (s planarState) ZoomOut() ViewportState {
	p := s.props
	p.Zoom -= keyboardZoomStep
	return s.with(p, s.interaction)
}

func (s planarState) panFromCenter(delta mgl64.Vec2) ViewportState {
	center := s.halfDim()
	return s.PanStart(center).Pan(center.Add(delta)).PanEnd()
}

func (s planarState) MoveLeft() ViewportState {
	return s.panFromCenter(mgl64.Vec2{keyboardPanFraction * s.props.Width, 0})
}

func (s planarState) MoveRight() ViewportState {
	return s.panFromCenter(mgl64.Vec2{-keyboardPanFraction * s.props.Width, 0})
}

func (s planarState) MoveUp() ViewportState {
	return s.panFromCenter(mgl64.Vec2{0, keyboardPanFraction * s.props.Height})
}

func (s planarState) MoveDown() ViewportState {
	return s.panFromCenter(mgl64.Vec2{0, -keyboardPanFraction * s.props.Height})
}

func (s planarState) RotateLeft() ViewportState {
	p := s.props
	p.Bearing = normalizeBearing(p.Bearing - keyboardBearingStep)
	return s.with(p, s.interaction)
}

func (s planarState) RotateRight() ViewportState {
	p := s.props
	p.Bearing = normalizeBearing(p.Bearing + keyboardBearingStep)
	return s.with(p, s.interaction)
}

func (s planarState) RotateUp() ViewportState {
	p := s.props
	p.Pitch += keyboardPitchStep
	return s.with(p, s.interaction)
}

func (s planarState) RotateDown() ViewportState {
	p := s.props
	p.Pitch -= keyboardPitchStep
	return s.with(p, s.interaction)
}

// --- accessors ---

func (s planarState) ViewportProps() ViewportProps {
	return s.props
}

func (s planarState) InteractionState() InteractionState {
	return s.interaction
}
