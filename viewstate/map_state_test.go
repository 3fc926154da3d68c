package viewstate

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testMapProps() ViewportProps {
	return ViewportProps{
		Longitude: -122.4,
		Latitude:  37.7,
		Zoom:      11,
		Bearing:   0,
		Pitch:     0,
		Width:     800,
		Height:    600,
	}
}

func newTestMapState(p ViewportProps) mapState {
	return NewMapStateFactory()(p, InteractionState{}).(mapState)
}

// --- construction ---

func TestMapStateClampsPropsOnBuild(t *testing.T) {
	p := testMapProps()
	p.Latitude = 90
	p.Pitch = 75
	p.Zoom = 35
	p.Bearing = 270

	got := newTestMapState(p).ViewportProps()
	if !approxEqual(got.Latitude, maxMercatorLatitude, tolerance) {
		t.Errorf("latitude = %v, want clamped to %v", got.Latitude, maxMercatorLatitude)
	}
	if !approxEqual(got.Pitch, defaultMaxPitch, tolerance) {
		t.Errorf("pitch = %v, want clamped to %v", got.Pitch, float64(defaultMaxPitch))
	}
	if !approxEqual(got.Zoom, defaultMaxZoom, tolerance) {
		t.Errorf("zoom = %v, want clamped to %v", got.Zoom, float64(defaultMaxZoom))
	}
	if !approxEqual(got.Bearing, -90, tolerance) {
		t.Errorf("bearing = %v, want normalized to -90", got.Bearing)
	}
}

// --- pan ---

func TestMapStatePanKeepsAnchorUnderCursor(t *testing.T) {
	s := newTestMapState(testMapProps())
	start := mgl64.Vec2{200, 150}
	anchor := s.unprojectScreen(start)

	for _, target := range []mgl64.Vec2{{250, 180}, {400, 300}, {90, 500}} {
		moved := s.PanStart(start).Pan(target).(mapState)
		under := moved.unprojectScreen(target)
		if !approxEqual(under.X(), anchor.X(), 1e-6) || !approxEqual(under.Y(), anchor.Y(), 1e-6) {
			t.Errorf("pan to %v: anchor drifted from (%v, %v) to (%v, %v)",
				target, anchor.X(), anchor.Y(), under.X(), under.Y())
		}
	}
}

func TestMapStatePanWithoutStartIsNoop(t *testing.T) {
	s := newTestMapState(testMapProps())
	got := s.Pan(mgl64.Vec2{400, 300}).ViewportProps()
	if !got.Equal(s.ViewportProps()) {
		t.Errorf("pan without start changed props: %+v", got)
	}
}

func TestMapStatePanSequenceFlags(t *testing.T) {
	s := newTestMapState(testMapProps())

	started := s.PanStart(mgl64.Vec2{100, 100})
	is := started.InteractionState()
	if !is.IsDragging || !is.IsPanning {
		t.Errorf("after PanStart: IsDragging=%v IsPanning=%v, want true/true", is.IsDragging, is.IsPanning)
	}

	ended := started.Pan(mgl64.Vec2{150, 120}).PanEnd()
	is = ended.InteractionState()
	if is.IsDragging || is.IsPanning {
		t.Errorf("after PanEnd: IsDragging=%v IsPanning=%v, want false/false", is.IsDragging, is.IsPanning)
	}
}

// --- rotate ---

func TestMapStateRotateBearing(t *testing.T) {
	s := newTestMapState(testMapProps())
	got := s.RotateStart(mgl64.Vec2{400, 300}).Rotate(0.5, 0).ViewportProps()
	if !approxEqual(got.Bearing, 90, tolerance) {
		t.Errorf("bearing = %v, want 90", got.Bearing)
	}
}

func TestMapStateRotateBearingNormalizes(t *testing.T) {
	p := testMapProps()
	p.Bearing = 150
	s := newTestMapState(p)
	got := s.RotateStart(mgl64.Vec2{400, 300}).Rotate(0.5, 0).ViewportProps()
	if !approxEqual(got.Bearing, -120, tolerance) {
		t.Errorf("bearing = %v, want -120 (150 + 90 wrapped)", got.Bearing)
	}
}

func TestMapStatePitchClamped(t *testing.T) {
	p := testMapProps()
	p.Pitch = 30
	s := newTestMapState(p)
	start := s.RotateStart(mgl64.Vec2{400, 300})

	// Arbitrarily large deltas stay inside [minPitch, maxPitch].
	for _, dsy := range []float64{5, 100, 1e9} {
		got := start.Rotate(0, dsy).ViewportProps()
		if got.Pitch < defaultMinPitch-tolerance || got.Pitch > defaultMaxPitch+tolerance {
			t.Errorf("dsy=%v: pitch %v outside [0, 60]", dsy, got.Pitch)
		}
	}
	for _, dsy := range []float64{-5, -100, -1e9} {
		got := start.Rotate(0, dsy).ViewportProps()
		if got.Pitch < defaultMinPitch-tolerance || got.Pitch > defaultMaxPitch+tolerance {
			t.Errorf("dsy=%v: pitch %v outside [0, 60]", dsy, got.Pitch)
		}
	}
}

func TestMapStateRotateScalesTowardBounds(t *testing.T) {
	p := testMapProps()
	p.Pitch = 30
	s := newTestMapState(p)
	start := s.RotateStart(mgl64.Vec2{400, 300})

	// Full-scale deltas land exactly on the bounds.
	if got := start.Rotate(0, 1).ViewportProps(); !approxEqual(got.Pitch, defaultMaxPitch, tolerance) {
		t.Errorf("dsy=1: pitch = %v, want %v", got.Pitch, float64(defaultMaxPitch))
	}
	if got := start.Rotate(0, -1).ViewportProps(); !approxEqual(got.Pitch, defaultMinPitch, tolerance) {
		t.Errorf("dsy=-1: pitch = %v, want %v", got.Pitch, float64(defaultMinPitch))
	}
	// Half-scale covers half the remaining range.
	if got := start.Rotate(0, 0.5).ViewportProps(); !approxEqual(got.Pitch, 45, tolerance) {
		t.Errorf("dsy=0.5: pitch = %v, want 45", got.Pitch)
	}
}

func TestMapStateRotateScaleGeometry(t *testing.T) {
	s := newTestMapState(testMapProps())

	// Dragging down from mid-viewport: deltaY / (startY - height) * accel.
	dsx, dsy := s.RotateScale(mgl64.Vec2{400, 300}, mgl64.Vec2{400, 400}, 0, 100)
	if !approxEqual(dsx, 0, tolerance) {
		t.Errorf("dsx = %v, want 0", dsx)
	}
	if !approxEqual(dsy, 100.0/(300-600)*pitchAccel, tolerance) {
		t.Errorf("drag down: dsy = %v, want %v", dsy, 100.0/(300-600)*pitchAccel)
	}

	// Dragging up above the threshold: 1 - centerY/startY.
	_, dsy = s.RotateScale(mgl64.Vec2{400, 300}, mgl64.Vec2{400, 200}, 0, -100)
	if !approxEqual(dsy, 1-200.0/300, tolerance) {
		t.Errorf("drag up: dsy = %v, want %v", dsy, 1-200.0/300)
	}

	// Horizontal motion is proportional to width.
	dsx, _ = s.RotateScale(mgl64.Vec2{400, 300}, mgl64.Vec2{600, 300}, 200, 0)
	if !approxEqual(dsx, 0.25, tolerance) {
		t.Errorf("dsx = %v, want 0.25", dsx)
	}
}

func TestMapStateRotateScaleClamped(t *testing.T) {
	s := newTestMapState(testMapProps())
	_, dsy := s.RotateScale(mgl64.Vec2{400, 580}, mgl64.Vec2{400, 5000}, 0, 4420)
	if dsy < -1-tolerance || dsy > 1+tolerance {
		t.Errorf("dsy = %v, want clamped to [-1, 1]", dsy)
	}
}

// --- zoom ---

func TestMapStateZoomAroundCursor(t *testing.T) {
	s := newTestMapState(testMapProps())
	pos := mgl64.Vec2{200, 150}
	anchor := s.unprojectScreen(pos)

	for _, scale := range []float64{0.5, 0.9, 1.1, 1.5, 2, 10} {
		zoomed := s.ZoomStart(pos).Zoom(pos, scale).(mapState)
		under := zoomed.unprojectScreen(pos)
		if !approxEqual(under.X(), anchor.X(), 1e-6) || !approxEqual(under.Y(), anchor.Y(), 1e-6) {
			t.Errorf("scale %v: anchor drifted from (%v, %v) to (%v, %v)",
				scale, anchor.X(), anchor.Y(), under.X(), under.Y())
		}
	}
}

func TestMapStateZoomMultipliesLevel(t *testing.T) {
	p := testMapProps()
	p.Zoom = 5
	s := newTestMapState(p)
	center := mgl64.Vec2{400, 300}

	if got := s.Zoom(center, 2).ViewportProps(); !approxEqual(got.Zoom, 10, tolerance) {
		t.Errorf("zoom x2 = %v, want 10", got.Zoom)
	}
	if got := s.Zoom(center, 0.5).ViewportProps(); !approxEqual(got.Zoom, 2.5, tolerance) {
		t.Errorf("zoom x0.5 = %v, want 2.5", got.Zoom)
	}
}

func TestMapStateZoomClampedToBounds(t *testing.T) {
	s := newTestMapState(testMapProps())
	pos := mgl64.Vec2{400, 300}

	// Blowing up repeatedly saturates at the ceiling.
	state := ViewportState(s)
	for i := 0; i < 5; i++ {
		state = state.Zoom(pos, 1e9)
	}
	if got := state.ViewportProps().Zoom; !approxEqual(got, defaultMaxZoom, tolerance) {
		t.Errorf("zoom after repeated 1e9 scales = %v, want %v", got, float64(defaultMaxZoom))
	}

	// Shrinking repeatedly converges to the floor, never below it.
	for i := 0; i < 20; i++ {
		state = state.Zoom(pos, 1e-9)
	}
	if got := state.ViewportProps().Zoom; got < defaultMinZoom {
		t.Errorf("zoom after repeated 1e-9 scales = %v, want >= %v", got, float64(defaultMinZoom))
	}
}

func TestMapStateZoomRejectsNonPositiveScale(t *testing.T) {
	s := newTestMapState(testMapProps())
	pos := mgl64.Vec2{400, 300}
	for _, scale := range []float64{0, -1} {
		if got := s.Zoom(pos, scale).ViewportProps(); !got.Equal(s.ViewportProps()) {
			t.Errorf("scale %v changed props: %+v", scale, got)
		}
	}
}

func TestMapStateZoomUsesStartReference(t *testing.T) {
	p := testMapProps()
	p.Zoom = 4
	s := newTestMapState(p)
	pos := mgl64.Vec2{400, 300}

	// Pinch semantics: scale is relative to the level at ZoomStart, so
	// repeated moves with the same scale do not compound.
	started := s.ZoomStart(pos)
	once := started.Zoom(pos, 1.5)
	twice := once.Zoom(pos, 1.5)
	if got := twice.ViewportProps().Zoom; !approxEqual(got, 6, tolerance) {
		t.Errorf("zoom = %v, want 6 (4 * 1.5, not compounded)", got)
	}
}

// --- keyboard steps ---

func TestMapStateKeyboardZoomSteps(t *testing.T) {
	s := newTestMapState(testMapProps())
	if got := s.ZoomIn().ViewportProps().Zoom; !approxEqual(got, 12, tolerance) {
		t.Errorf("ZoomIn = %v, want 12", got)
	}
	if got := s.ZoomOut().ViewportProps().Zoom; !approxEqual(got, 10, tolerance) {
		t.Errorf("ZoomOut = %v, want 10", got)
	}
}

func TestMapStateKeyboardPanSteps(t *testing.T) {
	s := newTestMapState(testMapProps())
	base := s.ViewportProps()

	if got := s.MoveLeft().ViewportProps(); got.Longitude >= base.Longitude {
		t.Errorf("MoveLeft: longitude %v, want < %v", got.Longitude, base.Longitude)
	}
	if got := s.MoveRight().ViewportProps(); got.Longitude <= base.Longitude {
		t.Errorf("MoveRight: longitude %v, want > %v", got.Longitude, base.Longitude)
	}
	if got := s.MoveUp().ViewportProps(); got.Latitude <= base.Latitude {
		t.Errorf("MoveUp: latitude %v, want > %v", got.Latitude, base.Latitude)
	}
	if got := s.MoveDown().ViewportProps(); got.Latitude >= base.Latitude {
		t.Errorf("MoveDown: latitude %v, want < %v", got.Latitude, base.Latitude)
	}

	// Keyboard steps leave no gesture flags behind.
	if is := s.MoveLeft().InteractionState(); is.IsDragging || is.IsPanning {
		t.Errorf("MoveLeft left gesture flags set: %+v", is)
	}
}

func TestMapStateKeyboardRotateSteps(t *testing.T) {
	s := newTestMapState(testMapProps())
	if got := s.RotateRight().ViewportProps().Bearing; !approxEqual(got, keyboardBearingStep, tolerance) {
		t.Errorf("RotateRight bearing = %v, want %v", got, float64(keyboardBearingStep))
	}
	if got := s.RotateLeft().ViewportProps().Bearing; !approxEqual(got, -keyboardBearingStep, tolerance) {
		t.Errorf("RotateLeft bearing = %v, want %v", got, float64(-keyboardBearingStep))
	}
	if got := s.RotateUp().ViewportProps().Pitch; !approxEqual(got, keyboardPitchStep, tolerance) {
		t.Errorf("RotateUp pitch = %v, want %v", got, float64(keyboardPitchStep))
	}
	// Pitch already at the floor stays clamped.
	if got := s.RotateDown().ViewportProps().Pitch; !approxEqual(got, defaultMinPitch, tolerance) {
		t.Errorf("RotateDown pitch = %v, want %v", got, float64(defaultMinPitch))
	}
}

// --- purity ---

func TestMapStateOperationsDoNotMutateReceiver(t *testing.T) {
	s := newTestMapState(testMapProps())
	before := s.ViewportProps()

	s.PanStart(mgl64.Vec2{10, 10}).Pan(mgl64.Vec2{300, 300}).PanEnd()
	s.ZoomStart(mgl64.Vec2{10, 10}).Zoom(mgl64.Vec2{10, 10}, 3)
	s.RotateStart(mgl64.Vec2{10, 10}).Rotate(1, 1)

	if !s.ViewportProps().Equal(before) {
		t.Errorf("receiver mutated: %+v -> %+v", before, s.ViewportProps())
	}
	if is := s.InteractionState(); is.IsDragging || is.IsZooming || is.IsRotating {
		t.Errorf("receiver interaction mutated: %+v", is)
	}
}
