package window

import (
	"time"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/controls"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys maps the Ebitengine keys the controller understands to the
// GLFW-numbered key codes from the common package.
var ebitenKeys = map[ebiten.Key]uint32{
	ebiten.KeyMinus:      common.KeyMinus,
	ebiten.KeyEqual:      common.KeyEqual,
	ebiten.KeyArrowLeft:  common.KeyLeft,
	ebiten.KeyArrowRight: common.KeyRight,
	ebiten.KeyArrowUp:    common.KeyUp,
	ebiten.KeyArrowDown:  common.KeyDown,
	ebiten.KeyKPAdd:      common.KeyKPAdd,
	ebiten.KeyKPSubtract: common.KeyKPSubtract,
}

// ebitenSource adapts Ebitengine's polled input model to the gesture event
// contract. Ebitengine has no input callbacks, so the host pumps Update
// once per frame and the adapter synthesizes events from state changes.
// Everything runs on the game loop's single thread, so no queue is needed.
type ebitenSource struct {
	handlerSet

	dragging  bool
	secondary bool
	funcKey   bool
	startPos  mgl64.Vec2
	lastPos   mgl64.Vec2

	lastClickAt     time.Time
	lastClickPos    mgl64.Vec2
	doubleTapWindow time.Duration
	doubleTapSlop   float64

	wheelScale float64
}

var _ PollingSource = &ebitenSource{}

// NewEbitenSource creates a polling gesture event source for Ebitengine
// hosts. Call Update once per frame from the game's Update method.
//
// Parameters:
//   - options: functional options to configure recognition behavior
//
// Returns:
//   - PollingSource: the event source to bind to a controller
func NewEbitenSource(options ...EbitenSourceOption) PollingSource {
	s := &ebitenSource{
		doubleTapWindow: defaultDoubleTapWindowMs * time.Millisecond,
		doubleTapSlop:   defaultDoubleTapSlop,
		wheelScale:      defaultWheelScale,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *ebitenSource) On(name string, handler controls.Handler) {
	s.set(name, handler)
}

func (s *ebitenSource) Off(name string) {
	s.remove(name)
}

func (s *ebitenSource) Update() {
	x, y := ebiten.CursorPosition()
	pos := mgl64.Vec2{float64(x), float64(y)}
	funcKey := ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)

	s.updateWheel(pos)
	s.updateDrag(pos, funcKey)
	s.updateKeys(funcKey)
}

// --- per-frame recognition ---

func (s *ebitenSource) updateWheel(pos mgl64.Vec2) {
	_, wheelY := ebiten.Wheel()
	if wheelY == 0 {
		return
	}
	// Ebitengine reports scroll-up as positive; flip to the wheel
	// convention where negative delta zooms in.
	s.emit(controls.Event{
		Type:         controls.EventWheel,
		OffsetCenter: pos,
		DeltaY:       -wheelY * s.wheelScale,
	})
}

func (s *ebitenSource) updateDrag(pos mgl64.Vec2, funcKey bool) {
	s.stepDrag(pos, funcKey,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
}

// stepDrag advances drag recognition by one frame of sampled input state.
// A panmove fires only when the cursor actually moved since the previous
// frame, so a resting cursor emits nothing.
func (s *ebitenSource) stepDrag(pos mgl64.Vec2, funcKey, leftPressed, rightPressed, stillHeld bool) {
	if !s.dragging && (leftPressed || rightPressed) {
		s.funcKey = funcKey
		s.secondary = rightPressed
		if leftPressed && s.isDoubleClick(pos) {
			s.lastClickAt = time.Time{}
			s.emit(controls.Event{
				Type:         controls.EventDoubleTap,
				OffsetCenter: pos,
				Src:          controls.SourceEvent{FunctionKey: funcKey},
			})
			return
		}
		if leftPressed {
			s.lastClickAt = time.Now()
			s.lastClickPos = pos
		}
		s.dragging = true
		s.startPos = pos
		s.lastPos = pos
		s.emit(s.panEvent(controls.EventPanStart, pos))
		return
	}

	if !s.dragging {
		return
	}

	if !stillHeld {
		s.dragging = false
		s.emit(s.panEvent(controls.EventPanEnd, pos))
		return
	}
	if pos != s.lastPos {
		s.lastPos = pos
		s.emit(s.panEvent(controls.EventPanMove, pos))
	}
}

func (s *ebitenSource) updateKeys(funcKey bool) {
	for key, code := range ebitenKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		s.emit(controls.Event{
			Type: controls.EventKeyDown,
			Src: controls.SourceEvent{
				FunctionKey: funcKey,
				KeyCode:     code,
			},
		})
	}
}

// --- helpers ---

func (s *ebitenSource) isDoubleClick(pos mgl64.Vec2) bool {
	if s.lastClickAt.IsZero() {
		return false
	}
	return time.Since(s.lastClickAt) <= s.doubleTapWindow &&
		pos.Sub(s.lastClickPos).Len() <= s.doubleTapSlop
}

func (s *ebitenSource) panEvent(eventType string, pos mgl64.Vec2) controls.Event {
	return controls.Event{
		Type:         eventType,
		OffsetCenter: pos,
		DeltaX:       pos.X() - s.startPos.X(),
		DeltaY:       pos.Y() - s.startPos.Y(),
		Src: controls.SourceEvent{
			FunctionKey:     s.funcKey,
			SecondaryButton: s.secondary,
		},
	}
}

func (s *ebitenSource) emit(ev controls.Event) {
	if handler := s.get(ev.Type); handler != nil {
		handler(ev)
	}
}
