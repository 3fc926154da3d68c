package window

import (
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-view/controls"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
)

// glfwSource adapts a GLFW window's input callbacks to the gesture event
// contract. It takes over the window's mouse button, cursor position,
// scroll, and key callbacks.
//
// GLFW delivers callbacks on the thread that calls glfw.PollEvents. Gesture
// handlers are never run on that thread: every event is submitted to a
// single-worker pool, which both keeps event order and funnels all gesture
// handling through one serialized queue.
type glfwSource struct {
	handlerSet

	window *glfw.Window
	pool   worker.DynamicWorkerPool
	seq    int

	// Drag recognition state, touched only from the callback thread.
	dragging  bool
	secondary bool
	funcKey   bool
	startPos  mgl64.Vec2

	// Double-click recognition.
	lastClickAt     time.Time
	lastClickPos    mgl64.Vec2
	doubleTapWindow time.Duration
	doubleTapSlop   float64

	wheelScale float64
}

var _ controls.EventSource = &glfwSource{}

// NewGLFWSource wraps an existing GLFW window as a gesture event source.
// The adapter installs its own input callbacks on the window, replacing any
// previously registered ones.
//
// Parameters:
//   - win: the GLFW window to read input from
//   - options: functional options to configure recognition behavior
//
// Returns:
//   - controls.EventSource: the event source to bind to a controller
func NewGLFWSource(win *glfw.Window, options ...GLFWSourceOption) controls.EventSource {
	s := &glfwSource{
		window:          win,
		doubleTapWindow: defaultDoubleTapWindowMs * time.Millisecond,
		doubleTapSlop:   defaultDoubleTapSlop,
		wheelScale:      defaultWheelScale,
	}
	for _, option := range options {
		option(s)
	}

	// One worker, deep queue: order-preserving handoff from the OS callback
	// thread. Workers idle-exit on their own, so no explicit shutdown.
	s.pool = worker.NewDynamicWorkerPool(1, 256, 1*time.Second)

	s.installCallbacks()
	return s
}

func (s *glfwSource) On(name string, handler controls.Handler) {
	s.set(name, handler)
}

func (s *glfwSource) Off(name string) {
	s.remove(name)
}

// --- callback wiring ---

// installCallbacks registers the GLFW input callbacks feeding the
// recognizer.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
func (s *glfwSource) installCallbacks() {
	s.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft && button != glfw.MouseButtonRight {
			return
		}
		x, y := s.window.GetCursorPos()
		pos := mgl64.Vec2{x, y}

		switch action {
		case glfw.Press:
			s.funcKey = modsFunctionKey(mods)
			s.secondary = button == glfw.MouseButtonRight
			if button == glfw.MouseButtonLeft && s.isDoubleClick(pos) {
				s.lastClickAt = time.Time{}
				s.emit(controls.Event{
					Type:         controls.EventDoubleTap,
					OffsetCenter: pos,
					Src:          controls.SourceEvent{FunctionKey: s.funcKey},
				})
				return
			}
			if button == glfw.MouseButtonLeft {
				s.lastClickAt = time.Now()
				s.lastClickPos = pos
			}
			s.dragging = true
			s.startPos = pos
			s.emit(s.panEvent(controls.EventPanStart, pos))
		case glfw.Release:
			if !s.dragging {
				return
			}
			s.dragging = false
			s.emit(s.panEvent(controls.EventPanEnd, pos))
		}
	})

	s.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if !s.dragging {
			return
		}
		s.emit(s.panEvent(controls.EventPanMove, mgl64.Vec2{xpos, ypos}))
	})

	s.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		x, y := s.window.GetCursorPos()
		// GLFW reports scroll-up as positive; gesture events use the wheel
		// convention where negative delta scrolls up (zooms in).
		s.emit(controls.Event{
			Type:         controls.EventWheel,
			OffsetCenter: mgl64.Vec2{x, y},
			DeltaY:       -yoff * s.wheelScale,
		})
	})

	s.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		s.emit(controls.Event{
			Type: controls.EventKeyDown,
			Src: controls.SourceEvent{
				FunctionKey: modsFunctionKey(mods),
				KeyCode:     uint32(key),
			},
		})
	})
}

// --- recognition helpers ---

// isDoubleClick reports whether a press at pos completes a double click.
func (s *glfwSource) isDoubleClick(pos mgl64.Vec2) bool {
	if s.lastClickAt.IsZero() {
		return false
	}
	return time.Since(s.lastClickAt) <= s.doubleTapWindow &&
		pos.Sub(s.lastClickPos).Len() <= s.doubleTapSlop
}

// panEvent builds a pan-sequence event carrying cumulative deltas from the
// drag start and the modifier state captured at press time.
func (s *glfwSource) panEvent(eventType string, pos mgl64.Vec2) controls.Event {
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

// emit hands the event to the registered handler through the serialized
// worker queue.
func (s *glfwSource) emit(ev controls.Event) {
	handler := s.get(ev.Type)
	if handler == nil {
		return
	}
	s.seq++
	s.pool.SubmitTask(worker.Task{
		ID: s.seq,
		Do: func() (any, error) {
			handler(ev)
			return nil, nil
		},
	})
}

// modsFunctionKey reports whether any modifier in the GLFW bitmask counts
// as a function key.
func modsFunctionKey(mods glfw.ModifierKey) bool {
	return mods&(glfw.ModControl|glfw.ModAlt|glfw.ModShift|glfw.ModSuper) != 0
}
