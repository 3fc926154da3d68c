// Package window provides concrete gesture event sources for the controls
// package. Adapters translate platform input (GLFW callbacks, Ebitengine
// polling) into the typed gesture events a Controller consumes, including
// lightweight drag and double-click recognition.
package window

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-view/controls"
)

// PollingSource is an event source whose host must pump it once per frame.
// Used by adapters for engines without input callbacks.
type PollingSource interface {
	controls.EventSource

	// Update polls the platform input state and emits any gesture events
	// derived from it. Call once per frame from the host's update loop.
	Update()
}

// Recognition defaults shared by the adapters: two clicks within the window
// and slop radius count as a double tap, and one wheel notch is scaled to a
// browser-like pixel delta.
const (
	defaultDoubleTapWindowMs = 300
	defaultDoubleTapSlop     = 10.0
	defaultWheelScale        = 100.0
)

// handlerSet is the per-source registry of gesture handlers. Registration
// can race with platform callbacks, so access is guarded. The zero value is
// ready to use.
type handlerSet struct {
	mu       sync.Mutex
	handlers map[string]controls.Handler
}

func (hs *handlerSet) set(name string, handler controls.Handler) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.handlers == nil {
		hs.handlers = make(map[string]controls.Handler)
	}
	hs.handlers[name] = handler
}

func (hs *handlerSet) remove(name string) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	delete(hs.handlers, name)
}

func (hs *handlerSet) get(name string) controls.Handler {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.handlers[name]
}
