package controls

import (
	"github.com/Carmen-Shannon/oxy-view/viewstate"
)

// mockEventSource is a scriptable EventSource for controller tests.
type mockEventSource struct {
	handlers map[string]Handler
	onCalls  []string
	offCalls []string
}

func newMockEventSource() *mockEventSource {
	return &mockEventSource{handlers: make(map[string]Handler)}
}

func (m *mockEventSource) On(name string, handler Handler) {
	m.handlers[name] = handler
	m.onCalls = append(m.onCalls, name)
}

func (m *mockEventSource) Off(name string) {
	delete(m.handlers, name)
	m.offCalls = append(m.offCalls, name)
}

// emit delivers an event through the subscribed handler, exactly as a real
// source would. Returns false if nothing is subscribed for the type.
func (m *mockEventSource) emit(ev Event) bool {
	handler, ok := m.handlers[ev.Type]
	if !ok {
		return false
	}
	handler(ev)
	return true
}

// viewportCall records one onViewportChange invocation.
type viewportCall struct {
	newProps viewstate.ViewportProps
	oldProps viewstate.ViewportProps
	spec     TransitionSpec
}

// changeRecorder captures both owner callbacks.
type changeRecorder struct {
	viewportCalls []viewportCall
	stateCalls    []viewstate.InteractionState
}

func (r *changeRecorder) onViewportChange(newProps, oldProps viewstate.ViewportProps, spec TransitionSpec) {
	r.viewportCalls = append(r.viewportCalls, viewportCall{newProps: newProps, oldProps: oldProps, spec: spec})
}

func (r *changeRecorder) onStateChange(state viewstate.InteractionState) {
	r.stateCalls = append(r.stateCalls, state)
}

func (r *changeRecorder) reset() {
	r.viewportCalls = nil
	r.stateCalls = nil
}

func (r *changeRecorder) lastViewport() viewportCall {
	return r.viewportCalls[len(r.viewportCalls)-1]
}

func (r *changeRecorder) lastState() viewstate.InteractionState {
	return r.stateCalls[len(r.stateCalls)-1]
}
