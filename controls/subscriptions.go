package controls

// Subscription bookkeeping: the desired subscription set is recomputed from
// the configuration, diffed against the active set, and only the difference
// touches the event source. This keeps handler registration idempotent and
// lets the source be swapped cleanly.

// desiredSubscriptions computes which event names the current configuration
// wants. With no viewport change handler or no event source, the controller
// wants nothing: there is no one to deliver updates to.
func (c *controller) desiredSubscriptions() map[string]bool {
	desired := make(map[string]bool, len(allEvents))
	if c.onViewportChange == nil || c.eventSource == nil {
		return desired
	}

	drag := c.dragPan || c.dragRotate
	pinch := c.touchZoom || c.touchRotate

	desired[EventWheel] = c.scrollZoom
	desired[EventPanStart] = drag
	desired[EventPanMove] = drag
	desired[EventPanEnd] = drag
	desired[EventPinchStart] = pinch
	desired[EventPinchMove] = pinch
	desired[EventPinchEnd] = pinch
	desired[EventDoubleTap] = c.doubleClickZoom
	desired[EventKeyDown] = c.keyboard
	return desired
}

// updateSubscriptions reconciles the active subscription set with the
// desired one, attaching and detaching only where they differ.
func (c *controller) updateSubscriptions() {
	desired := c.desiredSubscriptions()
	for _, name := range allEvents {
		want := desired[name]
		have := c.active[name]
		switch {
		case want && !have:
			c.eventSource.On(name, c.dispatch)
			c.active[name] = true
		case !want && have:
			c.eventSource.Off(name)
			delete(c.active, name)
		}
	}
}

// detachAll removes every active subscription from the current source.
func (c *controller) detachAll() {
	if c.eventSource == nil {
		return
	}
	for name := range c.active {
		c.eventSource.Off(name)
	}
	clear(c.active)
}

// dispatch is the single handler registered for every subscribed event.
func (c *controller) dispatch(ev Event) {
	c.HandleEvent(ev)
}
