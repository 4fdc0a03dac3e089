package config

import "go.uber.org/multierr"

// Listener is notified after every change to a State.
type Listener interface {
	ConfigChanged(Crosshair) error
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Crosshair) error

func (f ListenerFunc) ConfigChanged(c Crosshair) error { return f(c) }

// State owns the canonical configuration and fans out changes to listeners.
// It is not safe for concurrent use; all calls belong on the UI goroutine.
type State struct {
	current   Crosshair
	listeners []Listener
}

func NewState(c Crosshair) *State {
	return &State{current: c.Normalize()}
}

// Current returns a copy of the configuration.
func (s *State) Current() Crosshair {
	return s.current
}

// Subscribe adds l to the end of the notification order.
func (s *State) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Update applies fn to a copy of the configuration, normalizes and stores the
// result, then notifies every listener in order. A failing listener does not
// stop the ones after it; all errors are combined.
func (s *State) Update(fn func(*Crosshair)) error {
	next := s.current
	fn(&next)
	s.current = next.Normalize()

	var err error
	for _, l := range s.listeners {
		err = multierr.Append(err, l.ConfigChanged(s.current))
	}
	return err
}
