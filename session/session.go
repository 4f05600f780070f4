package session

import "github.com/sightless-ui/sightless/event"

// Source yields decoded host events one at a time. PollEvent blocks
// until the next event is available and returns nil once the source is
// closed or drained.
type Source interface {
	PollEvent() event.Event
}

// Session is a concrete runnable event-managing session. It owns the
// running flag the dispatch gate consults and drives the event loop.
type Session struct {
	*Manager
	running bool
	quit    bool
}

// New creates a session in the running state.
func New(opts ...Option) *Session {
	s := &Session{running: true}
	s.Manager = NewManager(s, opts...)
	return s
}

// IsRunning implements RunState.
func (s *Session) IsRunning() bool {
	return s.running
}

// Pause suppresses handlers that are not always-active. Dispatch keeps
// scanning and matching; matched handlers are gated off at invocation.
func (s *Session) Pause() {
	s.running = false
}

// Resume lifts a pause.
func (s *Session) Resume() {
	s.running = true
}

// TogglePause flips between paused and running.
func (s *Session) TogglePause() {
	s.running = !s.running
}

// Quit asks the event loop to stop after the current event. Callable
// from handler actions.
func (s *Session) Quit() {
	s.quit = true
}

// Run polls src and dispatches one event at a time until Quit is
// called or the source closes. It returns ErrQuit after Quit, nil when
// the source is drained, and ErrNoSource for a nil source. Events no
// handler claims are dropped.
func (s *Session) Run(src Source) error {
	if src == nil {
		return ErrNoSource
	}
	for {
		if s.quit {
			return ErrQuit
		}
		ev := src.PollEvent()
		if ev == nil {
			return nil
		}
		s.HandleEvent(ev)
	}
}
