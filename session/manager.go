package session

import (
	"github.com/sirupsen/logrus"

	"github.com/sightless-ui/sightless/event"
)

// RunState is the contract a concrete session type supplies to the
// dispatch engine. It gates handler invocation while the session is
// paused.
type RunState interface {
	IsRunning() bool
}

// EventHandler is implemented by anything that can take one decoded
// host event and report whether it handled it.
type EventHandler interface {
	HandleEvent(ev event.Event) bool
}

// Manager owns a registry of event type tag to ordered handler list
// and implements the default matching algorithm. Each session owns an
// independent Manager; the registry is never shared.
//
// Manager is not safe for concurrent use. See the package
// documentation.
type Manager struct {
	session RunState
	events  map[event.Type][]*Handler
	logger  logrus.FieldLogger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the diagnostics sink. Nil loggers are ignored here;
// use SetLogger to get an explicit error.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a manager whose handlers gate on sess. A nil sess
// leaves every handler permanently active.
func NewManager(sess RunState, opts ...Option) *Manager {
	m := &Manager{
		session: sess,
		events:  make(map[event.Type][]*Handler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// HandleEvent runs the default matching algorithm: scan the handlers
// registered for the event's type tag in registration order and invoke
// the first one whose full filter conjunction passes. It reports
// whether a handler matched; a matched-but-suppressed handler still
// counts as handled. Events with no registered handlers are a clean
// miss, not an error.
func (m *Manager) HandleEvent(ev event.Event) bool {
	if ev == nil {
		return false
	}
	for _, h := range m.events[ev.Type()] {
		if !h.matches(ev) {
			continue
		}
		res := h.CallActions(ev)
		if m.logger != nil {
			m.logger.WithFields(logrus.Fields{
				"type":       ev.Type(),
				"handler":    h.ID(),
				"suppressed": res.Suppressed(),
			}).Debugf("handle event: %v", ev)
		}
		return true
	}
	return false
}

// AddHandler registers a handler for the given type tag and returns
// it. The tag is not validated against any known set. Registration
// order is dispatch priority: handlers with an empty filter list match
// every event of their type, so catch-alls belong last.
func (m *Manager) AddHandler(typ event.Type, actions Actions, filters event.Filters, opts ...HandlerOption) *Handler {
	h := newHandler(m, typ, actions, filters, opts...)
	m.events[typ] = append(m.events[typ], h)
	return h
}

// AddKeydownHandler registers a handler for the canonical key-press
// tag.
func (m *Manager) AddKeydownHandler(actions Actions, filters event.Filters, opts ...HandlerOption) *Handler {
	return m.AddHandler(event.KeyDown, actions, filters, opts...)
}

// AddKeyupHandler registers a handler for the canonical key-release
// tag.
func (m *Manager) AddKeyupHandler(actions Actions, filters event.Filters, opts ...HandlerOption) *Handler {
	return m.AddHandler(event.KeyUp, actions, filters, opts...)
}

// RemoveHandler removes the first occurrence of h from the registry.
// It reports success; removing an unknown or already-removed handler
// returns false and never fails, so double removal is safe.
func (m *Manager) RemoveHandler(h *Handler) bool {
	if h == nil {
		return false
	}
	list, ok := m.events[h.typ]
	if !ok {
		return false
	}
	for i, cur := range list {
		if cur != h {
			continue
		}
		m.events[h.typ] = append(list[:i], list[i+1:]...)
		if len(m.events[h.typ]) == 0 {
			delete(m.events, h.typ)
		}
		return true
	}
	return false
}

// ChangeFilters atomically replaces h's filter list, keeping its type,
// actions, and registry position. The handler keeps its precedence
// slot and remains valid as a removal token. Passing a nil,
// foreign, or unregistered handler is a configuration mistake and is
// reported as an explicit error; the registry is left untouched on
// failure.
func (m *Manager) ChangeFilters(h *Handler, filters event.Filters) error {
	if err := m.verify(h); err != nil {
		return err
	}
	h.filters = filters.Clone()
	return nil
}

// ChangeActions atomically replaces h's action list, keeping its type,
// filters, and registry position. Failure conditions match
// ChangeFilters.
func (m *Manager) ChangeActions(h *Handler, actions Actions) error {
	if err := m.verify(h); err != nil {
		return err
	}
	h.actions = actions.Clone()
	return nil
}

// verify checks that h is a live registration of this manager.
func (m *Manager) verify(h *Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	if h.owner != m {
		return ErrForeignHandler
	}
	for _, cur := range m.events[h.typ] {
		if cur == h {
			return nil
		}
	}
	return ErrHandlerNotRegistered
}

// Events returns a copy of the registry for inspection: type tags to
// handler lists in registration order. Mutation must go through the
// registration calls; changes to the returned map do not affect the
// registry.
func (m *Manager) Events() map[event.Type][]*Handler {
	out := make(map[event.Type][]*Handler, len(m.events))
	for typ, list := range m.events {
		cp := make([]*Handler, len(list))
		copy(cp, list)
		out[typ] = cp
	}
	return out
}

// Handlers returns a copy of the handler list registered under typ, in
// registration order.
func (m *Manager) Handlers(typ event.Type) []*Handler {
	list := m.events[typ]
	if len(list) == 0 {
		return nil
	}
	cp := make([]*Handler, len(list))
	copy(cp, list)
	return cp
}

// Count returns the total number of registered handlers.
func (m *Manager) Count() int {
	n := 0
	for _, list := range m.events {
		n += len(list)
	}
	return n
}

// SetLogger sets the diagnostics sink. Every successful match emits
// one debug record. A nil sink is a hard configuration error.
func (m *Manager) SetLogger(logger logrus.FieldLogger) error {
	if logger == nil {
		return ErrInvalidLogger
	}
	m.logger = logger
	return nil
}

// Logger returns the configured diagnostics sink, or nil.
func (m *Manager) Logger() logrus.FieldLogger {
	return m.logger
}
