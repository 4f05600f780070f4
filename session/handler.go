package session

import (
	"github.com/google/uuid"

	"github.com/sightless-ui/sightless/event"
)

// Handler binds a filter set and an ordered action list to one event
// type. Handlers are created only by Manager.AddHandler and its
// wrappers; callers hold the returned pointer purely as a token for
// later removal or modification.
type Handler struct {
	id           string
	owner        *Manager
	session      RunState
	typ          event.Type
	filters      event.Filters
	actions      Actions
	help         string
	alwaysActive bool
}

// HandlerOption configures a handler at registration time.
type HandlerOption func(*Handler)

// WithHelp sets the handler's help text. Without it, Help falls back
// to the first bound action that describes itself.
func WithHelp(text string) HandlerOption {
	return func(h *Handler) {
		h.help = text
	}
}

// WithAlwaysActive lets the handler fire even while the owning session
// is paused.
func WithAlwaysActive() HandlerOption {
	return func(h *Handler) {
		h.alwaysActive = true
	}
}

// newHandler is called only from Manager registration paths.
func newHandler(owner *Manager, typ event.Type, actions Actions, filters event.Filters, opts ...HandlerOption) *Handler {
	h := &Handler{
		id:      uuid.NewString(),
		owner:   owner,
		session: owner.session,
		typ:     typ,
		filters: filters.Clone(),
		actions: actions.Clone(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ID returns the handler's unique identifier.
func (h *Handler) ID() string {
	return h.id
}

// Type returns the event type tag the handler is registered under.
func (h *Handler) Type() event.Type {
	return h.typ
}

// Filters returns a copy of the handler's filter list, in its stored
// order.
func (h *Handler) Filters() event.Filters {
	return h.filters.Clone()
}

// Actions returns a copy of the handler's action list.
func (h *Handler) Actions() Actions {
	return h.actions.Clone()
}

// AlwaysActive reports whether the handler fires while the session is
// paused.
func (h *Handler) AlwaysActive() bool {
	return h.alwaysActive
}

// Help returns the handler's help text: the text given at
// registration, else the first action that describes itself, else "".
func (h *Handler) Help() string {
	if h.help != "" {
		return h.help
	}
	for _, a := range h.actions {
		if hp, ok := a.(HelpProvider); ok {
			if text := hp.Help(); text != "" {
				return text
			}
		}
	}
	return ""
}

// matches reports whether ev satisfies the handler's full filter
// conjunction.
func (h *Handler) matches(ev event.Event) bool {
	return h.filters.Matches(ev)
}

// CallActions invokes the bound actions, in order, passing the handler
// itself and the event to each. The invocation is gated on the owning
// session: it happens only when the session is running or the handler
// is always-active. A gated-off call is a no-op reported through
// Result, never an error.
func (h *Handler) CallActions(ev event.Event) Result {
	if !h.active() {
		return Result{}
	}
	var value any
	for _, a := range h.actions {
		value = a.Invoke(h, ev)
	}
	return Result{Invoked: true, Value: value}
}

// active evaluates the invocation gate. A handler without a session
// back-reference is always active.
func (h *Handler) active() bool {
	if h.alwaysActive || h.session == nil {
		return true
	}
	return h.session.IsRunning()
}
