package session

import "github.com/sightless-ui/sightless/event"

// Action is one reaction bound to a handler. Actions run inline on the
// dispatching goroutine; a blocking action stalls the event loop for
// its duration.
type Action interface {
	// Invoke runs the action and returns its result value. The bound
	// handler is passed along so actions can inspect or remove their
	// own registration.
	Invoke(h *Handler, ev event.Event) any
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(h *Handler, ev event.Event) any

// Invoke implements Action.
func (f ActionFunc) Invoke(h *Handler, ev event.Event) any {
	if f == nil {
		return nil
	}
	return f(h, ev)
}

// Do adapts a niladic function to the Action interface, for reactions
// that ignore the handler and event.
func Do(fn func()) Action {
	return ActionFunc(func(*Handler, event.Event) any {
		if fn != nil {
			fn()
		}
		return nil
	})
}

// Actions is the canonical ordered action list. Registration accepts
// one or many actions through Act; the list form is the only one the
// engine stores and calls.
type Actions []Action

// Act normalizes one or more actions into an action list.
func Act(actions ...Action) Actions {
	return actions
}

// Clone returns a copy of the action list.
func (as Actions) Clone() Actions {
	if as == nil {
		return nil
	}
	out := make(Actions, len(as))
	copy(out, as)
	return out
}

// HelpProvider is implemented by actions that describe themselves.
// Handler.Help falls back to the first bound action that does.
type HelpProvider interface {
	Help() string
}

// Describe attaches help text to an action.
func Describe(a Action, help string) Action {
	return described{Action: a, help: help}
}

type described struct {
	Action
	help string
}

// Help implements HelpProvider.
func (d described) Help() string {
	return d.help
}

// Result reports the outcome of a handler invocation attempt. It keeps
// a suppressed invocation distinguishable from an action that ran and
// returned nil.
type Result struct {
	// Invoked is true when the activation gate passed and the bound
	// actions ran.
	Invoked bool

	// Value is the return value of the final action in the list.
	Value any
}

// Suppressed reports whether the invocation was gated off.
func (r Result) Suppressed() bool {
	return !r.Invoked
}
