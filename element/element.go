package element

import "github.com/sightless-ui/sightless/session"

// Element is the common core of all leaf widgets: a title, a kind
// name, help text, and a handler registry gated on the parent
// session's run state.
type Element struct {
	*session.Manager
	parent session.RunState
	title  string
	kind   string
	help   string
}

// newElement is called by the concrete widget constructors.
func newElement(parent session.RunState, title, kind string) *Element {
	return &Element{
		Manager: session.NewManager(parent),
		parent:  parent,
		title:   title,
		kind:    kind,
	}
}

// Title returns the element's title.
func (e *Element) Title() string {
	return e.title
}

// SetTitle replaces the element's title.
func (e *Element) SetTitle(title string) {
	e.title = title
}

// Kind returns the widget kind name, e.g. "Label".
func (e *Element) Kind() string {
	return e.kind
}

// Help returns the element's help text.
func (e *Element) Help() string {
	return e.help
}

// SetHelp replaces the element's help text.
func (e *Element) SetHelp(text string) {
	e.help = text
}
