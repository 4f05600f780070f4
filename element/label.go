package element

import "github.com/sightless-ui/sightless/session"

// Label is an inert element that acts as a header in menus and forms.
// It registers no handlers.
type Label struct {
	*Element
}

// NewLabel creates a label owned by the parent session.
func NewLabel(parent session.RunState, title string) *Label {
	l := &Label{Element: newElement(parent, title, "Label")}
	l.SetHelp("This object has no controls.")
	return l
}
