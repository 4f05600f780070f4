package element

import (
	"strconv"

	"github.com/sightless-ui/sightless/session"
)

// intChars is the alphabet an IntTextbox accepts.
const intChars = "1234567890"

// IntTextbox is a textbox that only allows integers.
type IntTextbox struct {
	*Textbox
}

// NewIntTextbox creates an integer-only textbox owned by the parent
// session.
func NewIntTextbox(parent session.RunState, title string, opts ...TextboxOption) *IntTextbox {
	opts = append(opts, WithAllowedChars(intChars))
	return &IntTextbox{Textbox: NewTextbox(parent, title, opts...)}
}

// Int parses the current text as an integer. An empty textbox parses
// as zero.
func (t *IntTextbox) Int() (int, error) {
	if t.Value() == "" {
		return 0, nil
	}
	return strconv.Atoi(t.Value())
}
