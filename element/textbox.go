package element

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/sightless-ui/sightless/event"
	"github.com/sightless-ui/sightless/session"
)

// Textbox is a single-line text entry element. Keystroke behavior is
// wired as declarative handlers on the element's own registry: a
// backspace handler, then a character handler guarded by a predicate
// matcher over the allowed alphabet. The backspace handler is
// registered first so it shadows the catch-all character handler.
type Textbox struct {
	*Element
	value   []rune
	hidden  bool
	allowed string
}

// TextboxOption configures a textbox at construction.
type TextboxOption func(*Textbox)

// WithValue sets the initial text.
func WithValue(value string) TextboxOption {
	return func(t *Textbox) {
		t.value = []rune(value)
	}
}

// WithHidden masks the displayed text, for password-style entry.
func WithHidden() TextboxOption {
	return func(t *Textbox) {
		t.hidden = true
	}
}

// WithAllowedChars restricts input to the given characters. An empty
// set allows any printable character.
func WithAllowedChars(chars string) TextboxOption {
	return func(t *Textbox) {
		t.allowed = chars
	}
}

// NewTextbox creates a textbox owned by the parent session.
func NewTextbox(parent session.RunState, title string, opts ...TextboxOption) *Textbox {
	t := &Textbox{Element: newElement(parent, title, "Textbox")}
	for _, opt := range opts {
		opt(t)
	}
	t.SetHelp("Type to edit the text. Backspace deletes the last character.")

	t.AddKeydownHandler(session.Act(session.ActionFunc(t.deleteBack)), event.Filters{
		event.On(event.FieldKey, event.OneOf(tcell.KeyBackspace, tcell.KeyBackspace2)),
	})
	t.AddKeydownHandler(session.Act(session.ActionFunc(t.insertRune)), event.Filters{
		event.On(event.FieldKey, event.Equals(tcell.KeyRune)),
		event.On(event.FieldRune, event.Where(t.runeAllowed)),
	})
	return t
}

// Value returns the current text.
func (t *Textbox) Value() string {
	return string(t.value)
}

// SetValue replaces the current text.
func (t *Textbox) SetValue(value string) {
	t.value = []rune(value)
}

// Display returns the text as it should be presented, masked when the
// textbox is hidden.
func (t *Textbox) Display() string {
	if t.hidden {
		return strings.Repeat("*", len(t.value))
	}
	return string(t.value)
}

// runeAllowed is the character-filter predicate.
func (t *Textbox) runeAllowed(actual any) bool {
	r, ok := actual.(rune)
	if !ok {
		return false
	}
	if t.allowed == "" {
		return unicode.IsPrint(r)
	}
	return strings.ContainsRune(t.allowed, r)
}

func (t *Textbox) insertRune(_ *session.Handler, ev event.Event) any {
	v, ok := ev.Field(event.FieldRune)
	if !ok {
		return nil
	}
	r, ok := v.(rune)
	if !ok {
		return nil
	}
	t.value = append(t.value, r)
	return t.Value()
}

func (t *Textbox) deleteBack(_ *session.Handler, _ event.Event) any {
	if len(t.value) > 0 {
		t.value = t.value[:len(t.value)-1]
	}
	return t.Value()
}
