package host

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sightless-ui/sightless/event"
)

// Terminal is a tcell-backed event source.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal host on the current tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen. Useful with tcell's
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the underlying screen. It must be called before
// PollEvent.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini releases the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Screen exposes the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Interrupt wakes a blocked PollEvent with a quit event. Safe to call
// from another goroutine.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// PollEvent implements session.Source. It blocks until the next
// translatable event and returns nil once the screen is finalized.
func (t *Terminal) PollEvent() event.Event {
	for {
		tev := t.screen.PollEvent()
		if tev == nil {
			return nil
		}
		if ev, ok := Translate(tev); ok {
			return ev
		}
	}
}

// Translate converts one tcell event into a toolkit event record. It
// reports false for tcell events with no toolkit counterpart.
func Translate(tev tcell.Event) (event.Event, bool) {
	switch tv := tev.(type) {
	case *tcell.EventKey:
		return event.NewRecord(event.KeyDown, map[string]any{
			event.FieldKey:  tv.Key(),
			event.FieldRune: tv.Rune(),
			event.FieldMod:  tv.Modifiers(),
		}), true
	case *tcell.EventResize:
		w, h := tv.Size()
		return event.NewRecord(event.Resize, map[string]any{
			event.FieldWidth:  w,
			event.FieldHeight: h,
		}), true
	case *tcell.EventInterrupt:
		return event.NewRecord(event.Quit, nil), true
	default:
		return nil, false
	}
}
