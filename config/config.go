package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sightless-ui/sightless/event"
	"github.com/sightless-ui/sightless/session"
)

// Sentinel errors for binding configuration.
var (
	// ErrUnknownAction is returned when a binding names an action the
	// application did not supply.
	ErrUnknownAction = errors.New("unknown action name")

	// ErrMissingEvent is returned when a binding has no event tag.
	ErrMissingEvent = errors.New("binding has no event type")

	// ErrUnknownFormat is returned for file extensions Load does not
	// recognize.
	ErrUnknownFormat = errors.New("unknown configuration format")
)

// Binding declares one handler in a configuration file.
type Binding struct {
	// Event is the event type tag the handler listens for.
	Event string `toml:"event" yaml:"event"`

	// Action names the registered action to invoke.
	Action string `toml:"action" yaml:"action"`

	// Help is the handler's help text.
	Help string `toml:"help" yaml:"help"`

	// AlwaysActive lets the handler fire while the session is paused.
	AlwaysActive bool `toml:"always_active" yaml:"always_active"`

	// Match lists literal field values the event must carry. Field
	// order in the file is not significant; matching is a conjunction.
	Match map[string]any `toml:"match" yaml:"match"`
}

// file is the top-level document shape.
type file struct {
	Bindings []Binding `toml:"binding" yaml:"bindings"`
}

// Load reads bindings from path, picking the format by extension
// (.toml, .yaml, .yml). A missing file is not an error and yields no
// bindings.
func Load(path string) ([]Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading bindings file %s: %w", path, err)
	}
	switch filepath.Ext(path) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ParseTOML decodes bindings from TOML.
func ParseTOML(data []byte) ([]Binding, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing TOML bindings: %w", err)
	}
	return f.Bindings, nil
}

// ParseYAML decodes bindings from YAML.
func ParseYAML(data []byte) ([]Binding, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing YAML bindings: %w", err)
	}
	return f.Bindings, nil
}

// ActionSet maps binding action names to implementations.
type ActionSet map[string]session.Action

// Apply registers the bindings on m in file order and returns the
// created handlers. On any error the handlers registered so far are
// removed again, leaving the registry as it was.
func Apply(m *session.Manager, bindings []Binding, actions ActionSet) ([]*session.Handler, error) {
	var handlers []*session.Handler
	rollback := func() {
		for _, h := range handlers {
			m.RemoveHandler(h)
		}
	}

	for i, b := range bindings {
		if b.Event == "" {
			rollback()
			return nil, fmt.Errorf("binding %d: %w", i, ErrMissingEvent)
		}
		act, ok := actions[b.Action]
		if !ok {
			rollback()
			return nil, fmt.Errorf("binding %d (%s): %w: %q", i, b.Event, ErrUnknownAction, b.Action)
		}

		var opts []session.HandlerOption
		if b.Help != "" {
			opts = append(opts, session.WithHelp(b.Help))
		}
		if b.AlwaysActive {
			opts = append(opts, session.WithAlwaysActive())
		}

		h := m.AddHandler(event.Type(b.Event), session.Act(act), filtersFor(b.Match), opts...)
		handlers = append(handlers, h)
	}
	return handlers, nil
}

// filtersFor builds literal filters from a binding's match table.
// Field names are sorted so the stored filter order is deterministic.
func filtersFor(match map[string]any) event.Filters {
	if len(match) == 0 {
		return nil
	}
	names := make([]string, 0, len(match))
	for name := range match {
		names = append(names, name)
	}
	sort.Strings(names)

	filters := make(event.Filters, 0, len(names))
	for _, name := range names {
		filters = append(filters, event.On(name, event.Equals(match[name])))
	}
	return filters
}
