package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sightless-ui/sightless/event"
	"github.com/sightless-ui/sightless/session"
)

const tomlBindings = `
[[binding]]
event = "key.down"
action = "quit"
help = "Quit the application."
always_active = true
[binding.match]
key = 27

[[binding]]
event = "key.down"
action = "beep"
`

const yamlBindings = `
bindings:
  - event: key.down
    action: quit
    help: Quit the application.
    always_active: true
    match:
      key: 27
  - event: key.down
    action: beep
`

func keyEvent(key int) event.Record {
	return event.NewRecord(event.KeyDown, map[string]any{event.FieldKey: key})
}

func TestParseTOML(t *testing.T) {
	bindings, err := ParseTOML([]byte(tomlBindings))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}

	b := bindings[0]
	if b.Event != "key.down" || b.Action != "quit" || !b.AlwaysActive {
		t.Errorf("unexpected first binding: %+v", b)
	}
	if b.Help != "Quit the application." {
		t.Errorf("unexpected help: %q", b.Help)
	}
	if len(b.Match) != 1 {
		t.Errorf("expected one match field, got %v", b.Match)
	}
	if bindings[1].Action != "beep" || bindings[1].Match != nil {
		t.Errorf("unexpected second binding: %+v", bindings[1])
	}
}

func TestParseYAML(t *testing.T) {
	bindings, err := ParseYAML([]byte(yamlBindings))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	if bindings[0].Action != "quit" || bindings[1].Action != "beep" {
		t.Errorf("expected file order to be preserved, got %+v", bindings)
	}
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "bindings.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlBindings), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "bindings.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlBindings), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, yamlPath} {
		bindings, err := Load(path)
		if err != nil {
			t.Errorf("Load(%s): unexpected error: %v", path, err)
			continue
		}
		if len(bindings) != 2 {
			t.Errorf("Load(%s): expected 2 bindings, got %d", path, len(bindings))
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	bindings, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected a missing file to be silent, got %v", err)
	}
	if bindings != nil {
		t.Errorf("expected no bindings, got %v", bindings)
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.ini")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestApply(t *testing.T) {
	bindings, err := ParseTOML([]byte(tomlBindings))
	if err != nil {
		t.Fatal(err)
	}

	sess := session.New()
	var calls []string
	actions := ActionSet{
		"quit": session.Do(func() { calls = append(calls, "quit") }),
		"beep": session.Do(func() { calls = append(calls, "beep") }),
	}

	handlers, err := Apply(sess.Manager, bindings, actions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(handlers) != 2 {
		t.Fatalf("expected 2 handlers, got %d", len(handlers))
	}
	if handlers[0].Help() != "Quit the application." {
		t.Errorf("unexpected help: %q", handlers[0].Help())
	}
	if !handlers[0].AlwaysActive() {
		t.Error("expected the first binding to be always-active")
	}

	// TOML integers decode as int64 but still match int key codes.
	sess.HandleEvent(keyEvent(27))
	sess.HandleEvent(keyEvent(13))
	if len(calls) != 2 || calls[0] != "quit" || calls[1] != "beep" {
		t.Errorf("expected quit then beep, got %v", calls)
	}
}

func TestApply_FileOrderIsPrecedence(t *testing.T) {
	bindings, err := ParseTOML([]byte(tomlBindings))
	if err != nil {
		t.Fatal(err)
	}

	sess := session.New()
	var calls []string
	actions := ActionSet{
		"quit": session.Do(func() { calls = append(calls, "quit") }),
		"beep": session.Do(func() { calls = append(calls, "beep") }),
	}
	if _, err := Apply(sess.Manager, bindings, actions); err != nil {
		t.Fatal(err)
	}

	// The catch-all was declared second, so the specific binding wins
	// on its key.
	sess.HandleEvent(keyEvent(27))
	if len(calls) != 1 || calls[0] != "quit" {
		t.Errorf("expected the specific binding to shadow the catch-all, got %v", calls)
	}
}

func TestApply_UnknownActionRollsBack(t *testing.T) {
	bindings, err := ParseTOML([]byte(tomlBindings))
	if err != nil {
		t.Fatal(err)
	}

	sess := session.New()
	actions := ActionSet{"quit": session.Do(func() {})} // "beep" missing

	if _, err := Apply(sess.Manager, bindings, actions); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if sess.Count() != 0 {
		t.Errorf("expected the registry to be rolled back, got %d handlers", sess.Count())
	}
}

func TestApply_MissingEvent(t *testing.T) {
	sess := session.New()
	bindings := []Binding{{Action: "quit"}}
	actions := ActionSet{"quit": session.Do(func() {})}

	if _, err := Apply(sess.Manager, bindings, actions); !errors.Is(err, ErrMissingEvent) {
		t.Errorf("expected ErrMissingEvent, got %v", err)
	}
}
