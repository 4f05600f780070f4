package event

import (
	"fmt"
	"sort"
	"strings"
)

// Type identifies a class of host event. The core treats it as an
// opaque key; any tag is accepted at registration time, so hosts may
// introduce their own or synthesize new ones.
type Type string

// Canonical tags produced by the bundled host adapters. Hosts are free
// to emit additional tags of their own.
const (
	// KeyDown is emitted when a key is pressed.
	KeyDown Type = "key.down"

	// KeyUp is emitted when a key is released. Terminal hosts cannot
	// observe releases and never emit it; it exists for hosts that can.
	KeyUp Type = "key.up"

	// Quit is emitted when the host asks the session to shut down.
	Quit Type = "window.quit"

	// Resize is emitted when the host surface changes size.
	Resize Type = "window.resize"
)

// Standard field names used by the bundled host adapters.
const (
	// FieldKey holds the key code of a key event.
	FieldKey = "key"

	// FieldRune holds the character of a printable key event.
	FieldRune = "rune"

	// FieldMod holds the modifier mask of a key event.
	FieldMod = "mod"

	// FieldWidth and FieldHeight hold the new surface size of a
	// resize event.
	FieldWidth  = "width"
	FieldHeight = "height"
)

// Event is one decoded host event. The dispatch engine reads named
// fields off it and nothing else.
type Event interface {
	// Type returns the event's type tag.
	Type() Type

	// Field returns the named field's value and whether the event
	// carries that field.
	Field(name string) (any, bool)
}

// Record is a concrete Event backed by named fields.
type Record struct {
	typ    Type
	fields map[string]any
}

// NewRecord creates a record with the given type tag and fields. The
// field map is copied; nil is accepted for events without fields.
func NewRecord(typ Type, fields map[string]any) Record {
	r := Record{typ: typ}
	if len(fields) > 0 {
		r.fields = make(map[string]any, len(fields))
		for k, v := range fields {
			r.fields[k] = v
		}
	}
	return r
}

// Type returns the record's type tag.
func (r Record) Type() Type {
	return r.typ
}

// Field returns the named field's value and whether it is present.
func (r Record) Field(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Fields returns a copy of the record's fields.
func (r Record) Fields() map[string]any {
	if len(r.fields) == 0 {
		return nil
	}
	fields := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		fields[k] = v
	}
	return fields
}

// String returns a human-readable description of the record.
func (r Record) String() string {
	if len(r.fields) == 0 {
		return string(r.typ)
	}
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(string(r.typ))
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", name, r.fields[name])
	}
	b.WriteByte('}')
	return b.String()
}
