// Package event defines the event model for the toolkit: opaque type
// tags, field-addressable event records, and the matchers and filters
// that decide whether a registered handler applies to an incoming
// event.
//
// Events are produced by a host adapter (see the host package) and
// consumed by a session's dispatch engine (see the session package).
// The core never interprets field values; it only reads them by name
// and hands them to matchers.
//
// # Matchers
//
// A matcher is either a literal value the field must equal, or a
// predicate the field's value must satisfy:
//
//	event.Equals(tcell.KeyEnter)
//	event.Where(func(v any) bool { r, ok := v.(rune); return ok && unicode.IsDigit(r) })
//	event.OneOf(tcell.KeyUp, tcell.KeyDown)
//
// When an event does not carry a filtered field, the matcher is
// evaluated against its own fallback value: a literal matcher falls
// back to the literal (and therefore matches trivially), while a
// predicate matcher is invoked with the predicate itself as the
// argument.
package event
