package event

// Filter pairs an event field name with the matcher its value must
// satisfy.
type Filter struct {
	// Field is the event field read by name.
	Field string

	// Matcher is the test applied to the field's value. A nil matcher
	// is satisfied by anything.
	Matcher Matcher
}

// On is shorthand for constructing a single filter.
func On(field string, m Matcher) Filter {
	return Filter{Field: field, Matcher: m}
}

// Filters is an ordered list of per-field filters. Matching is a pure
// conjunction, so order never changes the outcome; the order is
// preserved for inspection and editing.
type Filters []Filter

// Matches reports whether ev satisfies every filter. An empty filter
// list matches any event. A field the event does not carry is
// evaluated against the matcher's own fallback value.
func (fs Filters) Matches(ev Event) bool {
	for _, f := range fs {
		if f.Matcher == nil {
			continue
		}
		actual, ok := ev.Field(f.Field)
		if !ok {
			actual = f.Matcher.Fallback()
		}
		if !f.Matcher.Match(actual) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the filter list.
func (fs Filters) Clone() Filters {
	if fs == nil {
		return nil
	}
	out := make(Filters, len(fs))
	copy(out, fs)
	return out
}
