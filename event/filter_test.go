package event

import "testing"

func keyEvent(key any, r any) Record {
	return NewRecord(KeyDown, map[string]any{FieldKey: key, FieldRune: r})
}

func TestFilters_Matches_Empty(t *testing.T) {
	var fs Filters

	// Vacuous conjunction: an empty filter list matches any event of
	// the handler's type, regardless of field values.
	events := []Record{
		keyEvent(13, 'x'),
		NewRecord(KeyDown, nil),
		NewRecord(Quit, nil),
	}
	for _, ev := range events {
		if !fs.Matches(ev) {
			t.Errorf("expected empty filters to match %v", ev)
		}
	}
}

func TestFilters_Matches_Conjunction(t *testing.T) {
	fs := Filters{
		On(FieldKey, Equals(13)),
		On(FieldRune, Equals('x')),
	}

	if !fs.Matches(keyEvent(13, 'x')) {
		t.Error("expected both-pass event to match")
	}
	if fs.Matches(keyEvent(13, 'y')) {
		t.Error("expected event failing the second filter to be rejected")
	}
	if fs.Matches(keyEvent(27, 'x')) {
		t.Error("expected event failing the first filter to be rejected")
	}
}

func TestFilters_Matches_OrderIndependent(t *testing.T) {
	forward := Filters{
		On(FieldKey, Equals(13)),
		On(FieldRune, Equals('x')),
	}
	reversed := Filters{
		On(FieldRune, Equals('x')),
		On(FieldKey, Equals(13)),
	}

	events := []Record{
		keyEvent(13, 'x'),
		keyEvent(13, 'y'),
		keyEvent(27, 'x'),
	}
	for _, ev := range events {
		if forward.Matches(ev) != reversed.Matches(ev) {
			t.Errorf("filter order changed the outcome for %v", ev)
		}
	}
}

func TestFilters_Matches_MissingFieldLiteral(t *testing.T) {
	// A literal filter on a field the event lacks is evaluated against
	// the literal itself and therefore matches trivially.
	fs := Filters{On("button", Equals(2))}

	if !fs.Matches(keyEvent(13, 'x')) {
		t.Error("expected literal filter on a missing field to match trivially")
	}
}

func TestFilters_Matches_MissingFieldPredicate(t *testing.T) {
	// A predicate filter on a missing field still runs, with the
	// predicate itself as the argument.
	var seen any
	called := 0
	fs := Filters{On("button", Where(func(actual any) bool {
		called++
		seen = actual
		_, isInt := actual.(int)
		return isInt
	}))}

	if fs.Matches(keyEvent(13, 'x')) {
		t.Error("expected predicate rejecting its own fallback to fail the match")
	}
	if called != 1 {
		t.Fatalf("expected predicate to run once, ran %d times", called)
	}
	if _, ok := seen.(Predicate); !ok {
		t.Errorf("expected predicate to be evaluated on itself, got %T", seen)
	}

	accepting := Filters{On("button", Where(func(any) bool { return true }))}
	if !accepting.Matches(keyEvent(13, 'x')) {
		t.Error("expected always-true predicate to match on a missing field")
	}
}

func TestFilters_Matches_NilMatcher(t *testing.T) {
	fs := Filters{On(FieldKey, nil)}
	if !fs.Matches(keyEvent(13, 'x')) {
		t.Error("expected nil matcher to be satisfied by anything")
	}
}

func TestFilters_Clone(t *testing.T) {
	fs := Filters{On(FieldKey, Equals(13))}
	cp := fs.Clone()

	cp[0] = On(FieldKey, Equals(27))

	if !fs.Matches(keyEvent(13, 'x')) {
		t.Error("mutating the clone changed the original filter list")
	}

	if Filters(nil).Clone() != nil {
		t.Error("expected nil filters to clone to nil")
	}
}
