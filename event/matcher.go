package event

import "reflect"

// Matcher decides whether one event field satisfies a handler filter.
type Matcher interface {
	// Match reports whether the field's actual value satisfies the
	// matcher.
	Match(actual any) bool

	// Fallback returns the value used in place of a field the event
	// does not carry.
	Fallback() any
}

// Predicate is a single-argument test applied to a field value.
type Predicate func(actual any) bool

// Equals returns a matcher satisfied when the field equals v.
func Equals(v any) Matcher {
	return equalsMatcher{v: v}
}

type equalsMatcher struct {
	v any
}

func (m equalsMatcher) Match(actual any) bool {
	return valuesEqual(actual, m.v)
}

// Fallback returns the literal itself, so a missing field matches
// trivially.
func (m equalsMatcher) Fallback() any {
	return m.v
}

// Where returns a matcher satisfied when pred returns true for the
// field's value.
func Where(pred Predicate) Matcher {
	return predicateMatcher{pred: pred}
}

type predicateMatcher struct {
	pred Predicate
}

func (m predicateMatcher) Match(actual any) bool {
	return m.pred != nil && m.pred(actual)
}

// Fallback returns the predicate itself: a filter whose field is
// missing from the event still runs the predicate, with the predicate
// as its own argument.
func (m predicateMatcher) Fallback() any {
	return m.pred
}

// OneOf returns a matcher satisfied when the field equals any of the
// given values.
func OneOf(values ...any) Matcher {
	vs := make([]any, len(values))
	copy(vs, values)
	return Where(func(actual any) bool {
		for _, v := range vs {
			if valuesEqual(actual, v) {
				return true
			}
		}
		return false
	})
}

// valuesEqual compares a field value against a literal. Numeric values
// compare by value rather than by Go type, so host key codes match
// literals decoded from configuration files.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if fa, ok := numericValue(a); ok {
		if fb, ok := numericValue(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// numericValue widens any integer or float value to float64.
func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
