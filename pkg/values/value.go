// Package values holds the canonical value shapes the binding engine
// accepts: single strings or lists of strings, keyed by binding identifier.
package values

import "encoding/json"

// Kind discriminates the shapes a sanitized value can take.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindList
)

// Value is a sanitized binding value. The zero Value means "no value" and
// marshals as JSON null.
type Value struct {
	kind Kind
	str  string
	list []string
}

// String wraps a single string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// List wraps a list value. The input slice is copied.
func List(items []string) Value {
	out := make([]string, len(items))
	copy(out, items)
	return Value{kind: KindList, list: out}
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool {
	return v.kind == KindNone
}

// StringValue returns the wrapped string when the value is a single string.
func (v Value) StringValue() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// ListValue returns a copy of the wrapped list when the value is a list.
func (v Value) ListValue() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out, true
}

// Strings flattens the value into its string elements: a single-element
// slice for strings, the full list for lists, nil when absent.
func (v Value) Strings() []string {
	switch v.kind {
	case KindString:
		return []string{v.str}
	case KindList:
		out := make([]string, len(v.list))
		copy(out, v.list)
		return out
	default:
		return nil
	}
}

// Equal reports whether two values have the same shape and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MarshalJSON renders the wrapped value directly: a JSON string, a JSON
// array of strings, or null when absent.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindList:
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

// Map relates binding identifiers to sanitized values.
type Map map[string]Value
