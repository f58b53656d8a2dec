package values

import (
	"strings"

	"github.com/goliatone/go-widgetbind/pkg/document"
)

// Sanitize normalizes an arbitrary caller-supplied record into the shape
// the engine accepts. Keys are trimmed and entries with empty keys are
// dropped. String values pass through untouched, numbers and booleans are
// stringified, and array values keep only their string/number/boolean
// elements (stringified, possibly leaving an empty list). Entries holding
// objects, nil, or anything else are dropped silently.
func Sanitize(raw map[string]any) Map {
	out := make(Map, len(raw))
	for key, value := range raw {
		id := strings.TrimSpace(key)
		if id == "" {
			continue
		}
		sanitized, ok := sanitizeValue(value)
		if !ok {
			continue
		}
		out[id] = sanitized
	}
	return out
}

func sanitizeValue(value any) (Value, bool) {
	switch v := value.(type) {
	case string:
		return String(v), true
	case []string:
		return List(v), true
	case document.Array:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := document.ScalarString(item); ok {
				items = append(items, s)
			}
		}
		return List(items), true
	default:
		if s, ok := document.ScalarString(v); ok {
			return String(s), true
		}
		return Value{}, false
	}
}
