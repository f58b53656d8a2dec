// Package document models widget templates as generic trees of objects,
// arrays and scalars, and provides the traversal, cloning and path
// primitives the binding engine is built on. No component schema is
// assumed anywhere in the package.
package document

import "strconv"

// Object is a mapping node inside a template document. Attribute keys are
// arbitrary; no schema is assumed.
type Object = map[string]any

// Array is a sequence node inside a template document.
type Array = []any

// Kind discriminates the node shapes the document model recognises.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// KindOf classifies a node. Values outside the document model (structs,
// channels, typed maps, ...) report KindInvalid.
func KindOf(node any) Kind {
	switch node.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case Array:
		return KindArray
	case Object:
		return KindObject
	default:
		return KindInvalid
	}
}

// IsScalar reports whether node is a leaf value: string, number, boolean or
// null.
func IsScalar(node any) bool {
	switch KindOf(node) {
	case KindNull, KindString, KindNumber, KindBool:
		return true
	default:
		return false
	}
}

// ScalarString renders a string, number or boolean node as its canonical
// string form. Numbers use decimal notation, booleans become "true"/"false".
// Null and non-scalar nodes report false.
func ScalarString(node any) (string, bool) {
	switch v := node.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return "", false
	}
}
