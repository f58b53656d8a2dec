package document

import "fmt"

// CloneError reports a value inside the tree that is not part of the
// document model and therefore cannot be copied. It is the only failure a
// structural clone can produce.
type CloneError struct {
	Path  Path
	Value any
}

func (e *CloneError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("document: cannot clone value of type %T at document root", e.Value)
	}
	return fmt.Sprintf("document: cannot clone value of type %T at %q", e.Value, e.Path.String())
}

// Clone produces a deep, fully independent copy of the document. Scalars are
// copied by value; objects and arrays are rebuilt recursively. Any value
// outside the document model surfaces as a *CloneError.
func Clone(node any) (any, error) {
	return cloneNode(node, make(Path, 0, 8))
}

func cloneNode(node any, path Path) (any, error) {
	switch v := node.(type) {
	case Object:
		out := make(Object, len(v))
		for key, child := range v {
			cloned, err := cloneNode(child, append(path, KeyStep(key)))
			if err != nil {
				return nil, err
			}
			out[key] = cloned
		}
		return out, nil
	case Array:
		out := make(Array, len(v))
		for i, child := range v {
			cloned, err := cloneNode(child, append(path, IndexStep(i)))
			if err != nil {
				return nil, err
			}
			out[i] = cloned
		}
		return out, nil
	default:
		if KindOf(node) == KindInvalid {
			return nil, &CloneError{Path: path.Clone(), Value: node}
		}
		return node, nil
	}
}
