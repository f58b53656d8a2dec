package document

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Step addresses one level of descent: either an object attribute key or an
// array index.
type Step struct {
	key   string
	index int
	array bool
}

// KeyStep builds a step that descends into an object attribute.
func KeyStep(key string) Step {
	return Step{key: key}
}

// IndexStep builds a step that descends into an array element.
func IndexStep(index int) Step {
	return Step{index: index, array: true}
}

// IsIndex reports whether the step addresses an array element.
func (s Step) IsIndex() bool {
	return s.array
}

// Key returns the attribute key for object steps; empty for index steps.
func (s Step) Key() string {
	return s.key
}

// Index returns the element index for array steps.
func (s Step) Index() int {
	return s.index
}

// String renders the step as a path segment.
func (s Step) String() string {
	if s.array {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path is the ordered sequence of steps from a document root to a node. A
// Path is a weak reference: it is only guaranteed valid against the exact
// tree instance it was computed from, and must be re-resolved before use
// against any other tree.
type Path []Step

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether both paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins the path segments with dots. Array indices render as decimal
// digits.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	segments := make([]string, len(p))
	for i, step := range p {
		segments[i] = step.String()
	}
	return strings.Join(segments, ".")
}

// MarshalJSON renders the path in its dotted string form.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Resolve follows the path from root, checking key existence and index
// bounds at every step. It reports false as soon as any step fails to
// match the tree, which is expected when the path was computed against a
// structurally different document.
func Resolve(root any, path Path) (any, bool) {
	node := root
	for _, step := range path {
		if step.IsIndex() {
			arr, ok := node.(Array)
			if !ok {
				return nil, false
			}
			idx := step.Index()
			if idx < 0 || idx >= len(arr) {
				return nil, false
			}
			node = arr[idx]
			continue
		}

		obj, ok := node.(Object)
		if !ok {
			return nil, false
		}
		child, ok := obj[step.Key()]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}
