package document

import "sort"

// VisitFunc is invoked once per object node during a walk, together with the
// exact path from the root. The path slice is reused between visits; callers
// that retain it must Clone it first.
type VisitFunc func(path Path, node Object)

// Walk traverses the document depth-first in pre-order: a node is visited
// before any of its descendants. Object attributes are walked in sorted key
// order so traversal is deterministic; array elements are walked in
// sequence. Documents are trees, so no node is visited twice.
func Walk(root any, visit VisitFunc) {
	if visit == nil {
		return
	}
	walkNode(root, make(Path, 0, 16), visit)
}

func walkNode(node any, path Path, visit VisitFunc) {
	switch v := node.(type) {
	case Object:
		visit(path, v)
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			walkNode(v[key], append(path, KeyStep(key)), visit)
		}
	case Array:
		for i, child := range v {
			walkNode(child, append(path, IndexStep(i)), visit)
		}
	}
}
