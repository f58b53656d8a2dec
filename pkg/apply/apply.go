// Package apply merges a sanitized value map back into a fresh copy of a
// template document. The input document is never modified; identifiers
// without a matching slot are ignored without error.
package apply

import (
	"github.com/goliatone/go-widgetbind/pkg/binding"
	"github.com/goliatone/go-widgetbind/pkg/document"
	"github.com/goliatone/go-widgetbind/pkg/values"
)

// Apply sanitizes raw, deep-clones the document, satisfies manually
// annotated nodes by re-walking the clone, and resolves whatever is left
// through the supplied binding map's recorded paths. Path resolution
// failures (structural drift between the binding map and the document) are
// skipped silently; the only error that propagates is a *document.CloneError
// when the input tree violates the document model.
//
// Re-applying the same values to the same document and binding map is
// idempotent. A nil binding map disables the path-resolution pass without
// affecting manual matches.
func Apply(doc any, raw map[string]any, bindings binding.Map) (any, error) {
	vals := values.Sanitize(raw)

	clone, err := document.Clone(doc)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return clone, nil
	}

	matched := make(map[string]bool, len(vals))
	document.Walk(clone, func(path document.Path, node document.Object) {
		applyManual(node, vals, bindings, matched)
	})

	for _, id := range bindings.Identifiers() {
		if matched[id] {
			continue
		}
		value, ok := vals[id]
		if !ok {
			continue
		}
		b := bindings[id]
		target, ok := document.Resolve(clone, b.Path)
		if !ok {
			continue
		}
		node, ok := target.(document.Object)
		if !ok {
			continue
		}
		writeValue(node, b.ValueKey, value)
		matched[id] = true
	}

	return clone, nil
}

// applyManual mirrors the collector's manual steps: id, editable.name,
// editable.names, then name. Each identifier is matched at most once per
// call; editable.names matches collapse into a single array write.
func applyManual(node document.Object, vals values.Map, bindings binding.Map, matched map[string]bool) {
	if id, ok := node["id"].(string); ok && id != "" {
		writeMatch(node, id, vals, bindings, matched)
	}

	if editable, ok := node["editable"].(document.Object); ok {
		if name, ok := editable["name"].(string); ok && name != "" {
			writeMatch(node, name, vals, bindings, matched)
		}
		if names := binding.EditableNames(editable["names"]); len(names) > 0 {
			writeNames(node, names, vals, matched)
		}
	}

	if name, ok := node["name"].(string); ok && name != "" {
		writeMatch(node, name, vals, bindings, matched)
	}
}

func writeMatch(node document.Object, identifier string, vals values.Map, bindings binding.Map, matched map[string]bool) {
	if matched[identifier] {
		return
	}
	value, ok := vals[identifier]
	if !ok {
		return
	}
	writeValue(node, bindings[identifier].ValueKey, value)
	matched[identifier] = true
}

// writeNames accumulates every matched editable.names value, in declaration
// order, into one array written at the node's preferred attribute.
func writeNames(node document.Object, names []string, vals values.Map, matched map[string]bool) {
	var items []string
	hit := false
	for _, name := range names {
		if matched[name] {
			continue
		}
		value, ok := vals[name]
		if !ok {
			continue
		}
		items = append(items, value.Strings()...)
		matched[name] = true
		hit = true
	}
	if !hit {
		return
	}

	key := writeKey(node, "")
	arr := make(document.Array, len(items))
	for i, item := range items {
		arr[i] = item
	}
	node[key] = arr
}

// writeValue stores the value at the node's preferred attribute. String
// values written to a button's label-like attributes are mirrored into its
// label and text attributes so both commonly rendered fields stay
// consistent.
func writeValue(node document.Object, preferred string, value values.Value) {
	key := writeKey(node, preferred)

	if s, ok := value.StringValue(); ok {
		node[key] = s
		mirrorButton(node, key, s)
		return
	}
	if list, ok := value.ListValue(); ok {
		arr := make(document.Array, len(list))
		for i, item := range list {
			arr[i] = item
		}
		node[key] = arr
	}
}

// writeKey picks the attribute that receives a value: the recorded value
// key when it still exists on the node, else the first present key from
// the write preference order, else "value". A recorded key that has
// drifted off the node deliberately falls through to the generic list.
func writeKey(node document.Object, preferred string) string {
	if preferred != "" {
		if _, ok := node[preferred]; ok {
			return preferred
		}
	}
	for _, key := range binding.WriteKeys() {
		if _, ok := node[key]; ok {
			return key
		}
	}
	return "value"
}

func mirrorButton(node document.Object, key, value string) {
	if componentType, _ := node["type"].(string); componentType != "button" {
		return
	}
	if !binding.IsButtonMirrorKey(key) {
		return
	}
	for _, mirror := range []string{"label", "text"} {
		if mirror == key {
			continue
		}
		if _, ok := node[mirror]; ok {
			node[mirror] = value
		}
	}
}
