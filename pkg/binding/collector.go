package binding

import (
	"strings"

	"github.com/goliatone/go-widgetbind/pkg/document"
)

// Collect walks the document and registers every discoverable binding.
// Manual annotations (id, editable.name, editable.names, name) are handled
// first at each node; recognised value-bearing attributes only produce
// heuristic bindings on nodes that carry no manual annotation of their own.
func Collect(doc any) Map {
	bindings := make(Map)
	document.Walk(doc, func(path document.Path, node document.Object) {
		collectNode(bindings, path, node)
	})
	return bindings
}

func collectNode(bindings Map, path document.Path, node document.Object) {
	manual := collectManual(bindings, path, node)
	if manual {
		return
	}

	for _, key := range valueKeys {
		raw, ok := node[key]
		if !ok || !heuristicCandidate(raw) {
			continue
		}
		identifier := synthesize(bindings, node, key, path)
		register(bindings, identifier, path, node, key, false)
	}
}

// collectManual registers the node's explicit annotations and reports
// whether any manual binding now addresses this exact path.
func collectManual(bindings Map, path document.Path, node document.Object) bool {
	manual := false

	if id, ok := node[attrID].(string); ok && strings.TrimSpace(id) != "" {
		manual = register(bindings, id, path, node, "", true) || manual
	}

	if editable, ok := node[attrEditable].(document.Object); ok {
		if name, ok := editable[attrName].(string); ok && strings.TrimSpace(name) != "" {
			manual = register(bindings, name, path, node, "", true) || manual
		}
		for _, name := range EditableNames(editable[attrNames]) {
			manual = register(bindings, name, path, node, "", true) || manual
		}
	}

	if name, ok := node[attrName].(string); ok && strings.TrimSpace(name) != "" {
		manual = register(bindings, name, path, node, "", true) || manual
	}

	return manual
}

// EditableNames normalises the editable.names annotation into a list of
// identifiers: a single string, or an array of strings with non-string
// elements ignored.
func EditableNames(raw any) []string {
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []string:
		out := make([]string, 0, len(v))
		for _, name := range v {
			if strings.TrimSpace(name) != "" {
				out = append(out, name)
			}
		}
		return out
	case document.Array:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if name, ok := item.(string); ok && strings.TrimSpace(name) != "" {
				out = append(out, name)
			}
		}
		return out
	default:
		return nil
	}
}

// register records a binding unless the identifier is already taken. It
// reports whether the identifier now addresses this exact path, so callers
// can tell re-registration at the same node apart from a genuine skip.
func register(bindings Map, identifier string, path document.Path, node document.Object, triggerKey string, manual bool) bool {
	if existing, ok := bindings[identifier]; ok {
		return existing.Path.Equal(path)
	}

	sample, valueKey := captureSample(node, triggerKey)
	componentType, _ := node[attrType].(string)

	bindings[identifier] = Binding{
		Identifier:    identifier,
		Path:          path.Clone(),
		ComponentType: componentType,
		ValueKey:      valueKey,
		Sample:        sample,
		Manual:        manual,
	}
	return true
}

// heuristicCandidate reports whether an attribute value can anchor a
// heuristic binding: any scalar, or an array holding at least one scalar.
func heuristicCandidate(raw any) bool {
	if document.IsScalar(raw) {
		return true
	}
	arr, ok := raw.(document.Array)
	if !ok {
		return false
	}
	for _, item := range arr {
		if document.IsScalar(item) {
			return true
		}
	}
	return false
}
