// Package widgetbind discovers the value-bearing slots of hierarchical
// widget template documents, captures preview samples for them, and merges
// externally supplied values back into a fresh copy of the template.
//
// The engine is a pure, synchronous library: every entry point is a
// function of its inputs, allocates fresh output, and never mutates the
// supplied document. Concurrent calls need no coordination.
package widgetbind

import (
	"github.com/goliatone/go-widgetbind/pkg/apply"
	"github.com/goliatone/go-widgetbind/pkg/binding"
	"github.com/goliatone/go-widgetbind/pkg/document"
	"github.com/goliatone/go-widgetbind/pkg/values"
)

// Binding describes one discovered slot; alias exported via the root
// package for convenience.
type Binding = binding.Binding

// BindingMap relates identifiers to their bindings.
type BindingMap = binding.Map

// Value is a sanitized slot value: a single string or a list of strings.
type Value = values.Value

// ValueMap relates identifiers to sanitized values.
type ValueMap = values.Map

// CloneError reports a document that violates the document model contract.
type CloneError = document.CloneError

// Collect scans the document and returns its binding map. Identifiers are
// unique across the map; the first registration for an identifier wins.
func Collect(doc any) BindingMap {
	return binding.Collect(doc)
}

// BuildSample derives the identifier → preview-value table for a document.
// Pass a previously collected binding map to reuse it, or nil to collect
// one internally; the returned keys always match Collect's.
func BuildSample(doc any, bindings BindingMap) ValueMap {
	return binding.BuildSample(doc, bindings)
}

// Sanitize normalizes an arbitrary caller-supplied record into the value
// shape Apply accepts. Malformed entries are dropped silently.
func Sanitize(raw map[string]any) ValueMap {
	return values.Sanitize(raw)
}

// Apply returns a populated copy of the document with the sanitized values
// written into its bound slots. The input document is left untouched;
// identifiers that match no slot are ignored. The only error is a
// *CloneError for documents holding values outside the document model.
func Apply(doc any, raw map[string]any, bindings BindingMap) (any, error) {
	return apply.Apply(doc, raw, bindings)
}
