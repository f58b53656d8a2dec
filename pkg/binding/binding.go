// Package binding discovers the value-bearing slots of a template document
// and assigns each one a stable, human-readable identifier.
package binding

import (
	"sort"

	"github.com/goliatone/go-widgetbind/pkg/document"
	"github.com/goliatone/go-widgetbind/pkg/values"
)

// Binding describes one value-bearing slot discovered during collection.
type Binding struct {
	// Identifier is the unique name callers use to address the slot.
	Identifier string `json:"identifier"`
	// Path locates the owning node in the tree the binding was collected
	// from. It is a weak reference; see document.Path.
	Path document.Path `json:"path"`
	// ComponentType carries the node's type attribute when present.
	ComponentType string `json:"componentType,omitempty"`
	// ValueKey is the attribute that supplied the sample, preferred again
	// at write-back time.
	ValueKey string `json:"valueKey,omitempty"`
	// Sample is the preview value captured at collection time. A zero
	// sample means no usable attribute was found.
	Sample values.Value `json:"sample"`
	// Manual marks bindings that came from an explicit id/editable/name
	// annotation rather than a recognised value attribute.
	Manual bool `json:"manual,omitempty"`
}

// Map indexes bindings by identifier. Identifiers are unique; once an
// identifier is registered it is never overwritten for the remainder of a
// collection pass.
type Map map[string]Binding

// Identifiers returns the registered identifiers in sorted order.
func (m Map) Identifiers() []string {
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
