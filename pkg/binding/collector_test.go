package binding_test

import (
	"testing"

	"github.com/goliatone/go-widgetbind/pkg/binding"
	"github.com/goliatone/go-widgetbind/pkg/document"
)

func TestCollect_ManualID(t *testing.T) {
	doc := document.Object{"id": "title", "value": "Hello"}

	bindings := binding.Collect(doc)
	if len(bindings) != 1 {
		t.Fatalf("expected a single binding, got %v", bindings.Identifiers())
	}

	b, ok := bindings["title"]
	if !ok {
		t.Fatalf("binding title missing: %v", bindings.Identifiers())
	}
	if !b.Manual {
		t.Fatalf("id annotation should register a manual binding")
	}
	if sample, _ := b.Sample.StringValue(); sample != "Hello" {
		t.Fatalf("sample mismatch: %q", sample)
	}
	if b.ValueKey != "value" {
		t.Fatalf("value key mismatch: %q", b.ValueKey)
	}
}

func TestCollect_ManualSuppressesHeuristics(t *testing.T) {
	doc := document.Object{
		"id":    "hero",
		"value": "x",
		"text":  "y",
		"title": "z",
	}

	bindings := binding.Collect(doc)
	if got := bindings.Identifiers(); len(got) != 1 || got[0] != "hero" {
		t.Fatalf("manual annotation should suppress heuristics, got %v", got)
	}
}

func TestCollect_EditableAnnotations(t *testing.T) {
	doc := document.Object{
		"editable": document.Object{
			"name":  "headline",
			"names": document.Array{"first", 7, "second"},
		},
		"value": "V",
	}

	bindings := binding.Collect(doc)
	for _, id := range []string{"headline", "first", "second"} {
		b, ok := bindings[id]
		if !ok {
			t.Fatalf("binding %q missing: %v", id, bindings.Identifiers())
		}
		if !b.Manual {
			t.Fatalf("binding %q should be manual", id)
		}
		if sample, _ := b.Sample.StringValue(); sample != "V" {
			t.Fatalf("binding %q sample mismatch: %q", id, sample)
		}
	}
	if len(bindings) != 3 {
		t.Fatalf("unexpected extra bindings: %v", bindings.Identifiers())
	}
}

func TestCollect_EditableNamesSingleString(t *testing.T) {
	doc := document.Object{
		"editable": document.Object{"names": "solo"},
		"text":     "sample",
	}

	bindings := binding.Collect(doc)
	if _, ok := bindings["solo"]; !ok {
		t.Fatalf("single-string names annotation not registered: %v", bindings.Identifiers())
	}
}

func TestCollect_FirstRegistrationWins(t *testing.T) {
	doc := document.Array{
		document.Object{"id": "slot", "value": "first"},
		document.Object{"id": "slot", "value": "second"},
	}

	bindings := binding.Collect(doc)
	b := bindings["slot"]
	if sample, _ := b.Sample.StringValue(); sample != "first" {
		t.Fatalf("first registration should win, got sample %q", sample)
	}
	if b.Path.String() != "0" {
		t.Fatalf("binding should keep the first node's path, got %q", b.Path.String())
	}
}

func TestCollect_HeuristicOnPlainNode(t *testing.T) {
	doc := document.Object{
		"widget": document.Object{"description": "fine print"},
	}

	bindings := binding.Collect(doc)
	b, ok := bindings["widget.description"]
	if !ok {
		t.Fatalf("expected synthetic path identifier, got %v", bindings.Identifiers())
	}
	if b.Manual {
		t.Fatalf("heuristic binding should not be marked manual")
	}
	if b.Path.String() != "widget" {
		t.Fatalf("path mismatch: %q", b.Path.String())
	}
}

func TestCollect_SampleFallbackOrder(t *testing.T) {
	// No value/text/label present: the fallback list reaches alt before src.
	doc := document.Object{
		"id":  "pic",
		"src": "/img.png",
		"alt": "A picture",
	}

	bindings := binding.Collect(doc)
	b := bindings["pic"]
	if sample, _ := b.Sample.StringValue(); sample != "A picture" {
		t.Fatalf("fallback order should prefer alt, got %q", sample)
	}
	if b.ValueKey != "alt" {
		t.Fatalf("value key should record the sampled attribute, got %q", b.ValueKey)
	}
}

func TestCollect_NoSampleStillRegisters(t *testing.T) {
	doc := document.Object{
		"id":       "box",
		"children": document.Array{document.Object{}},
	}

	bindings := binding.Collect(doc)
	b, ok := bindings["box"]
	if !ok {
		t.Fatalf("binding without sample should still register")
	}
	if !b.Sample.IsZero() {
		t.Fatalf("expected empty sample, got %#v", b.Sample)
	}
	if b.ValueKey != "" {
		t.Fatalf("value key should stay empty without a sample, got %q", b.ValueKey)
	}
}

func TestCollect_ArraySample(t *testing.T) {
	doc := document.Object{
		"type":  "badge",
		"value": document.Array{"new", 3, document.Object{}},
	}

	bindings := binding.Collect(doc)
	b := bindings["badge"]
	list, ok := b.Sample.ListValue()
	if !ok {
		t.Fatalf("expected list sample, got %#v", b.Sample)
	}
	if len(list) != 2 || list[0] != "new" || list[1] != "3" {
		t.Fatalf("array sample should keep stringified scalars: %#v", list)
	}
}

func TestCollect_ComponentType(t *testing.T) {
	doc := document.Object{"type": "button", "key": "go", "label": "Go"}

	b := binding.Collect(doc)["go"]
	if b.ComponentType != "button" {
		t.Fatalf("component type not recorded: %q", b.ComponentType)
	}
}

func TestBuildSample_KeyParity(t *testing.T) {
	doc := document.Object{
		"header": document.Object{"type": "title", "value": "Welcome"},
		"hero":   document.Object{"id": "hero", "src": "/hero.png"},
		"footer": document.Object{"type": "button", "key": "close", "label": "Close"},
		"empty":  document.Object{"id": "empty"},
	}

	bindings := binding.Collect(doc)
	samples := binding.BuildSample(doc, bindings)

	if len(samples) != len(bindings) {
		t.Fatalf("sample keys %d != binding keys %d", len(samples), len(bindings))
	}
	for _, id := range bindings.Identifiers() {
		if _, ok := samples[id]; !ok {
			t.Fatalf("sample missing for binding %q", id)
		}
	}

	if empty, _ := samples["empty"].StringValue(); empty != "" {
		t.Fatalf("nil sample should project to empty string, got %q", empty)
	}
}

func TestBuildSample_NilBindingsCollects(t *testing.T) {
	doc := document.Object{"id": "title", "value": "Hello"}

	samples := binding.BuildSample(doc, nil)
	if sample, _ := samples["title"].StringValue(); sample != "Hello" {
		t.Fatalf("expected collected sample, got %q", sample)
	}
}
