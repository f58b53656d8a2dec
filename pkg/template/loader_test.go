package template_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-widgetbind/pkg/template"
)

func TestParse_JSON(t *testing.T) {
	doc, err := template.Parse([]byte(`{"id":"title","value":"Hello"}`), "card.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := map[string]any{"id": "title", "value": "Hello"}
	if diff := cmp.Diff(any(want), doc); diff != "" {
		t.Fatalf("parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_YAML(t *testing.T) {
	data := []byte("type: button\nkey: confirm\nlabel: OK\nitems:\n  - value: 1\n")
	doc, err := template.Parse(data, "card.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected object root, got %T", doc)
	}
	if obj["key"] != "confirm" {
		t.Fatalf("yaml scalar mismatch: %#v", obj)
	}

	items, ok := obj["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("yaml sequence mismatch: %#v", obj["items"])
	}
	if _, ok := items[0].(map[string]any); !ok {
		t.Fatalf("yaml mappings must normalise to string-keyed objects: %T", items[0])
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := template.Parse([]byte("  \n"), "empty.json"); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := template.Parse([]byte("{not json: [nor yaml"), "broken.json"); err == nil {
		t.Fatalf("expected error for unparseable document")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"cards/hero.json":   {Data: []byte(`{"id":"hero","value":"Hi"}`)},
		"cards/footer.yaml": {Data: []byte("type: text\ntext: Bye\n")},
		"README.md":         {Data: []byte("ignored")},
	}

	store, err := template.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if store.Empty() {
		t.Fatalf("expected templates in the store")
	}

	want := []string{"cards/footer", "cards/hero"}
	if diff := cmp.Diff(want, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	doc, ok := store.Template("cards/hero")
	if !ok {
		t.Fatalf("template cards/hero missing")
	}
	if doc.(map[string]any)["id"] != "hero" {
		t.Fatalf("template content mismatch: %#v", doc)
	}
}

func TestLoadFS_DuplicateName(t *testing.T) {
	fsys := fstest.MapFS{
		"card.json": {Data: []byte(`{"id":"a"}`)},
		"card.yaml": {Data: []byte("id: b\n")},
	}

	if _, err := template.LoadFS(fsys); err == nil {
		t.Fatalf("expected duplicate template error")
	}
}

func TestLoadFS_Nil(t *testing.T) {
	store, err := template.LoadFS(nil)
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("nil filesystem should produce an empty store")
	}
}
