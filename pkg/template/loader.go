// Package template loads widget template documents from JSON or YAML
// sources into the generic tree shape the binding engine consumes.
package template

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store keeps the parsed template documents keyed by name. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	templates map[string]any
}

// LoadFS walks the provided filesystem and parses every JSON/YAML template
// file. Templates are keyed by their path with the extension removed. When
// fsys is nil or holds no template files, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{templates: make(map[string]any)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", path, err)
		}

		doc, err := Parse(data, path)
		if err != nil {
			return err
		}

		name := templateName(path)
		if _, exists := store.templates[name]; exists {
			return fmt.Errorf("template: duplicate template %q (file %s)", name, path)
		}
		store.templates[name] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// LoadFile reads and parses a single template document from disk.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a template document from JSON or YAML bytes. The result is
// normalised into the document model shapes: string-keyed objects, []any
// arrays, and plain scalars.
func Parse(data []byte, source string) (any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("template: file %s is empty", source)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err == nil {
		return normalize(doc), nil
	}

	doc = nil
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return normalize(doc), nil
	}

	return nil, fmt.Errorf("template: parse %s: invalid JSON or YAML", source)
}

// Template returns the document stored under the given name.
func (s *Store) Template(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	doc, ok := s.templates[name]
	return doc, ok
}

// Names returns the stored template names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.templates))
	for name := range s.templates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds any templates.
func (s *Store) Empty() bool {
	return s == nil || len(s.templates) == 0
}

// normalize coerces decoder output into the document model. yaml.v3 can
// produce map[any]any for mappings with non-string keys; such keys are
// stringified with fmt to keep the tree addressable.
func normalize(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = normalize(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[fmt.Sprint(key)] = normalize(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = normalize(child)
		}
		return out
	default:
		return node
	}
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func templateName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext)
}
