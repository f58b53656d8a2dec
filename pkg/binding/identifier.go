package binding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-widgetbind/pkg/document"
)

// synthesize derives the identifier for a heuristic binding anchored at the
// given attribute key. When no human-meaningful candidate exists it falls
// back to the dotted path plus the attribute key, and in every case the
// result is made unique against the bindings registered so far.
func synthesize(bindings Map, node document.Object, key string, path document.Path) string {
	candidate := candidateIdentifier(node, key)
	if candidate == "" {
		candidate = syntheticIdentifier(path, key)
	}
	return uniqueIdentifier(bindings, candidate, path)
}

// candidateIdentifier applies the naming rules in order: the button special
// case, known-type aliasing, then the node's own name. An empty return
// means no candidate improves on the synthetic path fallback.
func candidateIdentifier(node document.Object, key string) string {
	if base := buttonBase(node); base != "" {
		switch {
		case containsKey(buttonLabelKeys, key):
			return base
		case key == "iconEnd":
			return base + ".icon_end"
		case containsKey(buttonIconKeys, key):
			return base + ".icon"
		default:
			return base + "." + key
		}
	}

	componentType, _ := node[attrType].(string)
	if alias, ok := typeAliases[componentType]; ok {
		if containsKey(contentKeys, key) {
			return alias
		}
		if containsKey(linkKeys, key) {
			suffix := key
			if suffix == "href" {
				suffix = "url"
			}
			return alias + "." + suffix
		}
	}

	if name, ok := node[attrName].(string); ok && strings.TrimSpace(name) != "" {
		return name
	}

	return ""
}

// buttonBase resolves the base name for a button node: its key attribute
// first, then the id of its click action payload.
func buttonBase(node document.Object) string {
	if componentType, _ := node[attrType].(string); componentType != componentButton {
		return ""
	}
	if key, ok := node[attrKey].(string); ok && strings.TrimSpace(key) != "" {
		return key
	}
	if action, ok := node["onClickAction"].(document.Object); ok {
		if payload, ok := action["payload"].(document.Object); ok {
			if id, ok := payload[attrID].(string); ok && strings.TrimSpace(id) != "" {
				return id
			}
		}
	}
	return ""
}

func syntheticIdentifier(path document.Path, key string) string {
	if len(path) == 0 {
		return key
	}
	return path.String() + "." + key
}

var trailingOrdinal = regexp.MustCompile(`_\d+$`)

// uniqueIdentifier resolves collisions against the bindings registered so
// far. A collision with a binding at the same path is not a conflict: the
// caller's skip logic already covers it. Otherwise any trailing _<digits>
// suffix is treated as a previous dedup ordinal and replaced with the next
// free one.
func uniqueIdentifier(bindings Map, candidate string, path document.Path) string {
	existing, ok := bindings[candidate]
	if !ok || existing.Path.Equal(path) {
		return candidate
	}

	base := trailingOrdinal.ReplaceAllString(candidate, "")
	if base == "" {
		base = candidate
	}
	for n := 2; ; n++ {
		next := base + "_" + strconv.Itoa(n)
		other, ok := bindings[next]
		if !ok || other.Path.Equal(path) {
			return next
		}
	}
}
