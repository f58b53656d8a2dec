package binding

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-widgetbind/pkg/values"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// scrubSampleMarkup strips unsafe markup from icon samples. Icon attributes
// commonly carry inline SVG; plain icon names pass through untouched.
func scrubSampleMarkup(sample values.Value) values.Value {
	if s, ok := sample.StringValue(); ok {
		return values.String(scrubMarkup(s))
	}
	if list, ok := sample.ListValue(); ok {
		for i, item := range list {
			list[i] = scrubMarkup(item)
		}
		return values.List(list)
	}
	return sample
}

func scrubMarkup(raw string) string {
	if !strings.Contains(raw, "<") {
		return raw
	}
	return strings.TrimSpace(markupSanitizer().Sanitize(raw))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline",
			"polygon", "ellipse", "title", "desc", "defs", "use",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "aria-hidden", "role", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
			).OnElements(el)
		}

		policy.AllowAttrs("href", "xlink:href").OnElements("use")
		policy.AllowAttrs("id").OnElements("defs", "g")

		markupPolicy = policy
	})
	return markupPolicy
}
