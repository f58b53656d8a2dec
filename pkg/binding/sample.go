package binding

import (
	"github.com/goliatone/go-widgetbind/pkg/document"
	"github.com/goliatone/go-widgetbind/pkg/values"
)

// BuildSample projects a binding map into the identifier → preview-value
// table consumed by authoring layers. When bindings is nil the map is
// collected from the document first; key sets of the two always match.
// Bindings without a usable sample surface as empty strings.
func BuildSample(doc any, bindings Map) values.Map {
	if bindings == nil {
		bindings = Collect(doc)
	}
	out := make(values.Map, len(bindings))
	for id, b := range bindings {
		if b.Sample.IsZero() {
			out[id] = values.String("")
			continue
		}
		out[id] = b.Sample
	}
	return out
}

// captureSample extracts the preview value for a new binding. The
// triggering attribute is probed first, then the fallback keys in order;
// the first attribute holding a stringifiable scalar or an array with at
// least one stringifiable element wins. Samples read off icon attributes
// are scrubbed of unsafe markup.
func captureSample(node document.Object, triggerKey string) (values.Value, string) {
	keys := sampleFallbackKeys
	if triggerKey != "" {
		keys = append([]string{triggerKey}, sampleFallbackKeys...)
	}

	for _, key := range keys {
		raw, ok := node[key]
		if !ok {
			continue
		}
		sample, ok := extractSample(raw)
		if !ok {
			continue
		}
		if containsKey(buttonIconKeys, key) {
			sample = scrubSampleMarkup(sample)
		}
		return sample, key
	}

	return values.Value{}, triggerKey
}

func extractSample(raw any) (values.Value, bool) {
	if s, ok := document.ScalarString(raw); ok {
		return values.String(s), true
	}
	arr, ok := raw.(document.Array)
	if !ok {
		return values.Value{}, false
	}
	items := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := document.ScalarString(item); ok {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return values.Value{}, false
	}
	return values.List(items), true
}
