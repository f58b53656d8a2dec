package binding

// Structural annotation attributes recognised on template nodes.
const (
	attrID       = "id"
	attrName     = "name"
	attrEditable = "editable"
	attrNames    = "names"
	attrType     = "type"
	attrKey      = "key"
)

const componentButton = "button"

// valueKeys lists the value-bearing attribute keys in detection order. A
// node attribute outside this vocabulary never produces a heuristic
// binding.
var valueKeys = []string{
	"value", "text", "title", "label", "caption", "description", "body",
	"content", "heading", "subtitle", "alt", "src", "href", "url",
	"icon", "iconStart", "iconEnd",
}

// sampleFallbackKeys is the order in which attributes are probed when
// capturing a sample for a freshly registered binding, after the
// triggering attribute itself.
var sampleFallbackKeys = []string{
	"value", "text", "label", "alt", "src", "url", "href",
	"icon", "iconStart", "iconEnd",
}

// writeKeys is the preference order used when choosing which attribute of a
// node receives a value during write-back.
var writeKeys = []string{
	"value", "text", "label", "title", "body", "content", "heading",
	"subtitle", "description", "caption", "alt", "src", "href", "url",
	"icon", "iconStart", "iconEnd",
}

// buttonLabelKeys map straight to the button's base identifier.
var buttonLabelKeys = []string{"label", "text", "title", "value"}

// buttonIconKeys produce a ".icon"/".icon_end" suffixed identifier.
var buttonIconKeys = []string{"icon", "iconStart", "iconEnd"}

// buttonMirrorKeys are the write targets that keep a button's label and
// text attributes in sync after write-back.
var buttonMirrorKeys = []string{"label", "text", "title", "value", "content", "body"}

// typeAliases names the component kinds whose content attributes collapse
// to a single well-known identifier.
var typeAliases = map[string]string{
	"title":    "title",
	"subtitle": "subtitle",
	"heading":  "heading",
	"text":     "text",
	"caption":  "caption",
	"markdown": "markdown",
	"badge":    "badge",
}

// contentKeys are the attributes treated as "the content" of an aliased
// component kind.
var contentKeys = []string{"value", "text", "title", "label", "content", "body"}

// linkKeys are the media/link attributes that keep their key as an
// identifier suffix on aliased component kinds. href is normalised to url.
var linkKeys = []string{"src", "href", "url", "alt"}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// IsButtonMirrorKey reports whether writing key on a button node should
// also refresh its label/text attributes.
func IsButtonMirrorKey(key string) bool {
	return containsKey(buttonMirrorKeys, key)
}

// WriteKeys returns the write-back attribute preference order.
func WriteKeys() []string {
	out := make([]string, len(writeKeys))
	copy(out, writeKeys)
	return out
}
