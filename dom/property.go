package dom

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"
)

// Element properties which reflect attributes or content.
const (
	PropID          = "id"
	PropClassName   = "className"
	PropTextContent = "textContent"
)

var properties NodeMap[map[string]any]

// SetProperty sets an element property. Properties id and className reflect
// the attributes "id" and "class", textContent replaces the element's
// children. All other properties are kept in a side table which does not
// keep el alive.
func SetProperty(el *html.Node, name string, v any) {
	switch name {
	case PropID:
		SetAttribute(el, "id", Stringify(v))
	case PropClassName:
		SetAttribute(el, "class", Stringify(v))
	case PropTextContent:
		SetTextContent(el, Stringify(v))
	default:
		properties.Update(el, func(old map[string]any, _ bool) (map[string]any, bool) {
			if old == nil {
				old = make(map[string]any)
			}
			old[name] = v
			return old, true
		})
	}
}

// GetProperty returns the value of an element property.
func GetProperty(el *html.Node, name string) (any, bool) {
	switch name {
	case PropID:
		return GetAttribute(el, "id")
	case PropClassName:
		return GetAttribute(el, "class")
	case PropTextContent:
		return TextContent(el), true
	}
	props, ok := properties.Get(el)
	if !ok {
		return nil, false
	}
	v, ok := props[name]
	return v, ok
}

// DeleteProperty removes an element property. For reflected properties the
// attribute is removed; deleting textContent is a no-op.
func DeleteProperty(el *html.Node, name string) {
	switch name {
	case PropID:
		RemoveAttribute(el, "id")
		return
	case PropClassName:
		RemoveAttribute(el, "class")
		return
	case PropTextContent:
		return
	}
	properties.Update(el, func(old map[string]any, present bool) (map[string]any, bool) {
		if !present {
			return nil, false
		}
		delete(old, name)
		return old, len(old) > 0
	})
}

// Stringify converts a literal to the string form used for string-typed
// DOM slots (attributes, styles, dataset entries).
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case []byte:
		return string(x)
	}
	return fmt.Sprint(v)
}
