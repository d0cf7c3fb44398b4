// Where: internal/domain/sitemap/clone.go
// What: Recursive deep copy for decoded documents.
// Why: Reversed output must not share mutable state with its input.
package sitemap

import (
	"github.com/iancoleman/orderedmap"
)

// Clone returns a deep copy of the document. Objects, arrays and plain maps
// are copied recursively; scalars are immutable and copied by value.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	if d.root == nil {
		return NewDocument()
	}
	return &Document{root: cloneObject(d.root)}
}

func cloneObject(src *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	dst := newObject()
	for _, key := range src.Keys() {
		v, _ := src.Get(key)
		dst.Set(key, cloneValue(v))
	}
	return dst
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case *orderedmap.OrderedMap:
		if typed == nil {
			return typed
		}
		return cloneObject(typed)
	case orderedmap.OrderedMap:
		// nested objects are decoded by value; keep that form
		return *cloneObject(&typed)
	case map[string]any:
		if typed == nil {
			return typed
		}
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = cloneValue(item)
		}
		return out
	case []any:
		if typed == nil {
			return typed
		}
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
