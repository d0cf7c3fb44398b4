// Where: internal/domain/value/value.go
// What: Value helpers for decoded site map data.
// Why: Keep document handling concise without infrastructure dependencies.
package value

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// JSON kind names reported in type errors.
const (
	KindObject = "object"
	KindArray  = "array"
	KindString = "string"
	KindNumber = "number"
	KindBool   = "boolean"
	KindNull   = "null"

	// KindUnorderedMap is a Go map built in code; it has no key order.
	KindUnorderedMap = "unordered map"
)

// AsOrderedMap returns the ordered map behind value when it is object-shaped.
// Nested objects decoded by orderedmap are stored by value, so both forms
// are accepted; the returned pointer aliases the value's key and value storage.
func AsOrderedMap(value any) (*orderedmap.OrderedMap, bool) {
	switch typed := value.(type) {
	case *orderedmap.OrderedMap:
		if typed == nil {
			return nil, false
		}
		return typed, true
	case orderedmap.OrderedMap:
		return &typed, true
	}
	return nil, false
}

// Kind returns the JSON kind name of a decoded value.
func Kind(value any) string {
	switch value.(type) {
	case nil:
		return KindNull
	case *orderedmap.OrderedMap, orderedmap.OrderedMap:
		return KindObject
	case map[string]any:
		return KindUnorderedMap
	case []any:
		return KindArray
	case string:
		return KindString
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	}
	return fmt.Sprintf("%T", value)
}
