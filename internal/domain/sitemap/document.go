// Where: internal/domain/sitemap/document.go
// What: Order-preserving site map document model.
// Why: Page order is meaningful, so the document cannot live in a Go map.
package sitemap

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"

	"github.com/iancoleman/orderedmap"
	"github.com/poruru-code/sitemap-cli/internal/domain/value"
)

// PagesField is the top-level field holding the page mapping.
const PagesField = "pages"

// Document is a site map: a JSON object with a "pages" mapping and any
// number of other top-level fields, all kept in insertion order.
type Document struct {
	root *orderedmap.OrderedMap
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return FromOrderedMap(nil)
}

// FromOrderedMap wraps root without copying it.
func FromOrderedMap(root *orderedmap.OrderedMap) *Document {
	if root == nil {
		root = newObject()
	}
	return &Document{root: root}
}

func newObject() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return m
}

// Root exposes the underlying ordered map. Callers must not mutate it when
// the document is shared.
func (d *Document) Root() *orderedmap.OrderedMap {
	if d == nil {
		return nil
	}
	return d.root
}

// Keys returns the top-level field names in document order.
func (d *Document) Keys() []string {
	if d == nil || d.root == nil {
		return nil
	}
	return slices.Clone(d.root.Keys())
}

// Get returns a top-level field.
func (d *Document) Get(key string) (any, bool) {
	if d == nil || d.root == nil {
		return nil, false
	}
	return d.root.Get(key)
}

// Set adds or replaces a top-level field. Replacing keeps the field position.
func (d *Document) Set(key string, v any) {
	if d.root == nil {
		d.root = newObject()
	}
	d.root.Set(key, v)
}

// Pages returns the page mapping, or a *TypeMismatchError when the field
// is absent or not an object.
func (d *Document) Pages() (*orderedmap.OrderedMap, error) {
	raw, ok := d.Get(PagesField)
	if !ok {
		return nil, &TypeMismatchError{Field: PagesField, Got: KindMissing}
	}
	pages, ok := value.AsOrderedMap(raw)
	if !ok {
		return nil, &TypeMismatchError{Field: PagesField, Got: value.Kind(raw)}
	}
	return pages, nil
}

// PageKeys returns the page identifiers in document order.
func PageKeys(doc *Document) ([]string, error) {
	pages, err := doc.Pages()
	if err != nil {
		return nil, err
	}
	return slices.Clone(pages.Keys()), nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil || d.root == nil {
		return []byte("null"), nil
	}
	return d.root.MarshalJSON()
}

func (d *Document) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("site map document must be a JSON object")
	}
	root := newObject()
	if err := json.Unmarshal(data, root); err != nil {
		return err
	}
	d.root = root
	return nil
}
