// Where: internal/domain/sitemap/reverse.go
// What: Page order reversal.
// Why: Produce a copy of a site map with its pages in the opposite order.
package sitemap

import (
	"slices"
)

// Reverse returns a deep copy of doc whose "pages" mapping lists the same
// entries in exactly the opposite order. Every other field is carried
// through unchanged and the "pages" field keeps its position. doc is never
// modified.
//
// Reverse fails with ErrTypeMismatch when "pages" is missing or not an
// object; no partial result is returned.
func Reverse(doc *Document) (*Document, error) {
	if _, err := doc.Pages(); err != nil {
		return nil, err
	}

	out := doc.Clone()
	pages, err := out.Pages()
	if err != nil {
		return nil, err
	}

	keys := slices.Clone(pages.Keys())
	slices.Reverse(keys)

	reversed := newObject()
	for _, key := range keys {
		v, _ := pages.Get(key)
		reversed.Set(key, v)
	}
	out.Set(PagesField, *reversed)
	return out, nil
}
