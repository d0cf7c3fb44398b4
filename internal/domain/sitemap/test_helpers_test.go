// Where: internal/domain/sitemap/test_helpers_test.go
// What: Shared fixtures and comparers for site map tests.
// Why: Compare ordered documents structurally, key order included.
package sitemap

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iancoleman/orderedmap"
)

type orderedPair struct {
	Key   string
	Value any
}

// orderedPairs turns ordered maps into key/value lists so cmp sees both
// content and order while ignoring unexported encoder settings.
var orderedPairs = cmp.Transformer("orderedPairs", func(m orderedmap.OrderedMap) []orderedPair {
	keys := m.Keys()
	out := make([]orderedPair, 0, len(keys))
	for _, key := range keys {
		v, _ := m.Get(key)
		out = append(out, orderedPair{Key: key, Value: v})
	}
	return out
})

func mustDocument(t *testing.T, raw string) *Document {
	t.Helper()
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode fixture %s: %v", raw, err)
	}
	return &doc
}

func mustCompactJSON(t *testing.T, doc *Document) string {
	t.Helper()
	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("encode document: %v", err)
	}
	return string(payload)
}

func assertSameDocument(t *testing.T, want, got *Document) {
	t.Helper()
	if diff := cmp.Diff(want.Root(), got.Root(), orderedPairs); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

const siteFixture = `{
  "meta": {"site": "demo", "tags": ["a", "b"]},
  "pages": {
    "home": {"title": "Home", "sections": [{"id": "hero", "items": [{"model": "Hero", "query": "intro", "id": "h1"}]}]},
    "about": {"title": "About", "sections": []},
    "blog": {"title": "Blog", "draft": false, "order": 3},
    "explore": {"title": "Explore"},
    "stay": {"title": "Stay"},
    "faq": {"title": "FAQ", "questions": ["why", "how"]},
    "contact": {"title": "Contact", "email": null}
  },
  "generated": "2026-01-08T23:45:00Z"
}`
