// Where: internal/infra/sitemapio/yaml.go
// What: Order-preserving YAML conversion for site map documents.
// Why: yaml.v3 nodes keep mapping order, plain Go maps would not.
package sitemapio

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/iancoleman/orderedmap"
	"github.com/poruru-code/sitemap-cli/internal/domain/sitemap"
	"github.com/poruru-code/sitemap-cli/internal/domain/value"
	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

func decodeYAML(data []byte) (*sitemap.Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.New("document is empty")
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("site map document must be an object")
	}
	obj, err := mappingToOrdered(root)
	if err != nil {
		return nil, err
	}
	return sitemap.FromOrderedMap(obj), nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func mappingToOrdered(node *yaml.Node) (*orderedmap.OrderedMap, error) {
	out := orderedmap.New()
	out.SetEscapeHTML(false)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if isMergeKey(keyNode) {
			if err := mergeInto(out, valueNode); err != nil {
				return nil, err
			}
			continue
		}
		keyNode = resolveAlias(keyNode)
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		v, err := nodeValue(valueNode)
		if err != nil {
			return nil, err
		}
		out.Set(keyNode.Value, v)
	}
	return out, nil
}

func isMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Value == "<<" && node.ShortTag() == mergeTag
}

// mergeInto applies a "<<" merge: merged keys never override explicit ones.
func mergeInto(out *orderedmap.OrderedMap, node *yaml.Node) error {
	node = resolveAlias(node)
	sources := []*yaml.Node{node}
	if node.Kind == yaml.SequenceNode {
		sources = node.Content
	}
	for _, source := range sources {
		source = resolveAlias(source)
		if source.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: merge value must be a mapping", source.Line)
		}
		merged, err := mappingToOrdered(source)
		if err != nil {
			return err
		}
		for _, key := range merged.Keys() {
			if _, exists := out.Get(key); exists {
				continue
			}
			v, _ := merged.Get(key)
			out.Set(key, v)
		}
	}
	return nil
}

func nodeValue(node *yaml.Node) (any, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		obj, err := mappingToOrdered(node)
		if err != nil {
			return nil, err
		}
		return *obj, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := nodeValue(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return normalizeScalar(v), nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
}

// normalizeScalar maps YAML integers onto float64, the type JSON decoding uses.
func normalizeScalar(v any) any {
	switch typed := v.(type) {
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case uint64:
		return float64(typed)
	}
	return v
}

func encodeYAML(doc *sitemap.Document, opts EncodeOptions) ([]byte, error) {
	node, err := yamlNode(doc.Root())
	if err != nil {
		return nil, err
	}
	indent := opts.Indent
	if indent < 2 {
		indent = 2
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	if obj, ok := value.AsOrderedMap(v); ok {
		keys := obj.Keys()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range keys {
			item, _ := obj.Get(key)
			if err := appendPair(node, key, item); err != nil {
				return nil, err
			}
		}
		return node, nil
	}

	switch typed := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range keys {
			if err := appendPair(node, key, typed[key]); err != nil {
				return nil, err
			}
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	}

	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}

func appendPair(node *yaml.Node, key string, item any) error {
	child, err := yamlNode(item)
	if err != nil {
		return err
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		child,
	)
	return nil
}
