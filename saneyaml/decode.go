package saneyaml

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascodec/document"
)

// Unmarshal parses a YAML document whose root is a mapping and returns an
// ordered mapping whose key order matches the textual order of the source.
// Merge keys (<<) are flattened into the target mapping before order
// capture, with explicitly written keys overriding merged ones.
func Unmarshal(data []byte) (*document.Map, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("saneyaml: parsing failed: %w", err)
	}
	node := &root
	if node.Kind == 0 {
		// Empty input produces a zero node.
		return document.New(), nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return document.New(), nil
		}
		node = node.Content[0]
	}
	return UnmarshalNode(node)
}

// UnmarshalNode converts an already parsed mapping node to an ordered
// mapping, applying the same merge-key flattening as Unmarshal.
func UnmarshalNode(node *yaml.Node) (*document.Map, error) {
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("saneyaml: expected a mapping at line %d, got %s", node.Line, kindName(node.Kind))
	}
	return mappingValue(node)
}

// mappingValue rebuilds a mapping node as an ordered map. Merged pairs come
// first in the flattened pair list, so an explicit key written in the
// mapping overwrites a merged value while the merged key keeps its
// position, matching standard merge-key semantics.
func mappingValue(node *yaml.Node) (*document.Map, error) {
	pairs, err := flattenPairs(node)
	if err != nil {
		return nil, err
	}
	m := document.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("saneyaml: non-scalar mapping key at line %d", key.Line)
		}
		value, err := nodeValue(pairs[i+1])
		if err != nil {
			return nil, err
		}
		m.Set(key.Value, value)
	}
	return m, nil
}

// flattenPairs returns the key/value node pairs of a mapping with merge
// keys expanded. For a sequence-valued merge, later sources are placed
// before earlier ones so that earlier sources win.
func flattenPairs(node *yaml.Node) ([]*yaml.Node, error) {
	var merged []*yaml.Node
	var explicit []*yaml.Node

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := deref(node.Content[i+1])

		if key.Tag != "!!merge" {
			explicit = append(explicit, key, value)
			continue
		}

		switch value.Kind {
		case yaml.MappingNode:
			pairs, err := flattenPairs(value)
			if err != nil {
				return nil, err
			}
			merged = append(merged, pairs...)
		case yaml.SequenceNode:
			sources := make([][]*yaml.Node, 0, len(value.Content))
			for _, item := range value.Content {
				item = deref(item)
				if item.Kind != yaml.MappingNode {
					return nil, fmt.Errorf("saneyaml: merge value at line %d is not a mapping", item.Line)
				}
				pairs, err := flattenPairs(item)
				if err != nil {
					return nil, err
				}
				sources = append(sources, pairs)
			}
			for j := len(sources) - 1; j >= 0; j-- {
				merged = append(merged, sources[j]...)
			}
		default:
			return nil, fmt.Errorf("saneyaml: merge value at line %d is not a mapping or sequence of mappings", value.Line)
		}
	}

	return append(merged, explicit...), nil
}

// nodeValue converts any node to a document value.
func nodeValue(node *yaml.Node) (any, error) {
	node = deref(node)
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!str" {
			return node.Value, nil
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("saneyaml: decoding scalar at line %d: %w", node.Line, err)
		}
		return v, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil

	case yaml.MappingNode:
		return mappingValue(node)

	default:
		return nil, fmt.Errorf("saneyaml: unsupported node kind %s at line %d", kindName(node.Kind), node.Line)
	}
}

// deref follows alias nodes to their anchor targets.
func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// kindName names a node kind for error messages.
func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
