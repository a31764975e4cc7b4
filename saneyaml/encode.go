package saneyaml

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascodec/document"
)

// Marshal serializes v to UTF-8 block-style YAML bytes.
//
// v may be a *document.Map, a plain map[string]any (keys are sorted, since
// plain maps carry no insertion order), a []any, or any scalar. Ordered
// mapping keys are emitted in insertion order. Aliases are never produced:
// the node tree is built fresh for every call, so no node is ever shared
// and the emitter has nothing to anchor.
func Marshal(v any) ([]byte, error) {
	node, err := valueNode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("saneyaml: encoding failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("saneyaml: encoding failed: %w", err)
	}
	return buf.Bytes(), nil
}

// valueNode converts a document value to a freshly built yaml.Node.
func valueNode(v any) (*yaml.Node, error) {
	if v == nil {
		return scalarNode("!!null", "null"), nil
	}

	switch t := v.(type) {
	case *document.Map:
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, t.Len()*2),
		}
		for key, value := range t.Pairs() {
			child, err := valueNode(value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, stringNode(key), child)
		}
		return node, nil

	case map[string]any:
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, len(t)*2),
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			child, err := valueNode(t[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, stringNode(k), child)
		}
		return node, nil

	case []any:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, len(t)),
		}
		for _, item := range t {
			child, err := valueNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil

	case string:
		return stringNode(t), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(t)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(t)), nil
	case int64:
		return scalarNode("!!int", strconv.FormatInt(t, 10)), nil
	case float64:
		// Whole-valued floats (typically from a JSON round-trip) emit as
		// integers so the plain scalar's implicit tag matches its value.
		if i := int64(t); float64(i) == t {
			return scalarNode("!!int", strconv.FormatInt(i, 10)), nil
		}
		return scalarNode("!!float", strconv.FormatFloat(t, 'f', -1, 64)), nil

	default:
		// Unknown types take a JSON round-trip down to basic kinds.
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("saneyaml: cannot convert %T to a YAML node: %w", v, err)
		}
		var plain any
		if err := json.Unmarshal(data, &plain); err != nil {
			return nil, fmt.Errorf("saneyaml: cannot convert %T to a YAML node: %w", v, err)
		}
		return valueNode(plain)
	}
}

// stringNode builds a scalar string node, switching to literal block style
// when the value spans multiple lines.
func stringNode(s string) *yaml.Node {
	node := scalarNode("!!str", s)
	if strings.Contains(s, "\n") {
		node.Style = yaml.LiteralStyle
	}
	return node
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
