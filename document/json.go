package document

import (
	"bytes"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the map as a compact JSON object with keys in
// insertion order. Non-ASCII and HTML-significant characters are emitted
// literally, not escaped.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeValue appends the JSON encoding of v to buf, recursing through
// ordered maps and sequences and delegating scalars (and any plain Go maps,
// which encode with sorted keys) to the JSON library.
func writeValue(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case *Map:
		buf.WriteByte('{')
		first := true
		for _, k := range t.keys {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			key, err := json.MarshalWithOption(k, json.DisableHTMLEscape())
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeValue(buf, t.values[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case []any:
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		data, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}
