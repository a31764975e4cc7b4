package codec

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/erraggy/oascodec/document"
)

// jsonIndent is the indentation unit used in pretty mode.
const jsonIndent = "    "

// JSON encodes specification objects as JSON.
//
// In compact mode (the default) the output carries no insignificant
// whitespace and no trailing newline. In pretty mode the output uses
// 4-space indentation, ": " key separators, and ends with a newline.
// In both modes, mapping keys appear in document order and non-ASCII
// characters are emitted literally.
type JSON struct {
	cfg *config
}

// NewJSON creates a JSON codec from the given options.
func NewJSON(opts ...Option) (*JSON, error) {
	cfg, err := applyOptions(MediaTypeJSON, opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid options: %w", err)
	}
	return &JSON{cfg: cfg}, nil
}

// Encode implements Codec.
func (c *JSON) Encode(spec any) ([]byte, error) {
	return c.cfg.pipeline("json", spec, c.dump)
}

// EncodeError implements Codec. Plain map keys carry no insertion order,
// so they are emitted in sorted order for determinism.
func (c *JSON) EncodeError(payload map[string]any) ([]byte, error) {
	data, err := json.MarshalWithOption(payload, json.DisableHTMLEscape())
	if err != nil {
		return nil, fmt.Errorf("codec: encoding error payload: %w", err)
	}
	return c.format(data)
}

// MediaType implements Codec.
func (c *JSON) MediaType() string {
	return c.cfg.mediaType
}

// Validators implements Codec.
func (c *JSON) Validators() []string {
	return append([]string(nil), c.cfg.validators...)
}

// dump serializes a validated document.
func (c *JSON) dump(doc *document.Map) ([]byte, error) {
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("codec: encoding document: %w", err)
	}
	return c.format(data)
}

// format re-indents compact JSON when pretty mode is on and guarantees the
// trailing newline pretty mode promises.
func (c *JSON) format(data []byte) ([]byte, error) {
	if !c.cfg.pretty {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", jsonIndent); err != nil {
		return nil, fmt.Errorf("codec: indenting output: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Ensure JSON implements Codec at compile time.
var _ Codec = (*JSON)(nil)
