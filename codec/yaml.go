package codec

import (
	"fmt"

	"github.com/erraggy/oascodec/codecerrors"
	"github.com/erraggy/oascodec/document"
	"github.com/erraggy/oascodec/saneyaml"
)

// YAML encodes specification objects as block-style YAML.
//
// Output is always UTF-8 with the saneyaml policy: no anchors or aliases,
// sequence items indented under their parent key, literal block style for
// multi-line strings, and unicode emitted literally.
type YAML struct {
	cfg *config
}

// NewYAML creates a YAML codec from the given options.
func NewYAML(opts ...Option) (*YAML, error) {
	cfg, err := applyOptions(MediaTypeYAML, opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid options: %w", err)
	}
	if cfg.prettySet {
		return nil, fmt.Errorf("codec: invalid options: %w", &codecerrors.ConfigError{
			Option:  "WithPretty",
			Message: "pretty-printing is only supported by the JSON codec",
		})
	}
	return &YAML{cfg: cfg}, nil
}

// Encode implements Codec.
func (c *YAML) Encode(spec any) ([]byte, error) {
	return c.cfg.pipeline("yaml", spec, c.dump)
}

// EncodeError implements Codec. Plain map keys carry no insertion order,
// so they are emitted in sorted order for determinism.
func (c *YAML) EncodeError(payload map[string]any) ([]byte, error) {
	data, err := saneyaml.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("codec: encoding error payload: %w", err)
	}
	return data, nil
}

// MediaType implements Codec.
func (c *YAML) MediaType() string {
	return c.cfg.mediaType
}

// Validators implements Codec.
func (c *YAML) Validators() []string {
	return append([]string(nil), c.cfg.validators...)
}

// dump serializes a validated document.
func (c *YAML) dump(doc *document.Map) ([]byte, error) {
	data, err := saneyaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("codec: encoding document: %w", err)
	}
	return data, nil
}

// Ensure YAML implements Codec at compile time.
var _ Codec = (*YAML)(nil)
