package codec

import (
	"slices"

	"github.com/erraggy/oascodec/validation"
)

// Option is a function that configures a codec at construction time.
type Option func(*config) error

// config holds the immutable configuration of a codec instance.
type config struct {
	validators []string
	registry   *validation.Registry
	mediaType  string
	logger     Logger

	// pretty applies to the JSON codec only
	pretty    bool
	prettySet bool
}

// applyOptions applies option functions over the defaults for mediaType.
func applyOptions(mediaType string, opts ...Option) (*config, error) {
	cfg := &config{
		registry:  validation.Default,
		mediaType: mediaType,
		logger:    NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithValidators sets the validator names to run on every Encode call, in
// the order given. Names are resolved against the configured registry at
// encode time; a name that was never registered surfaces as an
// UnknownValidatorError.
//
// Default: none.
func WithValidators(names ...string) Option {
	return func(cfg *config) error {
		cfg.validators = slices.Clone(names)
		return nil
	}
}

// WithRegistry sets the registry used to resolve validator names.
// Default: validation.Default.
func WithRegistry(r *validation.Registry) Option {
	return func(cfg *config) error {
		cfg.registry = r
		return nil
	}
}

// WithMediaType overrides the media type string the codec reports. Useful
// for vendored types such as "application/vnd.oai.openapi+json".
func WithMediaType(mediaType string) Option {
	return func(cfg *config) error {
		cfg.mediaType = mediaType
		return nil
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
// Default: NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithPretty enables or disables pretty-printing. Only the JSON codec
// supports it; NewYAML rejects the option.
// Default: false.
func WithPretty(enabled bool) Option {
	return func(cfg *config) error {
		cfg.pretty = enabled
		cfg.prettySet = true
		return nil
	}
}
