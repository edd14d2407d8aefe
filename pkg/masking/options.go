package masking

import (
	"slices"

	"github.com/codeready-toolchain/jsonmask/pkg/config"
	"github.com/codeready-toolchain/jsonmask/pkg/jsonvalue"
)

// Option configures a JSONMasker.
type Option func(*options)

type options struct {
	maskPattern          string
	sensitiveKeys        []string // nil selects the default set
	connectionStringKeys []string // nil selects the default set
	indent               bool
	maxDepth             int
}

func defaultOptions() options {
	return options{
		maskPattern: config.DefaultMaskPattern,
		maxDepth:    jsonvalue.DefaultMaxDepth,
	}
}

// WithMaskPattern sets the replacement for masked values. A mask containing
// ';' is kept whole when masked connection strings are masked again.
func WithMaskPattern(pattern string) Option {
	return func(o *options) {
		o.maskPattern = pattern
	}
}

// WithSensitiveKeys replaces the sensitive property names.
// A nil slice keeps the default set; an empty non-nil slice masks no properties.
func WithSensitiveKeys(keys ...string) Option {
	return func(o *options) {
		o.sensitiveKeys = slices.Clone(keys)
	}
}

// WithConnectionStringKeys replaces the segment names masked inside
// "key=value;" strings (default: Password). An empty non-nil slice disables
// connection string masking.
func WithConnectionStringKeys(keys ...string) Option {
	return func(o *options) {
		o.connectionStringKeys = slices.Clone(keys)
	}
}

// WithIndent makes the masker emit indented JSON instead of a single line.
func WithIndent(indent bool) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithMaxDepth limits object/array nesting accepted by the structured path.
// Deeper documents are masked by the regex fallback.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}
