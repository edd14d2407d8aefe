package masking

import (
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/jsonmask/pkg/config"
	"github.com/codeready-toolchain/jsonmask/pkg/jsonvalue"
)

// JSONMasker masks the values of sensitive JSON properties.
//
// Well-formed input is parsed and walked: every value stored under a sensitive
// key becomes the mask string, whatever its type, unless it is a connection
// string; connection strings anywhere have only their secret segments
// (Password=...;) masked. Malformed input is masked textually with regexes
// instead.
//
// A JSONMasker is immutable after construction and safe for concurrent use.
type JSONMasker struct {
	maskPattern string
	keys        KeySet
	indent      bool
	maxDepth    int

	connectionString *CompiledPattern // applied to decoded string values

	// Applied to raw text that failed to parse: sensitive properties, then
	// connection string segments anywhere in the text.
	properties           []*CompiledPattern
	connectionStringText *CompiledPattern
}

// NewJSONMasker creates a masker. Without options it masks the default
// sensitive keys with config.DefaultMaskPattern.
func NewJSONMasker(opts ...Option) *JSONMasker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	keys := DefaultKeySet()
	if o.sensitiveKeys != nil {
		keys = NewKeySet(o.sensitiveKeys...)
	}

	connKeys := o.connectionStringKeys
	if connKeys == nil {
		connKeys = config.DefaultConnectionStringKeys()
	}

	m := &JSONMasker{
		maskPattern: o.maskPattern,
		keys:        keys,
		indent:      o.indent,
		maxDepth:    o.maxDepth,
	}
	m.compilePatterns(connKeys)
	return m
}

// compilePatterns builds the connection string and raw text patterns.
// Keys are regex-quoted, so compilation only fails on internal errors;
// such patterns are logged and skipped.
func (m *JSONMasker) compilePatterns(connKeys []string) {
	cs, err := connectionStringPattern(connKeys, m.maskPattern, false)
	if err != nil {
		slog.Error("Failed to compile connection string pattern, skipping", "error", err)
	}
	m.connectionString = cs

	for _, key := range m.keys.Keys() {
		p, err := propertyPattern(key, m.maskPattern)
		if err != nil {
			slog.Error("Failed to compile property masking pattern, skipping",
				"key", key, "error", err)
			continue
		}
		m.properties = append(m.properties, p)
	}

	csText, err := connectionStringPattern(connKeys, m.maskPattern, true)
	if err != nil {
		slog.Error("Failed to compile connection string text pattern, skipping", "error", err)
	}
	m.connectionStringText = csText
}

// Name returns the unique identifier for this masker.
func (m *JSONMasker) Name() string { return "json_properties" }

// AppliesTo reports whether data has any non-whitespace content.
func (m *JSONMasker) AppliesTo(data string) bool {
	return strings.TrimSpace(data) != ""
}

// Keys returns the sensitive property names, lowercased and sorted.
func (m *JSONMasker) Keys() []string { return m.keys.Keys() }

// MaskPattern returns the replacement used for masked values.
func (m *JSONMasker) MaskPattern() string { return m.maskPattern }

// Mask returns data with sensitive values replaced. Empty or whitespace-only
// data is returned unchanged.
func (m *JSONMasker) Mask(data string) string {
	if !m.AppliesTo(data) {
		return data
	}

	root, err := jsonvalue.Parse(data, jsonvalue.WithMaxDepth(m.maxDepth))
	if err != nil {
		slog.Debug("Payload is not valid JSON, applying regex fallback masking",
			"masker", m.Name(), "length", len(data), "error", err)
		return m.MaskText(data)
	}

	out, err := jsonvalue.Marshal(m.maskValue(root), m.indent)
	if err != nil {
		slog.Error("Failed to serialize masked JSON, applying regex fallback masking",
			"masker", m.Name(), "error", err)
		return m.MaskText(data)
	}
	return out
}

// MaskValue masks a parsed tree in place and returns the (possibly replaced) root.
func (m *JSONMasker) MaskValue(v *jsonvalue.Value) *jsonvalue.Value {
	if v == nil {
		return nil
	}
	return m.maskValue(v)
}

func (m *JSONMasker) maskValue(v *jsonvalue.Value) *jsonvalue.Value {
	switch v.Kind() {
	case jsonvalue.KindObject:
		members := v.Members()
		for i := range members {
			if m.keys.Contains(members[i].Key) {
				members[i].Value = m.maskSensitive(members[i].Value)
				continue
			}
			if members[i].Value != nil {
				members[i].Value = m.maskValue(members[i].Value)
			}
		}
	case jsonvalue.KindArray:
		items := v.Items()
		for i, item := range items {
			if item != nil {
				items[i] = m.maskValue(item)
			}
		}
	case jsonvalue.KindString:
		if masked := m.MaskConnectionString(v.Str()); masked != v.Str() {
			return jsonvalue.NewString(masked)
		}
	}
	return v
}

// maskSensitive masks a value stored under a sensitive key. A connection
// string keeps its structure with only the secret segments masked; any other
// value becomes the mask string.
func (m *JSONMasker) maskSensitive(v *jsonvalue.Value) *jsonvalue.Value {
	if v != nil && v.Kind() == jsonvalue.KindString && m.hasConnectionSecret(v.Str()) {
		return jsonvalue.NewString(m.MaskConnectionString(v.Str()))
	}
	return jsonvalue.NewString(m.maskPattern)
}

func (m *JSONMasker) hasConnectionSecret(s string) bool {
	return m.connectionString != nil && m.connectionString.Regex.MatchString(s)
}

// MaskConnectionString masks embedded connection string secrets such as
// "Password=secret;" in s, keeping the segment name and everything after ';'.
func (m *JSONMasker) MaskConnectionString(s string) string {
	if m.connectionString == nil {
		return s
	}
	return m.connectionString.Apply(s)
}

// MaskText masks raw text without parsing it: quoted string values of
// sensitive properties and connection string secrets are replaced. A
// sensitive property holding a connection string only has its secret segments
// masked, as in Mask. Text outside those matches is left untouched.
func (m *JSONMasker) MaskText(data string) string {
	masked := data
	for _, p := range m.properties {
		masked = p.Regex.ReplaceAllStringFunc(masked, func(match string) string {
			if m.connectionStringText != nil && m.connectionStringText.Regex.MatchString(match) {
				return match // left to the connection string pass
			}
			return p.Regex.ReplaceAllString(match, p.Replacement)
		})
	}
	if m.connectionStringText != nil {
		masked = m.connectionStringText.Apply(masked)
	}
	return masked
}
