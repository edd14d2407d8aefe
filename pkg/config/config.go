// Package config provides masking configuration for the jsonmask library:
// built-in regex patterns, defaults, YAML decoding and validation.
package config

import (
	"slices"
	"strings"
)

// MaskingConfig defines how JSON payloads are masked.
// Zero-valued fields fall back to DefaultMaskingConfig when loaded.
type MaskingConfig struct {
	// Enabled is a *bool: nil means "use default" (enabled), explicit false disables.
	Enabled *bool `yaml:"enabled,omitempty"`

	// MaskPattern replaces every masked value.
	MaskPattern string `yaml:"mask_pattern,omitempty"`

	// SensitiveKeys replaces the default sensitive property names.
	SensitiveKeys []string `yaml:"sensitive_keys,omitempty"`

	// AdditionalKeys extends SensitiveKeys (or the default set) without replacing it.
	AdditionalKeys []string `yaml:"additional_keys,omitempty"`

	// ConnectionStringKeys are the segment names (e.g. Password) masked inside
	// "key=value;" strings wherever they appear.
	ConnectionStringKeys []string `yaml:"connection_string_keys,omitempty"`

	Indent   bool `yaml:"indent,omitempty"`
	MaxDepth int  `yaml:"max_depth,omitempty"`

	// Built-in regex sweeps applied after property masking.
	PatternGroups []string `yaml:"pattern_groups,omitempty"`
	Patterns      []string `yaml:"patterns,omitempty"`

	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// IsEnabled reports whether masking is enabled (default true).
func (c *MaskingConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// EffectiveSensitiveKeys returns SensitiveKeys (or the default set when empty)
// followed by AdditionalKeys, deduplicated case-insensitively.
func (c *MaskingConfig) EffectiveSensitiveKeys() []string {
	base := c.SensitiveKeys
	if len(base) == 0 {
		base = DefaultSensitiveKeys()
	}

	seen := make(map[string]bool, len(base)+len(c.AdditionalKeys))
	keys := make([]string, 0, len(base)+len(c.AdditionalKeys))
	for _, key := range slices.Concat(base, c.AdditionalKeys) {
		lower := strings.ToLower(strings.TrimSpace(key))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		keys = append(keys, lower)
	}
	return keys
}

// ResolvedPatternNames expands PatternGroups and Patterns into a deduplicated,
// ordered list of built-in pattern names. Unknown names are dropped.
func (c *MaskingConfig) ResolvedPatternNames() []string {
	builtin := GetBuiltinConfig()
	seen := make(map[string]bool)
	var names []string

	add := func(name string) {
		if seen[name] {
			return
		}
		if _, ok := builtin.MaskingPatterns[name]; !ok {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	// 1. Expand pattern_groups → individual pattern names
	for _, groupName := range c.PatternGroups {
		for _, name := range builtin.PatternGroups[groupName] {
			add(name)
		}
	}

	// 2. Add individual patterns
	for _, name := range c.Patterns {
		add(name)
	}

	return names
}
