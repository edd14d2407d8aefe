package config

import (
	"fmt"
	"log/slog"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// LoadMaskingConfig decodes masking settings from YAML supplied by the embedding
// application and returns them merged over DefaultMaskingConfig and validated.
// source names the origin of data in error messages.
//
// Steps performed:
//  1. Expand {{.VAR}} environment references
//  2. Parse YAML into MaskingConfig
//  3. Merge over built-in defaults (user values override)
//  4. Validate
func LoadMaskingConfig(source string, data []byte) (*MaskingConfig, error) {
	log := slog.With("source", source)

	// 1. Expand environment variables
	expanded := ExpandEnv(data)

	// 2. Parse YAML
	var user MaskingConfig
	if err := yaml.Unmarshal(expanded, &user); err != nil {
		return nil, NewLoadError(source, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	// 3. Merge over defaults
	cfg, err := mergeMaskingConfig(DefaultMaskingConfig(), &user)
	if err != nil {
		return nil, NewLoadError(source, err)
	}

	// 4. Validate
	if err := cfg.Validate(); err != nil {
		return nil, NewLoadError(source, fmt.Errorf("%w: %w", ErrValidationFailed, err))
	}

	log.Debug("Masking configuration loaded",
		"sensitive_keys", len(cfg.EffectiveSensitiveKeys()),
		"patterns", len(cfg.ResolvedPatternNames()),
		"custom_patterns", len(cfg.CustomPatterns))

	return cfg, nil
}

// mergeMaskingConfig merges user over defaults. Non-zero user values override.
func mergeMaskingConfig(defaults, user *MaskingConfig) (*MaskingConfig, error) {
	// mergo skips zero-valued sources, so an explicit `enabled: false` is applied by hand.
	enabled := user.Enabled
	user.Enabled = nil

	if err := mergo.Merge(defaults, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge masking config: %w", err)
	}

	if enabled != nil {
		defaults.Enabled = enabled
	}
	return defaults, nil
}
