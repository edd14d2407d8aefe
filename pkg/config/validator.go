package config

import (
	"fmt"
	"regexp"
	"strings"
)

const maskingComponent = "masking"

// Validate checks the configuration (fail-fast - stops at first error)
func (c *MaskingConfig) Validate() error {
	if c.MaxDepth < 0 {
		return NewValidationError(maskingComponent, "config", "max_depth",
			fmt.Errorf("%w: must not be negative, got %d", ErrInvalidValue, c.MaxDepth))
	}

	for i, key := range c.SensitiveKeys {
		if strings.TrimSpace(key) == "" {
			return NewValidationError(maskingComponent, "config", fmt.Sprintf("sensitive_keys[%d]", i),
				fmt.Errorf("%w: key must not be blank", ErrInvalidValue))
		}
	}

	for i, key := range c.ConnectionStringKeys {
		if strings.TrimSpace(key) == "" {
			return NewValidationError(maskingComponent, "config", fmt.Sprintf("connection_string_keys[%d]", i),
				fmt.Errorf("%w: key must not be blank", ErrInvalidValue))
		}
	}

	builtin := GetBuiltinConfig()
	for _, groupName := range c.PatternGroups {
		if _, exists := builtin.PatternGroups[groupName]; !exists {
			return NewValidationError(maskingComponent, "config", "pattern_groups",
				fmt.Errorf("%w: '%s'", ErrPatternGroupNotFound, groupName))
		}
	}
	for _, patternName := range c.Patterns {
		if _, exists := builtin.MaskingPatterns[patternName]; !exists {
			return NewValidationError(maskingComponent, "config", "patterns",
				fmt.Errorf("%w: '%s'", ErrPatternNotFound, patternName))
		}
	}

	for i, pattern := range c.CustomPatterns {
		id := fmt.Sprintf("custom_patterns[%d]", i)
		if pattern.Pattern == "" {
			return NewValidationError("custom_pattern", id, "pattern",
				fmt.Errorf("%w: pattern", ErrMissingRequiredField))
		}
		if pattern.Replacement == "" {
			return NewValidationError("custom_pattern", id, "replacement",
				fmt.Errorf("%w: replacement", ErrMissingRequiredField))
		}
		if _, err := regexp.Compile(pattern.Pattern); err != nil {
			return NewValidationError("custom_pattern", id, "pattern",
				fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	}

	return nil
}
