package config

import (
	"slices"

	"github.com/codeready-toolchain/jsonmask/pkg/jsonvalue"
)

// DefaultMaskPattern is the replacement value for masked properties.
const DefaultMaskPattern = "***MASKED***"

var (
	defaultSensitiveKeys = []string{
		"password",
		"pwd",
		"token",
		"secret",
		"apikey",
		"api_key",
		"connectionstring",
		"ssn",
		"creditcard",
		"card",
	}

	defaultConnectionStringKeys = []string{"Password"}
)

// DefaultSensitiveKeys returns a copy of the built-in sensitive property names.
func DefaultSensitiveKeys() []string {
	return slices.Clone(defaultSensitiveKeys)
}

// DefaultConnectionStringKeys returns a copy of the built-in connection string segment names.
func DefaultConnectionStringKeys() []string {
	return slices.Clone(defaultConnectionStringKeys)
}

// DefaultMaskingConfig returns the configuration used when nothing is overridden.
func DefaultMaskingConfig() *MaskingConfig {
	enabled := true
	return &MaskingConfig{
		Enabled:              &enabled,
		MaskPattern:          DefaultMaskPattern,
		SensitiveKeys:        DefaultSensitiveKeys(),
		ConnectionStringKeys: DefaultConnectionStringKeys(),
		MaxDepth:             jsonvalue.DefaultMaxDepth,
	}
}
