package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
type BuiltinConfig struct {
	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		MaskingPatterns: initBuiltinMaskingPatterns(),
		PatternGroups:   initBuiltinPatternGroups(),
	}
}

// initBuiltinMaskingPatterns returns regex sweeps that run over serialized JSON.
// Matches never cross a double quote and replacements contain no quotes or
// backslashes, so a valid document stays valid.
func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"certificate": {
			Pattern:     `-----BEGIN [A-Z ]+-----[^"]*?-----END [A-Z ]+-----`,
			Replacement: `[MASKED_CERTIFICATE]`,
			Description: "PEM certificates and private keys",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `[MASKED_EMAIL]`,
			Description: "Email addresses",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `[MASKED_SSH_KEY]`,
			Description: "SSH public keys",
		},
		"bearer_token": {
			Pattern:     `(?i)(bearer\s+)[A-Za-z0-9_\-.=]{20,}`,
			Replacement: `${1}[MASKED_TOKEN]`,
			Description: "Bearer tokens in Authorization values",
		},
		"aws_access_key": {
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: `[MASKED_AWS_KEY]`,
			Description: "AWS access key IDs",
		},
		"github_token": {
			Pattern:     `\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`,
			Replacement: `[MASKED_GITHUB_TOKEN]`,
			Description: "GitHub tokens",
		},
		"slack_token": {
			Pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
			Replacement: `[MASKED_SLACK_TOKEN]`,
			Description: "Slack tokens",
		},
	}
}

// initBuiltinPatternGroups returns predefined groups of masking patterns.
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"tokens":   {"bearer_token", "github_token", "slack_token", "aws_access_key"},
		"security": {"certificate", "ssh_key", "bearer_token", "github_token", "slack_token", "aws_access_key"},
		"all":      {"certificate", "email", "ssh_key", "bearer_token", "aws_access_key", "github_token", "slack_token"},
	}
}
