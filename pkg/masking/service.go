package masking

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/jsonmask/pkg/config"
	"github.com/codeready-toolchain/jsonmask/pkg/format"
	"github.com/codeready-toolchain/jsonmask/pkg/version"
)

// Service applies configured masking to payloads before they are logged.
// Created once per configuration. Thread-safe and stateless aside from
// compiled patterns.
type Service struct {
	cfg      *config.MaskingConfig
	masker   *JSONMasker
	patterns []*CompiledPattern // Built-in + custom regex sweeps, in application order
}

// NewService creates a masking service from cfg. A nil cfg uses
// config.DefaultMaskingConfig. All patterns are compiled eagerly; invalid
// patterns are logged and skipped.
func NewService(cfg *config.MaskingConfig) *Service {
	if cfg == nil {
		cfg = config.DefaultMaskingConfig()
	}

	s := &Service{
		cfg:    cfg,
		masker: NewJSONMasker(maskerOptions(cfg)...),
	}

	// 1. Built-in sweeps selected by pattern_groups / patterns
	s.compileBuiltinPatterns()

	// 2. Custom sweeps
	s.compileCustomPatterns()

	slog.Info("Masking service initialized",
		"version", version.Full(),
		"enabled", cfg.IsEnabled(),
		"sensitive_keys", len(s.masker.Keys()),
		"compiled_patterns", len(s.patterns))

	return s
}

func maskerOptions(cfg *config.MaskingConfig) []Option {
	opts := []Option{
		WithSensitiveKeys(cfg.EffectiveSensitiveKeys()...),
		WithIndent(cfg.Indent),
		WithMaxDepth(cfg.MaxDepth),
	}
	if cfg.MaskPattern != "" {
		opts = append(opts, WithMaskPattern(cfg.MaskPattern))
	}
	if len(cfg.ConnectionStringKeys) > 0 {
		opts = append(opts, WithConnectionStringKeys(cfg.ConnectionStringKeys...))
	}
	return opts
}

func (s *Service) compileBuiltinPatterns() {
	builtin := config.GetBuiltinConfig()
	for _, name := range s.cfg.ResolvedPatternNames() {
		pattern := builtin.MaskingPatterns[name]
		re, err := getCompiled(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		})
	}
}

func (s *Service) compileCustomPatterns() {
	for i, pattern := range s.cfg.CustomPatterns {
		name := fmt.Sprintf("custom_%d", i)
		re, err := getCompiled(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		})
	}
}

// Enabled reports whether Mask alters payloads.
func (s *Service) Enabled() bool { return s.cfg.IsEnabled() }

// Patterns returns the names of the compiled regex sweeps in application order.
func (s *Service) Patterns() []string {
	names := make([]string, 0, len(s.patterns))
	for _, p := range s.patterns {
		names = append(names, p.Name)
	}
	return names
}

// Mask masks sensitive properties in data, then applies the regex sweeps.
// Returns data unchanged when masking is disabled or data is blank.
func (s *Service) Mask(data string) string {
	if !s.cfg.IsEnabled() || strings.TrimSpace(data) == "" {
		return data
	}

	// Phase 1: structural masking of sensitive properties
	masked := s.masker.Mask(data)

	// Phase 2: regex patterns (general sweep)
	for _, p := range s.patterns {
		masked = p.Apply(masked)
	}
	return masked
}

// MaskPtr is Mask for optional payloads: nil in, nil out.
func (s *Service) MaskPtr(data *string) *string {
	if data == nil {
		return nil
	}
	masked := s.Mask(*data)
	return &masked
}

// Format re-serializes data using the configured indentation without masking.
func (s *Service) Format(data string) string {
	return format.Format(data, s.cfg.Indent)
}

// LogValue returns a slog.LogValuer that masks data only when a log record
// is actually emitted.
//
//	logger.Debug("Request received", "body", svc.LogValue(body))
func (s *Service) LogValue(data string) slog.LogValuer {
	return maskedPayload{svc: s, data: data}
}

type maskedPayload struct {
	svc  *Service
	data string
}

func (p maskedPayload) LogValue() slog.Value {
	return slog.StringValue(p.svc.Mask(p.data))
}
