package inspect

import (
	"fmt"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/internal/options"
	"github.com/chipsenkbeil/typed-path-sub000/tperrors"
)

// Option is a function that configures an inspection.
type Option func(*inspectConfig) error

// inspectConfig holds configuration for an inspection
type inspectConfig struct {
	// Input source (exactly one must be set)
	path  *string
	bytes []byte

	grammar   grammar.Grammar
	logger    Logger
	maxLength int
	validate  bool
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*inspectConfig, error) {
	cfg := &inspectConfig{
		grammar:  grammar.Posix{},
		logger:   NopLogger{},
		validate: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"inspect: must specify an input source (use WithPath or WithBytes)",
		"inspect: must specify exactly one input source",
		cfg.path != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	if err := options.ValidateMaxLength("input", cfg.input(), cfg.maxLength); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *inspectConfig) input() []byte {
	if cfg.path != nil {
		return []byte(*cfg.path)
	}
	return cfg.bytes
}

// WithPath specifies a path string as the input source
func WithPath(path string) Option {
	return func(cfg *inspectConfig) error {
		cfg.path = &path
		return nil
	}
}

// WithBytes specifies raw path bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *inspectConfig) error {
		if data == nil {
			return &tperrors.ConfigError{Option: "bytes", Message: "inspect: bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithGrammar sets the grammar used to parse the input.
// Default: grammar.Posix{}
func WithGrammar(g grammar.Grammar) Option {
	return func(cfg *inspectConfig) error {
		if g == nil {
			return &tperrors.ConfigError{Option: "grammar", Message: "inspect: grammar cannot be nil"}
		}
		cfg.grammar = g
		return nil
	}
}

// WithGrammarName sets the grammar by name ("posix", "unix" or "windows").
func WithGrammarName(name string) Option {
	return func(cfg *inspectConfig) error {
		g, err := options.ResolveGrammar(name, grammar.NamePosix)
		if err != nil {
			return fmt.Errorf("inspect: %w", err)
		}
		cfg.grammar = g
		return nil
	}
}

// WithLogger sets the logger for debug output.
// If nil, the option has no effect (NopLogger stays in place).
func WithLogger(l Logger) Option {
	return func(cfg *inspectConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithMaxLength rejects inputs longer than n bytes.
// Default: 0 (no limit)
func WithMaxLength(n int) Option {
	return func(cfg *inspectConfig) error {
		if n < 0 {
			return &tperrors.ConfigError{Option: "max_length", Value: n, Message: "inspect: cannot be negative"}
		}
		cfg.maxLength = n
		return nil
	}
}

// WithValidation enables or disables component validation in the report.
// Default: true
func WithValidation(enabled bool) Option {
	return func(cfg *inspectConfig) error {
		cfg.validate = enabled
		return nil
	}
}
