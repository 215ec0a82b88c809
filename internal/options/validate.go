// Package options provides shared utilities for option validation across packages.
package options

import (
	"strconv"
	"strings"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/tperrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
// Errors are *tperrors.ConfigError for the "input" option.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &tperrors.ConfigError{Option: "input", Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &tperrors.ConfigError{Option: "input", Value: sourceCount, Message: multiSourceMsg}
	}

	return nil
}

// ResolveGrammar looks up a grammar by name. An empty name resolves to
// fallback.
func ResolveGrammar(name, fallback string) (grammar.Grammar, error) {
	if strings.TrimSpace(name) == "" {
		name = fallback
	}
	g, ok := grammar.ByName(name)
	if !ok {
		return nil, &tperrors.ConfigError{
			Option:  "grammar",
			Value:   name,
			Message: "must be one of " + strings.Join(grammar.Names(), ", "),
		}
	}
	return g, nil
}

// ValidateMaxLength rejects inputs longer than limit. A limit <= 0 disables
// the check.
func ValidateMaxLength(option string, input []byte, limit int) error {
	if limit > 0 && len(input) > limit {
		return &tperrors.ConfigError{
			Option:  option,
			Value:   len(input),
			Message: "exceeds the maximum length of " + strconv.Itoa(limit) + " bytes",
		}
	}
	return nil
}
