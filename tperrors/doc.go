// Package tperrors provides structured error types for typed-path.
//
// Import path: github.com/chipsenkbeil/typed-path-sub000/tperrors
//
// Parsing a full path never fails. Errors only come from the operations that
// need exactly one component (such as [component.FromBytes]), from
// validation, and from invalid options.
//
// # Error Types
//
//   - [ParseError]: the input does not hold exactly one component
//   - [InvalidComponentError]: a component holds a disallowed byte or a reserved name
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrInvalidComponent]: Matches any [InvalidComponentError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	c, err := component.FromBytes[grammar.Windows]([]byte(`a\b`))
//	if errors.Is(err, tperrors.ErrParse) {
//	    // input was not a single component
//	}
package tperrors
