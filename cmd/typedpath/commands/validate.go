package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
	"github.com/chipsenkbeil/typed-path-sub000/internal/cliutil"
	"github.com/chipsenkbeil/typed-path-sub000/tperrors"
)

// ValidationResult is the structured output of the validate command for one
// path.
type ValidationResult struct {
	Path      string `json:"path" yaml:"path"`
	Valid     bool   `json:"valid" yaml:"valid"`
	Problem   string `json:"problem,omitempty" yaml:"problem,omitempty"`
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
	Offset    int    `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// ErrInvalidPaths is returned by the validate command when a path fails.
var ErrInvalidPaths = errors.New("invalid paths")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>...",
		Short: "Check that every component of a path is a legal name",
		Long: `Check that every normal component of each path can exist under the
grammar: no NUL byte, no disallowed byte (windows: \ / : ? * " < > |) and no
reserved device name (windows: CON, PRN, AUX, NUL, COM1-9, LPT1-9).

Each '-' argument reads the next line of stdin. Exits with an error when
any path is invalid.`,
		Example: `  typedpath validate /etc/hosts
  typedpath validate -g windows 'C:\dir\aux.txt' 'C:\a\b:c'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			paths, err := newPathReader(cc.InOrStdin()).ReadAll(args)
			if err != nil {
				return err
			}

			results := make([]ValidationResult, 0, len(paths))
			invalid := 0
			for _, path := range paths {
				if err := a.checkLength("path", path); err != nil {
					return err
				}

				res := ValidationResult{Path: path, Valid: true}
				if err := inspect.Validate(a.grammar, path); err != nil {
					invalid++
					res.Valid = false
					res.Problem = err.Error()
					var ice *tperrors.InvalidComponentError
					if errors.As(err, &ice) {
						res.Component = ice.Component
						res.Offset = ice.Offset
					}
					a.logger.Debug("invalid path", "path", path, "error", err)
				}
				results = append(results, res)
			}

			if err := a.emit(cc, results, func(w io.Writer, s *styles) {
				for _, r := range results {
					if r.Valid {
						cliutil.Writef(w, "%s %s\n", s.OK.Render("✓"), r.Path)
					} else {
						cliutil.Writef(w, "%s %s: %s\n", s.Bad.Render("✗"), r.Path, r.Problem)
					}
				}
			}); err != nil {
				return err
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidPaths, invalid, len(args))
			}
			return nil
		},
	}
}
