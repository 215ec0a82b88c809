package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
	"github.com/chipsenkbeil/typed-path-sub000/internal/cliutil"
)

// PushResult is the structured output of the push command.
type PushResult struct {
	Grammar  string   `json:"grammar" yaml:"grammar"`
	Base     string   `json:"base" yaml:"base"`
	Paths    []string `json:"paths" yaml:"paths"`
	Result   string   `json:"result" yaml:"result"`
	Absolute bool     `json:"absolute" yaml:"absolute"`
}

func newPushCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "push <base> [path...]",
		Short: "Extend a base path with more paths",
		Long: `Extend a base path with each path in turn.

An absolute path replaces the result so far. With the windows grammar a
rooted path such as '\etc' keeps the drive of the base, and a verbatim base
such as '\\?\C:\x' resolves '..' and '.' while joining. Each '-' argument
reads the next line of stdin.`,
		Example: `  typedpath push /tmp file.bk
  typedpath push -g windows 'C:\tmp' '\etc'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			args, err := newPathReader(cc.InOrStdin()).ReadAll(args)
			if err != nil {
				return err
			}
			for i, p := range args {
				if err := a.checkLength(fmt.Sprintf("args[%d]", i), p); err != nil {
					return err
				}
			}
			base, paths := args[0], args[1:]

			result := inspect.Push(a.grammar, base, paths...)
			report, err := inspect.Inspect(
				inspect.WithPath(result),
				inspect.WithGrammar(a.grammar),
				inspect.WithValidation(false),
			)
			if err != nil {
				return err
			}

			out := PushResult{
				Grammar:  a.grammar.Name(),
				Base:     base,
				Paths:    paths,
				Result:   result,
				Absolute: report.Absolute,
			}
			if out.Paths == nil {
				out.Paths = []string{}
			}
			return a.emit(cc, out, func(w io.Writer, s *styles) {
				cliutil.Writef(w, "%s\n", s.Value.Render(result))
			})
		},
	}
}
