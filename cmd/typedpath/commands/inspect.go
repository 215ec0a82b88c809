package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
)

func newInspectCmd(a *app) *cobra.Command {
	var noValidate bool

	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Describe a path",
		Long: `Describe a path: its normalized form, whether it is absolute, its prefix,
parent, file name, stem, extension and components. Invalid components are
reported unless --no-validate is given. Pass '-' to read the path from stdin.`,
		Example: `  typedpath inspect /usr/lib/libc.so.6
  typedpath inspect -g windows -f yaml '\\server\share\dir\a.tar.gz'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			path, err := newPathReader(cc.InOrStdin()).Read(args[0])
			if err != nil {
				return err
			}

			report, err := inspect.Inspect(
				inspect.WithPath(path),
				inspect.WithGrammar(a.grammar),
				inspect.WithLogger(inspect.NewSlogAdapter(a.logger)),
				inspect.WithMaxLength(a.cfg.MaxLength),
				inspect.WithValidation(!noValidate),
			)
			if err != nil {
				return err
			}

			return a.emit(cc, report, func(w io.Writer, s *styles) {
				renderReport(w, s, report)
			})
		},
	}

	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "Do not check components for disallowed bytes and reserved names")
	return cmd
}
