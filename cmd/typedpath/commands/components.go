package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
)

func newComponentsCmd(a *app) *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "components <path>",
		Short: "List the components of a path",
		Long: `List the components of a path with their byte offsets.

Repeated separators and interior '.' segments are dropped, '..' is kept, and
a leading '.' is kept as a current-directory component. Pass '-' to read the
path from stdin.`,
		Example: `  typedpath components a//b/./c
  typedpath components -g windows 'C:\tmp\..\file.txt'
  typedpath components --reverse -f json /usr/local/bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			path, err := newPathReader(cc.InOrStdin()).Read(args[0])
			if err != nil {
				return err
			}
			if err := a.checkLength("path", path); err != nil {
				return err
			}

			var comps []inspect.ComponentInfo
			if reverse {
				comps = inspect.ComponentsBackward(a.grammar, path)
			} else {
				comps = inspect.Components(a.grammar, path)
			}
			if comps == nil {
				comps = []inspect.ComponentInfo{}
			}
			a.logger.Debug("parsed components", "grammar", a.grammar.Name(), "count", len(comps))

			return a.emit(cc, comps, func(w io.Writer, s *styles) {
				renderComponents(w, s, comps)
			})
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "List components from the last one backwards")
	return cmd
}
