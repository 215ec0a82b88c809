package commands

import (
	"github.com/spf13/cobra"

	typedpath "github.com/chipsenkbeil/typed-path-sub000"
	"github.com/chipsenkbeil/typed-path-sub000/internal/cliutil"
)

func newVersionCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version of the typedpath CLI",
		Args:  cobra.NoArgs,
		Run: func(cc *cobra.Command, _ []string) {
			if verbose {
				cliutil.Writef(cc.OutOrStdout(), "%s", typedpath.BuildInfo())
				return
			}
			cliutil.Writef(cc.OutOrStdout(), "typedpath v%s\n", typedpath.Version())
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show commit, build time and Go version")
	return cmd
}
