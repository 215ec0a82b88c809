package commands

import (
	"github.com/spf13/cobra"

	"github.com/chipsenkbeil/typed-path-sub000/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve typedpath as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
components, push, prefix, inspect and validate tools.

The server is configured through TYPEDPATH_* environment variables
(TYPEDPATH_GRAMMAR, TYPEDPATH_MAX_INPUT, ...) set in the MCP client config.`,
		Args: cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return mcpserver.Run(cc.Context())
		},
	}
}
