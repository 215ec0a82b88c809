// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes typedpath capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	typedpath "github.com/chipsenkbeil/typed-path-sub000"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/internal/options"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `typedpath MCP server: parses, joins and validates filesystem paths under POSIX or Windows rules without touching any filesystem.

Every tool accepts an optional grammar ("posix", "unix" or "windows"). Windows paths are best passed with backslashes escaped as JSON requires, e.g. "C:\\tmp".

Configuration: All defaults are configurable via TYPEDPATH_* environment variables set in your MCP client config.

Key settings:
- TYPEDPATH_GRAMMAR (default: posix): grammar used when a call names none
- TYPEDPATH_MAX_INPUT (default: 32768): maximum path length in bytes
- TYPEDPATH_MAX_PUSH_PATHS (default: 64): maximum number of paths per push call
- TYPEDPATH_COMPONENT_LIMIT (default: 100): default page size for components
- TYPEDPATH_VALIDATE (default: true): report invalid components from inspect`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "typedpath", Version: typedpath.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "components",
		Description: "Split a path into its components (prefix, root directory, current directory, parent directory, normal names) with byte offsets. Repeated separators and interior '.' segments are dropped; '..' is kept. Use offset/limit to page through long paths. Set reverse=true to list from the last component.",
	}, handleComponents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "push",
		Description: "Extend a base path with one or more paths, in order. An absolute or prefixed path replaces the base; on Windows a rooted path like \\etc keeps the base drive. Verbatim (\\\\?\\) bases resolve '..' and '.' while joining.",
	}, handlePush)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "prefix",
		Description: "Parse the Windows prefix of a path: verbatim (\\\\?\\name), verbatim UNC, verbatim disk, device namespace (\\\\.\\name), UNC (\\\\server\\share) or disk (C:). Reports kind, byte length and parts.",
	}, handlePrefix)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Describe a path: normalized form, absoluteness, root, prefix, parent, file name, stem, extension and components. Invalid components are reported in problem unless validate=false.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check that every normal component of a path is a legal file name for the grammar: no NUL, no disallowed bytes (Windows: \\ / : ? * \" < > |), no reserved device names (CON, NUL, COM1, ...).",
	}, handleValidate)
}

// resolveGrammar resolves a tool's grammar argument, falling back to the
// configured default.
func resolveGrammar(name string) (grammar.Grammar, error) {
	return options.ResolveGrammar(name, cfg.DefaultGrammar)
}

// checkInput rejects path arguments longer than the configured limit.
func checkInput(option, path string) error {
	return options.ValidateMaxLength(option, []byte(path), cfg.MaxInputLength)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ComponentLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ComponentLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
