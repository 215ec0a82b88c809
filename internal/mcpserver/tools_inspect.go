package mcpserver

import (
	"context"
	"log/slog"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectInput struct {
	Path     string `json:"path"               jsonschema:"The path to describe"`
	Grammar  string `json:"grammar,omitempty"  jsonschema:"Path grammar: posix, unix or windows"`
	Validate *bool  `json:"validate,omitempty" jsonschema:"Report invalid components (default from TYPEDPATH_VALIDATE)"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspect.Report, error) {
	g, err := resolveGrammar(input.Grammar)
	if err != nil {
		return errResult(err), inspect.Report{}, nil
	}

	validate := cfg.Validate
	if input.Validate != nil {
		validate = *input.Validate
	}

	report, err := inspect.Inspect(
		inspect.WithPath(input.Path),
		inspect.WithGrammar(g),
		inspect.WithValidation(validate),
		inspect.WithMaxLength(cfg.MaxInputLength),
		inspect.WithLogger(inspect.NewSlogAdapter(slog.Default())),
	)
	if err != nil {
		return errResult(err), inspect.Report{}, nil
	}
	return nil, *report, nil
}
