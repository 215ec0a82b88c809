package mcpserver

import (
	"context"
	"fmt"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type pushInput struct {
	Base    string   `json:"base"              jsonschema:"The path to extend"`
	Paths   []string `json:"paths"             jsonschema:"Paths to push onto base, in order"`
	Grammar string   `json:"grammar,omitempty" jsonschema:"Path grammar: posix, unix or windows"`
}

type pushOutput struct {
	Grammar  string `json:"grammar"`
	Result   string `json:"result"`
	Absolute bool   `json:"absolute"`
}

func handlePush(_ context.Context, _ *mcp.CallToolRequest, input pushInput) (*mcp.CallToolResult, pushOutput, error) {
	g, err := resolveGrammar(input.Grammar)
	if err != nil {
		return errResult(err), pushOutput{}, nil
	}
	if len(input.Paths) > cfg.MaxPushPaths {
		return errResult(fmt.Errorf("too many paths: %d exceeds the maximum of %d", len(input.Paths), cfg.MaxPushPaths)), pushOutput{}, nil
	}
	if err := checkInput("base", input.Base); err != nil {
		return errResult(err), pushOutput{}, nil
	}
	for i, p := range input.Paths {
		if err := checkInput(fmt.Sprintf("paths[%d]", i), p); err != nil {
			return errResult(err), pushOutput{}, nil
		}
	}

	result := inspect.Push(g, input.Base, input.Paths...)
	report, err := inspect.Inspect(
		inspect.WithPath(result),
		inspect.WithGrammar(g),
		inspect.WithValidation(false),
	)
	if err != nil {
		return errResult(err), pushOutput{}, nil
	}

	return nil, pushOutput{
		Grammar:  g.Name(),
		Result:   result,
		Absolute: report.Absolute,
	}, nil
}
