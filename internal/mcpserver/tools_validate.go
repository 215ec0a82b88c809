package mcpserver

import (
	"context"
	"errors"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
	"github.com/chipsenkbeil/typed-path-sub000/tperrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Path    string `json:"path"              jsonschema:"The path whose components to check"`
	Grammar string `json:"grammar,omitempty" jsonschema:"Path grammar: posix, unix or windows"`
}

type validateOutput struct {
	Grammar   string `json:"grammar"`
	Valid     bool   `json:"valid"`
	Message   string `json:"message,omitempty"`
	Component string `json:"component,omitempty"`
	Offset    int    `json:"offset,omitempty"`
	Reserved  bool   `json:"reserved,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	g, err := resolveGrammar(input.Grammar)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	if err := checkInput("path", input.Path); err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{Grammar: g.Name(), Valid: true}
	if err := inspect.Validate(g, input.Path); err != nil {
		output.Valid = false
		output.Message = err.Error()
		var ice *tperrors.InvalidComponentError
		if errors.As(err, &ice) {
			output.Component = ice.Component
			output.Offset = ice.Offset
			output.Reserved = ice.Reserved
		}
	}
	return nil, output, nil
}
