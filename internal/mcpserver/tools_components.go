package mcpserver

import (
	"context"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type componentsInput struct {
	Path    string `json:"path"              jsonschema:"The path to split into components"`
	Grammar string `json:"grammar,omitempty" jsonschema:"Path grammar: posix, unix or windows"`
	Reverse bool   `json:"reverse,omitempty" jsonschema:"List components from the last one backwards"`
	Offset  int    `json:"offset,omitempty"  jsonschema:"Number of components to skip"`
	Limit   int    `json:"limit,omitempty"   jsonschema:"Maximum number of components to return"`
}

type componentsOutput struct {
	Grammar    string                  `json:"grammar"`
	Total      int                     `json:"total"`
	Returned   int                     `json:"returned"`
	Components []inspect.ComponentInfo `json:"components,omitempty"`
}

func handleComponents(_ context.Context, _ *mcp.CallToolRequest, input componentsInput) (*mcp.CallToolResult, componentsOutput, error) {
	g, err := resolveGrammar(input.Grammar)
	if err != nil {
		return errResult(err), componentsOutput{}, nil
	}
	if err := checkInput("path", input.Path); err != nil {
		return errResult(err), componentsOutput{}, nil
	}

	var all []inspect.ComponentInfo
	if input.Reverse {
		all = inspect.ComponentsBackward(g, input.Path)
	} else {
		all = inspect.Components(g, input.Path)
	}
	page := paginate(all, input.Offset, input.Limit)

	return nil, componentsOutput{
		Grammar:    g.Name(),
		Total:      len(all),
		Returned:   len(page),
		Components: page,
	}, nil
}
