package mcpserver

import (
	"context"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type prefixInput struct {
	Path string `json:"path" jsonschema:"The Windows path whose prefix to parse"`
}

type prefixOutput struct {
	Found  bool                `json:"found"`
	Prefix *inspect.PrefixInfo `json:"prefix,omitempty"`
	// Rest is the part of the path after the prefix.
	Rest string `json:"rest"`
}

func handlePrefix(_ context.Context, _ *mcp.CallToolRequest, input prefixInput) (*mcp.CallToolResult, prefixOutput, error) {
	if err := checkInput("path", input.Path); err != nil {
		return errResult(err), prefixOutput{}, nil
	}

	info, ok := inspect.Prefix(input.Path)
	if !ok {
		return nil, prefixOutput{Rest: input.Path}, nil
	}
	return nil, prefixOutput{
		Found:  true,
		Prefix: info,
		Rest:   input.Path[info.Length:],
	}, nil
}
