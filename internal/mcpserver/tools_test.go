package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig is the default configuration with a fixed posix default grammar.
func testConfig() *serverConfig {
	return &serverConfig{
		DefaultGrammar: "posix",
		MaxInputLength: 1024,
		MaxPushPaths:   4,
		ComponentLimit: 100,
		MaxLimit:       1000,
		Validate:       true,
	}
}

func TestComponentsTool(t *testing.T) {
	withConfig(t, testConfig())

	t.Run("posix", func(t *testing.T) {
		result, output, err := handleComponents(context.Background(), &mcp.CallToolRequest{}, componentsInput{
			Path: "a//b/./c/../d",
		})
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "posix", output.Grammar)
		assert.Equal(t, 5, output.Total)
		assert.Equal(t, 5, output.Returned)

		var values []string
		for _, c := range output.Components {
			values = append(values, c.Value)
		}
		assert.Equal(t, []string{"a", "b", "c", "..", "d"}, values)
		assert.Equal(t, "ParentDir", output.Components[3].Kind)
		assert.Equal(t, "Parent Directory", output.Components[3].Label)
	})

	t.Run("windows with offsets", func(t *testing.T) {
		_, output, err := handleComponents(context.Background(), &mcp.CallToolRequest{}, componentsInput{
			Path:    `C:\a\..\b`,
			Grammar: "windows",
		})
		require.NoError(t, err)
		require.Len(t, output.Components, 5)
		assert.Equal(t, "Prefix", output.Components[0].Kind)
		assert.Equal(t, "C:", output.Components[0].Value)
		assert.Equal(t, "RootDir", output.Components[1].Kind)
		assert.Equal(t, 2, output.Components[1].Offset)
		assert.Equal(t, 8, output.Components[4].Offset)
	})

	t.Run("reverse and paginate", func(t *testing.T) {
		_, output, err := handleComponents(context.Background(), &mcp.CallToolRequest{}, componentsInput{
			Path:    "/usr/local/bin",
			Reverse: true,
			Offset:  1,
			Limit:   2,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, output.Total)
		require.Equal(t, 2, output.Returned)
		assert.Equal(t, "local", output.Components[0].Value)
		assert.Equal(t, "usr", output.Components[1].Value)
	})

	t.Run("unknown grammar", func(t *testing.T) {
		result, _, err := handleComponents(context.Background(), &mcp.CallToolRequest{}, componentsInput{
			Path:    "a",
			Grammar: "amiga",
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})

	t.Run("input too long", func(t *testing.T) {
		withConfig(t, &serverConfig{DefaultGrammar: "posix", MaxInputLength: 3})
		result, _, err := handleComponents(context.Background(), &mcp.CallToolRequest{}, componentsInput{Path: "/a/b/c"})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}

func TestPushTool(t *testing.T) {
	withConfig(t, testConfig())

	tests := []struct {
		name     string
		input    pushInput
		want     string
		absolute bool
	}{
		{"posix absolute replaces", pushInput{Base: "/tmp", Paths: []string{"/etc"}}, "/etc", true},
		{"posix relative appends", pushInput{Base: "/tmp", Paths: []string{"file.bk"}}, "/tmp/file.bk", true},
		{"posix several", pushInput{Base: "a", Paths: []string{"b", "c/"}}, "a/b/c/", false},
		{"windows rooted keeps drive", pushInput{Base: `C:\tmp`, Paths: []string{`\etc`}, Grammar: "windows"}, `C:\etc`, true},
		{"windows relative", pushInput{Base: `C:\tmp`, Paths: []string{"file.bk"}, Grammar: "windows"}, `C:\tmp\file.bk`, true},
		{"windows verbatim resolves parent", pushInput{Base: `\\?\C:\foo`, Paths: []string{`..\bar`}, Grammar: "windows"}, `\\?\C:\bar`, true},
		{"no paths", pushInput{Base: "/tmp"}, "/tmp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handlePush(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output.Result)
			assert.Equal(t, tt.absolute, output.Absolute)
		})
	}

	t.Run("too many paths", func(t *testing.T) {
		result, _, err := handlePush(context.Background(), &mcp.CallToolRequest{}, pushInput{
			Base:  "a",
			Paths: []string{"1", "2", "3", "4", "5"},
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}

func TestPrefixTool(t *testing.T) {
	withConfig(t, testConfig())

	t.Run("unc", func(t *testing.T) {
		_, output, err := handlePrefix(context.Background(), &mcp.CallToolRequest{}, prefixInput{Path: `\\server\share\dir`})
		require.NoError(t, err)
		require.True(t, output.Found)
		assert.Equal(t, "UNC", output.Prefix.Kind)
		assert.Equal(t, 14, output.Prefix.Length)
		assert.Equal(t, "server", output.Prefix.Server)
		assert.Equal(t, "share", output.Prefix.Share)
		assert.Equal(t, `\dir`, output.Rest)
	})

	t.Run("verbatim disk", func(t *testing.T) {
		_, output, err := handlePrefix(context.Background(), &mcp.CallToolRequest{}, prefixInput{Path: `\\?\c:\x`})
		require.NoError(t, err)
		require.True(t, output.Found)
		assert.Equal(t, "VerbatimDisk", output.Prefix.Kind)
		assert.Equal(t, "C", output.Prefix.Letter)
		assert.True(t, output.Prefix.Verbatim)
		assert.Equal(t, `\x`, output.Rest)
	})

	t.Run("none", func(t *testing.T) {
		_, output, err := handlePrefix(context.Background(), &mcp.CallToolRequest{}, prefixInput{Path: `dir\file`})
		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Nil(t, output.Prefix)
		assert.Equal(t, `dir\file`, output.Rest)
	})
}

func TestInspectTool(t *testing.T) {
	withConfig(t, testConfig())

	_, report, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, inspectInput{
		Path:    `C:\Users\me\file.tar.gz`,
		Grammar: "windows",
	})
	require.NoError(t, err)
	assert.Equal(t, "windows", report.Grammar)
	assert.True(t, report.Absolute)
	require.NotNil(t, report.FileName)
	assert.Equal(t, "file.tar.gz", *report.FileName)
	require.NotNil(t, report.FileStem)
	assert.Equal(t, "file.tar", *report.FileStem)
	require.NotNil(t, report.Extension)
	assert.Equal(t, "gz", *report.Extension)
	require.NotNil(t, report.Parent)
	assert.Equal(t, `C:\Users\me`, *report.Parent)
	assert.Empty(t, report.Problem)

	t.Run("problem reported", func(t *testing.T) {
		_, report, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, inspectInput{
			Path:    `C:\dir\aux`,
			Grammar: "windows",
		})
		require.NoError(t, err)
		assert.Contains(t, report.Problem, "reserved name")
	})

	t.Run("validation disabled", func(t *testing.T) {
		off := false
		_, report, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, inspectInput{
			Path:     `C:\dir\aux`,
			Grammar:  "windows",
			Validate: &off,
		})
		require.NoError(t, err)
		assert.Empty(t, report.Problem)
	})
}

func TestValidateTool(t *testing.T) {
	withConfig(t, testConfig())

	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{Path: "/a/b:c"})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Message)

	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Path:    `C:\a\b:c`,
		Grammar: "windows",
	})
	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.Equal(t, "b:c", output.Component)
	assert.Equal(t, 5, output.Offset)
	assert.False(t, output.Reserved)
	assert.Contains(t, output.Message, "disallowed byte ':'")

	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Path:    `lpt1.txt`,
		Grammar: "windows",
	})
	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.True(t, output.Reserved)
}
