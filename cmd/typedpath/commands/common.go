// Package commands provides the cobra commands of the typedpath CLI.
package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/chipsenkbeil/typed-path-sub000/internal/cliutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinPath is the special path argument used to read a path from stdin.
const StdinPath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalStructured renders data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return out, nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
func OutputStructured(w io.Writer, data any, format string) error {
	out, err := MarshalStructured(data, format)
	if err != nil {
		return err
	}
	cliutil.Writef(w, "%s\n", strings.TrimRight(string(out), "\n"))
	return nil
}

// ErrNoStdinPath is returned when a StdinPath argument finds stdin exhausted.
var ErrNoStdinPath = errors.New("no path left on stdin")

// pathReader resolves path arguments. Each StdinPath argument consumes the
// next line of stdin, so one pathReader must serve a whole command run.
// Reading from stdin lets paths with quotes or backslashes bypass shell
// quoting.
type pathReader struct {
	in io.Reader
	r  *bufio.Reader
}

func newPathReader(in io.Reader) *pathReader {
	return &pathReader{in: in}
}

// Read returns arg, or the next line of stdin when arg is StdinPath.
func (p *pathReader) Read(arg string) (string, error) {
	if arg != StdinPath {
		return arg, nil
	}
	if p.r == nil {
		p.r = bufio.NewReader(p.in)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading path from stdin: %w", err)
	}
	if err == io.EOF && line == "" {
		return "", ErrNoStdinPath
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadAll resolves every argument in order.
func (p *pathReader) ReadAll(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := p.Read(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, nil
}
