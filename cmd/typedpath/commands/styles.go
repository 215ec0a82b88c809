package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/chipsenkbeil/typed-path-sub000/inspect"
	"github.com/chipsenkbeil/typed-path-sub000/internal/cliutil"
)

// styles holds the text output styles. Colors are only emitted when the
// destination writer is a terminal.
type styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Kind    lipgloss.Style
	Value   lipgloss.Style
	Dim     lipgloss.Style
	OK      lipgloss.Style
	Bad     lipgloss.Style
}

func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	return &styles{
		Heading: r.NewStyle().Bold(true),
		Label:   r.NewStyle().Foreground(lipgloss.Color("36")),
		Kind:    r.NewStyle().Foreground(lipgloss.Color("212")),
		Value:   r.NewStyle(),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("241")),
		OK:      r.NewStyle().Foreground(lipgloss.Color("42")),
		Bad:     r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func renderComponents(w io.Writer, s *styles, comps []inspect.ComponentInfo) {
	for _, c := range comps {
		cliutil.Writef(w, "%s  %s  %s\n",
			s.Dim.Render(fmt.Sprintf("%4d", c.Offset)),
			s.Kind.Render(fmt.Sprintf("%-17s", c.Label)),
			s.Value.Render(c.Value),
		)
	}
}

func renderReport(w io.Writer, s *styles, r *inspect.Report) {
	row := func(label, value string) {
		cliutil.Writef(w, "%s %s\n", s.Label.Render(fmt.Sprintf("%-11s", label+":")), value)
	}
	optional := func(label string, value *string) {
		if value != nil {
			row(label, *value)
		}
	}

	row("Grammar", r.Grammar)
	row("Input", r.Input)
	row("Normalized", r.Normalized)
	row("Absolute", strconv.FormatBool(r.Absolute))
	row("Has Root", strconv.FormatBool(r.HasRoot))
	if r.Prefix != nil {
		row("Prefix", fmt.Sprintf("%s (%d bytes)", r.Prefix.Kind, r.Prefix.Length))
	}
	optional("Parent", r.Parent)
	optional("File Name", r.FileName)
	optional("Stem", r.FileStem)
	optional("Extension", r.Extension)
	if r.Problem != "" {
		row("Problem", s.Bad.Render(r.Problem))
	}

	cliutil.Writef(w, "\n%s\n", s.Heading.Render("Components"))
	renderComponents(w, s, r.Components)
}
