package inspect

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chipsenkbeil/typed-path-sub000/component"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

// Report describes a parsed path.
type Report struct {
	Grammar    string          `json:"grammar" yaml:"grammar"`
	Input      string          `json:"input" yaml:"input"`
	Normalized string          `json:"normalized" yaml:"normalized"`
	Absolute   bool            `json:"absolute" yaml:"absolute"`
	HasRoot    bool            `json:"has_root" yaml:"has_root"`
	Prefix     *PrefixInfo     `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Parent     *string         `json:"parent,omitempty" yaml:"parent,omitempty"`
	FileName   *string         `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	FileStem   *string         `json:"file_stem,omitempty" yaml:"file_stem,omitempty"`
	Extension  *string         `json:"extension,omitempty" yaml:"extension,omitempty"`
	Components []ComponentInfo `json:"components" yaml:"components"`
	// Problem is the validation failure, empty when the path is valid or
	// validation was disabled.
	Problem string `json:"problem,omitempty" yaml:"problem,omitempty"`
}

// PrefixInfo describes a Windows prefix.
type PrefixInfo struct {
	Kind     string `json:"kind" yaml:"kind"`
	Length   int    `json:"length" yaml:"length"`
	Verbatim bool   `json:"verbatim" yaml:"verbatim"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Server   string `json:"server,omitempty" yaml:"server,omitempty"`
	Share    string `json:"share,omitempty" yaml:"share,omitempty"`
	Letter   string `json:"letter,omitempty" yaml:"letter,omitempty"`
}

// ComponentInfo describes one component.
type ComponentInfo struct {
	Kind   string `json:"kind" yaml:"kind"`
	Label  string `json:"label" yaml:"label"`
	Offset int    `json:"offset" yaml:"offset"`
	Value  string `json:"value" yaml:"value"`
}

var kindLabels = map[component.Kind]string{
	component.KindPrefix:    "prefix",
	component.KindRootDir:   "root directory",
	component.KindCurDir:    "current directory",
	component.KindParentDir: "parent directory",
	component.KindNormal:    "name",
}

// Label returns a human-readable, title-cased label for k, e.g.
// "Parent Directory".
func Label(k component.Kind) string {
	l, ok := kindLabels[k]
	if !ok {
		l = k.String()
	}
	return cases.Title(language.English).String(l)
}

// NewPrefixInfo describes p.
func NewPrefixInfo(p grammar.Prefix) *PrefixInfo {
	info := &PrefixInfo{
		Kind:     p.Kind.String(),
		Length:   p.Len(),
		Verbatim: p.IsVerbatim(),
		Name:     string(p.Name),
		Server:   string(p.Server),
		Share:    string(p.Share),
	}
	if p.Letter != 0 {
		info.Letter = string(p.Letter)
	}
	return info
}

// NewComponentInfo describes c.
func NewComponentInfo(c component.Component) ComponentInfo {
	return ComponentInfo{
		Kind:   c.Kind().String(),
		Label:  Label(c.Kind()),
		Offset: c.Offset(),
		Value:  string(c.Bytes()),
	}
}

func optionalString(b []byte, ok bool) *string {
	if !ok {
		return nil
	}
	s := string(b)
	return &s
}
