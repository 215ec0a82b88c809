package inspect

import (
	"fmt"
	"iter"

	"github.com/chipsenkbeil/typed-path-sub000/component"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/pathbuf"
)

// Inspect parses a path and describes it.
//
// Example:
//
//	report, err := inspect.Inspect(
//	    inspect.WithPath(`\\server\share\dir`),
//	    inspect.WithGrammarName("windows"),
//	)
func Inspect(opts ...Option) (*Report, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("inspect: invalid options: %w", err)
	}

	var report *Report
	switch cfg.grammar.(type) {
	case grammar.Windows:
		report = build[grammar.Windows](cfg)
	default:
		report = build[grammar.Posix](cfg)
	}

	cfg.logger.Debug("inspected path",
		"grammar", report.Grammar,
		"components", len(report.Components),
		"absolute", report.Absolute,
	)
	if report.Problem != "" {
		cfg.logger.Warn("path holds an invalid component", "problem", report.Problem)
	}
	return report, nil
}

func build[G grammar.Grammar](cfg *inspectConfig) *Report {
	var g G
	input := cfg.input()
	comps := component.Parse[G](input)

	report := &Report{
		Grammar:    g.Name(),
		Input:      string(input),
		Normalized: string(pathbuf.Normalize[G](input)),
		Absolute:   comps.IsAbsolute(),
		HasRoot:    comps.HasRoot(),
		Parent:     optionalString(pathbuf.Parent[G](input)),
		FileName:   optionalString(pathbuf.FileName[G](input)),
		FileStem:   optionalString(pathbuf.FileStem[G](input)),
		Extension:  optionalString(pathbuf.Extension[G](input)),
		Components: make([]ComponentInfo, 0, comps.Len()),
	}
	if p, ok := comps.Prefix(); ok {
		report.Prefix = NewPrefixInfo(p)
	}
	for c := range comps.All() {
		report.Components = append(report.Components, NewComponentInfo(c))
	}
	if cfg.validate {
		if err := pathbuf.Validate[G](input); err != nil {
			report.Problem = err.Error()
		}
	}
	return report
}

// Components parses path with g and describes each component.
func Components(g grammar.Grammar, path string) []ComponentInfo {
	switch g.(type) {
	case grammar.Windows:
		return components[grammar.Windows](path)
	default:
		return components[grammar.Posix](path)
	}
}

// ComponentsBackward is Components listed from the last component, produced
// by the backward pass.
func ComponentsBackward(g grammar.Grammar, path string) []ComponentInfo {
	switch g.(type) {
	case grammar.Windows:
		return collectInfo(component.ParseString[grammar.Windows](path).Backward())
	default:
		return collectInfo(component.ParseString[grammar.Posix](path).Backward())
	}
}

func components[G grammar.Grammar](path string) []ComponentInfo {
	return collectInfo(component.ParseString[G](path).All())
}

func collectInfo(seq iter.Seq[component.Component]) []ComponentInfo {
	var out []ComponentInfo
	for c := range seq {
		out = append(out, NewComponentInfo(c))
	}
	return out
}

// Push extends base with each path in order using g.
func Push(g grammar.Grammar, base string, paths ...string) string {
	switch g.(type) {
	case grammar.Windows:
		return push[grammar.Windows](base, paths)
	default:
		return push[grammar.Posix](base, paths)
	}
}

func push[G grammar.Grammar](base string, paths []string) string {
	b := pathbuf.FromString[G](base)
	for _, p := range paths {
		b.PushString(p)
	}
	return b.String()
}

// Validate checks every normal component of path against g.
func Validate(g grammar.Grammar, path string) error {
	switch g.(type) {
	case grammar.Windows:
		return pathbuf.Validate[grammar.Windows]([]byte(path))
	default:
		return pathbuf.Validate[grammar.Posix]([]byte(path))
	}
}

// Prefix parses the Windows prefix of path, if any.
func Prefix(path string) (*PrefixInfo, bool) {
	p, ok := grammar.ParseWindowsPrefix([]byte(path))
	if !ok {
		return nil, false
	}
	return NewPrefixInfo(p), true
}
