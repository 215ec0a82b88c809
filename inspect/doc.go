// Package inspect describes paths for tools and front ends.
//
// [Inspect] takes functional options and returns a [Report] with JSON and
// YAML tags, ready to be rendered by a CLI or returned from a tool call:
//
//	report, err := inspect.Inspect(
//	    inspect.WithPath(`C:\Users\me\notes.txt`),
//	    inspect.WithGrammarName("windows"),
//	    inspect.WithLogger(inspect.NewSlogAdapter(nil)),
//	)
//
// The grammar is chosen at run time here, unlike the generic packages: the
// helpers [Components], [Push] and [Validate] dispatch on a grammar.Grammar
// value.
package inspect
