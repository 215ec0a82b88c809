// Package component splits paths into components.
//
// [Parse] returns a [Components] stream over a byte slice. The stream can be
// consumed from the front with Next, from the back with NextBack, or from
// both ends in any interleaving; either way it yields the same components:
//
//	comps := component.ParseString[grammar.Posix]("/usr//lib/./go/")
//	for c := range comps.All() {
//	    fmt.Println(c) // RootDir, Normal(usr), Normal(lib), Normal(go)
//	}
//
// Parsing is lexical and never fails. Repeated separators collapse, a
// trailing separator is dropped, and `.` segments are elided except at the
// start of a relative path. `..` is never resolved. Paths with a Windows
// verbatim prefix (`\\?\`) keep their `.` segments and only split at `\`.
//
// Components alias the parsed buffer. They must not be used after the
// buffer is modified.
package component
