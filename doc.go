// Package typedpath provides OS-independent path parsing and joining.
//
// Paths are handled as raw bytes under an explicit grammar, never under the
// rules of the host the program runs on: a program on Linux can take apart
// `\\server\share\dir` exactly the way Windows would, and one on Windows can
// join POSIX paths without turning '/' into '\'. Nothing in the library touches
// a filesystem.
//
// # Overview
//
// The library consists of these packages:
//
//   - grammar: the Posix and Windows grammars and the Windows prefix parser
//   - component: the component model and the double-ended component stream
//   - pathbuf: the push algorithm, the owned PathBuf type and lexical queries
//   - inspect: a functional-options front end that describes a path
//   - tperrors: structured error types shared by the packages above
//
// # Grammars
//
// A grammar decides which bytes separate components, which names are legal
// and whether paths may start with a prefix. POSIX paths use '/' only and have
// no prefixes. Windows paths accept '\' and '/' and may start with one of six
// prefixes:
//
//	\\?\name            Verbatim
//	\\?\UNC\srv\share   VerbatimUNC
//	\\?\C:              VerbatimDisk
//	\\.\name            DeviceNS
//	\\srv\share         UNC
//	C:                  Disk
//
// Verbatim prefixes turn off normalization: after `\\?\` only '\' separates
// components and '.' is kept as a component.
//
// # Quick Start
//
// Walk the components of a Windows path from either end:
//
//	import "github.com/chipsenkbeil/typed-path-sub000/component"
//	import "github.com/chipsenkbeil/typed-path-sub000/grammar"
//
//	comps := component.ParseString[grammar.Windows](`C:\tmp\..\file.txt`)
//	for c := range comps.All() {
//		fmt.Println(c.Kind(), c)
//	}
//	last, _ := comps.NextBack() // "file.txt"
//
// Join paths the way the target platform would:
//
//	import "github.com/chipsenkbeil/typed-path-sub000/pathbuf"
//
//	p := pathbuf.FromString[grammar.Windows](`C:\tmp`)
//	p.PushString(`\etc`)
//	fmt.Println(p) // C:\etc
//
// Describe a path:
//
//	import "github.com/chipsenkbeil/typed-path-sub000/inspect"
//
//	report, err := inspect.Inspect(
//		inspect.WithPath(`\\server\share\dir\a.tar.gz`),
//		inspect.WithGrammarName("windows"),
//	)
//
// # Command-Line Tool
//
// The typedpath command exposes the same operations:
//
//	typedpath components --grammar windows 'C:\a\..\b'
//	typedpath push /tmp a b.txt
//	typedpath inspect --format yaml '\\?\C:\x'
//	typedpath validate --grammar windows 'C:\dir\aux'
//	typedpath mcp
//
// The mcp sub-command serves the operations as Model Context Protocol tools
// over stdio.
package typedpath
