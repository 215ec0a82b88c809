// Package grammar defines the two path grammars understood by typed-path and
// the Windows prefix sub-grammar.
//
// A grammar is selected statically through a type parameter:
//
//	comps := component.Parse[grammar.Windows]([]byte(`C:\Users\me`))
//
// [Posix] separates components with '/' and never has a prefix. [Windows]
// separates with '\' and also accepts '/', except inside a verbatim path.
//
// # Windows prefixes
//
// [ParseWindowsPrefix] recognizes the six prefix forms:
//
//	\\?\UNC\server\share   VerbatimUNC   8 + |server| + (1 + |share| if share != "")
//	\\?\C:                 VerbatimDisk  6
//	\\?\name               Verbatim      4 + |name|
//	\\.\name               DeviceNS      4 + |name|
//	\\server\share         UNC           2 + |server| + (1 + |share| if share != "")
//	C:                     Disk          2
//
// [Prefix.Len] computes the byte length with the formulas above, so the
// prefix span never has to be re-scanned.
package grammar
