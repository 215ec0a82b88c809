// Package pathbuf extends and queries paths without touching the filesystem.
//
// [Push] is the path-extension algorithm. It follows the precedence rules
// applications already rely on:
//
//	pathbuf.PushString[grammar.Posix]("/tmp", "file.bk")        // "/tmp/file.bk"
//	pathbuf.PushString[grammar.Posix]("/tmp", "/etc")           // "/etc"
//	pathbuf.PushString[grammar.Windows](`C:\tmp`, `\etc`)       // `C:\etc`
//	pathbuf.PushString[grammar.Windows](`\\?\C:\foo`, `..\bar`) // `\\?\C:\bar`
//
// [PathBuf] wraps a byte slice with push, pop and file name editing. The
// [PosixPathBuf] and [WindowsPathBuf] aliases fix the grammar.
//
// The queries ([Parent], [FileName], [FileStem], [Extension], [StripPrefix]
// and friends) are lexical: `..` is never resolved and symlinks are never
// followed.
package pathbuf
