package pathbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

type pushCase struct {
	current  string
	incoming string
	want     string
}

func TestPush_Posix(t *testing.T) {
	tests := []pushCase{
		{"/tmp", "file.bk", "/tmp/file.bk"},
		{"/tmp", "/etc", "/etc"},
		{"/tmp/", "file.bk", "/tmp/file.bk"},
		{"", "a", "a"},
		{"a", "", "a"},
		{"", "", ""},
		{"a", "../b", "a/../b"},
		{"a/b", ".", "a/b/."},
		{"/", "a", "/a"},
		{"a", `C:\x`, `a/C:\x`},
		{"a//", "b", "a//b"},
	}
	for _, tt := range tests {
		t.Run(tt.current+"+"+tt.incoming, func(t *testing.T) {
			assert.Equal(t, tt.want, PushString[grammar.Posix](tt.current, tt.incoming))
		})
	}
}

func TestPush_Windows(t *testing.T) {
	tests := []pushCase{
		// Relative append.
		{`C:\tmp`, `file.bk`, `C:\tmp\file.bk`},
		{`c:\`, `windows`, `c:\windows`},
		{`c:`, `windows`, `c:windows`},
		{`a\b\c`, `d`, `a\b\c\d`},
		{`\a\b\c`, `d`, `\a\b\c\d`},
		{`a/`, `b`, `a/b`},
		{`a\b`, `.`, `a\b\.`},
		{`a\b`, `..\c`, `a\b\..\c`},
		{`C:`, `a\b\c`, `C:a\b\c`},
		{`C:`, `..\a`, `C:..\a`},
		{`\\server\share\foo`, `bar`, `\\server\share\foo\bar`},
		{`\\server\share`, `a`, `\\server\share\a`},
		{`\\.\foo\bar`, `baz`, `\\.\foo\bar\baz`},
		{`\\.\foo`, `..\bar`, `\\.\foo\..\bar`},

		// Root without prefix keeps the current prefix.
		{`C:\tmp`, `\etc`, `C:\etc`},
		{`a\b`, `\c\d`, `\c\d`},
		{`\\server\share\x`, `\y`, `\\server\share\y`},
		{`C:a`, `/b`, `C:/b`},

		// Absolute or prefixed replaces.
		{`a\b`, `C:a.txt`, `C:a.txt`},
		{`a\b`, `C:\a.txt`, `C:\a.txt`},
		{`C:\a`, `C:\b.txt`, `C:\b.txt`},
		{`C:\a\b\c`, `C:d`, `C:d`},
		{`C:a\b\c`, `C:d`, `C:d`},
		{`\\server\share\foo`, `C:baz`, `C:baz`},
		{`\\.\foo\bar`, `C:a`, `C:a`},
		{`C:\a`, `\\?\UNC\server\share`, `\\?\UNC\server\share`},
		{`C:\tmp`, `D:\x`, `D:\x`},

		// Verbatim merge.
		{`\\?\C:\foo`, `..\bar`, `\\?\C:\bar`},
		{`\\?\C:\foo`, `.\bar`, `\\?\C:\foo\bar`},
		{`\\?\C:\foo`, `a/b`, `\\?\C:\foo\a\b`},
		{`\\?\C:`, `foo`, `\\?\C:\foo`},
		{`\\?\C:\bar`, `../foo`, `\\?\C:\foo`},
		{`\\?\C:\bar`, `../../foo`, `\\?\C:\foo`},
		{`\\?\C:\`, `../foo`, `\\?\C:\foo`},
		{`\\?\C:\a`, `..`, `\\?\C:\`},
		{`\\?\A:\x\y`, `..`, `\\?\A:\x`},
		{`\\?\A:\x\y`, `.\`, `\\?\A:\x\y`},
		{`\\?\A:\x\y`, `..\..\..`, `\\?\A:\`},
		{`\\?\A:\x\y`, `..\..\..\z`, `\\?\A:\z`},
		{`\\?\A:`, `..\..\..\z`, `\\?\A:\z`},
		{`\\?\A:\x\y`, `/foo`, `\\?\A:\foo`},
		{`\\?\A:\x\y`, `\z`, `\\?\A:\z`},
		{`\\?\foo\bar`, `baz`, `\\?\foo\bar\baz`},
		{`\\?\UNC\server\share\foo`, `bar`, `\\?\UNC\server\share\foo\bar`},
		{`\\?\UNC\server`, `foo`, `\\?\UNC\server\foo`},
		{`\\?\C:\a\b`, `C:c\d`, `C:c\d`},
		{`\\?\C:\a\b`, `C:\c\d`, `C:\c\d`},
		{`\\?\UNC\server\share`, `C:\a`, `C:\a`},
		{`\\?\C:`, `D:\foo/./`, `D:\foo/./`},
		{`\\?\C:`, `\\?\D:\foo\.\`, `\\?\D:\foo\.\`},
	}
	for _, tt := range tests {
		t.Run(tt.current+"+"+tt.incoming, func(t *testing.T) {
			assert.Equal(t, tt.want, PushString[grammar.Windows](tt.current, tt.incoming))
		})
	}
}

func TestPush_DoesNotAliasInputs(t *testing.T) {
	current := make([]byte, 4, 64)
	copy(current, "/tmp")
	out := Push[grammar.Posix](current, []byte("a"))
	out[0] = 'X'
	assert.Equal(t, "/tmp", string(current))

	incoming := []byte("/etc")
	out = Push[grammar.Posix](current, incoming)
	out[0] = 'X'
	assert.Equal(t, "/etc", string(incoming))
}

func TestJoin(t *testing.T) {
	got := Join[grammar.Windows]([]byte(`C:\`), []byte("Users"), []byte("me"), []byte(`..\you`))
	assert.Equal(t, `C:\Users\me\..\you`, string(got))

	got = Join[grammar.Posix]([]byte("a"), []byte("/b"), []byte("c"))
	assert.Equal(t, "/b/c", string(got))

	assert.Equal(t, "a", string(Join[grammar.Posix]([]byte("a"))))
}
