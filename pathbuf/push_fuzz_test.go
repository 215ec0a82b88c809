package pathbuf

import (
	"bytes"
	"testing"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

// FuzzPush checks the invariants of push that hold for any input: an empty
// incoming path is a no-op, an absolute incoming path wins, and a relative
// append keeps the current path as a byte prefix.
func FuzzPush(f *testing.F) {
	seeds := [][2]string{
		{"/tmp", "file.bk"},
		{"/tmp", "/etc"},
		{`C:\tmp`, `\etc`},
		{`C:\tmp`, `file.bk`},
		{`\\?\C:\foo`, `..\bar`},
		{`\\server\share`, `a`},
		{`C:`, `a`},
		{"", ""},
	}
	for _, s := range seeds {
		f.Add([]byte(s[0]), []byte(s[1]))
	}

	f.Fuzz(func(t *testing.T, current, incoming []byte) {
		checkPush[grammar.Posix](t, current, incoming)
		checkPush[grammar.Windows](t, current, incoming)
	})
}

func checkPush[G grammar.Grammar](t *testing.T, current, incoming []byte) {
	t.Helper()
	out := Push[G](current, incoming)

	switch {
	case len(incoming) == 0:
		if !bytes.Equal(out, current) {
			t.Fatalf("push(%q, empty) = %q", current, out)
		}
	case IsAbsolute[G](incoming):
		if !bytes.Equal(out, incoming) {
			t.Fatalf("push(%q, absolute %q) = %q", current, incoming, out)
		}
	case !HasRoot[G](incoming) && !IsAbsolute[G](current) && !HasRoot[G](current):
		var g G
		if _, prefixed := g.ParsePrefix(incoming); prefixed {
			return
		}
		if !bytes.HasPrefix(out, current) || !bytes.HasSuffix(out, incoming) {
			t.Fatalf("push(%q, %q) = %q", current, incoming, out)
		}
	}
}
