package compbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipsenkbeil/typed-path-sub000/component"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

func fill(b *Buffer, comps []component.Component) {
	for _, c := range comps {
		b.Push(c)
	}
}

func TestBuffer_PushPop(t *testing.T) {
	b := &Buffer{}
	fill(b, component.ParseString[grammar.Posix]("/a/b").Collect())
	require.Equal(t, 3, b.Len())

	last, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, "Normal(b)", last.String())

	fill(b, component.ParseString[grammar.Posix]("c").Collect())
	assert.Equal(t, "/a/c", string(b.Bytes('/')))
}

func TestBuffer_PopEmpty(t *testing.T) {
	b := &Buffer{}
	_, ok := b.Pop() // Should not panic
	assert.False(t, ok)
	_, ok = b.Last()
	assert.False(t, ok)
	assert.Empty(t, b.Bytes('/'))
}

func TestBuffer_Truncate(t *testing.T) {
	b := &Buffer{}
	fill(b, component.ParseString[grammar.Windows](`\\?\C:\a\b`).Collect())
	b.Truncate(1)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, `\\?\C:`, string(b.Bytes('\\')))

	b.Truncate(5) // Larger than Len is a no-op
	assert.Equal(t, 1, b.Len())
}

func TestBuffer_AppendTo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"root", `\`, `\`},
		{"relative", `a/b\c`, `a\b\c`},
		{"leading dot", `./a`, `.\a`},
		{"disk relative", `C:a`, `C:a`},
		{"disk absolute", `c:/a`, `c:\a`},
		{"unc", `//server/share/a`, `//server/share\a`},
		{"unc without share", `\\server\\a`, `\\server\\a`},
		{"unc without share root only", `\\server\`, `\\server\`},
		{"verbatim unc without share", `\\?\UNC\server\\a`, `\\?\UNC\server\\a`},
		{"verbatim", `\\?\C:\a\.\b`, `\\?\C:\a\.\b`},
		{"empty verbatim name", `\\?\\hello`, `\\?\\hello`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Get()
			defer Put(b)
			fill(b, component.ParseString[grammar.Windows](tt.input).Collect())
			assert.Equal(t, tt.want, string(b.AppendTo(nil, '\\')))
		})
	}
}

func TestBuffer_AppendToKeepsDst(t *testing.T) {
	b := &Buffer{}
	fill(b, component.ParseString[grammar.Posix]("a/b").Collect())
	assert.Equal(t, "x:a/b", string(b.AppendTo([]byte("x:"), '/')))
}

func TestPool(t *testing.T) {
	b := Get()
	fill(b, component.ParseString[grammar.Posix]("/a").Collect())
	Put(b)

	b = Get()
	assert.Equal(t, 0, b.Len(), "pooled buffers come back reset")
	Put(b)
	Put(nil) // Should not panic
}

func BenchmarkBuffer_AppendTo(b *testing.B) {
	comps := component.ParseString[grammar.Windows](`\\?\C:\Users\someone\projects\repo\src`).Collect()
	b.ReportAllocs()
	for b.Loop() {
		buf := Get()
		fill(buf, comps)
		_ = buf.AppendTo(nil, '\\')
		Put(buf)
	}
}
