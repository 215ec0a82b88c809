package pathbuf

import (
	"github.com/chipsenkbeil/typed-path-sub000/component"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/internal/compbuf"
)

// Push returns current extended with incoming. The result is always a new
// slice; neither argument is modified.
//
// An empty incoming path leaves current unchanged. An absolute or prefixed
// incoming path replaces current. An incoming path with a root but no prefix
// replaces everything after the prefix of current. Otherwise incoming is
// appended after a separator.
//
// When current has a Windows verbatim prefix, the two paths are merged
// component by component instead: `.` is dropped and `..` removes the last
// normal component, because verbatim paths are never normalized by Windows.
func Push[G grammar.Grammar](current, incoming []byte) []byte {
	if len(incoming) == 0 {
		return clone(current)
	}

	in := component.Parse[G](incoming)
	if _, prefixed := in.Prefix(); prefixed || in.IsAbsolute() {
		return clone(incoming)
	}

	cur := component.Parse[G](current)
	if cur.HasAnyVerbatimPrefix() {
		return mergeVerbatim(cur, in)
	}

	if in.HasRoot() {
		return concat(current[:cur.PrefixLen()], nil, incoming)
	}

	var g G
	if len(current) > 0 && !g.IsSeparator(current[len(current)-1], false) && !cur.IsOnlyDisk() {
		return concat(current, []byte{g.Separator()}, incoming)
	}
	return concat(current, nil, incoming)
}

// PushString is Push for strings.
func PushString[G grammar.Grammar](current, incoming string) string {
	return string(Push[G]([]byte(current), []byte(incoming)))
}

// Join pushes every elem onto base in order.
func Join[G grammar.Grammar](base []byte, elems ...[]byte) []byte {
	out := clone(base)
	for _, e := range elems {
		out = Push[G](out, e)
	}
	return out
}

func mergeVerbatim[G grammar.Grammar](cur, in *component.Components[G]) []byte {
	buf := compbuf.Get()
	defer compbuf.Put(buf)

	for c := range cur.All() {
		buf.Push(c)
	}
	for c := range in.All() {
		switch c.Kind() {
		case component.KindRootDir:
			buf.Truncate(1)
			buf.Push(c)
		case component.KindCurDir:
		case component.KindParentDir:
			if last, ok := buf.Last(); ok && last.IsNormal() {
				buf.Pop()
			}
		default:
			buf.Push(c)
		}
	}

	var g G
	return buf.AppendTo(nil, g.Separator())
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

func concat(a, sep, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(sep)+len(b))
	out = append(out, a...)
	out = append(out, sep...)
	return append(out, b...)
}
