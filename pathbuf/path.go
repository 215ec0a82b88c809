package pathbuf

import (
	"bytes"
	"fmt"

	"github.com/chipsenkbeil/typed-path-sub000/component"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/internal/compbuf"
	"github.com/chipsenkbeil/typed-path-sub000/tperrors"
)

// IsAbsolute reports whether p is absolute under G.
func IsAbsolute[G grammar.Grammar](p []byte) bool {
	return component.Parse[G](p).IsAbsolute()
}

// HasRoot reports whether p has a root under G.
func HasRoot[G grammar.Grammar](p []byte) bool {
	return component.Parse[G](p).HasRoot()
}

// Normalize returns the lexically normalized form of p: repeated separators
// collapsed, `.` segments elided where the grammar allows it, trailing
// separators dropped and every separator replaced by the primary one. The
// prefix keeps its original bytes. Normalizing twice gives the same result.
func Normalize[G grammar.Grammar](p []byte) []byte {
	buf := compbuf.Get()
	defer compbuf.Put(buf)

	for c := range component.Parse[G](p).All() {
		buf.Push(c)
	}
	var g G
	return buf.AppendTo(make([]byte, 0, len(p)), g.Separator())
}

// Parent returns p without its final component. It reports false when p
// ends in a root or a prefix, or is empty. The result aliases p.
func Parent[G grammar.Grammar](p []byte) ([]byte, bool) {
	comps := component.Parse[G](p)
	last, ok := comps.NextBack()
	if !ok {
		return nil, false
	}
	switch last.Kind() {
	case component.KindNormal, component.KindCurDir, component.KindParentDir:
		return comps.RemainingBytes(), true
	default:
		return nil, false
	}
}

// FileName returns the final component of p when it is a normal component.
// The result aliases p.
func FileName[G grammar.Grammar](p []byte) ([]byte, bool) {
	c, ok := fileNameComponent[G](p)
	if !ok {
		return nil, false
	}
	return c.Bytes(), true
}

// FileStem returns the file name without its extension. A leading dot does
// not start an extension, so the stem of ".bashrc" is ".bashrc".
func FileStem[G grammar.Grammar](p []byte) ([]byte, bool) {
	name, ok := FileName[G](p)
	if !ok {
		return nil, false
	}
	before, after, hasBefore := splitAtDot(name)
	if hasBefore {
		return before, true
	}
	return after, true
}

// Extension returns the part of the file name after its last dot.
func Extension[G grammar.Grammar](p []byte) ([]byte, bool) {
	name, ok := FileName[G](p)
	if !ok {
		return nil, false
	}
	_, after, hasBefore := splitAtDot(name)
	if !hasBefore {
		return nil, false
	}
	return after, true
}

// StartsWith reports whether base is a component-wise prefix of p.
func StartsWith[G grammar.Grammar](p, base []byte) bool {
	_, ok := iterAfter(component.Parse[G](p), component.Parse[G](base), (*component.Components[G]).Next)
	return ok
}

// EndsWith reports whether child is a component-wise suffix of p.
func EndsWith[G grammar.Grammar](p, child []byte) bool {
	_, ok := iterAfter(component.Parse[G](p), component.Parse[G](child), (*component.Components[G]).NextBack)
	return ok
}

// StripPrefix returns p relative to base. It reports false when base is not
// a component-wise prefix of p. The result aliases p.
func StripPrefix[G grammar.Grammar](p, base []byte) ([]byte, bool) {
	rest, ok := iterAfter(component.Parse[G](p), component.Parse[G](base), (*component.Components[G]).Next)
	if !ok {
		return nil, false
	}
	return rest.RemainingBytes(), true
}

// Validate checks that every normal component of p can exist under G: no
// disallowed byte and no reserved name. It returns a
// *tperrors.InvalidComponentError for the first offending component.
func Validate[G grammar.Grammar](p []byte) error {
	var g G
	for c := range component.Parse[G](p).All() {
		if !c.IsNormal() {
			continue
		}
		if err := validateName(g, c.Bytes(), c.Offset()); err != nil {
			return err
		}
	}
	return nil
}

func validateName(g grammar.Grammar, name []byte, offset int) error {
	for _, b := range name {
		if g.IsDisallowed(b) {
			return fmt.Errorf("pathbuf: %w", &tperrors.InvalidComponentError{
				Grammar:   g.Name(),
				Component: string(name),
				Offset:    offset,
				Byte:      b,
			})
		}
	}
	if g.IsReservedName(name) {
		return fmt.Errorf("pathbuf: %w", &tperrors.InvalidComponentError{
			Grammar:   g.Name(),
			Component: string(name),
			Offset:    offset,
			Reserved:  true,
		})
	}
	return nil
}

func fileNameComponent[G grammar.Grammar](p []byte) (component.Component, bool) {
	c, ok := component.Parse[G](p).NextBack()
	if !ok || !c.IsNormal() {
		return component.Component{}, false
	}
	return c, true
}

// splitAtDot splits a file name at its last dot. hasBefore is false when
// there is no dot, when the only dot is the first byte, or for "..".
func splitAtDot(name []byte) (before, after []byte, hasBefore bool) {
	if bytes.Equal(name, []byte("..")) {
		return nil, name, false
	}
	i := bytes.LastIndexByte(name, '.')
	if i <= 0 {
		return nil, name, false
	}
	return name[:i], name[i+1:], true
}

// iterAfter consumes prefix from iter with next, comparing components. It
// reports false as soon as they differ or prefix outlasts iter.
func iterAfter[G grammar.Grammar](
	iter, prefix *component.Components[G],
	next func(*component.Components[G]) (component.Component, bool),
) (*component.Components[G], bool) {
	for {
		want, more := next(prefix)
		if !more {
			return iter, true
		}
		got, ok := next(iter)
		if !ok || !got.Equal(want) {
			return nil, false
		}
	}
}
