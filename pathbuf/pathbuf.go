package pathbuf

import (
	"fmt"

	"github.com/chipsenkbeil/typed-path-sub000/component"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/tperrors"
)

// PathBuf is an owned, growable path under grammar G.
//
// Every mutation builds a new backing slice, so a component stream obtained
// from Components keeps describing the path as it was when the stream was
// created. A PathBuf is not safe for concurrent mutation.
type PathBuf[G grammar.Grammar] struct {
	inner []byte
}

// PosixPathBuf is a PathBuf using the POSIX grammar.
type PosixPathBuf = PathBuf[grammar.Posix]

// WindowsPathBuf is a PathBuf using the Windows grammar.
type WindowsPathBuf = PathBuf[grammar.Windows]

// New returns a PathBuf holding a copy of p.
func New[G grammar.Grammar](p []byte) *PathBuf[G] {
	return &PathBuf[G]{inner: clone(p)}
}

// FromString returns a PathBuf holding s.
func FromString[G grammar.Grammar](s string) *PathBuf[G] {
	return &PathBuf[G]{inner: []byte(s)}
}

// Push extends the path with p. See the package-level Push for the rules.
func (b *PathBuf[G]) Push(p []byte) {
	b.inner = Push[G](b.inner, p)
}

// PushString is Push for a string.
func (b *PathBuf[G]) PushString(p string) {
	b.Push([]byte(p))
}

// Pop truncates the path to its parent. It reports false, leaving the path
// unchanged, when there is no parent.
func (b *PathBuf[G]) Pop() bool {
	parent, ok := Parent[G](b.inner)
	if !ok {
		return false
	}
	b.inner = clone(parent)
	return true
}

// SetFileName replaces the file name, or pushes name when the path has none.
// name must not contain a separator.
func (b *PathBuf[G]) SetFileName(name []byte) error {
	if err := checkNoSeparator[G]("file name", name); err != nil {
		return err
	}
	if _, ok := FileName[G](b.inner); ok {
		b.Pop()
	}
	b.Push(name)
	return nil
}

// SetExtension replaces the extension of the file name, removing it when ext
// is empty. It reports false, leaving the path unchanged, when the path has
// no file name. ext must not contain a separator.
func (b *PathBuf[G]) SetExtension(ext []byte) (bool, error) {
	if err := checkNoSeparator[G]("extension", ext); err != nil {
		return false, err
	}
	name, ok := fileNameComponent[G](b.inner)
	if !ok {
		return false, nil
	}
	stem, _ := FileStem[G](b.inner)

	end := name.Offset() + len(stem)
	out := make([]byte, 0, end+1+len(ext))
	out = append(out, b.inner[:end]...)
	if len(ext) > 0 {
		out = append(out, '.')
		out = append(out, ext...)
	}
	b.inner = out
	return true, nil
}

// Components returns a stream over the current path.
func (b *PathBuf[G]) Components() *component.Components[G] {
	return component.Parse[G](b.inner)
}

// Bytes returns the path bytes. The slice must not be modified.
func (b *PathBuf[G]) Bytes() []byte { return b.inner }

// String returns the path as a string.
func (b *PathBuf[G]) String() string { return string(b.inner) }

// Len returns the length of the path in bytes.
func (b *PathBuf[G]) Len() int { return len(b.inner) }

// Clone returns an independent copy.
func (b *PathBuf[G]) Clone() *PathBuf[G] { return New[G](b.inner) }

// IsAbsolute reports whether the path is absolute.
func (b *PathBuf[G]) IsAbsolute() bool { return IsAbsolute[G](b.inner) }

// HasRoot reports whether the path has a root.
func (b *PathBuf[G]) HasRoot() bool { return HasRoot[G](b.inner) }

// Parent returns the path without its final component.
func (b *PathBuf[G]) Parent() ([]byte, bool) { return Parent[G](b.inner) }

// FileName returns the final normal component.
func (b *PathBuf[G]) FileName() ([]byte, bool) { return FileName[G](b.inner) }

// FileStem returns the file name without its extension.
func (b *PathBuf[G]) FileStem() ([]byte, bool) { return FileStem[G](b.inner) }

// Extension returns the extension of the file name.
func (b *PathBuf[G]) Extension() ([]byte, bool) { return Extension[G](b.inner) }

// Normalize returns the lexically normalized path as a new PathBuf.
func (b *PathBuf[G]) Normalize() *PathBuf[G] {
	return &PathBuf[G]{inner: Normalize[G](b.inner)}
}

// Validate checks every normal component against the grammar.
func (b *PathBuf[G]) Validate() error { return Validate[G](b.inner) }

// Equal reports whether both paths have the same components.
func (b *PathBuf[G]) Equal(o *PathBuf[G]) bool {
	x, y := b.Components(), o.Components()
	for {
		cx, okx := x.Next()
		cy, oky := y.Next()
		if okx != oky {
			return false
		}
		if !okx {
			return true
		}
		if !cx.Equal(cy) {
			return false
		}
	}
}

func checkNoSeparator[G grammar.Grammar](what string, p []byte) error {
	var g G
	for _, c := range p {
		if g.IsSeparator(c, false) {
			return fmt.Errorf("pathbuf: %s %q: %w", what, p, &tperrors.InvalidComponentError{
				Grammar:   g.Name(),
				Component: string(p),
				Byte:      c,
			})
		}
	}
	return nil
}
