package compbuf

import (
	"github.com/chipsenkbeil/typed-path-sub000/component"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

// Buffer holds components in path order.
type Buffer struct {
	comps  []component.Component
	length int // bytes of all components, separators excluded
}

// Push appends c.
func (b *Buffer) Push(c component.Component) {
	b.comps = append(b.comps, c)
	b.length += c.Len()
}

// Pop removes and returns the last component.
func (b *Buffer) Pop() (component.Component, bool) {
	if len(b.comps) == 0 {
		return component.Component{}, false
	}
	last := b.comps[len(b.comps)-1]
	b.comps = b.comps[:len(b.comps)-1]
	b.length -= last.Len()
	return last, true
}

// Last returns the last component without removing it.
func (b *Buffer) Last() (component.Component, bool) {
	if len(b.comps) == 0 {
		return component.Component{}, false
	}
	return b.comps[len(b.comps)-1], true
}

// Truncate keeps the first n components.
func (b *Buffer) Truncate(n int) {
	for len(b.comps) > n {
		b.Pop()
	}
}

// Len returns the number of components.
func (b *Buffer) Len() int { return len(b.comps) }

// Components returns the buffered components. The slice is only valid until
// the next mutation.
func (b *Buffer) Components() []component.Component { return b.comps }

// Reset clears the buffer for reuse.
func (b *Buffer) Reset() {
	clear(b.comps)
	b.comps = b.comps[:0]
	b.length = 0
}

// AppendTo serializes the components onto dst with sep between them.
//
// No separator is written next to a RootDir, after a Disk prefix or after a
// zero-length prefix. When a root follows a UNC prefix without a share, an
// extra separator keeps the next component from being read back as the share.
func (b *Buffer) AppendTo(dst []byte, sep byte) []byte {
	if n := b.length + len(b.comps); cap(dst)-len(dst) < n {
		dst = append(make([]byte, 0, len(dst)+n), dst...)
	}
	for i, c := range b.comps {
		if i > 0 && needsSeparator(b.comps[i-1], c) {
			dst = append(dst, sep)
		}
		if i > 1 && b.comps[i-1].IsRoot() && shareless(b.comps[i-2]) {
			dst = append(dst, sep)
		}
		dst = append(dst, c.Bytes()...)
	}
	return dst
}

// Bytes serializes the components into a new slice.
func (b *Buffer) Bytes(sep byte) []byte {
	return b.AppendTo(nil, sep)
}

func needsSeparator(prev, cur component.Component) bool {
	if prev.IsRoot() || cur.IsRoot() {
		return false
	}
	if p, ok := prev.Prefix(); ok {
		return p.Kind != grammar.PrefixDisk && prev.Len() > 0
	}
	return true
}

func shareless(c component.Component) bool {
	p, ok := c.Prefix()
	if !ok {
		return false
	}
	return (p.Kind == grammar.PrefixUNC || p.Kind == grammar.PrefixVerbatimUNC) && len(p.Share) == 0
}
