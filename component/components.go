package component

import (
	"iter"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

// Components is a double-ended cursor over the components of a path.
//
// It borrows the parsed buffer: components and remaining bytes alias it, so
// the buffer must not be mutated while the stream or anything derived from it
// is in use. Components yielded from the front and from the back never
// overlap, and the two ends may be consumed in any interleaving.
type Components[G grammar.Grammar] struct {
	g    G
	orig []byte

	// path is the unconsumed part of orig; start is its offset in orig.
	path  []byte
	start int

	prefix          grammar.Prefix
	hasPrefix       bool
	hasPhysicalRoot bool

	front State
	back  State
}

// Parse creates a stream over path using grammar G. Parsing never fails.
func Parse[G grammar.Grammar](path []byte) *Components[G] {
	var g G
	c := &Components[G]{
		g:     g,
		orig:  path,
		path:  path,
		front: AtBeginning,
		back:  NotAtBeginning,
	}
	c.prefix, c.hasPrefix = g.ParsePrefix(path)
	if n := c.prefixLen(); n < len(path) && c.isSep(path[n]) {
		c.hasPhysicalRoot = true
	}
	return c
}

// ParseString is Parse for a string path.
func ParseString[G grammar.Grammar](path string) *Components[G] {
	return Parse[G]([]byte(path))
}

// Clone returns an independent copy of the stream at its current position.
func (c *Components[G]) Clone() *Components[G] {
	cp := *c
	return &cp
}

// Grammar returns the grammar the stream parses with.
func (c *Components[G]) Grammar() G { return c.g }

// Next consumes and returns the next component from the front.
func (c *Components[G]) Next() (Component, bool) {
	for !c.finished() {
		switch c.front {
		case AtBeginning:
			c.front = SeenPrefix
			if c.hasPrefix {
				n := c.prefixLen()
				comp := Component{kind: KindPrefix, raw: c.path[:n], offset: c.start, prefix: c.prefix}
				c.consumeFront(n)
				return comp, true
			}
		case SeenPrefix:
			c.front = NotAtBeginning
			if c.hasPhysicalRoot {
				comp := c.rootAt(0)
				c.consumeFront(1)
				return comp, true
			}
			if c.includeCurDir() {
				comp := Component{kind: KindCurDir, raw: c.path[:1], offset: c.start}
				c.consumeFront(1)
				return comp, true
			}
		case NotAtBeginning:
			if len(c.path) == 0 {
				c.front = Done
				continue
			}
			size, comp, ok := c.nextSegment()
			c.consumeFront(size)
			if ok {
				return comp, true
			}
		}
	}
	return Component{}, false
}

// NextBack consumes and returns the next component from the back.
func (c *Components[G]) NextBack() (Component, bool) {
	for !c.finished() {
		switch c.back {
		case NotAtBeginning:
			if len(c.path) <= c.lenBeforeBody() {
				c.back = SeenPrefix
				continue
			}
			size, comp, ok := c.nextSegmentBack()
			c.consumeBack(size)
			if ok {
				return comp, true
			}
		case SeenPrefix:
			c.back = AtBeginning
			if c.hasPhysicalRoot {
				comp := c.rootAt(len(c.path) - 1)
				c.consumeBack(1)
				return comp, true
			}
			if c.includeCurDir() {
				last := len(c.path) - 1
				comp := Component{kind: KindCurDir, raw: c.path[last:], offset: c.start + last}
				c.consumeBack(1)
				return comp, true
			}
		case AtBeginning:
			c.back = Done
			if c.hasPrefix {
				n := c.prefixLen()
				return Component{kind: KindPrefix, raw: c.path[:n], offset: c.start, prefix: c.prefix}, true
			}
		}
	}
	return Component{}, false
}

// RemainingBytes returns the unconsumed part of the path with separators and
// elided segments trimmed from the ends that are inside the body. It aliases
// the parsed buffer.
func (c *Components[G]) RemainingBytes() []byte {
	cp := *c
	if cp.front == NotAtBeginning {
		cp.trimLeft()
	}
	if cp.back == NotAtBeginning {
		cp.trimRight()
	}
	return cp.path
}

// All returns an iterator over the remaining components from the front. The
// stream itself is not consumed.
func (c *Components[G]) All() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		cp := *c
		for {
			comp, ok := cp.Next()
			if !ok || !yield(comp) {
				return
			}
		}
	}
}

// Backward returns an iterator over the remaining components from the back.
// The stream itself is not consumed.
func (c *Components[G]) Backward() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		cp := *c
		for {
			comp, ok := cp.NextBack()
			if !ok || !yield(comp) {
				return
			}
		}
	}
}

// Collect returns the remaining components in forward order without
// consuming the stream.
func (c *Components[G]) Collect() []Component {
	var out []Component
	for comp := range c.All() {
		out = append(out, comp)
	}
	return out
}

// Len returns the number of remaining components.
func (c *Components[G]) Len() int {
	n := 0
	for range c.All() {
		n++
	}
	return n
}

// HasRoot reports whether the path is rooted, either by a separator after
// the prefix or by a prefix that implies a root (every prefix except Disk).
func (c *Components[G]) HasRoot() bool {
	return c.hasRoot()
}

// IsAbsolute reports whether the path is absolute. With a grammar that has
// prefixes an absolute path needs both a prefix and a root.
func (c *Components[G]) IsAbsolute() bool {
	if !c.hasRoot() {
		return false
	}
	return c.hasPrefix || !c.g.HasPrefixes()
}

// Prefix returns the parsed prefix of the path, if any.
func (c *Components[G]) Prefix() (grammar.Prefix, bool) {
	return c.prefix, c.hasPrefix
}

// PrefixKind returns the kind of the path prefix, or zero when there is none.
func (c *Components[G]) PrefixKind() grammar.PrefixKind {
	if !c.hasPrefix {
		return 0
	}
	return c.prefix.Kind
}

// PrefixLen returns the number of bytes the prefix occupies in the path.
func (c *Components[G]) PrefixLen() int {
	return c.prefixLen()
}

// HasAnyVerbatimPrefix reports whether the path starts with a `\\?\` prefix.
func (c *Components[G]) HasAnyVerbatimPrefix() bool {
	return c.verbatim()
}

// IsOnlyDisk reports whether the whole path is a single Disk prefix such as
// `C:`.
func (c *Components[G]) IsOnlyDisk() bool {
	return c.hasPrefix && c.prefix.Kind == grammar.PrefixDisk && len(c.orig) == c.prefix.Len()
}
