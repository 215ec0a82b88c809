package component

import "github.com/chipsenkbeil/typed-path-sub000/grammar"

// The forward and backward passes below share every normalization decision:
// separators come from isSep, segments are classified by parseSegment, and
// both honor the same verbatim flag.

// verbatim reports whether the path started with a `\\?\` prefix.
func (c *Components[G]) verbatim() bool {
	return c.hasPrefix && c.prefix.IsVerbatim()
}

func (c *Components[G]) isSep(b byte) bool {
	return c.g.IsSeparator(b, c.verbatim())
}

func (c *Components[G]) indexSep(p []byte) int {
	for i, b := range p {
		if c.isSep(b) {
			return i
		}
	}
	return -1
}

func (c *Components[G]) lastIndexSep(p []byte) int {
	for i := len(p) - 1; i >= 0; i-- {
		if c.isSep(p[i]) {
			return i
		}
	}
	return -1
}

// parseSegment classifies the bytes between two separators. Empty segments
// (repeated or trailing separators) and, outside verbatim mode, `.` segments
// produce nothing.
func (c *Components[G]) parseSegment(seg []byte) (Kind, bool) {
	switch {
	case len(seg) == 0:
		return 0, false
	case len(seg) == 1 && seg[0] == '.':
		if c.verbatim() {
			return KindCurDir, true
		}
		return 0, false
	case len(seg) == 2 && seg[0] == '.' && seg[1] == '.':
		return KindParentDir, true
	default:
		return KindNormal, true
	}
}

func (c *Components[G]) prefixLen() int {
	if !c.hasPrefix {
		return 0
	}
	return c.prefix.Len()
}

// prefixRemaining is the length of the prefix still held by c.path.
func (c *Components[G]) prefixRemaining() int {
	if c.front == AtBeginning {
		return c.prefixLen()
	}
	return 0
}

func (c *Components[G]) hasRoot() bool {
	return c.hasPhysicalRoot || (c.hasPrefix && c.prefix.HasImplicitRoot())
}

// includeCurDir reports whether the path right after the prefix is a `.`
// segment that must be kept as a leading CurDir.
func (c *Components[G]) includeCurDir() bool {
	if c.hasRoot() {
		return false
	}
	rest := c.path[c.prefixRemaining():]
	switch {
	case len(rest) == 1:
		return rest[0] == '.'
	case len(rest) >= 2:
		return rest[0] == '.' && c.isSep(rest[1])
	default:
		return false
	}
}

// lenBeforeBody is the number of leading bytes of c.path that belong to the
// prefix, root or leading current-dir not yet consumed from the front.
func (c *Components[G]) lenBeforeBody() int {
	n := c.prefixRemaining()
	if c.front <= SeenPrefix {
		if c.hasPhysicalRoot || c.includeCurDir() {
			n++
		}
	}
	return n
}

// nextSegment parses the first body segment. size covers the segment and the
// separator following it.
func (c *Components[G]) nextSegment() (size int, comp Component, ok bool) {
	seg, extra := c.path, 0
	if i := c.indexSep(c.path); i >= 0 {
		seg, extra = c.path[:i], 1
	}
	kind, ok := c.parseSegment(seg)
	return len(seg) + extra, Component{kind: kind, raw: seg, offset: c.start}, ok
}

// nextSegmentBack parses the last body segment. size covers the segment and
// the separator preceding it.
func (c *Components[G]) nextSegmentBack() (size int, comp Component, ok bool) {
	body := c.path[c.lenBeforeBody():]
	seg, extra := body, 0
	if i := c.lastIndexSep(body); i >= 0 {
		seg, extra = body[i+1:], 1
	}
	kind, ok := c.parseSegment(seg)
	offset := c.start + len(c.path) - len(seg)
	return len(seg) + extra, Component{kind: kind, raw: seg, offset: offset}, ok
}

// rootAt builds the RootDir component for the separator at c.path[i]. The
// root is rendered with the primary separator unless that would turn the
// prefix into another one: `\\./` is UNC but `\\.\` is a device path.
func (c *Components[G]) rootAt(i int) Component {
	raw := c.path[i : i+1]
	if raw[0] != c.g.Separator() && !c.rootKeepsByte() {
		raw = []byte{c.g.Separator()}
	}
	return Component{kind: KindRootDir, raw: raw, offset: c.start + i}
}

// rootKeepsByte reports whether the prefix is a UNC prefix whose server is
// `.` or `?`.
func (c *Components[G]) rootKeepsByte() bool {
	if !c.hasPrefix || c.prefix.Kind != grammar.PrefixUNC || len(c.prefix.Server) != 1 {
		return false
	}
	return c.prefix.Server[0] == '.' || c.prefix.Server[0] == '?'
}

func (c *Components[G]) consumeFront(n int) {
	c.path = c.path[n:]
	c.start += n
}

func (c *Components[G]) consumeBack(n int) {
	c.path = c.path[:len(c.path)-n]
}

func (c *Components[G]) finished() bool {
	return c.front == Done || c.back == Done || c.front > c.back
}

func (c *Components[G]) trimLeft() {
	for len(c.path) > 0 {
		size, _, ok := c.nextSegment()
		if ok {
			return
		}
		c.consumeFront(size)
	}
}

func (c *Components[G]) trimRight() {
	for len(c.path) > c.lenBeforeBody() {
		size, _, ok := c.nextSegmentBack()
		if ok {
			return
		}
		c.consumeBack(size)
	}
}
