package component

import (
	"bytes"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

// Kind identifies the syntactic role of a Component.
type Kind uint8

const (
	// KindPrefix is a Windows prefix such as `C:` or `\\server\share`.
	KindPrefix Kind = iota + 1
	// KindRootDir is the separator acting as the path root.
	KindRootDir
	// KindCurDir is a literal `.` segment.
	KindCurDir
	// KindParentDir is a literal `..` segment.
	KindParentDir
	// KindNormal is any other segment.
	KindNormal
)

var kindNames = map[Kind]string{
	KindPrefix:    "Prefix",
	KindRootDir:   "RootDir",
	KindCurDir:    "CurDir",
	KindParentDir: "ParentDir",
	KindNormal:    "Normal",
}

// String returns the kind name, e.g. "ParentDir".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Invalid"
}

// Component is one syntactic unit of a path.
//
// The bytes of a component alias the buffer it was parsed from: a Component
// must not be used after that buffer is mutated.
type Component struct {
	kind   Kind
	raw    []byte
	offset int
	prefix grammar.Prefix
}

// Kind returns the component kind.
func (c Component) Kind() Kind { return c.kind }

// Bytes returns the component bytes. A RootDir yields the primary separator
// of its grammar, whichever separator appeared in the input.
func (c Component) Bytes() []byte { return c.raw }

// Len returns len(c.Bytes()).
func (c Component) Len() int { return len(c.raw) }

// Offset returns the byte offset of the component in the parsed input.
func (c Component) Offset() int { return c.offset }

// IsRoot reports whether c is a RootDir.
func (c Component) IsRoot() bool { return c.kind == KindRootDir }

// IsNormal reports whether c is a Normal component.
func (c Component) IsNormal() bool { return c.kind == KindNormal }

// IsPrefix reports whether c is a Windows prefix.
func (c Component) IsPrefix() bool { return c.kind == KindPrefix }

// Prefix returns the parsed prefix of a KindPrefix component.
func (c Component) Prefix() (grammar.Prefix, bool) {
	if c.kind != KindPrefix {
		return grammar.Prefix{}, false
	}
	return c.prefix, true
}

// Equal reports whether c and o are the same component. Prefixes compare by
// their parsed value and normal components by their bytes; offsets are
// ignored.
func (c Component) Equal(o Component) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case KindPrefix:
		return c.prefix.Equal(o.prefix)
	case KindNormal:
		return bytes.Equal(c.raw, o.raw)
	default:
		return true
	}
}

// String renders c for diagnostics, e.g. `Normal(etc)` or `Prefix(Disk(C))`.
func (c Component) String() string {
	switch c.kind {
	case KindPrefix:
		return "Prefix(" + c.prefix.String() + ")"
	case KindNormal:
		return "Normal(" + string(c.raw) + ")"
	default:
		return c.kind.String()
	}
}
