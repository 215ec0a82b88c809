package grammar

import "strings"

// Grammar is the set of rules that decides how raw bytes decompose into path
// components. The engine is instantiated once per grammar through a type
// parameter constrained by Grammar; implementations are zero-size types so the
// zero value of the type parameter is always usable.
type Grammar interface {
	// Name returns the canonical grammar name ("posix" or "windows").
	Name() string

	// Separator returns the primary separator byte.
	Separator() byte

	// IsSeparator reports whether b separates components. In verbatim mode only
	// the primary separator is recognized.
	IsSeparator(b byte, verbatim bool) bool

	// IsDisallowed reports whether b may not appear inside a normal component.
	IsDisallowed(b byte) bool

	// IsReservedName reports whether name is reserved by the platform and can
	// not be used as a normal component.
	IsReservedName(name []byte) bool

	// HasPrefixes reports whether paths of this grammar may start with a prefix.
	// Absolute paths of such grammars need both a prefix and a root.
	HasPrefixes() bool

	// ParsePrefix recognizes a leading prefix. Grammars without prefixes always
	// report false.
	ParsePrefix(path []byte) (Prefix, bool)
}

// Grammar names accepted by ByName.
const (
	NamePosix   = "posix"
	NameWindows = "windows"
)

// Ensure both grammars implement Grammar at compile time.
var (
	_ Grammar = Posix{}
	_ Grammar = Windows{}
)

// ByName resolves a grammar by name. "unix" is accepted as an alias of "posix".
// Matching is case-insensitive.
func ByName(name string) (Grammar, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NamePosix, "unix":
		return Posix{}, true
	case NameWindows:
		return Windows{}, true
	default:
		return nil, false
	}
}

// Names returns the canonical grammar names.
func Names() []string {
	return []string{NamePosix, NameWindows}
}
