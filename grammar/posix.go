package grammar

// Posix is the POSIX grammar: a single '/' separator, no prefixes, and only
// the separator and NUL disallowed inside a name.
type Posix struct{}

// PosixSeparator is the POSIX separator byte.
const PosixSeparator = '/'

// Name implements Grammar.
func (Posix) Name() string { return NamePosix }

// Separator implements Grammar.
func (Posix) Separator() byte { return PosixSeparator }

// IsSeparator implements Grammar. POSIX has no verbatim mode.
func (Posix) IsSeparator(b byte, _ bool) bool { return b == PosixSeparator }

// IsDisallowed implements Grammar.
func (Posix) IsDisallowed(b byte) bool { return b == PosixSeparator || b == 0 }

// IsReservedName implements Grammar. POSIX reserves no names.
func (Posix) IsReservedName(_ []byte) bool { return false }

// HasPrefixes implements Grammar.
func (Posix) HasPrefixes() bool { return false }

// ParsePrefix implements Grammar. POSIX paths never have a prefix.
func (Posix) ParsePrefix(_ []byte) (Prefix, bool) { return Prefix{}, false }
