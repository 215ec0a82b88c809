package grammar

import (
	"bytes"
	"strings"
)

// PrefixKind identifies one of the six Windows prefix forms.
type PrefixKind uint8

const (
	// PrefixVerbatim is `\\?\name`.
	PrefixVerbatim PrefixKind = iota + 1
	// PrefixVerbatimUNC is `\\?\UNC\server\share`.
	PrefixVerbatimUNC
	// PrefixVerbatimDisk is `\\?\C:`.
	PrefixVerbatimDisk
	// PrefixDeviceNS is `\\.\name`.
	PrefixDeviceNS
	// PrefixUNC is `\\server\share`.
	PrefixUNC
	// PrefixDisk is `C:`.
	PrefixDisk
)

var prefixKindNames = map[PrefixKind]string{
	PrefixVerbatim:     "Verbatim",
	PrefixVerbatimUNC:  "VerbatimUNC",
	PrefixVerbatimDisk: "VerbatimDisk",
	PrefixDeviceNS:     "DeviceNS",
	PrefixUNC:          "UNC",
	PrefixDisk:         "Disk",
}

// String returns the kind name, e.g. "VerbatimUNC".
func (k PrefixKind) String() string {
	if s, ok := prefixKindNames[k]; ok {
		return s
	}
	return "None"
}

// IsVerbatim reports whether k is one of the `\\?\` forms.
func (k PrefixKind) IsVerbatim() bool {
	return k == PrefixVerbatim || k == PrefixVerbatimUNC || k == PrefixVerbatimDisk
}

// Prefix is a parsed Windows prefix. Which fields are meaningful depends on
// Kind: Name for Verbatim and DeviceNS, Server and Share for the UNC forms,
// Letter for the disk forms. Byte fields alias the parsed input.
type Prefix struct {
	Kind   PrefixKind
	Name   []byte
	Server []byte
	Share  []byte
	// Letter is the drive letter, upper-cased.
	Letter byte
}

// Len returns the number of bytes the prefix occupies in the path it was
// parsed from. It is computed from the parsed fields alone.
func (p Prefix) Len() int {
	switch p.Kind {
	case PrefixVerbatim, PrefixDeviceNS:
		return 4 + len(p.Name)
	case PrefixVerbatimUNC:
		return 8 + len(p.Server) + shareLen(p.Share)
	case PrefixVerbatimDisk:
		return 6
	case PrefixUNC:
		return 2 + len(p.Server) + shareLen(p.Share)
	case PrefixDisk:
		return 2
	default:
		return 0
	}
}

func shareLen(share []byte) int {
	if len(share) == 0 {
		return 0
	}
	return 1 + len(share)
}

// IsVerbatim reports whether p switches the parse into verbatim mode.
func (p Prefix) IsVerbatim() bool {
	return p.Kind.IsVerbatim()
}

// IsDrive reports whether p is a plain `C:` drive prefix.
func (p Prefix) IsDrive() bool {
	return p.Kind == PrefixDisk
}

// HasImplicitRoot reports whether a path starting with p is rooted even
// without a separator following the prefix. Only the plain drive form is
// drive-relative.
func (p Prefix) HasImplicitRoot() bool {
	return p.Kind != 0 && p.Kind != PrefixDisk
}

// Equal compares parsed values. Drive letters were upper-cased while parsing,
// so `c:` equals `C:`.
func (p Prefix) Equal(o Prefix) bool {
	if p.Kind != o.Kind {
		return false
	}
	switch p.Kind {
	case PrefixVerbatim, PrefixDeviceNS:
		return bytes.Equal(p.Name, o.Name)
	case PrefixVerbatimUNC, PrefixUNC:
		return bytes.Equal(p.Server, o.Server) && bytes.Equal(p.Share, o.Share)
	case PrefixVerbatimDisk, PrefixDisk:
		return p.Letter == o.Letter
	default:
		return true
	}
}

// String renders p as Kind(fields), e.g. `UNC(server, share)` or `Disk(C)`.
func (p Prefix) String() string {
	var b strings.Builder
	b.WriteString(p.Kind.String())
	b.WriteByte('(')
	switch p.Kind {
	case PrefixVerbatim, PrefixDeviceNS:
		b.Write(p.Name)
	case PrefixVerbatimUNC, PrefixUNC:
		b.Write(p.Server)
		b.WriteString(", ")
		b.Write(p.Share)
	case PrefixVerbatimDisk, PrefixDisk:
		b.WriteByte(p.Letter)
	}
	b.WriteByte(')')
	return b.String()
}

var (
	verbatimUNCHead = []byte(`\\?\UNC\`)
	verbatimHead    = []byte(`\\?\`)
	deviceHead      = []byte(`\\.\`)
)

// ParseWindowsPrefix recognizes a Windows prefix at the start of path.
//
// The forms are tried in a fixed order because earlier ones are strict
// prefixes of later, more general ones:
//
//  1. `\\?\UNC\server\share`
//  2. `\\?\C:` (followed by `\` or the end of the path)
//  3. `\\?\name`
//  4. `\\.\name`
//  5. `\\server\share`, either separator, server not empty
//  6. `C:`
//
// Verbatim names only end at `\`. The other forms end at either separator.
func ParseWindowsPrefix(path []byte) (Prefix, bool) {
	switch {
	case bytes.HasPrefix(path, verbatimUNCHead):
		server, share := twoComponents(path[len(verbatimUNCHead):], isVerbatimSep)
		return Prefix{Kind: PrefixVerbatimUNC, Server: server, Share: share}, true

	case bytes.HasPrefix(path, verbatimHead):
		rest := path[len(verbatimHead):]
		if letter, ok := driveExact(rest); ok {
			return Prefix{Kind: PrefixVerbatimDisk, Letter: letter}, true
		}
		name, _ := nextComponent(rest, isVerbatimSep)
		return Prefix{Kind: PrefixVerbatim, Name: name}, true

	case bytes.HasPrefix(path, deviceHead):
		name, _ := nextComponent(path[len(deviceHead):], isWindowsSep)
		return Prefix{Kind: PrefixDeviceNS, Name: name}, true

	case len(path) >= 2 && isWindowsSep(path[0]) && isWindowsSep(path[1]):
		server, share := twoComponents(path[2:], isWindowsSep)
		if len(server) == 0 {
			return Prefix{}, false
		}
		return Prefix{Kind: PrefixUNC, Server: server, Share: share}, true

	default:
		if letter, ok := drive(path); ok {
			return Prefix{Kind: PrefixDisk, Letter: letter}, true
		}
		return Prefix{}, false
	}
}

// nextComponent splits path at the first separator. rest starts at that
// separator, or is nil when there is none.
func nextComponent(path []byte, isSep func(byte) bool) (comp, rest []byte) {
	for i, b := range path {
		if isSep(b) {
			return path[:i], path[i:]
		}
	}
	return path, nil
}

// twoComponents returns the first two components of path. The second one is
// empty when no separator follows the first.
func twoComponents(path []byte, isSep func(byte) bool) (first, second []byte) {
	first, rest := nextComponent(path, isSep)
	if len(rest) == 0 {
		return first, nil
	}
	second, _ = nextComponent(rest[1:], isSep)
	return first, second
}

// drive recognizes `C:` at the start of path and returns the upper-cased letter.
func drive(path []byte) (byte, bool) {
	if len(path) >= 2 && path[1] == ':' && isASCIIAlpha(path[0]) {
		return toUpperASCII(path[0]), true
	}
	return 0, false
}

// driveExact is drive for verbatim paths, where the drive must be the whole
// first component.
func driveExact(path []byte) (byte, bool) {
	letter, ok := drive(path)
	if !ok || (len(path) > 2 && !isVerbatimSep(path[2])) {
		return 0, false
	}
	return letter, true
}

func isASCIIAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func toUpperASCII(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
