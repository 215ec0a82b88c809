package grammar

import "bytes"

// Windows is the Windows grammar: '\' is the primary separator and '/' the
// alternate one, paths may start with a prefix (see Prefix), and a verbatim
// prefix disables both the alternate separator and dot elision.
type Windows struct{}

// Windows separator bytes.
const (
	WindowsSeparator          = '\\'
	WindowsAlternateSeparator = '/'
)

// windowsDisallowed holds the bytes that may not appear in a Windows name
// (besides NUL, checked separately).
const windowsDisallowed = `\/:?*"<>|`

// windowsReserved holds the device names that can not be used as a file name,
// with or without an extension.
var windowsReserved = [][]byte{
	[]byte("CON"), []byte("PRN"), []byte("AUX"), []byte("NUL"),
	[]byte("COM1"), []byte("COM2"), []byte("COM3"), []byte("COM4"), []byte("COM5"),
	[]byte("COM6"), []byte("COM7"), []byte("COM8"), []byte("COM9"),
	[]byte("LPT1"), []byte("LPT2"), []byte("LPT3"), []byte("LPT4"), []byte("LPT5"),
	[]byte("LPT6"), []byte("LPT7"), []byte("LPT8"), []byte("LPT9"),
}

// Name implements Grammar.
func (Windows) Name() string { return NameWindows }

// Separator implements Grammar.
func (Windows) Separator() byte { return WindowsSeparator }

// AlternateSeparator returns the separator accepted outside verbatim mode.
func (Windows) AlternateSeparator() byte { return WindowsAlternateSeparator }

// IsSeparator implements Grammar.
func (Windows) IsSeparator(b byte, verbatim bool) bool {
	if verbatim {
		return b == WindowsSeparator
	}
	return isWindowsSep(b)
}

// IsDisallowed implements Grammar.
func (Windows) IsDisallowed(b byte) bool {
	return b == 0 || bytes.IndexByte([]byte(windowsDisallowed), b) >= 0
}

// IsReservedName implements Grammar. The part of name before its first '.'
// is compared case-insensitively against the reserved device names.
func (Windows) IsReservedName(name []byte) bool {
	if i := bytes.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	for _, r := range windowsReserved {
		if bytes.EqualFold(name, r) {
			return true
		}
	}
	return false
}

// HasPrefixes implements Grammar.
func (Windows) HasPrefixes() bool { return true }

// ParsePrefix implements Grammar.
func (Windows) ParsePrefix(path []byte) (Prefix, bool) {
	return ParseWindowsPrefix(path)
}

func isWindowsSep(b byte) bool {
	return b == WindowsSeparator || b == WindowsAlternateSeparator
}

func isVerbatimSep(b byte) bool {
	return b == WindowsSeparator
}
