package fspath

import "runtime"

// Dialect identifies a path text convention: separator characters and the
// absolute-path grammar. It is fixed when a Path is constructed and is
// propagated through every derived value.
type Dialect int

const (
	Posix Dialect = iota
	Windows
)

// String returns a string representation of the dialect
func (d Dialect) String() string {
	switch d {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// Native returns the dialect of the host platform.
func Native() Dialect {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// separator returns the canonical separator used when rendering text.
// Windows accepts both '/' and '\' on input but renders '\'.
func (d Dialect) separator() byte {
	if d == Windows {
		return '\\'
	}
	return '/'
}

// isSeparator reports whether c is a separator character in the dialect.
func (d Dialect) isSeparator(c byte) bool {
	if c == '/' {
		return true
	}
	return d == Windows && c == '\\'
}

// hasDriveRoot reports whether s starts with the Windows drive-letter root
// grammar: a single ASCII letter, a colon, and a separator.
func hasDriveRoot(s string) bool {
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return false
	}
	return s[1] == ':' && Windows.isSeparator(s[2])
}
