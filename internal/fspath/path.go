package fspath

import (
	"strings"

	"fpath/internal/constants"
	apperrors "fpath/internal/errors"
)

// Path is a value-semantic representation of a filesystem location: an
// ordered list of segments, an absoluteness flag, and the dialect the text
// was parsed as. A Path only names a location; it holds no handle to it.
//
// Paths are immutable after construction. Join and derived operations
// return new values and never touch the receiver, so a Path is safe to
// share read-only across goroutines.
type Path struct {
	segments []string
	absolute bool
	dialect  Dialect
}

// Structural errors raised by Join. They are wrapped in an AppError
// carrying the operation name; match with errors.Is.
var (
	ErrInvalidOperand  = apperrors.NewPathError("join", "", "expected a relative path", nil)
	ErrDialectMismatch = apperrors.NewPathError("join", "", "expected a path of the same dialect", nil)
)

// Segments returns a copy of the path segments, root to leaf.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// IsAbsolute reports whether the original text began with a root indicator
// ('/' for Posix, drive letter plus separator for Windows).
func (p Path) IsAbsolute() bool { return p.absolute }

// Dialect returns the dialect the path was constructed with.
func (p Path) Dialect() Dialect { return p.dialect }

// Empty reports whether the path has no segments.
func (p Path) Empty() bool { return len(p.segments) == 0 }

// Filename returns the last segment, or "" for an empty path.
func (p Path) Filename() string {
	if p.Empty() {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Join appends the segments of rel to p and returns the combined path.
// The result keeps p's dialect and absoluteness. rel must be relative
// (ErrInvalidOperand) and of the same dialect (ErrDialectMismatch).
func (p Path) Join(rel Path) (Path, error) {
	if rel.absolute {
		return Path{}, ErrInvalidOperand
	}
	if p.dialect != rel.dialect {
		return Path{}, ErrDialectMismatch
	}
	segs := make([]string, 0, len(p.segments)+len(rel.segments))
	segs = append(segs, p.segments...)
	segs = append(segs, rel.segments...)
	return Path{segments: segs, absolute: p.absolute, dialect: p.dialect}, nil
}

// JoinName appends a single child name, parsed in p's dialect. A name
// containing separators contributes one segment per run-delimited token.
func (p Path) JoinName(name string) Path {
	joined, err := p.Join(Parse(name, p.dialect))
	if err != nil {
		// A bare name can never be absolute, so Join cannot fail here
		// unless name carries a drive root; keep p in that case.
		return p
	}
	return joined
}

// parentStep is the dialect-free half of Ascend: drop the last segment, or
// push a ".." segment when the last segment is itself navigational ("." or
// "..") or the path is empty. Stepping above a navigational token is
// recorded rather than resolved, so relative paths never require
// filesystem access.
func (p Path) parentStep() Path {
	segs := p.Segments()
	if n := len(segs); n > 0 &&
		segs[n-1] != constants.CurrentDirectoryName &&
		segs[n-1] != constants.ParentDirectoryName {
		segs = segs[:n-1]
	} else {
		segs = append(segs, constants.ParentDirectoryName)
	}
	return Path{segments: segs, absolute: p.absolute, dialect: p.dialect}
}

// ToText renders the path as text for the target dialect: each segment
// followed by the target separator, without a trailing separator. The
// leading root separator is emitted only when the path is absolute and its
// own dialect is Posix; Windows-absolute paths carry their root in the
// drive segment. Segments are not re-validated against the target dialect.
func (p Path) ToText(target Dialect) string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	if p.absolute && p.dialect == Posix {
		b.WriteByte('/')
	}
	sep := target.separator()
	for i, seg := range p.segments {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(seg)
	}
	return b.String()
}

// String renders the path in its own dialect.
func (p Path) String() string {
	return p.ToText(p.dialect)
}
