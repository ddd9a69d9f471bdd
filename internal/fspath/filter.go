package fspath

import (
	"github.com/bmatcuk/doublestar/v4"

	apperrors "fpath/internal/errors"
)

// ListMatching returns the children of p whose filename matches the
// doublestar glob pattern. The listing itself is a probe (missing or
// unreadable directories yield no children); only a malformed pattern is
// an error.
func (q *Query) ListMatching(p Path, pattern string) ([]Path, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, apperrors.NewPathError("list_matching", p.String(), "invalid filter pattern: "+pattern, doublestar.ErrBadPattern)
	}
	var out []Path
	for _, child := range q.ListChildren(p) {
		ok, err := doublestar.Match(pattern, child.Filename())
		if err != nil {
			return nil, apperrors.NewPathError("list_matching", p.String(), "invalid filter pattern: "+pattern, err)
		}
		if ok {
			out = append(out, child)
		}
	}
	return out, nil
}
