package fspath

import (
	"strings"

	"fpath/internal/constants"
	apperrors "fpath/internal/errors"
)

// Query maps Path values onto one storage provider. It is stateless and
// caches nothing: every call is a fresh observation of the filesystem, so
// two calls against the same path may disagree.
//
// Operations come in two disjoint error styles. Probes (Exists, IsFile,
// IsDirectory, FileSize, CreateDirectory, RemoveFile, ResizeFile,
// ListChildren) collapse every failure into a sentinel result and never
// return an error; "does not exist" and "could not be checked" are
// indistinguishable. The remaining operations (MakeAbsolute,
// CurrentDirectory, ExecutablePath, and Ascend on absolute paths) return a
// structured error carrying the operation name and OS error code, because
// their failure means a caller assumption was wrong rather than a negative
// probe result.
type Query struct {
	vfs VFS
}

// NewQuery creates a query adapter over the given provider.
func NewQuery(vfs VFS) *Query { return &Query{vfs: vfs} }

// NewLocalQuery creates a query adapter over the host OS.
func NewLocalQuery() *Query { return &Query{vfs: LocalFS{}} }

// VFS returns the underlying provider.
func (q *Query) VFS() VFS { return q.vfs }

// Exists reports whether the path names anything on the provider.
func (q *Query) Exists(p Path) bool {
	_, err := q.vfs.Stat(p.String())
	return err == nil
}

// IsFile reports whether the path names a regular file.
func (q *Query) IsFile(p Path) bool {
	info, err := q.vfs.Stat(p.String())
	return err == nil && info.Mode().IsRegular()
}

// IsDirectory reports whether the path names a directory.
func (q *Query) IsDirectory(p Path) bool {
	info, err := q.vfs.Stat(p.String())
	return err == nil && info.IsDir()
}

// FileSize returns the size of the regular file at p, or SizeUnknown when
// p is not a regular file or cannot be stat'ed.
func (q *Query) FileSize(p Path) int64 {
	info, err := q.vfs.Stat(p.String())
	if err != nil || !info.Mode().IsRegular() {
		return constants.SizeUnknown
	}
	return info.Size()
}

// MakeAbsolute resolves p through the provider's canonicalization
// primitive. The result is parsed in the native dialect. Resolution of a
// path that does not exist fails with a filesystem error.
func (q *Query) MakeAbsolute(p Path) (Path, error) {
	resolved, err := q.vfs.Abs(p.String())
	if err != nil {
		return Path{}, apperrors.NewFileSystemError("make_absolute", p.String(), "cannot resolve path", err)
	}
	return Parse(resolved, Native()), nil
}

// Ascend returns the parent of p. A trailing navigational segment ("." or
// "..") is stepped above by appending ".." rather than resolved, so
// relative paths never touch the filesystem. An absolute input is
// re-resolved through MakeAbsolute afterwards, flattening any ".." against
// the real hierarchy; that resolution fails when the parent does not exist.
func (q *Query) Ascend(p Path) (Path, error) {
	parent := p.parentStep()
	if p.IsAbsolute() {
		return q.MakeAbsolute(parent)
	}
	return parent, nil
}

// Extension returns the trailing '.'-delimited suffix of the last segment.
// It returns "" whenever the path does not currently name a directory on
// the provider, mirroring the contract this package replaces. That gate
// looks inverted for a file-extension concept; it is kept literally until
// product sign-off says otherwise.
func (q *Query) Extension(p Path) string {
	if !q.IsDirectory(p) {
		return ""
	}
	name := p.Filename()
	pos := strings.LastIndexByte(name, '.')
	if pos < 0 {
		return ""
	}
	return name[pos+1:]
}

// CreateDirectory creates a directory at p, reporting success.
func (q *Query) CreateDirectory(p Path) bool {
	return q.vfs.Mkdir(p.String()) == nil
}

// RemoveFile deletes the file at p, reporting success.
func (q *Query) RemoveFile(p Path) bool {
	return q.vfs.Remove(p.String()) == nil
}

// ResizeFile truncates or extends the file at p to size, reporting success.
func (q *Query) ResizeFile(p Path, size int64) bool {
	return q.vfs.Truncate(p.String(), size) == nil
}

// ListChildren returns a Path for every entry under p, in the order the
// provider yields them. A path that is not a directory, or one that cannot
// be enumerated, produces an empty slice; an empty result is not a failure
// signal.
func (q *Query) ListChildren(p Path) []Path {
	if !q.IsDirectory(p) {
		return nil
	}
	entries, err := q.vfs.ReadDir(p.String())
	if err != nil {
		return nil
	}
	out := make([]Path, 0, len(entries))
	for _, entry := range entries {
		out = append(out, p.JoinName(entry.Name()))
	}
	return out
}

// CurrentDirectory returns the provider's working directory as an
// absolute native-dialect Path.
func (q *Query) CurrentDirectory() (Path, error) {
	wd, err := q.vfs.Getwd()
	if err != nil {
		return Path{}, apperrors.NewFileSystemError("current_directory", "", "cannot determine working directory", err)
	}
	return Parse(wd, Native()), nil
}

// ExecutablePath returns the absolute path of the running executable.
func (q *Query) ExecutablePath() (Path, error) {
	exe, err := q.vfs.Executable()
	if err != nil {
		return Path{}, apperrors.NewFileSystemError("executable_path", "", "cannot determine executable path", err)
	}
	return Parse(exe, Native()), nil
}
