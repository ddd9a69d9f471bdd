package fspath

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/mholt/archives"
)

// ArchiveFS implements a read-only VFS over the contents of an archive
// file (zip, tar, 7z, ... — whatever mholt/archives identifies). Paths
// are relative to the archive root. Mutations report unsupported, so
// probe operations against an archive collapse to their sentinels.
type ArchiveFS struct {
	archive string
}

// NewArchiveFS creates a provider rooted at the given archive file.
func NewArchiveFS(archivePath string) ArchiveFS {
	return ArchiveFS{archive: archivePath}
}

func (ArchiveFS) Capabilities() Capabilities { return Capabilities{FastList: false, Watch: false} }

func (a ArchiveFS) open() (fs.FS, error) {
	return archives.FileSystem(context.Background(), a.archive, nil)
}

// fsPath converts a provider path into an io/fs name: no leading
// separators, "." for the archive root.
func fsPath(p string) string {
	p = strings.Trim(strings.ReplaceAll(p, "\\", "/"), "/")
	if p == "" {
		return "."
	}
	return p
}

func (a ArchiveFS) Stat(path string) (os.FileInfo, error) {
	fsys, err := a.open()
	if err != nil {
		return nil, err
	}
	return fs.Stat(fsys, fsPath(path))
}

func (a ArchiveFS) ReadDir(path string) ([]os.DirEntry, error) {
	fsys, err := a.open()
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(fsys, fsPath(path))
}

func (a ArchiveFS) Open(path string) (io.ReadCloser, error) {
	fsys, err := a.open()
	if err != nil {
		return nil, err
	}
	return fsys.Open(fsPath(path))
}

// Abs verifies existence inside the archive; there is nothing further to
// resolve.
func (a ArchiveFS) Abs(path string) (string, error) {
	if _, err := a.Stat(path); err != nil {
		return "", err
	}
	if name := fsPath(path); name != "." {
		return "/" + name, nil
	}
	return "/", nil
}

func (a ArchiveFS) Mkdir(path string) error {
	return fmt.Errorf("archive %s is read-only", a.archive)
}

func (a ArchiveFS) Remove(path string) error {
	return fmt.Errorf("archive %s is read-only", a.archive)
}

func (a ArchiveFS) Truncate(path string, size int64) error {
	return fmt.Errorf("archive %s is read-only", a.archive)
}

func (ArchiveFS) Getwd() (string, error) {
	return "", fmt.Errorf("Getwd not supported for ArchiveFS")
}

func (ArchiveFS) Executable() (string, error) {
	return "", fmt.Errorf("Executable not supported for ArchiveFS")
}
