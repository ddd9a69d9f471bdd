package fspath

import (
	"io"
	"os"
	"path/filepath"
)

// LocalFS implements VFS using the host OS.
type LocalFS struct{}

func (LocalFS) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }
func (LocalFS) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
func (LocalFS) Open(path string) (io.ReadCloser, error)    { return os.Open(path) }
func (LocalFS) Mkdir(path string) error                    { return os.Mkdir(path, 0755) }
func (LocalFS) Remove(path string) error                   { return os.Remove(path) }
func (LocalFS) Truncate(path string, size int64) error     { return os.Truncate(path, size) }
func (LocalFS) Getwd() (string, error)                     { return os.Getwd() }
func (LocalFS) Executable() (string, error)                { return os.Executable() }
func (LocalFS) Capabilities() Capabilities                 { return Capabilities{FastList: true, Watch: true} }

// Abs resolves path to a canonical absolute path. Symlink evaluation makes
// this the realpath equivalent: it fails when the target does not exist.
func (LocalFS) Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
