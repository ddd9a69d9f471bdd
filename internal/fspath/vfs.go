package fspath

import (
	"io"
	"os"
)

// Capabilities describes provider abilities (reserved for future use).
type Capabilities struct {
	FastList bool
	Watch    bool
}

// VFS defines the storage-provider surface consumed by the query adapter.
// Paths cross this boundary as provider-native text. Every method makes
// one blocking call and returns; there is no cancellation concept.
//
// Providers that cannot perform an operation return an error from it; the
// query adapter maps errors into probe sentinels or structured failures.
type VFS interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	Open(path string) (io.ReadCloser, error)

	// Abs canonicalizes path to its definitive absolute form. It must
	// fail when the target does not exist on the provider.
	Abs(path string) (string, error)

	Mkdir(path string) error
	Remove(path string) error
	Truncate(path string, size int64) error

	Getwd() (string, error)
	Executable() (string, error)

	Capabilities() Capabilities
}
