//go:build !linux
// +build !linux

package fspath

// On non-Linux platforms the direct SMB provider is not available; fall
// back to LocalFS (on Windows the resolver hands over UNC paths instead).
func newSMBProvider(host, share string, c *Credentials) VFS {
	return LocalFS{}
}
