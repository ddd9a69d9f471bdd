//go:build !windows
// +build !windows

package main

// isPlatformHidden always returns false on non-Windows systems; dotfiles
// are handled by the caller.
func isPlatformHidden(path string) bool {
	return false
}
