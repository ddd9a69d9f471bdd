//go:build windows
// +build windows

package main

import "syscall"

// isPlatformHidden reports whether the Windows hidden attribute is set.
func isPlatformHidden(path string) bool {
	ptr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	return attrs&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}
