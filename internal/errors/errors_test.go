package errors

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	testCases := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypePath, "path"},
		{ErrorTypeFileSystem, "filesystem"},
		{ErrorTypeConfig, "config"},
		{ErrorTypeWatcher, "watcher"},
		{ErrorTypeSecret, "secret"},
		{ErrorType(999), "unknown"}, // Invalid error type
	}

	for _, tc := range testCases {
		result := tc.errorType.String()
		if result != tc.expected {
			t.Errorf("For error type %v, expected '%s', got '%s'", tc.errorType, tc.expected, result)
		}
	}
}

func TestAppErrorError(t *testing.T) {
	err := &AppError{
		Type:      ErrorTypeFileSystem,
		Operation: "make_absolute",
		Path:      "/home/user/documents",
		Message:   "cannot resolve path",
	}
	expected := "filesystem error in make_absolute [/home/user/documents]: cannot resolve path"
	if err.Error() != expected {
		t.Errorf("Expected error message '%s', got '%s'", expected, err.Error())
	}

	err2 := &AppError{
		Type:      ErrorTypeConfig,
		Operation: "load",
		Message:   "invalid JSON",
	}
	expected2 := "config error in load: invalid JSON"
	if err2.Error() != expected2 {
		t.Errorf("Expected error message '%s', got '%s'", expected2, err2.Error())
	}
}

func TestFileSystemErrorCarriesErrno(t *testing.T) {
	cause := fmt.Errorf("stat: %w", syscall.ENOENT)
	err := NewFileSystemError("make_absolute", "/missing", "cannot resolve path", cause)
	if err.Errno != syscall.ENOENT {
		t.Fatalf("Errno got %d, want ENOENT", int(err.Errno))
	}
	expected := fmt.Sprintf("filesystem error in make_absolute [/missing]: cannot resolve path (errno %d)", int(syscall.ENOENT))
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}

func TestFileSystemErrorWithoutErrno(t *testing.T) {
	err := NewFileSystemError("current_directory", "", "cannot determine working directory", errors.New("boom"))
	if err.Errno != 0 {
		t.Fatalf("Errno got %d, want 0", int(err.Errno))
	}
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("underlying")
	err := NewPathError("join", "/a", "expected a relative path", sentinel)
	if !errors.Is(err, sentinel) {
		t.Error("expected errors.Is to see through AppError")
	}
	if errors.Unwrap(err) != sentinel {
		t.Error("Unwrap did not return the wrapped error")
	}
}

func TestErrno(t *testing.T) {
	if got := Errno(nil); got != 0 {
		t.Errorf("Errno(nil) got %d", int(got))
	}
	if got := Errno(errors.New("plain")); got != 0 {
		t.Errorf("Errno(plain) got %d", int(got))
	}
	wrapped := fmt.Errorf("outer: %w", syscall.EACCES)
	if got := Errno(wrapped); got != syscall.EACCES {
		t.Errorf("Errno(wrapped) got %d", int(got))
	}
}
