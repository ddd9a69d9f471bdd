package fspath

import (
	"errors"
	"reflect"
	"testing"
	"unicode/utf16"
)

func TestParsePosixCollapsesSeparatorRuns(t *testing.T) {
	p := Parse("/a//b///c", Posix)
	if !p.IsAbsolute() {
		t.Fatal("expected absolute path")
	}
	if got, want := p.Segments(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("segments got %v, want %v", got, want)
	}
}

func TestParsePosixRelative(t *testing.T) {
	p := Parse("a/b", Posix)
	if p.IsAbsolute() {
		t.Fatal("expected relative path")
	}
	if p.Dialect() != Posix {
		t.Fatalf("dialect got %v", p.Dialect())
	}
}

func TestParseWindowsDriveDetection(t *testing.T) {
	p := Parse(`C:\Users\x`, Windows)
	if !p.IsAbsolute() {
		t.Fatal("expected drive-rooted path to be absolute")
	}
	if got, want := p.Segments(), []string{"C:", "Users", "x"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("segments got %v, want %v", got, want)
	}

	rel := Parse(`Users\x`, Windows)
	if rel.IsAbsolute() {
		t.Fatal("expected drive-less windows path to be relative")
	}
}

func TestParseWindowsLeadingSeparatorIsNotRoot(t *testing.T) {
	// Without a drive, leading separators are absorbed as a separator run.
	p := Parse(`\share\x`, Windows)
	if p.IsAbsolute() {
		t.Fatal("windows paths are only absolute via the drive-letter form")
	}
	if got, want := p.Segments(), []string{"share", "x"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("segments got %v, want %v", got, want)
	}
}

func TestParseWindowsMixedSeparators(t *testing.T) {
	p := Parse(`C:/Users\x//y`, Windows)
	if got, want := p.Segments(), []string{"C:", "Users", "x", "y"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("segments got %v, want %v", got, want)
	}
}

func TestParseWide(t *testing.T) {
	p := ParseWide(utf16.Encode([]rune("/var/log")), Posix)
	if got := p.ToText(Posix); got != "/var/log" {
		t.Fatalf("ParseWide got %q", got)
	}

	// An unpaired surrogate is not valid UTF-16; the result is empty.
	bad := ParseWide([]uint16{0xD800, 'a'}, Posix)
	if !bad.Empty() || bad.IsAbsolute() {
		t.Fatalf("expected empty path for invalid UTF-16, got %#v", bad)
	}
}

func TestRoundTripPosix(t *testing.T) {
	for _, text := range []string{"/a/b/c", "/usr/local/go", "/x"} {
		p := Parse(text, Posix)
		if got := p.ToText(Posix); got != text {
			t.Errorf("round trip of %q got %q", text, got)
		}
	}
	// Duplicate separators collapse on the way through.
	if got := Parse("/a//b", Posix).ToText(Posix); got != "/a/b" {
		t.Errorf("collapse round trip got %q", got)
	}
}

func TestJoinKeepsDialectAndAbsoluteness(t *testing.T) {
	base := Parse("/srv/data", Posix)
	rel := Parse("in/box", Posix)
	joined, err := base.Join(rel)
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if joined.Dialect() != base.Dialect() {
		t.Error("join changed dialect")
	}
	if joined.IsAbsolute() != base.IsAbsolute() {
		t.Error("join changed absoluteness")
	}
	if got := joined.ToText(Posix); got != "/srv/data/in/box" {
		t.Fatalf("join got %q", got)
	}
	// The base is untouched.
	if got := base.ToText(Posix); got != "/srv/data" {
		t.Fatalf("join mutated base: %q", got)
	}
}

func TestJoinRejectsAbsoluteRight(t *testing.T) {
	_, err := Parse("a", Posix).Join(Parse("/b", Posix))
	if !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected ErrInvalidOperand, got %v", err)
	}
}

func TestJoinRejectsDialectMismatch(t *testing.T) {
	_, err := Parse("/a", Posix).Join(Parse("b", Windows))
	if !errors.Is(err, ErrDialectMismatch) {
		t.Fatalf("expected ErrDialectMismatch, got %v", err)
	}
}

func TestJoinChecksOperandBeforeDialect(t *testing.T) {
	// An absolute right operand of the wrong dialect reports the operand
	// problem first.
	_, err := Parse("a", Posix).Join(Parse(`C:\x`, Windows))
	if !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected ErrInvalidOperand, got %v", err)
	}
}

func TestFilename(t *testing.T) {
	if got := Parse("/a/b/c.txt", Posix).Filename(); got != "c.txt" {
		t.Errorf("Filename got %q", got)
	}
	if got := Parse("", Posix).Filename(); got != "" {
		t.Errorf("Filename of empty path got %q", got)
	}
}

func TestToTextTargetDialect(t *testing.T) {
	p := Parse("/a/b", Posix)
	if got := p.ToText(Windows); got != `/a\b` {
		t.Errorf("posix-absolute as windows text got %q", got)
	}

	// A windows-absolute value rendered as posix text gets no leading
	// slash: the absolute prefix is gated on the value's own dialect.
	w := Parse(`C:\Users\x`, Windows)
	if got := w.ToText(Posix); got != "C:/Users/x" {
		t.Errorf("windows-absolute as posix text got %q", got)
	}
	if got := w.ToText(Windows); got != `C:\Users\x` {
		t.Errorf("windows-absolute as windows text got %q", got)
	}
}

func TestToTextEmptyPath(t *testing.T) {
	if got := Parse("", Posix).ToText(Posix); got != "" {
		t.Errorf("empty path rendered %q", got)
	}
	if got := Parse("/", Posix).ToText(Posix); got != "" {
		t.Errorf("bare root rendered %q", got)
	}
}

func TestSegmentsReturnsCopy(t *testing.T) {
	p := Parse("/a/b", Posix)
	segs := p.Segments()
	segs[0] = "mutated"
	if got := p.Segments()[0]; got != "a" {
		t.Fatalf("Segments exposed internal state: %q", got)
	}
}
