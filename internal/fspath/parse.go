package fspath

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Parse converts raw path text into a Path for the given dialect.
//
// Tokenization splits on runs of the dialect's separator characters, so
// consecutive separators collapse to a single boundary and no segment is
// ever empty. For Windows, a leading drive root (letter, colon, separator)
// becomes segment zero and marks the path absolute; without one the path
// is relative even when the text starts with a separator. For Posix a
// leading '/' marks the path absolute.
func Parse(text string, d Dialect) Path {
	if d == Windows {
		p := Path{dialect: Windows}
		rest := text
		if hasDriveRoot(text) {
			p.segments = []string{text[:2]}
			p.absolute = true
			rest = text[3:]
		}
		p.segments = append(p.segments, splitSeparators(rest, d)...)
		return p
	}
	return Path{
		segments: splitSeparators(text, d),
		absolute: len(text) > 0 && text[0] == '/',
		dialect:  Posix,
	}
}

// ParseWide transcodes a UTF-16 string to UTF-8 and parses it. Input that
// is not well-formed UTF-16 (unpaired surrogates) yields an empty Path;
// transcoding trouble is not a parse error in this model.
func ParseWide(text []uint16, d Dialect) Path {
	runes := utf16.Decode(text)
	for _, r := range runes {
		if r == utf8.RuneError {
			return Path{dialect: d}
		}
	}
	return Parse(string(runes), d)
}

// splitSeparators tokenizes s on runs of the dialect's separators,
// dropping the empty tokens runs would otherwise produce.
func splitSeparators(s string, d Dialect) []string {
	var out []string
	start := -1
	for i := 0; i < len(s); i++ {
		if d.isSeparator(s[i]) {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
