package str

import (
	"strings"
	"unicode/utf8"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces the characters that are special in HTML with entities:
// & < > " and '. Each invalid UTF-8 byte is replaced with U+FFFD first, as
// Length counts them. Existing entities are escaped again.
func (s Str) Escape() Str {
	return Str{s: htmlReplacer.Replace(validUTF8(s.s))}
}

func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}

	return sb.String()
}

// E is shorthand for Escape, for use in templates.
func (s Str) E() Str {
	return s.Escape()
}
