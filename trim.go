package str

import (
	"slices"
	"strings"
)

var whitespace = []string{
	" ",
	"\x00",
	"\n",
	"\r",
	"\t",
	"\v",
	"\u0085", // NEL
	"\u2028", // LINE SEPARATOR
	"\u2029", // PARAGRAPH SEPARATOR
}

// Whitespace returns the sequences Trim removes.
func Whitespace() []string {
	return slices.Clone(whitespace)
}

// Trim removes whitespace, as listed by [Whitespace], from both ends.
func (s Str) Trim() Str {
	return s.TrimChars(whitespace...)
}

// TrimChars removes the given sequences from both ends until neither end
// starts or ends with any of them. A sequence may span several code points
// and is matched as a whole. Empty sequences are ignored.
func (s Str) TrimChars(chars ...string) Str {
	str := s.s

	for done := false; !done; {
		done = true

		for _, c := range chars {
			if c == "" {
				continue
			}
			for strings.HasPrefix(str, c) {
				str = str[len(c):]
				done = false
			}
			for strings.HasSuffix(str, c) {
				str = str[:len(str)-len(c)]
				done = false
			}
		}
	}

	return Str{s: str}
}
