package regexp

import (
	"fmt"
	"strings"
)

// bracketPairs maps opening bracket delimiters to their closing counterpart.
var bracketPairs = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// Split separates a delimited pattern such as `#^a+$#im` into its expression
// body and modifiers.
//
// Leading whitespace is skipped. Bracket-style delimiters nest, and a
// delimiter escaped with a backslash does not end the body; the escape is
// left in place for the engine to interpret.
func Split(pattern string) (expr, modifiers string, err error) {
	p := strings.TrimLeft(pattern, " \t\n\r\v\f")
	if p == "" {
		return "", "", ErrEmptyPattern
	}

	open := p[0]
	if !isDelimiter(open) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDelimiter, open)
	}

	end, ok := closingIndex(p, open)
	if !ok {
		return "", "", fmt.Errorf("%w %q", ErrMissingDelimiter, closer(open))
	}

	return p[1:end], p[end+1:], nil
}

// isDelimiter reports whether c may open a delimited pattern.
func isDelimiter(c byte) bool {
	switch {
	case c == 0, c == '\\', c >= 0x80:
		return false
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	default:
		return true
	}
}

func closer(open byte) byte {
	if c, ok := bracketPairs[open]; ok {
		return c
	}

	return open
}

// closingIndex returns the byte index of the delimiter that closes p[0].
func closingIndex(p string, open byte) (int, bool) {
	end := closer(open)
	depth := 0

	for i := 1; i < len(p); i++ {
		switch c := p[i]; {
		case c == '\\':
			i++
		case c == end && depth == 0:
			return i, true
		case c == end:
			depth--
		case c == open && open != end:
			depth++
		}
	}

	return 0, false
}
