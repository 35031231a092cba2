package regexp

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Flags are the modifiers that follow the closing delimiter of a delimited
// pattern.
type Flags uint16

const (
	CaseInsensitive Flags = 1 << iota // i
	MultiLine                         // m
	DotAll                            // s
	Extended                          // x
	UTF8                              // u
	Ungreedy                          // U
	Anchored                          // A
	DollarEndOnly                     // D
	NoAutoCapture                     // n
)

// ParseFlags converts a modifier string such as "imsx" into Flags.
//
// Whitespace between modifiers is ignored. S and X are accepted and have no
// effect, as with PCRE2.
func ParseFlags(modifiers string) (Flags, error) {
	var f Flags

	for _, c := range modifiers {
		switch c {
		case 'i':
			f |= CaseInsensitive
		case 'm':
			f |= MultiLine
		case 's':
			f |= DotAll
		case 'x':
			f |= Extended
		case 'u':
			f |= UTF8
		case 'U':
			f |= Ungreedy
		case 'A':
			f |= Anchored
		case 'D':
			f |= DollarEndOnly
		case 'n':
			f |= NoAutoCapture
		case 'S', 'X', ' ', '\n', '\r':
		default:
			return 0, fmt.Errorf("%w %q", ErrUnknownModifier, c)
		}
	}

	return f, nil
}

// String returns the modifiers in canonical order.
func (f Flags) String() string {
	var sb strings.Builder

	for i, c := range "imsxuUADn" {
		if f&(1<<i) != 0 {
			sb.WriteRune(c)
		}
	}

	return sb.String()
}

// needsPCRE reports whether the flags can only be honoured by regexp2.
func (f Flags) needsPCRE() bool {
	return f&(Extended|NoAutoCapture) != 0
}

// needsPCREDollar reports whether expr relies on PCRE's $, which also matches
// before a newline at the end of the subject. coregex's $ only matches at the
// very end, so such patterns go to regexp2 unless m or D makes the two agree.
func (f Flags) needsPCREDollar(expr string) bool {
	return f&(MultiLine|DollarEndOnly) == 0 && len(dollarAnchors(expr)) > 0
}

// inline renders the flags coregex understands as an inline group prefix.
// UTF8 and DollarEndOnly need no prefix: coregex always matches runes, and
// its $ only matches at the end of text unless m is set.
func (f Flags) inline() string {
	var sb strings.Builder

	if f&CaseInsensitive != 0 {
		sb.WriteByte('i')
	}
	if f&MultiLine != 0 {
		sb.WriteByte('m')
	}
	if f&DotAll != 0 {
		sb.WriteByte('s')
	}
	if f&Ungreedy != 0 {
		sb.WriteByte('U')
	}

	if sb.Len() == 0 {
		return ""
	}

	return "(?" + sb.String() + ")"
}

// pcreOptions maps the flags to regexp2 options. Ungreedy and DollarEndOnly
// have no regexp2 equivalent; compile rewrites the expression for them.
func (f Flags) pcreOptions() regexp2.RegexOptions {
	opts := regexp2.None

	if f&CaseInsensitive != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&MultiLine != 0 {
		opts |= regexp2.Multiline
	}
	if f&DotAll != 0 {
		opts |= regexp2.Singleline
	}
	if f&Extended != 0 {
		opts |= regexp2.IgnorePatternWhitespace
	}
	if f&NoAutoCapture != 0 {
		opts |= regexp2.ExplicitCapture
	}

	return opts
}
