package str

import (
	"unicode/utf8"

	"github.com/fisharebest/str/cast"
)

// Str is an immutable UTF-8 string. The zero value is the empty string.
//
// A Str is safe for concurrent use; every method returns a new value.
type Str struct {
	s string
}

// New wraps s.
func New(s string) Str {
	return Str{s: s}
}

// Make converts v to its string representation and wraps it. See
// [cast.ToString] for the accepted types; anything else yields an error
// wrapping [cast.ErrNotStringable].
func Make(v any) (Str, error) {
	s, err := cast.ToString(v)
	if err != nil {
		return Str{}, err
	}

	return Str{s: s}, nil
}

// MustMake is like Make but panics if v has no string representation.
func MustMake(v any) Str {
	return Str{s: cast.ToStringMust(v)}
}

// Length returns the number of code points. Each byte of an invalid UTF-8
// sequence counts as one.
func (s Str) Length() int {
	return utf8.RuneCountInString(s.s)
}

// String returns the wrapped string verbatim.
func (s Str) String() string {
	return s.s
}
