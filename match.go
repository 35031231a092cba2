package str

import (
	"slices"

	"github.com/fisharebest/str/regexp"
)

// Matches reports whether the delimited pattern, e.g. "/[a-f]/i", matches
// anywhere in s. A pattern that cannot be compiled returns a *PatternError.
func (s Str) Matches(pattern string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(s.s), nil
}

// Match returns the groups captured by the leftmost match of the delimited
// pattern, or nil if there is no match. A pattern that cannot be compiled
// returns a *PatternError.
func (s Str) Match(pattern string) (*Captures, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	loc := re.FindStringSubmatchIndex(s.s)
	if loc == nil {
		return nil, nil
	}

	return newCaptures(s.s, loc, re.SubexpNames()), nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.CompileDelimited(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	return re, nil
}

// Captures holds the groups of a successful match. Group 0 is the whole
// match; groups 1 and up follow the pattern's parenthesised subexpressions.
type Captures struct {
	groups []string
	ok     []bool
	names  []string
}

func newCaptures(s string, loc []int, names []string) *Captures {
	n := len(loc) / 2
	c := &Captures{
		groups: make([]string, n),
		ok:     make([]bool, n),
		names:  make([]string, n),
	}

	copy(c.names, names)
	for i := range n {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 || end < 0 {
			continue
		}
		c.groups[i] = s[start:end]
		c.ok[i] = true
	}

	return c
}

// Len returns the number of groups, including group 0.
func (c *Captures) Len() int {
	return len(c.groups)
}

// Group returns the text of group i. The boolean is false when the group does
// not exist or did not take part in the match.
func (c *Captures) Group(i int) (string, bool) {
	if i < 0 || i >= len(c.groups) {
		return "", false
	}

	return c.groups[i], c.ok[i]
}

// Named returns the text of the group called name.
func (c *Captures) Named(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	for i, n := range c.names {
		if n == name && c.ok[i] {
			return c.groups[i], true
		}
	}

	return "", false
}

// Names returns the group names indexed by group number. Unnamed groups,
// including group 0, have an empty name.
func (c *Captures) Names() []string {
	return slices.Clone(c.names)
}

// All returns the text of every group. Groups that did not take part in the
// match are empty.
func (c *Captures) All() []string {
	return slices.Clone(c.groups)
}
