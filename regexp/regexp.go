package regexp

import (
	"strconv"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features detected at compile time.
type Regexp struct {
	pattern string
	flags   Flags
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses a bare regular expression and returns a compiled Regexp.
// Patterns that require PCRE/Perl-only features (detected by needsPCRE) are
// compiled with regexp2; everything else uses coregex for speed.
func Compile(expr string) (*Regexp, error) {
	return compile(expr, expr, 0)
}

// CompileDelimited parses a PCRE-style delimited pattern, e.g. `/[a-f]/i`,
// and compiles its body with the modifiers applied.
func CompileDelimited(pattern string) (*Regexp, error) {
	expr, modifiers, err := Split(pattern)
	if err != nil {
		return nil, err
	}

	flags, err := ParseFlags(modifiers)
	if err != nil {
		return nil, err
	}

	return compile(pattern, expr, flags)
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MustCompileDelimited is like CompileDelimited but panics if the pattern
// cannot be parsed.
func MustCompileDelimited(pattern string) *Regexp {
	re, err := CompileDelimited(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

func compile(pattern, expr string, flags Flags) (*Regexp, error) {
	if flags&Anchored != 0 {
		expr = anchor(expr, flags)
	}

	if flags.needsPCRE() || needsPCRE(expr) || flags.needsPCREDollar(expr) {
		if flags&Ungreedy != 0 {
			expr = invertGreed(expr)
		}
		if flags&(DollarEndOnly|MultiLine) == DollarEndOnly {
			expr = endOnly(expr)
		}

		re, err := regexp2.Compile(expr, flags.pcreOptions())
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, flags: flags, pcre: re}, nil
	}

	re, err := coregex.Compile(flags.inline() + expr)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, flags: flags, core: re}, nil
}

// anchor pins expr to the start of the subject regardless of multi-line mode.
// In extended mode a trailing comment would swallow the closing parenthesis,
// so the body is terminated with a newline first.
func anchor(expr string, flags Flags) string {
	if flags&Extended != 0 {
		expr += "\n"
	}

	return `(?-m:^)(?:` + expr + `)`
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the modifiers the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToStrings(s, m.Groups())
}

// FindStringSubmatchIndex returns the byte index pairs identifying the
// leftmost match of the Regexp in s and its submatches. Groups that did not
// take part in the match are reported as -1, -1.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringSubmatchIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(s, m.Groups())
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return maxGroupNumber(r.pcre)
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]; unnamed groups
// have an empty name.
//
// NOTE: regexp2 numbers named groups after all unnamed ones, so a pattern
// that needs it and mixes both kinds of group is numbered differently from
// PCRE2.
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	hi := maxGroupNumber(r.pcre)
	names := make([]string, hi+1)
	for i := 1; i <= hi; i++ {
		name := r.pcre.GroupNameFromNumber(i)
		if name != strconv.Itoa(i) {
			names[i] = name
		}
	}

	return names
}

func maxGroupNumber(re *regexp2.Regexp) int {
	hi := 0
	for _, v := range re.GetGroupNumbers() {
		hi = max(hi, v)
	}
	return hi
}
