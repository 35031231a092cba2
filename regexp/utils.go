package regexp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// pcreOnly lists constructs that RE2/coregex rejects or interprets
// differently, based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// lookaround, including the alpha-assertion spellings
	"(?=", "(?!", "(?<=", "(?<!", "(?*", "(?<*",
	"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
	"(*napla:", "(*non_atomic_positive_lookahead:",
	"(*naplb:", "(*non_atomic_positive_lookbehind:",
	"(*scan_substring:", "(*scs:",
	"(*script_run:", "(*sr:", "(*atomic_script_run:", "(*asr:",

	// backtracking verbs and start-of-pattern options
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	"(*LIMIT_DEPTH=", "(*LIMIT_HEAP=", "(*LIMIT_MATCH=", "(*CASELESS_RESTRICT)",
	"(*NOTEMPTY)", "(*NOTEMPTY_ATSTART)", "(*NO_AUTO_POSSESS)", "(*NO_DOTSTAR_ANCHOR)",
	"(*NO_JIT)", "(*NO_START_OPT)", "(*TURKISH_CASING)", "(*UTF)", "(*UCP)",
	"(*CR)", "(*LF)", "(*CRLF)", "(*ANYCRLF)", "(*ANY)", "(*NUL)",
	"(*BSR_ANYCRLF)", "(*BSR_UNICODE)",

	// atomic, branch-reset, conditional, comment and recursive groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#", "(?R)", "(?P>", "(?&", "(?[", "(?C",

	// escapes RE2 lacks or reads differently
	`\C`, `\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\N`, `\K`, `\e`, `\f`, `\a`,
	`\o{`, `\x{`, `\p{`, `\P{`,

	// backreferences by name
	`\g`, `\k`, `(?P=`,

	// anchors other than ^ and $
	`\A`, `\Z`, `\z`, `\G`,
}

// needsPCRE checks if the pattern contains PCRE2-only features.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	return hasNumericBackref(pattern) || hasPCRENamedGroup(pattern)
}

// hasNumericBackref reports an unescaped \1 to \9.
func hasNumericBackref(pattern string) bool {
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] != '\\' {
			continue
		}
		if next := pattern[i+1]; next >= '1' && next <= '9' {
			return true
		}
		i++
	}

	return false
}

// hasPCRENamedGroup reports (?'name'...) groups, which Go does not parse.
// (?<name>...) and (?P<name>...) stay on coregex, which numbers groups left
// to right as PCRE does.
func hasPCRENamedGroup(pattern string) bool {
	return strings.Contains(pattern, "(?'")
}

// groupsToStrings converts regexp2 groups, whose offsets are in runes, to the
// submatch strings coregex would return.
func groupsToStrings(s string, groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		start, end := runeRangeToByte(s, g.Index, g.Length)
		out[i] = s[start:end]
	}
	return out
}

// groupsToIndexes converts regexp2 groups to byte index pairs, using -1 for
// groups that did not participate.
func groupsToIndexes(s string, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}
		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}
	return out
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := start + runeToByteOffset(s[start:], length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
