// Package regexp selects the fastest regex engine available for a pattern.
//
// By default it compiles patterns with coregex (an accelerated RE2-compatible
// engine). When the pattern requires PCRE/Perl features that RE2/coregex
// cannot execute, the package automatically falls back to [regexp2] for full
// PCRE2 compatibility.
//
// [CompileDelimited] additionally accepts PCRE-style delimited patterns, the
// form used by preg_match and friends:
//
//	re, err := regexp.CompileDelimited(`/^(?P<word>\w+)$/i`)
//
// Modifiers after the closing delimiter are translated to inline flags for
// coregex or to [regexp2.RegexOptions] for the PCRE engine.
package regexp
