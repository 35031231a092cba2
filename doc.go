// Package str provides fluent, immutable UTF-8 string handling.
//
// A [Str] wraps a string and exposes chainable operations that each return a
// new value, leaving the receiver untouched:
//
//	s := str.New("  <b>Foo</b>  ").Trim().Escape()
//	fmt.Println(s) // &lt;b&gt;Foo&lt;/b&gt;
//
// Lengths, offsets and trimming work on Unicode code points rather than
// bytes, so multi-byte characters such as "Ç" count as one. Grapheme
// clusters, normalisation and locale-aware behaviour are out of scope.
//
// Regular expressions use PCRE-style delimited patterns ("/[a-f]/i") and are
// executed by [regexp], which picks coregex or regexp2 depending on the
// syntax the pattern needs. A malformed pattern is reported as a
// [*PatternError], never as a failed match.
package str
