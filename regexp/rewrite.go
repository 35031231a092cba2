package regexp

import "strings"

// braceEscapes are escape letters whose argument is enclosed in braces, e.g.
// \x{41} or \p{Lu}. The braces are not a quantifier.
const braceEscapes = "xopPNgk"

// dollarAnchors returns the byte offsets of every $ in expr that acts as an
// end-of-subject assertion: not escaped and not inside a character class.
func dollarAnchors(expr string) []int {
	var at []int

	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '\\':
			i = escapeEnd(expr, i) - 1
		case '[':
			i = classEnd(expr, i) - 1
		case '$':
			at = append(at, i)
		}
	}

	return at
}

// endOnly rewrites $ assertions to \z, which is what PCRE's D modifier
// makes of them.
func endOnly(expr string) string {
	at := dollarAnchors(expr)
	if len(at) == 0 {
		return expr
	}

	var sb strings.Builder
	last := 0
	for _, i := range at {
		sb.WriteString(expr[last:i])
		sb.WriteString(`\z`)
		last = i + 1
	}
	sb.WriteString(expr[last:])

	return sb.String()
}

// invertGreed swaps greedy and lazy quantifiers, which is what PCRE's U
// modifier does. Possessive quantifiers are left alone.
func invertGreed(expr string) string {
	var sb strings.Builder

	for i := 0; i < len(expr); {
		switch c := expr[i]; {
		case c == '\\':
			end := escapeEnd(expr, i)
			sb.WriteString(expr[i:end])
			i = end
		case c == '[':
			end := classEnd(expr, i)
			sb.WriteString(expr[i:end])
			i = end
		case c == '(' && i+1 < len(expr) && (expr[i+1] == '?' || expr[i+1] == '*'):
			// group syntax, not a quantifier
			sb.WriteString(expr[i : i+2])
			i += 2
		case c == '*' || c == '+' || c == '?':
			i = writeQuantifier(&sb, expr, i, i+1)
		case c == '{':
			if end, ok := braceQuantifierEnd(expr, i); ok {
				i = writeQuantifier(&sb, expr, i, end)
				continue
			}
			sb.WriteByte(c)
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String()
}

// writeQuantifier copies the quantifier expr[start:end] with its greediness
// inverted and returns the index after any suffix it consumed.
func writeQuantifier(sb *strings.Builder, expr string, start, end int) int {
	sb.WriteString(expr[start:end])

	if end < len(expr) {
		switch expr[end] {
		case '?':
			return end + 1
		case '+':
			sb.WriteByte('+')
			return end + 1
		}
	}

	sb.WriteByte('?')
	return end
}

// escapeEnd returns the index just after the escape sequence starting at i.
func escapeEnd(expr string, i int) int {
	if i+1 >= len(expr) {
		return len(expr)
	}

	if strings.IndexByte(braceEscapes, expr[i+1]) >= 0 && i+2 < len(expr) && expr[i+2] == '{' {
		if j := strings.IndexByte(expr[i+2:], '}'); j >= 0 {
			return i + 2 + j + 1
		}
		return len(expr)
	}

	return i + 2
}

// classEnd returns the index just after the character class opened at i.
// A ] straight after [ or [^ is a literal, as are escaped characters; POSIX
// classes such as [:alpha:] are skipped whole.
func classEnd(expr string, i int) int {
	j := i + 1
	if j < len(expr) && expr[j] == '^' {
		j++
	}
	if j < len(expr) && expr[j] == ']' {
		j++
	}

	for j < len(expr) {
		switch {
		case expr[j] == '\\':
			j += 2
		case expr[j] == '[' && j+1 < len(expr) && expr[j+1] == ':':
			if k := strings.Index(expr[j+2:], ":]"); k >= 0 {
				j += 2 + k + 2
			} else {
				j++
			}
		case expr[j] == ']':
			return j + 1
		default:
			j++
		}
	}

	return len(expr)
}

// braceQuantifierEnd reports whether a {n}, {n,} or {n,m} quantifier starts
// at i, and returns the index after its closing brace.
func braceQuantifierEnd(expr string, i int) (int, bool) {
	j := i + 1
	digits := func() int {
		start := j
		for j < len(expr) && expr[j] >= '0' && expr[j] <= '9' {
			j++
		}
		return j - start
	}

	if digits() == 0 {
		return 0, false
	}
	if j < len(expr) && expr[j] == ',' {
		j++
		digits()
	}
	if j < len(expr) && expr[j] == '}' {
		return j + 1, true
	}

	return 0, false
}
