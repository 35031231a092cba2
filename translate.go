package str

import (
	"cmp"
	"slices"
	"strings"
)

// Translate replaces every occurrence of the keys of pairs with the
// corresponding value, scanning left to right. Where several keys match at
// the same position the longest wins, and replaced text is never scanned
// again. Empty keys are ignored.
func (s Str) Translate(pairs map[string]string) Str {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 || s.s == "" {
		return s
	}

	// strings.Replacer prefers earlier pairs at the same position.
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, k, pairs[k])
	}

	return Str{s: strings.NewReplacer(oldnew...).Replace(s.s)}
}
