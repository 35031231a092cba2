package str

import "unicode/utf8"

// Substr returns the code points from offset to the end. A negative offset
// counts back from the end and stops at the start; an offset past the end
// yields the empty string.
func (s Str) Substr(offset int) Str {
	return s.substr(offset, 0, false)
}

// SubstrLen returns at most length code points starting at offset. A negative
// length stops that many code points before the end.
func (s Str) SubstrLen(offset, length int) Str {
	return s.substr(offset, length, true)
}

func (s Str) substr(offset, length int, bounded bool) Str {
	n := utf8.RuneCountInString(s.s)

	if offset < 0 {
		offset = max(0, n+offset)
	}
	if offset > n {
		return Str{}
	}

	end := n
	if bounded {
		switch {
		case length < 0:
			end = n + length
		case length < n-offset:
			end = offset + length
		}
	}
	if end <= offset {
		return Str{}
	}

	start := byteOffset(s.s, offset)
	stop := start + byteOffset(s.s[start:], end-offset)

	return Str{s: s.s[start:stop]}
}

// byteOffset returns the byte index of the code point at index i, or len(s)
// if s is shorter.
func byteOffset(s string, i int) int {
	count := 0
	for pos := range s {
		if count == i {
			return pos
		}
		count++
	}

	return len(s)
}
