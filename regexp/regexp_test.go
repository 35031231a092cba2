package regexp

import (
	"errors"
	"testing"
)

func TestCompileEngineSelection(t *testing.T) {
	corePat := "a+"
	coreRe, err := Compile(corePat)
	if err != nil {
		t.Fatalf("compile core: %v", err)
	}
	if coreRe.core == nil || coreRe.pcre != nil {
		t.Fatalf("expected core backend for %q", corePat)
	}

	pcrePat := "(?<=a)b"
	pcreRe, err := Compile(pcrePat)
	if err != nil {
		t.Fatalf("compile pcre: %v", err)
	}
	if pcreRe.pcre == nil || pcreRe.core != nil {
		t.Fatalf("expected regexp2 backend for %q", pcrePat)
	}
}

func TestCompileDelimitedEngineSelection(t *testing.T) {
	tests := []struct {
		pattern string
		pcre    bool
	}{
		{pattern: "/[a-f]/", pcre: false},
		{pattern: "/[a-f]/i", pcre: false},
		{pattern: "/a+/U", pcre: false},
		{pattern: "/(?<=a)b/", pcre: true},
		{pattern: "/a b/x", pcre: true},
		{pattern: "/(a)/n", pcre: true},
		{pattern: `/(?<word>\w+)/`, pcre: false},
		{pattern: `/(?P<word>\w+)/`, pcre: false},
		{pattern: `/(?'word'\w+)/`, pcre: true},
		{pattern: "/foo$/", pcre: true},
		{pattern: "/foo$/m", pcre: false},
		{pattern: "/foo$/D", pcre: false},
		{pattern: `/foo\$/`, pcre: false},
		{pattern: "/[$]/", pcre: false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := CompileDelimited(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if got := re.pcre != nil; got != tt.pcre {
				t.Fatalf("pcre backend for %q: got %v want %v", tt.pattern, got, tt.pcre)
			}
			if re.String() != tt.pattern {
				t.Fatalf("String: got %q want %q", re.String(), tt.pattern)
			}
		})
	}
}

func TestCoreMatchAndFind(t *testing.T) {
	re := MustCompile("a+")

	if !re.MatchString("caaab") {
		t.Fatalf("MatchString core: expected true")
	}

	sm := re.FindStringSubmatch("caaab")
	if len(sm) != 1 || sm[0] != "aaa" {
		t.Fatalf("FindStringSubmatch core: got %q", sm)
	}

	if idx := re.FindStringSubmatchIndex("caaab"); idx[0] != 1 || idx[1] != 4 {
		t.Fatalf("FindStringSubmatchIndex core: got %v", idx)
	}

	if re.FindStringSubmatchIndex("xyz") != nil {
		t.Fatalf("FindStringSubmatchIndex core: expected nil for no match")
	}
}

func TestPCREBackreference(t *testing.T) {
	re := MustCompile(`(\w+)\s+\1`)

	if re.core != nil {
		t.Fatalf("expected PCRE backend for backreference pattern")
	}

	if !re.MatchString("go go") {
		t.Fatalf("MatchString pcre backref: expected true")
	}

	sm := re.FindStringSubmatch("go go")
	if len(sm) != 2 || sm[0] != "go go" || sm[1] != "go" {
		t.Fatalf("FindStringSubmatch pcre backref: got %v", sm)
	}

	idxs := re.FindStringSubmatchIndex("go go")
	expect := []int{0, 5, 0, 2}
	for i, v := range expect {
		if idxs[i] != v {
			t.Fatalf("FindStringSubmatchIndex pcre backref: got %v want %v", idxs, expect)
		}
	}
}

func TestPCRELookbehindRuneOffsets(t *testing.T) {
	// Emoji is 4 bytes; ensures rune-to-byte conversion is correct.
	re := MustCompile("(?<=🙂)(a)")

	idxs := re.FindStringSubmatchIndex("🙂a🙂a")
	expect := []int{4, 5, 4, 5}
	if len(idxs) != len(expect) {
		t.Fatalf("FindStringSubmatchIndex pcre lookbehind: got %v want %v", idxs, expect)
	}
	for i := range expect {
		if idxs[i] != expect[i] {
			t.Fatalf("FindStringSubmatchIndex pcre lookbehind[%d]: got %v want %v", i, idxs, expect)
		}
	}
}

func TestPCRENonParticipatingGroup(t *testing.T) {
	re := MustCompile(`(?<=x)(a)|(b)`)

	idxs := re.FindStringSubmatchIndex("b")
	expect := []int{0, 1, -1, -1, 0, 1}
	if len(idxs) != len(expect) {
		t.Fatalf("FindStringSubmatchIndex: got %v want %v", idxs, expect)
	}
	for i := range expect {
		if idxs[i] != expect[i] {
			t.Fatalf("FindStringSubmatchIndex[%d]: got %v want %v", i, idxs, expect)
		}
	}
}

func TestSubexpNames(t *testing.T) {
	core := MustCompileDelimited(`/(?P<year>\d{4})-(\d{2})/`)
	names := core.SubexpNames()
	if len(names) != 3 || names[1] != "year" || names[2] != "" {
		t.Fatalf("SubexpNames core: got %q", names)
	}
	if core.NumSubexp() != 2 {
		t.Fatalf("NumSubexp core: got %d", core.NumSubexp())
	}

	pcre := MustCompileDelimited(`/(?'year'\d{4})-(?'month'\d{2})/`)
	names = pcre.SubexpNames()
	if len(names) != 3 || names[0] != "" || names[1] != "year" || names[2] != "month" {
		t.Fatalf("SubexpNames pcre: got %q", names)
	}
	if pcre.NumSubexp() != 2 {
		t.Fatalf("NumSubexp pcre: got %d", pcre.NumSubexp())
	}
}

func TestAngleNamedGroupOrder(t *testing.T) {
	re := MustCompileDelimited("/(?<n>a)(b)/")

	sm := re.FindStringSubmatch("ab")
	if len(sm) != 3 || sm[0] != "ab" || sm[1] != "a" || sm[2] != "b" {
		t.Fatalf("FindStringSubmatch: got %q", sm)
	}

	names := re.SubexpNames()
	if len(names) != 3 || names[0] != "" || names[1] != "n" || names[2] != "" {
		t.Fatalf("SubexpNames: got %q", names)
	}
}

func TestDelimitedModifiers(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		subject string
		want    bool
	}{
		{name: "caseSensitive", pattern: "/[a-f]/", subject: "FOO", want: false},
		{name: "caseInsensitive", pattern: "/[a-f]/i", subject: "FOO", want: true},
		{name: "singleLineDollar", pattern: "/^b$/", subject: "a\nb\nc", want: false},
		{name: "multiLine", pattern: "/^b$/m", subject: "a\nb\nc", want: true},
		{name: "dollarBeforeFinalNewline", pattern: "/foo$/", subject: "foo\n", want: true},
		{name: "dollarNotBeforeInnerNewline", pattern: "/foo$/", subject: "foo\n\n", want: false},
		{name: "dollarEndOnly", pattern: "/foo$/D", subject: "foo\n", want: false},
		{name: "dollarEndOnlyAtEnd", pattern: "/foo$/D", subject: "foo", want: true},
		{name: "dollarEndOnlyLookbehind", pattern: "/(?<=f)oo$/D", subject: "foo\n", want: false},
		{name: "dollarLookbehind", pattern: "/(?<=f)oo$/", subject: "foo\n", want: true},
		{name: "dollarEndOnlyIgnoredInMultiLine", pattern: "/(?<=f)oo$/mD", subject: "foo\nbar", want: true},
		{name: "dotNoNewline", pattern: "/a.b/", subject: "a\nb", want: false},
		{name: "dotAll", pattern: "/a.b/s", subject: "a\nb", want: true},
		{name: "extended", pattern: "/ f o o  # comment\n/x", subject: "foo", want: true},
		{name: "anchoredMiss", pattern: "/oo/A", subject: "foo", want: false},
		{name: "anchoredHit", pattern: "/fo/A", subject: "foo", want: true},
		{name: "anchoredMultiLine", pattern: "/b/Am", subject: "a\nb", want: false},
		{name: "anchoredExtended", pattern: "/f # only f\n/Ax", subject: "foo", want: true},
		{name: "utf8", pattern: "/^.$/u", subject: "Ç", want: true},
		{name: "bracketDelimiters", pattern: "{f(o)o}", subject: "foo", want: true},
		{name: "hashDelimiters", pattern: "#^foo$#", subject: "foo", want: true},
		{name: "escapedDelimiter", pattern: `/a\/b/`, subject: "a/b", want: true},
		{name: "leadingWhitespace", pattern: "  /foo/", subject: "foo", want: true},
		{name: "ignoredModifiers", pattern: "/foo/S X", subject: "foo", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := CompileDelimited(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if got := re.MatchString(tt.subject); got != tt.want {
				t.Fatalf("MatchString(%q) with %q: got %v want %v", tt.subject, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestUngreedy(t *testing.T) {
	re := MustCompileDelimited("/a+/U")

	sm := re.FindStringSubmatch("aaa")
	if len(sm) != 1 || sm[0] != "a" {
		t.Fatalf("FindStringSubmatch ungreedy: got %q", sm)
	}
}

func TestUngreedyOnPCRE(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		want    string
	}{
		{pattern: "/(?<=x)a+/U", subject: "xaaa", want: "a"},
		{pattern: "/(?<=x)a+?/U", subject: "xaaa", want: "aaa"},
		{pattern: "/(?<=x)a{1,3}/U", subject: "xaaa", want: "a"},
		{pattern: "/a+$/U", subject: "baaa\n", want: "aaa"},
		{pattern: "/(a)\\1+/U", subject: "aaaa", want: "aa"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := CompileDelimited(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if re.pcre == nil {
				t.Fatalf("expected regexp2 backend for %q", tt.pattern)
			}
			sm := re.FindStringSubmatch(tt.subject)
			if len(sm) == 0 || sm[0] != tt.want {
				t.Fatalf("FindStringSubmatch(%q) with %q: got %q want %q", tt.subject, tt.pattern, sm, tt.want)
			}
		})
	}
}

func TestCompileDelimitedErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{name: "empty", pattern: "", want: ErrEmptyPattern},
		{name: "blank", pattern: " \n ", want: ErrEmptyPattern},
		{name: "alphanumeric", pattern: "abc", want: ErrInvalidDelimiter},
		{name: "backslash", pattern: `\abc\`, want: ErrInvalidDelimiter},
		{name: "nul", pattern: "\x00abc\x00", want: ErrInvalidDelimiter},
		{name: "noEnd", pattern: "/abc", want: ErrMissingDelimiter},
		{name: "escapedEnd", pattern: `/abc\/`, want: ErrMissingDelimiter},
		{name: "unbalancedBracket", pattern: "(a(b)", want: ErrMissingDelimiter},
		{name: "unknownModifier", pattern: "/abc/z", want: ErrUnknownModifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileDelimited(tt.pattern)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CompileDelimited(%q): got %v want %v", tt.pattern, err, tt.want)
			}
		})
	}
}

func TestCompileDelimitedEngineErrors(t *testing.T) {
	for _, pattern := range []string{"/[a-f/", "/(?<=a[)b/"} {
		if _, err := CompileDelimited(pattern); err == nil {
			t.Fatalf("CompileDelimited(%q): expected error", pattern)
		}
	}
}

func TestMustCompileDelimitedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from MustCompileDelimited")
		}
	}()

	_ = MustCompileDelimited("/[/")
}
