package kofi

import "testing"

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc  string
		in    string
		extra string
	}{
		{"plain", "hello world", ""},
		{"controls", "a\tb\nc\rd\be\ff\x00g", ""},
		{"backslash", `a\b`, ""},
		{"quote extra", `say "hi"`, `"`},
		{"control below space", "a\x01b\x1fc", ""},
	} {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			got := unescape(escape(tc.in, tc.extra))
			if got != tc.in {
				t.Errorf("round trip mismatch: got %q, want %q", got, tc.in)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc  string
		in    string
		extra string
		want  string
	}{
		{"tab", "\t", "", `\t`},
		{"newline", "\n", "", `\n`},
		{"backslash", `\`, "", `\\`},
		{"control", "\x01", "", `\u0001`},
		{"extra quote", `"`, `"`, `\"`},
		{"plain passthrough", "abc", "", "abc"},
	} {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := escape(tc.in, tc.extra); got != tc.want {
				t.Errorf("escape(%q, %q) = %q, want %q", tc.in, tc.extra, got, tc.want)
			}
		})
	}
}

func TestUnescapeUnknownEscapeDropsBackslash(t *testing.T) {
	t.Parallel()
	// Unknown \X sequences unescape to the bare letter X (not \X), which
	// is what keeps unescape(escape(s, extra)) == s for arbitrary extra.
	got := unescape(`\x`)
	if got != `x` {
		t.Errorf("unescape(%q) = %q, want %q", `\x`, got, `x`)
	}
}

func TestIsEscaped(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc     string
		s        string
		i        int
		boundary int
		want     bool
	}{
		{"no backslash", `abc`, 2, -1, false},
		{"one backslash", `a\"`, 2, -1, true},
		{"two backslashes", `a\\"`, 3, -1, false},
		{"three backslashes", `a\\\"`, 4, -1, true},
	} {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := isEscaped(tc.s, tc.i, tc.boundary); got != tc.want {
				t.Errorf("isEscaped(%q, %d, %d) = %v, want %v", tc.s, tc.i, tc.boundary, got, tc.want)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc       string
		s          string
		start, end int
		want       string
	}{
		{"no whitespace", "abc", 0, 3, "abc"},
		{"surrounding", "  abc  ", 0, 7, "abc"},
		{"all whitespace", "   ", 0, 3, ""},
		{"empty range", "abc", 1, 1, ""},
	} {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := trim(tc.s, tc.start, tc.end); got != tc.want {
				t.Errorf("trim(%q, %d, %d) = %q, want %q", tc.s, tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestMatchesCI(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc string
		s    string
		i    int
		lit  string
		want bool
	}{
		{"exact", "NULL", 0, "NULL", true},
		{"lower", "null", 0, "NULL", true},
		{"mixed", "NuLl", 0, "NULL", true},
		{"too short", "nu", 0, "NULL", false},
		{"mismatch", "nope", 0, "NULL", false},
		{"offset", "xxTRUE", 2, "TRUE", true},
	} {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := matchesCI(tc.s, tc.i, tc.lit); got != tc.want {
				t.Errorf("matchesCI(%q, %d, %q) = %v, want %v", tc.s, tc.i, tc.lit, got, tc.want)
			}
		})
	}
}
