package norgfmt

import "testing"

func TestEscapeSequences(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{`a\tb`, "atb"},
		{`\\`, `\\`},
		{`\*`, `\*`},
		{`\/`, `\/`},
	}
	for _, tc := range cases {
		if got := formatOrFatal(t, tc.source); got != tc.want {
			t.Fatalf("format %q\nwant: %q\n got: %q", tc.source, tc.want, got)
		}
	}
}

func TestMarkupDelimiterDecay(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"*|test|*", "*test*"},
		{`*hello\* world*`, "*|hello* world|*"},
		{`*\test*`, "*test*"},
		{`*\hello\* world*`, "*|hello* world|*"},
		{"/italic text/", "/italic text/"},
		{"/|plain|/", "/plain/"},
		{"plain *bold* trailing", "plain *bold* trailing"},
	}
	for _, tc := range cases {
		if got := formatOrFatal(t, tc.source); got != tc.want {
			t.Fatalf("format %q\nwant: %q\n got: %q", tc.source, tc.want, got)
		}
	}
}

func TestUnbalancedMarkupIsText(t *testing.T) {
	got := formatOrFatal(t, "a lone *star here")
	want := "a lone *star here"
	if got != want {
		t.Fatalf("unbalanced markup\nwant: %q\n got: %q", want, got)
	}
}

func TestLinks(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"{*    long link}", "{* long link}"},
		{"{*  long link with    space }", "{* long link with space}"},
		{"[ unnecessary space ]", "[unnecessary space]"},
		{"[ unnecessary     extra\tspace ]", "[unnecessary extra space]"},
		{"{#   link with space}[ and a description]", "{# link with space}[and a description]"},
		{"{/ file .txt}[ and a description]", "{/ file .txt}[and a description]"},
		{"{@ Tue    5th May}[]", "{@ Tue 5th May}[]"},
		{"{https://there should be no space here.com}", "{https://thereshouldbenospacehere.com}"},
	}
	for _, tc := range cases {
		if got := formatOrFatal(t, tc.source); got != tc.want {
			t.Fatalf("format %q\nwant: %q\n got: %q", tc.source, tc.want, got)
		}
	}
}

func TestInlineLinkTarget(t *testing.T) {
	got := formatOrFatal(t, "see < a   target > here")
	want := "see <a target> here"
	if got != want {
		t.Fatalf("inline link target\nwant: %q\n got: %q", want, got)
	}
}

func TestVerbatimBodyStaysRaw(t *testing.T) {
	got := formatOrFatal(t, "run `fn(*ptr)` now")
	want := "run `fn(*ptr)` now"
	if got != want {
		t.Fatalf("verbatim span\nwant: %q\n got: %q", want, got)
	}
}
