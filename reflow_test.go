package norgfmt

import (
	"strings"
	"testing"
)

func TestReflowCollapsesWhitespace(t *testing.T) {
	got := reflow("several\twords   with\n odd  spacing", 80)
	want := "several words with odd spacing"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReflowWrapsAtLineLength(t *testing.T) {
	content := "A large amount of text that will surely surpass the eighty character limit if we try hard enough."
	got := reflow(content, 80)
	want := "A large amount of text that will surely surpass the eighty character limit if\nwe try hard enough."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 80 {
			t.Fatalf("line exceeds limit: %q", line)
		}
	}
}

func TestReflowKeepsOverlongWordIntact(t *testing.T) {
	word := strings.Repeat("x", 120)
	got := reflow("start "+word+" end", 80)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[1] != word {
		t.Fatalf("overlong word must keep its own line, got %q", lines[1])
	}
}

func TestReflowEmptyInput(t *testing.T) {
	if got := reflow("   \n\t ", 80); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestCoalesceStickyMergesLinkOpeners(t *testing.T) {
	cases := []struct {
		words []string
		want  []string
	}{
		{
			[]string{"see", "{*", "long", "link}"},
			[]string{"see", "{* long link}"},
		},
		{
			[]string{"[anchor", "text]", "after"},
			[]string{"[anchor", "text]", "after"},
		},
		{
			[]string{"<target", "text>", "after"},
			[]string{"<target", "text>", "after"},
		},
		{
			[]string{"plain", "words", "only"},
			[]string{"plain", "words", "only"},
		},
	}
	for _, tc := range cases {
		got := coalesceSticky(tc.words)
		if len(got) != len(tc.want) {
			t.Fatalf("coalesce %v: expected %v, got %v", tc.words, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("coalesce %v: expected %v, got %v", tc.words, tc.want, got)
			}
		}
	}
}

func TestReflowAnchorWrapsLikeOrdinaryWords(t *testing.T) {
	content := "see [an anchor] " + strings.TrimSpace(strings.Repeat("word ", 30))
	got := reflow(content, 80)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected the paragraph to wrap, got %q", got)
	}
	for _, line := range lines {
		if len(line) > 80 {
			t.Fatalf("line exceeds limit: %q", line)
		}
	}
}

func TestReflowNeverSplitsLinkFromFollowingWord(t *testing.T) {
	content := "padding padding padding padding padding padding padding {* a link target here} next"
	got := reflow(content, 80)
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "{") && !strings.Contains(line, "}") {
			t.Fatalf("link split across lines: %q", got)
		}
	}
}
