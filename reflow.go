package norgfmt

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// stickyOpeners are the characters that glue a word to whatever follows it.
// Only the link opener is sticky: a word starting with "{" must stay on the
// same line as the rest of its target. Anchors and inline link targets wrap
// like ordinary words.
const stickyOpeners = "{"

// reflow normalizes whitespace in content and greedily packs words into lines
// no wider than lineLength. The fit test is strictly "<", not "<=", to
// reserve room for the space inserted on the next append. A single word wider
// than the limit still gets a line of its own.
func reflow(content string, lineLength int) string {
	words := coalesceSticky(strings.Fields(content))
	if len(words) == 0 {
		return ""
	}
	lines := []string{""}
	for _, word := range words {
		current := &lines[len(lines)-1]
		if ansi.PrintableRuneWidth(*current)+ansi.PrintableRuneWidth(word) < lineLength {
			*current += " " + word
		} else {
			*current = strings.TrimSpace(*current)
			lines = append(lines, word)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// coalesceSticky merges every word that starts with a sticky opener with the
// words that follow it. The merge cascades: once a word opens a bracket, the
// rest of the sequence sticks to it.
func coalesceSticky(words []string) []string {
	merged := make([]string, 0, len(words))
	for _, word := range words {
		if n := len(merged); n > 0 && strings.IndexByte(stickyOpeners, merged[n-1][0]) >= 0 {
			merged[n-1] += " " + word
			continue
		}
		merged = append(merged, word)
	}
	return merged
}
