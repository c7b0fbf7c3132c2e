package norgfmt

import (
	"strings"
	"unicode"
)

// joined concatenates the rendered content of children[from:to). Out-of-range
// bounds are clamped so callers can use len-relative slices freely.
func joined(children []RenderedNode, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(children) {
		to = len(children)
	}
	if from >= to {
		return ""
	}
	var b strings.Builder
	for _, child := range children[from:to] {
		b.WriteString(child.Content)
	}
	return b.String()
}

// splitInclusive splits content after every line terminator byte, keeping the
// terminator attached to the preceding piece.
func splitInclusive(content string) []string {
	if content == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' || content[i] == '\r' {
			lines = append(lines, content[start:i+1])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// indentLines splits content on runs of line terminators and prefixes every
// non-empty segment with indent, preserving each segment's terminator run. A
// final segment without a terminator gets a single newline. Empty segments
// are dropped together with their terminators.
func indentLines(content, indent string) string {
	var b strings.Builder
	i := 0
	for i < len(content) {
		j := i
		for j < len(content) && content[j] != '\n' && content[j] != '\r' {
			j++
		}
		segment := content[i:j]
		k := j
		for k < len(content) && (content[k] == '\n' || content[k] == '\r') {
			k++
		}
		terminator := content[j:k]
		if segment != "" {
			b.WriteString(indent)
			b.WriteString(segment)
			if terminator == "" {
				terminator = "\n"
			}
			b.WriteString(terminator)
		}
		i = k
	}
	return b.String()
}

// collapseWhitespace replaces every run of whitespace, newlines included,
// with a single space.
func collapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inRun := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// collapseHorizontal replaces runs of horizontal whitespace (space, tab,
// vertical tab) with a single space. Line terminators pass through so block
// layout survives title normalization.
func collapseHorizontal(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inRun := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' || c == '\t' || c == '\v' {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteByte(c)
	}
	return b.String()
}

// stripWhitespace removes every whitespace rune.
func stripWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isASCIIPunct reports whether r is ASCII punctuation: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

// lastRune returns the final rune of text, or -1 for empty input.
func lastRune(text string) rune {
	var last rune = -1
	for _, r := range text {
		last = r
	}
	return last
}

// unescapePunct strips the backslash from every \<punct> sequence.
func unescapePunct(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) && isASCIIPunct(rune(text[i+1])) {
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}
