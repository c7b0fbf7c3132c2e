package norgfmt

import "strings"

// renderHeading emits "<stars> <title>" and re-indents the heading's nested
// content by len(stars)+1 spaces. Nested headings stay flush with the left
// margin unless IndentHeadings is set: heading depth is conveyed by star
// count, so indentation is a cosmetic layer for non-heading descendants only.
func renderHeading(children []RenderedNode, cfg Config) (string, error) {
	if len(children) < 1 {
		return "", missingChild(KindHeading, "stars")
	}
	if len(children) < 2 {
		return "", missingChild(KindHeading, "title")
	}
	stars := children[0].Content

	var b strings.Builder
	b.WriteString(stars)
	b.WriteByte(' ')
	b.WriteString(children[1].Content)
	if cfg.NewlineAfterHeadings {
		b.WriteByte('\n')
	}

	indent := strings.Repeat(" ", len(stars)+1)
	for _, child := range children[2:] {
		if child.Kind == KindHeading && !cfg.IndentHeadings {
			b.WriteString(child.Content)
			continue
		}
		b.WriteString(indentLines(child.Content, indent))
	}
	return b.String(), nil
}

// renderTitle collapses runs of horizontal whitespace in the title. Line
// terminators survive so a title keeps the break that separates it from the
// heading's content.
func renderTitle(children []RenderedNode) string {
	return collapseHorizontal(joined(children, 0, len(children)))
}

// renderNestable formats a list item: prefix, one space, the first body line,
// then every further non-blank line indented under the prefix. Blank lines
// pass through untouched so adjacent lists separated by a blank line stay
// visually disjoint instead of merging under one indent.
func renderNestable(kind Kind, children []RenderedNode) (string, error) {
	if len(children) < 1 {
		return "", missingChild(kind, "prefix")
	}
	prefix := strings.TrimSpace(children[0].Content)
	lines := splitInclusive(joined(children, 1, len(children)))
	if len(lines) == 0 {
		return "", missingChild(kind, "content")
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte(' ')
	b.WriteString(lines[0])
	indent := strings.Repeat(" ", len(prefix)+1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			b.WriteString(indent)
		}
		b.WriteString(line)
	}
	return b.String(), nil
}

// renderRangeable formats a definition, table, or footnote: opening token,
// one space, the trimmed title, then the body indented under the opening
// token, and the closing token when the modifier is ranged.
func renderRangeable(kind Kind, children []RenderedNode) (string, error) {
	if len(children) < 1 {
		return "", missingChild(kind, "opening modifier")
	}
	if len(children) < 2 {
		return "", missingChild(kind, "title")
	}
	prefix := children[0].Content
	title := strings.TrimSpace(children[1].Content)

	end := len(children)
	closing := ""
	if last := children[len(children)-1]; last.Kind.isRangeClose() {
		closing = last.Content
		end = len(children) - 1
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte(' ')
	b.WriteString(title)
	indent := strings.Repeat(" ", len(prefix)+1)
	for _, line := range splitInclusive(joined(children, 2, end)) {
		if strings.TrimSpace(line) != "" {
			b.WriteString(indent)
		}
		b.WriteString(line)
	}
	b.WriteString(closing)
	return b.String(), nil
}

// renderRangedTag formats "@name params\n<verbatim body>@end" and its |name
// counterpart. Parameters are the leading identifier children after the name;
// everything between them and the terminator is the body.
func renderRangedTag(children []RenderedNode) (string, error) {
	if len(children) < 2 {
		return "", missingChild(KindRangedTag, "name")
	}
	if len(children) < 3 {
		return "", missingChild(KindRangedTag, "terminator")
	}
	head := strings.TrimRight(joined(children, 0, 2), " ")

	var params []string
	i := 2
	for i < len(children)-1 && children[i].Kind == KindTagParam {
		params = append(params, children[i].Content)
		i++
	}
	body := joined(children, i, len(children)-1)
	terminator := children[len(children)-1].Content

	return head + " " + strings.TrimSpace(strings.Join(params, " ")) + "\n" + body + terminator, nil
}

// renderCarryoverTag formats "+name params\n" or "#name params\n"; the object
// the tag applies to follows as a sibling.
func renderCarryoverTag(children []RenderedNode) (string, error) {
	if len(children) < 2 {
		return "", missingChild(KindCarryoverTag, "name")
	}
	head := joined(children, 0, 2)
	params := joinContents(children[2:])
	return head + " " + strings.TrimSpace(params) + "\n", nil
}

// renderInfirmTag formats ".name params". No body, no trailing newline; the
// surrounding line breaks are the parent's.
func renderInfirmTag(children []RenderedNode) (string, error) {
	if len(children) < 2 {
		return "", missingChild(KindInfirmTag, "name")
	}
	head := joined(children, 0, 2)
	params := joinContents(children[2:])
	return head + " " + strings.TrimSpace(params), nil
}

func joinContents(children []RenderedNode) string {
	parts := make([]string, len(children))
	for i, child := range children {
		parts[i] = child.Content
	}
	return strings.Join(parts, " ")
}
