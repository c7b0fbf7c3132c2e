package norgfmt

import "strings"

// renderMarkup decides between the compact (*text*) and free-form (*|text|*)
// delimiter pair for an emphasis-like span. The span must switch to free-form
// exactly when it contains an escaped punctuation character; a free-form span
// that no longer needs the wrappers decays back to the compact pair. The
// decision is a pure function of the span's direct children, so sibling spans
// render independently.
func renderMarkup(kind Kind, children []RenderedNode) (string, error) {
	if len(children) < 1 {
		return "", missingChild(kind, "opening modifier")
	}
	if len(children) < 2 {
		return "", missingChild(kind, "closing modifier")
	}
	delim := children[0].Content

	mustBeFreeForm := false
	for _, child := range children {
		if child.Kind == KindEscapeSequence && isASCIIPunct(lastRune(child.Content)) {
			mustBeFreeForm = true
			break
		}
	}
	isFreeForm := children[1].Kind == KindFreeFormOpen

	switch {
	case mustBeFreeForm && !isFreeForm:
		body := joined(children, 1, len(children)-1)
		return delim + "|" + unescapePunct(body) + "|" + delim, nil
	case !mustBeFreeForm && isFreeForm:
		return delim + joined(children, 2, len(children)-2) + delim, nil
	default:
		return delim + joined(children, 1, len(children)), nil
	}
}

// renderEscape normalizes a two-character escape sequence. The backslash is
// load-bearing only when the escaped character is ASCII punctuation;
// otherwise it is dropped and the character survives on its own.
func (r *renderer) renderEscape(n *SyntaxNode) (string, error) {
	text, err := n.Text(r.source)
	if err != nil {
		return "", err
	}
	escaped := lastRune(text)
	if escaped < 0 {
		return "", missingChild(KindEscapeSequence, "escaped character")
	}
	if isASCIIPunct(escaped) {
		return text, nil
	}
	return string(escaped), nil
}

// renderURI strips every whitespace character from a URL target.
func (r *renderer) renderURI(n *SyntaxNode) (string, error) {
	text, err := n.Text(r.source)
	if err != nil {
		return "", err
	}
	return stripWhitespace(text), nil
}

// renderAnchor collapses whitespace in anchor and description text.
func (r *renderer) renderAnchor(n *SyntaxNode) (string, error) {
	text, err := n.Text(r.source)
	if err != nil {
		return "", err
	}
	return collapseWhitespace(strings.TrimSpace(text)), nil
}

// renderLinkTarget formats a typed link target as "<marker> <title>" with
// internal whitespace runs collapsed. The marker conveys the target kind:
// repeated stars for headings, ^ $ # ? = / @ for the rest.
func renderLinkTarget(kind Kind, children []RenderedNode) (string, error) {
	if len(children) < 1 {
		return "", missingChild(kind, "scope marker")
	}
	if len(children) < 2 {
		return "", missingChild(kind, "title")
	}
	out := children[0].Content + " " + collapseWhitespace(children[1].Content)
	return strings.TrimSpace(out), nil
}

// renderLink joins a link's rendered targets inside braces. Multiple targets
// are separated by " : ".
func renderLink(children []RenderedNode) (string, error) {
	var targets []string
	for _, child := range children {
		if child.Kind.isLinkTarget() {
			targets = append(targets, child.Content)
		}
	}
	if len(targets) == 0 {
		return "", missingChild(KindLink, "target")
	}
	return "{" + strings.Join(targets, " : ") + "}", nil
}
