package norgfmt

import "strings"

// Render walks the tree bottom-up and produces the canonical text for root.
// Children are fully rendered before their parent's formatter runs; the first
// error aborts the whole render with no partial output.
//
// The walk recurses, so its stack depth equals the nesting depth of the
// syntax tree. Pathologically nested documents are bounded by the goroutine
// stack rather than by this package.
func Render(root *SyntaxNode, source []byte, cfg Config) (string, error) {
	r := renderer{source: source, cfg: cfg}
	return r.render(root)
}

type renderer struct {
	source []byte
	cfg    Config
}

func (r *renderer) render(n *SyntaxNode) (string, error) {
	children := make([]RenderedNode, len(n.Children))
	for i, child := range n.Children {
		content, err := r.render(child)
		if err != nil {
			return "", err
		}
		children[i] = RenderedNode{Kind: child.Kind, Content: content}
	}

	switch {
	case n.Kind == KindHeading:
		return renderHeading(children, r.cfg)
	case n.Kind == KindHeadingStars:
		text, err := n.Text(r.source)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(text), nil
	case n.Kind == KindTitle:
		return renderTitle(children), nil
	case n.Kind == KindUnorderedListItem || n.Kind == KindOrderedListItem || n.Kind == KindQuoteListItem:
		return renderNestable(n.Kind, children)
	case n.Kind == KindDefinition || n.Kind == KindTable || n.Kind == KindFootnote:
		return renderRangeable(n.Kind, children)
	case n.Kind == KindRangedTag:
		return renderRangedTag(children)
	case n.Kind == KindCarryoverTag:
		return renderCarryoverTag(children)
	case n.Kind == KindInfirmTag:
		return renderInfirmTag(children)
	case n.Kind.isAttachedModifier():
		return renderMarkup(n.Kind, children)
	case n.Kind == KindEscapeSequence:
		return r.renderEscape(n)
	case n.Kind == KindTargetURL:
		return r.renderURI(n)
	case n.Kind == KindDescription:
		return r.renderAnchor(n)
	case n.Kind.isLinkTarget():
		return renderLinkTarget(n.Kind, children)
	case n.Kind == KindLink:
		return renderLink(children)
	case n.Kind == KindParagraph:
		return reflow(joined(children, 0, len(children)), r.cfg.LineLength), nil
	case len(n.Children) == 0:
		// Leaves reproduce their exact source text.
		return n.Text(r.source)
	default:
		// Structural wrappers carry no formatting semantics of their own.
		return joined(children, 0, len(children)), nil
	}
}
