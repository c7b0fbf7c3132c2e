package norgfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Span marks a half-open byte range [Start, End) in the source document.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// SyntaxNode is a node of the concrete syntax tree the renderer consumes.
// Nodes are immutable once the parser returns. A node without children is a
// leaf and renders as its verbatim source text.
type SyntaxNode struct {
	Kind     Kind
	Span     Span
	Children []*SyntaxNode
}

func newLeaf(kind Kind, start, end int) *SyntaxNode {
	return &SyntaxNode{Kind: kind, Span: Span{Start: start, End: end}}
}

// newNode builds a composite node whose span is the hull of its children.
func newNode(kind Kind, children ...*SyntaxNode) *SyntaxNode {
	n := &SyntaxNode{Kind: kind, Children: children}
	if len(children) > 0 {
		n.Span.Start = children[0].Span.Start
		n.Span.End = children[len(children)-1].Span.End
	}
	return n
}

func (n *SyntaxNode) append(children ...*SyntaxNode) {
	n.Children = append(n.Children, children...)
	if len(n.Children) > 0 {
		if n.Span.Start == 0 && n.Span.End == 0 {
			n.Span.Start = n.Children[0].Span.Start
		}
		n.Span.End = n.Children[len(n.Children)-1].Span.End
	}
}

// Text returns the verbatim source text for the node's span.
func (n *SyntaxNode) Text(source []byte) (string, error) {
	if n.Span.Start < 0 || n.Span.End < n.Span.Start || n.Span.End > len(source) {
		return "", fmt.Errorf("%s span [%d,%d) out of range 0..%d: %w",
			n.Kind, n.Span.Start, n.Span.End, len(source), ErrMalformedSpan)
	}
	text := source[n.Span.Start:n.Span.End]
	if !utf8.Valid(text) {
		return "", fmt.Errorf("%s span [%d,%d) is not valid UTF-8: %w",
			n.Kind, n.Span.Start, n.Span.End, ErrMalformedSpan)
	}
	return string(text), nil
}

// RenderedNode is a syntax node reduced to its canonical text. By the time a
// parent formatter sees one, the whole subtree below it is final text.
type RenderedNode struct {
	Kind    Kind
	Content string
}

// Dump writes the tree as an s-expression, one node per line. Debugging aid
// for the --dump-tree flag.
func Dump(n *SyntaxNode, source []byte) string {
	var b strings.Builder
	dumpNode(&b, n, source, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *SyntaxNode, source []byte, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if len(n.Children) == 0 {
		text, err := n.Text(source)
		if err != nil {
			text = err.Error()
		}
		fmt.Fprintf(b, "(%s %q)\n", n.Kind, text)
		return
	}
	fmt.Fprintf(b, "(%s\n", n.Kind)
	for _, child := range n.Children {
		dumpNode(b, child, source, depth+1)
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(")\n")
}
