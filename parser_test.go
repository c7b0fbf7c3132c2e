package norgfmt

import (
	"strings"
	"testing"
)

func TestParseHeadingShape(t *testing.T) {
	src := []byte("* Heading\ntext below")
	doc := Parse(src)
	if doc.Kind != KindDocument {
		t.Fatalf("expected document root, got %s", doc.Kind)
	}
	if len(doc.Children) != 1 {
		t.Fatalf("expected one top-level block, got %d", len(doc.Children))
	}
	heading := doc.Children[0]
	if heading.Kind != KindHeading {
		t.Fatalf("expected heading, got %s", heading.Kind)
	}
	if len(heading.Children) < 3 {
		t.Fatalf("expected stars, title, and body, got %d children", len(heading.Children))
	}
	if heading.Children[0].Kind != KindHeadingStars {
		t.Fatalf("expected heading_stars first, got %s", heading.Children[0].Kind)
	}
	if heading.Children[1].Kind != KindTitle {
		t.Fatalf("expected title second, got %s", heading.Children[1].Kind)
	}
	if heading.Children[2].Kind != KindParagraph {
		t.Fatalf("expected paragraph body, got %s", heading.Children[2].Kind)
	}
}

func TestParseSiblingHeadings(t *testing.T) {
	doc := Parse([]byte("* One\n* Two\n** Nested under two"))
	if len(doc.Children) != 2 {
		t.Fatalf("expected two sibling headings, got %d", len(doc.Children))
	}
	second := doc.Children[1]
	var nested int
	for _, child := range second.Children {
		if child.Kind == KindHeading {
			nested++
		}
	}
	if nested != 1 {
		t.Fatalf("expected one nested heading under the second, got %d", nested)
	}
}

func TestParseListBreaksBetweenSiblings(t *testing.T) {
	doc := Parse([]byte("- one\n- two"))
	if len(doc.Children) != 2 {
		t.Fatalf("expected two list items, got %d", len(doc.Children))
	}
	first := doc.Children[0]
	last := first.Children[len(first.Children)-1]
	if last.Kind != KindLineBreak {
		t.Fatalf("expected the first item to own the separating break, got %s", last.Kind)
	}
}

func TestParseNeverFails(t *testing.T) {
	// Constructs with no valid enclosing context read as paragraph text.
	sources := []string{
		"$$",
		"@end",
		"|end",
		"*nospacemeansnotaheading",
		"}stray{",
	}
	for _, src := range sources {
		doc := Parse([]byte(src))
		if len(doc.Children) == 0 {
			t.Fatalf("parse %q: expected paragraph fallback, got empty document", src)
		}
	}
}

func TestParseRangedTagShape(t *testing.T) {
	doc := Parse([]byte("@code lua\nprint(1)\n@end"))
	if len(doc.Children) != 1 || doc.Children[0].Kind != KindRangedTag {
		t.Fatalf("expected a single ranged tag, got %v", doc.Children)
	}
	tag := doc.Children[0]
	kinds := make([]Kind, len(tag.Children))
	for i, child := range tag.Children {
		kinds[i] = child.Kind
	}
	want := []Kind{KindTagOpen, KindTagName, KindTagParam, KindTagBody, KindTagEnd}
	if len(kinds) != len(want) {
		t.Fatalf("expected children %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("child %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
	body, err := tag.Children[3].Text([]byte("@code lua\nprint(1)\n@end"))
	if err != nil {
		t.Fatalf("tag body text: %v", err)
	}
	if body != "print(1)\n" {
		t.Fatalf("expected verbatim body, got %q", body)
	}
}

func TestDump(t *testing.T) {
	src := []byte("* Hi")
	out := Dump(Parse(src), src)
	for _, fragment := range []string{"(document", "(heading", `(heading_stars "*")`, "(title"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("dump missing %q:\n%s", fragment, out)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := KindHeading.String(); got != "heading" {
		t.Fatalf("expected %q, got %q", "heading", got)
	}
	if got := Kind(-1).String(); got != "unknown" {
		t.Fatalf("expected %q for out-of-range kind, got %q", "unknown", got)
	}
}
