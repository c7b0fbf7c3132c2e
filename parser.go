package norgfmt

// The parser is line-oriented: every line is classified by its leading
// detached-modifier run, then block constructs consume lines and delegate to
// the inline scanner for paragraph-like content. Sibling blocks are
// interleaved with explicit line-break leaves so the verbatim-leaf rule
// reproduces document layout; the terminator run that closes a block is owned
// by the container the next block lands in.

type lineClass int

const (
	lineEOF lineClass = iota
	lineBlank
	lineHeading
	lineListItem
	lineRangeOpen
	lineRangeClose
	lineRangedTag
	lineCarryoverTag
	lineInfirmTag
	lineText
)

type lineInfo struct {
	class       lineClass
	start       int // line start
	textStart   int // first byte after leading horizontal whitespace
	end         int // before the line terminator
	termEnd     int // after the line terminator
	marker      byte
	level       int // length of the marker run
	afterMarker int // first byte after the marker run
}

type parser struct {
	src []byte
	pos int // start of the current line

	// pending line-terminator span awaiting attachment as a break leaf
	pendStart int
	pendEnd   int
}

// Parse builds the concrete syntax tree for a Norg document. The parser
// recovers from anything it does not recognize by reading it as paragraph
// text, so it never fails; structural errors surface during rendering.
func Parse(src []byte) *SyntaxNode {
	p := &parser{src: src, pendStart: -1}
	doc := &SyntaxNode{Kind: KindDocument, Span: Span{Start: 0, End: len(src)}}
	p.parseBlocks(doc, nil)
	p.flushBreak(doc)
	return doc
}

func (p *parser) peekLine() lineInfo {
	li := lineInfo{start: p.pos, textStart: p.pos, end: p.pos, termEnd: p.pos}
	if p.pos >= len(p.src) {
		li.class = lineEOF
		return li
	}
	end := p.pos
	for end < len(p.src) && p.src[end] != '\n' && p.src[end] != '\r' {
		end++
	}
	term := end
	if term < len(p.src) {
		if p.src[term] == '\r' && term+1 < len(p.src) && p.src[term+1] == '\n' {
			term += 2
		} else {
			term++
		}
	}
	li.end, li.termEnd = end, term
	ts := skipHorizontal(p.src, p.pos, end)
	li.textStart = ts
	if ts == end {
		li.class = lineBlank
		return li
	}

	c := p.src[ts]
	run := ts
	for run < end && p.src[run] == c {
		run++
	}
	li.marker, li.level, li.afterMarker = c, run-ts, run
	wsAfter := run < end && isHorizontal(p.src[run])
	switch c {
	case '*':
		if wsAfter {
			li.class = lineHeading
			return li
		}
	case '-', '~', '>':
		if wsAfter {
			li.class = lineListItem
			return li
		}
	case '$', '^', ':':
		if li.level == 2 && run == end {
			li.class = lineRangeClose
			return li
		}
		if li.level <= 2 && wsAfter {
			li.class = lineRangeOpen
			return li
		}
	case '@', '|':
		if li.level == 1 && run < end && isTagNameByte(p.src[run]) {
			li.class = lineRangedTag
			return li
		}
	case '+', '#':
		if li.level == 1 && run < end && isTagNameByte(p.src[run]) {
			li.class = lineCarryoverTag
			return li
		}
	case '.':
		if li.level == 1 && run < end && isTagNameByte(p.src[run]) {
			li.class = lineInfirmTag
			return li
		}
	}
	li.class = lineText
	return li
}

// parseBlocks appends blocks to parent until EOF or stop reports a line the
// caller wants to handle itself.
func (p *parser) parseBlocks(parent *SyntaxNode, stop func(lineInfo) bool) {
	for {
		li := p.peekLine()
		if li.class == lineEOF {
			return
		}
		if stop != nil && stop(li) {
			return
		}
		switch li.class {
		case lineBlank:
			p.extendBreak(li.start, li.termEnd)
			p.pos = li.termEnd
		case lineHeading:
			p.flushBreak(parent)
			parent.append(p.parseHeading(li, stop))
		case lineListItem:
			p.flushBreak(parent)
			parent.append(p.parseListItem(li, stop))
		case lineRangeOpen:
			p.flushBreak(parent)
			parent.append(p.parseRangeable(li, stop))
		case lineRangedTag:
			p.flushBreak(parent)
			if tag, ok := p.parseRangedTag(li); ok {
				parent.append(tag)
			} else {
				parent.append(p.parseParagraph(li, stop))
			}
		case lineCarryoverTag:
			p.flushBreak(parent)
			parent.append(p.parseTagLine(li, KindCarryoverTag))
		case lineInfirmTag:
			p.flushBreak(parent)
			parent.append(p.parseTagLine(li, KindInfirmTag))
		default:
			// Plain text, or a construct with no enclosing container (for
			// example a stray closing token): read it as a paragraph.
			p.flushBreak(parent)
			parent.append(p.parseParagraph(li, stop))
		}
	}
}

func (p *parser) parseHeading(li lineInfo, stop func(lineInfo) bool) *SyntaxNode {
	level := li.level
	heading := &SyntaxNode{Kind: KindHeading}
	heading.append(newLeaf(KindHeadingStars, li.textStart, li.afterMarker))

	title := &SyntaxNode{Kind: KindTitle}
	ts := skipHorizontal(p.src, li.afterMarker, li.end)
	te := trimRightHorizontal(p.src, ts, li.end)
	p.parseInline(title, ts, te)
	if li.termEnd > li.end {
		// The title owns its terminator: the break between a heading line and
		// its content survives title whitespace normalization.
		title.append(newLeaf(KindLineBreak, li.end, li.termEnd))
	}
	heading.append(title)
	p.pos = li.termEnd

	p.parseBlocks(heading, func(l lineInfo) bool {
		if stop != nil && stop(l) {
			return true
		}
		return l.class == lineHeading && l.level <= level
	})
	p.flushBreak(heading)
	return heading
}

func (p *parser) parseListItem(li lineInfo, stop func(lineInfo) bool) *SyntaxNode {
	kind := KindUnorderedListItem
	switch li.marker {
	case '~':
		kind = KindOrderedListItem
	case '>':
		kind = KindQuoteListItem
	}
	level := li.level
	item := &SyntaxNode{Kind: kind}
	item.append(newLeaf(KindListPrefix, li.textStart, li.afterMarker))

	bodyStart := skipHorizontal(p.src, li.afterMarker, li.end)
	if para := p.parseParagraphFrom(li, bodyStart, stop); para != nil {
		item.append(para)
	}

	// Deeper items nest under this one; same or shallower items are siblings.
	for {
		next := p.peekLine()
		if next.class != lineListItem || next.level <= level {
			break
		}
		if stop != nil && stop(next) {
			break
		}
		p.flushBreak(item)
		item.append(p.parseListItem(next, stop))
	}
	p.flushBreak(item)
	return item
}

func (p *parser) parseRangeable(li lineInfo, stop func(lineInfo) bool) *SyntaxNode {
	var kind, closeKind Kind
	switch li.marker {
	case '$':
		kind, closeKind = KindDefinition, KindDefinitionClose
	case '^':
		kind, closeKind = KindFootnote, KindFootnoteClose
	default:
		kind, closeKind = KindTable, KindTableClose
	}
	node := &SyntaxNode{Kind: kind}
	node.append(newLeaf(KindRangeOpen, li.textStart, li.afterMarker))

	title := &SyntaxNode{Kind: KindTitle}
	ts := skipHorizontal(p.src, li.afterMarker, li.end)
	te := trimRightHorizontal(p.src, ts, li.end)
	p.parseInline(title, ts, te)
	node.append(title)
	p.pos = li.termEnd
	if li.termEnd > li.end {
		p.extendBreak(li.end, li.termEnd)
	}

	if li.level == 1 {
		// Single form: the body is the one paragraph that follows.
		next := p.peekLine()
		if next.class == lineText && (stop == nil || !stop(next)) {
			p.flushBreak(node)
			node.append(p.parseParagraph(next, stop))
		}
		return node
	}

	marker := li.marker
	p.parseBlocks(node, func(l lineInfo) bool {
		if stop != nil && stop(l) {
			return true
		}
		return l.class == lineRangeClose && l.marker == marker
	})
	if next := p.peekLine(); next.class == lineRangeClose && next.marker == marker {
		p.flushBreak(node)
		node.append(newLeaf(closeKind, next.textStart, next.afterMarker))
		p.pos = next.termEnd
		if next.termEnd > next.end {
			p.extendBreak(next.end, next.termEnd)
		}
		return node
	}
	p.flushBreak(node)
	return node
}

// parseRangedTag reads "@name params" or "|name params" through its matching
// terminator line. It reports false when the construct is unterminated (or is
// itself a terminator), in which case the caller reads the line as text.
func (p *parser) parseRangedTag(li lineInfo) (*SyntaxNode, bool) {
	nameStart := li.textStart + 1
	nameEnd := nameStart
	for nameEnd < li.end && isTagNameByte(p.src[nameEnd]) {
		nameEnd++
	}
	if string(p.src[nameStart:nameEnd]) == "end" {
		return nil, false
	}
	endMarker := string(li.marker) + "end"

	// Scan ahead for the terminator line before committing.
	scan := li.termEnd
	termLine := lineInfo{}
	found := false
	for scan < len(p.src) {
		ls := scan
		le := ls
		for le < len(p.src) && p.src[le] != '\n' && p.src[le] != '\r' {
			le++
		}
		lt := le
		if lt < len(p.src) {
			if p.src[lt] == '\r' && lt+1 < len(p.src) && p.src[lt+1] == '\n' {
				lt += 2
			} else {
				lt++
			}
		}
		ts := skipHorizontal(p.src, ls, le)
		if te := trimRightHorizontal(p.src, ts, le); string(p.src[ts:te]) == endMarker {
			termLine = lineInfo{start: ls, textStart: ts, end: le, termEnd: lt}
			found = true
			break
		}
		scan = lt
	}
	if !found {
		return nil, false
	}

	tag := &SyntaxNode{Kind: KindRangedTag}
	tag.append(newLeaf(KindTagOpen, li.textStart, li.textStart+1))
	tag.append(newLeaf(KindTagName, nameStart, nameEnd))
	p.appendParams(tag, nameEnd, li.end)
	if termLine.start > li.termEnd {
		tag.append(newLeaf(KindTagBody, li.termEnd, termLine.start))
	}
	tag.append(newLeaf(KindTagEnd, termLine.textStart, termLine.textStart+len(endMarker)))

	p.pos = termLine.termEnd
	if termLine.termEnd > termLine.end {
		p.extendBreak(termLine.end, termLine.termEnd)
	}
	return tag, true
}

// parseTagLine reads a single-line carryover (+, #) or infirm (.) tag. A
// carryover tag's terminator is consumed outright: its formatter supplies the
// newline binding it to the next object.
func (p *parser) parseTagLine(li lineInfo, kind Kind) *SyntaxNode {
	tag := &SyntaxNode{Kind: kind}
	tag.append(newLeaf(KindTagOpen, li.textStart, li.textStart+1))
	nameEnd := li.textStart + 1
	for nameEnd < li.end && isTagNameByte(p.src[nameEnd]) {
		nameEnd++
	}
	tag.append(newLeaf(KindTagName, li.textStart+1, nameEnd))
	p.appendParams(tag, nameEnd, li.end)
	p.pos = li.termEnd
	if kind == KindInfirmTag && li.termEnd > li.end {
		p.extendBreak(li.end, li.termEnd)
	}
	return tag
}

func (p *parser) appendParams(tag *SyntaxNode, from, to int) {
	i := from
	for i < to {
		for i < to && isHorizontal(p.src[i]) {
			i++
		}
		j := i
		for j < to && !isHorizontal(p.src[j]) {
			j++
		}
		if j > i {
			tag.append(newLeaf(KindTagParam, i, j))
		}
		i = j
	}
}

func (p *parser) parseParagraph(li lineInfo, stop func(lineInfo) bool) *SyntaxNode {
	if para := p.parseParagraphFrom(li, li.textStart, stop); para != nil {
		return para
	}
	return &SyntaxNode{Kind: KindParagraph, Span: Span{Start: li.textStart, End: li.textStart}}
}

// parseParagraphFrom consumes the current line from contentStart plus every
// plain continuation line, and returns the inline-parsed paragraph. The last
// line's terminator becomes pending break material for the caller.
func (p *parser) parseParagraphFrom(li lineInfo, contentStart int, stop func(lineInfo) bool) *SyntaxNode {
	endPos := li.end
	last := li
	p.pos = li.termEnd
	for {
		next := p.peekLine()
		if next.class != lineText {
			break
		}
		if stop != nil && stop(next) {
			break
		}
		endPos = next.end
		last = next
		p.pos = next.termEnd
	}
	if last.termEnd > last.end {
		p.extendBreak(last.end, last.termEnd)
	}
	if contentStart >= endPos {
		return nil
	}
	para := &SyntaxNode{Kind: KindParagraph}
	p.parseInline(para, contentStart, endPos)
	return para
}

func (p *parser) extendBreak(from, to int) {
	if p.pendStart < 0 {
		p.pendStart = from
	}
	p.pendEnd = to
}

func (p *parser) flushBreak(parent *SyntaxNode) {
	if p.pendStart >= 0 && p.pendEnd > p.pendStart {
		parent.append(newLeaf(KindLineBreak, p.pendStart, p.pendEnd))
	}
	p.pendStart = -1
	p.pendEnd = 0
}

func isHorizontal(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v'
}

func isTagNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '-' || c == '_':
		return true
	}
	return false
}

func skipHorizontal(src []byte, from, to int) int {
	for from < to && isHorizontal(src[from]) {
		from++
	}
	return from
}

func trimRightHorizontal(src []byte, from, to int) int {
	for to > from && isHorizontal(src[to-1]) {
		to--
	}
	return to
}
