package norgfmt

import (
	"unicode"
	"unicode/utf8"
)

// markupKinds maps an attached-modifier delimiter to its span kind. All of
// these share the same opening/closing rules and the same free-form variant.
var markupKinds = map[byte]Kind{
	'*': KindBold,
	'/': KindItalic,
	'_': KindUnderline,
	'-': KindStrikethrough,
	'!': KindSpoiler,
	'^': KindSuperscript,
	',': KindSubscript,
	'`': KindVerbatim,
	'%': KindInlineComment,
	'$': KindInlineMath,
	'&': KindInlineMacro,
}

// parseInline scans src[start:end) and appends inline nodes to parent. Plain
// runs, whitespace and line terminators included, become text leaves.
func (p *parser) parseInline(parent *SyntaxNode, start, end int) {
	i := start
	textStart := start
	flush := func(to int) {
		if to > textStart {
			parent.append(newLeaf(KindText, textStart, to))
		}
	}

	for i < end {
		c := p.src[i]
		switch c {
		case '\\':
			if i+1 >= end {
				i++
				continue
			}
			_, size := utf8.DecodeRune(p.src[i+1 : end])
			flush(i)
			parent.append(newLeaf(KindEscapeSequence, i, i+1+size))
			i += 1 + size
			textStart = i
		case '{':
			if node, next := p.parseLink(i, end); node != nil {
				flush(i)
				parent.append(node)
				i = next
				textStart = i
				continue
			}
			i++
		case '[':
			if node, next := p.parseBracketed(i, end, ']', KindAnchor, KindAnchorOpen, KindAnchorClose); node != nil {
				flush(i)
				parent.append(node)
				i = next
				textStart = i
				continue
			}
			i++
		case '<':
			if node, next := p.parseBracketed(i, end, '>', KindInlineLinkTarget, KindAngleOpen, KindAngleClose); node != nil {
				flush(i)
				parent.append(node)
				i = next
				textStart = i
				continue
			}
			i++
		default:
			if kind, ok := markupKinds[c]; ok && p.canOpenMarkup(i, start, end) {
				if node, next := p.parseMarkup(kind, i, end); node != nil {
					flush(i)
					parent.append(node)
					i = next
					textStart = i
					continue
				}
			}
			i++
		}
	}
	flush(end)
}

// canOpenMarkup applies the attached-modifier opening rule: the delimiter
// must follow whitespace or punctuation (or start the span) and must not be
// followed by whitespace.
func (p *parser) canOpenMarkup(i, start, end int) bool {
	if i+1 >= end || isWhitespaceByte(p.src[i+1]) {
		return false
	}
	if i == start {
		return true
	}
	prev, _ := utf8.DecodeLastRune(p.src[start:i])
	return unicode.IsSpace(prev) || unicode.IsPunct(prev) || unicode.IsSymbol(prev)
}

// parseMarkup reads an emphasis-like span starting at the delimiter i. It
// returns nil when no matching closing delimiter exists, in which case the
// character reads as plain text.
func (p *parser) parseMarkup(kind Kind, i, end int) (*SyntaxNode, int) {
	c := p.src[i]

	if p.src[i+1] == '|' {
		// Free-form variant: raw body up to the "|<delim>" closer.
		for j := i + 2; j+1 < end; j++ {
			if p.src[j] == '|' && p.src[j+1] == c {
				node := &SyntaxNode{Kind: kind}
				node.append(newLeaf(KindMarkupOpen, i, i+1))
				node.append(newLeaf(KindFreeFormOpen, i+1, i+2))
				p.parseInline(node, i+2, j)
				node.append(newLeaf(KindFreeFormClose, j, j+1))
				node.append(newLeaf(KindMarkupClose, j+1, j+2))
				return node, j + 2
			}
		}
		return nil, i
	}

	j := i + 1
	for j < end {
		if p.src[j] == '\\' && j+1 < end {
			_, size := utf8.DecodeRune(p.src[j+1 : end])
			j += 1 + size
			continue
		}
		if p.src[j] == c && !isWhitespaceByte(p.src[j-1]) && closesMarkup(p.src, j, end) {
			node := &SyntaxNode{Kind: kind}
			node.append(newLeaf(KindMarkupOpen, i, i+1))
			if kind == KindVerbatim || kind == KindInlineMath {
				// Verbatim spans keep their body untouched.
				if j > i+1 {
					node.append(newLeaf(KindText, i+1, j))
				}
			} else {
				p.parseInline(node, i+1, j)
			}
			node.append(newLeaf(KindMarkupClose, j, j+1))
			return node, j + 1
		}
		j++
	}
	return nil, i
}

// closesMarkup applies the closing rule: the delimiter must be followed by
// whitespace, punctuation, or the end of the span.
func closesMarkup(src []byte, j, end int) bool {
	if j+1 >= end {
		return true
	}
	next, _ := utf8.DecodeRune(src[j+1 : end])
	return unicode.IsSpace(next) || unicode.IsPunct(next) || unicode.IsSymbol(next)
}

// parseLink reads "{...}" into a link node with a typed target.
func (p *parser) parseLink(i, end int) (*SyntaxNode, int) {
	close := -1
	for j := i + 1; j < end; j++ {
		if p.src[j] == '\\' && j+1 < end {
			j++
			continue
		}
		if p.src[j] == '}' {
			close = j
			break
		}
	}
	if close < 0 {
		return nil, i
	}
	link := &SyntaxNode{Kind: KindLink}
	link.append(newLeaf(KindLinkOpen, i, i+1))
	link.append(p.parseLinkTarget(i+1, close))
	link.append(newLeaf(KindLinkClose, close, close+1))
	return link, close + 1
}

// parseLinkTarget classifies the text between link braces. A run of stars
// makes a heading target of that depth; a single marker character from the
// fixed set makes the matching typed target; anything else is a URL.
func (p *parser) parseLinkTarget(s, e int) *SyntaxNode {
	for s < e && isWhitespaceByte(p.src[s]) {
		s++
	}
	for e > s && isWhitespaceByte(p.src[e-1]) {
		e--
	}
	if s >= e {
		return newLeaf(KindTargetURL, s, e)
	}

	var kind Kind
	markerEnd := s + 1
	switch p.src[s] {
	case '*':
		kind = KindTargetHeading
		for markerEnd < e && p.src[markerEnd] == '*' {
			markerEnd++
		}
	case '^':
		kind = KindTargetFootnote
	case '$':
		kind = KindTargetDefinition
	case '#':
		kind = KindTargetGeneric
	case '?':
		kind = KindTargetWiki
	case '=':
		kind = KindTargetExtendable
	case '/':
		kind = KindTargetPath
	case '@':
		kind = KindTargetTimestamp
	default:
		return newLeaf(KindTargetURL, s, e)
	}
	if markerEnd >= e || !isWhitespaceByte(p.src[markerEnd]) {
		return newLeaf(KindTargetURL, s, e)
	}
	titleStart := markerEnd
	for titleStart < e && isWhitespaceByte(p.src[titleStart]) {
		titleStart++
	}
	return newNode(kind,
		newLeaf(KindLinkText, s, markerEnd),
		newLeaf(KindLinkText, titleStart, e))
}

// parseBracketed reads "[...]" or "<...>" into a wrapper node whose middle
// child is description text (whitespace-collapsed when rendered).
func (p *parser) parseBracketed(i, end int, closing byte, kind, openKind, closeKind Kind) (*SyntaxNode, int) {
	close := -1
	for j := i + 1; j < end; j++ {
		if p.src[j] == '\\' && j+1 < end {
			j++
			continue
		}
		if p.src[j] == closing {
			close = j
			break
		}
	}
	if close < 0 {
		return nil, i
	}
	s, e := i+1, close
	for s < e && isWhitespaceByte(p.src[s]) {
		s++
	}
	for e > s && isWhitespaceByte(p.src[e-1]) {
		e--
	}
	node := &SyntaxNode{Kind: kind}
	node.append(newLeaf(openKind, i, i+1))
	node.append(newLeaf(KindDescription, s, e))
	node.append(newLeaf(closeKind, close, close+1))
	return node, close + 1
}

func isWhitespaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
