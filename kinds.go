package norgfmt

// Kind identifies a Norg grammar production. The formatter dispatches on it;
// kinds it does not treat specially fall through to the structural default
// (leaves render verbatim, composites concatenate their children).
type Kind int

const (
	KindUnknown Kind = iota

	KindDocument
	KindLineBreak // run of line terminators between sibling blocks

	KindHeading
	KindHeadingStars
	KindTitle

	KindUnorderedListItem
	KindOrderedListItem
	KindQuoteListItem
	KindListPrefix

	KindDefinition
	KindTable
	KindFootnote
	KindRangeOpen
	KindDefinitionClose
	KindTableClose
	KindFootnoteClose

	KindRangedTag
	KindCarryoverTag
	KindInfirmTag
	KindTagOpen
	KindTagName
	KindTagParam
	KindTagBody
	KindTagEnd

	KindParagraph
	KindText
	KindEscapeSequence

	KindBold
	KindItalic
	KindUnderline
	KindStrikethrough
	KindSpoiler
	KindSuperscript
	KindSubscript
	KindVerbatim
	KindInlineComment
	KindInlineMath
	KindInlineMacro
	KindMarkupOpen
	KindMarkupClose
	KindFreeFormOpen
	KindFreeFormClose

	KindLink
	KindLinkOpen
	KindLinkClose
	KindLinkText
	KindTargetHeading
	KindTargetFootnote
	KindTargetDefinition
	KindTargetGeneric
	KindTargetWiki
	KindTargetExtendable
	KindTargetPath
	KindTargetTimestamp
	KindTargetURL

	KindAnchor
	KindAnchorOpen
	KindAnchorClose
	KindDescription
	KindInlineLinkTarget
	KindAngleOpen
	KindAngleClose
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindDocument:          "document",
	KindLineBreak:         "line_break",
	KindHeading:           "heading",
	KindHeadingStars:      "heading_stars",
	KindTitle:             "title",
	KindUnorderedListItem: "unordered_list_item",
	KindOrderedListItem:   "ordered_list_item",
	KindQuoteListItem:     "quote_list_item",
	KindListPrefix:        "list_prefix",
	KindDefinition:        "definition",
	KindTable:             "table",
	KindFootnote:          "footnote",
	KindRangeOpen:         "range_open",
	KindDefinitionClose:   "definition_close",
	KindTableClose:        "table_close",
	KindFootnoteClose:     "footnote_close",
	KindRangedTag:         "ranged_tag",
	KindCarryoverTag:      "carryover_tag",
	KindInfirmTag:         "infirm_tag",
	KindTagOpen:           "tag_open",
	KindTagName:           "tag_name",
	KindTagParam:          "tag_param",
	KindTagBody:           "tag_body",
	KindTagEnd:            "tag_end",
	KindParagraph:         "paragraph",
	KindText:              "text",
	KindEscapeSequence:    "escape_sequence",
	KindBold:              "bold",
	KindItalic:            "italic",
	KindUnderline:         "underline",
	KindStrikethrough:     "strikethrough",
	KindSpoiler:           "spoiler",
	KindSuperscript:       "superscript",
	KindSubscript:         "subscript",
	KindVerbatim:          "verbatim",
	KindInlineComment:     "inline_comment",
	KindInlineMath:        "inline_math",
	KindInlineMacro:       "inline_macro",
	KindMarkupOpen:        "markup_open",
	KindMarkupClose:       "markup_close",
	KindFreeFormOpen:      "free_form_open",
	KindFreeFormClose:     "free_form_close",
	KindLink:              "link",
	KindLinkOpen:          "link_open",
	KindLinkClose:         "link_close",
	KindLinkText:          "link_text",
	KindTargetHeading:     "link_target_heading",
	KindTargetFootnote:    "link_target_footnote",
	KindTargetDefinition:  "link_target_definition",
	KindTargetGeneric:     "link_target_generic",
	KindTargetWiki:        "link_target_wiki",
	KindTargetExtendable:  "link_target_extendable",
	KindTargetPath:        "link_target_path",
	KindTargetTimestamp:   "link_target_timestamp",
	KindTargetURL:         "link_target_url",
	KindAnchor:            "anchor",
	KindAnchorOpen:        "anchor_open",
	KindAnchorClose:       "anchor_close",
	KindDescription:       "description",
	KindInlineLinkTarget:  "inline_link_target",
	KindAngleOpen:         "angle_open",
	KindAngleClose:        "angle_close",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// isAttachedModifier reports whether k is an emphasis-like inline span that
// participates in delimiter decay.
func (k Kind) isAttachedModifier() bool {
	switch k {
	case KindBold, KindItalic, KindUnderline, KindStrikethrough, KindSpoiler,
		KindSuperscript, KindSubscript, KindVerbatim, KindInlineComment,
		KindInlineMath, KindInlineMacro:
		return true
	}
	return false
}

// isRangeClose reports whether k closes a rangeable detached modifier.
func (k Kind) isRangeClose() bool {
	switch k {
	case KindDefinitionClose, KindTableClose, KindFootnoteClose:
		return true
	}
	return false
}

// isLinkTarget reports whether k is a link target production.
func (k Kind) isLinkTarget() bool {
	switch k {
	case KindTargetHeading, KindTargetFootnote, KindTargetDefinition,
		KindTargetGeneric, KindTargetWiki, KindTargetExtendable,
		KindTargetPath, KindTargetTimestamp, KindTargetURL:
		return true
	}
	return false
}
