package scriptrun

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Boolean UCD property blocks, compiled offline the same way the teacher
// compiles its grapheme/line-break property tables, but represented as
// *unicode.RangeTable so they can be merged with
// golang.org/x/text/unicode/rangetable and queried with unicode.Is — the
// same machinery golang.org/x/text itself uses to assemble compound
// Unicode tables such as unicode.Scripts.

var emojiPresentationBlocks = []*unicode.RangeTable{
	{R32: []unicode.Range32{ // Emoticons
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
	}},
	{R32: []unicode.Range32{ // Misc Symbols and Pictographs
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
	}},
	{R32: []unicode.Range32{ // Transport and Map Symbols
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
	}},
	{R32: []unicode.Range32{ // Supplemental Symbols and Pictographs
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
	}},
	{R32: []unicode.Range32{ // Chess Symbols
		{Lo: 0x1FA00, Hi: 0x1FA6F, Stride: 1},
	}},
	{R32: []unicode.Range32{ // Symbols and Pictographs Extended-A
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1},
	}},
	{R16: []unicode.Range16{ // Mahjong tiles
		{Lo: 0x1F000, Hi: 0x1F02F, Stride: 1},
	}},
	{R16: []unicode.Range16{ // Playing cards
		{Lo: 0x1F0A0, Hi: 0x1F0FF, Stride: 1},
	}},
	{R16: []unicode.Range16{ // Regional Indicators
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1},
	}},
	{R16: []unicode.Range16{ // Skin tone modifiers
		{Lo: 0x1F3FB, Hi: 0x1F3FF, Stride: 1},
	}},
}

// extendedPictographicBlocks covers Extended_Pictographic=Yes codepoints
// that default to text presentation (Emoji_Presentation=No): dingbats,
// misc symbols, and similar legacy characters that need U+FE0F to render
// as emoji.
var extendedPictographicBlocks = []*unicode.RangeTable{
	{R16: []unicode.Range16{{Lo: 0x2600, Hi: 0x26FF, Stride: 1}}},  // Miscellaneous Symbols
	{R16: []unicode.Range16{{Lo: 0x2700, Hi: 0x27BF, Stride: 1}}},  // Dingbats
	{R16: []unicode.Range16{{Lo: 0x231A, Hi: 0x231B, Stride: 1}}},  // Watch, hourglass
	{R16: []unicode.Range16{{Lo: 0x23E9, Hi: 0x23F3, Stride: 1}}},  // Misc Technical: media control symbols
	{R16: []unicode.Range16{{Lo: 0x23F8, Hi: 0x23FA, Stride: 1}}},  // Misc Technical: pause/stop/record
	{R16: []unicode.Range16{{Lo: 0x2B05, Hi: 0x2B07, Stride: 1}}},  // Misc Symbols and Arrows: directional arrows
	{R16: []unicode.Range16{{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1}}},  // Black/white large square
	{R16: []unicode.Range16{{Lo: 0x2B50, Hi: 0x2B50, Stride: 1}}},  // White medium star
	{R16: []unicode.Range16{{Lo: 0x2B55, Hi: 0x2B55, Stride: 1}}},  // Heavy large circle
	{R16: []unicode.Range16{{Lo: 0x2194, Hi: 0x2199, Stride: 1}}},  // Arrows: left-right/up-down/diagonal
	{R16: []unicode.Range16{{Lo: 0x21A9, Hi: 0x21AA, Stride: 1}}},  // Arrows: leftwards/rightwards arrow with hook
	{R16: []unicode.Range16{{Lo: 0x203C, Hi: 0x203C, Stride: 1}}},  // Double exclamation mark
	{R16: []unicode.Range16{{Lo: 0x2049, Hi: 0x2049, Stride: 1}}},  // Exclamation question mark
	{R16: []unicode.Range16{{Lo: 0x2122, Hi: 0x2122, Stride: 1}}},  // Trade mark sign
	{R16: []unicode.Range16{{Lo: 0x2139, Hi: 0x2139, Stride: 1}}},  // Information source
	{R16: []unicode.Range16{{Lo: 0x24C2, Hi: 0x24C2, Stride: 1}}},  // Circled Latin M
	{R16: []unicode.Range16{{Lo: 0x3030, Hi: 0x3030, Stride: 1}}},  // Wavy dash
	{R16: []unicode.Range16{{Lo: 0x303D, Hi: 0x303D, Stride: 1}}},  // Part alternation mark
	{R16: []unicode.Range16{{Lo: 0x3297, Hi: 0x3297, Stride: 1}}},  // Circled ideograph congratulation
	{R16: []unicode.Range16{{Lo: 0x3299, Hi: 0x3299, Stride: 1}}},  // Circled ideograph secret
	{R16: []unicode.Range16{{Lo: 0x00A9, Hi: 0x00A9, Stride: 1}}},  // Copyright sign
	{R16: []unicode.Range16{{Lo: 0x00AE, Hi: 0x00AE, Stride: 1}}},  // Registered sign
}

// emojiModifierBaseBlocks are Emoji_Modifier_Base=Yes codepoints: humans,
// body parts, and human activity emoji that a Fitzpatrick skin-tone
// modifier can attach to.
var emojiModifierBaseBlocks = []*unicode.RangeTable{
	{R16: []unicode.Range16{{Lo: 0x261D, Hi: 0x261D, Stride: 1}}},
	{R16: []unicode.Range16{{Lo: 0x26F9, Hi: 0x26F9, Stride: 1}}},
	{R16: []unicode.Range16{{Lo: 0x270A, Hi: 0x270D, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F385, Hi: 0x1F385, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F3C2, Hi: 0x1F3C4, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F3C7, Hi: 0x1F3C7, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F3CA, Hi: 0x1F3CC, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F442, Hi: 0x1F443, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F446, Hi: 0x1F450, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F466, Hi: 0x1F478, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F47C, Hi: 0x1F47C, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F481, Hi: 0x1F483, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F485, Hi: 0x1F487, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F4AA, Hi: 0x1F4AA, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F574, Hi: 0x1F575, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F57A, Hi: 0x1F57A, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F590, Hi: 0x1F590, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F595, Hi: 0x1F596, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F645, Hi: 0x1F647, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F64B, Hi: 0x1F64F, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F6A3, Hi: 0x1F6A3, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F6B4, Hi: 0x1F6B6, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F6C0, Hi: 0x1F6C0, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F6CC, Hi: 0x1F6CC, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F90C, Hi: 0x1F90C, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F918, Hi: 0x1F91F, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F926, Hi: 0x1F926, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F930, Hi: 0x1F939, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F93C, Hi: 0x1F93E, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1F977, Hi: 0x1F978, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1FAC3, Hi: 0x1FAC5, Stride: 1}}},
	{R32: []unicode.Range32{{Lo: 0x1FAF0, Hi: 0x1FAF8, Stride: 1}}},
}

// emojiModifierBlocks are the Fitzpatrick skin-tone modifiers themselves
// (Emoji_Modifier=Yes).
var emojiModifierBlocks = []*unicode.RangeTable{
	{R32: []unicode.Range32{{Lo: 0x1F3FB, Hi: 0x1F3FF, Stride: 1}}},
}

var (
	emojiPresentationTable    = rangetable.Merge(emojiPresentationBlocks...)
	extendedPictographicTable = rangetable.Merge(append(append([]*unicode.RangeTable{}, emojiPresentationBlocks...), extendedPictographicBlocks...)...)
	emojiModifierBaseTable    = rangetable.Merge(emojiModifierBaseBlocks...)
	emojiModifierTable        = rangetable.Merge(emojiModifierBlocks...)
	emojiTable                = rangetable.Merge(extendedPictographicTable, emojiModifierTable)
)

func hasEmojiPresentation(r rune) bool    { return unicode.Is(emojiPresentationTable, r) }
func hasExtendedPictographic(r rune) bool { return unicode.Is(extendedPictographicTable, r) }
func hasEmojiModifierBase(r rune) bool    { return unicode.Is(emojiModifierBaseTable, r) }
func hasEmojiModifier(r rune) bool        { return unicode.Is(emojiModifierTable, r) }
func hasEmoji(r rune) bool                { return unicode.Is(emojiTable, r) }

// HasProperty reports whether the scalar r carries the named boolean UCD
// emoji property. It implements spec.md §4.1's has_property function.
//
// Recognized names: "Emoji", "Emoji_Presentation", "Emoji_Modifier",
// "Emoji_Modifier_Base", "Extended_Pictographic". Unknown names report
// false.
func HasProperty(r rune, property string) bool {
	switch property {
	case "Emoji":
		return hasEmoji(r)
	case "Emoji_Presentation":
		return hasEmojiPresentation(r)
	case "Emoji_Modifier":
		return hasEmojiModifier(r)
	case "Emoji_Modifier_Base":
		return hasEmojiModifierBase(r)
	case "Extended_Pictographic":
		return hasExtendedPictographic(r)
	default:
		return false
	}
}
