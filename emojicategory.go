package scriptrun

// EmojiSegmentationCategory classifies a single scalar value for the
// emoji-presentation state machine (spec.md §4.3/§6). Numbering is fixed
// for interop and must not change even if the backing tables are
// regenerated against a newer UCD version (spec.md §6).
type EmojiSegmentationCategory int

const (
	EmojiCategoryInvalid                           EmojiSegmentationCategory = -1
	EmojiCategoryEmoji                             EmojiSegmentationCategory = 0
	EmojiCategoryEmojiTextPresentation             EmojiSegmentationCategory = 1
	EmojiCategoryEmojiEmojiPresentation            EmojiSegmentationCategory = 2
	EmojiCategoryEmojiModifierBase                 EmojiSegmentationCategory = 3
	EmojiCategoryEmojiModifier                     EmojiSegmentationCategory = 4
	EmojiCategoryEmojiVSBase                       EmojiSegmentationCategory = 5
	EmojiCategoryRegionalIndicator                 EmojiSegmentationCategory = 6
	EmojiCategoryKeyCapBase                        EmojiSegmentationCategory = 7
	EmojiCategoryCombiningEnclosingKeyCap          EmojiSegmentationCategory = 8
	EmojiCategoryCombiningEnclosingCircleBackslash EmojiSegmentationCategory = 9
	EmojiCategoryZWJ                               EmojiSegmentationCategory = 10
	EmojiCategoryVS15                              EmojiSegmentationCategory = 11
	EmojiCategoryVS16                              EmojiSegmentationCategory = 12
	EmojiCategoryTagBase                           EmojiSegmentationCategory = 13
	EmojiCategoryTagSequence                       EmojiSegmentationCategory = 14
	EmojiCategoryTagTerm                           EmojiSegmentationCategory = 15
)

var emojiCategoryNames = map[EmojiSegmentationCategory]string{
	EmojiCategoryInvalid:                          "Invalid",
	EmojiCategoryEmoji:                            "Emoji",
	EmojiCategoryEmojiTextPresentation:             "EmojiTextPresentation",
	EmojiCategoryEmojiEmojiPresentation:            "EmojiEmojiPresentation",
	EmojiCategoryEmojiModifierBase:                 "EmojiModifierBase",
	EmojiCategoryEmojiModifier:                     "EmojiModifier",
	EmojiCategoryEmojiVSBase:                       "EmojiVSBase",
	EmojiCategoryRegionalIndicator:                 "RegionalIndicator",
	EmojiCategoryKeyCapBase:                        "KeyCapBase",
	EmojiCategoryCombiningEnclosingKeyCap:          "CombiningEnclosingKeyCap",
	EmojiCategoryCombiningEnclosingCircleBackslash: "CombiningEnclosingCircleBackslash",
	EmojiCategoryZWJ:                               "ZWJ",
	EmojiCategoryVS15:                              "VS15",
	EmojiCategoryVS16:                              "VS16",
	EmojiCategoryTagBase:                           "TagBase",
	EmojiCategoryTagSequence:                       "TagSequence",
	EmojiCategoryTagTerm:                           "TagTerm",
}

// String returns the stable name of the category.
func (c EmojiSegmentationCategory) String() string {
	if name, ok := emojiCategoryNames[c]; ok {
		return name
	}
	return "Invalid"
}

// Fixed scalar values used directly by the category/sequence rules, named
// per the UCD emoji-data conventions spec.md §6/the GLOSSARY use.
const (
	runeZWJ                               rune = 0x200D
	runeVS15                              rune = 0xFE0E
	runeVS16                              rune = 0xFE0F
	runeCombiningEnclosingKeyCap          rune = 0x20E3
	runeCombiningEnclosingCircleBackslash rune = 0x20E0
	runeTagBase                           rune = 0x1F3F4
	runeTagTerm                           rune = 0xE007F
)

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

func isKeyCapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

func isTagSequenceChar(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007E
}

// emojiCategoryOf classifies a single scalar into its
// EmojiSegmentationCategory, combining the boolean UCD emoji properties
// (flags.go) with the fixed-codepoint sequence punctuation above. Order
// matters: the more specific sequence-forming categories are checked
// before the general Emoji/text-presentation defaults.
func emojiCategoryOf(r rune) EmojiSegmentationCategory {
	switch r {
	case runeZWJ:
		return EmojiCategoryZWJ
	case runeVS15:
		return EmojiCategoryVS15
	case runeVS16:
		return EmojiCategoryVS16
	case runeCombiningEnclosingKeyCap:
		return EmojiCategoryCombiningEnclosingKeyCap
	case runeCombiningEnclosingCircleBackslash:
		return EmojiCategoryCombiningEnclosingCircleBackslash
	case runeTagTerm:
		return EmojiCategoryTagTerm
	case runeTagBase:
		return EmojiCategoryTagBase
	}

	if r < 0 || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return EmojiCategoryInvalid
	}

	if isRegionalIndicator(r) {
		return EmojiCategoryRegionalIndicator
	}
	if isTagSequenceChar(r) {
		return EmojiCategoryTagSequence
	}
	if hasEmojiModifierBase(r) {
		return EmojiCategoryEmojiModifierBase
	}
	if hasEmojiModifier(r) {
		return EmojiCategoryEmojiModifier
	}
	if isKeyCapBase(r) {
		return EmojiCategoryKeyCapBase
	}
	if hasEmojiPresentation(r) {
		return EmojiCategoryEmojiEmojiPresentation
	}
	if hasExtendedPictographic(r) {
		return EmojiCategoryEmojiTextPresentation
	}
	if hasEmoji(r) {
		return EmojiCategoryEmoji
	}
	return EmojiCategoryInvalid
}
