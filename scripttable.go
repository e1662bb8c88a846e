package scriptrun

// scriptRange is one entry of the compiled script property table: a
// closed interval [lo, hi] of scalar values sharing a single Script.
//
// The table is sorted by lo and queried with binary search, the same
// "sorted interval table + propertySearch" shape the teacher uses for its
// grapheme/line-break properties (see scalecode-solutions/runeseg's
// properties.go). This keeps lookups O(log n) with about a hundred entries
// total, well inside spec.md §4.1's "few hundred kilobytes" budget.
type scriptRange struct {
	lo, hi rune
	script Script
}

// scriptTable holds the scalar-value-to-Script mapping for codepoints at
// or above 0x0080 (ASCII is handled separately in asciiScript for O(1)
// lookup on the overwhelmingly common case). Entries are whole Unicode
// blocks (or parts of blocks) assigned a single Script each, sorted by lo
// and not overlapping; codepoints that fall between entries are not
// covered.
//
// This intentionally covers the scripts spec.md §3/§6 names explicitly
// plus their most common blocks, not the full ISO 15924 repertoire —
// unlisted assigned codepoints fall through to ScriptUnknown per spec.md
// §9's "Unassigned-codepoint classification" note, which is an accepted,
// documented divergence from UCD's Script_Extensions-derived tables.
var scriptTable = []scriptRange{
	{0x0080, 0x00BF, ScriptCommon},
	{0x00C0, 0x00D6, ScriptLatin},
	{0x00D7, 0x00D7, ScriptCommon},
	{0x00D8, 0x00F6, ScriptLatin},
	{0x00F7, 0x00F7, ScriptCommon},
	{0x00F8, 0x00FF, ScriptLatin},
	{0x0100, 0x024F, ScriptLatin},
	{0x0250, 0x02AF, ScriptLatin},
	{0x02B0, 0x02FF, ScriptCommon}, // Spacing Modifier Letters
	{0x0300, 0x036F, ScriptInherited},
	{0x0370, 0x03FF, ScriptGreek},
	{0x0400, 0x04FF, ScriptCyrillic},
	{0x0500, 0x052F, ScriptCyrillic},
	{0x0530, 0x058F, ScriptArmenian},
	{0x0590, 0x05FF, ScriptHebrew},
	{0x0600, 0x06FF, ScriptArabic},
	{0x0700, 0x074F, ScriptUnknown}, // Syriac et al.: not modeled
	{0x0750, 0x077F, ScriptArabic},
	{0x0780, 0x089F, ScriptUnknown},
	{0x08A0, 0x08FF, ScriptArabic},
	{0x0900, 0x097F, ScriptDevanagari},
	{0x0980, 0x09FF, ScriptBengali},
	{0x0A00, 0x0A7F, ScriptGurmukhi},
	{0x0A80, 0x0AFF, ScriptGujarati},
	{0x0B00, 0x0B7F, ScriptOriya},
	{0x0B80, 0x0BFF, ScriptTamil},
	{0x0C00, 0x0C7F, ScriptTelugu},
	{0x0C80, 0x0CFF, ScriptKannada},
	{0x0D00, 0x0D7F, ScriptMalayalam},
	{0x0D80, 0x0DFF, ScriptSinhala},
	{0x0E00, 0x0E7F, ScriptThai},
	{0x0E80, 0x0EFF, ScriptLao},
	{0x0F00, 0x0FFF, ScriptTibetan},
	{0x1000, 0x109F, ScriptMyanmar},
	{0x10A0, 0x10FF, ScriptGeorgian},
	{0x1100, 0x11FF, ScriptHangul}, // Hangul Jamo
	{0x1200, 0x137F, ScriptEthiopic},
	{0x1380, 0x139F, ScriptEthiopic},
	{0x1780, 0x17FF, ScriptKhmer},
	{0x19E0, 0x19FF, ScriptKhmer},
	{0x1AB0, 0x1AFF, ScriptInherited}, // Combining Diacritical Marks Extended
	{0x1DC0, 0x1DFF, ScriptInherited}, // Combining Diacritical Marks Supplement
	{0x1E00, 0x1EFF, ScriptLatin},
	{0x1F00, 0x1FFF, ScriptGreek},
	{0x2000, 0x206F, ScriptCommon}, // General Punctuation
	{0x2070, 0x209F, ScriptCommon},
	{0x20A0, 0x20CF, ScriptCommon},
	{0x20D0, 0x20FF, ScriptInherited}, // Combining Diacritical Marks for Symbols
	{0x2100, 0x214F, ScriptCommon},
	{0x2150, 0x218F, ScriptCommon},
	{0x2190, 0x21FF, ScriptCommon}, // Arrows
	{0x2200, 0x22FF, ScriptCommon}, // Mathematical Operators
	{0x2300, 0x23FF, ScriptCommon}, // Miscellaneous Technical
	{0x2400, 0x24FF, ScriptCommon},
	{0x2500, 0x257F, ScriptCommon}, // Box Drawing
	{0x2580, 0x259F, ScriptCommon}, // Block Elements
	{0x25A0, 0x25FF, ScriptCommon}, // Geometric Shapes
	{0x2600, 0x27BF, ScriptCommon}, // Misc Symbols + Dingbats
	{0x27C0, 0x2CFF, ScriptUnknown},
	{0x2D00, 0x2D2F, ScriptGeorgian}, // Georgian Supplement
	{0x2D30, 0x2D7F, ScriptUnknown},
	{0x2D80, 0x2DDF, ScriptEthiopic}, // Ethiopic Extended
	{0x2DE0, 0x2DFF, ScriptCyrillic}, // Cyrillic Extended-A
	{0x2E80, 0x2EFF, ScriptHan},      // CJK Radicals Supplement
	{0x2F00, 0x2FDF, ScriptHan},      // Kangxi Radicals
	{0x2FF0, 0x2FFF, ScriptUnknown},
	{0x3000, 0x303F, ScriptCommon}, // CJK Symbols and Punctuation
	{0x3040, 0x309F, ScriptHiragana},
	{0x30A0, 0x30FF, ScriptKatakana},
	{0x3100, 0x312F, ScriptUnknown},
	{0x3130, 0x318F, ScriptHangul}, // Hangul Compatibility Jamo
	{0x3190, 0x31EF, ScriptUnknown},
	{0x31F0, 0x31FF, ScriptKatakana}, // Katakana Phonetic Extensions
	{0x3200, 0x33FF, ScriptUnknown},
	{0x3400, 0x4DBF, ScriptHan}, // CJK Extension A
	{0x4DC0, 0x4DFF, ScriptUnknown},
	{0x4E00, 0x9FFF, ScriptHan}, // CJK Unified Ideographs
	{0xA640, 0xA69F, ScriptCyrillic},
	{0xA720, 0xA7FF, ScriptLatin},
	{0xA8E0, 0xA8FF, ScriptDevanagari},
	{0xA960, 0xA97F, ScriptHangul}, // Hangul Jamo Extended-A
	{0xAA60, 0xAA7F, ScriptMyanmar},
	{0xAC00, 0xD7A3, ScriptHangul}, // Hangul Syllables
	{0xD7B0, 0xD7FF, ScriptHangul}, // Hangul Jamo Extended-B
	{0xF900, 0xFAFF, ScriptHan},    // CJK Compatibility Ideographs
	{0xFB00, 0xFB1C, ScriptLatin},  // Alphabetic Presentation Forms: Latin ligatures
	{0xFB1D, 0xFB4F, ScriptHebrew},
	{0xFB50, 0xFDFF, ScriptArabic},
	{0xFE00, 0xFE0F, ScriptInherited}, // Variation Selectors
	{0xFE20, 0xFE2F, ScriptInherited}, // Combining Half Marks
	{0xFE70, 0xFEFF, ScriptArabic},
	{0xFF00, 0xFF64, ScriptCommon}, // Halfwidth/Fullwidth punctuation
	{0xFF65, 0xFF9F, ScriptKatakana},
	{0xFFA0, 0xFFEF, ScriptCommon},
	{0x1B000, 0x1B0FF, ScriptHiragana}, // Kana Supplement
	{0x1F000, 0x1F0FF, ScriptCommon},  // Mahjong Tiles, Domino Tiles, Playing Cards
	{0x1F100, 0x1F2FF, ScriptCommon},  // Enclosed Alphanumeric/Ideographic Supplement (includes Regional Indicators)
	{0x1F300, 0x1F5FF, ScriptCommon},  // Misc Symbols and Pictographs
	{0x1F600, 0x1F64F, ScriptCommon},  // Emoticons
	{0x1F650, 0x1F67F, ScriptCommon},  // Ornamental Dingbats
	{0x1F680, 0x1F6FF, ScriptCommon},  // Transport and Map Symbols
	{0x1F700, 0x1F77F, ScriptCommon},  // Alchemical Symbols
	{0x1F780, 0x1F7FF, ScriptCommon},  // Geometric Shapes Extended
	{0x1F800, 0x1F8FF, ScriptCommon},  // Supplemental Arrows-C
	{0x1F900, 0x1F9FF, ScriptCommon},  // Supplemental Symbols and Pictographs
	{0x1FA00, 0x1FA6F, ScriptCommon},  // Chess Symbols
	{0x1FA70, 0x1FAFF, ScriptCommon},  // Symbols and Pictographs Extended-A/B
	{0x20000, 0x2A6DF, ScriptHan},      // CJK Extension B
	{0x2A700, 0x2B73F, ScriptHan},      // CJK Extension C
	{0x2B740, 0x2B81F, ScriptHan},      // CJK Extension D
	{0xE0000, 0xE007F, ScriptCommon},   // Tags (TagBase is in the block above; tag characters proper)
	{0xE0100, 0xE01EF, ScriptInherited}, // Variation Selectors Supplement
}

// scriptTableLookup performs a binary search over scriptTable, mirroring
// the teacher's propertySearch. Returns ok=false for codepoints that fall
// in a gap (treated by the caller as ScriptUnknown).
func scriptTableLookup(r rune) (Script, bool) {
	from, to := 0, len(scriptTable)
	for to > from {
		mid := (from + to) / 2
		entry := scriptTable[mid]
		switch {
		case r < entry.lo:
			to = mid
		case r > entry.hi:
			from = mid + 1
		default:
			if entry.script == ScriptUnknown {
				return ScriptUnknown, true
			}
			return entry.script, true
		}
	}
	return ScriptUnknown, false
}
