package scriptrun

// PresentationStyle is the rendering mode of a run: plain glyphs or color
// emoji (spec.md §3/§6).
type PresentationStyle int

const (
	PresentationText  PresentationStyle = 0
	PresentationEmoji PresentationStyle = 1
)

func (p PresentationStyle) String() string {
	if p == PresentationEmoji {
		return "Emoji"
	}
	return "Text"
}

// EmojiSegmenter produces the next maximal run of a single
// PresentationStyle over a borrowed buffer of scalar values (spec.md
// §4.3). It implements the sequence rules (variation selectors, modifier
// bases, keycaps, flags, tag sequences, ZWJ joins) as a glue step that
// groups scalars into atomic "units" before looking for presentation
// boundaries between units — matching the Unicode emoji-presentation
// state machine's observable behavior without needing to replicate its
// internal state numbering (spec.md §4.3 "implementers may refactor").
type EmojiSegmenter struct {
	buf []rune
	pos int
}

// NewEmojiSegmenter constructs a segmenter over buf. buf is borrowed, not
// copied.
func NewEmojiSegmenter(buf []rune) *EmojiSegmenter {
	return &EmojiSegmenter{buf: buf}
}

type emojiBoundary struct {
	start, end   int
	presentation PresentationStyle
}

// Consume advances the segmenter and returns the next presentation run, or
// ok=false once the buffer is exhausted.
func (s *EmojiSegmenter) Consume() (emojiBoundary, bool) {
	if s.pos >= len(s.buf) {
		return emojiBoundary{}, false
	}

	start := s.pos
	n, pres := nextUnit(s.buf, s.pos)
	s.pos += n

	for s.pos < len(s.buf) {
		un, upres := nextUnit(s.buf, s.pos)
		if upres != pres {
			break
		}
		s.pos += un
	}

	return emojiBoundary{start: start, end: s.pos, presentation: pres}, true
}

// nextUnit parses the single glued emoji cluster (or single non-emoji
// scalar) starting at buf[pos] and returns its length in scalars and its
// resolved PresentationStyle. baseUnit applies rules 1-5 of spec.md §4.3,
// then nextUnit's own tail loop, below, applies rule 6 (ZWJ joins).
func nextUnit(buf []rune, pos int) (length int, pres PresentationStyle) {
	length, pres = baseUnit(buf, pos)

	for pos+length < len(buf) {
		if emojiCategoryOf(buf[pos+length]) != EmojiCategoryZWJ {
			break
		}
		afterPos := pos + length + 1
		if afterPos >= len(buf) {
			break
		}
		afterLen, afterPres := baseUnit(buf, afterPos)
		if afterLen == 0 || !emojiCapable(buf[afterPos], afterPres) {
			break
		}
		length = length + 1 + afterLen
		pres = PresentationEmoji
	}

	return length, pres
}

// emojiCapable reports whether the unit starting with base r (which
// resolved to presentation pres) is eligible to follow a ZWJ and extend an
// Emoji run (spec.md §4.3 rule 6: "another emoji-presentation-capable
// unit").
func emojiCapable(r rune, pres PresentationStyle) bool {
	return pres == PresentationEmoji || hasEmoji(r)
}

// baseUnit parses one non-ZWJ-joined unit: a flag pair, a tag sequence, a
// keycap sequence, a modifier-base+modifier pair, a base+variation
// selector pair, or a single scalar.
func baseUnit(buf []rune, pos int) (length int, pres PresentationStyle) {
	r := buf[pos]
	cat := emojiCategoryOf(r)

	switch cat {
	case EmojiCategoryRegionalIndicator:
		// Rule 4: two consecutive regional indicators form one flag unit;
		// a third starts a new pair.
		if pos+1 < len(buf) && emojiCategoryOf(buf[pos+1]) == EmojiCategoryRegionalIndicator {
			return 2, PresentationEmoji
		}
		return 1, PresentationEmoji

	case EmojiCategoryTagBase:
		if n, ok := parseTagSequence(buf, pos); ok {
			return n, PresentationEmoji
		}
		// A lone black flag still defaults to emoji presentation.
		return 1, presentationDefault(r)

	case EmojiCategoryKeyCapBase:
		if n, ok := parseKeyCapSequence(buf, pos); ok {
			return n, PresentationEmoji
		}
		return 1, PresentationText
	}

	// Rule 2: modifier base immediately followed by a modifier.
	if hasEmojiModifierBase(r) && pos+1 < len(buf) && emojiCategoryOf(buf[pos+1]) == EmojiCategoryEmojiModifier {
		return 2, PresentationEmoji
	}

	// Rule 1: variation selector immediately following the base.
	if pos+1 < len(buf) {
		switch emojiCategoryOf(buf[pos+1]) {
		case EmojiCategoryVS15:
			return 2, PresentationText
		case EmojiCategoryVS16:
			return 2, PresentationEmoji
		}
	}

	return 1, presentationDefault(r)
}

// presentationDefault implements spec.md §4.3's classification of a
// single scalar before sequence rules are applied.
func presentationDefault(r rune) PresentationStyle {
	if hasEmojiPresentation(r) {
		return PresentationEmoji
	}
	return PresentationText
}

// parseTagSequence matches rule 5: TagBase TagSequence* TagTerm.
func parseTagSequence(buf []rune, pos int) (length int, ok bool) {
	i := pos + 1
	for i < len(buf) && emojiCategoryOf(buf[i]) == EmojiCategoryTagSequence {
		i++
	}
	if i == pos+1 || i >= len(buf) || emojiCategoryOf(buf[i]) != EmojiCategoryTagTerm {
		return 0, false
	}
	return i + 1 - pos, true
}

// parseKeyCapSequence matches rule 3: KeyCapBase [VS16] CombiningEnclosingKeyCap.
func parseKeyCapSequence(buf []rune, pos int) (length int, ok bool) {
	i := pos + 1
	if i < len(buf) && emojiCategoryOf(buf[i]) == EmojiCategoryVS16 {
		i++
	}
	if i >= len(buf) || emojiCategoryOf(buf[i]) != EmojiCategoryCombiningEnclosingKeyCap {
		return 0, false
	}
	return i + 1 - pos, true
}
