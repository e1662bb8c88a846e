package scriptrun

import "testing"

func TestSegmentEmptyInput(t *testing.T) {
	rs := NewRunSegmenter(nil)
	rg, ok := rs.Consume()
	if ok {
		t.Fatalf("Consume on empty buffer should report exhaustion, got %+v", rg)
	}
	if rg.Script != ScriptInvalid || rg.Presentation != PresentationText {
		t.Errorf("zeroed range = %+v, want Script=Invalid Presentation=Text", rg)
	}

	if got := Segment(nil); len(got) != 0 {
		t.Errorf("Segment(nil) = %+v, want empty", got)
	}
}

func TestSegmentRepeatedExhaustion(t *testing.T) {
	rs := NewRunSegmenter([]rune("A"))
	if _, ok := rs.Consume(); !ok {
		t.Fatal("expected one range")
	}
	for i := 0; i < 3; i++ {
		if _, ok := rs.Consume(); ok {
			t.Fatalf("call %d after exhaustion should still report exhaustion", i)
		}
	}
}

func TestSegmentLatinAndEmoji(t *testing.T) {
	// Seed scenario 2: "A😀" -> [(0,1,Latin,Text), (1,2,Latin,Emoji)].
	got := Segment([]rune{'A', 0x1F600})
	want := []Range{
		{Start: 0, End: 1, Script: ScriptLatin, Presentation: PresentationText},
		{Start: 1, End: 2, Script: ScriptLatin, Presentation: PresentationEmoji},
	}
	assertRanges(t, got, want)
}

func TestSegmentLatinEmojiLatin(t *testing.T) {
	// Seed scenario 3: "AB😀CD" -> [(0,2,Latin,Text), (2,3,Latin,Emoji), (3,5,Latin,Text)].
	got := Segment([]rune{'A', 'B', 0x1F600, 'C', 'D'})
	want := []Range{
		{Start: 0, End: 2, Script: ScriptLatin, Presentation: PresentationText},
		{Start: 2, End: 3, Script: ScriptLatin, Presentation: PresentationEmoji},
		{Start: 3, End: 5, Script: ScriptLatin, Presentation: PresentationText},
	}
	assertRanges(t, got, want)
}

func TestSegmentArabicThenHangul(t *testing.T) {
	// Seed scenario 4: Arabic then Hangul, no emoji involved.
	got := Segment([]rune{0x0646, 0x0635, 0xCD1C, 0xC2A4, 0xC758})
	want := []Range{
		{Start: 0, End: 2, Script: ScriptArabic, Presentation: PresentationText},
		{Start: 2, End: 5, Script: ScriptHangul, Presentation: PresentationText},
	}
	assertRanges(t, got, want)
}

func TestSegmentVS15ForcesTextNoAnchorScript(t *testing.T) {
	// Seed scenario 6: "😀︎" -> [(0,2,Common,Text)].
	got := Segment([]rune{0x1F600, runeVS15})
	want := []Range{
		{Start: 0, End: 2, Script: ScriptCommon, Presentation: PresentationText},
	}
	assertRanges(t, got, want)
}

func TestSegmentSubdivisionFlagSingleRun(t *testing.T) {
	// Seed scenario 7: tag sequence flag, single (0, N, Common, Emoji) range.
	seq := []rune{0x1F3F4, 0xE0067, 0xE0062, 0xE0073, 0xE0063, 0xE0074, runeTagTerm}
	got := Segment(seq)
	want := []Range{
		{Start: 0, End: len(seq), Script: ScriptCommon, Presentation: PresentationEmoji},
	}
	assertRanges(t, got, want)
}

func TestSegmentZWJFamilyThenTextThenPairThenTrailingZWJ(t *testing.T) {
	// Seed scenario 8.
	family := []rune{0x1F469, runeZWJ, 0x1F469, runeZWJ, 0x1F467, runeZWJ, 0x1F466}
	abcd := []rune{'a', 'b', 'c', 'd'}
	pair := []rune{0x1F469, runeZWJ, 0x1F469}
	tail := []rune{runeZWJ, 'e', 'f', 'g'}

	var buf []rune
	buf = append(buf, family...)
	buf = append(buf, abcd...)
	buf = append(buf, pair...)
	buf = append(buf, tail...)

	got := Segment(buf)
	if len(got) != 4 {
		t.Fatalf("got %d ranges, want 4: %+v", len(got), got)
	}
	presentations := []PresentationStyle{PresentationEmoji, PresentationText, PresentationEmoji, PresentationText}
	for i, want := range presentations {
		if got[i].Presentation != want {
			t.Errorf("range %d presentation = %v, want %v", i, got[i].Presentation, want)
		}
	}
	if got[0].Start != 0 || got[0].End != len(family) {
		t.Errorf("family run = [%d,%d), want [0,%d)", got[0].Start, got[0].End, len(family))
	}
	if got[len(got)-1].End != len(buf) {
		t.Errorf("last range end = %d, want %d", got[len(got)-1].End, len(buf))
	}
}

func TestSegmentHanDevanagariEmoji(t *testing.T) {
	// Seed scenario 5: "百家姓ऋषियों🌱🌲🌳🌴百家姓🌱🌲"
	han1 := []rune{0x767E, 0x5BB6, 0x59D3}
	devanagari := []rune{0x090B, 0x0937, 0x093F, 0x092F, 0x094B, 0x0902}
	emoji1 := []rune{0x1F331, 0x1F332, 0x1F333, 0x1F334}
	han2 := []rune{0x767E, 0x5BB6, 0x59D3}
	emoji2 := []rune{0x1F331, 0x1F332}

	var buf []rune
	buf = append(buf, han1...)
	buf = append(buf, devanagari...)
	buf = append(buf, emoji1...)
	buf = append(buf, han2...)
	buf = append(buf, emoji2...)

	got := Segment(buf)
	want := []Range{
		{Start: 0, End: 3, Script: ScriptHan, Presentation: PresentationText},
		{Start: 3, End: 9, Script: ScriptDevanagari, Presentation: PresentationText},
		{Start: 9, End: 13, Script: ScriptDevanagari, Presentation: PresentationEmoji},
		{Start: 13, End: 16, Script: ScriptHan, Presentation: PresentationText},
		{Start: 16, End: 18, Script: ScriptHan, Presentation: PresentationEmoji},
	}
	assertRanges(t, got, want)
}

func assertRanges(t *testing.T, got, want []Range) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d ranges %+v, want %d ranges %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
