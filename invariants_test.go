package scriptrun

import "testing"

// buffersForInvariants exercises plain text, mixed scripts, and the
// sequence-rule-heavy emoji constructs together, so the universal
// invariants (spec.md §8) are checked against the same inputs the
// seed-scenario tests use individually.
func buffersForInvariants() [][]rune {
	return [][]rune{
		nil,
		[]rune("hello"),
		[]rune{'A', 0x1F600},
		[]rune{'A', 'B', 0x1F600, 'C', 'D'},
		{0x0646, 0x0635, 0xCD1C, 0xC2A4, 0xC758},
		{0x1F600, runeVS15},
		{0x1F3F4, 0xE0067, 0xE0062, 0xE0073, 0xE0063, 0xE0074, runeTagTerm},
		{0x1F469, runeZWJ, 0x1F469, runeZWJ, 0x1F467, runeZWJ, 0x1F466,
			'a', 'b', 'c', 'd',
			0x1F469, runeZWJ, 0x1F469,
			runeZWJ, 'e', 'f', 'g'},
		{0xD800, 'x', 0x10000}, // malformed: lone surrogate, then an assigned scalar
	}
}

func TestInvariantCoverageAndMonotonicity(t *testing.T) {
	for _, buf := range buffersForInvariants() {
		rs := NewRunSegmenter(buf)
		pos := 0
		lastStart := -1
		for {
			r, ok := rs.Consume()
			if !ok {
				break
			}
			if r.Start != pos {
				t.Fatalf("buf %v: range %+v does not continue coverage at %d", buf, r, pos)
			}
			if r.End <= r.Start {
				t.Fatalf("buf %v: range %+v has end <= start", buf, r)
			}
			if r.Start <= lastStart {
				t.Fatalf("buf %v: range %+v start not strictly increasing after %d", buf, r, lastStart)
			}
			lastStart = r.Start
			pos = r.End
		}
		if pos != len(buf) {
			t.Fatalf("buf %v: coverage ended at %d, want %d", buf, pos, len(buf))
		}
	}
}

func TestInvariantMaximality(t *testing.T) {
	for _, buf := range buffersForInvariants() {
		ranges := Segment(buf)
		for i := 1; i < len(ranges); i++ {
			prev, cur := ranges[i-1], ranges[i]
			if prev.Script == cur.Script && prev.Presentation == cur.Presentation {
				t.Fatalf("buf %v: adjacent ranges %+v and %+v share (script, presentation)", buf, prev, cur)
			}
		}
	}
}

func TestInvariantDeterminism(t *testing.T) {
	for _, buf := range buffersForInvariants() {
		first := Segment(buf)
		second := Segment(buf)
		if len(first) != len(second) {
			t.Fatalf("buf %v: non-deterministic range count %d vs %d", buf, len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("buf %v: range %d differs across runs: %+v vs %+v", buf, i, first[i], second[i])
			}
		}
	}
}

func TestInvariantInheritanceClosure(t *testing.T) {
	for _, buf := range buffersForInvariants() {
		hasConcreteScript := false
		for _, r := range buf {
			s := scriptOf(r)
			if s != ScriptCommon && s != ScriptInherited {
				hasConcreteScript = true
				break
			}
		}
		for _, r := range Segment(buf) {
			if r.Script == ScriptInherited {
				t.Fatalf("buf %v: emitted range %+v carries Inherited", buf, r)
			}
			if r.Script == ScriptCommon && hasConcreteScript {
				t.Fatalf("buf %v: emitted range %+v carries Common but buffer has a concrete-script scalar", buf, r)
			}
		}
	}
}
