/*
Package scriptrun segments a sequence of Unicode scalar values into
maximal runs that are homogeneous in both writing script and emoji
presentation.

# Overview

Text shaping needs runs of uniform script and presentation before it can
pick a font and shape glyphs. This package provides the first pass of
that pipeline:

  - [ScriptSegmenter] produces runs of a single Unicode script, resolving
    Common and Inherited codepoints onto their surrounding run.
  - [EmojiSegmenter] produces runs of a single presentation style (Text
    or Emoji), gluing together modifier, ZWJ, keycap, flag, and tag
    sequences into a single Emoji run.
  - [RunSegmenter] merges both streams into a single sequence of
    [Range] values, absorbing script changes inside an Emoji run so a
    ZWJ sequence is never split across runs.

# Getting started

For one-shot use over a full buffer:

	ranges := scriptrun.Segment(runes)

For incremental use, construct a [RunSegmenter] and call [RunSegmenter.Consume]
until it reports exhaustion:

	rs := scriptrun.NewRunSegmenter(runes)
	for {
		r, ok := rs.Consume()
		if !ok {
			break
		}
		// use r.Start, r.End, r.Script, r.Presentation
	}

All segmenters borrow their buffer; they do not copy it and must not
outlive it. None of them allocate during iteration.
*/
package scriptrun
