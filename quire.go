// Package quire reconstructs the reading order and table structure of
// recognized document pages.
//
// The input is the raw line records a recognizer produced for one page
// (text plus a box, polygon or baseline each); the output is the same
// lines in reading order, with fused column lines split and ids
// renumbered.
//
// Basic usage:
//
//	result := quire.Reconstruct(lines, page)
//	fmt.Println(result.Text())
//
// With options:
//
//	result := quire.Reconstruct(lines, page,
//	    quire.RightToLeft(),
//	    quire.WithTable(),
//	    quire.WithLanguage("de"),
//	)
//	rows := result.Grid()
//
// The lower-level geom, layout and grid packages are also available
// for callers that need individual stages.
package quire

import (
	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/layout"
	"github.com/quirelab/quire/text"
)

// Reconstruct orders the lines of one page for reading. The input is
// not modified; the result holds new line records renumbered 0..n-1.
// Reconstruction never fails: pages without recoverable structure come
// back in a simple position sort.
func Reconstruct(lines []text.Line, page geom.Page, opts ...Option) *Result {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	input := lines
	if options.language != text.LangAuto {
		input = make([]text.Line, len(lines))
		for i, l := range lines {
			l.Text = text.NormalizeLanguage(l.Text, options.language)
			input[i] = l
		}
	}

	if options.autoDirection && text.DetectLinesDirection(input) == text.RTL {
		options.mode.Horizontal = layout.RightToLeft
	}

	seq := layout.NewSequencerWithConfig(layout.SequencerConfig{Mode: options.mode})
	ordered := seq.Sequence(input, page)
	ordered = layout.SplitWideLines(ordered, page, options.mode.Horizontal)

	return &Result{
		Lines:   ordered,
		Page:    page,
		options: options.clone(),
	}
}
