package text

import "github.com/quirelab/quire/geom"

// Line is one recognized text line. Lines are produced by a recognizer
// adapter (or synthesized from positioned PDF text) and are immutable
// once built; the engine only ever re-derives the Index of its output
// ordering.
type Line struct {
	// Index is the positional identity of the line within a page.
	Index int

	// Text is the recognized content.
	Text string

	// Geometry is whatever shape information the recognizer reported.
	Geometry geom.Geometry

	// Box is the canonical box resolved from Geometry, or nil when no
	// usable geometry exists. A nil box excludes the line from layout
	// decisions but never from the output sequence.
	Box *geom.Box
}

// New builds a line record, resolving the canonical box from the given
// geometry. Degenerate geometry yields a record with a nil box.
func New(index int, content string, g geom.Geometry) Line {
	l := Line{
		Index:    index,
		Text:     content,
		Geometry: g,
	}
	if b, ok := g.Resolve(); ok {
		l.Box = &b
	}
	return l
}

// Reindex returns the lines with Index rewritten to 0..n-1 in slice
// order.
func Reindex(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		out[i].Index = i
	}
	return out
}
