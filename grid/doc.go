// Package grid reconstructs tabular structure from recognized page
// lines.
//
// The Builder turns a set of positioned lines into a two dimensional
// grid of cell strings. Lines are first grouped into rows by vertical
// position, with drawn horizontal rules acting as hard row boundaries.
// Cell columns come from one of two strategies: when the text itself
// carries column delimiters (vertical bar glyphs or underscore runs)
// the text is split on them; otherwise columns are inferred by
// clustering line left edges, the same way the layout package finds
// page columns.
//
// Like the rest of the engine the builder is pure: it never fails, it
// does not modify its input, and its output depends only on the set of
// line values, not on their order in memory.
package grid
