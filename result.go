package quire

import (
	"strings"

	"github.com/quirelab/quire/export"
	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/grid"
	"github.com/quirelab/quire/text"
)

// Result is a reconstructed page: the lines in reading order with ids
// renumbered 0..n-1.
type Result struct {
	Lines []text.Line
	Page  geom.Page

	options Options
}

// Text returns the ordered line texts joined by newlines.
func (r *Result) Text() string {
	texts := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// Grid returns the page as rows of cells. In table mode rows and
// columns are reconstructed from line positions and delimiters;
// otherwise each line becomes a single-cell row in reading order.
func (r *Result) Grid() [][]string {
	if r.options.table {
		return grid.NewBuilder().Build(r.Lines, r.Page.Width)
	}
	return export.SingleColumnGrid(r.Lines)
}
