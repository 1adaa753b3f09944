// Package pdftext extracts positioned text lines from born-digital
// PDFs, as an alternative ingestion path to OCR. Coordinates are
// flipped from the PDF bottom-left origin to the top-left origin the
// layout engine expects.
package pdftext

import (
	"fmt"
	"math"

	"github.com/ledongthuc/pdf"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

// Result is the positioned text of one PDF page.
type Result struct {
	Lines []text.Line
	Page  geom.Page
}

// defaultFontSize stands in when a glyph run carries no size.
const defaultFontSize = 12.0

// Extract returns the positioned text of every page of a PDF.
// Pages that fail to extract are skipped.
func Extract(path string) ([]*Result, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var results []*Result
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		r, err := extractPage(page)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// ExtractPage returns the positioned text of one page (1-based).
func ExtractPage(path string, pageNum int) (*Result, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	if pageNum < 1 || pageNum > reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range (1..%d)", pageNum, reader.NumPage())
	}
	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d is empty", pageNum)
	}
	r, err := extractPage(page)
	if err != nil {
		return nil, fmt.Errorf("extracting page %d: %w", pageNum, err)
	}
	return r, nil
}

func extractPage(page pdf.Page) (*Result, error) {
	w, h := mediaBox(page)
	dims := geom.Page{Width: int(math.Round(w)), Height: int(math.Round(h))}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("reading text rows: %w", err)
	}

	var lines []text.Line
	for _, row := range rows {
		l, ok := rowLine(len(lines), row, dims)
		if !ok {
			continue
		}
		lines = append(lines, l)
	}
	return &Result{Lines: lines, Page: dims}, nil
}

// rowLine folds one extracted row's glyph runs into a line record with
// a synthesized box, clamped to the page. Gaps between runs wider than
// a fraction of the font size become spaces; the layout engine's
// wide-line splitting recovers column structure from the rest.
func rowLine(index int, row *pdf.Row, page geom.Page) (text.Line, bool) {
	if len(row.Content) == 0 {
		return text.Line{}, false
	}

	var (
		content  []byte
		x0       = math.Inf(1)
		x1       = math.Inf(-1)
		fontSize = defaultFontSize
		prevEnd  = math.Inf(-1)
	)
	for _, t := range row.Content {
		if t.S == "" {
			continue
		}
		if t.FontSize > 0 {
			fontSize = t.FontSize
		}
		if prevEnd > math.Inf(-1) && t.X-prevEnd > 0.25*fontSize {
			content = append(content, ' ')
		}
		content = append(content, t.S...)
		if t.X < x0 {
			x0 = t.X
		}
		if end := t.X + t.W; end > x1 {
			x1 = end
		}
		prevEnd = t.X + t.W
	}
	if len(content) == 0 {
		return text.Line{}, false
	}

	// Row.Position is the baseline y in PDF coordinates (origin at the
	// bottom of the page).
	baseline := float64(row.Position)
	pageH := float64(page.Height)
	box := geom.Box{
		X0: int(math.Round(x0)),
		Y0: int(math.Round(pageH - baseline - fontSize)),
		X1: int(math.Round(x1)),
		Y1: int(math.Round(pageH - baseline)),
	}
	if clamped, ok := box.Clamp(page); ok {
		box = clamped
	}
	return text.New(index, string(content), geom.Geometry{Box: &box}), true
}

// mediaBox reads the page dimensions, defaulting to US Letter when the
// entry is missing or malformed.
func mediaBox(page pdf.Page) (w, h float64) {
	w, h = 612, 792
	mb := page.V.Key("MediaBox")
	if mb.IsNull() || mb.Len() < 4 {
		return w, h
	}
	x0 := mb.Index(0).Float64()
	y0 := mb.Index(1).Float64()
	x1 := mb.Index(2).Float64()
	y1 := mb.Index(3).Float64()
	if x1 > x0 && y1 > y0 {
		w, h = x1-x0, y1-y0
	}
	return w, h
}
