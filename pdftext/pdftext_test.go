package pdftext

import (
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/quirelab/quire/geom"
)

func run(s string, x, w, size float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w, FontSize: size}
}

func TestRowLine(t *testing.T) {
	row := &pdf.Row{
		Position: 700,
		Content: pdf.TextHorizontal{
			run("Reg", 72, 20, 10),
			run("ister", 92, 24, 10),
			run("of", 130, 12, 10),
			run("Deeds", 148, 36, 10),
		},
	}

	line, ok := rowLine(0, row, geom.Page{Width: 612, Height: 792})
	if !ok {
		t.Fatal("rowLine() returned ok=false")
	}
	// Runs 20pt+ apart get a space, adjacent runs do not.
	if line.Text != "Register of Deeds" {
		t.Errorf("Text = %q, want %q", line.Text, "Register of Deeds")
	}
	want := geom.Box{X0: 72, Y0: 82, X1: 184, Y1: 92}
	if line.Box == nil || *line.Box != want {
		t.Errorf("Box = %v, want %+v", line.Box, want)
	}
}

func TestRowLineEmpty(t *testing.T) {
	if _, ok := rowLine(0, &pdf.Row{Position: 100}, geom.Page{Width: 612, Height: 792}); ok {
		t.Error("rowLine() on empty row returned ok=true")
	}
	row := &pdf.Row{Position: 100, Content: pdf.TextHorizontal{run("", 10, 0, 10)}}
	if _, ok := rowLine(0, row, geom.Page{Width: 612, Height: 792}); ok {
		t.Error("rowLine() on blank row returned ok=true")
	}
}

func TestExtractMissingFile(t *testing.T) {
	if _, err := Extract("testdata/does-not-exist.pdf"); err == nil {
		t.Error("Extract() on missing file succeeded")
	}
}

func TestExtractPageOutOfRangePath(t *testing.T) {
	if _, err := ExtractPage("testdata/does-not-exist.pdf", 1); err == nil {
		t.Error("ExtractPage() on missing file succeeded")
	}
}
