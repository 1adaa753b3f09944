package quire

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

func boxLine(index int, content string, x0, y0, x1, y1 int) text.Line {
	b := geom.Box{X0: x0, Y0: y0, X1: x1, Y1: y1}
	return text.New(index, content, geom.Geometry{Box: &b})
}

func TestReconstructSingleColumn(t *testing.T) {
	var lines []text.Line
	for i := 7; i >= 0; i-- {
		lines = append(lines, boxLine(i, fmt.Sprintf("line %d", i), 100, 100+50*i, 600, 120+50*i))
	}
	page := geom.Page{Width: 1000, Height: 800}

	result := Reconstruct(lines, page)

	want := "line 0\nline 1\nline 2\nline 3\nline 4\nline 5\nline 6\nline 7"
	if got := result.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	for i, l := range result.Lines {
		if l.Index != i {
			t.Errorf("Lines[%d].Index = %d", i, l.Index)
		}
	}
}

func TestReconstructRightToLeft(t *testing.T) {
	lines := []text.Line{
		boxLine(0, "A", 40, 10, 240, 30),
		boxLine(1, "C", 360, 10, 560, 30),
		boxLine(2, "B", 40, 40, 240, 60),
		boxLine(3, "D", 360, 40, 560, 60),
		boxLine(4, "|", 300, 0, 310, 100),
	}
	page := geom.Page{Width: 600, Height: 600}

	result := Reconstruct(lines, page, RightToLeft())

	got := make([]string, 4)
	for i, l := range result.Lines[:4] {
		got[i] = l.Text
	}
	want := []string{"C", "D", "A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestReconstructSplitsFusedLine(t *testing.T) {
	lines := []text.Line{
		boxLine(0, "intro", 100, 100, 400, 120),
		boxLine(1, "left cell      right cell", 10, 300, 590, 320),
	}
	page := geom.Page{Width: 600, Height: 600}

	result := Reconstruct(lines, page)

	want := []string{"intro", "left cell", "right cell"}
	got := make([]string, len(result.Lines))
	for i, l := range result.Lines {
		got[i] = l.Text
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("texts = %v, want %v", got, want)
	}
	if result.Lines[1].Box.X1 != 300 || result.Lines[2].Box.X0 != 300 {
		t.Errorf("split boxes = %+v, %+v, want halves at page mid",
			*result.Lines[1].Box, *result.Lines[2].Box)
	}
	for i, l := range result.Lines {
		if l.Index != i {
			t.Errorf("Lines[%d].Index = %d", i, l.Index)
		}
	}
}

func TestReconstructGridModes(t *testing.T) {
	lines := []text.Line{
		boxLine(0, "Name | Value", 100, 100, 700, 120),
		boxLine(1, "alpha | 1", 100, 140, 700, 160),
	}
	page := geom.Page{Width: 1000, Height: 400}

	flat := Reconstruct(lines, page).Grid()
	if want := [][]string{{"Name | Value"}, {"alpha | 1"}}; !reflect.DeepEqual(flat, want) {
		t.Errorf("default Grid() = %v, want %v", flat, want)
	}

	table := Reconstruct(lines, page, WithTable()).Grid()
	if want := [][]string{{"Name", "Value"}, {"alpha", "1"}}; !reflect.DeepEqual(table, want) {
		t.Errorf("table Grid() = %v, want %v", table, want)
	}
}

func TestReconstructLanguageFilter(t *testing.T) {
	lines := []text.Line{
		boxLine(0, "Größe 12", 100, 100, 400, 120),
	}
	page := geom.Page{Width: 600, Height: 400}

	result := Reconstruct(lines, page, WithLanguage("en"))
	if got := result.Text(); got != "Gre 12" {
		t.Errorf("Text() = %q, want %q", got, "Gre 12")
	}

	// Auto leaves the text untouched.
	result = Reconstruct(lines, page)
	if got := result.Text(); got != "Größe 12" {
		t.Errorf("Text() = %q, want %q", got, "Größe 12")
	}
}

func TestReconstructAutoDirection(t *testing.T) {
	lines := []text.Line{
		boxLine(0, "אבג", 40, 10, 240, 30),
		boxLine(1, "גדה", 360, 10, 560, 30),
		boxLine(2, "דהו", 40, 40, 240, 60),
		boxLine(3, "והז", 360, 40, 560, 60),
		boxLine(4, "|", 300, 0, 310, 100),
	}
	page := geom.Page{Width: 600, Height: 600}

	result := Reconstruct(lines, page, AutoDirection())

	// Hebrew text flips the column order to right-to-left.
	got := make([]string, 4)
	for i, l := range result.Lines[:4] {
		got[i] = l.Text
	}
	want := []string{"גדה", "והז", "אבג", "דהו"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestReconstructInputUntouched(t *testing.T) {
	lines := []text.Line{
		boxLine(5, "Größe", 100, 100, 400, 120),
	}
	Reconstruct(lines, geom.Page{Width: 600, Height: 400}, WithLanguage("en"))

	if lines[0].Text != "Größe" || lines[0].Index != 5 {
		t.Errorf("input mutated: %+v", lines[0])
	}
}
