package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/text"
)

func sampleLines() []text.Line {
	b := geom.Box{X0: 10, Y0: 20, X1: 300, Y1: 40}
	return []text.Line{
		text.New(0, "first line", geom.Geometry{Box: &b}),
		text.New(1, "second & last", geom.Geometry{}),
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleLines()); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	want := "first line\nsecond & last\n"
	if buf.String() != want {
		t.Errorf("WriteText wrote %q, want %q", buf.String(), want)
	}
}

func TestWriteCSV(t *testing.T) {
	grid := [][]string{
		{"Name", "Value"},
		{"with, comma", "2"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, grid); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "Name,Value\n\"with, comma\",2\n"
	if buf.String() != want {
		t.Errorf("WriteCSV wrote %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, "page.png", [][]string{{"a", "b"}}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	want := `{
  "source": "page.png",
  "rows": [
    [
      "a",
      "b"
    ]
  ]
}
`
	if buf.String() != want {
		t.Errorf("WriteJSON wrote %q, want %q", buf.String(), want)
	}
}

func TestWriteJSONEmptyGrid(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, "page.png", nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"rows": []`) {
		t.Errorf("WriteJSON wrote %q, want empty rows array", buf.String())
	}
}

func TestWriteXLSX(t *testing.T) {
	grid := [][]string{
		{"Name", "Value"},
		{"alpha", "1"},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, grid); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reading workbook back: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue(sheetName, "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "1" {
		t.Errorf("B2 = %q, want %q", got, "1")
	}
}

func TestWriteHOCR(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHOCR(&buf, sampleLines(), geom.Page{Width: 800, Height: 600}); err != nil {
		t.Fatalf("WriteHOCR: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"bbox 0 0 800 600",
		"title='bbox 10 20 300 40'>first line</span>",
		"second &amp; last",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSingleColumnGrid(t *testing.T) {
	grid := SingleColumnGrid(sampleLines())
	if len(grid) != 2 || len(grid[0]) != 1 || grid[1][0] != "second & last" {
		t.Errorf("SingleColumnGrid() = %v", grid)
	}
}
