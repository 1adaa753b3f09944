// Package export serializes reconstruction results: ordered line text,
// table grids as CSV, JSON or XLSX, and an hOCR rendering of the
// positioned lines.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/quirelab/quire/text"
)

// WriteText writes the ordered line texts, one per line.
func WriteText(w io.Writer, lines []text.Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l.Text); err != nil {
			return fmt.Errorf("writing text: %w", err)
		}
	}
	return nil
}

// WriteCSV writes one CSV record per grid row.
func WriteCSV(w io.Writer, grid [][]string) error {
	cw := csv.NewWriter(w)
	for _, row := range grid {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

type jsonPayload struct {
	Source string     `json:"source"`
	Rows   [][]string `json:"rows"`
}

// WriteJSON writes the grid as {"source": ..., "rows": [[...]]},
// indented.
func WriteJSON(w io.Writer, source string, grid [][]string) error {
	if grid == nil {
		grid = [][]string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonPayload{Source: source, Rows: grid}); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// SingleColumnGrid wraps each line's text in a one-cell row, the grid
// shape used when table reconstruction is off.
func SingleColumnGrid(lines []text.Line) [][]string {
	grid := make([][]string, len(lines))
	for i, l := range lines {
		grid[i] = []string{l.Text}
	}
	return grid
}
