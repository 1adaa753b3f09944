package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteXLSX writes the grid to a single-sheet XLSX workbook.
func WriteXLSX(w io.Writer, grid [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range grid {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			if err := f.SetCellValue(sheetName, name, cell); err != nil {
				return fmt.Errorf("setting cell %s: %w", name, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
