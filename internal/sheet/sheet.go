// Package sheet provides the cell data sources the demo renderers draw
// from: a deterministic synthetic sheet for stress-testing the engine, and
// an excelize-backed adapter that exposes a real .xlsx workbook, including
// its stored row heights and column widths as axis overrides.
package sheet

import "fmt"

// Source supplies cell text for a renderer or for auto-fit measurement.
type Source interface {
	// Rows returns the total row count of the sheet.
	Rows() int
	// Cols returns the total column count of the sheet.
	Cols() int
	// CellText returns the display text of a cell. ok is false for cells
	// with no content.
	CellText(row, col int) (text string, ok bool)
}

// Synthetic is a generated sheet of arbitrary dimensions: column-letter
// headers down every cell, so any viewport position is visually
// identifiable while scrolling through millions of rows.
type Synthetic struct {
	rows, cols int
}

// NewSynthetic creates a synthetic source with the given dimensions.
func NewSynthetic(rows, cols int) *Synthetic {
	return &Synthetic{rows: rows, cols: cols}
}

func (s *Synthetic) Rows() int { return s.rows }
func (s *Synthetic) Cols() int { return s.cols }

func (s *Synthetic) CellText(row, col int) (string, bool) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return "", false
	}
	return fmt.Sprintf("%s%d", ColumnName(col), row+1), true
}

// ColumnName converts a zero-based column index to spreadsheet letters:
// 0 → A, 25 → Z, 26 → AA.
func ColumnName(col int) string {
	name := make([]byte, 0, 3)
	for col >= 0 {
		name = append([]byte{byte('A' + col%26)}, name...)
		col = col/26 - 1
	}
	return string(name)
}
