package grid

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Edges are half-open: the left/top edge is inside, the right/bottom is not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CellPos identifies a single cell by row and column index.
type CellPos struct {
	Row, Col int
}

// CellRange is a rectangular block of cells, half-open on both axes:
// rows [StartRow, EndRow) by columns [StartCol, EndCol).
type CellRange struct {
	StartRow, EndRow int
	StartCol, EndCol int
}

// IsEmpty reports whether the range covers no cells.
func (c CellRange) IsEmpty() bool {
	return c.EndRow <= c.StartRow || c.EndCol <= c.StartCol
}

// Rows returns the number of rows the range spans.
func (c CellRange) Rows() int {
	return c.EndRow - c.StartRow
}

// Cols returns the number of columns the range spans.
func (c CellRange) Cols() int {
	return c.EndCol - c.StartCol
}

// Contains reports whether the cell at (row, col) lies inside the range.
func (c CellRange) Contains(row, col int) bool {
	return row >= c.StartRow && row < c.EndRow && col >= c.StartCol && col < c.EndCol
}

// Union returns the smallest range covering both c and other.
func (c CellRange) Union(other CellRange) CellRange {
	return CellRange{
		StartRow: min(c.StartRow, other.StartRow),
		EndRow:   max(c.EndRow, other.EndRow),
		StartCol: min(c.StartCol, other.StartCol),
		EndCol:   max(c.EndCol, other.EndCol),
	}
}
