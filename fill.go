package grid

// FillAxis is the direction of a fill-handle drag.
type FillAxis int

const (
	// FillVertical extends the selection into rows above or below it.
	FillVertical FillAxis = iota
	// FillHorizontal extends the selection into columns beside it.
	FillHorizontal
)

// String returns "vertical" or "horizontal".
func (a FillAxis) String() string {
	if a == FillHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// FillMode selects how a committed fill writes values into the target.
type FillMode int

const (
	// FillCopy repeats the source values verbatim.
	FillCopy FillMode = iota
	// FillSeries continues detected numeric/date series.
	FillSeries
	// FillFormulas copies formulas with relative references adjusted.
	FillFormulas
)

// FillPreview describes an in-progress fill-handle drag: the original
// selection, the direction the drag extends it, the newly covered cells,
// and the union of the two. It is purely descriptive; writing values is the
// caller's job once the drag commits.
type FillPreview struct {
	Source CellRange
	Axis   FillAxis
	Target CellRange // cells the fill would write, disjoint from Source
	Union  CellRange // Source ∪ Target
}

// FillCommit is the completed drag handed to whatever applies the fill.
type FillCommit struct {
	Source CellRange
	Target CellRange
	Mode   FillMode
}

// ComputeFillPreview maps a source selection and the pointer-hovered cell
// to a drag preview. It reports false when the pointer is inside the source
// on both axes, i.e. there is no extension to preview.
//
// When the pointer is outside on both axes the larger extension wins, and a
// tie goes to the vertical axis. That tie-break is a deliberate convention
// for diagonal drags, not an artifact; keep it.
func ComputeFillPreview(source CellRange, pointer CellPos) (FillPreview, bool) {
	rowExt := extension(pointer.Row, source.StartRow, source.EndRow)
	colExt := extension(pointer.Col, source.StartCol, source.EndCol)
	if rowExt == 0 && colExt == 0 {
		return FillPreview{}, false
	}

	vertical := colExt == 0 || (rowExt != 0 && abs(rowExt) >= abs(colExt))

	p := FillPreview{Source: source}
	if vertical {
		p.Axis = FillVertical
		if rowExt > 0 {
			p.Target = CellRange{
				StartRow: source.EndRow, EndRow: pointer.Row + 1,
				StartCol: source.StartCol, EndCol: source.EndCol,
			}
		} else {
			p.Target = CellRange{
				StartRow: pointer.Row, EndRow: source.StartRow,
				StartCol: source.StartCol, EndCol: source.EndCol,
			}
		}
	} else {
		p.Axis = FillHorizontal
		if colExt > 0 {
			p.Target = CellRange{
				StartRow: source.StartRow, EndRow: source.EndRow,
				StartCol: source.EndCol, EndCol: pointer.Col + 1,
			}
		} else {
			p.Target = CellRange{
				StartRow: source.StartRow, EndRow: source.EndRow,
				StartCol: pointer.Col, EndCol: source.StartCol,
			}
		}
	}
	p.Union = source.Union(p.Target)
	return p, true
}

// extension returns the signed distance by which v falls outside the
// half-open interval [start, end): negative before it, positive past it,
// zero inside.
func extension(v, start, end int) int {
	if v < start {
		return v - start
	}
	if v >= end {
		return v - end + 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// HandleProvider supplies the current fill-handle rectangle, typically the
// small square the renderer draws on the selection's bottom-right corner.
// ok is false when no selection handle is on screen.
type HandleProvider interface {
	SelectionHandleRect() (r Rect, ok bool)
}

// HitTestSelectionHandle reports whether the point (x, y) hits the
// selection's fill handle.
func HitTestSelectionHandle(p HandleProvider, x, y float64) bool {
	r, ok := p.SelectionHandleRect()
	return ok && r.Contains(x, y)
}
