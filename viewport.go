package grid

import "math"

// Range is a half-open index interval [Start, End) along one axis, plus the
// pixel offset of Start's leading edge relative to the scroll position.
type Range struct {
	Start, End int
	Offset     float64
}

// IsEmpty reports whether the range contains no indices.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// ViewportState is an immutable snapshot of everything a renderer needs to
// paint one frame: the viewport and scroll geometry, the frozen-pane
// extents, the total content extents, and the visible index range on each
// axis. Snapshots are produced only by Viewport.State and must not be
// mutated; reference equality between two snapshots means nothing relevant
// changed between the two reads.
type ViewportState struct {
	Width, Height          float64
	ScrollX, ScrollY       float64
	MaxScrollX, MaxScrollY float64

	FrozenRows, FrozenCols    int
	FrozenWidth, FrozenHeight float64
	TotalWidth, TotalHeight   float64

	Rows Range // visible scrollable rows
	Cols Range // visible scrollable columns
}

// viewportInputs is the complete set of scalars a snapshot depends on.
// Comparing two of these with == is the entire cache-validity check.
type viewportInputs struct {
	width, height          float64
	scrollX, scrollY       float64
	rowCount, colCount     int
	frozenRows, frozenCols int
	rowVersion, colVersion uint64
}

// Viewport composes a row axis and a column axis with frozen-pane counts,
// viewport pixel dimensions and a scroll offset into memoized ViewportState
// snapshots.
//
// State is called on every scroll and resize tick, potentially every
// animation frame during a fling. Recomputing is cheap (O(log k) per axis)
// but allocating a fresh snapshot each frame would generate garbage and
// defeat the renderer's dirty-checking, so State returns the identical
// pointer whenever none of its inputs — including the axis version
// counters — has changed. That reference stability is a contract, not an
// optimization detail.
//
// Viewport is not safe for concurrent use.
type Viewport struct {
	rows, cols *Axis

	in viewportInputs // current inputs (axis versions filled at read time)

	cached   *ViewportState
	cachedIn viewportInputs
}

// NewViewport creates a viewport manager over the given axes. The axes are
// shared with the caller: resize and auto-fit tooling mutate them directly,
// and the manager observes those mutations through the axis versions.
func NewViewport(rows, cols *Axis) (*Viewport, error) {
	if rows == nil || cols == nil {
		return nil, ErrNilAxis
	}
	return &Viewport{rows: rows, cols: cols}, nil
}

// RowAxis returns the row axis the viewport was built over.
func (v *Viewport) RowAxis() *Axis { return v.rows }

// ColAxis returns the column axis the viewport was built over.
func (v *Viewport) ColAxis() *Axis { return v.cols }

// SetCounts sets the total number of rows and columns. Frozen counts are
// re-clamped so they never exceed the totals.
func (v *Viewport) SetCounts(rowCount, colCount int) error {
	if rowCount < 0 {
		return errNonNegative("Viewport.SetCounts", "rowCount", rowCount)
	}
	if colCount < 0 {
		return errNonNegative("Viewport.SetCounts", "colCount", colCount)
	}
	v.in.rowCount = rowCount
	v.in.colCount = colCount
	v.in.frozenRows = min(v.in.frozenRows, rowCount)
	v.in.frozenCols = min(v.in.frozenCols, colCount)
	v.clampScroll()
	return nil
}

// SetViewportSize sets the viewport dimensions in pixels.
func (v *Viewport) SetViewportSize(width, height float64) error {
	if !isFinite(width) || width < 0 {
		return errNonNegativeFinite("Viewport.SetViewportSize", "width", width)
	}
	if !isFinite(height) || height < 0 {
		return errNonNegativeFinite("Viewport.SetViewportSize", "height", height)
	}
	v.in.width = width
	v.in.height = height
	v.clampScroll()
	return nil
}

// SetFrozen sets the number of leading rows and columns excluded from
// scrolling. Counts beyond the totals are clamped.
func (v *Viewport) SetFrozen(frozenRows, frozenCols int) error {
	if frozenRows < 0 {
		return errNonNegative("Viewport.SetFrozen", "frozenRows", frozenRows)
	}
	if frozenCols < 0 {
		return errNonNegative("Viewport.SetFrozen", "frozenCols", frozenCols)
	}
	v.in.frozenRows = min(frozenRows, v.in.rowCount)
	v.in.frozenCols = min(frozenCols, v.in.colCount)
	v.clampScroll()
	return nil
}

// SetScroll sets the scroll position, clamping each axis independently into
// [0, maxScroll]. Non-finite values are validation errors.
func (v *Viewport) SetScroll(x, y float64) error {
	if !isFinite(x) {
		return errFinite("Viewport.SetScroll", "x", x)
	}
	if !isFinite(y) {
		return errFinite("Viewport.SetScroll", "y", y)
	}
	maxScroll := v.MaxScroll()
	v.in.scrollX = clamp(x, 0, maxScroll.X)
	v.in.scrollY = clamp(y, 0, maxScroll.Y)
	return nil
}

// ScrollBy adjusts the scroll position by the given deltas, with the same
// clamping as SetScroll.
func (v *Viewport) ScrollBy(dx, dy float64) error {
	if !isFinite(dx) {
		return errFinite("Viewport.ScrollBy", "dx", dx)
	}
	if !isFinite(dy) {
		return errFinite("Viewport.ScrollBy", "dy", dy)
	}
	return v.SetScroll(v.in.scrollX+dx, v.in.scrollY+dy)
}

// Scroll returns the current scroll position.
func (v *Viewport) Scroll() Point {
	return Point{X: v.in.scrollX, Y: v.in.scrollY}
}

// MaxScroll returns the maximum scroll position on each axis:
// the scrollable content extent minus the scrollable viewport extent,
// floored at zero. Scrollable means total minus the frozen-pane extent.
func (v *Viewport) MaxScroll() Point {
	frozenW := v.cols.TotalSize(v.in.frozenCols)
	frozenH := v.rows.TotalSize(v.in.frozenRows)
	totalW := v.cols.TotalSize(v.in.colCount)
	totalH := v.rows.TotalSize(v.in.rowCount)
	return Point{
		X: maxScrollExtent(totalW, frozenW, v.in.width),
		Y: maxScrollExtent(totalH, frozenH, v.in.height),
	}
}

// State returns the viewport snapshot for the current inputs. If nothing
// has changed since the previous call — scroll, viewport size, counts,
// frozen counts, or either axis version — the previous snapshot is returned
// unchanged, pointer and all.
func (v *Viewport) State() *ViewportState {
	in := v.in
	in.rowVersion = v.rows.Version()
	in.colVersion = v.cols.Version()
	if v.cached != nil && in == v.cachedIn {
		return v.cached
	}

	frozenW := v.cols.TotalSize(in.frozenCols)
	frozenH := v.rows.TotalSize(in.frozenRows)
	totalW := v.cols.TotalSize(in.colCount)
	totalH := v.rows.TotalSize(in.rowCount)

	maxX := maxScrollExtent(totalW, frozenW, in.width)
	maxY := maxScrollExtent(totalH, frozenH, in.height)

	// A mutation elsewhere (axis resize, count change) may have shrunk the
	// maximum since the scroll was last set.
	scrollX := clamp(in.scrollX, 0, maxX)
	scrollY := clamp(in.scrollY, 0, maxY)

	st := &ViewportState{
		Width: in.width, Height: in.height,
		ScrollX: scrollX, ScrollY: scrollY,
		MaxScrollX: maxX, MaxScrollY: maxY,
		FrozenRows: in.frozenRows, FrozenCols: in.frozenCols,
		FrozenWidth: frozenW, FrozenHeight: frozenH,
		TotalWidth: totalW, TotalHeight: totalH,
		Rows: visible(v.rows, frozenH+scrollY, math.Max(0, in.height-frozenH), in.frozenRows, in.rowCount),
		Cols: visible(v.cols, frozenW+scrollX, math.Max(0, in.width-frozenW), in.frozenCols, in.colCount),
	}

	v.cached = st
	v.cachedIn = in
	logger().Debug("viewport state recomputed",
		"rows", st.Rows, "cols", st.Cols, "scrollX", scrollX, "scrollY", scrollY)
	return st
}

// visible wraps Axis.VisibleRange with the degenerate frozen-everything
// case short-circuited to an empty range at count.
func visible(a *Axis, scroll, viewportSize float64, frozen, count int) Range {
	if count <= frozen {
		return Range{Start: count, End: count}
	}
	return a.VisibleRange(scroll, viewportSize, frozen, count)
}

// clampScroll re-clamps the stored scroll after a geometry change so the
// stored value never drifts past the new maximum.
func (v *Viewport) clampScroll() {
	maxScroll := v.MaxScroll()
	v.in.scrollX = clamp(v.in.scrollX, 0, maxScroll.X)
	v.in.scrollY = clamp(v.in.scrollY, 0, maxScroll.Y)
}

func maxScrollExtent(total, frozen, viewport float64) float64 {
	scrollableContent := total - frozen
	scrollableViewport := math.Max(0, viewport-frozen)
	return math.Max(0, scrollableContent-scrollableViewport)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
