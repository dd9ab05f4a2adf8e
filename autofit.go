package grid

import "math"

// TextMeasurer measures a text string at a font size, returning its pixel
// width and height. Implementations live outside the engine: package
// gridtext shapes real fonts with go-text/typesetting, and a terminal
// frontend can measure in character cells instead.
type TextMeasurer interface {
	MeasureText(s string, size float64) (w, h float64)
}

// CellTextSource supplies cell content for auto-fit measurement. ok is
// false for cells that hold no text.
type CellTextSource interface {
	CellText(row, col int) (text string, ok bool)
}

// AutoFitter sizes rows and columns to their content by measuring cell
// text and writing the result into the axes as overrides. An auto-fitted
// size never drops below the axis default, and a band with no text at all
// resets to the default (the override is removed).
type AutoFitter struct {
	rows, cols *Axis
	measurer   TextMeasurer

	fontSize   float64
	padX, padY float64
}

// AutoFitOption configures an AutoFitter during creation.
type AutoFitOption func(*AutoFitter)

// WithFontSize sets the font size passed to the measurer. Default 12.
func WithFontSize(size float64) AutoFitOption {
	return func(f *AutoFitter) { f.fontSize = size }
}

// WithCellPadding sets the horizontal and vertical padding added on each
// side of the measured text. Default 4 and 2.
func WithCellPadding(x, y float64) AutoFitOption {
	return func(f *AutoFitter) { f.padX, f.padY = x, y }
}

// NewAutoFitter creates an auto-fitter over the given axes and measurer.
func NewAutoFitter(rows, cols *Axis, m TextMeasurer, opts ...AutoFitOption) (*AutoFitter, error) {
	if rows == nil || cols == nil {
		return nil, ErrNilAxis
	}
	if m == nil {
		return nil, &ValidationError{Op: "NewAutoFitter", Arg: "measurer", Msg: "must not be nil"}
	}
	f := &AutoFitter{rows: rows, cols: cols, measurer: m, fontSize: 12, padX: 4, padY: 2}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// FitRowHeight sizes row to the tallest cell text in columns
// [startCol, endCol).
func (f *AutoFitter) FitRowHeight(src CellTextSource, row, startCol, endCol int) error {
	if row < 0 {
		return errNonNegative("AutoFitter.FitRowHeight", "row", row)
	}
	var best float64
	for col := max(startCol, 0); col < endCol; col++ {
		text, ok := src.CellText(row, col)
		if !ok || text == "" {
			continue
		}
		_, h := f.measurer.MeasureText(text, f.fontSize)
		best = math.Max(best, h+2*f.padY)
	}
	if best == 0 {
		return f.rows.DeleteSize(row)
	}
	return f.rows.SetSize(row, math.Max(best, f.rows.DefaultSize()))
}

// FitColumnWidth sizes col to the widest cell text in rows
// [startRow, endRow).
func (f *AutoFitter) FitColumnWidth(src CellTextSource, col, startRow, endRow int) error {
	if col < 0 {
		return errNonNegative("AutoFitter.FitColumnWidth", "col", col)
	}
	var best float64
	for row := max(startRow, 0); row < endRow; row++ {
		text, ok := src.CellText(row, col)
		if !ok || text == "" {
			continue
		}
		w, _ := f.measurer.MeasureText(text, f.fontSize)
		best = math.Max(best, w+2*f.padX)
	}
	if best == 0 {
		return f.cols.DeleteSize(col)
	}
	return f.cols.SetSize(col, math.Max(best, f.cols.DefaultSize()))
}
