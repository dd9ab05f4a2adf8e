package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Excel stores column widths in "number of characters of the default font"
// and row heights in points; the conversions below are the conventional
// approximations for a 96 DPI 11pt default font.
const (
	colWidthToPx  = 7.0
	rowHeightToPx = 96.0 / 72.0
)

// Workbook adapts the first sheet of an .xlsx file to Source. All cell
// values are read once at open time; spreadsheet files are static inputs
// for the demos, so there is no point in lazy per-cell queries.
type Workbook struct {
	sheetName string
	cells     [][]string
	cols      int

	rowOverrides map[int]float64
	colOverrides map[int]float64
}

// OpenWorkbook reads the first sheet of the workbook at path.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("sheet: workbook %q has no sheets", path)
	}
	cells, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("sheet: read rows of %q: %w", name, err)
	}

	w := &Workbook{
		sheetName:    name,
		cells:        cells,
		rowOverrides: make(map[int]float64),
		colOverrides: make(map[int]float64),
	}
	for _, row := range cells {
		w.cols = max(w.cols, len(row))
	}
	w.readSizes(f)
	return w, nil
}

// readSizes collects the explicitly sized rows and columns of the used
// range. Excelize reports the sheet default for unsized entries, so sizes
// equal to the defaults are skipped here and the remainder feeds straight
// into Axis.SetOverrides.
func (w *Workbook) readSizes(f *excelize.File) {
	defaultRowH, _ := f.GetRowHeight(w.sheetName, 1)
	defaultColW := 0.0
	if name, err := excelize.ColumnNumberToName(1); err == nil {
		defaultColW, _ = f.GetColWidth(w.sheetName, name)
	}

	for r := range w.cells {
		h, err := f.GetRowHeight(w.sheetName, r+1)
		if err != nil || h == defaultRowH {
			continue
		}
		w.rowOverrides[r] = h * rowHeightToPx
	}
	for c := 0; c < w.cols; c++ {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			continue
		}
		cw, err := f.GetColWidth(w.sheetName, name)
		if err != nil || cw == defaultColW {
			continue
		}
		w.colOverrides[c] = cw * colWidthToPx
	}
}

// SheetName returns the name of the adapted sheet.
func (w *Workbook) SheetName() string { return w.sheetName }

func (w *Workbook) Rows() int { return len(w.cells) }
func (w *Workbook) Cols() int { return w.cols }

func (w *Workbook) CellText(row, col int) (string, bool) {
	if row < 0 || row >= len(w.cells) {
		return "", false
	}
	r := w.cells[row]
	if col < 0 || col >= len(r) || r[col] == "" {
		return "", false
	}
	return r[col], true
}

// RowOverrides returns the explicitly sized rows in pixels, keyed by
// zero-based row index, ready for Axis.SetOverrides.
func (w *Workbook) RowOverrides() map[int]float64 { return w.rowOverrides }

// ColOverrides returns the explicitly sized columns in pixels, keyed by
// zero-based column index.
func (w *Workbook) ColOverrides() map[int]float64 { return w.colOverrides }
