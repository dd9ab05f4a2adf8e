package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnName(tt.col), "ColumnName(%d)", tt.col)
	}
}

func TestSynthetic(t *testing.T) {
	s := NewSynthetic(100, 30)
	assert.Equal(t, 100, s.Rows())
	assert.Equal(t, 30, s.Cols())

	text, ok := s.CellText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "A1", text)

	text, ok = s.CellText(9, 26)
	require.True(t, ok)
	assert.Equal(t, "AA10", text)

	_, ok = s.CellText(100, 0)
	assert.False(t, ok, "row past the end must report no content")
	_, ok = s.CellText(0, -1)
	assert.False(t, ok)
}

// writeTestWorkbook builds a small .xlsx with one resized row and column.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheetName, "A1", "name"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "amount"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", "widget"))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 42))
	require.NoError(t, f.SetCellValue(sheetName, "C3", "stray"))
	require.NoError(t, f.SetColWidth(sheetName, "B", "B", 30))
	require.NoError(t, f.SetRowHeight(sheetName, 2, 45))

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenWorkbook(t *testing.T) {
	path := writeTestWorkbook(t)

	w, err := OpenWorkbook(path)
	require.NoError(t, err)

	assert.Equal(t, 3, w.Rows())
	assert.Equal(t, 3, w.Cols())

	text, ok := w.CellText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "name", text)

	text, ok = w.CellText(1, 1)
	require.True(t, ok)
	assert.Equal(t, "42", text)

	_, ok = w.CellText(2, 0)
	assert.False(t, ok, "empty cell must report no content")
	_, ok = w.CellText(99, 0)
	assert.False(t, ok)
}

func TestWorkbookOverrides(t *testing.T) {
	path := writeTestWorkbook(t)

	w, err := OpenWorkbook(path)
	require.NoError(t, err)

	colOv := w.ColOverrides()
	require.Contains(t, colOv, 1, "column B was explicitly sized")
	assert.InDelta(t, 30*colWidthToPx, colOv[1], 1e-9)
	assert.NotContains(t, colOv, 0, "column A keeps the sheet default")

	rowOv := w.RowOverrides()
	require.Contains(t, rowOv, 1, "row 2 was explicitly sized")
	assert.InDelta(t, 45*rowHeightToPx, rowOv[1], 1e-9)
	assert.NotContains(t, rowOv, 0)
}

func TestOpenWorkbookMissingFile(t *testing.T) {
	_, err := OpenWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
