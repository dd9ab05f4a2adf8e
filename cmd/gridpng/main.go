// Package main renders one frame of a virtualized spreadsheet grid to a
// PNG. It is the canvas renderer collaborator exercised end to end: it owns
// no geometry of its own, only walks the viewport snapshot and axis queries.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/gridtext"
	"github.com/gogpu/grid/internal/sheet"
)

var (
	outPath    string
	xlsxPath   string
	width      int
	height     int
	scrollX    float64
	scrollY    float64
	frozenRows int
	frozenCols int
	rowCount   int
	colCount   int
	autoFit    bool
	dpr        float64
)

const (
	defaultRowHeight = 24.0
	defaultColWidth  = 100.0
	fontSize         = 12.0
	scrollbarWidth   = 10.0
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridpng",
		Short: "Render a virtualized grid viewport to PNG",
		Long: `gridpng builds a variable-size row/column index and a viewport over it,
scrolls to the requested position, and paints the visible cells, frozen
panes and scrollbar thumbs into a PNG.

Without --xlsx it renders a synthetic million-row sheet; with it, the
first sheet of the workbook, including its stored row/column sizes.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outPath, "output", "o", "grid.png", "Output PNG path")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Workbook to render (first sheet)")
	rootCmd.Flags().IntVar(&width, "width", 1280, "Viewport width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 720, "Viewport height in pixels")
	rootCmd.Flags().Float64Var(&scrollX, "scroll-x", 0, "Horizontal scroll position")
	rootCmd.Flags().Float64Var(&scrollY, "scroll-y", 0, "Vertical scroll position")
	rootCmd.Flags().IntVar(&frozenRows, "frozen-rows", 1, "Frozen leading rows")
	rootCmd.Flags().IntVar(&frozenCols, "frozen-cols", 1, "Frozen leading columns")
	rootCmd.Flags().IntVar(&rowCount, "rows", 1_000_000, "Synthetic sheet row count")
	rootCmd.Flags().IntVar(&colCount, "cols", 16_384, "Synthetic sheet column count")
	rootCmd.Flags().BoolVar(&autoFit, "autofit", false, "Auto-fit visible column widths to content")
	rootCmd.Flags().Float64Var(&dpr, "dpr", 1, "Device pixel ratio for scroll alignment")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	src, rows, cols, err := buildModel()
	if err != nil {
		return err
	}

	vp, err := grid.NewViewport(rows, cols)
	if err != nil {
		return err
	}
	if err := vp.SetCounts(src.Rows(), src.Cols()); err != nil {
		return err
	}
	if err := vp.SetViewportSize(float64(width), float64(height)); err != nil {
		return err
	}
	if err := vp.SetFrozen(frozenRows, frozenCols); err != nil {
		return err
	}
	aligned := grid.AlignScrollToDevicePixels(grid.Pt(scrollX, scrollY), vp.MaxScroll(), dpr)
	if err := vp.SetScroll(aligned.X, aligned.Y); err != nil {
		return err
	}

	if autoFit {
		if err := autoFitVisible(vp, src); err != nil {
			return err
		}
	}

	if err := paint(vp, src, outPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

// buildModel assembles the data source and axes, either synthetic or from
// a workbook with its stored sizes bulk-loaded as overrides.
func buildModel() (sheet.Source, *grid.Axis, *grid.Axis, error) {
	rows, err := grid.NewAxis(defaultRowHeight)
	if err != nil {
		return nil, nil, nil, err
	}
	cols, err := grid.NewAxis(defaultColWidth)
	if err != nil {
		return nil, nil, nil, err
	}

	if xlsxPath == "" {
		return sheet.NewSynthetic(rowCount, colCount), rows, cols, nil
	}

	wb, err := sheet.OpenWorkbook(xlsxPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := rows.SetOverrides(wb.RowOverrides()); err != nil {
		return nil, nil, nil, err
	}
	if err := cols.SetOverrides(wb.ColOverrides()); err != nil {
		return nil, nil, nil, err
	}
	return wb, rows, cols, nil
}

// autoFitVisible fits the columns of the visible range to their content
// using real shaped text metrics.
func autoFitVisible(vp *grid.Viewport, src sheet.Source) error {
	m, err := gridtext.NewMeasurer(goregular.TTF)
	if err != nil {
		return err
	}
	fitter, err := grid.NewAutoFitter(vp.RowAxis(), vp.ColAxis(), m, grid.WithFontSize(fontSize))
	if err != nil {
		return err
	}
	st := vp.State()
	for c := st.Cols.Start; c < st.Cols.End; c++ {
		if err := fitter.FitColumnWidth(adaptSource{src}, c, st.Rows.Start, st.Rows.End); err != nil {
			return err
		}
	}
	return nil
}

// adaptSource narrows sheet.Source to the measurement interface.
type adaptSource struct{ s sheet.Source }

func (a adaptSource) CellText(row, col int) (string, bool) { return a.s.CellText(row, col) }

func paint(vp *grid.Viewport, src sheet.Source, path string) error {
	st := vp.State()
	rows, cols := vp.RowAxis(), vp.ColAxis()

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)

	source, err := ggtext.NewFontSource(goregular.TTF)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()
	dc.SetFont(source.Face(fontSize))

	drawPane := func(rStart, rEnd, cStart, cEnd int, originX, originY float64) {
		y := originY
		for r := rStart; r < rEnd; r++ {
			x := originX
			rh := rows.GetSize(r)
			for c := cStart; c < cEnd; c++ {
				cw := cols.GetSize(c)
				if text, ok := src.CellText(r, c); ok {
					dc.SetRGB(0.1, 0.1, 0.1)
					dc.DrawString(text, x+4, y+rh-7)
				}
				x += cw
			}
			y += rh
		}
	}

	// Gridlines for the scrollable pane, offset so partially scrolled
	// rows/columns clip at the frozen boundary.
	scrollOriginY := st.FrozenHeight - st.Rows.Offset
	scrollOriginX := st.FrozenWidth - st.Cols.Offset

	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	y := scrollOriginY
	for r := st.Rows.Start; r < st.Rows.End; r++ {
		y += rows.GetSize(r)
		dc.DrawLine(0, y, float64(width), y)
	}
	x := scrollOriginX
	for c := st.Cols.Start; c < st.Cols.End; c++ {
		x += cols.GetSize(c)
		dc.DrawLine(x, 0, x, float64(height))
	}
	dc.Stroke()

	// Cell text: scrollable pane, then the frozen bands on top.
	drawPane(st.Rows.Start, st.Rows.End, st.Cols.Start, st.Cols.End, scrollOriginX, scrollOriginY)

	if st.FrozenRows > 0 || st.FrozenCols > 0 {
		// Frozen band backgrounds.
		dc.SetRGB(0.95, 0.95, 0.97)
		dc.DrawRectangle(0, 0, float64(width), st.FrozenHeight)
		dc.DrawRectangle(0, 0, st.FrozenWidth, float64(height))
		dc.Fill()

		drawPane(0, st.FrozenRows, st.Cols.Start, st.Cols.End, scrollOriginX, 0)
		drawPane(st.Rows.Start, st.Rows.End, 0, st.FrozenCols, 0, scrollOriginY)
		drawPane(0, st.FrozenRows, 0, st.FrozenCols, 0, 0)

		dc.SetRGB(0.6, 0.6, 0.6)
		dc.DrawLine(0, st.FrozenHeight, float64(width), st.FrozenHeight)
		dc.DrawLine(st.FrozenWidth, 0, st.FrozenWidth, float64(height))
		dc.Stroke()
	}

	drawScrollbars(dc, st)

	return dc.SavePNG(path)
}

func drawScrollbars(dc *gg.Context, st *grid.ViewportState) {
	w, h := float64(width), float64(height)

	vThumb := grid.ComputeScrollbarThumb(st.ScrollY, h-st.FrozenHeight,
		st.TotalHeight-st.FrozenHeight, h, 0)
	hThumb := grid.ComputeScrollbarThumb(st.ScrollX, w-st.FrozenWidth,
		st.TotalWidth-st.FrozenWidth, w, 0)

	dc.SetRGBA(0.3, 0.3, 0.3, 0.5)
	dc.DrawRectangle(w-scrollbarWidth, vThumb.Offset, scrollbarWidth, vThumb.Size)
	dc.DrawRectangle(hThumb.Offset, h-scrollbarWidth, hThumb.Size, scrollbarWidth)
	dc.Fill()
}
