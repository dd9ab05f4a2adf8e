// Package main is an interactive terminal viewer for the grid engine. It
// proves the engine is renderer-agnostic: the same axes and viewport that
// drive a pixel canvas here drive a character grid, with one terminal cell
// per pixel unit and a runewidth-based measurer for column auto-fit.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/internal/sheet"
)

var (
	xlsxPath string
	rowCount int
	colCount int
)

const (
	defaultColWidth = 12.0
	statusHeight    = 1
)

// Styles are package-level so View allocates none per frame.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	frozenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	statusStyle = lipgloss.NewStyle().Reverse(true)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridtui",
		Short: "Scroll a million-row virtualized grid in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newModel()
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Workbook to view (first sheet)")
	rootCmd.Flags().IntVar(&rowCount, "rows", 1_000_000, "Synthetic sheet row count")
	rootCmd.Flags().IntVar(&colCount, "cols", 1000, "Synthetic sheet column count")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// monoMeasurer measures text in terminal cells. Width honors East Asian
// double-width runes; every string is one row tall.
type monoMeasurer struct{}

func (monoMeasurer) MeasureText(s string, _ float64) (w, h float64) {
	return float64(runewidth.StringWidth(s)), 1
}

type model struct {
	vp  *grid.Viewport
	src sheet.Source

	fitter *grid.AutoFitter
	status string
}

func newModel() (*model, error) {
	// One terminal row per grid row; columns default to 12 cells.
	rows, err := grid.NewAxis(1)
	if err != nil {
		return nil, err
	}
	cols, err := grid.NewAxis(defaultColWidth)
	if err != nil {
		return nil, err
	}

	var src sheet.Source
	if xlsxPath != "" {
		wb, err := sheet.OpenWorkbook(xlsxPath)
		if err != nil {
			return nil, err
		}
		src = wb
	} else {
		src = sheet.NewSynthetic(rowCount, colCount)
	}

	vp, err := grid.NewViewport(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := vp.SetCounts(src.Rows(), src.Cols()); err != nil {
		return nil, err
	}
	if err := vp.SetFrozen(1, 1); err != nil {
		return nil, err
	}

	fitter, err := grid.NewAutoFitter(rows, cols, monoMeasurer{}, grid.WithCellPadding(1, 0))
	if err != nil {
		return nil, err
	}

	return &model{vp: vp, src: src, fitter: fitter}, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		_ = m.vp.SetViewportSize(float64(msg.Width), float64(msg.Height-statusHeight))

	case tea.KeyMsg:
		st := m.vp.State()
		pageH := st.Height - st.FrozenHeight
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			_ = m.vp.ScrollBy(0, -1)
		case "down", "j":
			_ = m.vp.ScrollBy(0, 1)
		case "left", "h":
			_ = m.vp.ScrollBy(-defaultColWidth, 0)
		case "right", "l":
			_ = m.vp.ScrollBy(defaultColWidth, 0)
		case "pgup", "b":
			_ = m.vp.ScrollBy(0, -pageH)
		case "pgdown", "f", " ":
			_ = m.vp.ScrollBy(0, pageH)
		case "home", "g":
			_ = m.vp.SetScroll(0, 0)
		case "end", "G":
			maxScroll := m.vp.MaxScroll()
			_ = m.vp.SetScroll(m.vp.Scroll().X, maxScroll.Y)
		case "a":
			m.autoFitVisible()
		}
	}
	return m, nil
}

// autoFitVisible fits every visible column to its on-screen content.
func (m *model) autoFitVisible() {
	st := m.vp.State()
	for c := st.Cols.Start; c < st.Cols.End; c++ {
		if err := m.fitter.FitColumnWidth(cellSource{m.src}, c, st.Rows.Start, st.Rows.End); err != nil {
			m.status = err.Error()
			return
		}
	}
	m.status = "auto-fit visible columns"
}

type cellSource struct{ s sheet.Source }

func (c cellSource) CellText(row, col int) (string, bool) { return c.s.CellText(row, col) }

func (m *model) View() string {
	st := m.vp.State()
	if st.Height <= 0 || st.Width <= 0 {
		return ""
	}
	cols := m.vp.ColAxis()

	var b strings.Builder

	// Frozen header rows, then the scrollable rows.
	for r := 0; r < st.FrozenRows; r++ {
		m.renderRow(&b, st, cols, r, headerStyle)
	}
	for r := st.Rows.Start; r < st.Rows.End; r++ {
		m.renderRow(&b, st, cols, r, cellStyle)
	}

	// Pad to full height so the status line stays at the bottom.
	rendered := st.FrozenRows + (st.Rows.End - st.Rows.Start)
	for i := rendered; i < int(st.Height); i++ {
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.statusLine(st)))
	return b.String()
}

// renderRow writes one text row: frozen columns first, then the visible
// scrollable columns, each clipped and padded to its axis width.
func (m *model) renderRow(b *strings.Builder, st *grid.ViewportState, cols *grid.Axis, row int, style lipgloss.Style) {
	budget := int(st.Width)

	for c := 0; c < st.FrozenCols && budget > 0; c++ {
		cell := m.renderCell(row, c, int(cols.GetSize(c)), budget)
		b.WriteString(frozenStyle.Render(cell))
		budget -= runewidth.StringWidth(cell)
	}
	for c := st.Cols.Start; c < st.Cols.End && budget > 0; c++ {
		cell := m.renderCell(row, c, int(cols.GetSize(c)), budget)
		b.WriteString(style.Render(cell))
		budget -= runewidth.StringWidth(cell)
	}
	b.WriteString("\n")
}

func (m *model) renderCell(row, col, width, budget int) string {
	if width > budget {
		width = budget
	}
	text, _ := m.src.CellText(row, col)
	return runewidth.FillRight(runewidth.Truncate(text, width, "…"), width)
}

func (m *model) statusLine(st *grid.ViewportState) string {
	line := fmt.Sprintf(" %s  row %d/%d  col %d/%d  [a]utofit [g/G] top/bottom [q]uit  %s",
		scrollGauge(st), st.Rows.Start+1, m.src.Rows(), st.Cols.Start+1, m.src.Cols(), m.status)
	return runewidth.FillRight(runewidth.Truncate(line, int(st.Width), ""), int(st.Width))
}

// scrollGauge renders the vertical scrollbar thumb as a 20-cell track.
func scrollGauge(st *grid.ViewportState) string {
	const track = 20
	thumb := grid.ComputeScrollbarThumb(st.ScrollY, st.Height-st.FrozenHeight,
		st.TotalHeight-st.FrozenHeight, track, 1)
	gauge := []rune(strings.Repeat("·", track))
	for i := int(thumb.Offset); i < int(thumb.Offset+thumb.Size) && i < track; i++ {
		gauge[i] = '█'
	}
	return "[" + string(gauge) + "]"
}
