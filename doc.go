// Package grid provides the virtualization and viewport engine behind a
// canvas-rendered spreadsheet grid.
//
// # Overview
//
// A grid with millions of rows cannot afford per-row bookkeeping. grid
// keeps cost proportional to what the user has actually customized and to
// what is actually on screen: an [Axis] maps index to pixel size in
// O(log k) where k is the number of size overrides (never the row count),
// and a [Viewport] composes two axes with frozen panes and a scroll offset
// into memoized [ViewportState] snapshots, one per frame at most.
//
// # Quick Start
//
//	rows, _ := grid.NewAxis(24)
//	cols, _ := grid.NewAxis(100)
//	vp, _ := grid.NewViewport(rows, cols)
//	vp.SetCounts(1_000_000, 16_384)
//	vp.SetViewportSize(1280, 720)
//
//	st := vp.State()
//	for r := st.Rows.Start; r < st.Rows.End; r++ {
//		y := rows.PositionOf(r) // paint row r at y
//		_ = y
//	}
//
// Calling State again without touching anything returns the identical
// pointer, so a renderer can dirty-check with a single comparison.
//
// # Collaborators
//
// The engine is deliberately renderer-agnostic. A renderer reads State plus
// Axis queries to decide what to paint (cmd/gridpng does this with
// github.com/gogpu/gg, cmd/gridtui with a terminal); a cell data provider
// supplies content; the [TextMeasurer] interface admits any text
// measurement backend for auto-fit sizing (package gridtext implements it
// on go-text/typesetting).
//
// Pure helpers round out frame geometry: [ComputeScrollbarThumb],
// [ComputeFillPreview], and [AlignScrollToDevicePixels].
//
// # Concurrency
//
// Everything is synchronous and single-threaded by design: operations
// complete in bounded time within a frame budget, and the objects carry no
// internal locking. One owning goroutine (typically the UI event loop) must
// serialize all access.
package grid
