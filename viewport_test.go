package grid

import (
	"errors"
	"math"
	"testing"
)

func newTestViewport(t *testing.T) (*Viewport, *Axis, *Axis) {
	t.Helper()
	rows := mustAxis(t, 10)
	cols := mustAxis(t, 50)
	vp, err := NewViewport(rows, cols)
	if err != nil {
		t.Fatalf("NewViewport error: %v", err)
	}
	if err := vp.SetCounts(1000, 100); err != nil {
		t.Fatal(err)
	}
	if err := vp.SetViewportSize(500, 200); err != nil {
		t.Fatal(err)
	}
	return vp, rows, cols
}

func TestNewViewportNilAxis(t *testing.T) {
	rows := mustAxis(t, 10)
	if _, err := NewViewport(rows, nil); !errors.Is(err, ErrNilAxis) {
		t.Errorf("NewViewport(rows, nil) = %v, want ErrNilAxis", err)
	}
	if _, err := NewViewport(nil, rows); !errors.Is(err, ErrNilAxis) {
		t.Errorf("NewViewport(nil, cols) = %v, want ErrNilAxis", err)
	}
}

func TestViewportStateIdentity(t *testing.T) {
	vp, rows, _ := newTestViewport(t)

	st1 := vp.State()
	st2 := vp.State()
	if st1 != st2 {
		t.Fatal("State() allocated a new snapshot with no intervening mutation")
	}

	// Scrolling invalidates.
	if err := vp.SetScroll(0, 35); err != nil {
		t.Fatal(err)
	}
	st3 := vp.State()
	if st3 == st2 {
		t.Fatal("State() reused the snapshot after SetScroll")
	}

	// A size mutation on a shared axis invalidates via its version.
	if err := rows.SetSize(3, 40); err != nil {
		t.Fatal(err)
	}
	st4 := vp.State()
	if st4 == st3 {
		t.Fatal("State() reused the snapshot after an axis mutation")
	}

	// And a no-op axis call does not.
	if err := rows.SetSize(3, 40); err != nil {
		t.Fatal(err)
	}
	if vp.State() != st4 {
		t.Fatal("State() recomputed after a no-op axis mutation")
	}
}

func TestViewportStateGeometry(t *testing.T) {
	vp, _, _ := newTestViewport(t)
	if err := vp.SetScroll(120, 35); err != nil {
		t.Fatal(err)
	}

	st := vp.State()
	if st.TotalHeight != 10000 || st.TotalWidth != 5000 {
		t.Fatalf("totals = (%v, %v), want (5000, 10000)", st.TotalWidth, st.TotalHeight)
	}
	if st.MaxScrollX != 4500 || st.MaxScrollY != 9800 {
		t.Fatalf("max scroll = (%v, %v), want (4500, 9800)", st.MaxScrollX, st.MaxScrollY)
	}
	if st.Rows.Start != 3 || st.Rows.Offset != 5 {
		t.Errorf("Rows = %+v, want Start 3 Offset 5", st.Rows)
	}
	if st.Cols.Start != 2 || st.Cols.Offset != 20 {
		t.Errorf("Cols = %+v, want Start 2 Offset 20", st.Cols)
	}
}

func TestViewportFrozenPanes(t *testing.T) {
	vp, _, _ := newTestViewport(t)
	if err := vp.SetFrozen(2, 1); err != nil {
		t.Fatal(err)
	}

	st := vp.State()
	if st.FrozenHeight != 20 || st.FrozenWidth != 50 {
		t.Fatalf("frozen extents = (%v, %v), want (50, 20)", st.FrozenWidth, st.FrozenHeight)
	}
	// Visible ranges begin after the frozen band.
	if st.Rows.Start != 2 {
		t.Errorf("Rows.Start = %d, want 2", st.Rows.Start)
	}
	if st.Cols.Start != 1 {
		t.Errorf("Cols.Start = %d, want 1", st.Cols.Start)
	}
	// Freezing shrinks the scrollable viewport and content by the same
	// extent, so the maximum scroll is unchanged here.
	if st.MaxScrollY != 9800 {
		t.Errorf("MaxScrollY = %v, want 9800", st.MaxScrollY)
	}

	// Frozen counts clamp to the totals.
	if err := vp.SetCounts(3, 100); err != nil {
		t.Fatal(err)
	}
	if err := vp.SetFrozen(10, 0); err != nil {
		t.Fatal(err)
	}
	st = vp.State()
	if st.FrozenRows != 3 {
		t.Errorf("FrozenRows = %d, want clamped 3", st.FrozenRows)
	}
	// Everything frozen: the scrollable range is empty at count.
	if st.Rows.Start != 3 || st.Rows.End != 3 {
		t.Errorf("Rows = %+v, want empty range at 3", st.Rows)
	}
}

func TestViewportScrollClamping(t *testing.T) {
	vp, _, _ := newTestViewport(t)

	if err := vp.SetScroll(-50, 1e12); err != nil {
		t.Fatal(err)
	}
	got := vp.Scroll()
	if got.X != 0 || got.Y != 9800 {
		t.Errorf("Scroll() = %+v, want {0 9800}", got)
	}

	if err := vp.ScrollBy(100, -1e12); err != nil {
		t.Fatal(err)
	}
	got = vp.Scroll()
	if got.X != 100 || got.Y != 0 {
		t.Errorf("Scroll() = %+v, want {100 0}", got)
	}
}

func TestViewportValidation(t *testing.T) {
	vp, _, _ := newTestViewport(t)

	var verr *ValidationError
	if err := vp.SetCounts(-1, 10); !errors.As(err, &verr) {
		t.Errorf("SetCounts(-1, 10) = %v, want *ValidationError", err)
	}
	if err := vp.SetViewportSize(math.NaN(), 10); !errors.As(err, &verr) {
		t.Errorf("SetViewportSize(NaN, 10) = %v, want *ValidationError", err)
	}
	if err := vp.SetViewportSize(10, -1); !errors.As(err, &verr) {
		t.Errorf("SetViewportSize(10, -1) = %v, want *ValidationError", err)
	}
	if err := vp.SetFrozen(-2, 0); !errors.As(err, &verr) {
		t.Errorf("SetFrozen(-2, 0) = %v, want *ValidationError", err)
	}
	if err := vp.SetScroll(math.Inf(1), 0); !errors.As(err, &verr) {
		t.Errorf("SetScroll(+Inf, 0) = %v, want *ValidationError", err)
	}
	if err := vp.ScrollBy(0, math.NaN()); !errors.As(err, &verr) {
		t.Errorf("ScrollBy(0, NaN) = %v, want *ValidationError", err)
	}
}

func TestViewportShrinkingContentReclampsScroll(t *testing.T) {
	vp, _, _ := newTestViewport(t)
	if err := vp.SetScroll(0, 9800); err != nil {
		t.Fatal(err)
	}
	// Dropping the row count pulls the maximum below the stored scroll.
	if err := vp.SetCounts(30, 100); err != nil {
		t.Fatal(err)
	}
	st := vp.State()
	if st.MaxScrollY != 100 {
		t.Fatalf("MaxScrollY = %v, want 100", st.MaxScrollY)
	}
	if st.ScrollY != 100 {
		t.Errorf("ScrollY = %v, want re-clamped 100", st.ScrollY)
	}
}

func TestViewportSmallViewportMaxScroll(t *testing.T) {
	// A viewport smaller than the frozen band must not produce a negative
	// scrollable extent.
	vp, _, _ := newTestViewport(t)
	if err := vp.SetFrozen(30, 0); err != nil { // 300px frozen > 200px viewport
		t.Fatal(err)
	}
	got := vp.MaxScroll()
	want := 10000.0 - 300 // scrollable content with zero scrollable viewport
	if got.Y != want {
		t.Errorf("MaxScroll().Y = %v, want %v", got.Y, want)
	}
}

func BenchmarkViewportStateCached(b *testing.B) {
	rows, _ := NewAxis(10)
	cols, _ := NewAxis(50)
	vp, _ := NewViewport(rows, cols)
	_ = vp.SetCounts(1_000_000, 10_000)
	_ = vp.SetViewportSize(1920, 1080)
	_ = vp.SetScroll(1234, 56789)
	vp.State()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = vp.State()
	}
}

func BenchmarkViewportStateScrolling(b *testing.B) {
	rows, _ := NewAxis(10)
	cols, _ := NewAxis(50)
	for i := 0; i < 500; i++ {
		_ = rows.SetSize(i*97, 25)
	}
	vp, _ := NewViewport(rows, cols)
	_ = vp.SetCounts(1_000_000, 10_000)
	_ = vp.SetViewportSize(1920, 1080)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = vp.SetScroll(0, float64(i%100000))
		_ = vp.State()
	}
}
