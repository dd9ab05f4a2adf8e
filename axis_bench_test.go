package grid

import (
	"fmt"
	"testing"
)

// benchAxis builds an axis with k overrides spread across a huge index
// space, the shape a heavily customized million-row sheet produces.
func benchAxis(b *testing.B, k int) *Axis {
	b.Helper()
	a, err := NewAxis(10)
	if err != nil {
		b.Fatal(err)
	}
	overrides := make(map[int]float64, k)
	for i := 0; i < k; i++ {
		overrides[i*1031] = 25
	}
	if err := a.SetOverrides(overrides); err != nil {
		b.Fatal(err)
	}
	return a
}

func BenchmarkAxisPositionOf(b *testing.B) {
	for _, k := range []int{0, 16, 256, 4096} {
		a := benchAxis(b, k)
		b.Run(benchName(k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = a.PositionOf(i % 1_000_000)
			}
		})
	}
}

func BenchmarkAxisIndexAt(b *testing.B) {
	for _, k := range []int{16, 4096} {
		a := benchAxis(b, k)
		b.Run(benchName(k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = a.IndexAt(float64(i%10_000_000), 0)
			}
		})
	}
}

// BenchmarkAxisSetSizeUpdate measures the hot path of an interactive resize
// drag: the same index updated over and over.
func BenchmarkAxisSetSizeUpdate(b *testing.B) {
	a := benchAxis(b, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = a.SetSize(1031, float64(20+i%30))
	}
}

func BenchmarkAxisVisibleRange(b *testing.B) {
	a := benchAxis(b, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = a.VisibleRange(float64(i%1_000_000), 1080, 0, 10_000_000)
	}
}

func benchName(k int) string {
	return fmt.Sprintf("overrides_%d", k)
}
