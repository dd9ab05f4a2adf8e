package grid

import "math"

// AlignScrollToDevicePixels snaps a candidate scroll position to the
// nearest physical-pixel boundary for the given device pixel ratio. Canvas
// backing stores are sized in physical pixels; a scroll offset between two
// of them blurs text and hairline borders.
//
// Each axis is clamped into [0, maxScroll], rounded to the nearest multiple
// of 1/dpr, then clamped to the largest aligned value not exceeding
// maxScroll so the grid never scrolls past its content. A non-positive or
// non-finite dpr falls back to 1.
func AlignScrollToDevicePixels(scroll, maxScroll Point, dpr float64) Point {
	if !(dpr > 0) || math.IsInf(dpr, 1) {
		dpr = 1
	}
	return Point{
		X: alignAxis(scroll.X, maxScroll.X, dpr),
		Y: alignAxis(scroll.Y, maxScroll.Y, dpr),
	}
}

func alignAxis(v, maxScroll, dpr float64) float64 {
	maxScroll = math.Max(0, maxScroll)
	v = clamp(v, 0, maxScroll)
	v = math.Round(v*dpr) / dpr
	alignedMax := math.Floor(maxScroll*dpr) / dpr
	return clamp(v, 0, alignedMax)
}
