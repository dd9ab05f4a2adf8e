package grid

import "math"

// DefaultMinThumbSize is the minimum scrollbar thumb length in track
// pixels applied when ComputeScrollbarThumb is called with a non-positive
// minimum. Tiny thumbs are impossible to grab on large documents.
const DefaultMinThumbSize = 24.0

// ScrollbarThumb describes a scrollbar thumb in track-pixel units.
type ScrollbarThumb struct {
	Size, Offset float64
}

// ComputeScrollbarThumb maps a scroll position onto thumb geometry for a
// scrollbar track. It is a pure function of totals the caller already has;
// it knows nothing about axes or cells.
//
// Size inputs are floored at zero and scrollPos is clamped into
// [0, contentSize-viewportSize] before use. A zero-length track produces a
// zero thumb; content that does not overflow the viewport produces a thumb
// filling the whole track.
func ComputeScrollbarThumb(scrollPos, viewportSize, contentSize, trackSize, minThumbSize float64) ScrollbarThumb {
	if minThumbSize <= 0 {
		minThumbSize = DefaultMinThumbSize
	}
	viewportSize = math.Max(0, viewportSize)
	contentSize = math.Max(0, contentSize)
	trackSize = math.Max(0, trackSize)

	if trackSize == 0 {
		return ScrollbarThumb{}
	}
	maxScroll := math.Max(0, contentSize-viewportSize)
	if contentSize == 0 || maxScroll == 0 {
		return ScrollbarThumb{Size: trackSize}
	}
	scrollPos = clamp(scrollPos, 0, maxScroll)

	size := math.Min(math.Max(trackSize*viewportSize/contentSize, minThumbSize), trackSize)
	travel := trackSize - size
	var offset float64
	if travel > 0 {
		offset = scrollPos / maxScroll * travel
	}
	return ScrollbarThumb{Size: size, Offset: offset}
}
