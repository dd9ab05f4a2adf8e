// Package gridtext implements grid.TextMeasurer on top of
// go-text/typesetting's HarfBuzz shaper, so auto-fit row heights and column
// widths reflect real glyph advances — kerning, ligatures and complex
// scripts included — rather than a per-character estimate.
//
// A Measurer parses its font once and is safe for concurrent use; the
// shaper instances it needs are pooled because they are not.
package gridtext
