package gridtext

import (
	"bytes"
	"errors"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// ErrEmptyFontData is returned when a Measurer is created with no font data.
var ErrEmptyFontData = errors.New("gridtext: empty font data")

// Measurer measures text by shaping it with a parsed font. It implements
// grid.TextMeasurer.
//
// The parsed font.Font is read-only and shared; each MeasureText call
// creates a lightweight font.Face (cheap, not concurrent-safe) and borrows
// a HarfbuzzShaper from a pool, so a single Measurer may be used from
// multiple goroutines.
type Measurer struct {
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances; they carry internal
	// mutable buffers and must not be shared between concurrent calls.
	shaperPool sync.Pool
}

// NewMeasurer parses TTF/OTF font data and returns a measurer for it.
func NewMeasurer(ttf []byte) (*Measurer, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	return &Measurer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// MeasureText returns the pixel width and height of s rendered at the given
// font size. Embedded newlines produce multiple lines: the width is the
// widest line's advance and the height is the line count times the font's
// line height.
func (m *Measurer) MeasureText(s string, size float64) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	lineHeight := m.LineHeight(size)
	for _, line := range lines {
		if adv := m.measureLine(line, size); adv > w {
			w = adv
		}
	}
	return w, float64(len(lines)) * lineHeight
}

// LineHeight returns the font's line height at the given size:
// ascent minus descent plus line gap.
func (m *Measurer) LineHeight(size float64) float64 {
	out := m.shape(" ", size)
	return fixedToFloat(out.LineBounds.Ascent - out.LineBounds.Descent + out.LineBounds.Gap)
}

func (m *Measurer) measureLine(line string, size float64) float64 {
	if line == "" {
		return 0
	}
	return fixedToFloat(m.shape(line, size).Advance)
}

func (m *Measurer) shape(s string, size float64) shaping.Output {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(s),
		Face:      font.NewFace(m.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	m.shaperPool.Put(shaper)
	return out
}

// baseDirection resolves the paragraph's principal direction so RTL text
// (Arabic, Hebrew) shapes with correct advances.
func baseDirection(s string) di.Direction {
	p := bidi.Paragraph{}
	_, _ = p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight))
	if !p.IsLeftToRight() {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script cell values measure by their leading
// script, which is adequate for sizing.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
