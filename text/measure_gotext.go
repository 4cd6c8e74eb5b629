package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ShapedMeasurer is a Measurer backed by go-text/typesetting's HarfBuzz
// shaper. Unlike GlyphMeasurer it accounts for kerning and ligatures,
// so its averages are marginally tighter for running text.
//
// Advances are sampled once at construction and scaled linearly;
// ShapedMeasurer is immutable and safe for concurrent use.
type ShapedMeasurer struct {
	charRatio     float64
	boldCharRatio float64
	lineRatio     float64
	boldLineRatio float64
}

// NewShapedMeasurer shapes the sample corpus with the embedded Go fonts
// and returns a Measurer reporting the shaped average advances.
func NewShapedMeasurer() (*ShapedMeasurer, error) {
	return NewShapedMeasurerFromFonts(goregular.TTF, gobold.TTF)
}

// NewShapedMeasurerFromFonts builds a ShapedMeasurer from
// caller-supplied TTF/OTF data for the regular and bold faces.
func NewShapedMeasurerFromFonts(regular, bold []byte) (*ShapedMeasurer, error) {
	m := &ShapedMeasurer{}
	var err error
	if m.charRatio, m.lineRatio, err = shapeSample(regular); err != nil {
		return nil, fmt.Errorf("text: regular face: %w", err)
	}
	if m.boldCharRatio, m.boldLineRatio, err = shapeSample(bold); err != nil {
		return nil, fmt.Errorf("text: bold face: %w", err)
	}
	return m, nil
}

// shapeSample shapes sampleText at the reference size and returns the
// average advance per character and the line height, both per unit of
// font size.
func shapeSample(data []byte) (charRatio, lineRatio float64, err error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("parse font: %w", err)
	}

	runes := []rune(sampleText)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.I(samplePPEM),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)
	if len(output.Glyphs) == 0 {
		return 0, 0, fmt.Errorf("shaping produced no glyphs")
	}

	charRatio = fixedToFloat(output.Advance) / float64(len(runes)) / samplePPEM
	lineHeight := fixedToFloat(output.LineBounds.Ascent) -
		fixedToFloat(output.LineBounds.Descent) +
		fixedToFloat(output.LineBounds.Gap)
	lineRatio = lineHeight / samplePPEM
	return charRatio, lineRatio, nil
}

// CharWidth implements Measurer.
func (m *ShapedMeasurer) CharWidth(fontSize float64, bold bool) float64 {
	if bold {
		return fontSize * m.boldCharRatio
	}
	return fontSize * m.charRatio
}

// LineHeight implements Measurer.
func (m *ShapedMeasurer) LineHeight(fontSize float64, bold bool) float64 {
	if bold {
		return fontSize * m.boldLineRatio
	}
	return fontSize * m.lineRatio
}
