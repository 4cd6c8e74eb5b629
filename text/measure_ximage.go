package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphMeasurer is a Measurer backed by parsed glyph metrics from
// golang.org/x/image/font/opentype. By default it measures the embedded
// Go fonts (goregular/gobold), which approximate common label faces
// closely enough for fitting.
//
// Metrics are sampled once at construction and scaled linearly, so
// GlyphMeasurer is immutable and safe for concurrent use.
type GlyphMeasurer struct {
	charRatio     float64 // average advance per unit of font size
	boldCharRatio float64
	lineRatio     float64 // line height per unit of font size
	boldLineRatio float64
}

// NewGlyphMeasurer parses the embedded Go fonts and returns a Measurer
// reporting their real average advances.
func NewGlyphMeasurer() (*GlyphMeasurer, error) {
	return NewGlyphMeasurerFromFonts(goregular.TTF, gobold.TTF)
}

// NewGlyphMeasurerFromFonts builds a GlyphMeasurer from caller-supplied
// TTF/OTF data for the regular and bold faces.
func NewGlyphMeasurerFromFonts(regular, bold []byte) (*GlyphMeasurer, error) {
	m := &GlyphMeasurer{}
	var err error
	if m.charRatio, m.lineRatio, err = sampleFont(regular); err != nil {
		return nil, fmt.Errorf("text: regular face: %w", err)
	}
	if m.boldCharRatio, m.boldLineRatio, err = sampleFont(bold); err != nil {
		return nil, fmt.Errorf("text: bold face: %w", err)
	}
	return m, nil
}

// samplePPEM is the reference size metrics are sampled at. Large enough
// that 26.6 fixed-point quantization is negligible.
const samplePPEM = 1000

// sampleFont parses font data and returns the average advance of
// sampleText and the line height, both per unit of font size.
func sampleFont(data []byte) (charRatio, lineRatio float64, err error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return 0, 0, fmt.Errorf("parse font: %w", err)
	}

	var buf sfnt.Buffer
	ppem := fixed.I(samplePPEM)

	total := 0.0
	count := 0
	for _, r := range sampleText {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil || gi == 0 {
			continue
		}
		adv, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
		count++
	}
	if count == 0 {
		return 0, 0, fmt.Errorf("no measurable glyphs in sample")
	}

	metrics, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return 0, 0, fmt.Errorf("font metrics: %w", err)
	}

	charRatio = total / float64(count) / samplePPEM
	lineRatio = fixedToFloat(metrics.Height) / samplePPEM
	return charRatio, lineRatio, nil
}

// CharWidth implements Measurer.
func (m *GlyphMeasurer) CharWidth(fontSize float64, bold bool) float64 {
	if bold {
		return fontSize * m.boldCharRatio
	}
	return fontSize * m.charRatio
}

// LineHeight implements Measurer.
func (m *GlyphMeasurer) LineHeight(fontSize float64, bold bool) float64 {
	if bold {
		return fontSize * m.boldLineRatio
	}
	return fontSize * m.lineRatio
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
