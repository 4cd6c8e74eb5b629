package labelsheet

import (
	"time"

	"github.com/labelsheet/labelsheet/text"
)

// Option configures assembly and pagination.
// Use functional options to customize engine behavior.
//
// Example:
//
//	result, err := labelsheet.Paginate(items, spec,
//	    labelsheet.WithUser("mbeck"),
//	    labelsheet.WithBrandDictionary(brands),
//	    labelsheet.WithClock(func() time.Time { return fixed }))
type Option func(*engineOptions)

// engineOptions holds optional configuration shared by Assembler and
// Paginate.
type engineOptions struct {
	brandDict       []string
	measurer        text.Measurer
	clock           func() time.Time
	user            string
	fallbackBarcode bool
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		measurer:        text.HeuristicMeasurer{},
		clock:           time.Now,
		fallbackBarcode: true,
	}
}

// WithBrandDictionary supplies the ordered brand list used by brand
// detection. The engine treats the slice as read-only.
func WithBrandDictionary(brands []string) Option {
	return func(o *engineOptions) {
		o.brandDict = brands
	}
}

// WithMeasurer sets the text measurement backend for font fitting.
// The default is text.HeuristicMeasurer; swap in text.NewGlyphMeasurer
// or text.NewShapedMeasurer for real glyph metrics.
func WithMeasurer(m text.Measurer) Option {
	return func(o *engineOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithClock injects the time source for audit stamps and synthetic
// barcode suffixes. Use a fixed clock for byte-identical regeneration.
func WithClock(clock func() time.Time) Option {
	return func(o *engineOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithUser sets the acting username recorded in every audit string.
func WithUser(user string) Option {
	return func(o *engineOptions) {
		o.user = user
	}
}

// WithoutFallbackBarcode disables synthetic barcode generation for
// items that carry neither a barcode nor a SKU. Such items then get an
// invalid BarcodeSymbol and the renderer's error placeholder.
func WithoutFallbackBarcode() Option {
	return func(o *engineOptions) {
		o.fallbackBarcode = false
	}
}
