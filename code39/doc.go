// Package code39 implements the Code 39 barcode symbology: alphabet
// validation, value cleaning, human-readable grouping, and bar/space
// encoding.
//
// Code 39 encodes a restricted alphabet (digits, uppercase A-Z, space,
// and the symbols - . $ / + %). Each character is nine elements (five
// bars, four spaces), exactly three of which are wide. Symbols are
// delimited by a start/stop character (*) that is never part of the
// encoded value.
//
// The package produces an abstract Symbol: an ordered sequence of bar
// and space elements measured in narrow-module units. Rasterizing the
// symbol (choosing a module width in device units and drawing the bars)
// is the caller's concern.
//
// # Example
//
//	sym, err := code39.Encode("AB1234")
//	if err != nil {
//	    return err
//	}
//	for _, e := range sym.Elements {
//	    // e.Width is 1 (narrow) or 3 (wide), e.Bar says bar vs space
//	}
package code39
