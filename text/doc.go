// Package text provides the text side of label layout: normalization of
// free-text fields, heuristic brand/product separation, and bounded
// font-size fitting.
//
// The fitting pipeline follows a separation of concerns:
//
//   - Measurer: pluggable character-metrics backend (default: heuristic)
//   - Fit: the size search, independent of how text is measured
//   - Normalize / SplitBrand: pure text cleanup, no layout knowledge
//
// # Pluggable Measurement Backend
//
// Text measurement is abstracted through the Measurer interface so the
// fitting search is testable without a rendering surface. The default
// HeuristicMeasurer models character width as a fixed fraction of the
// font size. Two real-metrics backends are provided:
//
//	// Glyph metrics from the embedded Go fonts via golang.org/x/image:
//	m, err := text.NewGlyphMeasurer()
//
//	// HarfBuzz-shaped advances via go-text/typesetting:
//	m, err := text.NewShapedMeasurer()
//
// All backends report width for the same text within a few percent; the
// fitting search never depends on which one is active.
package text
