package text

// Measurer estimates text metrics for the fitting search. It abstracts
// the measurement backend so the search runs identically against
// heuristic factors, parsed glyph metrics, or shaped advances.
//
// Implementations must be deterministic: the same inputs always give
// the same estimates.
type Measurer interface {
	// CharWidth returns the estimated advance of an average character
	// at fontSize, in the same units as fontSize.
	CharWidth(fontSize float64, bold bool) float64

	// LineHeight returns the baseline-to-baseline distance at fontSize.
	LineHeight(fontSize float64, bold bool) float64
}

// Width factors for the heuristic model. Derived from average advance
// ratios of common sans-serif faces at text sizes.
const (
	heuristicCharFactor     = 0.58
	heuristicBoldCharFactor = 0.66
	heuristicLineFactor     = 1.15
)

// HeuristicMeasurer is the default Measurer: character width is a fixed
// fraction of the font size, slightly wider for bold. It needs no font
// data and is the backend of choice for layout that must be reproducible
// across machines.
type HeuristicMeasurer struct{}

// CharWidth implements Measurer.
func (HeuristicMeasurer) CharWidth(fontSize float64, bold bool) float64 {
	if bold {
		return fontSize * heuristicBoldCharFactor
	}
	return fontSize * heuristicCharFactor
}

// LineHeight implements Measurer.
func (HeuristicMeasurer) LineHeight(fontSize float64, bold bool) float64 {
	return fontSize * heuristicLineFactor
}

// sampleText is the corpus real-metrics backends average over. Mixed
// case with digits and a space, weighted toward lowercase the way
// product names are.
const sampleText = "the Quick brown Fox 0123456789 jumps over a lazy dog"
