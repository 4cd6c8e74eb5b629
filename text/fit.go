package text

import (
	"strings"
	"unicode/utf8"
)

// FitResult is the outcome of a font-size search. When Fits is false
// the text overflows the box even at the minimum size; FontSize is then
// the minimum, and the caller accepts visual overflow rather than
// failing the label.
type FitResult struct {
	FontSize float64
	Lines    int
	Fits     bool
}

// Fit finds the largest font size in [minSize, maxSize] at which the
// estimated word-wrapped layout of s fits a boxW x boxHeight box.
//
// The search walks down from maxSize in steps of 1 and stops at the
// first size whose estimated wrapped height fits. It is deterministic
// and runs at most (maxSize-minSize)+1 estimation rounds; sizes whose
// packing lower bound already overflows are skipped without a full
// wrap estimate, which never changes the selected size.
//
// Empty text trivially fits at maxSize. A nil measurer falls back to
// HeuristicMeasurer.
func Fit(s string, boxW, boxH, minSize, maxSize float64, m Measurer, bold bool) FitResult {
	if m == nil {
		m = HeuristicMeasurer{}
	}
	if maxSize < minSize {
		maxSize = minSize
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return FitResult{FontSize: maxSize, Lines: 0, Fits: true}
	}

	wordChars := 0
	longestWord := 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		wordChars += n
		if n > longestWord {
			longestWord = n
		}
	}

	var lines int
	for size := maxSize; size >= minSize; size-- {
		charW := m.CharWidth(size, bold)
		lineH := m.LineHeight(size, bold)

		// Packing lower bound: every line holds at most
		// floor(boxW/charW) characters, so at least
		// ceil(wordChars/perLine) lines are needed. Only valid when no
		// single word overflows a line (an overflowing word packs more
		// characters onto its line than the bound assumes).
		if perLine := int(boxW / charW); perLine >= longestWord && perLine > 0 {
			bound := (wordChars + perLine - 1) / perLine
			if float64(bound)*lineH > boxH {
				lines = bound
				continue
			}
		}

		lines = wrapEstimate(words, boxW, charW)
		if float64(lines)*lineH <= boxH {
			return FitResult{FontSize: size, Lines: lines, Fits: true}
		}
	}

	// The descending walk can step over a fractional minimum, so test
	// it once before declaring overflow.
	charW := m.CharWidth(minSize, bold)
	lineH := m.LineHeight(minSize, bold)
	lines = wrapEstimate(words, boxW, charW)
	if float64(lines)*lineH <= boxH {
		return FitResult{FontSize: minSize, Lines: lines, Fits: true}
	}
	return FitResult{FontSize: minSize, Lines: lines, Fits: false}
}

// wrapEstimate counts lines under greedy word wrap: words accumulate
// onto a line while the estimated width stays within boxW, and a word
// that would overflow starts a new line. A word too long for any line
// occupies one line by itself and overflows horizontally.
func wrapEstimate(words []string, boxW, charW float64) int {
	lines := 1
	current := 0 // characters on the current line
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if current == 0 {
			current = n
			continue
		}
		needed := current + 1 + n // joining space
		if float64(needed)*charW <= boxW {
			current = needed
		} else {
			lines++
			current = n
		}
	}
	return lines
}
