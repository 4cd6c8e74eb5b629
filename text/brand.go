package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Method identifies which heuristic detected a brand.
type Method uint8

const (
	// MethodNone means no brand was detected.
	MethodNone Method = iota

	// MethodExact matched a dictionary brand as a leading prefix.
	MethodExact

	// MethodPattern matched a separator shape like "Brand - Product".
	MethodPattern

	// MethodEmbedded matched a dictionary brand inside the text.
	MethodEmbedded
)

// String returns the string representation of the method.
func (m Method) String() string {
	switch m {
	case MethodExact:
		return "Exact"
	case MethodPattern:
		return "Pattern"
	case MethodEmbedded:
		return "Embedded"
	default:
		return "None"
	}
}

// Confidence grades how reliable a brand detection is.
type Confidence uint8

const (
	// ConfidenceNone means no detection.
	ConfidenceNone Confidence = iota

	// ConfidenceLow is an embedded dictionary match.
	ConfidenceLow

	// ConfidenceMedium is a separator-pattern match.
	ConfidenceMedium

	// ConfidenceHigh is an exact dictionary prefix match.
	ConfidenceHigh
)

// String returns the string representation of the confidence grade.
func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "Low"
	case ConfidenceMedium:
		return "Medium"
	case ConfidenceHigh:
		return "High"
	default:
		return "None"
	}
}

// BrandInfo is the result of splitting a brand out of a product name.
// When Detected is false, Remainder carries the original text unchanged.
type BrandInfo struct {
	Brand      string
	Remainder  string
	Detected   bool
	Method     Method
	Confidence Confidence
}

// separator shapes tried by the pattern heuristic, in priority order.
var brandSeparators = []string{" - ", ": ", " | ", " by "}

// Pattern-candidate limits: anything longer is a product description,
// not a brand.
const (
	maxBrandChars = 30
	maxBrandWords = 4
)

// measurementPattern matches quantity/size tokens like "3.5g", "30 ct",
// "100mg". A candidate containing one is product data, not a brand.
var measurementPattern = regexp.MustCompile(`\d+(\.\d+)?\s*(mg|g|kg|oz|lb|ml|l|mm|cm|ct|pk|pack)\b`)

// productWords are category tokens that disqualify a pattern candidate.
var productWords = []string{
	"capsule", "gummies", "gummy", "flower", "concentrate", "strain",
	"cartridge", "preroll", "pre-roll", "tincture", "edible",
}

// SplitBrand heuristically separates a brand from a product name.
// Heuristics run in priority order and the first match wins:
//
//  1. Exact prefix: the text begins with a dictionary brand followed
//     by whitespace (case-insensitive). Confidence: High.
//  2. Separator pattern: "Brand - Product", "Brand: Product",
//     "Brand | Product", or "Brand by Product", accepted only when the
//     candidate is short and does not look like product data.
//     Confidence: Medium.
//  3. Embedded: a dictionary brand appears as a whole word with at
//     most 10 characters of text before it. Confidence: Low.
//
// The dictionary is an ordered list supplied by the caller and is
// never mutated. SplitBrand never fails; when nothing matches, the
// original text is returned as the remainder.
func SplitBrand(name string, dict []string) BrandInfo {
	name = strings.TrimSpace(name)
	if name == "" {
		return BrandInfo{Remainder: name}
	}

	if info, ok := splitExactPrefix(name, dict); ok {
		return info
	}
	if info, ok := splitSeparator(name); ok {
		return info
	}
	if info, ok := splitEmbedded(name, dict); ok {
		return info
	}
	return BrandInfo{Remainder: name}
}

// splitExactPrefix checks each dictionary brand as a case-insensitive
// leading prefix followed by whitespace. The canonical dictionary
// spelling is reported, not the text's.
func splitExactPrefix(name string, dict []string) (BrandInfo, bool) {
	for _, brand := range dict {
		rest, ok := foldPrefix(name, brand)
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(rest)
		if trimmed == rest || trimmed == "" {
			// Prefix must be followed by whitespace and more text.
			continue
		}
		return BrandInfo{
			Brand:      brand,
			Remainder:  trimmed,
			Detected:   true,
			Method:     MethodExact,
			Confidence: ConfidenceHigh,
		}, true
	}
	return BrandInfo{}, false
}

// splitSeparator tries the fixed separator shapes in priority order.
func splitSeparator(name string) (BrandInfo, bool) {
	for _, sep := range brandSeparators {
		idx, end := indexFold(name, sep)
		if idx <= 0 {
			continue
		}
		candidate := strings.TrimSpace(name[:idx])
		rest := strings.TrimSpace(name[end:])
		if candidate == "" || rest == "" {
			continue
		}
		if !plausibleBrand(candidate) {
			continue
		}
		return BrandInfo{
			Brand:      candidate,
			Remainder:  rest,
			Detected:   true,
			Method:     MethodPattern,
			Confidence: ConfidenceMedium,
		}, true
	}
	return BrandInfo{}, false
}

// splitEmbedded looks for a dictionary brand as a whole word anywhere
// in the text, accepting it only when the preceding text is short.
func splitEmbedded(name string, dict []string) (BrandInfo, bool) {
	for _, brand := range dict {
		idx, end := indexWord(name, brand)
		if idx < 0 {
			continue
		}
		before := strings.TrimSpace(name[:idx])
		if utf8.RuneCountInString(before) > 10 {
			continue
		}
		after := strings.TrimSpace(name[end:])
		remainder := strings.TrimSpace(before + " " + after)
		if remainder == "" {
			remainder = name
		}
		return BrandInfo{
			Brand:      brand,
			Remainder:  remainder,
			Detected:   true,
			Method:     MethodEmbedded,
			Confidence: ConfidenceLow,
		}, true
	}
	return BrandInfo{}, false
}

// plausibleBrand rejects separator candidates that look like product
// data rather than a brand name.
func plausibleBrand(s string) bool {
	if utf8.RuneCountInString(s) > maxBrandChars || len(strings.Fields(s)) > maxBrandWords {
		return false
	}
	lower := strings.ToLower(s)
	if measurementPattern.MatchString(lower) {
		return false
	}
	for _, w := range productWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	return true
}

// foldPrefix reports whether name begins with prefix under Unicode
// case folding, returning the text after the prefix.
func foldPrefix(name, prefix string) (string, bool) {
	rest := name
	for _, pr := range prefix {
		r, size := decodeRune(rest)
		if size == 0 || !runesEqualFold(r, pr) {
			return "", false
		}
		rest = rest[size:]
	}
	return rest, true
}

// indexFold returns the start and end byte offsets in s of the first
// occurrence of sep under rune-wise case folding, or -1, -1. Offsets
// index s itself, never a case-folded copy, so they stay valid when
// folding changes a rune's byte length.
func indexFold(s, sep string) (start, end int) {
	for i := range s {
		if rest, ok := foldPrefix(s[i:], sep); ok {
			return i, len(s) - len(rest)
		}
	}
	return -1, -1
}

// indexWord returns the start and end byte offsets in s of the first
// case-insensitive occurrence of needle bounded by non-alphanumeric
// runes, or -1, -1.
func indexWord(s, needle string) (start, end int) {
	if needle == "" {
		return -1, -1
	}
	for i := range s {
		rest, ok := foldPrefix(s[i:], needle)
		if !ok {
			continue
		}
		e := len(s) - len(rest)
		if wordBoundary(s, i) && wordBoundary(s, e) {
			return i, e
		}
	}
	return -1, -1
}

// wordBoundary reports whether byte offset i in s sits on a word edge.
func wordBoundary(s string, i int) bool {
	if i <= 0 || i >= len(s) {
		return true
	}
	r, _ := decodeRune(s[i:])
	prev := lastRune(s[:i])
	return !isWordRune(r) || !isWordRune(prev)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func runesEqualFold(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

func decodeRune(s string) (rune, int) {
	if s == "" {
		return 0, 0
	}
	return utf8.DecodeRuneInString(s)
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
