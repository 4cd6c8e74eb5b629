package code39

import (
	"fmt"
	"strings"
)

// MaxLength is the practical limit on encoded value length. Longer
// symbols become unreliable to scan at label sizes.
const MaxLength = 43

// WideRatio is the width of a wide element in narrow-module units.
// The Code 39 specification permits 2.0-3.0; 3 gives the best scan
// tolerance at small print sizes.
const WideRatio = 3

// patterns maps each encodable character to its nine-element pattern.
// Characters alternate bar, space, bar, ... starting with a bar;
// 'w' is wide, 'n' is narrow. The start/stop character '*' is included
// but is not part of the encodable alphabet.
var patterns = map[rune]string{
	'0': "nnnwwnwnn", '1': "wnnwnnnnw", '2': "nnwwnnnnw", '3': "wnwwnnnnn",
	'4': "nnnwwnnnw", '5': "wnnwwnnnn", '6': "nnwwwnnnn", '7': "nnnwnnwnw",
	'8': "wnnwnnwnn", '9': "nnwwnnwnn",
	'A': "wnnnnwnnw", 'B': "nnwnnwnnw", 'C': "wnwnnwnnn", 'D': "nnnnwwnnw",
	'E': "wnnnwwnnn", 'F': "nnwnwwnnn", 'G': "nnnnnwwnw", 'H': "wnnnnwwnn",
	'I': "nnwnnwwnn", 'J': "nnnnwwwnn", 'K': "wnnnnnnww", 'L': "nnwnnnnww",
	'M': "wnwnnnnwn", 'N': "nnnnwnnww", 'O': "wnnnwnnwn", 'P': "nnwnwnnwn",
	'Q': "nnnnnnwww", 'R': "wnnnnnwwn", 'S': "nnwnnnwwn", 'T': "nnnnwnwwn",
	'U': "wwnnnnnnw", 'V': "nwwnnnnnw", 'W': "wwwnnnnnn", 'X': "nwnnwnnnw",
	'Y': "wwnnwnnnn", 'Z': "nwwnwnnnn",
	'-': "nwnnnnwnw", '.': "wwnnnnwnn", ' ': "nwwnnnwnn",
	'$': "nwnwnwnnn", '/': "nwnwnnnwn", '+': "nwnnnwnwn", '%': "nnnwnwnwn",
	'*': "nwnnwnwnn",
}

// checkOrder lists the alphabet in check-digit value order (mod 43).
const checkOrder = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// Element is one bar or space of a rendered symbol. Width is measured
// in narrow-module units (1 or WideRatio).
type Element struct {
	Width int
	Bar   bool
}

// Symbol is a renderable Code 39 symbol: the encoded value plus the
// ordered bar/space elements including start/stop delimiters and
// inter-character gaps.
type Symbol struct {
	// Value is the encoded value, without start/stop characters.
	Value string

	// Elements are the bars and spaces left to right.
	Elements []Element
}

// TotalModules returns the symbol width in narrow-module units.
// Multiply by a device module width to get the physical symbol width.
func (s *Symbol) TotalModules() int {
	total := 0
	for _, e := range s.Elements {
		total += e.Width
	}
	return total
}

// Encodable reports whether r is part of the Code 39 alphabet.
// The start/stop character '*' is not encodable.
func Encodable(r rune) bool {
	if r == '*' {
		return false
	}
	_, ok := patterns[r]
	return ok
}

// Validate checks a raw value against the Code 39 alphabet and length
// rules. The value is trimmed before checking; case is significant
// (lowercase letters are rejected, not folded). A nil error means the
// trimmed value can be cleaned and encoded.
func Validate(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return fmt.Errorf("code39: empty value")
	}
	for _, r := range v {
		if !Encodable(r) {
			return fmt.Errorf("code39: character %q is not in the Code 39 alphabet (digits, A-Z, space, - . $ / + %%)", r)
		}
	}
	cleaned := Clean(v)
	if cleaned == "" {
		return fmt.Errorf("code39: no encodable characters left after cleaning %q", v)
	}
	if len(cleaned) > MaxLength {
		return fmt.Errorf("code39: value exceeds %d characters after cleaning", MaxLength)
	}
	return nil
}

// Clean returns the canonical encodable form of a value: trimmed,
// uppercased, with punctuation and internal spaces stripped. The result
// contains only digits and uppercase letters, so cleaning a cleaned
// value is a no-op.
func Clean(value string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		}
	}
	return b.String()
}

// Group inserts sep between fixed-size runs of value for the
// human-readable caption under a symbol. Run length scales with value
// length: pairs up to 6 characters, triples up to 12, quads beyond.
// The grouped string is display-only and must never be re-encoded.
func Group(value, sep string) string {
	var size int
	switch {
	case len(value) <= 6:
		size = 2
	case len(value) <= 12:
		size = 3
	default:
		size = 4
	}
	var b strings.Builder
	for i, r := range value {
		if i > 0 && i%size == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CheckDigit computes the modulo-43 check character for a cleaned
// value. Code 39 check digits are optional; most label applications
// omit them.
func CheckDigit(value string) (rune, error) {
	sum := 0
	for _, r := range value {
		idx := strings.IndexRune(checkOrder, r)
		if idx < 0 {
			return 0, fmt.Errorf("code39: character %q has no check value", r)
		}
		sum += idx
	}
	return rune(checkOrder[sum%43]), nil
}

// Encode produces the renderable symbol for a value. The value is
// cleaned first; Encode fails only when the cleaned value is empty or
// exceeds MaxLength. The emitted elements are:
//
//	start(*) gap char gap char ... gap stop(*)
//
// where gap is a single narrow space.
func Encode(value string) (*Symbol, error) {
	cleaned := Clean(value)
	if cleaned == "" {
		return nil, fmt.Errorf("code39: nothing to encode after cleaning %q", value)
	}
	if len(cleaned) > MaxLength {
		return nil, fmt.Errorf("code39: cleaned value exceeds %d characters", MaxLength)
	}

	sym := &Symbol{Value: cleaned}
	appendChar := func(r rune) {
		pattern := patterns[r]
		for i, pc := range pattern {
			w := 1
			if pc == 'w' {
				w = WideRatio
			}
			sym.Elements = append(sym.Elements, Element{Width: w, Bar: i%2 == 0})
		}
	}
	gap := func() {
		sym.Elements = append(sym.Elements, Element{Width: 1, Bar: false})
	}

	appendChar('*')
	for _, r := range cleaned {
		gap()
		appendChar(r)
	}
	gap()
	appendChar('*')
	return sym, nil
}
