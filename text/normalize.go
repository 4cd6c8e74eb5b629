package text

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Placeholder is substituted for empty or whitespace-only product names.
const Placeholder = "Product Name"

// ellipsis marks truncated text. Three ASCII dots rather than U+2026 so
// the marker survives fonts with sparse glyph coverage.
const ellipsis = "..."

var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", // curly single quotes
	"“", `"`, "”", `"`, // curly double quotes
)

// Normalize cleans a free-text field to its canonical display form:
// NFC-normalized, curly quotes straightened, whitespace runs collapsed
// to single spaces, trimmed. Results longer than maxLength (in runes)
// are truncated with an ellipsis marker, preferring the last word
// boundary that keeps at least 80% of the allowed length.
//
// Normalize never fails; empty input yields Placeholder.
func Normalize(s string, maxLength int) string {
	s = norm.NFC.String(s)
	s = quoteReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return Placeholder
	}
	if maxLength <= 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return truncate(s, maxLength)
}

// truncate cuts s to maxLength runes including the ellipsis marker.
func truncate(s string, maxLength int) string {
	limit := maxLength - len(ellipsis)
	if limit < 1 {
		limit = 1
	}
	runes := []rune(s)
	head := runes[:limit]

	// Prefer a word boundary, but only if it keeps >=80% of the room.
	cut := limit
	if i := lastIndexRune(head, ' '); i >= (limit*8+9)/10 {
		cut = i
	}
	return strings.TrimRight(string(runes[:cut]), " ") + ellipsis
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

// DateText is a date field after normalization. Recognized is false
// when the input matched none of the accepted patterns and was passed
// through untouched.
type DateText struct {
	Value      string
	Recognized bool
}

// dateLayouts are the accepted input patterns, tried in order.
var dateLayouts = []string{
	"01/02/2006",
	"01/02/06",
	"01-02-2006",
	"01-02-06",
	"2006-01-02",
}

// canonicalDateLayout is the single output form for recognized dates.
const canonicalDateLayout = "01/02/2006"

// NormalizeDate parses a free-text date against the accepted patterns
// and re-emits it in MM/DD/YYYY form. Unrecognized input is passed
// through unmodified with Recognized=false; this is a warning
// condition for the caller, never an error. Empty input is recognized
// trivially.
func NormalizeDate(s string) DateText {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateText{Value: "", Recognized: true}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateText{Value: t.Format(canonicalDateLayout), Recognized: true}
		}
	}
	return DateText{Value: s, Recognized: false}
}
