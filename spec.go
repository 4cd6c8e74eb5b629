package labelsheet

import (
	"fmt"
	"sort"
)

// Spec holds the physical and typographic constants of one supported
// label sheet format. All dimensions are in points (1/72 inch). A Spec
// is created once at registration and never mutated.
type Spec struct {
	// Name is the registry key, e.g. "12-up-portrait".
	Name string

	// LabelWidth and LabelHeight are the dimensions of one label cell
	// as placed on the page.
	LabelWidth, LabelHeight float64

	// Columns and Rows lay the labels out in a grid; labels per sheet
	// is Columns*Rows.
	Columns, Rows int

	// SheetWidth and SheetHeight are the physical page dimensions.
	SheetWidth, SheetHeight float64

	// PrinterMargin is the unprintable border on every side.
	PrinterMargin float64

	// ContentRotation is 0 or 90. When 90, label content is authored
	// in a landscape LabelHeight x LabelWidth frame and rotated
	// clockwise onto the portrait cell.
	ContentRotation int

	// MaxNameLength bounds the normalized product name, in runes.
	MaxNameLength int

	// MinFontSize and MaxFontSize bound the font-fit search for the
	// product name. Brand text searches the same range.
	MinFontSize, MaxFontSize float64

	// GroupSeparator is inserted into the human-readable barcode
	// caption ("-" or " ").
	GroupSeparator string

	// UserLength bounds the username in the audit string, in runes.
	UserLength int
}

// LabelsPerSheet returns the number of labels on one sheet.
func (s Spec) LabelsPerSheet() int {
	return s.Columns * s.Rows
}

// ContentSize returns the dimensions of the frame label content is
// authored in. For rotated specs this is the landscape
// LabelHeight x LabelWidth frame.
func (s Spec) ContentSize() (w, h float64) {
	if s.ContentRotation == 90 {
		return s.LabelHeight, s.LabelWidth
	}
	return s.LabelWidth, s.LabelHeight
}

// Text-region fractions of the content frame. The product name gets
// the large middle band; the brand gets a slim band above it.
const (
	regionWidthFrac   = 0.90
	productHeightFrac = 0.34
	brandHeightFrac   = 0.14
)

// ProductRegion returns the content-frame rectangle reserved for the
// product name, in content coordinates.
func (s Spec) ProductRegion() Rect {
	w, h := s.ContentSize()
	return Rect{
		X: w * (1 - regionWidthFrac) / 2,
		Y: h * (brandHeightFrac + 0.06),
		W: w * regionWidthFrac,
		H: h * productHeightFrac,
	}
}

// BrandRegion returns the content-frame rectangle reserved for the
// brand line, in content coordinates.
func (s Spec) BrandRegion() Rect {
	w, h := s.ContentSize()
	return Rect{
		X: w * (1 - regionWidthFrac) / 2,
		Y: h * 0.03,
		W: w * regionWidthFrac,
		H: h * brandHeightFrac,
	}
}

// validate checks a Spec's internal consistency at registration time.
func (s Spec) validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("labelsheet: spec has no name")
	case s.Columns < 1 || s.Rows < 1:
		return fmt.Errorf("labelsheet: spec %q: grid %dx%d is empty", s.Name, s.Columns, s.Rows)
	case s.LabelWidth <= 0 || s.LabelHeight <= 0:
		return fmt.Errorf("labelsheet: spec %q: non-positive label size", s.Name)
	case s.ContentRotation != 0 && s.ContentRotation != 90:
		return fmt.Errorf("labelsheet: spec %q: content rotation must be 0 or 90, got %d", s.Name, s.ContentRotation)
	case s.MinFontSize <= 0 || s.MaxFontSize < s.MinFontSize:
		return fmt.Errorf("labelsheet: spec %q: bad font range [%v, %v]", s.Name, s.MinFontSize, s.MaxFontSize)
	}
	gridW := float64(s.Columns) * s.LabelWidth
	gridH := float64(s.Rows) * s.LabelHeight
	printW := s.SheetWidth - 2*s.PrinterMargin
	printH := s.SheetHeight - 2*s.PrinterMargin
	if gridW > printW || gridH > printH {
		return fmt.Errorf("labelsheet: spec %q: %gx%g grid exceeds %gx%g printable area",
			s.Name, gridW, gridH, printW, printH)
	}
	return nil
}

// US-Letter sheet constants shared by the built-in formats.
const (
	letterWidth   = 612 // 8.5in
	letterHeight  = 792 // 11in
	defaultMargin = 18  // 0.25in
)

// builtinSpecs is the catalog of supported formats. Format differences
// are data here, not code: every engine component is parameterized by
// the Spec it receives.
var builtinSpecs = []Spec{
	{
		Name:        "12-up-portrait",
		LabelWidth:  288, LabelHeight: 108,
		Columns: 2, Rows: 6,
		SheetWidth: letterWidth, SheetHeight: letterHeight,
		PrinterMargin:  defaultMargin,
		MaxNameLength:  40,
		MinFontSize:    6, MaxFontSize: 14,
		GroupSeparator: "-",
		UserLength:     12,
	},
	{
		Name:        "2-up-oversize",
		LabelWidth:  540, LabelHeight: 324,
		Columns: 1, Rows: 2,
		SheetWidth: letterWidth, SheetHeight: letterHeight,
		PrinterMargin:  defaultMargin,
		MaxNameLength:  90,
		MinFontSize:    10, MaxFontSize: 30,
		GroupSeparator: " ",
		UserLength:     24,
	},
	{
		Name:        "4-up-horizontal",
		LabelWidth:  288, LabelHeight: 216,
		Columns: 2, Rows: 2,
		SheetWidth: letterWidth, SheetHeight: letterHeight,
		PrinterMargin:  defaultMargin,
		MaxNameLength:  60,
		MinFontSize:    8, MaxFontSize: 22,
		GroupSeparator: "-",
		UserLength:     18,
	},
	{
		Name:        "4-up-rotated",
		LabelWidth:  252, LabelHeight: 360,
		Columns: 2, Rows: 2,
		SheetWidth: letterWidth, SheetHeight: letterHeight,
		PrinterMargin:   defaultMargin,
		ContentRotation: 90,
		MaxNameLength:   70,
		MinFontSize:     8, MaxFontSize: 22,
		GroupSeparator:  " ",
		UserLength:      18,
	},
}

// Registry maps format names to Specs. Selecting an unknown name is a
// configuration error surfaced before any layout work begins.
//
// A Registry is immutable after construction; build custom catalogs
// with NewRegistry.
type Registry struct {
	specs map[string]Spec
}

// NewRegistry builds a catalog from the given specs. Every spec is
// consistency-checked; duplicate names are rejected.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{specs: make(map[string]Spec, len(specs))}
	for _, s := range specs {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.specs[s.Name]; dup {
			return nil, fmt.Errorf("labelsheet: duplicate spec name %q", s.Name)
		}
		r.specs[s.Name] = s
	}
	return r, nil
}

// defaultRegistry holds the built-in catalog. The built-ins are
// validated by TestBuiltinSpecsValid rather than at init, so a bad
// constant fails loudly in CI instead of panicking importers.
var defaultRegistry = &Registry{specs: func() map[string]Spec {
	m := make(map[string]Spec, len(builtinSpecs))
	for _, s := range builtinSpecs {
		m[s.Name] = s
	}
	return m
}()}

// DefaultRegistry returns the catalog of built-in formats:
// "12-up-portrait", "2-up-oversize", "4-up-horizontal", "4-up-rotated".
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup returns the Spec registered under name. Unknown names return
// an error wrapping ErrUnknownFormat.
func (r *Registry) Lookup(name string) (Spec, error) {
	s, ok := r.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("labelsheet: format %q: %w (have %v)", name, ErrUnknownFormat, r.Names())
	}
	return s, nil
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
