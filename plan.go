package labelsheet

import (
	"github.com/labelsheet/labelsheet/code39"
	"github.com/labelsheet/labelsheet/text"
)

// SourceItem is a read-only projection of one inventory record. The
// engine never mutates it; free-text fields beyond the identifying
// trio are used opportunistically for display.
type SourceItem struct {
	SKU         string
	Barcode     string
	ProductName string

	// Brand is the brand as originally recorded, if any. Brand
	// detection runs regardless; a recorded brand is simply prepended
	// to the dictionary for the split.
	Brand string

	// Source tags the record's origin for display ("import", "scan").
	Source string

	Size     string
	Strain   string
	Location string
}

// EnhancedData is the user-entered metadata for one generation run of
// an item.
type EnhancedData struct {
	// LabelQuantity is the number of physical copies to produce.
	// Values below 1 are treated as 1.
	LabelQuantity int

	// CaseQuantity is an optional units-per-case count for display;
	// zero means unset.
	CaseQuantity int

	// BoxCount optionally distributes the copies across numbered
	// boxes; zero or one means a single box.
	BoxCount int

	// HarvestDate and PackagedDate are free text in one of the
	// accepted date patterns; anything else passes through with a
	// warning flag.
	HarvestDate  string
	PackagedDate string
}

// quantity returns the effective copy count.
func (d EnhancedData) quantity() int {
	if d.LabelQuantity < 1 {
		return 1
	}
	return d.LabelQuantity
}

// boxes returns the effective box count.
func (d EnhancedData) boxes() int {
	if d.BoxCount < 1 {
		return 1
	}
	return d.BoxCount
}

// BarcodeSymbol is the validated barcode of one label. When Valid is
// false no symbol is generated and the renderer draws a visible error
// placeholder instead; the label itself is still produced.
type BarcodeSymbol struct {
	Valid bool

	// Cleaned is the uppercased, punctuation-stripped value the symbol
	// encodes.
	Cleaned string

	// DisplayGrouped is the separator-grouped caption shown under the
	// symbol. Display only: it must never be re-encoded.
	DisplayGrouped string

	// Symbol is the renderable bar/space sequence; nil when invalid.
	Symbol *code39.Symbol

	// ErrorMessage describes the failure when Valid is false.
	ErrorMessage string

	// Synthetic is true when the value was generated as a fallback
	// because the item carried no barcode or SKU.
	Synthetic bool
}

// FontSizes carries the fitted sizes for a label's text regions. Brand
// is zero when no brand line is drawn.
type FontSizes struct {
	Product float64
	Brand   float64
}

// SheetPosition locates one label copy on the physical output.
type SheetPosition struct {
	// Page is the 0-based page index; non-decreasing in plan order.
	Page int

	// Slot is the 0-based within-page slot, row-major.
	Slot int

	// Frame is the absolute page rectangle of the label cell.
	Frame Rect

	// Rotation is the content rotation in degrees (0 or 90).
	Rotation int

	// Transform maps content-frame coordinates onto the page. Apply it
	// once per label before issuing drawing calls; with it applied,
	// rotated and unrotated labels render through identical content
	// code.
	Transform Matrix
}

// RenderPlan is the engine's output for one physical label copy:
// everything a drawing back-end needs, with no business logic left.
// A RenderPlan is never mutated after assembly.
type RenderPlan struct {
	Item SourceItem

	// Brand is the brand/product split. Brand.Remainder is the raw
	// remainder; ProductText below is its normalized display form.
	Brand text.BrandInfo

	// ProductText is the normalized, length-bounded product name to
	// draw.
	ProductText string

	// HarvestDate and PackagedDate are the normalized date fields.
	HarvestDate  text.DateText
	PackagedDate text.DateText

	// CaseQuantity mirrors EnhancedData.CaseQuantity for display.
	CaseQuantity int

	FontSizes FontSizes

	// ProductFit and BrandFit carry the full fit results, including
	// the overflow flag for degraded layouts.
	ProductFit text.FitResult
	BrandFit   text.FitResult

	Barcode BarcodeSymbol

	// Audit is the generation stamp: "MM/DD/YY H:MM AM (user)".
	Audit string

	Position SheetPosition

	// CopyIndex is 0-based and contiguous per item.
	CopyIndex int

	// BoxNumber is the 1-based box this copy belongs to when copies
	// are distributed evenly across TotalBoxes boxes.
	BoxNumber  int
	TotalBoxes int
}
