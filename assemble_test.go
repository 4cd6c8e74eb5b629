package labelsheet

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/labelsheet/labelsheet/text"
)

var testBrands = []string{"Curaleaf", "Wyld", "Grassroots"}

func fixedClock() func() time.Time {
	stamp := time.Date(2026, time.March, 14, 15, 4, 0, 0, time.UTC)
	return func() time.Time { return stamp }
}

func testItem() SourceItem {
	return SourceItem{
		SKU:         "CL-1042",
		Barcode:     "AB12-34",
		ProductName: "Curaleaf Pink Champagne Capsules",
	}
}

func newTestAssembler(t *testing.T, format string, opts ...Option) *Assembler {
	t.Helper()
	spec, err := DefaultRegistry().Lookup(format)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", format, err)
	}
	base := []Option{
		WithBrandDictionary(testBrands),
		WithUser("mbeck"),
		WithClock(fixedClock()),
	}
	return NewAssembler(spec, append(base, opts...)...)
}

// --------------------------------------------------------------------------
// Assemble
// --------------------------------------------------------------------------

func TestAssembleBasics(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	plans, err := asm.Assemble(testItem(), EnhancedData{LabelQuantity: 3})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("got %d plans, want 3", len(plans))
	}

	for i, plan := range plans {
		if plan.CopyIndex != i {
			t.Errorf("plan %d has CopyIndex %d", i, plan.CopyIndex)
		}
		if plan.Brand.Brand != "Curaleaf" || plan.Brand.Method != text.MethodExact {
			t.Errorf("plan %d brand split = %+v", i, plan.Brand)
		}
		if plan.ProductText != "Pink Champagne Capsules" {
			t.Errorf("plan %d ProductText = %q", i, plan.ProductText)
		}
		if !plan.Barcode.Valid || plan.Barcode.Cleaned != "AB1234" {
			t.Errorf("plan %d barcode = %+v", i, plan.Barcode)
		}
		if plan.Barcode.DisplayGrouped != "AB-12-34" {
			t.Errorf("plan %d DisplayGrouped = %q, want AB-12-34", i, plan.Barcode.DisplayGrouped)
		}
	}
}

func TestAssembleRejectsUnidentifiableItem(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	_, err := asm.Assemble(SourceItem{Size: "1g"}, EnhancedData{LabelQuantity: 2})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error %T is not *ValidationError", err)
	}
	if !errors.Is(err, ErrNoIdentifier) {
		t.Errorf("error %v does not wrap ErrNoIdentifier", err)
	}
}

func TestAssembleFontSizesWithinSpecRange(t *testing.T) {
	names := []string{
		"X",
		"Pink Champagne Capsules",
		strings.Repeat("Extremely Long Product Name ", 6),
	}
	for _, format := range []string{"12-up-portrait", "2-up-oversize", "4-up-rotated"} {
		asm := newTestAssembler(t, format)
		spec := asm.spec
		for _, name := range names {
			plans, err := asm.Assemble(SourceItem{SKU: "S1", ProductName: name}, EnhancedData{LabelQuantity: 1})
			if err != nil {
				t.Fatalf("%s: Assemble failed: %v", format, err)
			}
			size := plans[0].FontSizes.Product
			if size < spec.MinFontSize || size > spec.MaxFontSize {
				t.Errorf("%s: product size %v outside [%v, %v] for %.20q",
					format, size, spec.MinFontSize, spec.MaxFontSize, name)
			}
		}
	}
}

func TestAssembleBrandFontOnlyWhenDetected(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")

	with, _ := asm.Assemble(testItem(), EnhancedData{LabelQuantity: 1})
	if with[0].FontSizes.Brand == 0 {
		t.Error("expected brand font size for detected brand")
	}

	without, _ := asm.Assemble(SourceItem{SKU: "S2", ProductName: "Pink Champagne"}, EnhancedData{LabelQuantity: 1})
	if without[0].FontSizes.Brand != 0 {
		t.Errorf("expected zero brand font size, got %v", without[0].FontSizes.Brand)
	}
}

func TestAssembleRecordedBrandOutranksDictionary(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	item := SourceItem{
		SKU:         "S3",
		ProductName: "Sunshine Sour Diesel",
		Brand:       "Sunshine",
	}
	plans, err := asm.Assemble(item, EnhancedData{LabelQuantity: 1})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if plans[0].Brand.Brand != "Sunshine" || plans[0].Brand.Method != text.MethodExact {
		t.Errorf("brand split = %+v, want recorded brand exact match", plans[0].Brand)
	}
}

// --------------------------------------------------------------------------
// Box numbering
// --------------------------------------------------------------------------

func TestAssembleBoxNumbers(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	plans, err := asm.Assemble(testItem(), EnhancedData{LabelQuantity: 6, BoxCount: 2})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	want := []int{1, 1, 1, 2, 2, 2}
	for i, plan := range plans {
		if plan.BoxNumber != want[i] {
			t.Errorf("copy %d box %d, want %d", i, plan.BoxNumber, want[i])
		}
		if plan.TotalBoxes != 2 {
			t.Errorf("copy %d TotalBoxes = %d, want 2", i, plan.TotalBoxes)
		}
	}
}

func TestAssembleBoxNumbersUneven(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	plans, _ := asm.Assemble(testItem(), EnhancedData{LabelQuantity: 5, BoxCount: 3})
	// Even distribution buckets: floor(i*3/5)+1.
	want := []int{1, 1, 2, 2, 3}
	for i, plan := range plans {
		if plan.BoxNumber != want[i] {
			t.Errorf("copy %d box %d, want %d", i, plan.BoxNumber, want[i])
		}
	}
}

func TestAssembleDefaultsQuantityAndBoxes(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	plans, err := asm.Assemble(testItem(), EnhancedData{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}
	if plans[0].BoxNumber != 1 || plans[0].TotalBoxes != 1 {
		t.Errorf("box = %d/%d, want 1/1", plans[0].BoxNumber, plans[0].TotalBoxes)
	}
}

// --------------------------------------------------------------------------
// Barcode selection
// --------------------------------------------------------------------------

func TestAssembleBarcodeFallsBackToSKU(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	plans, _ := asm.Assemble(SourceItem{SKU: "CL-1042", ProductName: "Thing"}, EnhancedData{LabelQuantity: 1})
	bc := plans[0].Barcode
	if !bc.Valid || bc.Cleaned != "CL1042" || bc.Synthetic {
		t.Errorf("barcode = %+v, want valid CL1042 from SKU", bc)
	}
}

func TestAssembleSyntheticBarcode(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	plans, _ := asm.Assemble(SourceItem{ProductName: "Nameless Gummies"}, EnhancedData{LabelQuantity: 1})
	bc := plans[0].Barcode
	if !bc.Valid || !bc.Synthetic {
		t.Fatalf("barcode = %+v, want valid synthetic", bc)
	}
	if !strings.HasPrefix(bc.Cleaned, "LBL") {
		t.Errorf("synthetic value %q missing LBL prefix", bc.Cleaned)
	}

	// Same item, same minute: identical synthetic value.
	again, _ := asm.Assemble(SourceItem{ProductName: "Nameless Gummies"}, EnhancedData{LabelQuantity: 1})
	if again[0].Barcode.Cleaned != bc.Cleaned {
		t.Errorf("synthetic barcode not stable within a minute: %q vs %q",
			again[0].Barcode.Cleaned, bc.Cleaned)
	}
}

func TestAssembleNoFallbackBarcode(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait", WithoutFallbackBarcode())
	plans, err := asm.Assemble(SourceItem{ProductName: "Nameless Gummies"}, EnhancedData{LabelQuantity: 1})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	bc := plans[0].Barcode
	if bc.Valid {
		t.Errorf("expected invalid barcode with fallback disabled, got %+v", bc)
	}
	if bc.ErrorMessage == "" {
		t.Error("expected a descriptive error message")
	}
}

func TestAssembleInvalidBarcodeStillProducesPlan(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	item := testItem()
	item.Barcode = "12-34 ab" // lowercase is outside the alphabet
	plans, err := asm.Assemble(item, EnhancedData{LabelQuantity: 2})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}
	bc := plans[0].Barcode
	if bc.Valid {
		t.Error("lowercase barcode accepted")
	}
	if bc.ErrorMessage == "" || bc.Symbol != nil {
		t.Errorf("invalid barcode carries %+v", bc)
	}
}

// --------------------------------------------------------------------------
// Dates and audit
// --------------------------------------------------------------------------

func TestAssembleDates(t *testing.T) {
	asm := newTestAssembler(t, "12-up-portrait")
	data := EnhancedData{
		LabelQuantity: 1,
		HarvestDate:   "2026-01-15",
		PackagedDate:  "sometime soon",
	}
	plans, _ := asm.Assemble(testItem(), data)
	if got := plans[0].HarvestDate; got.Value != "01/15/2026" || !got.Recognized {
		t.Errorf("HarvestDate = %+v", got)
	}
	if got := plans[0].PackagedDate; got.Value != "sometime soon" || got.Recognized {
		t.Errorf("PackagedDate = %+v, want unrecognized passthrough", got)
	}
}

func TestAuditString(t *testing.T) {
	at := time.Date(2026, time.March, 14, 15, 4, 0, 0, time.UTC)
	tests := []struct {
		name    string
		user    string
		maxUser int
		want    string
	}{
		{"with user", "mbeck", 12, "03/14/26 3:04 PM (mbeck)"},
		{"no user", "", 12, "03/14/26 3:04 PM"},
		{"truncated user", "averylongusername", 8, "03/14/26 3:04 PM (averylon)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auditString(at, tt.user, tt.maxUser)
			if got != tt.want {
				t.Errorf("auditString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuditMorning(t *testing.T) {
	at := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	if got := auditString(at, "", 0); got != "03/02/26 9:30 AM" {
		t.Errorf("auditString = %q, want %q", got, "03/02/26 9:30 AM")
	}
}

// --------------------------------------------------------------------------
// Determinism
// --------------------------------------------------------------------------

func TestAssembleDeterministic(t *testing.T) {
	a := newTestAssembler(t, "4-up-rotated")
	b := newTestAssembler(t, "4-up-rotated")

	item := testItem()
	data := EnhancedData{LabelQuantity: 4, BoxCount: 2, HarvestDate: "01/02/26"}

	plansA, err := a.Assemble(item, data)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	plansB, err := b.Assemble(item, data)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(plansA) != len(plansB) {
		t.Fatalf("plan counts differ: %d vs %d", len(plansA), len(plansB))
	}
	for i := range plansA {
		// Symbol holds a slice, so compare the scalar surfaces.
		pa, pb := plansA[i], plansB[i]
		pa.Barcode.Symbol, pb.Barcode.Symbol = nil, nil
		if pa != pb {
			t.Errorf("plan %d differs between identical runs:\n%+v\n%+v", i, pa, pb)
		}
	}
}
