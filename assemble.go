package labelsheet

import (
	"hash/fnv"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labelsheet/labelsheet/code39"
	"github.com/labelsheet/labelsheet/text"
)

// Assembler builds RenderPlans for single items against one Spec. It
// holds no per-item state and is safe for concurrent use; only slot
// assignment (Paginate) is order-dependent.
type Assembler struct {
	spec Spec
	opts engineOptions
}

// NewAssembler creates an Assembler for the given Spec.
func NewAssembler(spec Spec, opts ...Option) *Assembler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Assembler{spec: spec, opts: o}
}

// Assemble produces one RenderPlan per requested copy of the item, in
// copy order, with Position left zero for the paginator to fill.
//
// An item with no SKU, barcode, or product name is rejected whole with
// a *ValidationError: no partial plans are emitted. All other problems
// degrade instead of failing: invalid barcodes are carried in-band on
// the plan, and text that cannot fit is clamped to the minimum font
// size.
func (a *Assembler) Assemble(item SourceItem, data EnhancedData) ([]RenderPlan, error) {
	if strings.TrimSpace(item.SKU) == "" &&
		strings.TrimSpace(item.Barcode) == "" &&
		strings.TrimSpace(item.ProductName) == "" {
		return nil, &ValidationError{Reason: ErrNoIdentifier}
	}

	now := a.opts.clock()
	shared := a.assembleShared(item, data, now)

	qty := data.quantity()
	boxes := data.boxes()
	plans := make([]RenderPlan, qty)
	for i := 0; i < qty; i++ {
		plan := shared
		plan.CopyIndex = i
		plan.BoxNumber = i*boxes/qty + 1
		plan.TotalBoxes = boxes
		plans[i] = plan
	}
	return plans, nil
}

// assembleShared computes everything identical across an item's copies.
func (a *Assembler) assembleShared(item SourceItem, data EnhancedData, now time.Time) RenderPlan {
	spec := a.spec

	// A recorded brand outranks the configured dictionary.
	dict := a.opts.brandDict
	if b := strings.TrimSpace(item.Brand); b != "" {
		dict = append([]string{b}, dict...)
	}
	brand := text.SplitBrand(item.ProductName, dict)

	productText := text.Normalize(brand.Remainder, spec.MaxNameLength)

	pr := spec.ProductRegion()
	productFit := text.Fit(productText, pr.W, pr.H,
		spec.MinFontSize, spec.MaxFontSize, a.opts.measurer, true)
	if !productFit.Fits {
		Logger().Warn("product name overflows at minimum size",
			slog.String("sku", item.SKU),
			slog.String("spec", spec.Name),
			slog.Int("lines", productFit.Lines))
	}

	var brandFit text.FitResult
	if brand.Detected {
		br := spec.BrandRegion()
		brandFit = text.Fit(brand.Brand, br.W, br.H,
			spec.MinFontSize, spec.MaxFontSize, a.opts.measurer, false)
	}

	barcode := a.buildBarcode(item, now)
	harvest := a.normalizeDate(item.SKU, "harvest", data.HarvestDate)
	packaged := a.normalizeDate(item.SKU, "packaged", data.PackagedDate)

	Logger().Debug("assembled label",
		slog.String("sku", item.SKU),
		slog.String("brandMethod", brand.Method.String()),
		slog.Float64("productSize", productFit.FontSize),
		slog.Bool("barcodeValid", barcode.Valid))

	return RenderPlan{
		Item:         item,
		Brand:        brand,
		ProductText:  productText,
		HarvestDate:  harvest,
		PackagedDate: packaged,
		CaseQuantity: data.CaseQuantity,
		FontSizes:    FontSizes{Product: productFit.FontSize, Brand: brandFit.FontSize},
		ProductFit:   productFit,
		BrandFit:     brandFit,
		Barcode:      barcode,
		Audit:        auditString(now, a.opts.user, spec.UserLength),
	}
}

// normalizeDate wraps text.NormalizeDate with a warning for
// unrecognized input, which passes through unmodified.
func (a *Assembler) normalizeDate(sku, field, value string) text.DateText {
	dt := text.NormalizeDate(value)
	if !dt.Recognized {
		Logger().Warn("unrecognized date format",
			slog.String("sku", sku),
			slog.String("field", field),
			slog.String("value", value))
	}
	return dt
}

// buildBarcode picks the barcode value (item barcode, then SKU, then an
// optional synthetic fallback) and validates it against Code 39.
func (a *Assembler) buildBarcode(item SourceItem, now time.Time) BarcodeSymbol {
	value := strings.TrimSpace(item.Barcode)
	synthetic := false
	if value == "" {
		value = strings.TrimSpace(item.SKU)
	}
	if value == "" && a.opts.fallbackBarcode {
		value = syntheticBarcode(item, now)
		synthetic = true
	}

	if err := code39.Validate(value); err != nil {
		Logger().Warn("invalid barcode value",
			slog.String("sku", item.SKU),
			slog.String("err", err.Error()))
		return BarcodeSymbol{ErrorMessage: err.Error(), Synthetic: synthetic}
	}
	sym, err := code39.Encode(value)
	if err != nil {
		return BarcodeSymbol{ErrorMessage: err.Error(), Synthetic: synthetic}
	}
	return BarcodeSymbol{
		Valid:          true,
		Cleaned:        sym.Value,
		DisplayGrouped: code39.Group(sym.Value, a.spec.GroupSeparator),
		Symbol:         sym,
		Synthetic:      synthetic,
	}
}

// syntheticBarcode derives a fallback value from the item's identity
// plus a minute-resolution time suffix. Best effort only: two distinct
// items can collide, and the caller should supply a real key when
// uniqueness matters.
func syntheticBarcode(item SourceItem, now time.Time) string {
	h := fnv.New32a()
	h.Write([]byte(item.SKU))
	h.Write([]byte{0})
	h.Write([]byte(item.ProductName))
	hash := strings.ToUpper(strconv.FormatUint(uint64(h.Sum32()), 36))
	minutes := strings.ToUpper(strconv.FormatInt(now.Unix()/60, 36))
	return "LBL" + hash + minutes
}

// auditLayout renders times like "01/15/26 3:04 PM".
const auditLayout = "01/02/06 3:04 PM"

// auditString stamps who generated the label and when. The username is
// truncated to the format's limit so long names cannot crowd the label.
func auditString(now time.Time, user string, maxUser int) string {
	stamp := now.Format(auditLayout)
	user = strings.TrimSpace(user)
	if user == "" {
		return stamp
	}
	if maxUser > 0 && utf8.RuneCountInString(user) > maxUser {
		user = string([]rune(user)[:maxUser])
	}
	return stamp + " (" + user + ")"
}
