package labelsheet

// BatchItem pairs one inventory record with its per-run metadata.
type BatchItem struct {
	Item SourceItem
	Data EnhancedData
}

// BatchResult is the outcome of paginating a batch: the plans that
// succeeded, in draw order, plus the per-item failures. A batch with
// errors is a partial success, not a failure; only a configuration
// problem aborts the whole batch.
type BatchResult struct {
	Spec   Spec
	Plans  []RenderPlan
	Errors []*ItemError
}

// Pages returns the number of sheets the batch occupies.
func (r *BatchResult) Pages() int {
	if len(r.Plans) == 0 {
		return 0
	}
	return r.Plans[len(r.Plans)-1].Position.Page + 1
}

// UnusedSlots returns the empty slot rectangles on the final page, in
// slot order. Callers that draw blank placeholders for unused positions
// use these; the engine itself emits no padding plans.
func (r *BatchResult) UnusedSlots() []Rect {
	if len(r.Plans) == 0 {
		return nil
	}
	last := r.Plans[len(r.Plans)-1].Position.Slot
	per := r.Spec.LabelsPerSheet()
	var rects []Rect
	for slot := last + 1; slot < per; slot++ {
		cell, err := PositionFor(slot, r.Spec)
		if err != nil {
			break
		}
		rects = append(rects, cell)
	}
	return rects
}

// Paginate flattens the batch into an ordered stream of label copies
// and assigns each to a page and slot, starting a new page exactly when
// a sheet fills. Input item order is preserved, then copy order within
// an item, so the emitted plans are already in the pageIndex-then-slot
// order a single-cursor document back-end needs.
//
// Items that fail validation are collected into the result's Errors and
// do not consume slots. Paginate fails outright only when the Spec
// itself is unusable.
func Paginate(items []BatchItem, spec Spec, opts ...Option) (*BatchResult, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	asm := NewAssembler(spec, opts...)
	result := &BatchResult{Spec: spec}
	per := spec.LabelsPerSheet()

	global := 0
	for i, bi := range items {
		plans, err := asm.Assemble(bi.Item, bi.Data)
		if err != nil {
			result.Errors = append(result.Errors, &ItemError{
				Index: i,
				SKU:   bi.Item.SKU,
				Err:   err,
			})
			continue
		}
		for _, plan := range plans {
			slot := global % per
			cell, err := PositionFor(slot, spec)
			if err != nil {
				return nil, err
			}
			plan.Position = SheetPosition{
				Page:      global / per,
				Slot:      slot,
				Frame:     cell,
				Rotation:  spec.ContentRotation,
				Transform: ContentTransform(cell, spec),
			}
			result.Plans = append(result.Plans, plan)
			global++
		}
	}
	return result, nil
}

// Generate resolves a format name against the default registry and
// paginates the batch. Unknown names are a configuration error
// (wrapping ErrUnknownFormat) and abort before any plan is produced.
func Generate(items []BatchItem, formatName string, opts ...Option) (*BatchResult, error) {
	spec, err := DefaultRegistry().Lookup(formatName)
	if err != nil {
		return nil, err
	}
	return Paginate(items, spec, opts...)
}
