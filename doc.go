// Package labelsheet turns inventory records into print-ready label
// layouts: positioned, auto-sized, barcode-carrying render plans
// replicated across a physical label sheet.
//
// # Overview
//
// The engine is a pure layout calculator. It owns text fitting, brand
// detection, Code 39 validation, and sheet geometry, and emits
// immutable RenderPlans; it never draws. A rendering back-end consumes
// the plans with primitive rectangle/text/symbol calls plus a single
// coordinate transform when a plan is rotated.
//
// # Quick Start
//
//	spec, err := labelsheet.DefaultRegistry().Lookup("12-up-portrait")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	items := []labelsheet.BatchItem{{
//	    Item: labelsheet.SourceItem{SKU: "CL-1042", ProductName: "Curaleaf Pink Champagne Capsules"},
//	    Data: labelsheet.EnhancedData{LabelQuantity: 4},
//	}}
//
//	result, err := labelsheet.Paginate(items, spec,
//	    labelsheet.WithUser("mbeck"),
//	    labelsheet.WithBrandDictionary(brands))
//	for _, plan := range result.Plans {
//	    // plan.Position carries the absolute page rectangle and the
//	    // content transform; draw in plan order.
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Spec, Registry, RenderPlan, Paginate, Assembler
//   - text: normalization, brand splitting, font fitting
//   - code39: barcode alphabet validation and symbol encoding
//
// # Coordinate System
//
// Uses standard page coordinates in PDF points (1/72 inch):
//   - Origin (0,0) at top-left of the sheet
//   - X increases right
//   - Y increases down
//   - Rotations in degrees, clockwise
//
// # Determinism
//
// RenderPlans are pure functions of their inputs: regenerating the same
// batch against the same Spec produces identical plans, except that the
// audit string and any synthetic fallback barcode embed the clock
// (minute resolution). Inject a fixed clock with WithClock for
// byte-identical output.
package labelsheet
