// Command labeldemo exercises the labelsheet layout engine: it builds a
// small batch, paginates it against a chosen format, and prints the
// resulting render plans as text.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/labelsheet/labelsheet"
)

func main() {
	var (
		format  = flag.String("format", "12-up-portrait", "label format name")
		user    = flag.String("user", "demo", "acting username for the audit line")
		copies  = flag.Int("copies", 5, "label copies per item")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		labelsheet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	brands := []string{"Curaleaf", "Wyld", "Grassroots", "Rythm"}
	items := []labelsheet.BatchItem{
		{
			Item: labelsheet.SourceItem{
				SKU:         "CL-1042",
				Barcode:     "AB12-34",
				ProductName: "Curaleaf Pink Champagne Capsules",
			},
			Data: labelsheet.EnhancedData{
				LabelQuantity: *copies,
				BoxCount:      2,
				HarvestDate:   "2026-01-15",
			},
		},
		{
			Item: labelsheet.SourceItem{
				SKU:         "WY-0310",
				ProductName: "Wyld Raspberry Gummies 10pk",
			},
			Data: labelsheet.EnhancedData{LabelQuantity: *copies},
		},
	}

	result, err := labelsheet.Generate(items, *format,
		labelsheet.WithUser(*user),
		labelsheet.WithBrandDictionary(brands))
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	fmt.Printf("format %s: %d plans across %d page(s)\n\n",
		*format, len(result.Plans), result.Pages())

	for _, plan := range result.Plans {
		pos := plan.Position
		fmt.Printf("page %d slot %d  [%.0f,%.0f %gx%g] rot %d\n",
			pos.Page, pos.Slot, pos.Frame.X, pos.Frame.Y, pos.Frame.W, pos.Frame.H, pos.Rotation)
		if plan.Brand.Detected {
			fmt.Printf("  brand    %s (%s, %s) @ %gpt\n",
				plan.Brand.Brand, plan.Brand.Method, plan.Brand.Confidence, plan.FontSizes.Brand)
		}
		fmt.Printf("  product  %s @ %gpt\n", plan.ProductText, plan.FontSizes.Product)
		if plan.Barcode.Valid {
			fmt.Printf("  barcode  %s (%s)\n", plan.Barcode.Cleaned, plan.Barcode.DisplayGrouped)
		} else {
			fmt.Printf("  barcode  INVALID: %s\n", plan.Barcode.ErrorMessage)
		}
		fmt.Printf("  box %d/%d  copy %d  %s\n", plan.BoxNumber, plan.TotalBoxes, plan.CopyIndex, plan.Audit)
	}

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "skipped: %v\n", e)
	}
	if unused := result.UnusedSlots(); len(unused) > 0 {
		fmt.Printf("\n%d unused slot(s) on the final page\n", len(unused))
	}
}
