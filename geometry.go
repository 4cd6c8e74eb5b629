package labelsheet

import "fmt"

// printableArea returns the sheet rectangle inside the printer margins.
func printableArea(spec Spec) Rect {
	return Rect{
		X: spec.PrinterMargin,
		Y: spec.PrinterMargin,
		W: spec.SheetWidth - 2*spec.PrinterMargin,
		H: spec.SheetHeight - 2*spec.PrinterMargin,
	}
}

// gridOrigin returns the top-left corner of the label grid, centered
// within the printable area.
func gridOrigin(spec Spec) Point {
	area := printableArea(spec)
	gridW := float64(spec.Columns) * spec.LabelWidth
	gridH := float64(spec.Rows) * spec.LabelHeight
	return Point{
		X: area.X + (area.W-gridW)/2,
		Y: area.Y + (area.H-gridH)/2,
	}
}

// PositionFor returns the absolute page rectangle of the labeled slot.
// Slots are numbered row-major: left to right, then top to bottom,
// 0..LabelsPerSheet()-1.
func PositionFor(slot int, spec Spec) (Rect, error) {
	if slot < 0 || slot >= spec.LabelsPerSheet() {
		return Rect{}, fmt.Errorf("labelsheet: slot %d out of range [0, %d) for %q",
			slot, spec.LabelsPerSheet(), spec.Name)
	}
	origin := gridOrigin(spec)
	col := slot % spec.Columns
	row := slot / spec.Columns
	return Rect{
		X: origin.X + float64(col)*spec.LabelWidth,
		Y: origin.Y + float64(row)*spec.LabelHeight,
		W: spec.LabelWidth,
		H: spec.LabelHeight,
	}, nil
}

// ContentTransform returns the matrix mapping content-frame coordinates
// onto the page for the given cell. For unrotated specs this is a plain
// translation to the cell's corner. For rotated specs the content is
// authored landscape (see Spec.ContentSize) and the transform centers
// it on the cell and turns it 90 degrees clockwise in one composed
// step, so every element of the label stays mutually aligned.
func ContentTransform(cell Rect, spec Spec) Matrix {
	if spec.ContentRotation == 0 {
		return Translate(cell.X, cell.Y)
	}
	cw, ch := spec.ContentSize()
	center := cell.Center()
	// Translate the content frame so its center hits the cell center,
	// then rotate the whole frame about that point.
	place := Translate(center.X-cw/2, center.Y-ch/2)
	return RotateAroundDegrees(center, float64(spec.ContentRotation)).Multiply(place)
}
