package labelsheet

import (
	"math"
	"testing"
)

const eps = 1e-9

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestRotateDegreesQuarterTurnsExact(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		in      Point
		want    Point
	}{
		{"0 is identity", 0, Pt(3, 4), Pt(3, 4)},
		{"90 clockwise", 90, Pt(1, 0), Pt(0, 1)},
		{"90 on y axis", 90, Pt(0, 1), Pt(-1, 0)},
		{"180", 180, Pt(3, 4), Pt(-3, -4)},
		{"270", 270, Pt(1, 0), Pt(0, -1)},
		{"360 wraps", 360, Pt(3, 4), Pt(3, 4)},
		{"negative 90 wraps to 270", -90, Pt(1, 0), Pt(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateDegrees(tt.degrees).Apply(tt.in)
			// Quarter turns must be exact, not merely close.
			if got != tt.want {
				t.Errorf("RotateDegrees(%v).Apply(%v) = %v, want %v", tt.degrees, tt.in, got, tt.want)
			}
		})
	}
}

func TestRotateAroundDegreesFixesCenter(t *testing.T) {
	center := Pt(100, 250)
	for _, deg := range []float64{90, 180, 270} {
		m := RotateAroundDegrees(center, deg)
		if got := m.Apply(center); !pointsClose(got, center) {
			t.Errorf("rotation by %v moved its own center: %v", deg, got)
		}
	}
}

func TestRotateAroundDegrees(t *testing.T) {
	// Rotating (10, 0) about the origin-side point (10, 10) by 90
	// clockwise: offset (0, -10) becomes (10, 0), landing at (20, 10).
	m := RotateAroundDegrees(Pt(10, 10), 90)
	got := m.Apply(Pt(10, 0))
	if !pointsClose(got, Pt(20, 10)) {
		t.Errorf("Apply = %v, want (20, 10)", got)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies other first: translate then rotate
	// differs from rotate then translate.
	rotThenMove := Translate(10, 0).Multiply(RotateDegrees(90))
	moveThenRot := RotateDegrees(90).Multiply(Translate(10, 0))

	p := Pt(1, 0)
	if got := rotThenMove.Apply(p); !pointsClose(got, Pt(10, 1)) {
		t.Errorf("rotate-then-move: got %v, want (10, 1)", got)
	}
	if got := moveThenRot.Apply(p); !pointsClose(got, Pt(0, 11)) {
		t.Errorf("move-then-rotate: got %v, want (0, 11)", got)
	}
}

func TestApplyRectQuarterTurn(t *testing.T) {
	// A 90-degree turn about a rect's center swaps its width and
	// height in place.
	r := R(10, 20, 40, 10)
	m := RotateAroundDegrees(r.Center(), 90)
	got := m.ApplyRect(r)
	want := R(25, 5, 10, 40)
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps ||
		math.Abs(got.W-want.W) > eps || math.Abs(got.H-want.H) > eps {
		t.Errorf("ApplyRect = %+v, want %+v", got, want)
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("translation reported as identity")
	}
	if !RotateDegrees(0).IsIdentity() {
		t.Error("zero rotation should be identity")
	}
}
