package labelsheet

import "testing"

func TestRectCenter(t *testing.T) {
	r := R(10, 20, 40, 10)
	if got := r.Center(); got != Pt(30, 25) {
		t.Errorf("Center() = %v, want (30, 25)", got)
	}
}

func TestRectInset(t *testing.T) {
	r := R(10, 10, 100, 50)
	got := r.Inset(5)
	want := R(15, 15, 90, 40)
	if got != want {
		t.Errorf("Inset(5) = %+v, want %+v", got, want)
	}

	// Over-large inset collapses to the center instead of going
	// negative.
	collapsed := r.Inset(60)
	if collapsed.W != 0 || collapsed.H != 0 {
		t.Errorf("Inset(60) = %+v, want zero size", collapsed)
	}
	if c := r.Center(); collapsed.X != c.X || collapsed.Y != c.Y {
		t.Errorf("collapsed rect at %v, want center %v", Pt(collapsed.X, collapsed.Y), c)
	}
}

func TestRectContains(t *testing.T) {
	r := R(0, 0, 10, 10)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(5, 5), true},
		{"corner inclusive", Pt(0, 0), true},
		{"far corner inclusive", Pt(10, 10), true},
		{"outside x", Pt(11, 5), false},
		{"outside y", Pt(5, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := R(0, 0, 10, 10)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", R(0, 0, 10, 10), true},
		{"partial", R(5, 5, 10, 10), true},
		{"touching edge", R(10, 0, 10, 10), false},
		{"touching corner", R(10, 10, 5, 5), false},
		{"disjoint", R(20, 20, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.b, got, tt.want)
			}
			if back := tt.b.Overlaps(a); back != tt.want {
				t.Errorf("Overlaps not symmetric for %+v", tt.b)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, 4)); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := Pt(5, 5).Sub(Pt(2, 1)); got != Pt(3, 4) {
		t.Errorf("Sub = %v, want (3, 4)", got)
	}
}
