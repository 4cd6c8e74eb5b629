package labelsheet

import "math"

// Matrix represents a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping (x, y) to (a*x + b*y + c, d*x + e*y + f). It is the single
// transform a renderer applies when placing rotated label content:
// composed once per label, never mutated, so there is no graphics-state
// save/restore pairing to get wrong.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// RotateDegrees creates a rotation matrix. Positive angles rotate
// clockwise in the sheet's y-down coordinate system. Quarter turns are
// produced exactly (no trigonometric rounding), since label content
// rotation is always a multiple of 90.
func RotateDegrees(degrees float64) Matrix {
	switch math.Mod(math.Mod(degrees, 360)+360, 360) {
	case 0:
		return Identity()
	case 90:
		return Matrix{B: -1, D: 1}
	case 180:
		return Matrix{A: -1, E: -1}
	case 270:
		return Matrix{B: 1, D: -1}
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// RotateAroundDegrees composes translate(center) * rotate * translate(-center):
// a rotation about an arbitrary fixed point.
func RotateAroundDegrees(center Point, degrees float64) Matrix {
	return Translate(center.X, center.Y).
		Multiply(RotateDegrees(degrees)).
		Multiply(Translate(-center.X, -center.Y))
}

// Multiply returns m * other, the matrix applying other first and m
// second.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// ApplyRect transforms a rectangle and returns the axis-aligned
// bounding box of the result. For the quarter-turn rotations used in
// label layout this is the rotated rectangle itself.
func (m Matrix) ApplyRect(r Rect) Rect {
	corners := [4]Point{
		m.Apply(Point{r.X, r.Y}),
		m.Apply(Point{r.Right(), r.Y}),
		m.Apply(Point{r.X, r.Bottom()}),
		m.Apply(Point{r.Right(), r.Bottom()}),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
