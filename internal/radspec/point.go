package radspec

import "math"

type Real = float64

// Point2f is a continuous 2D sample or position.
type Point2f struct {
	X, Y Real
}

// Point2i is a discrete 2D coordinate (pixel, grid cell).
type Point2i struct {
	X, Y int
}

// Add returns the componentwise sum.
func (p Point2f) Add(q Point2f) Point2f { return Point2f{p.X + q.X, p.Y + q.Y} }
func (p Point2f) Sub(q Point2f) Point2f { return Point2f{p.X - q.X, p.Y - q.Y} }
func (p Point2f) Mul(s Real) Point2f    { return Point2f{p.X * s, p.Y * s} }

// Floor truncates towards -Inf on both axes.
func (p Point2f) Floor() Point2i {
	return Point2i{int(math.Floor(p.X)), int(math.Floor(p.Y))}
}

// lerp maps t in [0,1] onto [a,b]; NaN/Inf propagate unchanged.
func lerp(a, b, t Real) Real { return a + (b-a)*t }

// lerp2 interpolates each axis independently.
func lerp2(a, b, t Point2f) Point2f {
	return Point2f{lerp(a.X, b.X, t.X), lerp(a.Y, b.Y, t.Y)}
}
