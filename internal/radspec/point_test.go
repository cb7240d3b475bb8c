package radspec

import (
	"math"
	"testing"
)

func TestPoint2fOps(t *testing.T) {
	p := Point2f{1.5, -2}
	q := Point2f{0.5, 3}
	if r := p.Add(q); r != (Point2f{2, 1}) {
		t.Fatalf("Add mismatch: %+v", r)
	}
	if r := p.Sub(q); r != (Point2f{1, -5}) {
		t.Fatalf("Sub mismatch: %+v", r)
	}
	if r := p.Mul(2); r != (Point2f{3, -4}) {
		t.Fatalf("Mul mismatch: %+v", r)
	}
	if r := (Point2f{-0.25, 2.75}).Floor(); r != (Point2i{-1, 2}) {
		t.Fatalf("Floor mismatch: %+v", r)
	}
}

func TestLerp(t *testing.T) {
	if v := lerp(2, 4, 0.25); v != 2.5 {
		t.Fatalf("lerp=%g", v)
	}
	if v := lerp(0, 1, math.NaN()); !math.IsNaN(v) {
		t.Fatalf("NaN must propagate, got %g", v)
	}
	r := lerp2(Point2f{-1, 0}, Point2f{1, 10}, Point2f{0.5, 0.1})
	if r != (Point2f{0, 1}) {
		t.Fatalf("lerp2 mismatch: %+v", r)
	}
}
