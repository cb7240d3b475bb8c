package radspec

import "fmt"

// PiecewiseConstant2D samples a width x height step function over [min,max]:
// the marginal picks a row from the row integrals, then that row's own
// conditional distribution picks the column.
type PiecewiseConstant2D struct {
	conditional []*PiecewiseConstant1D // one per row
	marginal    *PiecewiseConstant1D
	min, max    Point2f
	width       int
	height      int
}

// NewPiecewiseConstant2D builds the distribution from row-major weights
// (len(f) == width*height). Dimensions must be positive.
func NewPiecewiseConstant2D(f []Real, width, height int, min, max Point2f) *PiecewiseConstant2D {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("radspec: 2D distribution size must be positive, got %dx%d", width, height))
	}
	if len(f) != width*height {
		panic(fmt.Sprintf("radspec: 2D distribution expects %d weights, got %d", width*height, len(f)))
	}
	conditional := make([]*PiecewiseConstant1D, height)
	rowIntegrals := make([]Real, height)
	for j := 0; j < height; j++ {
		conditional[j] = NewPiecewiseConstant1D(f[j*width:(j+1)*width], min.X, max.X)
		rowIntegrals[j] = conditional[j].Integral()
	}
	d := &PiecewiseConstant2D{
		conditional: conditional,
		marginal:    NewPiecewiseConstant1D(rowIntegrals, min.Y, max.Y),
		min:         min,
		max:         max,
		width:       width,
		height:      height,
	}
	DebugLog("Created 2D distribution: %dx%d, domain=[%+v, %+v], integral=%g", width, height, min, max, d.Integral())
	return d
}

func (d *PiecewiseConstant2D) Width() int  { return d.width }
func (d *PiecewiseConstant2D) Height() int { return d.height }

// Integral is the marginal's integral, i.e. the integral of |f| over x then y.
func (d *PiecewiseConstant2D) Integral() Real { return d.marginal.Integral() }

// Domain returns the lower and upper corners.
func (d *PiecewiseConstant2D) Domain() (min, max Point2f) { return d.min, d.max }

// Conditional returns the distribution of row j.
func (d *PiecewiseConstant2D) Conditional(j int) *PiecewiseConstant1D { return d.conditional[j] }

// Marginal returns the distribution over rows.
func (d *PiecewiseConstant2D) Marginal() *PiecewiseConstant1D { return d.marginal }

// Sample draws a point with density proportional to |f|. The pdf is the product of
// the marginal and the chosen row's conditional; offset is the (column,row) bin.
func (d *PiecewiseConstant2D) Sample(u Point2f) (Point2f, Real, Point2i) {
	v1, pdf1, row := d.marginal.Sample(u.Y)
	v0, pdf0, col := d.conditional[row].Sample(u.X)
	return Point2f{v0, v1}, pdf0 * pdf1, Point2i{col, row}
}

// cell maps a point in the domain to its (column,row) bin. No clamping.
func (d *PiecewiseConstant2D) cell(p Point2f) Point2i {
	t := Point2f{
		(p.X - d.min.X) / (d.max.X - d.min.X),
		(p.Y - d.min.Y) / (d.max.Y - d.min.Y),
	}
	return Point2f{t.X * Real(d.width), t.Y * Real(d.height)}.Floor()
}

// Pdf returns the joint density at p. Like the 1D case, p must lie inside the domain.
func (d *PiecewiseConstant2D) Pdf(p Point2f) Real {
	integral := d.marginal.Integral()
	if integral == 0 {
		return 0
	}
	c := d.cell(p)
	return d.conditional[c.Y].f[c.X] / integral
}

// Eval returns the tabulated weight |f| of the bin containing p.
func (d *PiecewiseConstant2D) Eval(p Point2f) Real {
	c := d.cell(p)
	return d.conditional[c.Y].f[c.X]
}
