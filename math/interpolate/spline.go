package interpolate

import (
	"fmt"
	"math"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline is a 1D natural cubic spline over a table of (x, y) points.
// When built with NewLogSpline the fit is done in log10-log10 space,
// which is the right thing for the power-law-like tables this library
// deals in (particle spectra, SEDs).
type Spline struct {
	xs, ys, y2s []float64
	coeffs      []splineCoeff

	logSpace bool

	// Estimate of the point spacing, used to seed the bin search.
	dx float64
}

// NewSpline creates a spline from a table of x and y values. The xs
// must be strictly increasing and there must be at least two of them.
//
// xs and ys are copied and may be modified afterwards.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"spline table has len(xs) = %d but len(ys) = %d.",
			len(xs), len(ys),
		)
	} else if len(xs) <= 1 {
		return nil, fmt.Errorf("spline table has length %d.", len(xs))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			return nil, fmt.Errorf(
				"spline table not strictly increasing at index %d.", i+1,
			)
		}
	}

	sp := new(Spline)
	sp.xs = make([]float64, len(xs))
	sp.ys = make([]float64, len(xs))
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)
	copy(sp.xs, xs)
	copy(sp.ys, ys)

	sp.dx = (sp.xs[len(xs)-1] - sp.xs[0]) / float64(len(xs)-1)

	sp.calcY2s()
	sp.calcCoeffs()
	return sp, nil
}

// NewLogSpline creates a spline fit in log10-log10 space. All xs and ys
// must be positive.
func NewLogSpline(xs, ys []float64) (*Spline, error) {
	lxs := make([]float64, len(xs))
	lys := make([]float64, len(ys))
	for i := range xs {
		if i < len(ys) && (xs[i] <= 0 || ys[i] <= 0) {
			return nil, fmt.Errorf(
				"log spline table has non-positive entry (%g, %g) at index %d.",
				xs[i], ys[i], i,
			)
		}
		lxs[i] = math.Log10(xs[i])
	}
	for i := range ys {
		lys[i] = math.Log10(ys[i])
	}

	sp, err := NewSpline(lxs, lys)
	if err != nil {
		return nil, err
	}
	sp.logSpace = true
	return sp, nil
}

// Eval computes the value of the spline at x. Points outside the table
// range evaluate to 0 rather than being extrapolated.
func (sp *Spline) Eval(x float64) float64 {
	if sp.logSpace {
		if x <= 0 {
			return 0
		}
		x = math.Log10(x)
	}
	if x < sp.xs[0] || x > sp.xs[len(sp.xs)-1] {
		return 0
	}

	i := sp.bsearch(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	y := a*dx*dx*dx + b*dx*dx + c*dx + d

	if sp.logSpace {
		return math.Pow(10, y)
	}
	return y
}

// Range returns the x bounds of the table in the caller's units.
func (sp *Spline) Range() (lo, hi float64) {
	lo, hi = sp.xs[0], sp.xs[len(sp.xs)-1]
	if sp.logSpace {
		lo, hi = math.Pow(10, lo), math.Pow(10, hi)
	}
	return lo, hi
}

// bsearch returns the index of the largest table x smaller than x.
func (sp *Spline) bsearch(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - sp.xs[0]) / sp.dx)
	if guess >= 0 && guess < len(sp.xs)-1 &&
		sp.xs[guess] <= x && sp.xs[guess+1] >= x {

		return guess
	}

	lo, hi := 0, len(sp.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= sp.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// calcY2s computes the second derivative at every table point. Natural
// boundary conditions: the end second derivatives are set to zero.
func (sp *Spline) calcY2s() {
	n := len(sp.xs)
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	sp.y2s[0], sp.y2s[n-1] = 0, 0

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	triDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range sp.coeffs {
		h := xs[i+1] - xs[i]
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].d = ys[i]
	}
}

// triDiagAt solves a tridiagonal system in place via the Thomas
// algorithm and writes the solution into out.
func triDiagAt(as, bs, cs, rs, out []float64) {
	n := len(bs)
	if n == 0 {
		return
	}

	cps := make([]float64, n)
	dps := make([]float64, n)

	cps[0] = cs[0] / bs[0]
	dps[0] = rs[0] / bs[0]
	for i := 1; i < n; i++ {
		m := bs[i] - as[i]*cps[i-1]
		cps[i] = cs[i] / m
		dps[i] = (rs[i] - as[i]*dps[i-1]) / m
	}

	out[n-1] = dps[n-1]
	for i := n - 2; i >= 0; i-- {
		out[i] = dps[i] - cps[i]*out[i+1]
	}
}
