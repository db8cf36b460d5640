/*package integrate wraps the quadrature chores shared by the radiative
and absorption packages: building log-spaced grids and integrating
tabulated functions that vary over many decades.*/
package integrate

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// LogSpace returns n points spaced logarithmically over [lo, hi],
// inclusive on both ends. lo and hi must be positive and n >= 2.
func LogSpace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	llo, lhi := math.Log10(lo), math.Log10(hi)
	dx := (lhi - llo) / float64(n-1)
	for i := range xs {
		xs[i] = math.Pow(10, llo+dx*float64(i))
	}
	xs[n-1] = hi
	return xs
}

// LinSpace returns n points spaced linearly over [lo, hi].
func LinSpace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[n-1] = hi
	return xs
}

// Trapezoid integrates ys sampled at xs. xs must be increasing.
func Trapezoid(xs, ys []float64) float64 {
	return integrate.Trapezoidal(xs, ys)
}

// Func integrates f over [lo, hi] with n trapezoid points.
func Func(f func(float64) float64, lo, hi float64, n int) float64 {
	xs := LinSpace(lo, hi, n)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = f(x)
	}
	return integrate.Trapezoidal(xs, ys)
}

// LogFunc integrates f over [lo, hi] on a log-spaced grid via the
// substitution u = ln x, which is exact for power laws between nodes
// in the same way the plain rule is exact for straight lines. Both
// bounds must be positive.
func LogFunc(f func(float64) float64, lo, hi float64, n int) float64 {
	if lo >= hi {
		return 0
	}
	xs := LogSpace(lo, hi, n)
	us := make([]float64, n)
	ys := make([]float64, n)
	for i, x := range xs {
		us[i] = math.Log(x)
		ys[i] = f(x) * x
	}
	return integrate.Trapezoidal(us, ys)
}
