package spectra

import (
	"fmt"
	"math"
)

// scaler is what the From* constructors need from a distribution: every
// concrete type keeps one multiplicative normalization that these
// constructors solve for.
type scaler interface {
	Distribution
	scale(s float64)
}

// FromTotalDensity rescales d so that its integral over gamma equals
// the requested total number density n [cm^-3].
func FromTotalDensity(d Distribution, n float64) error {
	if n <= 0 {
		return fmt.Errorf("need a positive total density, got %g.", n)
	}
	return solve(d, n, Number(d))
}

// FromEnergyDensity rescales d so that m c^2 integral gamma n(gamma)
// dgamma equals u [erg cm^-3].
func FromEnergyDensity(d Distribution, u float64) error {
	if u <= 0 {
		return fmt.Errorf("need a positive energy density, got %g.", u)
	}
	return solve(d, u, Energy(d))
}

// FromTotalEnergy rescales d so that its energy density times the given
// volume [cm^3] equals w [erg].
func FromTotalEnergy(d Distribution, w, volume float64) error {
	if w <= 0 {
		return fmt.Errorf("need a positive total energy, got %g.", w)
	}
	if volume <= 0 {
		return fmt.Errorf("need a positive volume, got %g.", volume)
	}
	return FromEnergyDensity(d, w/volume)
}

// FromDensityAtGamma1 rescales d so that its analytic form extrapolated
// to gamma = 1 equals n1. The extrapolation ignores [gmin, gmax]:
// gamma = 1 usually lies below GammaMin and serves only as a
// normalization point.
func FromDensityAtGamma1(d Distribution, n1 float64) error {
	if n1 <= 0 {
		return fmt.Errorf("need a positive density at gamma=1, got %g.", n1)
	}
	cur := evalAtUnity(d)
	if cur <= 0 {
		return fmt.Errorf("distribution %s evaluates to 0 at gamma=1.", d)
	}
	return solve(d, n1, cur)
}

// evalAtUnity evaluates the analytic shape at gamma=1 without the bound
// cut. Tabulated shapes fall back to their lowest table point.
func evalAtUnity(d Distribution) float64 {
	switch t := d.(type) {
	case *PowerLaw:
		return t.K
	case *BrokenPowerLaw:
		return t.K * math.Pow(1/t.GammaBreak, -t.P1)
	case *LogParabola:
		x := 1 / t.Gamma0
		return t.K * math.Pow(x, -(t.A + t.B*math.Log10(x)))
	default:
		gmin, _ := d.Bounds()
		return d.Eval(gmin)
	}
}

func solve(d Distribution, want, have float64) error {
	s, ok := d.(scaler)
	if !ok {
		return fmt.Errorf("distribution %s has no free normalization.", d)
	}
	if have <= 0 {
		return fmt.Errorf("distribution %s integrates to 0.", d)
	}
	s.scale(want / have)
	return nil
}

// EnergyCheck returns the relative error between the distribution's
// integrated energy density and u. Callers use it to assert the
// normalization invariant after construction.
func EnergyCheck(d Distribution, u float64) float64 {
	return math.Abs(Energy(d)-u) / u
}
