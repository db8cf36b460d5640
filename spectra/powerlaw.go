package spectra

import (
	"fmt"
	"math"
)

// PowerLaw is n(gamma) = K gamma^-P over [GammaMin, GammaMax].
type PowerLaw struct {
	K        float64 // [cm^-3]
	P        float64
	GammaMin float64
	GammaMax float64
	M        float64 // particle rest mass [g]; 0 means electron
}

// NewPowerLaw validates the shape parameters. K may be left at a
// placeholder value and solved later through one of the From*
// constructors in normalize.go.
func NewPowerLaw(k, p, gmin, gmax float64) (*PowerLaw, error) {
	if err := checkBounds(gmin, gmax); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, fmt.Errorf("need a positive normalization, got %g.", k)
	}
	return &PowerLaw{K: k, P: p, GammaMin: gmin, GammaMax: gmax}, nil
}

func (d *PowerLaw) Eval(gamma float64) float64 {
	if gamma < d.GammaMin || gamma > d.GammaMax {
		return 0
	}
	return d.K * math.Pow(gamma, -d.P)
}

func (d *PowerLaw) Bounds() (float64, float64) { return d.GammaMin, d.GammaMax }

func (d *PowerLaw) Mass() float64 { return mass(d.M) }

func (d *PowerLaw) String() string {
	return fmt.Sprintf(
		"PowerLaw(k=%.4g cm^-3, p=%.4g, gamma=[%.4g, %.4g])",
		d.K, d.P, d.GammaMin, d.GammaMax,
	)
}

func (d *PowerLaw) scale(s float64) { d.K *= s }
