package spectra

import (
	"fmt"
	"math"
)

// BrokenPowerLaw is n(gamma) = K (gamma/GammaBreak)^-P1 below the break
// and K (gamma/GammaBreak)^-P2 above it, over [GammaMin, GammaMax].
type BrokenPowerLaw struct {
	K          float64 // [cm^-3]
	P1, P2     float64
	GammaBreak float64
	GammaMin   float64
	GammaMax   float64
	M          float64
}

func NewBrokenPowerLaw(k, p1, p2, gb, gmin, gmax float64) (*BrokenPowerLaw, error) {
	if err := checkBounds(gmin, gmax); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, fmt.Errorf("need a positive normalization, got %g.", k)
	}
	if gb < gmin || gb > gmax {
		return nil, fmt.Errorf(
			"GammaBreak = %g outside of [%g, %g].", gb, gmin, gmax,
		)
	}
	return &BrokenPowerLaw{
		K: k, P1: p1, P2: p2, GammaBreak: gb, GammaMin: gmin, GammaMax: gmax,
	}, nil
}

func (d *BrokenPowerLaw) Eval(gamma float64) float64 {
	if gamma < d.GammaMin || gamma > d.GammaMax {
		return 0
	}
	p := d.P1
	if gamma > d.GammaBreak {
		p = d.P2
	}
	return d.K * math.Pow(gamma/d.GammaBreak, -p)
}

func (d *BrokenPowerLaw) Bounds() (float64, float64) {
	return d.GammaMin, d.GammaMax
}

func (d *BrokenPowerLaw) Mass() float64 { return mass(d.M) }

func (d *BrokenPowerLaw) String() string {
	return fmt.Sprintf(
		"BrokenPowerLaw(k=%.4g cm^-3, p1=%.4g, p2=%.4g, gamma_b=%.4g, "+
			"gamma=[%.4g, %.4g])",
		d.K, d.P1, d.P2, d.GammaBreak, d.GammaMin, d.GammaMax,
	)
}

func (d *BrokenPowerLaw) scale(s float64) { d.K *= s }
