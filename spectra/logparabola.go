package spectra

import (
	"fmt"
	"math"
)

// LogParabola is n(gamma) = K (gamma/Gamma0)^-(A + B log10(gamma/Gamma0))
// over [GammaMin, GammaMax]. Gamma0 is the reference Lorentz factor and
// B the spectral curvature.
type LogParabola struct {
	K        float64 // [cm^-3]
	A, B     float64
	Gamma0   float64
	GammaMin float64
	GammaMax float64
	M        float64
}

func NewLogParabola(k, a, b, g0, gmin, gmax float64) (*LogParabola, error) {
	if err := checkBounds(gmin, gmax); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, fmt.Errorf("need a positive normalization, got %g.", k)
	}
	if g0 <= 0 {
		return nil, fmt.Errorf("need a positive Gamma0, got %g.", g0)
	}
	return &LogParabola{
		K: k, A: a, B: b, Gamma0: g0, GammaMin: gmin, GammaMax: gmax,
	}, nil
}

func (d *LogParabola) Eval(gamma float64) float64 {
	if gamma < d.GammaMin || gamma > d.GammaMax {
		return 0
	}
	x := gamma / d.Gamma0
	return d.K * math.Pow(x, -(d.A + d.B*math.Log10(x)))
}

func (d *LogParabola) Bounds() (float64, float64) {
	return d.GammaMin, d.GammaMax
}

func (d *LogParabola) Mass() float64 { return mass(d.M) }

func (d *LogParabola) String() string {
	return fmt.Sprintf(
		"LogParabola(k=%.4g cm^-3, a=%.4g, b=%.4g, gamma_0=%.4g, "+
			"gamma=[%.4g, %.4g])",
		d.K, d.A, d.B, d.Gamma0, d.GammaMin, d.GammaMax,
	)
}

func (d *LogParabola) scale(s float64) { d.K *= s }
