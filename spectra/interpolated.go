package spectra

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/ltorresi/jetsed/math/interpolate"
)

// Interpolated is a distribution backed by a tabulated (gamma, n)
// sequence, splined in log-log space. Scale multiplies the table
// values, so the normalization constructors work on it like on the
// analytic forms.
type Interpolated struct {
	sp       *interpolate.Spline
	Scale    float64
	GammaMin float64
	GammaMax float64
	M        float64
}

// NewInterpolated builds a distribution from parallel gamma and density
// tables. The gammas must be positive and strictly increasing, the
// densities positive.
func NewInterpolated(gammas, ns []float64) (*Interpolated, error) {
	if len(gammas) < 2 {
		return nil, fmt.Errorf(
			"interpolated distribution needs at least 2 points, got %d.",
			len(gammas),
		)
	}
	sp, err := interpolate.NewLogSpline(gammas, ns)
	if err != nil {
		return nil, err
	}
	gmin, gmax := sp.Range()
	return &Interpolated{sp: sp, Scale: 1, GammaMin: gmin, GammaMax: gmax}, nil
}

// NewInterpolatedFromTable reads a two-column (gamma, n) whitespace
// table from fname.
func NewInterpolatedFromTable(fname string) (*Interpolated, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}
	return NewInterpolated(cols[0], cols[1])
}

func (d *Interpolated) Eval(gamma float64) float64 {
	if gamma < d.GammaMin || gamma > d.GammaMax {
		return 0
	}
	return d.Scale * d.sp.Eval(gamma)
}

func (d *Interpolated) Bounds() (float64, float64) {
	return d.GammaMin, d.GammaMax
}

func (d *Interpolated) Mass() float64 { return mass(d.M) }

func (d *Interpolated) String() string {
	return fmt.Sprintf(
		"Interpolated(scale=%.4g, gamma=[%.4g, %.4g])",
		d.Scale, d.GammaMin, d.GammaMax,
	)
}

func (d *Interpolated) scale(s float64) { d.Scale *= s }
