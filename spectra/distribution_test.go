package spectra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltorresi/jetsed/cgs"
)

func TestPowerLawBounds(t *testing.T) {
	d, err := NewPowerLaw(1e-2, 2.5, 1e2, 1e5)
	assert.NoError(t, err)

	assert.Equal(t, 0.0, d.Eval(10), "below gamma_min")
	assert.Equal(t, 0.0, d.Eval(1e6), "above gamma_max")
	assert.Greater(t, d.Eval(1e3), 0.0, "inside range")
	assert.InEpsilon(t, 1e-2*math.Pow(1e3, -2.5), d.Eval(1e3), 1e-12)
}

func TestConstructorValidation(t *testing.T) {
	_, err := NewPowerLaw(1, 2, 1e5, 1e2)
	assert.Error(t, err, "gmin >= gmax")

	_, err = NewPowerLaw(1, 2, -1, 1e2)
	assert.Error(t, err, "negative gmin")

	_, err = NewPowerLaw(0, 2, 1e2, 1e5)
	assert.Error(t, err, "zero normalization")

	_, err = NewBrokenPowerLaw(1, 2, 3.5, 1e7, 1e2, 1e5)
	assert.Error(t, err, "break outside range")

	_, err = NewLogParabola(1, 2, 0.1, 0, 1e2, 1e5)
	assert.Error(t, err, "zero gamma_0")
}

func TestNumberAgainstAnalytic(t *testing.T) {
	// For p = 2 the integral is k (1/gmin - 1/gmax).
	d, err := NewPowerLaw(3.0, 2, 1e2, 1e5)
	assert.NoError(t, err)
	want := 3.0 * (1/1e2 - 1/1e5)
	assert.InEpsilon(t, want, Number(d), 1e-2)
}

func TestFromTotalDensity(t *testing.T) {
	d, err := NewBrokenPowerLaw(1, 2.0, 3.5, 1e4, 20, 5e7)
	assert.NoError(t, err)

	assert.NoError(t, FromTotalDensity(d, 4.2))
	assert.InEpsilon(t, 4.2, Number(d), 1e-3, "round trip")
}

func TestFromEnergyDensityRoundTrip(t *testing.T) {
	table := []struct {
		name string
		dist func() Distribution
	}{
		{"PowerLaw", func() Distribution {
			d, _ := NewPowerLaw(1, 2.3, 1e2, 1e6)
			return d
		}},
		{"BrokenPowerLaw", func() Distribution {
			d, _ := NewBrokenPowerLaw(1, 2.0, 3.5, 1e4, 20, 5e7)
			return d
		}},
		{"LogParabola", func() Distribution {
			d, _ := NewLogParabola(1, 2.1, 0.2, 1e3, 1e2, 1e6)
			return d
		}},
	}

	for _, test := range table {
		d := test.dist()
		u := 0.1 // erg cm^-3
		assert.NoError(t, FromEnergyDensity(d, u), test.name)
		assert.Less(t, EnergyCheck(d, u), 1e-3, test.name)
	}
}

func TestFromTotalEnergy(t *testing.T) {
	d, _ := NewPowerLaw(1, 2.3, 1e2, 1e6)
	volume := 4.0 / 3.0 * math.Pi * 1e48
	assert.NoError(t, FromTotalEnergy(d, 1e48, volume))
	assert.InEpsilon(t, 1e48/volume, Energy(d), 1e-3)
}

func TestFromDensityAtGamma1(t *testing.T) {
	d, _ := NewPowerLaw(1, 2.0, 1e2, 1e5)
	assert.NoError(t, FromDensityAtGamma1(d, 5.0))
	// For a power law, the extrapolated density at gamma=1 is k itself.
	assert.InEpsilon(t, 5.0, d.K, 1e-12)
}

func TestNormalizationValidation(t *testing.T) {
	d, _ := NewPowerLaw(1, 2.0, 1e2, 1e5)
	assert.Error(t, FromTotalDensity(d, 0))
	assert.Error(t, FromTotalDensity(d, -1))
	assert.Error(t, FromEnergyDensity(d, 0))
	assert.Error(t, FromTotalEnergy(d, 1, 0))
	assert.Error(t, FromDensityAtGamma1(d, -2))
}

func TestInterpolated(t *testing.T) {
	// Tabulate a power law and check the spline reproduces it.
	src, _ := NewPowerLaw(2.0, 2.5, 1e2, 1e5)
	gammas := make([]float64, 40)
	ns := make([]float64, 40)
	for i := range gammas {
		gammas[i] = 1e2 * math.Pow(1e3, float64(i)/39)
		ns[i] = src.Eval(gammas[i])
	}

	d, err := NewInterpolated(gammas, ns)
	assert.NoError(t, err)

	assert.Equal(t, 0.0, d.Eval(50), "below table")
	assert.InEpsilon(t, src.Eval(1.7e3), d.Eval(1.7e3), 1e-3, "off node")

	// The normalization machinery works on tabulated shapes too.
	assert.NoError(t, FromEnergyDensity(d, 0.05))
	assert.Less(t, EnergyCheck(d, 0.05), 1e-3)
}

func TestEnergyUsesParticleMass(t *testing.T) {
	e, _ := NewPowerLaw(1, 2.3, 1e2, 1e5)
	p, _ := NewPowerLaw(1, 2.3, 1e2, 1e5)
	p.M = cgs.Mp
	assert.InEpsilon(t, cgs.Mp/cgs.Me, Energy(p)/Energy(e), 1e-9)
}
