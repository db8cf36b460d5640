package absorption

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/spectra"
	"github.com/ltorresi/jetsed/targets"
)

func testBlob(t *testing.T, k float64) *blob.Blob {
	d, err := spectra.NewBrokenPowerLaw(k, 2.0, 3.5, 1e4, 20, 5e7)
	assert.NoError(t, err)
	bl, err := blob.New(1e16, 0.1, 10, 10, 0.5, d)
	assert.NoError(t, err)
	return bl
}

func TestSigmaGG(t *testing.T) {
	assert.Equal(t, 0.0, sigmaGG(0.5), "below threshold")
	assert.Equal(t, 0.0, sigmaGG(1), "at threshold")

	// Peaks near s ~ 2 at about sigma_T / 4.
	peak := sigmaGG(1.9)
	assert.InEpsilon(t, cgs.SigmaT/4, peak, 0.2)
	assert.Greater(t, peak, sigmaGG(1.1))
	assert.Greater(t, peak, sigmaGG(50))

	// Falls off as log(s)/s far above threshold.
	assert.Less(t, sigmaGG(1e4), 0.01*peak)
}

func TestSphereTransmission(t *testing.T) {
	assert.Equal(t, 1.0, SphereTransmission(0))
	assert.InDelta(t, 1.0, SphereTransmission(1e-9), 1e-8)
	assert.InDelta(t, SphereTransmission(1e-6), SphereTransmission(1.0001e-6),
		1e-9, "continuous at the series cut")

	prev := 1.0
	for _, tau := range []float64{0.01, 0.1, 1, 10, 100} {
		f := SphereTransmission(tau)
		assert.Greater(t, f, 0.0)
		assert.Less(t, f, prev, "monotone decreasing")
		prev = f
	}
	assert.InEpsilon(t, 1.0/100, SphereTransmission(100), 1e-6, "thick limit 1/tau")
}

func TestExternalAttenuationIsExpOpacity(t *testing.T) {
	torus, err := targets.NewRingDustTorus(2e46, 0.1, 1e3, 0)
	assert.NoError(t, err)
	a, err := NewExternal(torus, 1e19, 0.5)
	assert.NoError(t, err)

	nu := []float64{1e25, 1e26, 1e27}
	taus := a.Opacity(nu)
	atts := a.Attenuation(nu)
	for i := range nu {
		assert.GreaterOrEqual(t, taus[i], 0.0)
		assert.False(t, math.IsInf(taus[i], 0) || math.IsNaN(taus[i]))
		assert.InDelta(t, math.Exp(-taus[i]), atts[i], 1e-12)
	}
}

func TestExternalBelowThreshold(t *testing.T) {
	torus, _ := targets.NewRingDustTorus(2e46, 0.1, 1e3, 0)
	a, _ := NewExternal(torus, 1e19, 0.5)

	// eps1 * eps < 2 everywhere: no pair production, tau = 0. The torus
	// photon energy is ~5e-7, so anything below ~1e25 Hz is safe.
	taus := a.Opacity([]float64{1e15, 1e20})
	assert.Equal(t, []float64{0, 0}, taus)
}

func TestExternalValidation(t *testing.T) {
	torus, _ := targets.NewRingDustTorus(2e46, 0.1, 1e3, 0)
	_, err := NewExternal(torus, -1, 0.5)
	assert.Error(t, err)
	_, err = NewExternal(torus, 1e19, -0.5)
	assert.Error(t, err)
}

func TestExternalCMBIsotropicAverage(t *testing.T) {
	c, err := targets.NewCMB(0.5)
	assert.NoError(t, err)
	a, err := NewExternal(c, 1e19, 0.5)
	assert.NoError(t, err)

	// CMB photons are ~2e-9 in dimensionless units; the threshold
	// sits near 1e29 Hz.
	taus := a.Opacity([]float64{1e29, 1e30})
	for _, tau := range taus {
		assert.Greater(t, tau, 0.0)
		assert.False(t, math.IsInf(tau, 0) || math.IsNaN(tau))
	}
}

func TestInternalAttenuation(t *testing.T) {
	bl := testBlob(t, 1e-5)
	a := NewInternal(bl)

	nu := []float64{1e22, 1e26, 1e28}
	taus := a.Opacity(nu)
	atts := a.Attenuation(nu)
	for i := range nu {
		assert.GreaterOrEqual(t, taus[i], 0.0)
		assert.InDelta(t, SphereTransmission(taus[i]), atts[i], 1e-12)
		assert.Greater(t, atts[i], 0.0)
		assert.LessOrEqual(t, atts[i], 1.0)
	}
}

func TestInternalScalesWithDensity(t *testing.T) {
	nu := []float64{1e28}
	tau1 := NewInternal(testBlob(t, 1e-5)).Opacity(nu)[0]
	tau2 := NewInternal(testBlob(t, 2e-5)).Opacity(nu)[0]
	assert.Greater(t, tau1, 0.0, "absorbed at all")
	assert.InEpsilon(t, 2.0, tau2/tau1, 1e-6, "linear in the photon field")
}

func TestExternalPerturbedDistance(t *testing.T) {
	// The path integral is discretized; nearby emission distances must
	// give opacities of the same order.
	torus, _ := targets.NewRingDustTorus(2e46, 0.1, 1e3, 0)
	nu := []float64{2e27}

	a1, _ := NewExternal(torus, 1e19, 0.5)
	a2, _ := NewExternal(torus, 1.1e19, 0.5)
	tau1, tau2 := a1.Opacity(nu)[0], a2.Opacity(nu)[0]
	if tau1 > 0 && tau2 > 0 {
		ratio := tau1 / tau2
		assert.Greater(t, ratio, 0.1)
		assert.Less(t, ratio, 10.0)
	}
}

func TestCombine(t *testing.T) {
	a := []float64{1, 0.5, 0.1}
	b := []float64{0.5, 0.5, 0.5}
	got := Combine(a, b)
	assert.Equal(t, []float64{0.5, 0.25, 0.05}, got)

	assert.Equal(t, []float64{1, 1}, Combine([]float64{1, 1}))
	assert.Nil(t, Combine())
}
