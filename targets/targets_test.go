package targets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/spectra"
)

func testBlob(t *testing.T) *blob.Blob {
	d, err := spectra.NewBrokenPowerLaw(1e-8, 2.0, 3.5, 1e4, 20, 5e7)
	assert.NoError(t, err)
	bl, err := blob.New(1e16, 0.1, 10, 10, 0.5, d)
	assert.NoError(t, err)
	return bl
}

func TestLookupLine(t *testing.T) {
	l, err := LookupLine("Hbeta")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, l.LumRatio)
	assert.Equal(t, 1.0, l.RadiusRatio)

	l, err = LookupLine("Lyalpha")
	assert.NoError(t, err)
	assert.InEpsilon(t, cgs.H*2.47e15/cgs.MeC2, l.Energy(), 1e-12)

	_, err = LookupLine("FeKalpha")
	assert.Error(t, err, "unknown line")

	names := LineNames()
	assert.Contains(t, names, "CIV")
	assert.Contains(t, names, "MgII")
}

func TestSublimationRadius(t *testing.T) {
	// L = 2e46 erg/s, T = 1e3 K gives 1.56e19 cm.
	r := SublimationRadius(2e46, 1e3)
	assert.InEpsilon(t, 1.565e19, r, 1e-2)
}

func TestTorusEnergyDensityProfile(t *testing.T) {
	torus, err := NewRingDustTorus(2e46, 0.1, 1e3, 0)
	assert.NoError(t, err)
	assert.InEpsilon(t, SublimationRadius(2e46, 1e3), torus.RRing, 1e-12)

	// Inside the ring radius the field is nearly flat; far outside it
	// falls off, so u(1e19) > u(1e21).
	assert.Greater(t, torus.EnergyDensity(1e19), torus.EnergyDensity(1e21))

	// u(0) = xi L / (4 pi c R^2).
	want := 0.1 * 2e46 / (4 * math.Pi * cgs.C * torus.RRing * torus.RRing)
	assert.InEpsilon(t, want, torus.EnergyDensity(0), 1e-12)
}

func TestTorusValidation(t *testing.T) {
	_, err := NewRingDustTorus(-1, 0.1, 1e3, 0)
	assert.Error(t, err, "negative luminosity")
	_, err = NewRingDustTorus(2e46, 1.5, 1e3, 0)
	assert.Error(t, err, "fraction > 1")
	_, err = NewRingDustTorus(2e46, 0.1, 0, 0)
	assert.Error(t, err, "zero temperature")
}

func TestCMB(t *testing.T) {
	c, err := NewCMB(1)
	assert.NoError(t, err)

	tcmb := cgs.TCMB * 2
	want := cgs.ARad * tcmb * tcmb * tcmb * tcmb
	assert.InEpsilon(t, want, c.EnergyDensity(0), 1e-12)
	assert.Equal(t, c.EnergyDensity(0), c.EnergyDensity(1e20), "isotropic")

	// Isotropic boost Gamma^2 (1 + beta^2/3).
	bl := testBlob(t)
	beta := bl.Beta()
	boost := bl.Gamma * bl.Gamma * (1 + beta*beta/3)
	assert.InEpsilon(t, boost, c.EnergyDensityComoving(0, bl)/c.EnergyDensity(0), 1e-12)

	_, err = NewCMB(-1)
	assert.Error(t, err)
}

func TestPointSourceDeboost(t *testing.T) {
	p, err := NewPointSourceBehindJet(1e46, 1e-5)
	assert.NoError(t, err)

	r := 1e18
	assert.InEpsilon(t, 1e46/(4*math.Pi*cgs.C*r*r), p.EnergyDensity(r), 1e-12)

	// Photons arrive from directly behind: u' = u / (Gamma (1+beta))^2.
	bl := testBlob(t)
	g := bl.Gamma * (1 + bl.Beta())
	assert.InEpsilon(t, 1/(g*g), p.EnergyDensityComoving(r, bl)/p.EnergyDensity(r), 1e-12)

	// The clamp keeps the profile finite down to r = 0.
	assert.False(t, math.IsInf(p.EnergyDensity(0), 0))
	assert.Equal(t, p.EnergyDensity(0), p.EnergyDensity(1e9))
}

func TestShellConvergesToPointSource(t *testing.T) {
	shell, err := NewShellBLR(2e46, 0.024, "Hbeta", 0)
	assert.NoError(t, err)
	assert.InEpsilon(t, RHbeta(2e46), shell.RLine, 1e-12)

	point, err := NewPointSourceBehindJet(0.024*2e46, shell.Eps)
	assert.NoError(t, err)

	bl := testBlob(t)
	for _, r := range []float64{1e2 * shell.RLine, 1e3 * shell.RLine} {
		assert.InEpsilon(t, point.EnergyDensity(r),
			shell.EnergyDensity(r), 1e-2, "galaxy frame")
		// The beam factor amplifies small angular spreads, so the
		// comoving convergence is slower.
		assert.InEpsilon(t, point.EnergyDensityComoving(r, bl),
			shell.EnergyDensityComoving(r, bl), 5e-2, "comoving frame")
	}

	// Inside the shell the approximation breaks down badly.
	r := 0.5 * shell.RLine
	ratio := point.EnergyDensity(r) / shell.EnergyDensity(r)
	assert.Greater(t, ratio, 2.0)
}

func TestShellFiniteEverywhere(t *testing.T) {
	shell, err := NewShellBLR(2e46, 0.1, "Lyalpha", 0)
	assert.NoError(t, err)

	bl := testBlob(t)
	for _, r := range []float64{0, 0.5 * shell.RLine, shell.RLine,
		2 * shell.RLine, 1e3 * shell.RLine} {
		u := shell.EnergyDensity(r)
		assert.False(t, math.IsInf(u, 0) || math.IsNaN(u), "galaxy frame")
		assert.GreaterOrEqual(t, u, 0.0)
		uc := shell.EnergyDensityComoving(r, bl)
		assert.False(t, math.IsInf(uc, 0) || math.IsNaN(uc), "comoving frame")
		assert.GreaterOrEqual(t, uc, 0.0)
	}
}

func TestShellUnknownLine(t *testing.T) {
	_, err := NewShellBLR(2e46, 0.1, "FeKalpha", 0)
	assert.Error(t, err)
}

func TestDiskTemperatureProfile(t *testing.T) {
	m := 1.2e9 * cgs.MSun
	d, err := NewSSDiskRg(m, 2e46, 1.0/12, 6, 200)
	assert.NoError(t, err)

	assert.Equal(t, 0.0, d.Temperature(0.5*d.Rin), "inside Rin")
	assert.Equal(t, 0.0, d.Temperature(2*d.Rout), "outside Rout")
	assert.Equal(t, 0.0, d.Temperature(d.Rin), "zero at the inner edge")

	// The profile peaks at R = (49/36) Rin.
	tMax := d.Temperature(49.0 / 36.0 * d.Rin)
	for _, f := range []float64{1.1, 1.7, 3, 10, 30} {
		assert.LessOrEqual(t, d.Temperature(f*d.Rin), tMax)
	}
	assert.InEpsilon(t, d.LDisk/(d.Eta*cgs.C*cgs.C), d.MDot(), 1e-12)
}

func TestDiskEnergyDensity(t *testing.T) {
	m := 1.2e9 * cgs.MSun
	d, err := NewSSDiskRg(m, 2e46, 1.0/12, 6, 200)
	assert.NoError(t, err)

	// Edge-on at the axis origin.
	assert.Equal(t, 0.0, d.EnergyDensity(0))

	bl := testBlob(t)
	for _, r := range []float64{d.Rin, 10 * d.Rin, d.Rout, 100 * d.Rout} {
		u := d.EnergyDensity(r)
		assert.False(t, math.IsInf(u, 0) || math.IsNaN(u))
		assert.Greater(t, u, 0.0)
		uc := d.EnergyDensityComoving(r, bl)
		assert.False(t, math.IsInf(uc, 0) || math.IsNaN(uc))
		assert.GreaterOrEqual(t, uc, 0.0)
	}

	// Far away the disk looks like a head-on point source. The finite
	// outer radius truncates a few percent of the luminosity.
	far := 1e4 * d.Rout
	want := d.LDisk / (4 * math.Pi * cgs.C * far * far)
	assert.InEpsilon(t, want, d.EnergyDensity(far), 0.1)
}

func TestThermalSEDs(t *testing.T) {
	m := 1.2e9 * cgs.MSun
	d, err := NewSSDiskRg(m, 2e46, 1.0/12, 6, 200)
	assert.NoError(t, err)
	torus, err := NewDustTorusFromDisk(d, 0.1, 1e3)
	assert.NoError(t, err)

	nuDisk := []float64{1e14, 1e15, 1e16}
	sed := d.ThermalSED(nuDisk, 0.5)
	for i, f := range sed {
		assert.Greater(t, f, 0.0, "disk bin %d", i)
		assert.False(t, math.IsInf(f, 0) || math.IsNaN(f))
	}

	// The torus peaks in the infrared, orders of magnitude below the
	// disk's UV peak frequency.
	nuTorus := []float64{1e12, 1e13, 1e14}
	sedT := torus.ThermalSED(nuTorus, 0.5)
	for i, f := range sedT {
		assert.Greater(t, f, 0.0, "torus bin %d", i)
	}
	assert.Greater(t, sedT[1], sedT[0], "rising toward the IR peak")
}

func TestEnergyDensityFiniteAcrossFields(t *testing.T) {
	m := 1.2e9 * cgs.MSun
	d, _ := NewSSDiskRg(m, 2e46, 1.0/12, 6, 200)
	shell, _ := NewShellBLRFromDisk(d, 0.1, "Hbeta")
	torus, _ := NewDustTorusFromDisk(d, 0.1, 1e3)
	c, _ := NewCMB(0.5)
	p, _ := NewPointSourceBehindJet(1e46, 1e-5)

	fields := []PhotonField{d, shell, torus, c, p}
	bl := testBlob(t)
	for _, f := range fields {
		for _, r := range []float64{0, 1e15, 1e17, 1e19, 1e22} {
			u := f.EnergyDensity(r)
			assert.False(t, math.IsInf(u, 0) || math.IsNaN(u), f.String())
			assert.GreaterOrEqual(t, u, 0.0, f.String())
			uc := f.EnergyDensityComoving(r, bl)
			assert.False(t, math.IsInf(uc, 0) || math.IsNaN(uc), f.String())
			assert.GreaterOrEqual(t, uc, 0.0, f.String())
		}
		assert.Greater(t, f.PhotonEnergy(), 0.0, f.String())
	}
}
