package targets

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/cosmo"
	"github.com/ltorresi/jetsed/math/integrate"
)

// Radial resolution of the ring decomposition.
const diskRings = 150

// SSDisk is a geometrically thin, optically thick Shakura-Sunyaev
// accretion disk around a black hole of mass M, radiating LDisk with
// accretion efficiency Eta between radii Rin and Rout.
type SSDisk struct {
	M     float64 // black-hole mass [g]
	LDisk float64 // disk luminosity [erg/s]
	Eta   float64 // accretion efficiency
	Rin   float64 // inner radius [cm]
	Rout  float64 // outer radius [cm]
}

// NewSSDisk validates and builds a disk with radii in cm.
func NewSSDisk(m, lDisk, eta, rin, rout float64) (*SSDisk, error) {
	switch {
	case m <= 0:
		return nil, fmt.Errorf("need a positive black-hole mass, got %g.", m)
	case lDisk <= 0:
		return nil, fmt.Errorf("need a positive disk luminosity, got %g.", lDisk)
	case eta <= 0 || eta > 1:
		return nil, fmt.Errorf("need an efficiency in (0, 1], got %g.", eta)
	case rin <= 0 || rin >= rout:
		return nil, fmt.Errorf(
			"need 0 < Rin < Rout, got [%g, %g].", rin, rout,
		)
	}
	return &SSDisk{M: m, LDisk: lDisk, Eta: eta, Rin: rin, Rout: rout}, nil
}

// NewSSDiskRg builds a disk with radii given in gravitational radii
// G M / c^2.
func NewSSDiskRg(m, lDisk, eta, rinRg, routRg float64) (*SSDisk, error) {
	rg := cgs.G * m / (cgs.C * cgs.C)
	return NewSSDisk(m, lDisk, eta, rinRg*rg, routRg*rg)
}

// MDot is the accretion rate L / (eta c^2) [g/s].
func (d *SSDisk) MDot() float64 {
	return d.LDisk / (d.Eta * cgs.C * cgs.C)
}

// Temperature is the effective temperature [K] of the disk surface at
// radius rr: sigma T^4 = 3 G M Mdot / (8 pi R^3) (1 - sqrt(Rin/R)).
func (d *SSDisk) Temperature(rr float64) float64 {
	if rr < d.Rin || rr > d.Rout {
		return 0
	}
	phi := 1 - math.Sqrt(d.Rin/rr)
	t4 := 3 * cgs.G * d.M * d.MDot() * phi /
		(8 * math.Pi * cgs.SigmaSB * rr * rr * rr)
	return math.Pow(t4, 0.25)
}

// rings visits the log-spaced ring decomposition of the disk, handing
// the callback each ring's radius, width and luminosity (both faces).
func (d *SSDisk) rings(visit func(rr, dr, dL float64)) {
	rs := integrate.LogSpace(d.Rin, d.Rout, diskRings)
	for i := 0; i < len(rs)-1; i++ {
		rr := math.Sqrt(rs[i] * rs[i+1])
		dr := rs[i+1] - rs[i]
		t := d.Temperature(rr)
		t4 := t * t * t * t
		visit(rr, dr, 4*math.Pi*rr*dr*cgs.SigmaSB*t4)
	}
}

// EnergyDensity sums the rings as Lambertian point emitters:
//
//	u(r) = Sum mu dL / (4 pi x^2 c),
//	x^2 = r^2 + R^2, mu = r / x.
//
// The cosine accounts for the inclination of the disk surface seen
// from the axis; at r = 0 the disk is seen edge-on and u vanishes.
func (d *SSDisk) EnergyDensity(r float64) float64 {
	u := 0.0
	d.rings(func(rr, _, dL float64) {
		x2 := r*r + rr*rr
		mu := r / math.Sqrt(x2)
		u += mu * dL / (4 * math.Pi * x2 * cgs.C)
	})
	return u
}

func (d *SSDisk) EnergyDensityComoving(r float64, bl *blob.Blob) float64 {
	u := 0.0
	d.rings(func(rr, _, dL float64) {
		x2 := r*r + rr*rr
		mu := r / math.Sqrt(x2)
		u += beamFactor(bl, mu) * mu * dL / (4 * math.Pi * x2 * cgs.C)
	})
	return u
}

// PhotonEnergy is the mean photon energy at the hottest ring,
// 2.7 k T_max / m_e c^2. T_max sits at R = (49/36) Rin for the
// Shakura-Sunyaev profile.
func (d *SSDisk) PhotonEnergy() float64 {
	tMax := d.Temperature(49.0 / 36.0 * d.Rin)
	return 2.7 * cgs.KB * tMax / cgs.MeC2
}

// ThermalSED returns the observed multi-temperature black-body
// spectrum of a face-on disk:
//
//	F_nu = 4 pi h nu'^3 / (c^2 d_L^2) Int R dR / (exp(h nu'/kT) - 1),
//
// with nu' = nu (1+z).
func (d *SSDisk) ThermalSED(nu []float64, z float64) []float64 {
	dl := cosmo.LuminosityDistance(z)
	pre := 4 * math.Pi * cgs.H / (cgs.C * cgs.C * dl * dl)

	out := make([]float64, len(nu))
	for i, n := range nu {
		np := n * (1 + z)
		sum := 0.0
		d.rings(func(rr, dr, _ float64) {
			t := d.Temperature(rr)
			x := cgs.H * np / (cgs.KB * t)
			if x > 500 {
				return
			}
			sum += rr * dr / math.Expm1(x)
		})
		out[i] = n * pre * np * np * np * sum
	}
	return out
}

func (d *SSDisk) String() string {
	return fmt.Sprintf(
		"SSDisk(M=%.4g g, L=%.4g erg/s, eta=%.4g, R=[%.4g, %.4g] cm)",
		d.M, d.LDisk, d.Eta, d.Rin, d.Rout,
	)
}

var _ ThermalEmitter = &SSDisk{}
