/*package absorption computes gamma-gamma pair-production opacities for
high-energy photons leaving the jet, either through an external target
photon field or through the region's own synchrotron radiation, and the
matching attenuation factors.*/
package absorption

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/math/integrate"
	"github.com/ltorresi/jetsed/radiative"
	"github.com/ltorresi/jetsed/targets"
)

// Discretization of the external path and angle integrals.
const (
	pathSteps  = 100
	angleSteps = 100
)

// sigmaGG is the gamma-gamma pair-production cross section [cm^2] for
// center-of-momentum parameter s = eps1 eps2 (1 - cos psi) / 2
// (Gould & Schreder 1967). Zero below threshold s = 1.
func sigmaGG(s float64) float64 {
	if s <= 1 {
		return 0
	}
	beta := math.Sqrt(1 - 1/s)
	b2 := beta * beta
	return 3.0 / 16.0 * cgs.SigmaT * (1 - b2) *
		((3-b2*b2)*math.Log((1+beta)/(1-beta)) - 2*beta*(2-b2))
}

// External is the opacity of a target photon field for photons
// emitted at distance R from the engine and traveling outward along
// the jet axis. Z converts observed frequencies into the galaxy frame.
//
// The opacity is a double integral over the escape path and the
// angular extent of the field, evaluated on fixed trapezoid grids.
// The discretization is known to be touchy for distances near a
// field's characteristic radius: cross-check results at slightly
// perturbed distances rather than trusting a single evaluation.
type External struct {
	Target targets.PhotonField
	R      float64 // emission distance [cm]
	Z      float64 // source redshift
}

func NewExternal(t targets.PhotonField, r, z float64) (*External, error) {
	if r < 0 {
		return nil, fmt.Errorf("need a non-negative distance, got %g.", r)
	}
	if z < 0 {
		return nil, fmt.Errorf("need a non-negative redshift, got %g.", z)
	}
	return &External{Target: t, R: r, Z: z}, nil
}

// pathScale is the characteristic size of the target geometry, used to
// bound the escape-path integral.
func pathScale(t targets.PhotonField) float64 {
	switch tt := t.(type) {
	case *targets.SphericalShellBLR:
		return tt.RLine
	case *targets.RingDustTorus:
		return tt.RRing
	case *targets.SSDisk:
		return tt.Rout
	default:
		return 1e18
	}
}

// collisionCosine is the direction cosine between an escaping photon
// (traveling outward along the axis at distance l) and the bulk of the
// target photons crossing its path there.
func collisionCosine(t targets.PhotonField, l float64) float64 {
	switch tt := t.(type) {
	case *targets.RingDustTorus:
		return l / math.Hypot(tt.RRing, l)
	case *targets.SSDisk:
		// Photons rise from the disk surface below.
		return l / math.Hypot(tt.Rout/2, l)
	case *targets.CMB:
		// Isotropic: handled by the angle average in Opacity.
		return math.NaN()
	default:
		// Shell and point source: radially outward photons.
		return 1
	}
}

// Opacity returns tau(nu) for the observed frequencies.
func (a *External) Opacity(nu []float64) []float64 {
	eps := a.Target.PhotonEnergy()
	out := make([]float64, len(nu))

	lMax := a.R + 50*pathScale(a.Target)
	lo := math.Max(a.R, 1e-3*pathScale(a.Target))

	for i, n := range nu {
		eps1 := cgs.H * n * (1 + a.Z) / cgs.MeC2
		out[i] = integrate.LogFunc(func(l float64) float64 {
			nPh := a.Target.EnergyDensity(l) / (eps * cgs.MeC2)
			mu := collisionCosine(a.Target, l)
			if math.IsNaN(mu) {
				// Isotropic field: average (1 - mu) sigma over angles.
				return nPh * 0.5 * integrate.Func(func(m float64) float64 {
					return (1 - m) * sigmaGG(eps1*eps*(1-m)/2)
				}, -1, 1, angleSteps)
			}
			return nPh * (1 - mu) * sigmaGG(eps1*eps*(1-mu)/2)
		}, lo, lMax, pathSteps)
	}
	return out
}

// Attenuation returns the transmitted fraction exp(-tau).
func (a *External) Attenuation(nu []float64) []float64 {
	taus := a.Opacity(nu)
	out := make([]float64, len(taus))
	for i, tau := range taus {
		out[i] = math.Exp(-tau)
	}
	return out
}

func (a *External) String() string {
	return fmt.Sprintf("ExternalAbsorption(target=%s, r=%.4g cm)",
		a.Target, a.R)
}

// Internal is the opacity of the region's own synchrotron field.
type Internal struct {
	Blob *blob.Blob
}

func NewInternal(bl *blob.Blob) *Internal {
	return &Internal{Blob: bl}
}

// Opacity returns tau(nu): the photon crosses one radius of an
// isotropic synchrotron photon gas, with the cross section averaged
// over collision angles.
func (a *Internal) Opacity(nu []float64) []float64 {
	bl := a.Blob
	s := radiative.NewSynchrotron(bl, false)

	out := make([]float64, len(nu))
	for i, n := range nu {
		eps1 := cgs.H * n * (1 + bl.Z) / (bl.Delta * cgs.MeC2)
		out[i] = bl.R * integrate.LogFunc(func(eps float64) float64 {
			nPh := radiative.PhotonDensity(s, eps)
			if nPh == 0 {
				return 0
			}
			avg := 0.5 * integrate.Func(func(m float64) float64 {
				return (1 - m) * sigmaGG(eps1*eps*(1-m)/2)
			}, -1, 1, angleSteps)
			return nPh * avg
		}, radiative.SynchEpsMin, radiative.SynchEpsMax, pathSteps)
	}
	return out
}

// Attenuation returns the transmitted fraction of a homogeneous
// sphere, (1 - exp(-tau))/tau, with the tau -> 0 limit of 1 handled
// explicitly.
func (a *Internal) Attenuation(nu []float64) []float64 {
	taus := a.Opacity(nu)
	out := make([]float64, len(taus))
	for i, tau := range taus {
		out[i] = SphereTransmission(tau)
	}
	return out
}

func (a *Internal) String() string { return "InternalAbsorption" }

// SphereTransmission is (1 - exp(-tau))/tau, continued to 1 at tau = 0.
func SphereTransmission(tau float64) float64 {
	if tau < 1e-6 {
		return 1 - tau/2
	}
	return (1 - math.Exp(-tau)) / tau
}

// Combine multiplies attenuation curves from several fields, which is
// the same as summing their opacities.
func Combine(atts ...[]float64) []float64 {
	if len(atts) == 0 {
		return nil
	}
	out := make([]float64, len(atts[0]))
	for i := range out {
		out[i] = 1
	}
	for _, att := range atts {
		for i, v := range att {
			out[i] *= v
		}
	}
	return out
}
