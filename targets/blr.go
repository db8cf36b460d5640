package targets

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/math/integrate"
)

// Angular resolution of the shell integrals.
const blrMuSteps = 200

// SphericalShellBLR is a broad line region modeled as an infinitely
// thin spherical shell of radius RLine that reradiates a fraction Xi
// of the disk luminosity monochromatically at its line energy.
type SphericalShellBLR struct {
	LDisk float64 // disk luminosity [erg/s]
	Xi    float64 // reprocessed fraction
	Name  string  // line name, key into the line table
	Eps   float64 // dimensionless line energy
	RLine float64 // shell radius [cm]
}

// NewShellBLR builds a shell for a named line. Unknown line names fail
// immediately. Passing rLine = 0 scales the H-beta radius for the given
// disk luminosity by the line's tabulated radius ratio.
func NewShellBLR(lDisk, xi float64, name string, rLine float64) (*SphericalShellBLR, error) {
	switch {
	case lDisk <= 0:
		return nil, fmt.Errorf("need a positive disk luminosity, got %g.", lDisk)
	case xi <= 0 || xi > 1:
		return nil, fmt.Errorf("need a reprocessed fraction in (0, 1], got %g.", xi)
	case rLine < 0:
		return nil, fmt.Errorf("need a non-negative shell radius, got %g.", rLine)
	}
	line, err := LookupLine(name)
	if err != nil {
		return nil, err
	}
	if rLine == 0 {
		rLine = RHbeta(lDisk) * line.RadiusRatio
	}
	return &SphericalShellBLR{
		LDisk: lDisk, Xi: xi, Name: name, Eps: line.Energy(), RLine: rLine,
	}, nil
}

// NewShellBLRFromDisk derives a shell from a disk via the line table.
func NewShellBLRFromDisk(d *SSDisk, xi float64, name string) (*SphericalShellBLR, error) {
	return NewShellBLR(d.LDisk, xi, name, 0)
}

// EnergyDensity integrates the shell surface brightness over the shell:
//
//	u(r) = xi L / (4 pi c) * 1/2 Int dmu / x^2,
//	x^2 = R^2 + r^2 - 2 R r mu.
//
// The integral has a logarithmic spike at r = R which the fixed mu grid
// keeps finite; the profile is piecewise-continuous across the shell.
func (s *SphericalShellBLR) EnergyDensity(r float64) float64 {
	pre := s.Xi * s.LDisk / (4 * math.Pi * cgs.C)
	return pre * 0.5 * integrate.Func(func(mu float64) float64 {
		return 1 / s.x2(r, mu)
	}, -1, 1, blrMuSteps)
}

// EnergyDensityComoving weights each shell element by the beam factor
// of its arrival direction at the region.
func (s *SphericalShellBLR) EnergyDensityComoving(r float64, bl *blob.Blob) float64 {
	pre := s.Xi * s.LDisk / (4 * math.Pi * cgs.C)
	return pre * 0.5 * integrate.Func(func(mu float64) float64 {
		x2 := s.x2(r, mu)
		x := math.Sqrt(x2)
		muStar := (r - s.RLine*mu) / x
		return beamFactor(bl, muStar) / x2
	}, -1, 1, blrMuSteps)
}

// x2 is the squared distance between the region and a shell element at
// polar cosine mu. The tiny floor keeps the r = R, mu = 1 node finite.
func (s *SphericalShellBLR) x2(r, mu float64) float64 {
	x2 := s.RLine*s.RLine + r*r - 2*s.RLine*r*mu
	if x2 < 1e-6*s.RLine*s.RLine {
		x2 = 1e-6 * s.RLine * s.RLine
	}
	return x2
}

func (s *SphericalShellBLR) PhotonEnergy() float64 { return s.Eps }

func (s *SphericalShellBLR) String() string {
	return fmt.Sprintf(
		"SphericalShellBLR(L_disk=%.4g erg/s, xi=%.4g, line=%s, R=%.4g cm)",
		s.LDisk, s.Xi, s.Name, s.RLine,
	)
}

var _ PhotonField = &SphericalShellBLR{}
