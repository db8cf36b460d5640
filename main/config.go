package main

import (
	"fmt"

	"github.com/ltorresi/jetsed/absorption"
	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/radiative"
	"github.com/ltorresi/jetsed/spectra"
	"github.com/ltorresi/jetsed/targets"
)

type BlobConfig struct {
	// Required
	R, Z, Delta, Gamma, B float64
}

func (c *BlobConfig) CheckInit() error {
	if c.R <= 0 {
		return fmt.Errorf("Need to specify a positive 'R' in [Blob].")
	} else if c.B <= 0 {
		return fmt.Errorf("Need to specify a positive 'B' in [Blob].")
	} else if c.Delta <= 0 || c.Gamma < 1 {
		return fmt.Errorf(
			"Need 'Delta' > 0 and 'Gamma' >= 1 in [Blob], got %g and %g.",
			c.Delta, c.Gamma,
		)
	}
	return nil
}

type ElectronsConfig struct {
	// Required
	Type string
	K    float64

	// Shape parameters; which ones are required depends on Type.
	P, P1, P2, A, Curvature float64
	GammaBreak, Gamma0      float64
	GammaMin, GammaMax      float64

	// Optional alternate normalization: exactly one may be set.
	TotalDensity, EnergyDensity, TotalEnergy, DensityAtGamma1 float64
}

func (c *ElectronsConfig) distribution(volume float64) (spectra.Distribution, error) {
	var dist spectra.Distribution
	var err error

	k := c.K
	if k == 0 {
		k = 1 // placeholder, replaced by the alternate normalization
	}

	switch c.Type {
	case "PowerLaw":
		dist, err = spectra.NewPowerLaw(k, c.P, c.GammaMin, c.GammaMax)
	case "BrokenPowerLaw":
		dist, err = spectra.NewBrokenPowerLaw(
			k, c.P1, c.P2, c.GammaBreak, c.GammaMin, c.GammaMax,
		)
	case "LogParabola":
		dist, err = spectra.NewLogParabola(
			k, c.A, c.Curvature, c.Gamma0, c.GammaMin, c.GammaMax,
		)
	default:
		return nil, fmt.Errorf(
			"Unknown [Electrons] 'Type' value '%s'.", c.Type,
		)
	}
	if err != nil {
		return nil, err
	}

	set := 0
	for _, v := range []float64{
		c.TotalDensity, c.EnergyDensity, c.TotalEnergy, c.DensityAtGamma1,
	} {
		if v != 0 {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf(
			"[Electrons] sets more than one alternate normalization.",
		)
	}

	switch {
	case c.TotalDensity != 0:
		err = spectra.FromTotalDensity(dist, c.TotalDensity)
	case c.EnergyDensity != 0:
		err = spectra.FromEnergyDensity(dist, c.EnergyDensity)
	case c.TotalEnergy != 0:
		err = spectra.FromTotalEnergy(dist, c.TotalEnergy, volume)
	case c.DensityAtGamma1 != 0:
		err = spectra.FromDensityAtGamma1(dist, c.DensityAtGamma1)
	}
	if err != nil {
		return nil, err
	}
	return dist, nil
}

type TargetConfig struct {
	// Required
	Type string

	// Per-type parameters.
	LDisk, Xi, T, RRing float64
	M, Eta, Rin, Rout   float64
	Line                string
	RLine               float64
	L, Eps              float64
}

func (c *TargetConfig) target(z float64) (targets.PhotonField, error) {
	switch c.Type {
	case "CMB":
		return targets.NewCMB(z)
	case "PointSourceBehindJet":
		return targets.NewPointSourceBehindJet(c.L, c.Eps)
	case "SSDisk":
		return targets.NewSSDisk(c.M, c.LDisk, c.Eta, c.Rin, c.Rout)
	case "SphericalShellBLR":
		return targets.NewShellBLR(c.LDisk, c.Xi, c.Line, c.RLine)
	case "RingDustTorus":
		return targets.NewRingDustTorus(c.LDisk, c.Xi, c.T, c.RRing)
	}
	return nil, fmt.Errorf("Unknown [Target] 'Type' value '%s'.", c.Type)
}

type ProcessConfig struct {
	// Required
	Type string

	// Optional
	SSA      bool
	Target   string
	Distance float64
}

func (c *ProcessConfig) process(
	name string, bl *blob.Blob, tgts map[string]targets.PhotonField,
) (radiative.Process, error) {
	switch c.Type {
	case "Synchrotron":
		return radiative.NewSynchrotron(bl, c.SSA), nil
	case "SSC":
		return radiative.NewSSC(bl), nil
	case "ExternalCompton":
		t, ok := tgts[c.Target]
		if !ok {
			return nil, fmt.Errorf(
				"Process '%s' references unknown target '%s'.",
				name, c.Target,
			)
		}
		return radiative.NewExternalCompton(bl, t, c.Distance)
	}
	return nil, fmt.Errorf(
		"Unknown 'Type' value '%s' for Process '%s'.", c.Type, name,
	)
}

type AbsorptionConfig struct {
	// Required
	Kind string // "External" or "Internal"

	// External only.
	Target   string
	Distance float64
}

// attenuator is the common surface of the two absorber kinds.
type attenuator interface {
	Opacity(nu []float64) []float64
	Attenuation(nu []float64) []float64
	String() string
}

func (c *AbsorptionConfig) absorber(
	name string, bl *blob.Blob, tgts map[string]targets.PhotonField,
) (attenuator, error) {
	switch c.Kind {
	case "Internal":
		return absorption.NewInternal(bl), nil
	case "External":
		t, ok := tgts[c.Target]
		if !ok {
			return nil, fmt.Errorf(
				"Absorption '%s' references unknown target '%s'.",
				name, c.Target,
			)
		}
		return absorption.NewExternal(t, c.Distance, bl.Z)
	}
	return nil, fmt.Errorf(
		"Unknown 'Kind' value '%s' for Absorption '%s'.", c.Kind, name,
	)
}

type GridConfig struct {
	NuMin, NuMax float64
	Points       int
}

func (c *GridConfig) CheckInit() error {
	if c.NuMin <= 0 || c.NuMax <= c.NuMin {
		return fmt.Errorf(
			"Need 0 < 'NuMin' < 'NuMax' in [Grid], got [%g, %g].",
			c.NuMin, c.NuMax,
		)
	} else if c.Points < 2 {
		return fmt.Errorf("Need at least 2 'Points' in [Grid].")
	}
	return nil
}

type OutputConfig struct {
	File string
	Plot bool
}

type SEDConfig struct {
	Blob       BlobConfig
	Electrons  ElectronsConfig
	Grid       GridConfig
	Output     OutputConfig
	Target     map[string]*TargetConfig
	Process    map[string]*ProcessConfig
	Absorption map[string]*AbsorptionConfig
}

type FitConfig struct {
	Fit struct {
		Data          string
		Registry      string
		Model         string // "SSC" or "ECDT"
		Z             float64
		Method        string // "lm" or "nm"
		MaxIterations int

		// ECDT torus parameters.
		LDisk, Xi, T float64
	}
}

const exampleSEDConfig = `[Blob]
R = 1e16
Z = 1.0
Delta = 40
Gamma = 40
B = 0.56

[Electrons]
Type = BrokenPowerLaw
K = 0.0129
P1 = 2.0
P2 = 3.5
GammaBreak = 1e4
GammaMin = 20
GammaMax = 5e7

[Target "dt"]
Type = RingDustTorus
LDisk = 2e46
Xi = 0.1
T = 1e3
; RRing = 0 selects the sublimation radius.
RRing = 0

[Process "synch"]
Type = Synchrotron
SSA = true

[Process "ssc"]
Type = SSC

[Process "ec_dt"]
Type = ExternalCompton
Target = dt
Distance = 1e18

[Absorption "dt"]
Kind = External
Target = dt
Distance = 1e18

[Grid]
NuMin = 1e10
NuMax = 1e28
Points = 60

[Output]
File = sed.txt
Plot = false
`

const exampleFitConfig = `[Fit]
Data = flux_points.txt
Registry = instruments.cfg
Model = SSC
Z = 1.0
Method = lm
MaxIterations = 100
`
