package fit

import (
	"fmt"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/radiative"
	"github.com/ltorresi/jetsed/spectra"
	"github.com/ltorresi/jetsed/targets"
)

// Model is what the fitters consume: an ordered, named parameter set
// and an SED evaluation over a frequency grid.
type Model interface {
	Params() []*Parameter
	Flux(nu []float64) ([]float64, error)
	String() string
}

// SSCModel is a one-zone broken-power-law synchrotron + SSC model.
// The blob is rebuilt from the current parameter values on every Flux
// call, so the optimizer sees a pure function of the parameters.
type SSCModel struct {
	Z      float64
	params []*Parameter
}

// NewSSCModel seeds the model with the usual blazar starting point.
func NewSSCModel(z float64) *SSCModel {
	return &SSCModel{
		Z: z,
		params: []*Parameter{
			{Name: "k", Value: 1e-2, Min: 1e-8, Max: 1e3},
			{Name: "p1", Value: 2.0, Min: 1.0, Max: 4.0},
			{Name: "p2", Value: 3.5, Min: 2.0, Max: 6.0},
			{Name: "gamma_b", Value: 1e4, Min: 1e2, Max: 1e6},
			{Name: "gamma_min", Value: 20, Min: 1, Max: 1e3, Frozen: true},
			{Name: "gamma_max", Value: 5e7, Min: 1e5, Max: 1e9, Frozen: true},
			{Name: "R", Value: 1e16, Min: 1e14, Max: 1e18, Frozen: true},
			{Name: "B", Value: 0.5, Min: 1e-3, Max: 1e2},
			{Name: "delta", Value: 20, Min: 1, Max: 60},
			{Name: "Gamma", Value: 20, Min: 1, Max: 60, Frozen: true},
		},
	}
}

func (m *SSCModel) Params() []*Parameter { return m.params }

// SetParam overrides a named parameter value, clamped to its bounds.
func (m *SSCModel) SetParam(name string, v float64) error {
	p, err := byName(m.params, name)
	if err != nil {
		return err
	}
	p.Value = p.clamp(v)
	return nil
}

// Freeze marks a named parameter as fixed during fits.
func (m *SSCModel) Freeze(name string, frozen bool) error {
	p, err := byName(m.params, name)
	if err != nil {
		return err
	}
	p.Frozen = frozen
	return nil
}

// build assembles the blob from the current parameter values.
func (m *SSCModel) build() (*blob.Blob, error) {
	v := func(name string) float64 {
		p, _ := byName(m.params, name)
		return p.Value
	}

	dist, err := spectra.NewBrokenPowerLaw(
		v("k"), v("p1"), v("p2"), v("gamma_b"), v("gamma_min"), v("gamma_max"),
	)
	if err != nil {
		return nil, err
	}

	gamma := v("Gamma")
	delta := v("delta")
	if delta > 2*gamma {
		delta = 2 * gamma
	}
	return blob.New(v("R"), m.Z, delta, gamma, v("B"), dist)
}

func (m *SSCModel) Flux(nu []float64) ([]float64, error) {
	bl, err := m.build()
	if err != nil {
		return nil, err
	}

	synch := radiative.NewSynchrotron(bl, true).SEDFlux(nu)
	ssc := radiative.NewSSC(bl).SEDFlux(nu)
	out := make([]float64, len(nu))
	for i := range out {
		out[i] = synch[i] + ssc[i]
	}
	return out, nil
}

func (m *SSCModel) String() string { return "SSCModel" }

// ECModel extends SSCModel with an external-Compton component on a
// dust torus at distance r_h from the engine.
type ECModel struct {
	SSCModel
	Torus *targets.RingDustTorus
}

func NewECModel(z float64, torus *targets.RingDustTorus) *ECModel {
	m := &ECModel{SSCModel: *NewSSCModel(z), Torus: torus}
	m.params = append(m.params,
		&Parameter{Name: "r_h", Value: 1e18, Min: 1e16, Max: 1e21, Frozen: true},
	)
	return m
}

func (m *ECModel) Flux(nu []float64) ([]float64, error) {
	base, err := m.SSCModel.Flux(nu)
	if err != nil {
		return nil, err
	}
	bl, err := m.build()
	if err != nil {
		return nil, err
	}
	p, _ := byName(m.params, "r_h")
	ec, err := radiative.NewExternalCompton(bl, m.Torus, p.Value)
	if err != nil {
		return nil, err
	}

	ecFlux := ec.SEDFlux(nu)
	for i := range base {
		base[i] += ecFlux[i]
	}
	return base, nil
}

func (m *ECModel) String() string {
	return fmt.Sprintf("ECModel(torus=%s)", m.Torus)
}
