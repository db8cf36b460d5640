package data

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// Instrument describes one flux-point source: its numeric id in the
// data files and the relative systematic error of its calibration.
type Instrument struct {
	Name   string
	ID     int
	SysErr float64
}

// Registry maps instrument ids to instruments.
type Registry struct {
	byID map[int]*Instrument
}

type instrumentSection struct {
	ID     int
	SysErr float64
}

type registryConfig struct {
	Instrument map[string]*instrumentSection
}

// ReadRegistry loads an instrument registry from a gcfg file with
// sections of the form
//
//	[instrument "Fermi-LAT"]
//	ID = 3
//	SysErr = 0.1
func ReadRegistry(fname string) (*Registry, error) {
	rc := registryConfig{}
	if err := gcfg.ReadFileInto(&rc, fname); err != nil {
		return nil, err
	}

	reg := &Registry{byID: map[int]*Instrument{}}
	for name, sec := range rc.Instrument {
		if sec.SysErr < 0 || sec.SysErr >= 1 {
			return nil, fmt.Errorf(
				"instrument '%s' needs a SysErr in [0, 1), got %g.",
				name, sec.SysErr,
			)
		}
		if prev, ok := reg.byID[sec.ID]; ok {
			return nil, fmt.Errorf(
				"instruments '%s' and '%s' share id %d.",
				prev.Name, name, sec.ID,
			)
		}
		reg.byID[sec.ID] = &Instrument{Name: name, ID: sec.ID, SysErr: sec.SysErr}
	}
	return reg, nil
}

// ByID looks an instrument up, failing on unknown ids.
func (r *Registry) ByID(id int) (*Instrument, error) {
	inst, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown instrument id %d.", id)
	}
	return inst, nil
}
