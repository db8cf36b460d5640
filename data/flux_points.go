/*package data loads observed multi-wavelength flux points and the
instrument registry used to attach systematic errors to them.

Flux-point files are whitespace tables with '#' comment lines and five
columns: frequency [Hz], nu F_nu [erg s^-1 cm^-2], lower error, upper
error, instrument id. The instrument registry maps ids to names and
relative systematic errors.*/
package data

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"
)

// FluxPoint is one observed SED point with asymmetric errors.
type FluxPoint struct {
	Nu         float64 // [Hz]
	Flux       float64 // nu F_nu [erg s^-1 cm^-2]
	ErrLo      float64
	ErrHi      float64
	Instrument string
}

// Dataset is a named collection of flux points.
type Dataset struct {
	Name   string
	Points []FluxPoint
}

// Load reads a flux-point table. The registry may be nil, in which case
// instrument ids are kept as numeric labels and no systematics are
// applied.
func Load(fname string, reg *Registry) (*Dataset, error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3, 4}, nil)
	if err != nil {
		return nil, err
	}

	nus, fluxes, los, his, ids := cols[0], cols[1], cols[2], cols[3], cols[4]
	ds := &Dataset{Name: fname, Points: make([]FluxPoint, len(nus))}
	for i := range nus {
		if fluxes[i] <= 0 {
			return nil, fmt.Errorf(
				"non-positive flux %g at row %d of '%s'.", fluxes[i], i, fname,
			)
		}
		p := FluxPoint{
			Nu: nus[i], Flux: fluxes[i], ErrLo: los[i], ErrHi: his[i],
			Instrument: fmt.Sprintf("%d", int(ids[i])),
		}
		if reg != nil {
			inst, err := reg.ByID(int(ids[i]))
			if err != nil {
				return nil, err
			}
			p.Instrument = inst.Name
			// Relative systematic added in quadrature.
			sys := inst.SysErr * p.Flux
			p.ErrLo = math.Hypot(p.ErrLo, sys)
			p.ErrHi = math.Hypot(p.ErrHi, sys)
		}
		ds.Points[i] = p
	}
	return ds, nil
}

// Frequencies returns the frequency column of the dataset.
func (ds *Dataset) Frequencies() []float64 {
	nus := make([]float64, len(ds.Points))
	for i, p := range ds.Points {
		nus[i] = p.Nu
	}
	return nus
}

// LoadSeries reads a plain two-column (x, y) whitespace table, e.g. a
// reference SED exported by another code.
func LoadSeries(fname string) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}
