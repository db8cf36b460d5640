/*package fit folds SED models through observed flux points: named
bounded parameters, models that rebuild their emission region per
evaluation, and Levenberg-Marquardt / Nelder-Mead drivers that minimize
a chi-square statistic over one or more datasets.*/
package fit

import (
	"fmt"
)

// Parameter is one named model parameter. Frozen parameters keep their
// value during a fit; free ones are clamped to [Min, Max].
type Parameter struct {
	Name   string
	Value  float64
	Min    float64
	Max    float64
	Frozen bool
}

func (p *Parameter) String() string {
	state := "free"
	if p.Frozen {
		state = "frozen"
	}
	return fmt.Sprintf("%-12s = %12.4g  [%g, %g] (%s)",
		p.Name, p.Value, p.Min, p.Max, state)
}

// clamp pushes v inside the parameter's bounds.
func (p *Parameter) clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// free selects the non-frozen parameters of a set, in order.
func free(params []*Parameter) []*Parameter {
	out := []*Parameter{}
	for _, p := range params {
		if !p.Frozen {
			out = append(out, p)
		}
	}
	return out
}

// byName finds a parameter, failing on unknown names.
func byName(params []*Parameter, name string) (*Parameter, error) {
	for _, p := range params {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("model has no parameter '%s'.", name)
}
