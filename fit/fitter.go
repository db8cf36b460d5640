package fit

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/ltorresi/jetsed/data"
)

// Method selects the minimizer.
type Method int

const (
	LevenbergMarquardt Method = iota
	NelderMead
)

// Result of a fit: the best-fit statistic, the fitted values and their
// one-sigma uncertainties for the free parameters, in parameter order.
type Result struct {
	Stat      float64
	Names     []string
	Values    []float64
	Errors    []float64
	Converged bool
}

func (r *Result) String() string {
	s := fmt.Sprintf("chi2 = %.4g (converged=%v)", r.Stat, r.Converged)
	for i, name := range r.Names {
		s += fmt.Sprintf("\n  %-12s = %12.4g +/- %.4g",
			name, r.Values[i], r.Errors[i])
	}
	return s
}

// Fitter minimizes the chi-square of a model over one or more
// datasets.
type Fitter struct {
	Model    Model
	Datasets []*data.Dataset
	Method   Method

	// MaxIterations bounds the minimizer; 0 picks a default.
	MaxIterations int
}

func NewFitter(m Model, dss ...*data.Dataset) (*Fitter, error) {
	if len(dss) == 0 {
		return nil, fmt.Errorf("need at least one dataset.")
	}
	for _, ds := range dss {
		if len(ds.Points) == 0 {
			return nil, fmt.Errorf("dataset '%s' is empty.", ds.Name)
		}
	}
	return &Fitter{Model: m, Datasets: dss}, nil
}

func (f *Fitter) points() []data.FluxPoint {
	pts := []data.FluxPoint{}
	for _, ds := range f.Datasets {
		pts = append(pts, ds.Points...)
	}
	return pts
}

// apply writes the trial vector into the free parameters, clamped to
// their bounds.
func (f *Fitter) apply(x []float64) {
	for i, p := range free(f.Model.Params()) {
		p.Value = p.clamp(x[i])
	}
}

// residuals fills dst with error-weighted residuals at trial x. Model
// evaluation failures poison the residuals so the minimizer backs off.
func (f *Fitter) residuals(dst, x []float64) {
	pts := f.points()
	f.apply(x)

	nus := make([]float64, len(pts))
	for i, p := range pts {
		nus[i] = p.Nu
	}
	flux, err := f.Model.Flux(nus)
	if err != nil {
		for i := range dst {
			dst[i] = 1e10
		}
		return
	}
	for i, p := range pts {
		sigma := 0.5 * (p.ErrLo + p.ErrHi)
		if sigma <= 0 {
			sigma = 0.1 * p.Flux
		}
		dst[i] = (flux[i] - p.Flux) / sigma
	}
}

// chi2 is the summed squared residual at trial x.
func (f *Fitter) chi2(x []float64) float64 {
	dst := make([]float64, len(f.points()))
	f.residuals(dst, x)
	sum := 0.0
	for _, r := range dst {
		sum += r * r
	}
	return sum
}

// Run minimizes and returns the result. Errors from the minimizer and
// a singular covariance are surfaced unmodified.
func (f *Fitter) Run() (*Result, error) {
	freeParams := free(f.Model.Params())
	if len(freeParams) == 0 {
		return nil, fmt.Errorf("model has no free parameters.")
	}
	init := make([]float64, len(freeParams))
	names := make([]string, len(freeParams))
	for i, p := range freeParams {
		init[i] = p.Value
		names[i] = p.Name
	}

	var best []float64
	var converged bool
	switch f.Method {
	case LevenbergMarquardt:
		iters := f.MaxIterations
		if iters == 0 {
			iters = 100
		}
		jac := lm.NumJac{Func: f.residuals}
		problem := lm.LMProblem{
			Dim:        len(init),
			Size:       len(f.points()),
			Func:       f.residuals,
			Jac:        jac.Jac,
			InitParams: init,
			Tau:        1e-6,
			Eps1:       1e-8,
			Eps2:       1e-8,
		}
		res, err := lm.LM(problem, &lm.Settings{
			Iterations: iters, ObjectiveTol: 1e-16,
		})
		if err != nil {
			return nil, err
		}
		best, converged = res.X, true

	case NelderMead:
		problem := optimize.Problem{Func: f.chi2}
		res, err := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
		if err != nil {
			return nil, err
		}
		best, converged = res.X, res.Status == optimize.GradientThreshold ||
			res.Status == optimize.FunctionConvergence ||
			res.Status == optimize.StepConvergence

	default:
		return nil, fmt.Errorf("unknown fit method %d.", f.Method)
	}

	f.apply(best)
	for i, p := range freeParams {
		best[i] = p.Value
	}

	errs, err := f.uncertainties(best)
	if err != nil {
		return nil, err
	}
	return &Result{
		Stat:      f.chi2(best),
		Names:     names,
		Values:    best,
		Errors:    errs,
		Converged: converged,
	}, nil
}

// uncertainties estimates one-sigma parameter errors from the numeric
// Hessian of the chi-square: cov = 2 H^-1.
func (f *Fitter) uncertainties(x []float64) ([]float64, error) {
	n := len(x)
	h := mat.NewSymDense(n, nil)
	fd.Hessian(h, f.chi2, x, nil)

	var chol mat.Cholesky
	if ok := chol.Factorize(h); !ok {
		return nil, fmt.Errorf("singular covariance: Hessian is not positive definite.")
	}
	var cov mat.SymDense
	if err := chol.InverseTo(&cov); err != nil {
		return nil, err
	}

	errs := make([]float64, n)
	for i := range errs {
		errs[i] = math.Sqrt(2 * cov.At(i, i))
	}
	return errs, nil
}
