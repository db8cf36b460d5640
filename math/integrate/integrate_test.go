package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogSpace(t *testing.T) {
	xs := LogSpace(1, 1e4, 5)
	assert.Equal(t, 5, len(xs))
	assert.Equal(t, 1.0, xs[0], "lower endpoint")
	assert.Equal(t, 1e4, xs[4], "upper endpoint")
	for i := 0; i < len(xs)-1; i++ {
		assert.InEpsilon(t, 10.0, xs[i+1]/xs[i], 1e-10, "log step")
	}
}

func TestLinSpace(t *testing.T) {
	xs := LinSpace(-1, 1, 5)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, xs)
}

func TestTrapezoidLine(t *testing.T) {
	// Exact for straight lines.
	xs := LinSpace(0, 2, 7)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x + 1
	}
	assert.InEpsilon(t, 8.0, Trapezoid(xs, ys), 1e-12)
}

func TestLogFuncPowerLaw(t *testing.T) {
	table := []struct {
		p, lo, hi float64
		want      float64
	}{
		{2, 1e2, 1e5, 1.0/1e2 - 1.0/1e5},
		{1, 1, 1e3, math.Log(1e3)},
		{0.5, 1, 1e4, 2 * (1e2 - 1)},
	}

	for i, test := range table {
		got := LogFunc(func(x float64) float64 {
			return math.Pow(x, -test.p)
		}, test.lo, test.hi, 400)
		if math.Abs(got-test.want)/test.want > 1e-3 {
			t.Errorf("%d) Expected %g, got %g.", i, test.want, got)
		}
	}
}

func TestLogFuncEmptyRange(t *testing.T) {
	got := LogFunc(func(x float64) float64 { return 1 }, 10, 10, 100)
	assert.Equal(t, 0.0, got)
}

func TestFuncConstant(t *testing.T) {
	got := Func(func(x float64) float64 { return 2 }, -1, 1, 50)
	assert.InEpsilon(t, 4.0, got, 1e-12)
}
