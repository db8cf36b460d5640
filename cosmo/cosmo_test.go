package cosmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuminosityDistance(t *testing.T) {
	assert.Equal(t, 0.0, LuminosityDistance(0))
	assert.Equal(t, 0.0, LuminosityDistance(-1))

	// Planck-ish flat LambdaCDM, z=1: d_L ~ 6.6 Gpc.
	dl := LuminosityDistance(1)
	assert.InEpsilon(t, 2.05e28, dl, 0.05, "d_L(1)")

	// Monotone in z.
	prev := 0.0
	for _, z := range []float64{0.1, 0.5, 1, 2, 4} {
		d := LuminosityDistance(z)
		assert.Greater(t, d, prev, "monotone")
		prev = d
	}
}
