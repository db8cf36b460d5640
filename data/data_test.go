package data

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFile(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoadWithoutRegistry(t *testing.T) {
	ds, err := Load(testFile("flux_points.txt"), nil)
	assert.NoError(t, err)
	assert.Equal(t, 5, len(ds.Points))

	p := ds.Points[0]
	assert.Equal(t, 1e10, p.Nu)
	assert.Equal(t, 2e-14, p.Flux)
	assert.Equal(t, 2e-15, p.ErrLo)
	assert.Equal(t, "1", p.Instrument, "numeric label without a registry")

	assert.Equal(t, 4e-13, ds.Points[2].ErrLo)
	assert.Equal(t, 6e-13, ds.Points[2].ErrHi, "asymmetric errors survive")

	nus := ds.Frequencies()
	assert.Equal(t, 5, len(nus))
	assert.Equal(t, 2.4e23, nus[3])
}

func TestLoadWithRegistry(t *testing.T) {
	reg, err := ReadRegistry(testFile("instruments.cfg"))
	assert.NoError(t, err)

	ds, err := Load(testFile("flux_points.txt"), reg)
	assert.NoError(t, err)

	assert.Equal(t, "OVRO", ds.Points[0].Instrument)
	assert.Equal(t, "Fermi-LAT", ds.Points[3].Instrument)

	// Systematics added in quadrature: point 3 has flux 6e-11 with a
	// 10% systematic on top of the 8e-12 statistical error.
	want := math.Hypot(8e-12, 0.1*6e-11)
	assert.InEpsilon(t, want, ds.Points[3].ErrLo, 1e-12)
	assert.InEpsilon(t, want, ds.Points[3].ErrHi, 1e-12)
}

func TestLoadRejectsNonPositiveFlux(t *testing.T) {
	_, err := Load(testFile("bad_flux.txt"), nil)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testFile("no_such_file.txt"), nil)
	assert.Error(t, err)
}

func TestRegistryByID(t *testing.T) {
	reg, err := ReadRegistry(testFile("instruments.cfg"))
	assert.NoError(t, err)

	inst, err := reg.ByID(5)
	assert.NoError(t, err)
	assert.Equal(t, "MAGIC", inst.Name)
	assert.Equal(t, 0.3, inst.SysErr)

	_, err = reg.ByID(42)
	assert.Error(t, err, "unknown id")
}

func TestLoadSeries(t *testing.T) {
	xs, ys, err := LoadSeries(testFile("series.txt"))
	assert.NoError(t, err)
	assert.Equal(t, []float64{1e10, 1e12, 1e14}, xs)
	assert.Equal(t, []float64{1e-13, 2e-13, 4e-13}, ys)
}
