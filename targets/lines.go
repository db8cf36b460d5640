package targets

import (
	"fmt"
	"math"
	"sort"

	"github.com/ltorresi/jetsed/cgs"
)

// Line describes one broad emission line: its rest frequency and its
// luminosity and radius relative to H-beta (Finke 2016, Table 5
// convention). The table is reference data; adding a line means adding
// a row, nothing structural.
type Line struct {
	Nu          float64 // rest frequency [Hz]
	LumRatio    float64 // L_line / L_Hbeta
	RadiusRatio float64 // R_line / R_Hbeta
}

var lines = map[string]Line{
	"Lyalpha": {2.47e15, 12.0, 0.27},
	"Lybeta":  {2.92e15, 1.1, 0.24},
	"Halpha":  {4.57e14, 3.0, 1.3},
	"Hbeta":   {6.17e14, 1.0, 1.0},
	"Hgamma":  {6.91e14, 0.46, 0.86},
	"MgII":    {1.07e15, 1.7, 1.7},
	"CIII]":   {1.57e15, 0.6, 0.46},
	"CIV":     {1.94e15, 2.9, 0.363},
	"NV":      {2.42e15, 0.46, 0.35},
	"OVI":     {2.90e15, 0.62, 0.29},
}

// LookupLine returns the table entry for name, failing immediately on
// an unknown name.
func LookupLine(name string) (Line, error) {
	l, ok := lines[name]
	if !ok {
		return Line{}, fmt.Errorf(
			"unknown emission line '%s'. Known lines: %v.",
			name, LineNames(),
		)
	}
	return l, nil
}

// LineNames lists the known line names in sorted order.
func LineNames() []string {
	names := make([]string, 0, len(lines))
	for name := range lines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Energy is the dimensionless photon energy of the line.
func (l Line) Energy() float64 {
	return cgs.H * l.Nu / cgs.MeC2
}

// RHbeta is the H-beta emission radius for a disk of luminosity lDisk
// [erg/s]: 1.1e17 sqrt(L / 1e46) cm. Other lines scale from it through
// their RadiusRatio.
func RHbeta(lDisk float64) float64 {
	return 1.1e17 * math.Sqrt(lDisk/1e46)
}
