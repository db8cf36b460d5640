package radiative

// Process is any radiative process that evaluates an observed SED on a
// frequency grid.
type Process interface {
	// SEDFlux returns nu F_nu [erg s^-1 cm^-2] at the observed
	// frequencies nu [Hz].
	SEDFlux(nu []float64) []float64
	String() string
}

var (
	_ Process = &Synchrotron{}
	_ Process = &SynchrotronSelfCompton{}
	_ Process = &ExternalCompton{}
)
