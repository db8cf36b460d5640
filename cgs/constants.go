// Package cgs collects the physical constants used throughout jetsed.
// Everything is in Gaussian CGS units unless the name says otherwise.
package cgs

const (
	C       = 2.99792458e10         // speed of light [cm/s]
	Me      = 9.1093837015e-28      // electron mass [g]
	Mp      = 1.67262192369e-24     // proton mass [g]
	E       = 4.80320425e-10        // elementary charge [esu]
	H       = 6.62607015e-27        // Planck constant [erg s]
	KB      = 1.380649e-16          // Boltzmann constant [erg/K]
	SigmaT  = 6.6524587321e-25      // Thomson cross section [cm^2]
	SigmaSB = 5.670374419e-5        // Stefan-Boltzmann constant [erg cm^-2 s^-1 K^-4]
	ARad    = 7.565723e-15          // radiation constant [erg cm^-3 K^-4]
	G       = 6.67430e-8            // gravitational constant [cm^3 g^-1 s^-2]
	MSun    = 1.98892e33            // solar mass [g]
	Pc      = 3.0856775814913673e18 // parsec [cm]

	Erg = 6.241509074e11 // [eV/erg]

	// Electron rest energy and the frequency of a photon carrying it.
	MeC2   = Me * C * C // [erg]
	NuMeC2 = MeC2 / H   // [Hz]

	// CMB temperature today.
	TCMB = 2.72548 // [K]
)
