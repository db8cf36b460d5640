/*package radiative computes the non-thermal emission of a jet region:
synchrotron radiation (optionally self-absorbed), synchrotron
self-Compton and external Compton on a target photon field. Every
process evaluates nu F_nu [erg s^-1 cm^-2] on an observed frequency
grid and keeps no state between calls.*/
package radiative

import (
	"math"
)

// Lorentz-factor grid resolution of the emission integrals.
const gammaSteps = 200

// Photon-energy grid resolution of the SSC integral.
const epsSteps = 100

// synchR is the single-electron synchrotron emission kernel R(x) of
// Crusius & Schlickeiser, in the analytic fit of Finke, Dermer &
// Boettcher (2008), eq. 18. Accurate to ~1% over the usable range.
func synchR(x float64) float64 {
	if x > 700 {
		return 0
	}
	x13 := math.Cbrt(x)
	x23 := x13 * x13
	x43 := x23 * x23
	t1 := 1.808 * x13 / math.Sqrt(1+3.4*x23)
	t2 := (1 + 2.210*x23 + 0.347*x43) / (1 + 1.353*x23 + 0.217*x43)
	return t1 * t2 * math.Exp(-x)
}

// comptonKernel is the isotropic inverse-Compton kernel F_c(q, Gamma_e)
// of Jones (1968) / Blumenthal & Gould (1970), including the
// Klein-Nishina term. Zero outside the kinematic range
// 1/(4 gamma^2) <= q <= 1.
func comptonKernel(q, gammaE, gamma float64) float64 {
	if q <= 1/(4*gamma*gamma) || q > 1 {
		return 0
	}
	gq := gammaE * q
	return 2*q*math.Log(q) + (1+2*q)*(1-q) + 0.5*gq*gq*(1-q)/(1+gq)
}

// scatteredFraction converts scattered photon energy, target photon
// energy and electron Lorentz factor into the kernel arguments.
func scatteredFraction(epsS, eps, gamma float64) (q, gammaE float64) {
	gammaE = 4 * eps * gamma
	e1 := epsS / gamma
	if e1 >= 1 {
		return 0, gammaE
	}
	return e1 / (gammaE * (1 - e1)), gammaE
}
