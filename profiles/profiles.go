/*
Copyright © 2026 the galmag authors.
This file is part of galmag.

galmag is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

galmag is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with galmag.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package profiles provides the default rotation, shear, scale height
// and α-effect profiles used as inputs by the wrapped field
// generators. All radii are galactocentric and in kpc unless stated
// otherwise.
package profiles

import "math"

// SolarRadius is the galactocentric radius of the Sun [kpc] assumed
// by the Clemens (1985) fits.
const SolarRadius = 8.5

// Piecewise polynomial fit coefficients for the Milky Way rotation
// curve from Clemens (1985), Table 3, for (R0, V0) = (8.5 kpc,
// 220 km/s). Coefficients are in increasing order of the power of R
// [kpc].
var (
	clemensA = []float64{0, 3069.81, -15809.8, 43980.1, -68287.3, 54904.0, -17731.0}
	clemensB = []float64{325.0912, -248.1467, 231.87099, -110.73531, 25.073006, -2.110625}
	clemensC = []float64{-2342.6564, 2507.60391, -1024.068760, 224.562732,
		-28.4080026, 2.0697271, -0.08050808, 0.00129348}
	clemensD = []float64{234.88}
)

// Boundaries of the Clemens fit pieces, as fractions of SolarRadius.
var clemensBreaks = []float64{0.09, 0.45, 1.6}

// clemensPiece selects the fit coefficients applying at radius r.
func clemensPiece(r float64) []float64 {
	switch {
	case r < clemensBreaks[0]*SolarRadius:
		return clemensA
	case r < clemensBreaks[1]*SolarRadius:
		return clemensB
	case r < clemensBreaks[2]*SolarRadius:
		return clemensC
	default:
		return clemensD
	}
}

// polyval evaluates the polynomial with coefficients c (increasing
// order) at x.
func polyval(c []float64, x float64) float64 {
	v := 0.
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}

// polyderiv evaluates the derivative of the polynomial with
// coefficients c at x.
func polyderiv(c []float64, x float64) float64 {
	v := 0.
	for i := len(c) - 1; i >= 1; i-- {
		v = v*x + float64(i)*c[i]
	}
	return v
}

// ClemensRotationCurve returns the Milky Way circular rotation speed
// V(r) [km/s] at cylindrical radius r [kpc], following the Clemens
// (1985) fit.
func ClemensRotationCurve(r float64) float64 {
	if r < 0 {
		r = -r
	}
	return polyval(clemensPiece(r), r)
}

// ClemensShearRate returns the Milky Way shear rate
// S(r) = r dΩ/dr = dV/dr − V/r [km s-1 kpc-1] at cylindrical radius
// r [kpc], from the Clemens (1985) rotation curve. S(0) = 0 since
// the curve rises linearly through the origin.
func ClemensShearRate(r float64) float64 {
	if r < 0 {
		r = -r
	}
	if r == 0 {
		return 0
	}
	c := clemensPiece(r)
	return polyderiv(c, r) - polyval(c, r)/r
}

// ExponentialScaleHeight returns the disk scale height profile
// h(r) = exp((r − R0)/R0), normalized to unity at the solar radius.
func ExponentialScaleHeight(r float64) float64 {
	return math.Exp((r - SolarRadius) / SolarRadius)
}

// haloTurnover is the radius, in units of the halo radius, at which
// the simple halo rotation profile saturates.
const haloTurnover = 0.5

// SimpleRotation is the default halo rotation profile
// V(r, θ) = 1 − exp(−s/s0), where s = r sin θ is the cylindrical
// radius in units of the halo radius. It rises from zero on the
// rotation axis and saturates at large cylindrical radii.
func SimpleRotation(r, theta float64) float64 {
	s := r * math.Sin(theta)
	return 1 - math.Exp(-s/haloTurnover)
}

// SimpleAlpha is the default halo α-effect profile α(r, θ) = cos θ:
// largest at the poles and antisymmetric about the galactic
// midplane.
func SimpleAlpha(r, theta float64) float64 {
	return math.Cos(theta)
}
