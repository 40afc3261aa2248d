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

package galmag

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// Units
var (
	// tesla is magnetic flux density [kg s-2 A-1].
	tesla = unit.Dimensions{
		unit.MassDim:    1,
		unit.TimeDim:    -2,
		unit.CurrentDim: -1}
	// meter2PerSecond is kinematic (turbulent) diffusivity [m2 s-1].
	meter2PerSecond = unit.Dimensions{
		unit.LengthDim: 2,
		unit.TimeDim:   -1}
)

const (
	// metersPerKpc is the number of meters in one kiloparsec.
	metersPerKpc = 3.0856775814913673e19
)

// A UnitScale describes one of the canonical units used by the wrapped
// field generator: a conversion factor to SI and the expected
// physical dimensions. Parameter values are checked against Dims
// before conversion.
type UnitScale struct {
	Symbol string
	Factor float64
	Dims   unit.Dimensions
}

// Canonical generator units. Lengths are in kiloparsecs, field
// strengths in microgauss, velocities in km s-1, diffusivities in
// cm2 s-1 and rates in s-1, matching the wrapped generator's
// conventions.
var (
	Kpc           = &UnitScale{"kpc", metersPerKpc, unit.Meter}
	MicroGauss    = &UnitScale{"microgauss", 1.e-10, tesla}
	KmPerSecond   = &UnitScale{"km/s", 1000, unit.MeterPerSecond}
	Cm2PerSecond  = &UnitScale{"cm2/s", 1.e-4, meter2PerSecond}
	InverseSecond = &UnitScale{"1/s", 1, unit.Herz}
	Dimless       = &UnitScale{"", 1, unit.Dimless}
)

// scales holds the known unit symbols for configuration parsing.
var scales = map[string]*UnitScale{
	"kpc":        Kpc,
	"microgauss": MicroGauss,
	"uG":         MicroGauss,
	"km/s":       KmPerSecond,
	"cm2/s":      Cm2PerSecond,
	"1/s":        InverseSecond,
}

// ScaleForSymbol returns the unit scale registered for symbol.
func ScaleForSymbol(symbol string) (*UnitScale, error) {
	s, ok := scales[symbol]
	if !ok {
		return nil, fmt.Errorf("galmag: unknown unit symbol %q", symbol)
	}
	return s, nil
}

// New creates a quantity of v in this unit. The returned value is
// held in SI units.
func (s *UnitScale) New(v float64) *unit.Unit {
	return unit.New(v*s.Factor, s.Dims)
}

// ValueIn returns the bare numeric value of u expressed in this unit,
// checking that the physical dimensions of u match.
func (s *UnitScale) ValueIn(u *unit.Unit) (float64, error) {
	if err := u.Check(s.Dims); err != nil {
		return math.NaN(), err
	}
	return u.Value() / s.Factor, nil
}

// Kiloparsec creates a new unit from a length in kiloparsecs.
func Kiloparsec(v float64) *unit.Unit { return Kpc.New(v) }

// Microgauss creates a new unit from a field strength in microgauss.
func Microgauss(v float64) *unit.Unit { return MicroGauss.New(v) }

// KilometerPerSecond creates a new unit from a speed in km s-1.
func KilometerPerSecond(v float64) *unit.Unit { return KmPerSecond.New(v) }

// Centimeter2PerSecond creates a new unit from a diffusivity in cm2 s-1.
func Centimeter2PerSecond(v float64) *unit.Unit { return Cm2PerSecond.New(v) }

// PerSecond creates a new unit from a rate in s-1.
func PerSecond(v float64) *unit.Unit { return InverseSecond.New(v) }

// Dimensionless creates a new dimensionless quantity.
func Dimensionless(v float64) *unit.Unit { return unit.New(v, unit.Dimless) }

// dimensionless extracts the bare value of a quantity that must be
// dimensionless, such as a derived induction number.
func dimensionless(name string, u *unit.Unit) (float64, error) {
	v, err := Dimless.ValueIn(u)
	if err != nil {
		return math.NaN(), &UnitError{Name: name, Err: err}
	}
	return v, nil
}
