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
	"testing"

	"github.com/ctessum/unit"
)

func TestUnitScaleRoundTrip(t *testing.T) {
	const tolerance = 1.e-12

	for _, test := range []struct {
		scale *UnitScale
		si    float64 // SI value of 1 in this unit
	}{
		{Kpc, 3.0856775814913673e19},
		{MicroGauss, 1.e-10},
		{KmPerSecond, 1000},
		{Cm2PerSecond, 1.e-4},
		{InverseSecond, 1},
	} {
		u := test.scale.New(1)
		if v := u.Value(); relDiff(v, test.si) > tolerance {
			t.Errorf("%s: SI value of 1 = %g; want %g", test.scale.Symbol, v, test.si)
		}
		back, err := test.scale.ValueIn(u)
		if err != nil {
			t.Errorf("%s: %v", test.scale.Symbol, err)
		}
		if relDiff(back, 1) > tolerance {
			t.Errorf("%s: round trip of 1 = %g", test.scale.Symbol, back)
		}
	}
}

func TestUnitScaleDimensionCheck(t *testing.T) {
	// A speed is not a length.
	if _, err := Kpc.ValueIn(KilometerPerSecond(1)); err == nil {
		t.Error("expected a dimension mismatch error")
	}
	// A quantity in any length unit converts to kpc.
	v, err := Kpc.ValueIn(unit.New(metersPerKpc, unit.Meter))
	if err != nil {
		t.Fatal(err)
	}
	if relDiff(v, 1) > 1.e-12 {
		t.Errorf("1 kpc of meters = %g kpc; want 1", v)
	}
}

func TestScaleForSymbol(t *testing.T) {
	for symbol, want := range map[string]*UnitScale{
		"kpc":        Kpc,
		"microgauss": MicroGauss,
		"uG":         MicroGauss,
		"km/s":       KmPerSecond,
		"cm2/s":      Cm2PerSecond,
		"1/s":        InverseSecond,
	} {
		s, err := ScaleForSymbol(symbol)
		if err != nil {
			t.Errorf("%s: %v", symbol, err)
			continue
		}
		if s != want {
			t.Errorf("%s resolved to %v", symbol, s)
		}
	}
	if _, err := ScaleForSymbol("furlong"); err == nil {
		t.Error("expected an error for an unknown symbol")
	}
}

func TestDimensionlessExtraction(t *testing.T) {
	// h α / β with h = 1 kpc, α = 1 km/s, β = 1 cm2/s.
	q := unit.Div(unit.Mul(Kiloparsec(1), KilometerPerSecond(1)), Centimeter2PerSecond(1))
	v, err := dimensionless("test", q)
	if err != nil {
		t.Fatal(err)
	}
	want := metersPerKpc * 1000 / 1.e-4
	if relDiff(v, want) > 1.e-12 {
		t.Errorf("induction number = %g; want %g", v, want)
	}

	if _, err := dimensionless("test", Kiloparsec(1)); err == nil {
		t.Error("a dimensioned quantity should not pass as dimensionless")
	}
}
