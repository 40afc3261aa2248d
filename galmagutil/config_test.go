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

package galmagutil

import (
	"math"
	"testing"

	"github.com/lnashier/viper"

	"github.com/spatialmodel/galmag"
)

type nopGenerator struct{}

func (nopGenerator) BField(p galmag.Params) (*galmag.BField, error) { return nil, nil }

func nopFactory(box [3][2]float64, resolution [3]int, gridType galmag.GridType) (galmag.Generator, error) {
	return nopGenerator{}, nil
}

func diskTestConfig() *viper.Viper {
	cfg := InitializeConfig()
	cfg.Set("grid.type", "cylindrical")
	cfg.Set("grid.box", []interface{}{0.1, 17.0, 0.0, 6.28, -2.0, 2.0})
	cfg.Set("grid.resolution", []interface{}{10, 12, 8})
	cfg.Set("keep_field", true)
	cfg.Set("parameters", map[string]interface{}{
		"disk_height":                "0.4 kpc",
		"disk_radius":                "17 kpc",
		"disk_shear_normalization":   "-8e-16 1/s",
		"disk_turbulent_diffusivity": "1e26 cm2/s",
		"disk_alpha_effect":          "1 km/s",
		"mode_1":                     "1 microgauss",
		"mode_2":                     "-0.5 uG",
	})
	cfg.Set("ensemble.size", 3)
	cfg.Set("ensemble.seeds", []interface{}{11, 12, 13})
	return cfg
}

func TestParseQuantity(t *testing.T) {
	const tolerance = 1.e-12

	u, err := ParseQuantity("0.4 kpc")
	if err != nil {
		t.Fatal(err)
	}
	v, err := galmag.Kpc.ValueIn(u)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-0.4) > tolerance {
		t.Errorf("0.4 kpc parsed to %g kpc", v)
	}

	u, err = ParseQuantity("2.5")
	if err != nil {
		t.Fatal(err)
	}
	if u.Value() != 2.5 {
		t.Errorf("bare number parsed to %v", u)
	}

	for _, bad := range []string{"", "1 2 kpc", "one kpc", "1 parsnips"} {
		if _, err := ParseQuantity(bad); err == nil {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func TestFieldFromConfigDisk(t *testing.T) {
	f, err := FieldFromConfig(diskTestConfig(), nopFactory)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != galmag.DiskFieldName {
		t.Errorf("field name = %s; want %s", f.Name(), galmag.DiskFieldName)
	}
	if got := f.Grid().Resolution; got != [3]int{10, 12, 8} {
		t.Errorf("grid resolution = %v; want [10 12 8]", got)
	}
	if f.Grid().Type != galmag.GridCylindrical {
		t.Errorf("grid type = %v; want cylindrical", f.Grid().Type)
	}
	if got := f.EnsembleSeeds(); len(got) != 3 || got[0] != 11 {
		t.Errorf("ensemble seeds = %v; want [11 12 13]", got)
	}

	// The mode count is inferred from the configured parameters.
	units := f.ParameterUnits()
	if units["mode_2"] != galmag.MicroGauss {
		t.Errorf("mode_2 unit = %v; want microgauss", units["mode_2"])
	}
	if _, ok := units["mode_3"]; ok {
		t.Error("mode_3 should not be declared")
	}
	if units["disk_height"] != galmag.Kpc {
		t.Errorf("disk_height unit = %v; want kpc", units["disk_height"])
	}
}

func TestFieldFromConfigHalo(t *testing.T) {
	cfg := InitializeConfig()
	cfg.Set("variant", "halo")
	cfg.Set("grid.type", "spherical")
	cfg.Set("grid.box", []interface{}{0.0, 15.0, 0.0, 3.14159, 0.0, 6.28318})
	cfg.Set("grid.resolution", []interface{}{8, 8, 8})
	cfg.Set("parameters", map[string]interface{}{
		"halo_radius":                 "15 kpc",
		"halo_rotation_normalization": "220 km/s",
		"halo_turbulent_diffusivity":  "1e26 cm2/s",
		"halo_alpha_effect":           "1 km/s",
	})
	cfg.Set("halo.n_free_decay_modes", 8)
	cfg.Set("halo.symmetric_field", false)

	f, err := FieldFromConfig(cfg, nopFactory)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != galmag.HaloFieldName {
		t.Errorf("field name = %s; want %s", f.Name(), galmag.HaloFieldName)
	}
}

func TestFieldFromConfigErrors(t *testing.T) {
	cfg := diskTestConfig()
	cfg.Set("variant", "corona")
	if _, err := FieldFromConfig(cfg, nopFactory); err == nil {
		t.Error("unknown variant should fail")
	}

	cfg = diskTestConfig()
	cfg.Set("grid.box", []interface{}{0.1, 17.0})
	if _, err := FieldFromConfig(cfg, nopFactory); err == nil {
		t.Error("truncated grid box should fail")
	}

	cfg = diskTestConfig()
	cfg.Set("parameters", map[string]interface{}{"disk_height": "0.4 smoots"})
	if _, err := FieldFromConfig(cfg, nopFactory); err == nil {
		t.Error("unknown unit symbol should fail")
	}

	cfg = diskTestConfig()
	cfg.Set("parameters", map[string]interface{}{
		"disk_height": "0.4 km/s", // wrong dimensions
		"mode_1":      "1 uG",
	})
	if _, err := FieldFromConfig(cfg, nopFactory); err == nil {
		t.Error("wrongly dimensioned skeleton should fail at construction")
	}
}
