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

// Package galmagutil builds field adapters from configuration files.
package galmagutil

import (
	"fmt"
	"strings"

	"github.com/ctessum/unit"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/spatialmodel/galmag"
)

// InitializeConfig returns a configuration holder with the defaults
// for an adapter filled in. Callers typically point it at a
// configuration file with SetConfigFile before reading it.
func InitializeConfig() *viper.Viper {
	cfg := viper.New()
	cfg.SetDefault("variant", "disk")
	cfg.SetDefault("keep_field", false)
	cfg.SetDefault("grid.type", "cartesian")
	cfg.SetDefault("grid.box_unit", "kpc")
	cfg.SetDefault("ensemble.size", 1)
	return cfg
}

// ParseQuantity converts a configuration value like "0.4 kpc" or
// "1e26 cm2/s" into a dimensioned quantity. A bare number is
// dimensionless.
func ParseQuantity(s string) (*unit.Unit, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		v, err := cast.ToFloat64E(fields[0])
		if err != nil {
			return nil, fmt.Errorf("galmagutil: parsing quantity %q: %v", s, err)
		}
		return galmag.Dimensionless(v), nil
	case 2:
		v, err := cast.ToFloat64E(fields[0])
		if err != nil {
			return nil, fmt.Errorf("galmagutil: parsing quantity %q: %v", s, err)
		}
		scale, err := galmag.ScaleForSymbol(fields[1])
		if err != nil {
			return nil, err
		}
		return scale.New(v), nil
	default:
		return nil, fmt.Errorf("galmagutil: quantity %q should be `value` or `value unit`", s)
	}
}

// ParametersFromConfig reads the `parameters` table into a parameter
// mapping.
func ParametersFromConfig(cfg *viper.Viper) (galmag.Parameters, error) {
	raw, err := cast.ToStringMapStringE(cfg.Get("parameters"))
	if err != nil {
		return nil, fmt.Errorf("galmagutil: reading parameters: %v", err)
	}
	params := make(galmag.Parameters, len(raw))
	for name, s := range raw {
		u, err := ParseQuantity(s)
		if err != nil {
			return nil, fmt.Errorf("galmagutil: parameter %s: %v", name, err)
		}
		params[name] = u
	}
	return params, nil
}

// GridFromConfig reads the `grid` table: the coordinate-system type,
// the box extents (six numbers, {min, max} per axis, in `box_unit`),
// and the per-axis resolution.
func GridFromConfig(cfg *viper.Viper) (*galmag.Grid, error) {
	gridType, err := galmag.ParseGridType(cfg.GetString("grid.type"))
	if err != nil {
		return nil, err
	}
	scale, err := galmag.ScaleForSymbol(cfg.GetString("grid.box_unit"))
	if err != nil {
		return nil, err
	}
	rawBox, err := cast.ToSliceE(cfg.Get("grid.box"))
	if err != nil || len(rawBox) != 6 {
		return nil, fmt.Errorf("galmagutil: grid.box should hold 6 values ({min, max} per axis)")
	}
	var box [3][2]*unit.Unit
	for i := range box {
		for j := range box[i] {
			v, err := cast.ToFloat64E(rawBox[i*2+j])
			if err != nil {
				return nil, fmt.Errorf("galmagutil: grid.box[%d]: %v", i*2+j, err)
			}
			box[i][j] = scale.New(v)
		}
	}
	resolution, err := cast.ToIntSliceE(cfg.Get("grid.resolution"))
	if err != nil || len(resolution) != 3 {
		return nil, fmt.Errorf("galmagutil: grid.resolution should hold 3 integers")
	}
	return galmag.NewGrid(box, [3]int{resolution[0], resolution[1], resolution[2]}, gridType)
}

// FieldFromConfig builds a field adapter from a configuration,
// binding it to the generator produced by factory.
func FieldFromConfig(cfg *viper.Viper, factory galmag.GeneratorFactory) (*galmag.Field, error) {
	grid, err := GridFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	params, err := ParametersFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	seeds, err := seedsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	fieldCfg := galmag.FieldConfig{
		Parameters:    params,
		EnsembleSize:  cfg.GetInt("ensemble.size"),
		EnsembleSeeds: seeds,
		KeepField:     cfg.GetBool("keep_field"),
	}

	switch variant := cfg.GetString("variant"); variant {
	case "disk":
		opts := galmag.DefaultDiskOptions()
		opts.NumberOfModes = cfg.GetInt("disk.number_of_modes")
		if cfg.IsSet("disk.field_decay") {
			opts.FieldDecay = cfg.GetBool("disk.field_decay")
		}
		if cfg.IsSet("disk.newman_boundary_condition_envelope") {
			opts.NewmanBoundaryConditionEnvelope = cfg.GetBool("disk.newman_boundary_condition_envelope")
		}
		return galmag.NewDiskField(grid, factory, fieldCfg, opts)
	case "halo":
		opts := galmag.DefaultHaloOptions()
		if cfg.IsSet("halo.symmetric_field") {
			opts.SymmetricField = cfg.GetBool("halo.symmetric_field")
		}
		if cfg.IsSet("halo.n_free_decay_modes") {
			opts.NFreeDecayModes = cfg.GetInt("halo.n_free_decay_modes")
		}
		if cfg.IsSet("halo.dynamo_type") {
			opts.DynamoType = cfg.GetString("halo.dynamo_type")
		}
		if cfg.IsSet("halo.compute_only_one_quadrant") {
			opts.ComputeOnlyOneQuadrant = cfg.GetBool("halo.compute_only_one_quadrant")
		}
		if cfg.IsSet("halo.growing_mode_only") {
			opts.GrowingModeOnly = cfg.GetBool("halo.growing_mode_only")
		}
		if cfg.IsSet("halo.galerkin_ngrid") {
			opts.GalerkinNGrid = cfg.GetInt("halo.galerkin_ngrid")
		}
		return galmag.NewHaloField(grid, factory, fieldCfg, opts)
	default:
		return nil, fmt.Errorf("galmagutil: unknown field variant %q", variant)
	}
}

func seedsFromConfig(cfg *viper.Viper) ([]int64, error) {
	if !cfg.IsSet("ensemble.seeds") {
		return nil, nil
	}
	ints, err := cast.ToIntSliceE(cfg.Get("ensemble.seeds"))
	if err != nil {
		return nil, fmt.Errorf("galmagutil: reading ensemble.seeds: %v", err)
	}
	seeds := make([]int64, len(ints))
	for i, s := range ints {
		seeds[i] = int64(s)
	}
	return seeds, nil
}
