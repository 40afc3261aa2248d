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
	"strconv"
	"strings"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/galmag/profiles"
)

// DiskFieldName is the registered name of the disk field variant.
const DiskFieldName = "galmag_disk_magnetic_field"

// RadialProfile is a scalar profile of galactocentric cylindrical
// radius, in kpc.
type RadialProfile func(rKpc float64) float64

// diskSchema declares the unit-tagged disk parameters. The four
// parameters entering the induction and dynamo numbers are required;
// the rest default inside the wrapped generator.
var diskSchema = ParamSchema{
	{Name: "disk_height", Scale: Kpc, Required: true},
	{Name: "disk_radius", Scale: Kpc},
	{Name: "disk_regularization_radius", Scale: Kpc},
	{Name: "disk_ref_r_cylindrical", Scale: Kpc},
	{Name: "disk_shear_normalization", Scale: InverseSecond, Required: true},
	{Name: "disk_turbulent_diffusivity", Scale: Cm2PerSecond, Required: true},
	{Name: "disk_alpha_effect", Scale: KmPerSecond, Required: true},
}

// DiskOptions are the generator switches and profile functions of the
// disk variant. They are fixed at construction time and merged into
// every generator invocation, overriding parameters of the same name.
type DiskOptions struct {
	// NumberOfModes is how many disk eigenmodes the field comprises.
	// If zero, it is taken from the largest mode_i parameter present
	// in the construction parameter skeleton.
	NumberOfModes int

	// ShearFunction is the shear rate profile S(R).
	ShearFunction RadialProfile
	// RotationFunction is the rotation curve V(R).
	RotationFunction RadialProfile
	// HeightFunction is the scale height profile h(R).
	HeightFunction RadialProfile

	// FieldDecay switches on the decaying far-field envelope.
	FieldDecay bool
	// NewmanBoundaryConditionEnvelope switches the outer boundary
	// condition envelope.
	NewmanBoundaryConditionEnvelope bool
}

// DefaultDiskOptions returns the disk options used when none are
// supplied: Milky Way profiles after Clemens (1985) and an
// exponential scale height, with field decay enabled.
func DefaultDiskOptions() *DiskOptions {
	return &DiskOptions{
		ShearFunction:    profiles.ClemensShearRate,
		RotationFunction: profiles.ClemensRotationCurve,
		HeightFunction:   profiles.ExponentialScaleHeight,
		FieldDecay:       true,
	}
}

// NewDiskField constructs a disk-variant field adapter bound to grid,
// wrapping the generator produced by factory. A nil opts selects
// DefaultDiskOptions.
func NewDiskField(grid *Grid, factory GeneratorFactory, cfg FieldConfig, opts *DiskOptions) (*Field, error) {
	if opts == nil {
		opts = DefaultDiskOptions()
	}
	nModes := opts.NumberOfModes
	if nModes == 0 {
		nModes = maxModeIndex(cfg.Parameters)
		if nModes == 0 {
			return nil, fmt.Errorf("galmag: disk field needs NumberOfModes or at least one mode_i parameter")
		}
	}

	schema := make(ParamSchema, 0, len(diskSchema)+nModes)
	schema = append(schema, diskSchema...)
	for i := 1; i <= nModes; i++ {
		schema = append(schema, ParamSpec{Name: modeName(i), Scale: MicroGauss})
	}

	return newField(grid, factory, cfg, variant{
		name:   DiskFieldName,
		schema: schema,
		options: Params{
			"disk_shear_function":                     opts.ShearFunction,
			"disk_rotation_function":                  opts.RotationFunction,
			"disk_height_function":                    opts.HeightFunction,
			"disk_field_decay":                        opts.FieldDecay,
			"disk_newman_boundary_condition_envelope": opts.NewmanBoundaryConditionEnvelope,
		},
		derive: diskDerive(nModes),
	})
}

// diskDerive builds the per-call derived entries of the disk variant:
// the mode normalization array and the dimensionless induction and
// dynamo numbers.
func diskDerive(nModes int) func(Parameters) (Params, error) {
	return func(p Parameters) (Params, error) {
		// Normalization of each eigenmode, in microgauss; modes the
		// caller does not supply are zero.
		modes := make([]float64, nModes)
		for i := range modes {
			u, ok := p[modeName(i+1)]
			if !ok || u == nil {
				continue
			}
			v, err := MicroGauss.ValueIn(u)
			if err != nil {
				return nil, &UnitError{Name: modeName(i + 1), Err: err}
			}
			modes[i] = v
		}

		h := p["disk_height"]
		S := p["disk_shear_normalization"]
		alpha := p["disk_alpha_effect"]
		beta := p["disk_turbulent_diffusivity"]

		// R_α = h α / β
		ralpha, err := dimensionless("disk_turbulent_induction",
			unit.Div(unit.Mul(h, alpha), beta))
		if err != nil {
			return nil, err
		}
		// R_ω = h² S / β; the local dynamo number is D = R_α R_ω.
		romega, err := dimensionless("disk_dynamo_number",
			unit.Div(unit.Mul(h, h, S), beta))
		if err != nil {
			return nil, err
		}

		return Params{
			"disk_modes_normalization": modes,
			"disk_turbulent_induction": ralpha,
			"disk_dynamo_number":       ralpha * romega,
		}, nil
	}
}

func modeName(i int) string { return fmt.Sprintf("mode_%d", i) }

// maxModeIndex returns the largest i for which a mode_i parameter is
// present, or zero if there are none.
func maxModeIndex(p Parameters) int {
	max := 0
	for name := range p {
		s, ok := strings.CutPrefix(name, "mode_")
		if !ok {
			continue
		}
		i, err := strconv.Atoi(s)
		if err != nil || i < 1 {
			continue
		}
		if i > max {
			max = i
		}
	}
	return max
}
