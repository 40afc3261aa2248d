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
	"github.com/ctessum/unit"

	"github.com/spatialmodel/galmag/profiles"
)

// HaloFieldName is the registered name of the halo field variant.
const HaloFieldName = "galmag_halo_magnetic_field"

// SphericalProfile is a scalar profile of spherical radius (in units
// of the halo radius) and polar angle (radians).
type SphericalProfile func(r, theta float64) float64

// haloSchema declares the unit-tagged halo parameters. The four
// parameters entering the induction numbers are required.
var haloSchema = ParamSchema{
	{Name: "halo_radius", Scale: Kpc, Required: true},
	{Name: "halo_ref_radius", Scale: Kpc},
	{Name: "halo_ref_z", Scale: Kpc},
	{Name: "halo_ref_Bphi", Scale: MicroGauss},
	{Name: "halo_rotation_characteristic_radius", Scale: Kpc},
	{Name: "halo_rotation_characteristic_height", Scale: Kpc},
	{Name: "halo_rotation_normalization", Scale: KmPerSecond, Required: true},
	{Name: "halo_turbulent_diffusivity", Scale: Cm2PerSecond, Required: true},
	{Name: "halo_alpha_effect", Scale: KmPerSecond, Required: true},
}

// HaloOptions are the generator switches and profile functions of the
// halo variant, fixed at construction.
type HaloOptions struct {
	// SymmetricField selects the symmetric (vs. antisymmetric)
	// solution with respect to the galactic midplane.
	SymmetricField bool
	// RotationFunction is the halo rotation profile V(r, θ).
	RotationFunction SphericalProfile
	// AlphaFunction is the α-effect profile α(r, θ).
	AlphaFunction SphericalProfile
	// NFreeDecayModes is how many free decay modes enter the
	// Galerkin expansion.
	NFreeDecayModes int
	// DynamoType selects the dynamo closure, e.g. "alpha2-omega".
	DynamoType string
	// ComputeOnlyOneQuadrant exploits the solution symmetry to
	// compute a single quadrant.
	ComputeOnlyOneQuadrant bool
	// GrowingModeOnly keeps only growing solutions.
	GrowingModeOnly bool
	// GalerkinNGrid is the resolution of the internal Galerkin
	// discretization grid.
	GalerkinNGrid int
}

// DefaultHaloOptions returns the halo options used when none are
// supplied.
func DefaultHaloOptions() *HaloOptions {
	return &HaloOptions{
		SymmetricField:         true,
		RotationFunction:       profiles.SimpleRotation,
		AlphaFunction:          profiles.SimpleAlpha,
		NFreeDecayModes:        4,
		DynamoType:             "alpha2-omega",
		ComputeOnlyOneQuadrant: true,
		GalerkinNGrid:          501,
	}
}

// NewHaloField constructs a halo-variant field adapter bound to grid,
// wrapping the generator produced by factory. A nil opts selects
// DefaultHaloOptions.
func NewHaloField(grid *Grid, factory GeneratorFactory, cfg FieldConfig, opts *HaloOptions) (*Field, error) {
	if opts == nil {
		opts = DefaultHaloOptions()
	}
	return newField(grid, factory, cfg, variant{
		name:   HaloFieldName,
		schema: haloSchema,
		options: Params{
			"halo_n_free_decay_modes":        opts.NFreeDecayModes,
			"halo_growing_mode_only":         opts.GrowingModeOnly,
			"halo_compute_only_one_quadrant": opts.ComputeOnlyOneQuadrant,
			"halo_Galerkin_ngrid":            opts.GalerkinNGrid,
			"halo_symmetric_field":           opts.SymmetricField,
			"halo_dynamo_type":               opts.DynamoType,
			"halo_rotation_function":         opts.RotationFunction,
			"halo_alpha_function":            opts.AlphaFunction,
		},
		derive: haloDerive,
	})
}

// haloDerive builds the two dimensionless induction numbers of the
// halo variant.
func haloDerive(p Parameters) (Params, error) {
	r := p["halo_radius"]
	V := p["halo_rotation_normalization"]
	alpha := p["halo_alpha_effect"]
	beta := p["halo_turbulent_diffusivity"]

	// R_α = r α / β
	ralpha, err := dimensionless("halo_turbulent_induction",
		unit.Div(unit.Mul(r, alpha), beta))
	if err != nil {
		return nil, err
	}
	// R_ω = −r V / β
	romega, err := dimensionless("halo_rotation_induction",
		unit.Div(unit.Mul(unit.Negate(r), V), beta))
	if err != nil {
		return nil, err
	}

	return Params{
		"halo_turbulent_induction": ralpha,
		"halo_rotation_induction":  romega,
	}, nil
}
