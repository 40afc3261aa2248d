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

// Package galmag adapts the GalMag analytic galactic magnetic field
// generators to the field interface of a Bayesian inference
// framework. It translates a caller's grid into the generator's box,
// resolution and coordinate-system arguments, converts dimensioned
// parameters to the generator's canonical units, derives the
// dimensionless induction and dynamo numbers the generator expects,
// and reshapes the generator output into a unit-tagged
// (nx, ny, nz, 3) array. The field solver itself lives behind the
// Generator interface and is not part of this package.
package galmag

import (
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// FieldConfig holds the framework-level construction arguments shared
// by the disk and halo variants.
type FieldConfig struct {
	// Parameters is the parameter skeleton the field will be
	// evaluated with. Its unit dimensions are validated at
	// construction. It is also the default mapping used by
	// ComputeField when no per-call mapping is given.
	Parameters Parameters

	// EnsembleSize and EnsembleSeeds are framework bookkeeping for
	// generating multiple realizations. The field itself is
	// deterministic and does not consume them.
	EnsembleSize  int
	EnsembleSeeds []int64

	// Dependencies maps the names of other fields this field depends
	// on. Passed through for the calling framework; unused here.
	Dependencies map[string]interface{}

	// KeepField enables caching of the native generator output, so
	// that repeated evaluations at fixed physical parameters do not
	// recompute the field. Once the cache is populated it wins over
	// any later parameter change until ClearCache is called.
	KeepField bool
}

// A variant is a field configuration profile: the disk and halo
// fields share all adapter behavior and differ only in these values.
type variant struct {
	name    string
	schema  ParamSchema
	options Params
	derive  func(p Parameters) (Params, error)
}

// A Field translates a grid plus a parameter mapping into a sampled
// magnetic field by delegating to a wrapped generator. Construct one
// with NewDiskField or NewHaloField. A Field is bound to its grid; if
// the grid changes, construct a new Field.
//
// A Field is not safe for concurrent use: the keep-field cache write
// is unsynchronized. Use one Field per goroutine or synchronize
// externally.
type Field struct {
	grid         *Grid
	gen          Generator
	v            variant
	skeleton     Parameters
	ensembleSize int
	seeds        []int64
	dependencies map[string]interface{}
	keepField    bool
	cache        fieldCache
}

// newField builds the variant-independent part of a field adapter:
// it converts the grid box to kiloparsecs, binds the wrapped
// generator to the grid geometry (exactly once), and validates the
// parameter skeleton against the variant schema.
func newField(grid *Grid, factory GeneratorFactory, cfg FieldConfig, v variant) (*Field, error) {
	box, err := grid.BoxKpc()
	if err != nil {
		return nil, err
	}
	gen, err := factory(box, grid.Resolution, grid.Type)
	if err != nil {
		return nil, err
	}
	if err := v.schema.Validate(cfg.Parameters); err != nil {
		return nil, err
	}
	return &Field{
		grid:         grid,
		gen:          gen,
		v:            v,
		skeleton:     cfg.Parameters,
		ensembleSize: cfg.EnsembleSize,
		seeds:        cfg.EnsembleSeeds,
		dependencies: cfg.Dependencies,
		keepField:    cfg.KeepField,
	}, nil
}

// Name returns the field's registered name.
func (f *Field) Name() string { return f.v.name }

// Grid returns the grid the field is bound to.
func (f *Field) Grid() *Grid { return f.grid }

// ParameterNames returns the names of the parameters this field
// consumes, for framework-side validation or sampling.
func (f *Field) ParameterNames() []string { return f.v.schema.Names() }

// ParameterUnits returns the canonical unit of each unit-tagged
// parameter.
func (f *Field) ParameterUnits() map[string]*UnitScale { return f.v.schema.Units() }

// EnsembleSize returns the configured number of ensemble realizations.
func (f *Field) EnsembleSize() int { return f.ensembleSize }

// EnsembleSeeds returns the configured ensemble seeds.
func (f *Field) EnsembleSeeds() []int64 { return f.seeds }

// Dependencies returns the framework dependency mapping.
func (f *Field) Dependencies() map[string]interface{} { return f.dependencies }

// Cached reports whether a kept generator output is present.
func (f *Field) Cached() bool {
	_, ok := f.cache.get()
	return ok
}

// ClearCache discards the kept generator output so that the next
// computation reaches the wrapped generator again.
func (f *Field) ClearCache() { f.cache.clear() }

// ComputeField evaluates the field on the grid. The seed is accepted
// for interface compatibility but unused: this field type is
// deterministic. If params is nil, the skeleton supplied at
// construction is used. The caller's mapping is never modified;
// converted, derived and option entries exist only in a per-call
// merged mapping.
//
// If field keeping is enabled and a previous call already computed
// the field, the kept output is reused and params is ignored
// entirely.
func (f *Field) ComputeField(seed int64, params Parameters) (*FieldData, error) {
	b, ok := f.cache.get()
	if !ok {
		if params == nil {
			params = f.skeleton
		}
		var err error
		b, err = f.generate(params)
		if err != nil {
			return nil, err
		}
		if f.keepField {
			f.cache.put(b)
		}
	}
	return f.assemble(b)
}

// generate runs one full parameter translation and generator
// invocation.
func (f *Field) generate(params Parameters) (*BField, error) {
	if err := f.v.schema.CheckRequired(params); err != nil {
		return nil, err
	}
	merged, err := f.v.schema.Convert(params)
	if err != nil {
		return nil, err
	}
	if f.v.derive != nil {
		derived, err := f.v.derive(params)
		if err != nil {
			return nil, err
		}
		for name, v := range derived {
			merged[name] = v
		}
	}
	// Options always win on name collision.
	for name, v := range f.v.options {
		merged[name] = v
	}
	return f.gen.BField(merged)
}

// assemble copies the three native field components into a fresh
// (nx, ny, nz, 3) array tagged in microgauss. Component order in the
// trailing axis is fixed: x, y, z.
func (f *Field) assemble(b *BField) (*FieldData, error) {
	if err := b.checkShape(f.grid.Resolution); err != nil {
		return nil, err
	}
	r := f.grid.Resolution
	out := sparse.ZerosDense(r[0], r[1], r[2], 3)
	for i, comp := range []*sparse.DenseArray{b.X, b.Y, b.Z} {
		for j, v := range comp.Elements {
			out.Elements[j*3+i] = v
		}
	}
	return &FieldData{Data: out, Units: MicroGauss}, nil
}

// FieldData is a sampled magnetic field: a (nx, ny, nz, 3) array
// whose values are expressed in Units.
type FieldData struct {
	Data  *sparse.DenseArray
	Units *UnitScale
}

// In returns a copy of the field values rescaled to the given unit,
// which must have magnetic field dimensions.
func (d *FieldData) In(s *UnitScale) (*sparse.DenseArray, error) {
	if !d.Units.Dims.Matches(s.Dims) {
		return nil, &UnitError{
			Name: "field data",
			Err:  d.Units.New(0).Check(s.Dims),
		}
	}
	out := d.Data.Copy()
	floats.Scale(d.Units.Factor/s.Factor, out.Elements)
	return out, nil
}
