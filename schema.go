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
)

// Parameters maps parameter names to dimensioned (or dimensionless)
// scalar values. It is supplied by the caller and is never mutated by
// this package.
type Parameters map[string]*unit.Unit

// A ParamSpec declares one parameter a field variant accepts: its
// name, the canonical unit it is converted to before being handed to
// the wrapped generator (nil means the value is passed through
// unconverted), and whether it must be present at computation time.
type ParamSpec struct {
	Name     string
	Scale    *UnitScale
	Required bool
}

// A ParamSchema is the declared, fixed list of parameters a field
// variant consumes. Parameters outside the schema are passed to the
// wrapped generator without unit conversion.
type ParamSchema []ParamSpec

// Names returns the declared parameter names, in schema order.
func (s ParamSchema) Names() []string {
	names := make([]string, len(s))
	for i, spec := range s {
		names[i] = spec.Name
	}
	return names
}

// Units returns the canonical unit for each unit-tagged parameter.
func (s ParamSchema) Units() map[string]*UnitScale {
	units := make(map[string]*UnitScale)
	for _, spec := range s {
		if spec.Scale != nil {
			units[spec.Name] = spec.Scale
		}
	}
	return units
}

func (s ParamSchema) spec(name string) (ParamSpec, bool) {
	for _, spec := range s {
		if spec.Name == name {
			return spec, true
		}
	}
	return ParamSpec{}, false
}

// Validate checks the dimensions of every schema parameter present
// in p against its declared unit. It is called at construction so
// that a skeleton with wrongly-dimensioned values fails early rather
// than at the first field computation.
func (s ParamSchema) Validate(p Parameters) error {
	for _, spec := range s {
		if spec.Scale == nil {
			continue
		}
		u, ok := p[spec.Name]
		if !ok || u == nil {
			continue
		}
		if err := u.Check(spec.Scale.Dims); err != nil {
			return &UnitError{Name: spec.Name, Err: err}
		}
	}
	return nil
}

// CheckRequired reports the first required schema parameter absent
// from p. It runs on every computation, before the wrapped generator
// is invoked.
func (s ParamSchema) CheckRequired(p Parameters) error {
	for _, spec := range s {
		if !spec.Required {
			continue
		}
		if u, ok := p[spec.Name]; !ok || u == nil {
			return &MissingParamError{Name: spec.Name}
		}
	}
	return nil
}

// Convert produces the generator-facing mapping for one computation:
// unit-tagged parameters are converted to their canonical unit and
// reduced to bare numbers, everything else passes through unchanged.
// The caller's mapping p is left untouched.
func (s ParamSchema) Convert(p Parameters) (Params, error) {
	out := make(Params, len(p))
	for name, u := range p {
		spec, ok := s.spec(name)
		if ok && spec.Scale != nil {
			v, err := spec.Scale.ValueIn(u)
			if err != nil {
				return nil, &UnitError{Name: name, Err: err}
			}
			out[name] = v
		} else {
			out[name] = u
		}
	}
	return out, nil
}
