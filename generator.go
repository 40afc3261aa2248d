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

	"github.com/ctessum/sparse"
)

// Params is the merged parameter/option mapping handed to a wrapped
// field generator. Values are bare float64 numbers in the generator's
// canonical units for unit-tagged parameters, []float64 for the disk
// mode normalization, and opaque switches or profile functions for
// generator options.
type Params map[string]interface{}

// A BField is the native result of a wrapped field generator: the
// three orthogonal vector components of the field, each sampled on
// the generator's grid, in microgauss.
type BField struct {
	X, Y, Z *sparse.DenseArray
}

// checkShape returns an error if any component is missing or is not
// shaped (nx, ny, nz).
func (b *BField) checkShape(resolution [3]int) error {
	for i, c := range []*sparse.DenseArray{b.X, b.Y, b.Z} {
		if c == nil {
			return fmt.Errorf("galmag: generator returned nil component %d", i)
		}
		if len(c.Shape) != 3 || c.Shape[0] != resolution[0] ||
			c.Shape[1] != resolution[1] || c.Shape[2] != resolution[2] {
			return fmt.Errorf("galmag: generator component %d has shape %v; expected %v",
				i, c.Shape, resolution)
		}
	}
	return nil
}

// A Generator computes a magnetic field from a merged parameter
// mapping. Implementations wrap the external field solver; this
// package never performs the field computation itself. Any error a
// generator returns is propagated to the caller unchanged.
type Generator interface {
	BField(params Params) (*BField, error)
}

// A GeneratorFactory binds a wrapped generator to grid geometry. It
// is invoked exactly once per Field, at construction; the resulting
// generator is immutable for the Field's lifetime.
type GeneratorFactory func(box [3][2]float64, resolution [3]int, gridType GridType) (Generator, error)
