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

	"github.com/ctessum/unit"
)

// GridType is the coordinate system a grid is expressed in.
type GridType int

const (
	// GridCartesian is a cartesian (x, y, z) grid.
	GridCartesian GridType = iota
	// GridCylindrical is a cylindrical (r, φ, z) grid.
	GridCylindrical
	// GridSpherical is a spherical (r, θ, φ) grid.
	GridSpherical
)

func (t GridType) String() string {
	switch t {
	case GridCartesian:
		return "cartesian"
	case GridCylindrical:
		return "cylindrical"
	case GridSpherical:
		return "spherical"
	default:
		return fmt.Sprintf("GridType(%d)", int(t))
	}
}

// ParseGridType converts a coordinate-system name to a GridType.
func ParseGridType(s string) (GridType, error) {
	switch s {
	case "cartesian":
		return GridCartesian, nil
	case "cylindrical":
		return GridCylindrical, nil
	case "spherical":
		return GridSpherical, nil
	default:
		return 0, fmt.Errorf("galmag: unknown grid type %q", s)
	}
}

// A Grid describes where a field is to be sampled: the spatial
// extent of the box along each axis, the number of samples along
// each axis, and the coordinate system the axes are expressed in.
// Grids are owned by the caller and are read-only to this package.
type Grid struct {
	// Box holds the {min, max} extent of each of the three axes.
	// Extents may be supplied in any length unit.
	Box [3][2]*unit.Unit

	// Resolution is the number of samples along each axis.
	Resolution [3]int

	// Type is the coordinate system of the axes.
	Type GridType
}

// NewGrid creates a grid after checking that the box extents are
// length-dimensioned and the resolution is positive.
func NewGrid(box [3][2]*unit.Unit, resolution [3]int, gridType GridType) (*Grid, error) {
	g := &Grid{Box: box, Resolution: resolution, Type: gridType}
	if _, err := g.BoxKpc(); err != nil {
		return nil, err
	}
	for i, n := range resolution {
		if n < 1 {
			return nil, fmt.Errorf("galmag: grid resolution[%d] = %d; must be positive", i, n)
		}
	}
	return g, nil
}

// BoxKpc returns the box extents converted to kiloparsecs, the
// length unit the wrapped generator works in.
func (g *Grid) BoxKpc() ([3][2]float64, error) {
	var box [3][2]float64
	for i := range g.Box {
		for j, u := range g.Box[i] {
			if u == nil {
				return box, fmt.Errorf("galmag: grid box[%d][%d] is nil", i, j)
			}
			v, err := Kpc.ValueIn(u)
			if err != nil {
				return box, fmt.Errorf("galmag: grid box[%d][%d]: %v", i, j, err)
			}
			box[i][j] = v
		}
	}
	return box, nil
}
