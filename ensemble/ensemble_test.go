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

package ensemble

import (
	"context"
	"reflect"
	"testing"

	"github.com/ctessum/sparse"
	"github.com/ctessum/unit"

	"github.com/spatialmodel/galmag"
)

// countingGenerator returns a constant field and counts invocations.
type countingGenerator struct {
	resolution [3]int
	calls      int
}

func (g *countingGenerator) BField(p galmag.Params) (*galmag.BField, error) {
	g.calls++
	constant := func(v float64) *sparse.DenseArray {
		a := sparse.ZerosDense(g.resolution[0], g.resolution[1], g.resolution[2])
		for i := range a.Elements {
			a.Elements[i] = v
		}
		return a
	}
	return &galmag.BField{X: constant(1), Y: constant(2), Z: constant(3)}, nil
}

func (g *countingGenerator) factory() galmag.GeneratorFactory {
	return func(box [3][2]float64, resolution [3]int, gridType galmag.GridType) (galmag.Generator, error) {
		g.resolution = resolution
		return g, nil
	}
}

func evaluatorTestField(t *testing.T, gen *countingGenerator, seeds []int64) *galmag.Field {
	t.Helper()
	box := [3][2]*unit.Unit{
		{galmag.Kiloparsec(-10), galmag.Kiloparsec(10)},
		{galmag.Kiloparsec(-10), galmag.Kiloparsec(10)},
		{galmag.Kiloparsec(-1), galmag.Kiloparsec(1)},
	}
	grid, err := galmag.NewGrid(box, [3]int{2, 2, 2}, galmag.GridCartesian)
	if err != nil {
		t.Fatal(err)
	}
	params := galmag.Parameters{
		"disk_height":                galmag.Kiloparsec(0.4),
		"disk_shear_normalization":   galmag.PerSecond(-8.e-16),
		"disk_turbulent_diffusivity": galmag.Centimeter2PerSecond(1.e26),
		"disk_alpha_effect":          galmag.KilometerPerSecond(1),
		"mode_1":                     galmag.Microgauss(1),
	}
	f, err := galmag.NewDiskField(grid, gen.factory(), galmag.FieldConfig{
		Parameters:    params,
		EnsembleSize:  len(seeds),
		EnsembleSeeds: seeds,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestEvaluatorMemoizesIdenticalSeeds(t *testing.T) {
	gen := new(countingGenerator)
	e := &Evaluator{Field: evaluatorTestField(t, gen, []int64{7, 7, 7, 7})}

	all, err := e.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d realizations; want 4", len(all))
	}
	if gen.calls != 1 {
		t.Errorf("generator invoked %d times for identical seeds; want 1", gen.calls)
	}
	for i, d := range all[1:] {
		if !reflect.DeepEqual(all[0].Data.Elements, d.Data.Elements) {
			t.Errorf("realization %d differs from realization 0", i+1)
		}
	}
}

func TestEvaluatorRepeatedQueries(t *testing.T) {
	gen := new(countingGenerator)
	e := &Evaluator{Field: evaluatorTestField(t, gen, []int64{1, 2})}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := e.Realization(ctx, 0); err != nil {
			t.Fatal(err)
		}
	}
	// Distinct seed keys compute once each; repeats come from the
	// memory cache.
	if _, err := e.Realization(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if gen.calls != 2 {
		t.Errorf("generator invoked %d times; want 2", gen.calls)
	}

	if _, err := e.Realization(ctx, 5); err == nil {
		t.Error("out-of-range realization should fail")
	}
}

func TestEvaluatorDefaultSeeds(t *testing.T) {
	gen := new(countingGenerator)
	f := evaluatorTestField(t, gen, nil)
	e := &Evaluator{Field: f}
	all, err := e.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// No seeds and zero ensemble size collapse to one realization.
	if len(all) != 1 {
		t.Errorf("got %d realizations; want 1", len(all))
	}
}

func TestEvaluatorDiskCache(t *testing.T) {
	dir := t.TempDir()
	seeds := []int64{3}

	gen1 := new(countingGenerator)
	e1 := &Evaluator{Field: evaluatorTestField(t, gen1, seeds), CacheDir: dir}
	first, err := e1.Realization(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if gen1.calls != 1 {
		t.Fatalf("generator invoked %d times; want 1", gen1.calls)
	}

	// A fresh evaluator over the same cache directory reads the
	// realization back instead of recomputing it.
	gen2 := new(countingGenerator)
	e2 := &Evaluator{Field: evaluatorTestField(t, gen2, seeds), CacheDir: dir}
	second, err := e2.Realization(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if gen2.calls != 0 {
		t.Errorf("generator invoked %d times with a warm disk cache; want 0", gen2.calls)
	}
	if !reflect.DeepEqual(first.Data.Shape, second.Data.Shape) ||
		!reflect.DeepEqual(first.Data.Elements, second.Data.Elements) {
		t.Error("disk cache round trip altered the field data")
	}
	if second.Units == nil || second.Units.Symbol != first.Units.Symbol {
		t.Error("disk cache round trip lost the unit tag")
	}
	// The decoded array supports indexed access again.
	if v := second.Data.Get(0, 0, 0, 0); v != 1 {
		t.Errorf("decoded field value = %g; want 1", v)
	}
}
