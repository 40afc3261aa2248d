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

// Package ensemble evaluates a field adapter over an ensemble of
// seeds, memoizing realizations so that repeated queries and
// deterministic fields do not trigger recomputation.
package ensemble

import (
	"context"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/galmag"
)

func init() {
	gob.Register(&galmag.FieldData{})
}

// An Evaluator computes field realizations for an ensemble of seeds.
// Results are cached in memory and optionally on disk, keyed by field
// name and seed; for the deterministic GalMag fields all seeds map to
// the same values and the cache collapses the ensemble to a single
// generator invocation.
type Evaluator struct {
	// Field is the field adapter to evaluate.
	Field *galmag.Field

	// Seeds are the ensemble seeds. If empty, the seeds configured on
	// the field are used; failing that, sequential seeds are created
	// for the field's ensemble size.
	Seeds []int64

	// CacheSize is the number of realizations kept in memory.
	// If zero, all realizations are kept.
	CacheSize int

	// CacheDir, if nonempty, is a directory realizations are also
	// cached in, gob-encoded, surviving process restarts.
	CacheDir string

	// Log receives progress information. If nil, the logrus standard
	// logger is used.
	Log logrus.FieldLogger

	initOnce sync.Once
	cache    *requestcache.Cache
}

func (e *Evaluator) init() {
	if e.Log == nil {
		e.Log = logrus.StandardLogger()
	}
	if len(e.Seeds) == 0 {
		e.Seeds = e.Field.EnsembleSeeds()
	}
	if len(e.Seeds) == 0 {
		n := e.Field.EnsembleSize()
		if n < 1 {
			n = 1
		}
		e.Seeds = make([]int64, n)
		for i := range e.Seeds {
			e.Seeds[i] = int64(i)
		}
	}
	size := e.CacheSize
	if size == 0 {
		size = len(e.Seeds)
	}
	cacheFuncs := []requestcache.CacheFunc{
		requestcache.Deduplicate(), requestcache.Memory(size)}
	if e.CacheDir != "" {
		cacheFuncs = append(cacheFuncs,
			requestcache.Disk(e.CacheDir, requestcache.MarshalGob, unmarshalFieldData))
	}
	// A single processor: the wrapped field adapter is not safe for
	// concurrent use.
	e.cache = requestcache.NewCache(e.compute, 1, cacheFuncs...)
}

func (e *Evaluator) compute(ctx context.Context, request interface{}) (interface{}, error) {
	seed := request.(int64)
	e.Log.WithFields(logrus.Fields{
		"field": e.Field.Name(),
		"seed":  seed,
	}).Info("computing field realization")
	return e.Field.ComputeField(seed, nil)
}

// Realization returns ensemble member i.
func (e *Evaluator) Realization(ctx context.Context, i int) (*galmag.FieldData, error) {
	e.initOnce.Do(e.init)
	if i < 0 || i >= len(e.Seeds) {
		return nil, fmt.Errorf("ensemble: realization %d out of range [0, %d)", i, len(e.Seeds))
	}
	seed := e.Seeds[i]
	req := e.cache.NewRequest(ctx, seed, fmt.Sprintf("%s_%d", e.Field.Name(), seed))
	result, err := req.Result()
	if err != nil {
		return nil, err
	}
	return result.(*galmag.FieldData), nil
}

// All returns every ensemble member, in seed order.
func (e *Evaluator) All(ctx context.Context) ([]*galmag.FieldData, error) {
	e.initOnce.Do(e.init)
	out := make([]*galmag.FieldData, len(e.Seeds))
	for i := range e.Seeds {
		d, err := e.Realization(ctx, i)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// unmarshalFieldData gob-decodes a cached realization and repairs the
// unexported array bookkeeping lost in encoding.
func unmarshalFieldData(b []byte) (interface{}, error) {
	data, err := requestcache.UnmarshalGob(b)
	if err != nil {
		return nil, err
	}
	if d, ok := data.(*galmag.FieldData); ok && d.Data != nil {
		d.Data.Fix()
	}
	return data, nil
}
