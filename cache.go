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

type cacheState int

const (
	uncached cacheState = iota
	cached
)

// fieldCache holds the native generator output between computations
// when field keeping is enabled. Once populated it is returned for
// every subsequent computation regardless of parameter changes;
// recomputation requires clearing it first.
type fieldCache struct {
	state cacheState
	field *BField
}

func (c *fieldCache) get() (*BField, bool) {
	if c.state == cached {
		return c.field, true
	}
	return nil, false
}

func (c *fieldCache) put(b *BField) {
	c.state = cached
	c.field = b
}

func (c *fieldCache) clear() {
	c.state = uncached
	c.field = nil
}
