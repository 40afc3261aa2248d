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

import "fmt"

// MissingParamError reports a required parameter that is absent from
// the caller's parameter mapping. It is returned before the wrapped
// generator is invoked.
type MissingParamError struct {
	Name string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("galmag: required parameter %s is missing", e.Name)
}

// UnitError reports a parameter value whose physical dimensions do
// not match the unit declared for it.
type UnitError struct {
	Name string
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("galmag: parameter %s: %v", e.Name, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }
