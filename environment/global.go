// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package environment

import "io"

// the process-wide store
var global = NewStore()

// Getenv returns the value of the named variable in the process-wide store.
func Getenv(name string) (string, bool) {
	return global.Get(name)
}

// Setenv sets the named variable in the process-wide store. See Store.Set()
// for the meaning of the overwrite flag.
func Setenv(name string, value string, overwrite bool) bool {
	return global.Set(name, value, overwrite)
}

// Environ returns the "name=value" blocks of the process-wide store.
func Environ() []string {
	return global.Block()
}

// Visualise writes a graphviz description of the process-wide store.
func Visualise(w io.Writer) {
	global.Visualise(w)
}
