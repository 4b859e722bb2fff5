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

//go:build cgo

package dynlib

// typedef double (*unary_double)(double);
//
// static double call_unary_double(void *fn, double x) {
//	return ((unary_double)fn)(x);
// }
import "C"

import "unsafe"

// CallFloat64 calls the function at the address as a C function that takes
// and returns a double.
func CallFloat64(fn uintptr, x float64) float64 {
	return float64(C.call_unary_double(unsafe.Pointer(fn), C.double(x)))
}
