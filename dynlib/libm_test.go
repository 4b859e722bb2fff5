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

package dynlib_test

import (
	"runtime"
	"testing"

	"github.com/jetsetilly/osd/dynlib"
	"github.com/jetsetilly/osd/test"
)

// libraries that export the C maths functions
func mathsLibraries() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"ucrtbase.dll", "msvcrt.dll"}
	case "darwin":
		return []string{"libm.dylib", "/usr/lib/libSystem.B.dylib"}
	}
	return []string{"libm.so.6", "libm.so"}
}

func TestLibmCos(t *testing.T) {
	mod := dynlib.OpenWith(dynlib.SDLLoader{}, append([]string{"nonexistent.so"}, mathsLibraries()...))
	defer mod.Close()

	cos, ok := mod.Symbol("cos")
	test.DemandSuccess(t, ok)
	test.ExpectInequality(t, cos, 0)
	test.ExpectEquality(t, dynlib.CallFloat64(cos, 0.0), 1.0)

	// the second symbol comes from the same library
	sqrt, ok := mod.Symbol("sqrt")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, dynlib.CallFloat64(sqrt, 16.0), 4.0)

	name, ok := mod.Bound()
	test.ExpectSuccess(t, ok)
	test.ExpectInequality(t, name, "nonexistent.so")
}
