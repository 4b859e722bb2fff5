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

package glproc_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/osd/dynlib"
	"github.com/jetsetilly/osd/glproc"
	"github.com/jetsetilly/osd/test"
)

// a loader with a single library that provides every GL function
type glLoader struct {
	loads   int
	symbols int
}

func (l *glLoader) Load(name string) (dynlib.Handle, bool) {
	if name != "fakegl.so" {
		return 0, false
	}
	l.loads++
	return 1, true
}

func (l *glLoader) Symbol(_ dynlib.Handle, name string) (uintptr, bool) {
	if !strings.HasPrefix(name, "gl") {
		return 0, false
	}
	l.symbols++
	return 0x1000, true
}

func (l *glLoader) Unload(_ dynlib.Handle) {}

// a loader with no libraries
type noLoader struct{}

func (noLoader) Load(_ string) (dynlib.Handle, bool)           { return 0, false }
func (noLoader) Symbol(_ dynlib.Handle, _ string) (uintptr, bool) { return 0, false }
func (noLoader) Unload(_ dynlib.Handle)                          {}

func TestProcAddress(t *testing.T) {
	l := &glLoader{}
	mod := dynlib.OpenWith(l, []string{"missing.so", "fakegl.so"})
	defer mod.Close()

	f := glproc.ProcAddress(mod)
	test.ExpectInequality(t, f("glClear"), nil)
	test.ExpectEquality(t, f("notgl"), nil)

	name, ok := mod.Bound()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, name, "fakegl.so")
}

func TestInit(t *testing.T) {
	l := &glLoader{}
	mod := dynlib.OpenWith(l, []string{"missing.so", "fakegl.so"})
	defer mod.Close()

	test.ExpectSuccess(t, glproc.Init(mod))

	// every function came from the one library
	test.ExpectEquality(t, l.loads, 1)
	test.ExpectInequality(t, l.symbols, 0)
}

func TestInitFailure(t *testing.T) {
	mod := dynlib.OpenWith(noLoader{}, glproc.Candidates())
	test.ExpectFailure(t, glproc.Init(mod))
}

func TestCandidates(t *testing.T) {
	test.ExpectInequality(t, len(glproc.Candidates()), 0)
}
