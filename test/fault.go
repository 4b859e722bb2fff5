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

package test

import (
	"runtime/debug"
	"testing"
)

// Fault runs the function with faulting memory accesses turned into
// recoverable panics. It returns the faulting address and true if a fault
// occurred. Panics that are not memory faults are passed on.
//
// Only accesses made by Go code are caught. A fault inside a C function will
// still crash the program.
func Fault(f func()) (addr uintptr, faulted bool) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(interface{ Addr() uintptr }); ok {
			addr = e.Addr()
			faulted = true
			return
		}
		panic(r)
	}()
	f()
	return 0, false
}

// ExpectFault tests that the function causes a memory fault
func ExpectFault(t *testing.T, f func(), tags ...any) bool {
	t.Helper()
	if _, faulted := Fault(f); !faulted {
		t.Errorf("%sa memory fault was expected", id(tags...))
		return false
	}
	return true
}

// ExpectNoFault tests that the function runs without a memory fault
func ExpectNoFault(t *testing.T, f func(), tags ...any) bool {
	t.Helper()
	if addr, faulted := Fault(f); faulted {
		t.Errorf("%sunexpected memory fault at %#x", id(tags...), addr)
		return false
	}
	return true
}
