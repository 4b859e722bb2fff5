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

package dynlib_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/osd/dynlib"
	"github.com/jetsetilly/osd/test"
)

// fakeLoader loads libraries from a table of library names and the symbols
// they export
type fakeLoader struct {
	crit    sync.Mutex
	libs    map[string]map[string]uintptr
	handles map[dynlib.Handle]string
	next    dynlib.Handle

	loads   int
	unloads int
}

func newFakeLoader(libs map[string]map[string]uintptr) *fakeLoader {
	return &fakeLoader{
		libs:    libs,
		handles: make(map[dynlib.Handle]string),
		next:    0x100,
	}
}

func (l *fakeLoader) Load(name string) (dynlib.Handle, bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	if _, ok := l.libs[name]; !ok {
		return 0, false
	}
	l.next++
	l.handles[l.next] = name
	l.loads++
	return l.next, true
}

func (l *fakeLoader) Symbol(h dynlib.Handle, name string) (uintptr, bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	lib, ok := l.handles[h]
	if !ok {
		return 0, false
	}
	addr, ok := l.libs[lib][name]
	return addr, ok
}

func (l *fakeLoader) Unload(h dynlib.Handle) {
	l.crit.Lock()
	defer l.crit.Unlock()
	delete(l.handles, h)
	l.unloads++
}

func (l *fakeLoader) open() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return len(l.handles)
}

var fakeLibs = map[string]map[string]uintptr{
	"real.lib": {
		"sym": 0x1000,
	},
	"real_a.lib": {
		"sym":    0x2000,
		"only_a": 0x2010,
	},
	"real_b.lib": {
		"sym":    0x3000,
		"only_b": 0x3010,
	},
}

func TestSkipUnloadable(t *testing.T) {
	l := newFakeLoader(fakeLibs)
	mod := dynlib.OpenWith(l, []string{"nonexistent.lib", "real.lib"})

	_, ok := mod.Bound()
	test.ExpectFailure(t, ok)

	addr, ok := mod.Symbol("sym")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uintptr(0x1000))

	name, ok := mod.Bound()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, name, "real.lib")

	mod.Close()
	test.ExpectEquality(t, l.open(), 0)
}

func TestFirstSuccessPinning(t *testing.T) {
	l := newFakeLoader(fakeLibs)
	mod := dynlib.OpenWith(l, []string{"real_a.lib", "real_b.lib"})
	defer mod.Close()

	addr, ok := mod.Symbol("sym")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uintptr(0x2000))

	// the second symbol comes from the same library
	addr, ok = mod.Symbol("only_a")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uintptr(0x2010))

	// and symbols in the other library are not found
	_, ok = mod.Symbol("only_b")
	test.ExpectFailure(t, ok)

	name, _ := mod.Bound()
	test.ExpectEquality(t, name, "real_a.lib")

	// only the bound library was ever loaded
	test.ExpectEquality(t, l.loads, 1)
}

func TestPinningSkipsLibraryWithoutSymbol(t *testing.T) {
	l := newFakeLoader(fakeLibs)
	mod := dynlib.OpenWith(l, []string{"real_a.lib", "real_b.lib"})
	defer mod.Close()

	// real_a.lib is loaded, found wanting and released
	addr, ok := mod.Symbol("only_b")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uintptr(0x3010))
	test.ExpectEquality(t, l.loads, 2)
	test.ExpectEquality(t, l.unloads, 1)

	name, _ := mod.Bound()
	test.ExpectEquality(t, name, "real_b.lib")
}

func TestAbsentSymbol(t *testing.T) {
	l := newFakeLoader(fakeLibs)
	mod := dynlib.OpenWith(l, []string{"real_a.lib", "real_b.lib"})

	_, ok := mod.Symbol("missing")
	test.ExpectFailure(t, ok)
	_, ok = mod.Bound()
	test.ExpectFailure(t, ok)

	// every library that was loaded has been released
	test.ExpectEquality(t, l.loads, 2)
	test.ExpectEquality(t, l.open(), 0)

	// the full list is tried again
	_, ok = mod.Symbol("missing")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, l.loads, 4)

	// and a later symbol can still bind the module
	_, ok = mod.Symbol("only_b")
	test.ExpectSuccess(t, ok)
	name, _ := mod.Bound()
	test.ExpectEquality(t, name, "real_b.lib")

	mod.Close()
	test.ExpectEquality(t, l.open(), 0)
}

func TestNoCandidates(t *testing.T) {
	l := newFakeLoader(fakeLibs)
	mod := dynlib.OpenWith(l, nil)
	_, ok := mod.Symbol("sym")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, l.loads, 0)
	mod.Close()
}

func TestClose(t *testing.T) {
	l := newFakeLoader(fakeLibs)
	mod := dynlib.OpenWith(l, []string{"real.lib"})

	// closing an unbound module does nothing
	mod.Close()
	test.ExpectEquality(t, l.unloads, 0)

	_, ok := mod.Symbol("sym")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l.open(), 1)

	mod.Close()
	test.ExpectEquality(t, l.open(), 0)
	test.ExpectEquality(t, l.unloads, 1)

	// closing twice does nothing
	mod.Close()
	test.ExpectEquality(t, l.unloads, 1)
}

func TestConcurrentResolves(t *testing.T) {
	l := newFakeLoader(fakeLibs)
	mod := dynlib.OpenWith(l, []string{"nonexistent.lib", "real_a.lib", "real_b.lib"})
	defer mod.Close()

	var wg sync.WaitGroup
	results := make([]uintptr, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = mod.Symbol("sym")
		}()
	}
	wg.Wait()

	for _, r := range results {
		test.ExpectEquality(t, r, uintptr(0x2000))
	}
	test.ExpectEquality(t, l.loads, 1)
}

func TestCandidates(t *testing.T) {
	c := []string{"a", "b"}
	mod := dynlib.OpenWith(newFakeLoader(fakeLibs), c)

	// the module keeps its own copy of the list
	c[0] = "z"
	test.ExpectEquality(t, mod.Candidates()[0], "a")
	test.ExpectEquality(t, mod.String(), "unbound [a, b]")
}

func TestDefaultLoader(t *testing.T) {
	_, ok := dynlib.DefaultLoader().(dynlib.SDLLoader)
	test.ExpectSuccess(t, ok)

	l := newFakeLoader(fakeLibs)
	dynlib.SetDefaultLoader(l)
	defer dynlib.SetDefaultLoader(nil)

	mod := dynlib.Open([]string{"real.lib"})
	defer mod.Close()
	_, ok = mod.Symbol("sym")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l.loads, 1)
}
