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

package dynlib

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jetsetilly/osd/logger"
)

// Module is a dynamic library chosen from a list of candidates.
type Module struct {
	loader     Loader
	candidates []string

	crit sync.Mutex

	// the library that the first symbol was found in. once set it is never
	// replaced except by Close()
	bound     Handle
	boundName string
	isBound   bool
}

// Open a Module with the default loader. The candidates are library names
// in order of preference. No library is loaded until Symbol() is called.
func Open(candidates []string) *Module {
	return OpenWith(DefaultLoader(), candidates)
}

// OpenWith opens a Module with the specified loader.
func OpenWith(loader Loader, candidates []string) *Module {
	return &Module{
		loader:     loader,
		candidates: append([]string(nil), candidates...),
	}
}

func (mod *Module) String() string {
	mod.crit.Lock()
	defer mod.crit.Unlock()
	if mod.isBound {
		return mod.boundName
	}
	return fmt.Sprintf("unbound [%s]", strings.Join(mod.candidates, ", "))
}

// Symbol returns the address of the named symbol. Returns false if the
// symbol cannot be found.
//
// The first successful call binds the library that the symbol was found in
// to the Module. Symbols are then only ever resolved from that library.
func (mod *Module) Symbol(name string) (uintptr, bool) {
	mod.crit.Lock()
	defer mod.crit.Unlock()

	if mod.isBound {
		return mod.loader.Symbol(mod.bound, name)
	}

	for _, lib := range mod.candidates {
		h, ok := mod.loader.Load(lib)
		if !ok {
			continue // for loop
		}

		addr, ok := mod.loader.Symbol(h, name)
		if ok {
			mod.bound = h
			mod.boundName = lib
			mod.isBound = true
			logger.Logf(logger.Allow, "dynlib", "bound %s (first symbol %s)", lib, name)
			return addr, true
		}

		mod.loader.Unload(h)
	}

	logger.Logf(logger.Allow, "dynlib", "%s not found in [%s]", name, strings.Join(mod.candidates, ", "))

	return 0, false
}

// Bound returns the name of the library bound to the Module. Returns false
// if no library has been bound.
func (mod *Module) Bound() (string, bool) {
	mod.crit.Lock()
	defer mod.crit.Unlock()
	return mod.boundName, mod.isBound
}

// Candidates returns the list of library names.
func (mod *Module) Candidates() []string {
	return append([]string(nil), mod.candidates...)
}

// Close releases the bound library. Addresses returned by Symbol() must not
// be used after the Module has been closed.
func (mod *Module) Close() {
	mod.crit.Lock()
	defer mod.crit.Unlock()

	if !mod.isBound {
		return
	}

	mod.loader.Unload(mod.bound)
	logger.Logf(logger.Allow, "dynlib", "released %s", mod.boundName)

	mod.bound = 0
	mod.boundName = ""
	mod.isBound = false
}
