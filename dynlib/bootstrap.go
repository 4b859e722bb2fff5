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
	"sync"

	"github.com/jetsetilly/osd/logger"
	"github.com/jetsetilly/osd/pe"
)

// names of the loader functions exported by the system library
const (
	loadLibraryName    = "LoadLibraryA"
	getProcAddressName = "GetProcAddress"
)

// the loader functions found by FindLoadExports()
var bootstrap struct {
	crit           sync.Mutex
	loadLibrary    uintptr
	getProcAddress uintptr
}

// FindLoadExports finds the LoadLibraryA and GetProcAddress functions by
// walking back from the anchor address to the start of the image containing
// it and then searching the image's export table.
//
// The anchor should be the address of any function exported by the system
// library that also exports the loader functions.
//
// The results are cached and subsequent calls return the cached values
// without scanning memory. If either function cannot be found nothing is
// cached and the next call scans again.
func FindLoadExports(mem pe.Memory, anchor uintptr) (loadLibrary uintptr, getProcAddress uintptr, ok bool) {
	bootstrap.crit.Lock()
	defer bootstrap.crit.Unlock()

	if bootstrap.loadLibrary != 0 && bootstrap.getProcAddress != 0 {
		return bootstrap.loadLibrary, bootstrap.getProcAddress, true
	}

	img, ok := pe.FindImage(mem, anchor)
	if !ok {
		logger.Log(logger.Allow, "dynlib", "bootstrap: system library image not found")
		return 0, 0, false
	}

	ll, ok := img.ProcAddress(loadLibraryName)
	if !ok {
		logger.Logf(logger.Allow, "dynlib", "bootstrap: %s not found in %s", loadLibraryName, img)
		return 0, 0, false
	}

	gpa, ok := img.ProcAddress(getProcAddressName)
	if !ok {
		logger.Logf(logger.Allow, "dynlib", "bootstrap: %s not found in %s", getProcAddressName, img)
		return 0, 0, false
	}

	bootstrap.loadLibrary = ll
	bootstrap.getProcAddress = gpa
	logger.Logf(logger.Allow, "dynlib", "bootstrap: loader functions found in %s", img)

	return ll, gpa, true
}

// LoadExports returns the cached results of FindLoadExports() without
// scanning.
func LoadExports() (loadLibrary uintptr, getProcAddress uintptr, ok bool) {
	bootstrap.crit.Lock()
	defer bootstrap.crit.Unlock()
	return bootstrap.loadLibrary, bootstrap.getProcAddress, bootstrap.loadLibrary != 0 && bootstrap.getProcAddress != 0
}

func resetBootstrap() {
	bootstrap.crit.Lock()
	defer bootstrap.crit.Unlock()
	bootstrap.loadLibrary = 0
	bootstrap.getProcAddress = 0
}
