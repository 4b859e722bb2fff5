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
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Handle is a loaded library as returned by a Loader.
type Handle uintptr

// Loader is the platform's means of loading libraries.
type Loader interface {
	// Load the named library. Returns false if the library cannot be loaded
	Load(name string) (Handle, bool)

	// Symbol returns the address of the named symbol in the library. Returns
	// false if the library does not export the symbol
	Symbol(h Handle, name string) (uintptr, bool)

	// Unload releases the library
	Unload(h Handle)
}

// SDLLoader loads libraries with the functions provided by SDL.
type SDLLoader struct{}

// Load implements the Loader interface.
func (SDLLoader) Load(name string) (Handle, bool) {
	h := sdl.LoadObject(name)
	if h == nil {
		return 0, false
	}
	return Handle(uintptr(h)), true
}

// Symbol implements the Loader interface.
func (SDLLoader) Symbol(h Handle, name string) (uintptr, bool) {
	p := sdl.LoadFunction(unsafe.Pointer(uintptr(h)), name)
	if p == nil {
		return 0, false
	}
	return uintptr(p), true
}

// Unload implements the Loader interface.
func (SDLLoader) Unload(h Handle) {
	sdl.UnloadObject(unsafe.Pointer(uintptr(h)))
}

var defaultLoader struct {
	crit   sync.Mutex
	loader Loader
}

// DefaultLoader returns the loader used by Open().
func DefaultLoader() Loader {
	defaultLoader.crit.Lock()
	defer defaultLoader.crit.Unlock()
	if defaultLoader.loader == nil {
		return SDLLoader{}
	}
	return defaultLoader.loader
}

// SetDefaultLoader changes the loader used by future calls to Open(). A nil
// loader restores the SDLLoader.
func SetDefaultLoader(l Loader) {
	defaultLoader.crit.Lock()
	defer defaultLoader.crit.Unlock()
	defaultLoader.loader = l
}
