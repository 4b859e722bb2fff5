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

//go:build windows

package dynlib

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jetsetilly/osd/pe"
)

// the anchor for the bootstrap scan. any function exported by kernel32
// will do
var tickCount = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetTickCount64")

// RestrictedLoader loads libraries with the LoadLibraryA and GetProcAddress
// functions found by FindLoadExports(). If the bootstrap failed no library
// can be loaded.
type RestrictedLoader struct {
	loadLibrary    uintptr
	getProcAddress uintptr
}

// NewRestrictedLoader runs the bootstrap scan (or uses the cached result)
// and returns a loader that uses the functions it found.
func NewRestrictedLoader() *RestrictedLoader {
	l := &RestrictedLoader{}
	if err := tickCount.Find(); err != nil {
		return l
	}
	l.loadLibrary, l.getProcAddress, _ = FindLoadExports(pe.ProcessMemory{}, tickCount.Addr())
	return l
}

// Usable returns true if the bootstrap found the loader functions.
func (l *RestrictedLoader) Usable() bool {
	return l.loadLibrary != 0 && l.getProcAddress != 0
}

// Load implements the Loader interface.
func (l *RestrictedLoader) Load(name string) (Handle, bool) {
	if !l.Usable() {
		return 0, false
	}
	p, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0, false
	}
	r, _, _ := syscall.SyscallN(l.loadLibrary, uintptr(unsafe.Pointer(p)))
	if r == 0 {
		return 0, false
	}
	return Handle(r), true
}

// Symbol implements the Loader interface.
func (l *RestrictedLoader) Symbol(h Handle, name string) (uintptr, bool) {
	if !l.Usable() {
		return 0, false
	}
	p, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0, false
	}
	r, _, _ := syscall.SyscallN(l.getProcAddress, uintptr(h), uintptr(unsafe.Pointer(p)))
	if r == 0 {
		return 0, false
	}
	return r, true
}

// Unload implements the Loader interface.
func (l *RestrictedLoader) Unload(h Handle) {
	_ = windows.FreeLibrary(windows.Handle(h))
}
