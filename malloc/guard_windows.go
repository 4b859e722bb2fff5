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

package malloc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func reserveGuarded(committed int, page int) (unsafe.Pointer, bool) {
	base, err := windows.VirtualAlloc(0, uintptr(committed+2*page), windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil || base == 0 {
		return nil, false
	}

	mid, err := windows.VirtualAlloc(base+uintptr(page), uintptr(committed), windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil || mid == 0 {
		_ = windows.VirtualFree(base, 0, windows.MEM_RELEASE)
		return nil, false
	}

	return unsafe.Pointer(mid), true
}

// releaseGuarded frees the reservation around a committed region returned
// by reserveGuarded(). the size is implied by the reservation
func releaseGuarded(committed unsafe.Pointer, _ int, page int) {
	_ = windows.VirtualFree(uintptr(committed)-uintptr(page), 0, windows.MEM_RELEASE)
}

// the base address returned by VirtualAlloc()
type reservation uintptr

func reserveExecutable(size int) (reservation, unsafe.Pointer, bool) {
	base, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_EXECUTE_READWRITE)
	if err != nil || base == 0 {
		return 0, nil, false
	}
	return reservation(base), unsafe.Pointer(base), true
}

func releaseReservation(res reservation) {
	_ = windows.VirtualFree(uintptr(res), 0, windows.MEM_RELEASE)
}
