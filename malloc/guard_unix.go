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

//go:build unix

package malloc

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// reserveGuarded reserves committed+2*page bytes with no access and then
// makes the middle committed bytes readable and writable
func reserveGuarded(committed int, page int) (unsafe.Pointer, bool) {
	length := uintptr(committed + 2*page)
	base, err := unix.MmapPtr(-1, 0, nil, length, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, false
	}

	mid := unsafe.Add(base, page)
	err = unix.Mprotect(unsafe.Slice((*byte)(mid), committed), unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		_ = unix.MunmapPtr(base, length)
		return nil, false
	}

	return mid, true
}

// releaseGuarded unmaps the reservation around a committed region returned
// by reserveGuarded()
func releaseGuarded(committed unsafe.Pointer, size int, page int) {
	_ = unix.MunmapPtr(unsafe.Add(committed, -page), uintptr(size+2*page))
}

// the mapping returned by mmap. unix.Munmap() requires the original slice
type reservation []byte

// reserveExecutable maps size bytes of readable, writable and executable
// memory
func reserveExecutable(size int) (reservation, unsafe.Pointer, bool) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, false
	}
	return mem, unsafe.Pointer(&mem[0]), true
}

func releaseReservation(res reservation) {
	_ = unix.Munmap(res)
}
