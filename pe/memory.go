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

package pe

import (
	"runtime/debug"
	"unsafe"
)

// Memory is an address space that an image can be read from.
type Memory interface {
	// Probe fills buf with the memory at addr. Returns false if any part of
	// the memory cannot be read
	Probe(addr uintptr, buf []byte) bool
}

// SliceMemory is a block of bytes that appears at the Base address.
type SliceMemory struct {
	Base uintptr
	Data []byte
}

// Probe implements the Memory interface.
func (m SliceMemory) Probe(addr uintptr, buf []byte) bool {
	if addr < m.Base {
		return false
	}
	off := addr - m.Base
	if off > uintptr(len(m.Data)) || uintptr(len(buf)) > uintptr(len(m.Data))-off {
		return false
	}
	copy(buf, m.Data[off:])
	return true
}

// ProcessMemory is the memory of the current process. Reads of unmapped or
// protected memory are recovered from and reported as failures.
type ProcessMemory struct{}

// Probe implements the Memory interface.
func (ProcessMemory) Probe(addr uintptr, buf []byte) (ok bool) {
	if addr == 0 || len(buf) == 0 {
		return len(buf) == 0
	}

	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(buf)))

	return true
}
