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

//go:build cgo

package malloc

// #include <stdlib.h>
import "C"

import "unsafe"

// CHeap is the C library heap.
type CHeap struct{}

// Malloc implements the Heap interface.
func (CHeap) Malloc(size int) unsafe.Pointer {
	if size < 0 {
		return nil
	}
	return C.malloc(C.size_t(size))
}

// Free implements the Heap interface.
func (CHeap) Free(p unsafe.Pointer) {
	C.free(p)
}

// PlatformHeap returns the heap used by the Default allocator.
func PlatformHeap() Heap {
	return CHeap{}
}
