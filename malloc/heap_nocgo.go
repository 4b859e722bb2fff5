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

//go:build !cgo

package malloc

import (
	"sync"
	"unsafe"
)

// GoHeap allocates from the Go heap. Allocations are kept reachable until
// they are freed. Used when cgo is not available.
type GoHeap struct {
	crit sync.Mutex
	live map[unsafe.Pointer][]byte
}

// Malloc implements the Heap interface.
func (h *GoHeap) Malloc(size int) unsafe.Pointer {
	if size < 0 {
		return nil
	}

	// over allocate so the returned pointer can be aligned in the same way
	// as the C heap aligns
	b := make([]byte, size+MaxAlignment)
	off := alignUp(int(uintptr(unsafe.Pointer(&b[0]))), MaxAlignment) - int(uintptr(unsafe.Pointer(&b[0])))
	p := unsafe.Pointer(&b[off])

	h.crit.Lock()
	defer h.crit.Unlock()
	if h.live == nil {
		h.live = make(map[unsafe.Pointer][]byte)
	}
	h.live[p] = b

	return p
}

// Free implements the Heap interface.
func (h *GoHeap) Free(p unsafe.Pointer) {
	h.crit.Lock()
	defer h.crit.Unlock()
	delete(h.live, p)
}

var goHeap GoHeap

// PlatformHeap returns the heap used by the Default allocator.
func PlatformHeap() Heap {
	return &goHeap
}
