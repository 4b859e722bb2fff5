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

package malloc

import (
	"sync"
	"unsafe"
)

// Heap is the platform's general purpose allocator.
type Heap interface {
	// Malloc returns nil if the memory cannot be allocated
	Malloc(size int) unsafe.Pointer
	Free(p unsafe.Pointer)
}

// TrackingHeap wraps another Heap and counts the allocations that have not
// been freed. It is used to check that a sequence of allocations returns
// the heap to its original state.
type TrackingHeap struct {
	Heap Heap

	crit        sync.Mutex
	live        map[unsafe.Pointer]int
	bytes       int
	allocations int
}

// NewTrackingHeap is the preferred method of initialisation for the
// TrackingHeap type.
func NewTrackingHeap(h Heap) *TrackingHeap {
	return &TrackingHeap{
		Heap: h,
		live: make(map[unsafe.Pointer]int),
	}
}

// Malloc implements the Heap interface.
func (h *TrackingHeap) Malloc(size int) unsafe.Pointer {
	p := h.Heap.Malloc(size)
	if p == nil {
		return nil
	}

	h.crit.Lock()
	defer h.crit.Unlock()
	h.live[p] = size
	h.bytes += size
	h.allocations++

	return p
}

// Free implements the Heap interface.
func (h *TrackingHeap) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}

	h.crit.Lock()
	size, ok := h.live[p]
	if ok {
		delete(h.live, p)
		h.bytes -= size
	}
	h.crit.Unlock()

	h.Heap.Free(p)
}

// Outstanding returns the number of bytes and the number of allocations that
// have not yet been freed.
func (h *TrackingHeap) Outstanding() (bytes int, count int) {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.bytes, len(h.live)
}

// Allocations returns the total number of allocations made through the heap.
func (h *TrackingHeap) Allocations() int {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.allocations
}
