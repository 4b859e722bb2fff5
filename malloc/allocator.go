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
	"strings"
	"unsafe"

	"github.com/jetsetilly/osd/logger"
)

// Mode selects between the plain and the instrumented allocator.
type Mode int

// List of valid Mode values.
const (
	Release Mode = iota
	Debug
)

func (m Mode) String() string {
	switch m {
	case Release:
		return "release"
	case Debug:
		return "debug"
	}
	return "unknown mode"
}

// Align is the placement policy of guarded allocations inside the committed
// region.
type Align int

// List of valid Align values.
const (
	AlignEnd Align = iota
	AlignStart
)

func (a Align) String() string {
	switch a {
	case AlignEnd:
		return "end"
	case AlignStart:
		return "start"
	}
	return "unknown align"
}

// ParseAlign converts the string returned by Align.String() back into an
// Align value. Comparison is case insensitive.
func ParseAlign(s string) (Align, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "end":
		return AlignEnd, true
	case "start":
		return AlignStart, true
	}
	return AlignEnd, false
}

// the size field at the start of every Debug mode block
const headerSize = 8

// the least significant bit of the size field is set for guarded blocks
const guardBit = 1

// Allocator is a configured instance of the allocator.
type Allocator struct {
	Mode  Mode
	Align Align
	Heap  Heap
}

// NewAllocator is the preferred method of initialisation for the Allocator
// type. A nil Heap is replaced with the PlatformHeap().
func NewAllocator(mode Mode, align Align, heap Heap) *Allocator {
	if heap == nil {
		heap = PlatformHeap()
	}
	return &Allocator{
		Mode:  mode,
		Align: align,
		Heap:  heap,
	}
}

// pad the requested size so that there is room for the header and for the
// payload to be aligned. the low bit is cleared so that it is available for
// the guard flag
func pad(size int) int {
	return (size + MaxAlignment + headerSize + 2) &^ guardBit
}

// writeHeader stores the size field at the start of the block and the
// back-offset byte before the payload
func writeHeader(block unsafe.Pointer, offset int, size uint64) unsafe.Pointer {
	*(*uint64)(block) = size
	p := unsafe.Add(block, offset)
	*(*uint8)(unsafe.Add(p, -1)) = uint8(offset)
	return p
}

// Alloc returns a pointer to at least size bytes. Returns nil if the memory
// cannot be allocated.
func (a *Allocator) Alloc(size int) unsafe.Pointer {
	if size < 0 {
		return nil
	}

	if a.Mode == Release {
		return a.Heap.Malloc(size)
	}

	padded := pad(size)
	block := a.Heap.Malloc(padded)
	if block == nil {
		return nil
	}

	// payload is the highest aligned address that still leaves room for the
	// header and the back-offset byte
	b := uintptr(block)
	offset := int(alignDown(b+headerSize+uintptr(MaxAlignment), uintptr(MaxAlignment)) - b)

	return writeHeader(block, offset, uint64(padded))
}

// AllocArray returns a pointer to at least size bytes. In Debug mode the
// allocation is surrounded by guard pages. Returns nil if the memory cannot
// be reserved or committed.
//
// The returned pointer is aligned to MaxAlignment. With the AlignEnd policy
// the payload ends flush against the trailing guard page only when size is a
// multiple of MaxAlignment. Otherwise an overrun is caught at the next
// MaxAlignment boundary after the end of the payload.
func (a *Allocator) AllocArray(size int) unsafe.Pointer {
	if size < 0 {
		return nil
	}

	if a.Mode == Release {
		return a.Heap.Malloc(size)
	}

	padded := pad(size)
	rounded := guardedSize(padded)

	committed, ok := reserveGuarded(rounded, PageSize)
	if !ok {
		logger.Logf(logger.Allow, "malloc", "guarded allocation of %d bytes failed", size)
		return nil
	}

	var block unsafe.Pointer
	var offset int

	switch a.Align {
	case AlignStart:
		block = committed
		offset = int(alignDown(uintptr(headerSize+MaxAlignment), uintptr(MaxAlignment)))
	default:
		end := unsafe.Add(committed, rounded)
		p := unsafe.Add(end, -alignUp(size, MaxAlignment))
		offset = headerSize + MaxAlignment

		// the block must be in the first committed page because Free()
		// finds the reservation from the address of the block
		if limit := int(uintptr(p)-uintptr(committed)) - PageSize + headerSize; offset < limit {
			offset = limit
		}
		block = unsafe.Add(p, -offset)
	}

	return writeHeader(block, offset, uint64(padded)|guardBit)
}

// guardedSize is the size of the committed region for a guarded block. the
// extra alignment ensures there is room for the header when the payload is
// pushed to the end of the committed region
func guardedSize(padded int) int {
	return alignUp(padded+MaxAlignment, PageSize)
}

// Free returns memory allocated by Alloc() or AllocArray() to the system.
// Freeing a nil pointer does nothing. Any Debug mode allocator can free a
// pointer returned by another Debug mode allocator because everything
// needed is in the header. Freeing a pointer not returned by an allocator
// in the same mode is undefined.
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}

	if a.Mode == Release {
		a.Heap.Free(p)
		return
	}

	offset := int(*(*uint8)(unsafe.Add(p, -1)))
	block := unsafe.Add(p, -offset)
	size := *(*uint64)(block)

	if size&guardBit == 0 {
		a.Heap.Free(block)
		return
	}

	// the committed region starts on the page containing the block. the
	// reservation begins one guard page before that
	committed := unsafe.Add(block, -int(uintptr(block)&uintptr(PageSize-1)))
	releaseGuarded(committed, guardedSize(int(size&^guardBit)), PageSize)
}

// Header returns the back-offset and the size field for a pointer returned
// by the allocator in Debug mode. The guarded flag is taken from the low bit
// of the size field and is removed from the size value.
func Header(p unsafe.Pointer) (offset int, size uint64, guarded bool) {
	offset = int(*(*uint8)(unsafe.Add(p, -1)))
	size = *(*uint64)(unsafe.Add(p, -offset))
	return offset, size &^ guardBit, size&guardBit == guardBit
}

// Bytes returns a slice of size bytes starting at p. The slice must not be
// used after the memory has been freed.
func Bytes(p unsafe.Pointer, size int) []byte {
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), size)
}
