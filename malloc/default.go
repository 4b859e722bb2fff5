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
	"unsafe"

	"github.com/jetsetilly/osd/logger"
)

// Default is the allocator used by the package level functions.
var Default = NewAllocator(buildMode, AlignEnd, nil)

// Configure the Default allocator. The mode is Debug if debug is true or if
// the program was built with the mallocdebug tag. Should be called before
// any allocations are made.
func Configure(debug bool, align Align) {
	if debug {
		Default.Mode = Debug
	} else {
		Default.Mode = buildMode
	}
	Default.Align = align

	if Default.Mode == Debug {
		logger.Logf(logger.Allow, "malloc", "debug allocator (align %s, max alignment %d)", align, MaxAlignment)
	}
}

// Alloc allocates memory with the Default allocator.
func Alloc(size int) unsafe.Pointer {
	return Default.Alloc(size)
}

// AllocArray allocates memory with the Default allocator. In Debug mode the
// memory is protected by guard pages.
func AllocArray(size int) unsafe.Pointer {
	return Default.AllocArray(size)
}

// Free memory allocated with Alloc() or AllocArray().
func Free(p unsafe.Pointer) {
	Default.Free(p)
}
