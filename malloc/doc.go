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

// Package malloc is the allocator of the OS layer. It has two allocation
// entry points and one deallocation entry point:
//
//	p := malloc.Alloc(17)      // general allocation
//	q := malloc.AllocArray(64) // guarded allocation
//	malloc.Free(p)
//	malloc.Free(q)
//
// In Release mode both allocation functions are thin wrappers over the
// platform heap. In Debug mode every allocation carries a header: an 8 byte
// size field at the start of the raw block and a single back-offset byte
// immediately before the returned pointer. The returned pointer is always
// aligned to MaxAlignment.
//
// Guarded allocations in Debug mode are placed in their own virtual memory
// reservation with an inaccessible page either side of the committed
// region:
//
//	[ guard page ][ committed region ][ guard page ]
//
// With the AlignEnd policy the payload sits against the end of the
// committed region so that an overrun faults immediately. AlignStart puts
// the block at the beginning of the committed region so that underruns past
// the header fault instead.
//
// The Debug mode is the default when built with the mallocdebug tag. The
// mode of the Default allocator should not be changed once allocations
// have been made because Free() interprets a pointer according to the
// current mode.
//
// The allocator is safe for concurrent use if the Heap is.
package malloc
