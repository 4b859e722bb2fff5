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
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// MaxAlignment is the alignment of every pointer returned by the Debug mode
// allocator. It is 32 bytes on x86 with AVX, 16 bytes on x86 with SSE and
// the machine word size otherwise.
var MaxAlignment = maxAlignment()

// PageSize is the size of a virtual memory page.
var PageSize = os.Getpagesize()

func maxAlignment() int {
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasAVX {
			return 32
		}
		if cpu.X86.HasSSE2 {
			return 16
		}
	}
	return int(unsafe.Sizeof(uintptr(0)))
}

// alignUp rounds v up to the next multiple of a. a must be a power of two
func alignUp(v, a int) int {
	return (v + a - 1) &^ (a - 1)
}

// alignDown rounds v down to a multiple of a. a must be a power of two
func alignDown(v, a uintptr) uintptr {
	return v &^ (a - 1)
}
