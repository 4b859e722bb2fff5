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

	"github.com/jetsetilly/osd/logger"
)

// executable memory is always allocated from its own reservation
var executable struct {
	crit     sync.Mutex
	reserved map[uintptr]reservation
}

// Restricted should be set to true on runtimes that forbid executable
// memory. AllocExecutable() always returns nil when it is set.
var Restricted bool

// AllocExecutable returns size bytes of memory that can be read, written
// and executed. Returns nil if the memory cannot be allocated or if the
// runtime is restricted.
func AllocExecutable(size int) unsafe.Pointer {
	if Restricted || size <= 0 {
		return nil
	}

	res, p, ok := reserveExecutable(size)
	if !ok {
		logger.Logf(logger.Allow, "malloc", "executable allocation of %d bytes failed", size)
		return nil
	}

	executable.crit.Lock()
	defer executable.crit.Unlock()
	if executable.reserved == nil {
		executable.reserved = make(map[uintptr]reservation)
	}
	executable.reserved[uintptr(p)] = res

	return p
}

// FreeExecutable releases memory returned by AllocExecutable(). Freeing a nil
// pointer does nothing.
func FreeExecutable(p unsafe.Pointer) {
	if p == nil {
		return
	}

	executable.crit.Lock()
	res, ok := executable.reserved[uintptr(p)]
	delete(executable.reserved, uintptr(p))
	executable.crit.Unlock()

	if ok {
		releaseReservation(res)
	}
}
