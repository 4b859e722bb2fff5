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

//go:build !unix && !windows

package malloc

import "unsafe"

// no virtual memory control on this platform. guarded allocations fail
type reservation struct{}

func reserveGuarded(_ int, _ int) (unsafe.Pointer, bool) {
	return nil, false
}

func releaseGuarded(_ unsafe.Pointer, _ int, _ int) {
}

func reserveExecutable(_ int) (reservation, unsafe.Pointer, bool) {
	return reservation{}, nil, false
}

func releaseReservation(_ reservation) {
}
