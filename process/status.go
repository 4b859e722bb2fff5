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

package process

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// tracerPID returns the value of the TracerPid field in the contents of a
// /proc/<pid>/status file. Returns false if the field is missing or invalid
func tracerPID(r io.Reader) (int, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), ":")
		if !ok || k != "TracerPid" {
			continue // for loop
		}
		pid, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return pid, true
	}
	return 0, false
}
