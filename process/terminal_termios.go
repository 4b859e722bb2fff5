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

//go:build linux || darwin || freebsd || netbsd || openbsd

package process

import (
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

var terminal struct {
	crit  sync.Mutex
	attr  unix.Termios
	saved bool
}

// SaveTerminal stores the attributes of the terminal connected to stdin so
// that Terminate() can restore them. Returns false if stdin is not a
// terminal.
func SaveTerminal() bool {
	terminal.crit.Lock()
	defer terminal.crit.Unlock()

	if err := termios.Tcgetattr(os.Stdin.Fd(), &terminal.attr); err != nil {
		terminal.saved = false
		return false
	}
	terminal.saved = true
	return true
}

func restoreTerminal() {
	terminal.crit.Lock()
	defer terminal.crit.Unlock()

	if terminal.saved {
		_ = termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &terminal.attr)
	}
}
