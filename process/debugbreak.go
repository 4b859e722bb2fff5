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
	"sync"

	"github.com/jetsetilly/osd/logger"
)

var crashReporter struct {
	crit sync.Mutex
	fn   func(message string)
}

// SetCrashReporter installs the function called by DebugBreak() when no
// debugger is attached. A nil function removes the crash reporter.
func SetCrashReporter(fn func(message string)) {
	crashReporter.crit.Lock()
	defer crashReporter.crit.Unlock()
	crashReporter.fn = fn
}

// DebugBreak stops the process in the attached debugger after sending the
// message to the debugger's output. If no debugger is attached the message
// is passed to the crash reporter. If there is no crash reporter nothing
// happens.
func DebugBreak(message string) {
	if DebuggerPresent() {
		logger.Logf(logger.Allow, "process", "debug break: %s", message)
		OutputDebugString(message)
		trap()
		return
	}

	crashReporter.crit.Lock()
	fn := crashReporter.fn
	crashReporter.crit.Unlock()

	if fn != nil {
		logger.Logf(logger.Allow, "process", "crash report: %s", message)
		fn(message)
	}
}
