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

//go:build windows

package process

import "golang.org/x/sys/windows"

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	isDebuggerPresent = kernel32.NewProc("IsDebuggerPresent")
	debugBreak        = kernel32.NewProc("DebugBreak")
)

// DebuggerPresent returns true if a debugger is attached to the process.
func DebuggerPresent() bool {
	r, _, _ := isDebuggerPresent.Call()
	return r != 0
}

// OutputDebugString sends the message to the attached debugger.
func OutputDebugString(message string) {
	p, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	windows.OutputDebugString(p)
}

func trap() {
	_, _, _ = debugBreak.Call()
}
