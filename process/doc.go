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

// Package process contains the primitives that act on the running process
// as a whole.
//
// Terminate() ends the process immediately with an exit status of -1.
// Standard output and standard error are flushed first and the terminal
// attributes saved by SaveTerminal() are restored, but deferred functions
// are not run.
//
// DebugBreak() stops the process in an attached debugger. If no debugger
// is attached the crash reporter installed with SetCrashReporter() is
// called instead. With no debugger and no crash reporter DebugBreak() does
// nothing.
package process
