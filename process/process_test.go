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

package process_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/osd/logger"
	"github.com/jetsetilly/osd/process"
	"github.com/jetsetilly/osd/test"
)

func TestTerminate(t *testing.T) {
	code := 0
	called := false
	defer process.SetExit(func(c int) {
		code = c
		called = true
	})()

	logger.Clear()
	process.Terminate()
	test.ExpectSuccess(t, called)
	test.ExpectEquality(t, code, -1)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "process: terminate\n")
}

func TestTerminateRestoresTerminal(t *testing.T) {
	defer process.SetExit(func(_ int) {})()

	// stdin is not usually a terminal during testing but saving and
	// restoring must be safe either way
	process.SaveTerminal()
	process.Terminate()
}

func TestDebugBreakNoDebugger(t *testing.T) {
	if process.DebuggerPresent() {
		t.Skip("debugger is attached")
	}

	logger.Clear()
	process.SetCrashReporter(nil)
	process.DebugBreak("test")

	// nothing happened
	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestDebugBreakCrashReporter(t *testing.T) {
	if process.DebuggerPresent() {
		t.Skip("debugger is attached")
	}

	var reported []string
	process.SetCrashReporter(func(message string) {
		reported = append(reported, message)
	})
	defer process.SetCrashReporter(nil)

	process.DebugBreak("first")
	process.DebugBreak("second")
	test.DemandEquality(t, len(reported), 2)
	test.ExpectEquality(t, reported[0], "first")
	test.ExpectEquality(t, reported[1], "second")
}

func TestTracerPID(t *testing.T) {
	status := "Name:\tosd.test\nState:\tR (running)\nTgid:\t1234\nPid:\t1234\nPPid:\t1\nTracerPid:\t%s\nUid:\t0\t0\t0\t0\n"

	pid, ok := process.TracerPID(strings.NewReader(strings.Replace(status, "%s", "0", 1)))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pid, 0)

	pid, ok = process.TracerPID(strings.NewReader(strings.Replace(status, "%s", "4321", 1)))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pid, 4321)

	_, ok = process.TracerPID(strings.NewReader(strings.Replace(status, "%s", "abc", 1)))
	test.ExpectFailure(t, ok)

	_, ok = process.TracerPID(strings.NewReader("Name:\tosd.test\n"))
	test.ExpectFailure(t, ok)
}
