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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/osd/environment"
	"github.com/jetsetilly/osd/pe/petest"
	"github.com/jetsetilly/osd/test"
	"github.com/jetsetilly/osd/version"
)

func TestVersionMode(t *testing.T) {
	w, err := test.NewRingWriter(1024)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, launch(w, []string{"VERSION"}), 0)
	test.ExpectEquality(t, w.String(), version.String()+"\n")
}

func TestHelp(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"-help"}), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: ENV, MALLOC, DYNLIB, EXPORTS, CLIPBOARD, BREAK, VERSION"))

	w.Reset()
	test.ExpectEquality(t, launch(w, []string{"EXPORTS", "-help"}), 0)
	test.ExpectEquality(t, w.String(), "No help available for EXPORTS\n")
}

func TestBadFlag(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"-nosuchflag"}), 10)
}

func TestEnvMode(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"ENV", "OSD_TEST_MODE=env", "osd_test_mode", "OSD_UNSET"}), 0)
	test.ExpectEquality(t, w.String(), "osd_test_mode=env\nOSD_UNSET is not set\n")

	v, ok := environment.Getenv("OSD_TEST_MODE")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "env")

	// overwrite is off so the existing value survives
	w.Reset()
	test.ExpectEquality(t, launch(w, []string{"ENV", "-overwrite=false", "OSD_TEST_MODE=other"}), 0)
	v, _ = environment.Getenv("OSD_TEST_MODE")
	test.ExpectEquality(t, v, "env")

	// empty names can not be set
	w.Reset()
	test.ExpectEquality(t, launch(w, []string{"ENV", "=value"}), 20)
	test.ExpectEquality(t, w.String(), "* error in ENV mode: cannot set \n")

	w.Reset()
	test.ExpectEquality(t, launch(w, []string{"ENV", "-dot", "OSD_TEST_MODE"}), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}

func TestMallocMode(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"MALLOC", "-count", "50", "-size", "33"}), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "allocations: 50\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "outstanding: 0 (0 bytes)\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "misaligned: 0\n"))
}

func TestMallocModePrefs(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"-prefs", "malloc.debug::true; malloc.guardalign::start", "MALLOC", "-count", "10"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "mode: debug (align start, "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "allocations: 10\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "outstanding: 0 (0 bytes)\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "misaligned: 0\n"))

	// unknown profile types are an error
	w.Reset()
	test.ExpectEquality(t, launch(w, []string{"MALLOC", "-profile", "trace"}), 20)
}

func TestExportsMode(t *testing.T) {
	img := petest.Build(petest.KernelExports)
	pth := filepath.Join(t.TempDir(), "kernel.dll")
	test.DemandSuccess(t, os.WriteFile(pth, img.File, 0600))

	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"EXPORTS", pth}), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), " GetTickCount64 0x"))
	test.ExpectSuccess(t, strings.Contains(w.String(), " HeapAlloc -> NTDLL.RtlAllocateHeap\n"))

	// not a PE file
	w.Reset()
	test.ExpectEquality(t, launch(w, []string{"EXPORTS", "osd.go"}), 20)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in EXPORTS mode: pe: not a PE image"))

	// missing argument
	w.Reset()
	test.ExpectEquality(t, launch(w, []string{"EXPORTS"}), 20)
}

func TestDynlibModeMissing(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"DYNLIB", "cos", "libosd-no-such-library.so"}), 20)
	test.ExpectEquality(t, w.String(), "* error in DYNLIB mode: cos not found\n")
}
