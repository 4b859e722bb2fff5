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

package preferences

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/osd/logger"
	"github.com/jetsetilly/osd/prefs"
	"github.com/jetsetilly/osd/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.MallocDebug.Get().(bool))
	test.ExpectEquality(t, p.GuardAlign.String(), GuardAlignEnd)
	test.ExpectFailure(t, p.DynlibRestricted.Get().(bool))
	test.ExpectFailure(t, p.LogEcho.Get().(bool))

	// file is created on first use
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.MallocDebug.Set(true))
	test.ExpectSuccess(t, p.GuardAlign.Set("Start"))
	test.ExpectFailure(t, p.GuardAlign.Set("middle"))
	test.DemandSuccess(t, p.Save())

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.MallocDebug.Get().(bool))
	test.ExpectEquality(t, q.GuardAlign.String(), GuardAlignStart)

	test.ExpectSuccess(t, q.Reset())
	test.ExpectEquality(t, q.GuardAlign.String(), GuardAlignEnd)
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("dynlib.restricted::true; malloc.guardalign::start")
	defer prefs.PopCommandLineStack()

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.DynlibRestricted.Get().(bool))
	test.ExpectEquality(t, p.GuardAlign.String(), GuardAlignStart)
}

func TestLogEcho(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	defer logger.SetEcho(nil)

	test.ExpectSuccess(t, p.LogEcho.Set(true))
	test.ExpectSuccess(t, p.LogEcho.Set(false))

	// with echo off the central log still records the entry
	logger.Clear()
	logger.Log(logger.Allow, "preferences", "echo off")
	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "preferences: echo off\n")
}
