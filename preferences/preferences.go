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

// Package preferences collates the preference values used by the OS layer.
// The values are stored in the global preferences file alongside any other
// preferences the host may keep there.
package preferences

import (
	"os"

	"github.com/jetsetilly/osd/curated"
	"github.com/jetsetilly/osd/logger"
	"github.com/jetsetilly/osd/paths"
	"github.com/jetsetilly/osd/prefs"
)

// Guard placement options for the GuardAlign preference.
const (
	GuardAlignEnd   = "end"
	GuardAlignStart = "start"
)

// Preferences defines and collates all the preference values used by the OS
// layer.
type Preferences struct {
	dsk *prefs.Disk

	// use the debug allocator. guarded allocations are surrounded by
	// inaccessible pages and every allocation carries a header
	MallocDebug prefs.Bool

	// placement of a guarded allocation inside the committed region. "end"
	// catches overruns and "start" catches underruns
	GuardAlign prefs.String

	// use the restricted runtime loader, bootstrapped by scanning the export
	// table of the system library
	DynlibRestricted prefs.Bool

	// echo log entries to stdout as they are made
	LogEcho prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.GuardAlign.SetOptions(GuardAlignEnd, GuardAlignStart)

	p.LogEcho.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(os.Stdout)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("malloc.debug", &p.MallocDebug)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("malloc.guardalign", &p.GuardAlign)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("dynlib.restricted", &p.DynlibRestricted)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("log.echo", &p.LogEcho)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Reset()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// Reset all OS layer preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current OS layer preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current OS layer preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
