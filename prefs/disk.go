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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/osd/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// Sentinal error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	PrefsFileError = "prefs: %v"
)

// the separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " \t\n") {
		return curated.Errorf(PrefsFileError, fmt.Errorf("key %q contains whitespace", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(PrefsFileError, fmt.Errorf("key %q already added", key))
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preferences to their default value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
	}
	return nil
}

// read the prefs file and return the key/value pairs in it. the boolean
// result is false if the file does not exist
func (dsk *Disk) read() (map[string]string, bool, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	values := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the first line of the file must be the boilerplate warning
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, true, curated.Errorf(PrefsFileError, fmt.Errorf("%s is not a preferences file", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if isDefunct(k) {
			continue
		}
		values[k] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, true, curated.Errorf(PrefsFileError, err)
	}

	return values, true, nil
}

// Save current preference values to disk. Values in the file that were not
// added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, _, err := dsk.read()
	if err != nil {
		return err
	}
	if values == nil {
		values = make(map[string]string)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, values[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true and the prefs
// file does not exist then the current values are saved, creating the file.
//
// Values on the top of the command line stack take priority over the values
// in the file, whether or not the file exists.
//
// A missing prefs file is reported with the NoPrefsFile pattern. This is
// usually not a problem and can be safely ignored.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	values, exists, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range values {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
	}

	if !exists {
		if saveOnFirstUse {
			if err := dsk.Save(); err != nil {
				return err
			}
			return nil
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}
