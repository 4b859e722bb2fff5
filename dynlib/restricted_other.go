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

//go:build !windows

package dynlib

import "github.com/jetsetilly/osd/logger"

// RestrictedLoader loads libraries with the LoadLibraryA and GetProcAddress
// functions found by FindLoadExports(). There is no system library to scan
// on this platform so the loader is never usable.
type RestrictedLoader struct{}

// NewRestrictedLoader returns a loader that can not load any library.
func NewRestrictedLoader() *RestrictedLoader {
	logger.Log(logger.Allow, "dynlib", "bootstrap: restricted loader is not available on this platform")
	return &RestrictedLoader{}
}

// Usable returns true if the bootstrap found the loader functions.
func (l *RestrictedLoader) Usable() bool {
	return false
}

// Load implements the Loader interface.
func (l *RestrictedLoader) Load(_ string) (Handle, bool) {
	return 0, false
}

// Symbol implements the Loader interface.
func (l *RestrictedLoader) Symbol(_ Handle, _ string) (uintptr, bool) {
	return 0, false
}

// Unload implements the Loader interface.
func (l *RestrictedLoader) Unload(_ Handle) {
}
