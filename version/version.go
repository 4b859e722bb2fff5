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

// Package version reports the version of the OS layer tool. The version
// number is set by the linker when building a numbered release:
//
//	go build -ldflags "-X github.com/jetsetilly/osd/version.number=v0.1.0"
//
// Otherwise the version is derived from the build information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application
const ApplicationName = "osd"

// if number is empty then the project was not built with the release ldflags
var number string

// revision contains the vcs revision. if the source has been modified but
// has not been committed then the revision string is suffixed with "+dirty"
var revision string

// version is the number if one has been set. otherwise it is "unreleased" if
// there is vcs information and "local" if there is not
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns a single line summary of the version, suitable for printing
// on the command line.
func String() string {
	if version == number {
		return fmt.Sprintf("%s %s (%s %s/%s)", ApplicationName, version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("%s %s [%s] (%s %s/%s)", ApplicationName, version, revision, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
