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

// Package paths contains functions to prepare paths to OS layer resources,
// such as the preferences file.
//
// The ResourcePath() function returns the supplied resource path prepended
// with the appropriate config directory. For example, the following will
// return the path to the preferences file.
//
//	d, err := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() depends on the build. For development builds,
// the base resource path is ".osd" in the program's current directory. For
// release builds (the "release" build tag) the user's config directory is
// used. The package uses os.UserConfigDir() from go standard library for
// this.
//
// In the example above, on a modern Linux system and with a release build,
// the path returned will be:
//
//	/home/user/.config/osd/preferences
//
// The sub-path (but not the file) is created if it does not exist.
package paths
