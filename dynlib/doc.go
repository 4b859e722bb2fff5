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

// Package dynlib loads dynamic libraries and resolves the symbols they
// export.
//
// A Module is opened with an ordered list of candidate library names. No
// library is loaded until the first symbol is requested. The candidates are
// then tried in order and the first library that exports the symbol is
// bound to the Module. All subsequent symbols are resolved from that library
// and no other, so that related symbols (a graphics API and its extensions
// for example) always come from the same library image.
//
//	mod := dynlib.Open([]string{"libm.so.6", "libm.so"})
//	defer mod.Close()
//	cos, ok := mod.Symbol("cos")
//
// If no candidate exports the symbol the Module remains unbound and the next
// request tries the full list again.
//
// The platform's loader is used through the Loader interface. The default
// loader is provided by SDL. On runtimes where the system loader functions
// cannot be called directly, a RestrictedLoader finds them by scanning the
// export table of the system library in memory. See FindLoadExports().
package dynlib
