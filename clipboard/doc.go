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

// Package clipboard reads text from the system clipboard.
//
// The clipboard may hold text in more than one format. A Reader asks its
// Source for each format in order of preference and converts the first one
// available to UTF-8. Wide character text is preferred over single byte
// text.
//
// On runtimes where the clipboard can only be read asynchronously the
// Unavailable source is used and the clipboard is always empty.
package clipboard
