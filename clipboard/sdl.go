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

package clipboard

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SDL is the clipboard as provided by SDL. Text is only available in UTF-8.
// The SDL video subsystem must be initialised.
type SDL struct{}

// Read implements the Source interface.
func (SDL) Read(f Format) ([]byte, bool) {
	if f != UTF8 || !sdl.HasClipboardText() {
		return nil, false
	}
	s, err := sdl.GetClipboardText()
	if err != nil {
		return nil, false
	}
	return []byte(s), true
}

// Write implements the Writer interface.
func (SDL) Write(text string) bool {
	return sdl.SetClipboardText(text) == nil
}
