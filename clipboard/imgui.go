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
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/osd/curated"
)

// Sentinal error patterns.
const (
	NoText = "clipboard: no text available"
)

// Imgui adapts a Reader for use as the clipboard of a Dear ImGui context.
//
//	imgui.CurrentIO().SetClipboard(clipboard.Imgui{Reader: clipboard.Default})
type Imgui struct {
	Reader *Reader
}

var _ imgui.Clipboard = Imgui{}

// Text implements the imgui.Clipboard interface.
func (c Imgui) Text() (string, error) {
	s, ok := c.Reader.Get()
	if !ok {
		return "", curated.Errorf(NoText)
	}
	return s, nil
}

// SetText implements the imgui.Clipboard interface.
func (c Imgui) SetText(value string) {
	c.Reader.Set(value)
}
