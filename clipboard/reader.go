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
	"github.com/jetsetilly/osd/logger"
)

// Source is a clipboard that holds data in one or more formats.
type Source interface {
	// Read returns the clipboard data in the format. Returns false if the
	// clipboard does not hold data in that format
	Read(f Format) ([]byte, bool)
}

// Writer is implemented by sources that can also place text on the
// clipboard.
type Writer interface {
	Write(text string) bool
}

// Reader reads text from a Source.
type Reader struct {
	Source Source

	// formats in order of preference
	Formats []Format
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(src Source) *Reader {
	return &Reader{
		Source:  src,
		Formats: PreferredFormats,
	}
}

// Get returns the text on the clipboard. Returns false if the clipboard does
// not hold text in a supported format.
func (r *Reader) Get() (string, bool) {
	for _, f := range r.Formats {
		data, ok := r.Source.Read(f)
		if !ok {
			continue // for loop
		}
		s, ok := Decode(f, data)
		if ok {
			return s, true
		}
		logger.Logf(logger.Allow, "clipboard", "cannot convert %s text", f)
	}
	return "", false
}

// Set places the text on the clipboard. Returns false if the Source cannot
// be written to.
func (r *Reader) Set(text string) bool {
	if w, ok := r.Source.(Writer); ok {
		return w.Write(text)
	}
	return false
}

// Unavailable is a clipboard that is always empty.
type Unavailable struct{}

// Read implements the Source interface.
func (Unavailable) Read(_ Format) ([]byte, bool) {
	return nil, false
}

// Memory is a clipboard held in memory. It holds at most one piece of data
// per format.
type Memory map[Format][]byte

// Read implements the Source interface.
func (m Memory) Read(f Format) ([]byte, bool) {
	data, ok := m[f]
	return data, ok
}

// Write implements the Writer interface. Any data on the clipboard is
// replaced with the text in every format.
func (m Memory) Write(text string) bool {
	clear(m)
	for _, f := range []Format{UTF16LE, ANSI, UTF8} {
		if b, ok := Encode(f, text); ok {
			m[f] = b
		}
	}
	return true
}

// Default is the reader of the system clipboard.
var Default = NewReader(platformSource())

// Get returns the text on the system clipboard.
func Get() (string, bool) {
	return Default.Get()
}
