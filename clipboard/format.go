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
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Format is an encoding of text on the clipboard.
type Format int

// List of valid Format values.
const (
	// wide character text. little endian UTF-16
	UTF16LE Format = iota

	// single byte text in the Windows-1252 code page
	ANSI

	// UTF-8 text. the canonical format
	UTF8
)

func (f Format) String() string {
	switch f {
	case UTF16LE:
		return "UTF-16LE"
	case ANSI:
		return "ANSI"
	case UTF8:
		return "UTF-8"
	}
	return "unknown format"
}

// PreferredFormats is the order in which formats are tried by a Reader.
var PreferredFormats = []Format{UTF16LE, ANSI, UTF8}

// trim removes everything from the first terminator. the terminator is a
// zero value of the width of the format
func trim(data []byte, width int) []byte {
	for i := 0; i+width <= len(data); i += width {
		if bytes.Equal(data[i:i+width], make([]byte, width)) {
			return data[:i]
		}
	}
	return data[:len(data)-len(data)%width]
}

// Decode converts clipboard data in the format to a UTF-8 string. Data is
// terminated by the first null character if there is one. Returns false if
// the data cannot be converted.
func Decode(f Format, data []byte) (string, bool) {
	var dec *encoding.Decoder

	switch f {
	case UTF16LE:
		data = trim(data, 2)
		dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case ANSI:
		data = trim(data, 1)
		dec = charmap.Windows1252.NewDecoder()
	case UTF8:
		data = trim(data, 1)
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	default:
		return "", false
	}

	s, err := dec.Bytes(data)
	if err != nil {
		return "", false
	}
	return string(s), true
}

// Encode converts a UTF-8 string to the format, including a terminator.
// Characters that cannot be represented in the format are replaced.
func Encode(f Format, s string) ([]byte, bool) {
	var enc *encoding.Encoder

	switch f {
	case UTF16LE:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
		b, err := enc.Bytes([]byte(s))
		if err != nil {
			return nil, false
		}
		return append(b, 0, 0), true
	case ANSI:
		enc = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	case UTF8:
		return append([]byte(s), 0), true
	default:
		return nil, false
	}

	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, false
	}
	return append(b, 0), true
}
