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

//go:build windows

package clipboard

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// standard clipboard formats
const (
	cfText        = 1
	cfUnicodeText = 13
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	openClipboard    = user32.NewProc("OpenClipboard")
	closeClipboard   = user32.NewProc("CloseClipboard")
	getClipboardData = user32.NewProc("GetClipboardData")

	kernel32     = windows.NewLazySystemDLL("kernel32.dll")
	globalLock   = kernel32.NewProc("GlobalLock")
	globalUnlock = kernel32.NewProc("GlobalUnlock")
	globalSize   = kernel32.NewProc("GlobalSize")
)

// Windows is the clipboard of the Windows desktop.
type Windows struct{}

// Read implements the Source interface.
func (Windows) Read(f Format) ([]byte, bool) {
	var cf uintptr
	switch f {
	case UTF16LE:
		cf = cfUnicodeText
	case ANSI:
		cf = cfText
	default:
		return nil, false
	}

	if r, _, _ := openClipboard.Call(0); r == 0 {
		return nil, false
	}
	defer closeClipboard.Call()

	h, _, _ := getClipboardData.Call(cf)
	if h == 0 {
		return nil, false
	}

	p, _, _ := globalLock.Call(h)
	if p == 0 {
		return nil, false
	}
	defer globalUnlock.Call(h)

	size, _, _ := globalSize.Call(h)

	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(unsafe.Pointer(p)), size))

	return data, true
}

func platformSource() Source {
	return Windows{}
}
