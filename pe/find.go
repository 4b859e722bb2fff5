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

package pe

import (
	"os"

	"github.com/jetsetilly/osd/curated"
	"github.com/jetsetilly/osd/logger"
)

// images are loaded on a 4k boundary regardless of the page size of the
// system
const imageAlignment = 0x1000

// FindImageBase walks backwards from the anchor address, one 4k page at a
// time, until the DOS signature is found at the start of a page. Pages that
// cannot be read are skipped. Returns false if the walk reaches the bottom
// of the address space.
func FindImageBase(mem Memory, anchor uintptr) (uintptr, bool) {
	var b [2]byte
	for page := anchor &^ (imageAlignment - 1); page != 0; page -= imageAlignment {
		if mem.Probe(page, b[:]) && string(b[:]) == dosSignature {
			logger.Logf(logger.Allow, "pe", "image base found at %#x", page)
			return page, true
		}
	}
	logger.Logf(logger.Allow, "pe", "no image base below %#x", anchor)
	return 0, false
}

// FindImage finds and parses the mapped image that contains the anchor
// address.
func FindImage(mem Memory, anchor uintptr) (*Image, bool) {
	base, ok := FindImageBase(mem, anchor)
	if !ok {
		return nil, false
	}
	img, err := NewImage(mem, base, true)
	if err != nil {
		logger.Log(logger.Allow, "pe", err)
		return nil, false
	}
	return img, true
}

// Open reads a PE file from disk. The image uses the file layout and a base
// address of zero, so addresses returned by ProcAddress() are RVAs.
func Open(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(NotPE, err)
	}
	return NewImage(SliceMemory{Data: data}, 0, false)
}
