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

// Package petest builds small PE images for testing code that reads export
// tables.
package petest

import (
	"encoding/binary"
)

// Export is a named export in a test image. If Forwarder is not empty the
// export is forwarded and RVA is ignored.
type Export struct {
	Name      string
	RVA       uint32
	Forwarder string
}

// Layout of the images created by Build().
const (
	HeadersSize = 0x200
	SizeOfImage = 0x3000
	OrdinalBase = 1

	EdataRVA  = 0x1000
	EdataRaw  = 0x200
	EdataSize = 0x400

	TextRVA  = 0x2000
	TextRaw  = 0x600
	TextSize = 0x200

	FileSize = TextRaw + TextSize

	NTOffset       = 0x40
	OptionalOffset = NTOffset + 4 + 20
	OptionalSize   = 240
	SectionsOffset = OptionalOffset + OptionalSize
)

// Image is a test image in both the file and the mapped layouts.
type Image struct {
	File   []byte
	Mapped []byte

	// size of the export directory data
	ExportSize uint32
}

func put16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }
func put32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func put64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }

func putSection(b []byte, off int, name string, vsize, rva, rawSize, raw, flags uint32) {
	copy(b[off:off+8], name)
	put32(b, off+8, vsize)
	put32(b, off+12, rva)
	put32(b, off+16, rawSize)
	put32(b, off+20, raw)
	put32(b, off+36, flags)
}

// Build creates a 64bit DLL with an .edata section containing the exports
// and a .text section filled with return instructions. An image with no
// exports has an empty export data directory.
func Build(exports []Export) Image {
	edata := make([]byte, EdataSize)
	n := uint32(len(exports))

	// export directory followed by the function, name and ordinal tables
	funcs := uint32(40)
	names := funcs + 4*n
	ordinals := names + 4*n
	strs := ordinals + 2*n

	writeString := func(s string) uint32 {
		rva := EdataRVA + strs
		copy(edata[strs:], s)
		strs += uint32(len(s)) + 1
		return rva
	}

	dllName := writeString("test.dll")

	for i, e := range exports {
		i := uint32(i)
		put32(edata, int(names+4*i), writeString(e.Name))
		put16(edata, int(ordinals+2*i), uint16(i))
	}

	for i, e := range exports {
		i := uint32(i)
		rva := e.RVA
		if e.Forwarder != "" {
			rva = writeString(e.Forwarder)
		}
		put32(edata, int(funcs+4*i), rva)
	}

	put32(edata, 12, dllName)
	put32(edata, 16, OrdinalBase)
	put32(edata, 20, n)
	put32(edata, 24, n)
	put32(edata, 28, EdataRVA+funcs)
	put32(edata, 32, EdataRVA+names)
	put32(edata, 36, EdataRVA+ordinals)

	exportSize := strs

	hdr := make([]byte, HeadersSize)
	copy(hdr, "MZ")
	put32(hdr, 0x3c, NTOffset)
	copy(hdr[NTOffset:], "PE\x00\x00")

	// file header
	fh := NTOffset + 4
	put16(hdr, fh, 0x8664)
	put16(hdr, fh+2, 2)
	put16(hdr, fh+16, OptionalSize)
	put16(hdr, fh+18, 0x2022)

	// optional header
	oh := OptionalOffset
	put16(hdr, oh, 0x20b)
	put32(hdr, oh+4, TextSize)
	put32(hdr, oh+8, EdataSize)
	put32(hdr, oh+20, TextRVA)
	put64(hdr, oh+24, 0x180000000)
	put32(hdr, oh+32, 0x1000)
	put32(hdr, oh+36, 0x200)
	put16(hdr, oh+40, 6)
	put16(hdr, oh+48, 6)
	put32(hdr, oh+56, SizeOfImage)
	put32(hdr, oh+60, HeadersSize)
	put16(hdr, oh+68, 3)
	put64(hdr, oh+72, 0x100000)
	put64(hdr, oh+80, 0x1000)
	put64(hdr, oh+88, 0x100000)
	put64(hdr, oh+96, 0x1000)
	put32(hdr, oh+108, 16)
	if n > 0 {
		put32(hdr, oh+112, EdataRVA)
		put32(hdr, oh+116, exportSize)
	}

	putSection(hdr, SectionsOffset, ".edata", exportSize, EdataRVA, EdataSize, EdataRaw, 0x40000040)
	putSection(hdr, SectionsOffset+40, ".text", TextSize, TextRVA, TextSize, TextRaw, 0x60000020)

	text := make([]byte, TextSize)
	for i := range text {
		text[i] = 0xc3
	}

	img := Image{
		File:       make([]byte, FileSize),
		Mapped:     make([]byte, SizeOfImage),
		ExportSize: exportSize,
	}

	copy(img.File, hdr)
	copy(img.File[EdataRaw:], edata)
	copy(img.File[TextRaw:], text)

	copy(img.Mapped, hdr)
	copy(img.Mapped[EdataRVA:], edata)
	copy(img.Mapped[TextRVA:], text)

	return img
}

// KernelExports are the exports of a system library that contains the
// loader functions, plus a forwarder.
var KernelExports = []Export{
	{Name: "GetTickCount64", RVA: TextRVA + 0x00},
	{Name: "LoadLibraryA", RVA: TextRVA + 0x10},
	{Name: "HeapAlloc", Forwarder: "NTDLL.RtlAllocateHeap"},
	{Name: "GetProcAddress", RVA: TextRVA + 0x20},
}
