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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/osd/curated"
	"github.com/jetsetilly/osd/logger"
)

// Sentinal error patterns.
const (
	NotPE = "pe: not a PE image (%s)"
)

// offsets and values used to parse the headers. all values are little
// endian
const (
	dosSignature = "MZ"
	lfanewOffset = 0x3c
	ntSignature  = "PE\x00\x00"

	fileHeaderSize = 20
	sectionSize    = 40

	magicPE32     = 0x10b
	magicPE32Plus = 0x20b

	// number of data directories and the data directories themselves are
	// at different offsets in the optional header depending on the magic
	// value
	numDirsPE32     = 92
	dataDirsPE32    = 96
	numDirsPE32Plus = 108
	dataDirsPE32Pl  = 112

	sizeOfImageOffset   = 56
	sizeOfHeadersOffset = 60

	// index of the export directory in the data directory table
	exportDirectory = 0

	exportDirectorySize = 40

	// longest name that will be read from the image
	maxNameLen = 512
)

type section struct {
	virtualSize    uint32
	virtualAddress uint32
	sizeOfRawData  uint32
	pointerToRaw   uint32
}

// Image is a PE image in Memory starting at the Base address.
type Image struct {
	Memory Memory
	Base   uintptr

	// Mapped is true if the image is laid out as it is when loaded by the
	// system. Otherwise it is laid out as the file on disk and RVAs are
	// translated through the section table
	Mapped bool

	sizeOfImage   uint32
	sizeOfHeaders uint32

	exportRVA  uint32
	exportSize uint32

	sections []section
}

func (img *Image) String() string {
	return fmt.Sprintf("PE image at %#x (%d bytes)", img.Base, img.sizeOfImage)
}

// read fills buf from the address
func (img *Image) read(addr uintptr, buf []byte) bool {
	return img.Memory.Probe(addr, buf)
}

func (img *Image) read16(addr uintptr) (uint16, bool) {
	var b [2]byte
	if !img.read(addr, b[:]) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b[:]), true
}

func (img *Image) read32(addr uintptr) (uint32, bool) {
	var b [4]byte
	if !img.read(addr, b[:]) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[:]), true
}

// NewImage parses the headers of the image at the base address. An error is
// returned if the base address does not hold a valid PE image. An image
// with no export directory is not an error.
func NewImage(mem Memory, base uintptr, mapped bool) (*Image, error) {
	img := &Image{
		Memory: mem,
		Base:   base,
		Mapped: mapped,
	}

	var sig [4]byte
	if !img.read(base, sig[:2]) || string(sig[:2]) != dosSignature {
		return nil, curated.Errorf(NotPE, "no DOS signature")
	}

	lfanew, ok := img.read32(base + lfanewOffset)
	if !ok {
		return nil, curated.Errorf(NotPE, "truncated DOS header")
	}
	nt := base + uintptr(lfanew)

	if !img.read(nt, sig[:]) || string(sig[:]) != ntSignature {
		return nil, curated.Errorf(NotPE, "no PE signature")
	}

	fileHeader := nt + 4
	numSections, ok := img.read16(fileHeader + 2)
	if !ok {
		return nil, curated.Errorf(NotPE, "truncated file header")
	}
	sizeOfOptional, ok := img.read16(fileHeader + 16)
	if !ok {
		return nil, curated.Errorf(NotPE, "truncated file header")
	}

	opt := fileHeader + fileHeaderSize
	magic, ok := img.read16(opt)
	if !ok {
		return nil, curated.Errorf(NotPE, "truncated optional header")
	}

	var numDirsOffset, dataDirsOffset uintptr
	switch magic {
	case magicPE32:
		numDirsOffset = numDirsPE32
		dataDirsOffset = dataDirsPE32
	case magicPE32Plus:
		numDirsOffset = numDirsPE32Plus
		dataDirsOffset = dataDirsPE32Pl
	default:
		return nil, curated.Errorf(NotPE, fmt.Sprintf("unknown optional header magic %#x", magic))
	}

	if img.sizeOfImage, ok = img.read32(opt + sizeOfImageOffset); !ok {
		return nil, curated.Errorf(NotPE, "truncated optional header")
	}
	if img.sizeOfHeaders, ok = img.read32(opt + sizeOfHeadersOffset); !ok {
		return nil, curated.Errorf(NotPE, "truncated optional header")
	}

	numDirs, ok := img.read32(opt + numDirsOffset)
	if !ok {
		return nil, curated.Errorf(NotPE, "truncated optional header")
	}

	if numDirs > exportDirectory {
		dir := opt + dataDirsOffset + exportDirectory*8
		if img.exportRVA, ok = img.read32(dir); !ok {
			return nil, curated.Errorf(NotPE, "truncated data directory")
		}
		if img.exportSize, ok = img.read32(dir + 4); !ok {
			return nil, curated.Errorf(NotPE, "truncated data directory")
		}
	}

	secs := opt + uintptr(sizeOfOptional)
	for i := range uintptr(numSections) {
		var b [sectionSize]byte
		if !img.read(secs+i*sectionSize, b[:]) {
			return nil, curated.Errorf(NotPE, "truncated section table")
		}
		img.sections = append(img.sections, section{
			virtualSize:    binary.LittleEndian.Uint32(b[8:]),
			virtualAddress: binary.LittleEndian.Uint32(b[12:]),
			sizeOfRawData:  binary.LittleEndian.Uint32(b[16:]),
			pointerToRaw:   binary.LittleEndian.Uint32(b[20:]),
		})
	}

	return img, nil
}

// SizeOfImage returns the size of the image when it is mapped.
func (img *Image) SizeOfImage() uint32 {
	return img.sizeOfImage
}

// Contains returns true if the address is inside the mapped image.
func (img *Image) Contains(addr uintptr) bool {
	return addr >= img.Base && addr-img.Base < uintptr(img.sizeOfImage)
}

// rva converts a relative virtual address to an address in Memory
func (img *Image) rva(rva uint32) (uintptr, bool) {
	if img.Mapped || rva < img.sizeOfHeaders {
		return img.Base + uintptr(rva), true
	}

	for _, s := range img.sections {
		size := max(s.virtualSize, s.sizeOfRawData)
		if rva >= s.virtualAddress && rva-s.virtualAddress < size {
			off := rva - s.virtualAddress
			if off >= s.sizeOfRawData {
				// in the uninitialised part of the section
				return 0, false
			}
			return img.Base + uintptr(s.pointerToRaw) + uintptr(off), true
		}
	}

	return 0, false
}

// cstring reads a null terminated string at the RVA
func (img *Image) cstring(rva uint32) (string, bool) {
	addr, ok := img.rva(rva)
	if !ok {
		return "", false
	}

	var s []byte
	var b [1]byte
	for range maxNameLen {
		if !img.read(addr, b[:]) {
			return "", false
		}
		if b[0] == 0x00 {
			return string(s), true
		}
		s = append(s, b[0])
		addr++
	}

	return "", false
}

// HasExports returns true if the image has a non-empty export directory.
func (img *Image) HasExports() bool {
	return img.exportRVA != 0 && img.exportSize != 0
}

// ExportRange returns the addresses of the start and end of the export
// directory. An export that resolves to an address inside this range is a
// forwarder.
func (img *Image) ExportRange() (start uintptr, end uintptr) {
	return img.Base + uintptr(img.exportRVA), img.Base + uintptr(img.exportRVA) + uintptr(img.exportSize)
}

func (img *Image) isForwarder(rva uint32) bool {
	return rva >= img.exportRVA && rva-img.exportRVA < img.exportSize
}

// the fields of the export directory that are used
type exportDir struct {
	base              uint32
	numberOfFunctions uint32
	numberOfNames     uint32
	addressOfFuncs    uint32
	addressOfNames    uint32
	addressOfOrdinals uint32
}

func (img *Image) exports() (exportDir, bool) {
	if !img.HasExports() {
		return exportDir{}, false
	}

	addr, ok := img.rva(img.exportRVA)
	if !ok {
		return exportDir{}, false
	}

	var b [exportDirectorySize]byte
	if !img.read(addr, b[:]) {
		return exportDir{}, false
	}

	dir := exportDir{
		base:              binary.LittleEndian.Uint32(b[16:]),
		numberOfFunctions: binary.LittleEndian.Uint32(b[20:]),
		numberOfNames:     binary.LittleEndian.Uint32(b[24:]),
		addressOfFuncs:    binary.LittleEndian.Uint32(b[28:]),
		addressOfNames:    binary.LittleEndian.Uint32(b[32:]),
		addressOfOrdinals: binary.LittleEndian.Uint32(b[36:]),
	}

	if dir.numberOfFunctions == 0 {
		return exportDir{}, false
	}

	return dir, true
}

// function returns the RVA of the entry in AddressOfFunctions
func (img *Image) function(dir exportDir, index uint32) (uint32, bool) {
	if index >= dir.numberOfFunctions {
		return 0, false
	}
	addr, ok := img.rva(dir.addressOfFuncs + index*4)
	if !ok {
		return 0, false
	}
	return img.read32(addr)
}

// name returns the name and the function index of the entry in AddressOfNames
func (img *Image) name(dir exportDir, i uint32) (string, uint32, bool) {
	addr, ok := img.rva(dir.addressOfNames + i*4)
	if !ok {
		return "", 0, false
	}
	nameRVA, ok := img.read32(addr)
	if !ok {
		return "", 0, false
	}
	name, ok := img.cstring(nameRVA)
	if !ok {
		return "", 0, false
	}

	addr, ok = img.rva(dir.addressOfOrdinals + i*2)
	if !ok {
		return "", 0, false
	}
	index, ok := img.read16(addr)
	if !ok {
		return "", 0, false
	}

	return name, uint32(index), true
}

// ProcRVA returns the RVA of the named export. Names are compared exactly.
func (img *Image) ProcRVA(name string) (uint32, bool) {
	dir, ok := img.exports()
	if !ok {
		return 0, false
	}

	for i := range dir.numberOfNames {
		n, index, ok := img.name(dir, i)
		if !ok || n != name {
			continue
		}

		rva, ok := img.function(dir, index)
		if !ok || rva == 0 {
			return 0, false
		}
		if img.isForwarder(rva) {
			logger.Logf(logger.Allow, "pe", "%s is a forwarder", name)
			return 0, false
		}
		return rva, true
	}

	return 0, false
}

// ProcAddress returns the address of the named export. The address is only
// meaningful for Mapped images.
func (img *Image) ProcAddress(name string) (uintptr, bool) {
	rva, ok := img.ProcRVA(name)
	if !ok {
		return 0, false
	}
	return img.Base + uintptr(rva), true
}

// ProcAddressByOrdinal returns the address of the export with the ordinal.
// The ordinal includes the export directory's ordinal base.
func (img *Image) ProcAddressByOrdinal(ordinal uint16) (uintptr, bool) {
	dir, ok := img.exports()
	if !ok {
		return 0, false
	}

	if uint32(ordinal) < dir.base {
		return 0, false
	}

	rva, ok := img.function(dir, uint32(ordinal)-dir.base)
	if !ok || rva == 0 || img.isForwarder(rva) {
		return 0, false
	}

	return img.Base + uintptr(rva), true
}

// Export is a named entry in the export table.
type Export struct {
	Name    string
	Ordinal uint16
	RVA     uint32

	// the name of the forwarded symbol. RVA refers to this string when the
	// export is a forwarder
	Forwarder string
}

// Exports lists the named exports of the image in the order they appear in
// the name table.
func (img *Image) Exports() []Export {
	dir, ok := img.exports()
	if !ok {
		return nil
	}

	var exports []Export
	for i := range dir.numberOfNames {
		name, index, ok := img.name(dir, i)
		if !ok {
			continue
		}
		rva, ok := img.function(dir, index)
		if !ok {
			continue
		}

		e := Export{
			Name:    name,
			Ordinal: uint16(dir.base + index),
			RVA:     rva,
		}
		if img.isForwarder(rva) {
			e.Forwarder, _ = img.cstring(rva)
		}

		exports = append(exports, e)
	}

	return exports
}
