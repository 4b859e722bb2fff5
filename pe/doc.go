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

// Package pe reads the export table of a Portable Executable image. The
// image can be in memory, as loaded by the system, or in the layout of the
// file on disk.
//
// The main purpose of the package is to find the entry points of a system
// library when the normal means of doing so (LoadLibrary and GetProcAddress)
// are not available. FindImageBase() walks backwards from the address of a
// known function to the start of the image that contains it. The export
// table of that image can then be searched with ProcAddress().
//
// All memory is accessed through the Memory interface. ProcessMemory reads
// the memory of the current process and reports unreadable addresses
// instead of crashing.
//
// Exports that are forwarded to another library are not supported and are
// reported as not found.
package pe
