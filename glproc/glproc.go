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

// Package glproc binds the OpenGL entry points through a dynlib.Module.
// Because the Module is bound to the first library that provides a symbol,
// the core functions and the extensions all come from the same library.
package glproc

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/jetsetilly/osd/dynlib"
	"github.com/jetsetilly/osd/logger"
)

// Candidates returns the names of the OpenGL library for the current
// platform, in order of preference.
func Candidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"opengl32.dll"}
	case "darwin":
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	}
	return []string{"libGL.so.1", "libGL.so"}
}

// ProcAddress returns a function suitable for gl.InitWithProcAddrFunc().
func ProcAddress(mod *dynlib.Module) func(name string) unsafe.Pointer {
	return func(name string) unsafe.Pointer {
		addr, ok := mod.Symbol(name)
		if !ok {
			return nil
		}
		return unsafe.Pointer(addr)
	}
}

// Init the OpenGL bindings with functions from the Module. A current GL
// context is not needed to bind the functions but is needed to call them.
func Init(mod *dynlib.Module) error {
	err := gl.InitWithProcAddrFunc(ProcAddress(mod))
	if err != nil {
		logger.Logf(logger.Allow, "glproc", "cannot bind GL from %s: %v", mod, err)
		return err
	}
	logger.Logf(logger.Allow, "glproc", "GL bound from %s", mod)
	return nil
}
