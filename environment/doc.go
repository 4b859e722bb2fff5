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

// Package environment is the OS layer's own environment store. It is a
// process-wide mapping of variable names to values and is separate from the
// environment of the host operating system. Values set here are not seen by
// child processes.
//
// Names are compared case insensitively, using ASCII folding only. Each
// value is held as a single "name=value" block so that it can be handed
// verbatim to code expecting the environment block convention.
//
//	environment.Setenv("PATH", "/a", true)
//	environment.Setenv("path", "/b", false)
//	v, _ := environment.Getenv("Path") // v == "/a"
package environment
