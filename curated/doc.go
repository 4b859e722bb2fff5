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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages export the patterns of the errors they create so
// that callers can test for them without matching the formatted message. For
// example:
//
//	const NotPE = "pe: not a PE image (%s)"
//
//	e := curated.Errorf(NotPE, filename)
//
//	if curated.Is(e, NotPE) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("exports: %v", e)
//
//	if curated.Has(f, NotPE) {
//		fmt.Println("true")
//	}
//
// Repeated parts of the message are removed when the message is formatted.
// This means that code does not need to worry about the immediate context of
// the function which creates the error. For instance:
//
//	e := curated.Errorf("prefs: %v", curated.Errorf("prefs: %v", "no file"))
//	fmt.Println(e)
//
// Will print:
//
//	prefs: no file
//
// Curated errors work with errors.Is() and errors.As() from the standard
// library. Any error value in the values list is treated as wrapped.
package curated
