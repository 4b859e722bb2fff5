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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface. the
// pattern is kept so that errors can be identified without string matching
// the formatted message.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. Note that unlike fmt.Errorf() the %w
// verb is not required for wrapping. Any error in the values list is
// considered wrapped and can be found with Has() or errors.Is().
func Errorf(pattern string, values ...any) error {
	// the message is not formatted here, despite the function name. we
	// only store the arguments and formatting takes place in Error()
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the formatted message. Repeated leading parts of the message
// are collapsed, so wrapping an error with the same prefix does not produce
// a stuttering message.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	// de-duplicate error message parts
	p := strings.Split(s, ": ")
	d := make([]string, 0, len(p))
	for i := range p {
		if i > 0 && p[i] == p[i-1] {
			continue
		}
		d = append(d, p[i])
	}

	return strings.Join(d, ": ")
}

// Unwrap returns the errors in the values list.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error created with the specific pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has checks if a curated error with the pattern is anywhere in the error
// chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, e := range err.(curated).Unwrap() {
		if Has(e, pattern) {
			return true
		}
	}

	return false
}
