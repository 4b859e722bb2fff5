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

//go:build !windows

package dynlib_test

import (
	"testing"

	"github.com/jetsetilly/osd/dynlib"
	"github.com/jetsetilly/osd/test"
)

func TestRestrictedLoaderUnusable(t *testing.T) {
	l := dynlib.NewRestrictedLoader()
	test.ExpectFailure(t, l.Usable())

	mod := dynlib.OpenWith(l, []string{"libm.so.6"})
	defer mod.Close()
	_, ok := mod.Symbol("cos")
	test.ExpectFailure(t, ok)
	_, ok = mod.Bound()
	test.ExpectFailure(t, ok)
}
