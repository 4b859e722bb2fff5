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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/osd/logger"
)

// Profile specifies which profiles are to be generated by RunProfiler()
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// ParseProfileString converts a comma separated list of profile names to a
// Profile value. Valid names are CPU, MEM and NONE.
func ParseProfileString(s string) (Profile, error) {
	var p Profile
	for _, f := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(f)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile type (%s)", f)
		}
	}
	return p, nil
}

// RunProfiler runs the function and generates the specified profiles. The
// profile files are named after the prefix, eg. <prefix>_cpu.profile
func RunProfiler(profile Profile, prefix string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		fn := fmt.Sprintf("%s_cpu.profile", prefix)
		f, err := os.Create(fn)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
		logger.Logf(logger.Allow, "performance", "cpu profile: %s", fn)
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		fn := fmt.Sprintf("%s_mem.profile", prefix)
		f, err := os.Create(fn)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		logger.Logf(logger.Allow, "performance", "mem profile: %s", fn)
	}

	return nil
}
