// This file is part of Hakka.
//
// Hakka is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hakka is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hakka.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/hakka/hakka/curated"
)

// ProfileError is the pattern for errors created by Profile().
const ProfileError = "performance: %v"

// Profile runs the function, writing a CPU profile to cpuFile while it
// runs and a heap profile to memFile once it has finished. Empty filenames
// disable the respective profile.
func Profile(cpuFile string, memFile string, run func() error) error {
	if cpuFile != "" {
		f, err := os.Create(cpuFile)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if memFile != "" {
		f, err := os.Create(memFile)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	return nil
}
