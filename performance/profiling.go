// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/gopherchip8/curated"
)

// RunProfiler runs the supplied function, optionally wrapped by the CPU
// profiler and followed by a heap profile. profile file names are built
// from the tag argument.
func RunProfiler(profile bool, tag string, run func() error) error {
	if !profile {
		return run()
	}

	err := cpuProfile(fmt.Sprintf("%s_cpu.profile", tag), run)
	if err != nil {
		return err
	}

	return memProfile(fmt.Sprintf("%s_mem.profile", tag))
}

func cpuProfile(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

func memProfile(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer f.Close()

	// a garbage collection cycle gives a more stable heap picture
	runtime.GC()

	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}

	return nil
}
