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

package commands

import (
	"os"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/hardware/cpu"
	"github.com/hakka/hakka/paths"
	"github.com/hakka/hakka/ship"
)

// the part of the machine state included in a memviz graph. the CPU is not
// used directly because it refers to the entire 64k of memory
type vizState struct {
	Program  string
	PC       uint16
	A        uint8
	X        uint8
	Y        uint8
	SP       uint8
	Status   cpu.StatusRegister
	Last     *cpu.Result
	Ship     *ship.Ship
	ZeroPage []uint8
	Watches  []uint16
}

func (p *Processor) memviz(filename string) (string, error) {
	if filename == "" {
		filename = paths.ResourcePath(paths.UniqueFilename("memviz", p.loader.ShortName(), "dot"))
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o700); err != nil {
		return "", curated.Errorf("memviz: %v", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	mc := p.machine.CPU
	last := mc.LastResult

	var sh ship.Ship
	sh.Update(p.machine.Mem)

	st := &vizState{
		Program: p.loader.ShortName(),
		PC:      mc.PC,
		A:       mc.A,
		X:       mc.X,
		Y:       mc.Y,
		SP:      mc.SP,
		Status:  mc.Status,
		Last:    &last,
		Ship:    &sh,
		Watches: p.sortedWatches(),
	}
	for a := uint16(0); a < 0x10; a++ {
		st.ZeroPage = append(st.ZeroPage, p.machine.Mem.Peek(a))
	}

	memviz.Map(f, st)

	return filename, nil
}
