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
	"fmt"
	"sort"
	"strings"
	"time"
)

// the fixed range of memory printed by the monitor
const (
	monitorFrom = 0x00
	monitorTo   = 0x0a
)

// MonitorPeriod is the time between monitor reports.
const MonitorPeriod = time.Second

// returns the watched addresses in ascending order
func (p *Processor) sortedWatches() []uint16 {
	w := make([]uint16, 0, p.watches.Size())
	p.watches.Each(func(a uint16) {
		w = append(w, a)
	})
	sort.Slice(w, func(i, j int) bool { return w[i] < w[j] })
	return w
}

func (p *Processor) monitorReport() string {
	var s strings.Builder
	for a := uint16(monitorFrom); a < monitorTo; a++ {
		s.WriteString(fmt.Sprintf("%02X ", p.machine.Mem.Peek(a)))
	}
	for _, a := range p.sortedWatches() {
		s.WriteString(fmt.Sprintf(" $%04x=%02X", a, p.machine.Mem.Peek(a)))
	}
	return strings.TrimRight(s.String(), " ")
}

// Tick should be called once per frame. When the monitor is on the report is
// printed once every MonitorPeriod.
func (p *Processor) Tick(now time.Time) {
	if !p.monitor {
		return
	}
	if now.Sub(p.monitorLast) < MonitorPeriod {
		return
	}
	p.monitorLast = now
	p.monitorOut.Println(p.monitorReport())
}
