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

package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hakka/hakka/commands"
	"github.com/hakka/hakka/console"
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/hardware"
	"github.com/hakka/hakka/logger"
	"github.com/hakka/hakka/prefs"
	"github.com/hakka/hakka/programloader"
	"github.com/hakka/hakka/ship"
	"github.com/hakka/hakka/test"
)

type output struct {
	lines []string
}

func (o *output) Println(text string) {
	o.lines = append(o.lines, text)
}

func (o *output) last() string {
	if len(o.lines) == 0 {
		return ""
	}
	return o.lines[len(o.lines)-1]
}

func newProcessor(t *testing.T) (*commands.Processor, *hardware.Machine) {
	t.Helper()
	m := hardware.NewMachine()
	p := commands.NewProcessor(m, programloader.NewLoader(""))
	test.DemandSuccess(t, p.Reload())
	return p, m
}

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"0x00c0", "$c0", "#c0", "c0", "00C0"} {
		a, err := commands.ParseAddress(s)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, a, uint16(0xc0))
	}

	_, err := commands.ParseAddress("10000")
	test.ExpectSuccess(t, curated.Is(err, commands.InvalidArgument))
	_, err = commands.ParseAddress("xyz")
	test.ExpectFailure(t, err)

	v, err := commands.ParseValue("0xff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))
	_, err = commands.ParseValue("100")
	test.ExpectFailure(t, err)
}

func TestReload(t *testing.T) {
	_, m := newProcessor(t)
	test.ExpectEquality(t, m.CPU.PC, uint16(hardware.DefaultOrigin))
	test.ExpectEquality(t, m.Mem.Peek(ship.AddrXLo), uint8(0x80))
	test.ExpectEquality(t, m.Mem.Peek(ship.AddrYLo), uint8(0x19))
}

func TestEmptyAndUnknown(t *testing.T) {
	p, _ := newProcessor(t)
	out := &output{}

	test.ExpectSuccess(t, p.Process("   ", out))
	test.ExpectEquality(t, len(out.lines), 0)

	err := p.Process("frobnicate 1 2", out)
	test.ExpectSuccess(t, curated.Is(err, commands.UnknownCommand))
	test.ExpectEquality(t, out.last(), "ERR: unknown command: frobnicate")
}

func TestExit(t *testing.T) {
	p, _ := newProcessor(t)
	test.ExpectFailure(t, p.Quit())
	test.ExpectSuccess(t, p.Process("EXIT", &output{}))
	test.ExpectSuccess(t, p.Quit())

	p, _ = newProcessor(t)
	test.ExpectSuccess(t, p.Process("quit", &output{}))
	test.ExpectSuccess(t, p.Quit())
}

func TestMemset(t *testing.T) {
	p, m := newProcessor(t)
	out := &output{}

	test.ExpectSuccess(t, p.Process("memset 0x10 0x2a", out))
	test.ExpectEquality(t, m.Mem.Peek(0x10), uint8(0x2a))

	test.ExpectSuccess(t, p.Process("memset $c0ff 7", out))
	test.ExpectEquality(t, m.Mem.Peek(0xc0ff), uint8(0x07))

	err := p.Process("memset 0x10", out)
	test.ExpectSuccess(t, curated.Is(err, commands.MemsetArguments))
	test.ExpectEquality(t, out.last(), "ERR: Requires 2 arguments. Example: memset 0x00 0x01 to store 0x01 in 0x00.")

	err = p.Process("memset 0x10 0x100", out)
	test.ExpectSuccess(t, curated.Is(err, commands.InvalidArgument))
	test.ExpectEquality(t, m.Mem.Peek(0x10), uint8(0x2a))
}

func TestMemget(t *testing.T) {
	p, m := newProcessor(t)
	out := &output{}

	for i := uint16(0); i < 20; i++ {
		m.Mem.Poke(0x1000+i, uint8(i))
	}

	test.ExpectSuccess(t, p.Process("memget 1000 20", out))
	test.DemandEquality(t, len(out.lines), 2)
	test.ExpectEquality(t, out.lines[0], "$1000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f")
	test.ExpectEquality(t, out.lines[1], "$1010: 10 11 12 13")

	// reading stops at the end of memory
	out = &output{}
	test.ExpectSuccess(t, p.Process("memget ffff", out))
	test.ExpectEquality(t, len(out.lines), 1)

	err := p.Process("memget", out)
	test.ExpectSuccess(t, curated.Is(err, commands.UsageError))
	test.ExpectEquality(t, out.last(), "ERR: usage: memget <address> [count]")
}

func TestList(t *testing.T) {
	p, _ := newProcessor(t)
	out := &output{}

	test.ExpectSuccess(t, p.Process("list", out))
	test.DemandSuccess(t, len(out.lines) > 1)
	test.ExpectEquality(t, out.lines[0], "-- Disassembly --")
	test.ExpectEquality(t, out.lines[1], "$c000  a5 04     LDA $04")
}

func TestMonitor(t *testing.T) {
	p, m := newProcessor(t)
	out := &output{}

	now := time.Now()

	// nothing is printed while the monitor is off
	p.Tick(now)
	test.ExpectEquality(t, len(out.lines), 0)

	test.ExpectSuccess(t, p.Process("monitor", out))
	test.ExpectEquality(t, out.last(), "monitor on")

	p.Tick(now)
	test.ExpectEquality(t, out.last(), "00 00 80 00 00 19 00 00 00 00")

	// not yet time for another report
	n := len(out.lines)
	p.Tick(now.Add(500 * time.Millisecond))
	test.ExpectEquality(t, len(out.lines), n)

	m.Mem.Poke(0x0200, 0xab)
	test.ExpectSuccess(t, p.Process("watch $0200 0x10", out))
	p.Tick(now.Add(commands.MonitorPeriod))
	test.ExpectEquality(t, out.last(), "00 00 80 00 00 19 00 00 00 00 $0010=00 $0200=AB")

	test.ExpectSuccess(t, p.Process("unwatch 0x10", out))
	err := p.Process("unwatch 0x10", out)
	test.ExpectSuccess(t, curated.Is(err, commands.NotWatching))

	out = &output{}
	test.ExpectSuccess(t, p.Process("watch", out))
	test.ExpectEquality(t, out.last(), "$0200")

	test.ExpectSuccess(t, p.Process("monitor", out))
	test.ExpectEquality(t, out.last(), "monitor off")
	n = len(out.lines)
	p.Tick(now.Add(time.Hour))
	test.ExpectEquality(t, len(out.lines), n)
}

func TestStepPauseResume(t *testing.T) {
	p, m := newProcessor(t)
	out := &output{}

	test.ExpectSuccess(t, p.Process("pause", out))
	test.ExpectSuccess(t, m.Paused)

	// a paused machine does not run but can be stepped
	test.ExpectSuccess(t, m.Run(10))
	test.ExpectEquality(t, m.CPU.PC, uint16(0xc000))

	test.ExpectSuccess(t, p.Process("step", out))
	test.DemandEquality(t, len(out.lines), 3)
	test.ExpectEquality(t, out.lines[1], "$c000  a5 04     LDA $04")
	test.ExpectEquality(t, m.CPU.PC, uint16(0xc002))

	test.ExpectFailure(t, p.Process("step x", out))
	test.ExpectFailure(t, p.Process("step -1", out))

	test.ExpectSuccess(t, p.Process("resume", out))
	test.ExpectFailure(t, m.Paused)

	out = &output{}
	test.ExpectSuccess(t, p.Process("regs", out))
	test.ExpectSuccess(t, strings.HasPrefix(out.last(), "PC=c002"))
}

func TestResetCommand(t *testing.T) {
	p, m := newProcessor(t)
	out := &output{}

	m.Mem.Poke(ship.AddrXLo, 0x00)
	test.ExpectSuccess(t, m.Run(5))
	test.ExpectSuccess(t, p.Process("reset", out))
	test.ExpectEquality(t, out.last(), "reset (built-in)")
	test.ExpectEquality(t, m.Mem.Peek(ship.AddrXLo), uint8(0x80))
	test.ExpectEquality(t, m.CPU.PC, uint16(0xc000))
}

func TestConsoleCommands(t *testing.T) {
	p, _ := newProcessor(t)
	con := console.NewConsole(nil)
	p.AttachConsole(con)

	con.Println("hello")
	test.ExpectSuccess(t, p.Process("clear", con))
	test.ExpectEquality(t, con.Scrollback().Len(), 0)

	con.ToggleVisibility(0)
	con.HandleTextInput("regs", 1000)
	con.Commit()
	con.HandleTextInput("list", 2000)
	con.Commit()

	out := &output{}
	test.ExpectSuccess(t, p.Process("history", out))
	test.DemandEquality(t, len(out.lines), 2)
	test.ExpectEquality(t, out.lines[0], "  1  regs")
	test.ExpectEquality(t, out.lines[1], "  2  list")
}

func TestHelp(t *testing.T) {
	p, _ := newProcessor(t)
	out := &output{}

	test.ExpectSuccess(t, p.Process("help", out))
	test.ExpectEquality(t, len(out.lines), len(commands.Keywords))
	for _, k := range commands.Keywords {
		test.ExpectInequality(t, commands.Help(k), "")
	}

	out = &output{}
	test.ExpectSuccess(t, p.Process("help memget", out))
	test.DemandEquality(t, len(out.lines), 2)
	test.ExpectEquality(t, out.lines[1], "usage: memget <address> [count]")

	out = &output{}
	test.ExpectSuccess(t, p.Process("help regs", out))
	test.ExpectEquality(t, len(out.lines), 1)

	test.ExpectFailure(t, p.Process("help nothing", out))
	test.ExpectEquality(t, commands.Usage("regs"), "regs")
}

func TestLog(t *testing.T) {
	p, _ := newProcessor(t)
	out := &output{}

	logger.Clear()
	logger.Log("test", "first")
	logger.Log("test", "second")

	test.ExpectSuccess(t, p.Process("log 1", out))
	test.DemandEquality(t, len(out.lines), 1)
	test.ExpectSuccess(t, strings.Contains(out.lines[0], "second"))

	test.ExpectFailure(t, p.Process("log many", out))
}

func TestPrefs(t *testing.T) {
	p, _ := newProcessor(t)
	out := &output{}

	err := p.Process("prefs", out)
	test.ExpectSuccess(t, curated.Is(err, commands.NoPreferences))

	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	mp, err := hardware.NewPreferences(dsk)
	test.DemandSuccess(t, err)
	p.AttachPrefs(dsk)

	out = &output{}
	test.ExpectSuccess(t, p.Process("prefs", out))
	test.DemandEquality(t, len(out.lines), 2)
	test.ExpectEquality(t, out.lines[0], "machine.fps :: 60")

	test.ExpectSuccess(t, p.Process("prefs machine.steps 50", out))
	test.ExpectEquality(t, out.last(), "machine.steps :: 50")
	test.ExpectEquality(t, mp.Steps.Get().(int), 50)

	err = p.Process("prefs machine.steps lots", out)
	test.ExpectSuccess(t, curated.Is(err, commands.CommandError))

	err = p.Process("prefs no.such.key", out)
	test.ExpectSuccess(t, curated.Is(err, commands.InvalidArgument))
}

func TestMemviz(t *testing.T) {
	p, _ := newProcessor(t)
	out := &output{}

	fn := filepath.Join(t.TempDir(), "state.dot")
	test.ExpectSuccess(t, p.Process("memviz "+fn, out))
	test.ExpectEquality(t, out.last(), "memviz written to "+fn)

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}
