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
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hakka/hakka/console"
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/disassembly"
	"github.com/hakka/hakka/hardware"
	"github.com/hakka/hakka/hardware/memory"
	"github.com/hakka/hakka/logger"
	"github.com/hakka/hakka/paths"
	"github.com/hakka/hakka/prefs"
	"github.com/hakka/hakka/programloader"
	"github.com/hakka/hakka/ship"
	"github.com/zyedidia/generic/mapset"
)

// List of valid keywords. Keywords are not case sensitive.
const (
	KeywordHelp    = "HELP"
	KeywordExit    = "EXIT"
	KeywordQuit    = "QUIT"
	KeywordList    = "LIST"
	KeywordMonitor = "MONITOR"
	KeywordWatch   = "WATCH"
	KeywordUnwatch = "UNWATCH"
	KeywordMemset  = "MEMSET"
	KeywordMemget  = "MEMGET"
	KeywordRegs    = "REGS"
	KeywordStep    = "STEP"
	KeywordPause   = "PAUSE"
	KeywordResume  = "RESUME"
	KeywordReset   = "RESET"
	KeywordClear   = "CLEAR"
	KeywordHistory = "HISTORY"
	KeywordLog     = "LOG"
	KeywordPrefs   = "PREFS"
	KeywordMemviz  = "MEMVIZ"
	KeywordSave    = "SAVE"
)

// Keywords in the order they are listed by the help command.
var Keywords = []string{
	KeywordHelp, KeywordExit, KeywordQuit, KeywordList, KeywordMonitor,
	KeywordWatch, KeywordUnwatch, KeywordMemset, KeywordMemget, KeywordRegs,
	KeywordStep, KeywordPause, KeywordResume, KeywordReset, KeywordClear,
	KeywordHistory, KeywordLog, KeywordPrefs, KeywordMemviz, KeywordSave,
}

// Sentinal error patterns specific to individual commands.
const (
	MemsetArguments = "Requires 2 arguments. Example: memset 0x00 0x01 to store 0x01 in 0x00."
	NotWatching     = "not watching $%04x"
	NoPreferences   = "no preferences available"
	CommandError    = "%s: %v"
)

// maximum number of instructions the step command will print individually
const maxStepListing = 20

// default values for optional arguments
const (
	defaultMemgetCount = 16
	defaultLogCount    = 10
)

// Processor executes command lines.
type Processor struct {
	machine *hardware.Machine
	loader  programloader.Loader

	// console and prefs are optional
	con *console.Console
	dsk *prefs.Disk

	watches     mapset.Set[uint16]
	monitor     bool
	monitorOut  Output
	monitorLast time.Time

	quit bool
}

// NewProcessor is the preferred method of initialisation for the Processor
// type.
func NewProcessor(m *hardware.Machine, loader programloader.Loader) *Processor {
	return &Processor{
		machine: m,
		loader:  loader,
		watches: mapset.New[uint16](),
	}
}

// AttachConsole gives the clear and history commands something to work with.
func (p *Processor) AttachConsole(con *console.Console) {
	p.con = con
}

// AttachPrefs gives the prefs command something to work with.
func (p *Processor) AttachPrefs(dsk *prefs.Disk) {
	p.dsk = dsk
}

// Quit returns true once the exit or quit command has been processed.
func (p *Processor) Quit() bool {
	return p.quit
}

// Reload the program, reset the machine and put the ship in its starting
// position.
func (p *Processor) Reload() error {
	data, err := p.loader.Load()
	if err != nil {
		return err
	}
	if err := p.machine.Load(data, hardware.DefaultOrigin); err != nil {
		return err
	}
	ship.Initialise(p.machine.Mem)
	return nil
}

// Process a single command line. Results are printed to the Output. Errors
// are printed too, prefixed with "ERR:", and also returned.
func (p *Processor) Process(line string, out Output) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	err := p.dispatch(strings.ToUpper(tokens[0]), tokens[1:], out)
	if err != nil {
		out.Println(fmt.Sprintf("ERR: %v", err))
		logger.Logf("commands", "%s: %v", line, err)
	}

	return err
}

func usage(keyword string) error {
	return curated.Errorf(UsageError, Usage(keyword))
}

func (p *Processor) dispatch(keyword string, args []string, out Output) error {
	switch keyword {
	case KeywordHelp:
		return p.help(args, out)

	case KeywordExit, KeywordQuit:
		p.quit = true

	case KeywordList:
		program, origin := p.machine.Program()
		out.Println("-- Disassembly --")
		for _, e := range disassembly.FromProgram(program, origin) {
			out.Println(e.String())
		}

	case KeywordMonitor:
		p.monitor = !p.monitor
		p.monitorOut = out
		p.monitorLast = time.Time{}
		if p.monitor {
			out.Println("monitor on")
		} else {
			out.Println("monitor off")
		}

	case KeywordWatch:
		if len(args) == 0 {
			w := p.sortedWatches()
			if len(w) == 0 {
				out.Println("no watches")
			}
			for _, a := range w {
				out.Println(fmt.Sprintf("$%04x", a))
			}
			return nil
		}
		for _, s := range args {
			a, err := ParseAddress(s)
			if err != nil {
				return err
			}
			p.watches.Put(a)
			out.Println(fmt.Sprintf("watching $%04x", a))
		}

	case KeywordUnwatch:
		if len(args) != 1 {
			return usage(keyword)
		}
		a, err := ParseAddress(args[0])
		if err != nil {
			return err
		}
		if !p.watches.Has(a) {
			return curated.Errorf(NotWatching, a)
		}
		p.watches.Remove(a)
		out.Println(fmt.Sprintf("stopped watching $%04x", a))

	case KeywordMemset:
		if len(args) < 2 {
			return curated.Errorf(MemsetArguments)
		}
		a, err := ParseAddress(args[0])
		if err != nil {
			return err
		}
		v, err := ParseValue(args[1])
		if err != nil {
			return err
		}
		p.machine.Mem.Poke(a, v)

	case KeywordMemget:
		return p.memget(keyword, args, out)

	case KeywordRegs:
		out.Println(p.machine.CPU.String())

	case KeywordStep:
		return p.step(keyword, args, out)

	case KeywordPause:
		p.machine.Paused = true
		out.Println("paused")

	case KeywordResume:
		p.machine.Paused = false
		out.Println("running")

	case KeywordReset:
		if err := p.Reload(); err != nil {
			return curated.Errorf(CommandError, "reset", err)
		}
		out.Println(fmt.Sprintf("reset (%s)", p.loader.ShortName()))

	case KeywordClear:
		if p.con != nil {
			p.con.Clear()
		}

	case KeywordHistory:
		if p.con == nil {
			return nil
		}
		for i, h := range p.con.History() {
			out.Println(fmt.Sprintf("%3d  %s", i+1, h))
		}

	case KeywordLog:
		n := defaultLogCount
		if len(args) > 1 {
			return usage(keyword)
		}
		if len(args) == 1 {
			var err error
			if n, err = parseCount(args[0]); err != nil {
				return err
			}
		}
		lw := &lineWriter{out: out}
		logger.Tail(lw, n)
		lw.flush()

	case KeywordPrefs:
		return p.prefs(args, out)

	case KeywordMemviz:
		if len(args) > 1 {
			return usage(keyword)
		}
		var fn string
		if len(args) == 1 {
			fn = args[0]
		}
		fn, err := p.memviz(fn)
		if err != nil {
			return err
		}
		out.Println(fmt.Sprintf("memviz written to %s", fn))

	case KeywordSave:
		fn, err := p.save()
		if err != nil {
			return err
		}
		out.Println(fmt.Sprintf("memory saved to %s", fn))

	default:
		return curated.Errorf(UnknownCommand, strings.ToLower(keyword))
	}

	return nil
}

func (p *Processor) help(args []string, out Output) error {
	if len(args) == 0 {
		for _, k := range Keywords {
			out.Println(fmt.Sprintf("%-8s %s", strings.ToLower(k), Help(k)))
		}
		return nil
	}

	k := strings.ToUpper(args[0])
	h := Help(k)
	if h == "" {
		return curated.Errorf(UnknownCommand, args[0])
	}
	out.Println(fmt.Sprintf("%s: %s", strings.ToLower(k), h))
	if u := Usage(k); u != strings.ToLower(k) {
		out.Println(fmt.Sprintf("usage: %s", u))
	}

	return nil
}

func (p *Processor) memget(keyword string, args []string, out Output) error {
	if len(args) < 1 || len(args) > 2 {
		return usage(keyword)
	}

	a, err := ParseAddress(args[0])
	if err != nil {
		return err
	}

	n := defaultMemgetCount
	if len(args) == 2 {
		if n, err = parseCount(args[1]); err != nil {
			return err
		}
	}

	end := int(a) + n
	if end > memory.Size {
		end = memory.Size
	}

	var s strings.Builder
	for i := int(a); i < end; i++ {
		if (i-int(a))%16 == 0 {
			if s.Len() > 0 {
				out.Println(s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("$%04x:", i))
		}
		s.WriteString(fmt.Sprintf(" %02x", p.machine.Mem.Peek(uint16(i))))
	}
	if s.Len() > 0 {
		out.Println(s.String())
	}

	return nil
}

func (p *Processor) step(keyword string, args []string, out Output) error {
	n := 1
	if len(args) > 1 {
		return usage(keyword)
	}
	if len(args) == 1 {
		var err error
		if n, err = parseCount(args[0]); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		r, err := p.machine.Step()
		if err != nil {
			return curated.Errorf(CommandError, "step", err)
		}
		if n <= maxStepListing || i == n-1 {
			dsm := disassembly.Disassemble(p.machine.Mem, r.Address, int(r.Address)+1)
			if len(dsm) > 0 {
				out.Println(dsm[0].String())
			}
		}
	}

	out.Println(p.machine.CPU.String())

	return nil
}

func (p *Processor) prefs(args []string, out Output) error {
	if p.dsk == nil {
		return curated.Errorf(NoPreferences)
	}

	if len(args) == 0 {
		for _, k := range p.dsk.Keys() {
			v, _ := p.dsk.Lookup(k)
			out.Println(fmt.Sprintf("%s :: %s", k, v))
		}
		return nil
	}

	key := args[0]
	if _, ok := p.dsk.Lookup(key); !ok {
		return curated.Errorf(InvalidArgument, "preference", key)
	}

	if len(args) > 1 {
		if err := p.dsk.SetString(key, strings.Join(args[1:], " ")); err != nil {
			return curated.Errorf(CommandError, "prefs", err)
		}
		if err := p.dsk.Save(); err != nil {
			return curated.Errorf(CommandError, "prefs", err)
		}
	}

	v, _ := p.dsk.Lookup(key)
	out.Println(fmt.Sprintf("%s :: %s", key, v))

	return nil
}

func (p *Processor) save() (string, error) {
	fn := paths.ResourcePath(paths.UniqueFilename("memory", p.loader.ShortName(), "bin"))

	data := make([]byte, memory.Size)
	for i := range data {
		data[i] = p.machine.Mem.Peek(uint16(i))
	}

	if err := os.MkdirAll(filepath.Dir(fn), 0o700); err != nil {
		return "", curated.Errorf(CommandError, "save", err)
	}
	if err := os.WriteFile(fn, data, 0o600); err != nil {
		return "", curated.Errorf(CommandError, "save", err)
	}

	return fn, nil
}
