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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/hakka/hakka/commands"
	"github.com/hakka/hakka/console"
	"github.com/hakka/hakka/disassembly"
	"github.com/hakka/hakka/gui/sdlplay"
	"github.com/hakka/hakka/hardware"
	"github.com/hakka/hakka/logger"
	"github.com/hakka/hakka/modalflag"
	"github.com/hakka/hakka/paths"
	"github.com/hakka/hakka/performance"
	"github.com/hakka/hakka/performance/limiter"
	"github.com/hakka/hakka/prefs"
	"github.com/hakka/hakka/programloader"
	"github.com/hakka/hakka/ship"
	"github.com/hakka/hakka/statsview"
	"github.com/hakka/hakka/terminal"
	"github.com/hakka/hakka/terminal/colorterm"
	"github.com/hakka/hakka/terminal/plainterm"
	"github.com/hakka/hakka/version"
)

func init() {
	// SDL calls must all be made from the main thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("the built-in program is disassembled if no file is given")

	origin := md.AddInt("origin", hardware.DefaultOrigin, "address of the first byte of the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	data, err := programloader.NewLoader(filename).Load()
	if err != nil {
		return err
	}

	return disassembly.Write(md.Output, disassembly.FromProgram(data, uint16(*origin)))
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	program := md.AddString("program", "", "program file or URL (default is the built-in program)")
	watch := md.AddBool("watch", false, "reload the program file when it changes")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.DefaultAddress))
	term := md.AddString("terminal", "auto", "stdin terminal: auto, plain, color, none")
	prefsArg := md.AddString("prefs", "", "preference overrides for this session. eg. machine.steps::10")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddBool("profile", false, "write cpu and memory profiles on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	if len(md.RemainingArgs()) > 0 {
		if *program != "" {
			return fmt.Errorf("program given twice in %s mode", md)
		}
		*program = md.GetArg(0)
	}

	a, err := newApp(*program, *term)
	if err != nil {
		return err
	}
	defer a.destroy()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *stats {
		statsview.Launch(ctx, os.Stdout, statsview.DefaultAddress)
	}

	if *watch {
		a.reloads, err = a.loader.Watch(ctx)
		if err != nil {
			return err
		}
	}

	if a.term != nil {
		a.lines = terminal.Run(ctx, a.term)
	}

	if *profile {
		return performance.Profile("hakka.cpu.profile", "hakka.mem.profile", func() error {
			return a.loop(ctx)
		})
	}

	return a.loop(ctx)
}

// app ties together the machine, the console and the SDL front end.
type app struct {
	dsk *prefs.Disk

	machine *hardware.Machine
	hwPrefs *hardware.Preferences

	loader programloader.Loader
	proc   *commands.Processor

	con *console.Console
	scr *sdlplay.SdlPlay
	sh  ship.Ship

	term  terminal.Terminal
	lines <-chan string

	reloads <-chan struct{}

	quit bool
}

func newApp(program string, termType string) (*app, error) {
	a := &app{
		machine: hardware.NewMachine(),
		loader:  programloader.NewLoader(program),
	}

	var err error

	a.dsk, err = prefs.NewDisk(paths.ResourcePath("preferences"))
	if err != nil {
		return nil, err
	}

	conPrefs, err := console.NewPreferences(a.dsk)
	if err != nil {
		return nil, err
	}
	a.hwPrefs, err = hardware.NewPreferences(a.dsk)
	if err != nil {
		return nil, err
	}
	scrPrefs, err := sdlplay.NewPreferences(a.dsk)
	if err != nil {
		return nil, err
	}
	if err := a.dsk.Load(true); err != nil {
		logger.Log("hakka", err)
	}

	a.con = console.NewConsole(conPrefs)

	a.proc = commands.NewProcessor(a.machine, a.loader)
	a.proc.AttachConsole(a.con)
	a.proc.AttachPrefs(a.dsk)

	if err := a.proc.Reload(); err != nil {
		return nil, err
	}
	logger.Logf("hakka", "program: %s", a.loader.ShortName())

	a.term, err = newTerminal(termType)
	if err != nil {
		return nil, err
	}

	a.scr, err = sdlplay.NewSdlPlay(a.con, scrPrefs)
	if err != nil {
		if a.term != nil {
			a.term.CleanUp()
		}
		return nil, err
	}

	a.con.Println(fmt.Sprintf("%s. type HELP for a list of commands", version.String()))

	return a, nil
}

func newTerminal(termType string) (terminal.Terminal, error) {
	var term terminal.Terminal

	switch strings.ToLower(termType) {
	case "none":
		return nil, nil
	case "plain":
		term = plainterm.NewPlainTerminal(nil, nil)
	case "color":
		term = colorterm.NewColorTerminal()
	case "auto":
		pt := plainterm.NewPlainTerminal(nil, nil)
		if err := pt.Initialise(); err != nil {
			return nil, err
		}
		if !pt.IsInteractive() {
			return pt, nil
		}
		pt.CleanUp()
		term = colorterm.NewColorTerminal()
	default:
		return nil, fmt.Errorf("unknown terminal type: %s", termType)
	}

	if err := term.Initialise(); err != nil {
		return nil, err
	}

	return term, nil
}

func (a *app) destroy() {
	if a.term != nil {
		a.term.CleanUp()
	}
	a.scr.Destroy()
}

// Quit implements the sdlplay.Controller interface.
func (a *app) Quit() {
	a.quit = true
}

// ShipInput implements the sdlplay.Controller interface.
func (a *app) ShipInput(in ship.Input, down bool) {
	a.sh.SetInput(a.machine.Mem, in, down)
}

func (a *app) loop(ctx context.Context) error {
	lim := limiter.NewFPSLimiter(ctx, a.hwPrefs.FPS.Get().(int))
	a.hwPrefs.FPS.SetHookPost(func(v prefs.Value) error {
		lim.SetLimit(v.(int))
		return nil
	})

	meter := performance.NewMeter(time.Now())
	lastMeasure := time.Now()

	for !a.quit && !a.proc.Quit() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		a.scr.Service(a)

		for {
			cmd, ok := a.con.TryTakeCommittedCommand()
			if !ok {
				break
			}
			a.scr.PlayCommit()
			_ = a.proc.Process(cmd, a.con)
		}

		a.serviceChannels()

		if err := a.machine.Run(a.hwPrefs.Steps.Get().(int)); err != nil {
			logger.Log("hakka", err)
			a.con.Println(fmt.Sprintf("ERR: %v", err))
			a.machine.Paused = true
		}

		now := time.Now()
		a.proc.Tick(now)
		a.sh.Update(a.machine.Mem)

		if err := a.scr.Render(a.sh, a.machine.RenderingEnabled()); err != nil {
			return err
		}

		meter.Frame()
		if now.Sub(lastMeasure) >= 10*time.Second {
			fps, acc := meter.Measure(now, a.hwPrefs.FPS.Get().(int))
			logger.Logf("hakka", "%.2f fps (%.1f%%)", fps, acc)
			lastMeasure = now
		}

		lim.Wait()
	}

	return nil
}

// handle lines from the stdin terminal and program reload notifications
// without blocking
func (a *app) serviceChannels() {
	for {
		select {
		case line, ok := <-a.lines:
			if !ok {
				a.lines = nil
				continue
			}
			_ = a.proc.Process(line, terminal.Output{Term: a.term})
			continue

		case _, ok := <-a.reloads:
			if !ok {
				a.reloads = nil
				continue
			}
			if err := a.proc.Reload(); err != nil {
				a.con.Println(fmt.Sprintf("ERR: %v", err))
			} else {
				a.con.Println(fmt.Sprintf("reloaded %s", a.loader.ShortName()))
			}
			continue

		default:
		}
		return
	}
}
