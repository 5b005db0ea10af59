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

package modalflag_test

import (
	"testing"

	"github.com/hakka/hakka/modalflag"
	"github.com/hakka/hakka/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestFlagsAndArgs(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-watch", "-program", "ship.bin", "1", "2"})
	watch := md.AddBool("watch", false, "watch the program file")
	program := md.AddString("program", "", "program file")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *watch)
	test.ExpectEquality(t, *program, "ship.bin")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")

	var visited []string
	md.Visit(func(f string) { visited = append(visited, f) })
	test.ExpectEquality(t, len(visited), 2)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"disasm", "-origin", "4096", "prog.bin"})
	md.AddSubModes("RUN", "DISASM", "VERSION")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	origin := md.AddInt("origin", 0, "origin")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *origin, 4096)
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
	test.ExpectEquality(t, md.Path(), "DISASM")

	// unrecognised argument selects the default mode and is left in place
	md.NewArgs([]string{"prog.bin"})
	md.AddSubModes("RUN", "DISASM")
	_, _ = md.Parse()
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("a", "b")
	md.AdditionalHelp("more")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n" +
		"\n" +
		"more\n"

	test.ExpectEquality(t, tw.String(), expectedHelp)
}
