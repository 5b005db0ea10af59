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

// Package instructions defines the documented instructions of the 6502. The
// Definitions table is indexed by opcode. Undocumented opcodes have a nil
// entry.
package instructions

import "fmt"

// AddressingMode describes how the operand of an instruction is found.
type AddressingMode int

// List of valid AddressingMode values.
const (
	Implied AddressingMode = iota
	Immediate
	Relative // branch instructions only

	Absolute
	ZeroPage
	Indirect // JMP only

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX
	AbsoluteIndexedY

	ZeroPageIndexedX
	ZeroPageIndexedY
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes taken by an instruction using the
// addressing mode, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 2
}

// Category is a broad description of what an instruction does.
type Category int

// List of valid Category values.
const (
	Read Category = iota
	Write
	Modify

	// instructions which change the program counter
	Flow
	Subroutine
	Interrupt
)

func (c Category) String() string {
	switch c {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown category"
}

// Definition describes a single opcode.
type Definition struct {
	OpCode         uint8
	Operator       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode

	// an extra cycle is used when indexing crosses a page boundary
	PageSensitive bool

	Category Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t category=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Category)
}

// IsBranch returns true if the instruction is a conditional branch.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Category == Flow
}
