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

package disassembly

import (
	"fmt"
	"io"

	"github.com/hakka/hakka/hardware/cpu"
	"github.com/hakka/hakka/hardware/cpu/instructions"
)

// Peeker is the memory being disassembled.
type Peeker interface {
	Peek(address uint16) uint8
}

// Entry is a single disassembled instruction.
type Entry struct {
	Result cpu.Result

	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s  %-8s  %s", e.Address, e.Bytecode, e.Operator)
	}
	return fmt.Sprintf("%s  %-8s  %s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
}

// program is a Peeker for a program that has not been loaded into memory.
// addresses outside of the program read as zero
type program struct {
	data   []uint8
	origin uint16
}

func (p program) Peek(address uint16) uint8 {
	i := int(address) - int(p.origin)
	if i < 0 || i >= len(p.data) {
		return 0
	}
	return p.data[i]
}

// FromProgram disassembles a program as if it were loaded at origin.
func FromProgram(data []uint8, origin uint16) []Entry {
	return Disassemble(program{data: data, origin: origin}, origin, int(origin)+len(data))
}

// Disassemble memory from the address up to, but not including, the end
// address. The end is an int so that the top of memory can be included.
func Disassemble(mem Peeker, from uint16, end int) []Entry {
	var entries []Entry

	for a := int(from); a < end && a <= 0xffff; {
		e := decode(mem, uint16(a))
		entries = append(entries, e)
		if e.Result.Defn == nil {
			a++
		} else {
			a += e.Result.Defn.Bytes
		}
	}

	return entries
}

func decode(mem Peeker, address uint16) Entry {
	opcode := mem.Peek(address)
	defn := instructions.Definitions[opcode]

	e := Entry{
		Result:  cpu.Result{Address: address, Defn: defn},
		Address: fmt.Sprintf("$%04x", address),
	}

	if defn == nil {
		e.Operator = "???"
		e.Bytecode = fmt.Sprintf("%02x", opcode)
		return e
	}

	e.Operator = defn.Operator

	switch defn.Bytes {
	case 1:
		e.Bytecode = fmt.Sprintf("%02x", opcode)
	case 2:
		lo := mem.Peek(address + 1)
		e.Result.InstructionData = uint16(lo)
		e.Bytecode = fmt.Sprintf("%02x %02x", opcode, lo)
	case 3:
		lo := mem.Peek(address + 1)
		hi := mem.Peek(address + 2)
		e.Result.InstructionData = uint16(hi)<<8 | uint16(lo)
		e.Bytecode = fmt.Sprintf("%02x %02x %02x", opcode, lo, hi)
	}

	e.Operand = operand(e.Result)

	return e
}

func operand(r cpu.Result) string {
	d := r.InstructionData

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", d)
	case instructions.Relative:
		// branch destination rather than the raw offset
		dest := r.Address + 2 + uint16(int8(uint8(d)))
		return fmt.Sprintf("$%04x", dest)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", d)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", d)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", d)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", d)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", d)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", d)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", d)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", d)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", d)
	}

	return ""
}

// Write entries to the io.Writer, one per line.
func Write(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := io.WriteString(w, e.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
