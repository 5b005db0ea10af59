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

package cpu

import (
	"fmt"

	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/hardware/cpu/instructions"
)

// Error patterns returned by the CPU.
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
	MemoryError              = "cpu: %v"
)

// Vectors in memory.
const (
	NMIVector   = 0xfffa
	ResetVector = 0xfffc
	IRQVector   = 0xfffe
)

// Memory is the address space as seen by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// CPU implements the 6502 found in the machine.
type CPU struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status StatusRegister

	mem Memory

	// the result of the most recent call to ExecuteInstruction()
	LastResult Result

	// total number of cycles executed since the last reset
	Cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// should be reset with Reset() before use.
func NewCPU(mem Memory) *CPU {
	return &CPU{mem: mem}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%s", mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Reset the CPU. The program counter is loaded from the reset vector.
func (mc *CPU) Reset() error {
	mc.A = 0
	mc.X = 0
	mc.Y = 0
	mc.SP = 0xfd
	mc.Status = StatusRegister{InterruptDisable: true}
	mc.LastResult = Result{}
	mc.Cycles = 0

	pc, err := mc.read16(ResetVector)
	if err != nil {
		return err
	}
	mc.PC = pc

	return nil
}

func (mc *CPU) read(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, curated.Errorf(MemoryError, err)
	}
	return v, nil
}

func (mc *CPU) write(address uint16, data uint8) error {
	if err := mc.mem.Write(address, data); err != nil {
		return curated.Errorf(MemoryError, err)
	}
	return nil
}

func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// read16ZeroPage reads a pointer from the zero page. the high byte wraps
// around to the start of the zero page
func (mc *CPU) read16ZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mc.read(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) push(v uint8) error {
	err := mc.write(0x0100|uint16(mc.SP), v)
	mc.SP--
	return err
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP++
	return mc.read(0x0100 | uint16(mc.SP))
}

func (mc *CPU) push16(v uint16) error {
	if err := mc.push(uint8(v >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(v))
}

func (mc *CPU) pull16() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// resolve returns the effective address for the addressing mode and whether
// a page boundary was crossed by indexing
func (mc *CPU) resolve(mode instructions.AddressingMode, data uint16) (uint16, bool, error) {
	switch mode {
	case instructions.Absolute:
		return data, false, nil

	case instructions.ZeroPage:
		return data & 0xff, false, nil

	case instructions.ZeroPageIndexedX:
		return uint16(uint8(data) + mc.X), false, nil

	case instructions.ZeroPageIndexedY:
		return uint16(uint8(data) + mc.Y), false, nil

	case instructions.AbsoluteIndexedX:
		a := data + uint16(mc.X)
		return a, a&0xff00 != data&0xff00, nil

	case instructions.AbsoluteIndexedY:
		a := data + uint16(mc.Y)
		return a, a&0xff00 != data&0xff00, nil

	case instructions.Indirect:
		// the NMOS 6502 does not carry into the high byte when the pointer
		// sits at the end of a page
		lo, err := mc.read(data)
		if err != nil {
			return 0, false, err
		}
		hi, err := mc.read(data&0xff00 | uint16(uint8(data)+1))
		if err != nil {
			return 0, false, err
		}
		return uint16(hi)<<8 | uint16(lo), false, nil

	case instructions.IndexedIndirect:
		a, err := mc.read16ZeroPage(uint8(data) + mc.X)
		return a, false, err

	case instructions.IndirectIndexed:
		base, err := mc.read16ZeroPage(uint8(data))
		if err != nil {
			return 0, false, err
		}
		a := base + uint16(mc.Y)
		return a, a&0xff00 != base&0xff00, nil
	}

	return 0, false, nil
}

// ExecuteInstruction runs the instruction at the program counter.
func (mc *CPU) ExecuteInstruction() (Result, error) {
	result := Result{Address: mc.PC}

	opcode, err := mc.read(mc.PC)
	if err != nil {
		return result, err
	}

	defn := instructions.Definitions[opcode]
	if defn == nil {
		return result, curated.Errorf(UnimplementedInstruction, opcode, mc.PC)
	}
	result.Defn = defn
	result.Cycles = defn.Cycles

	// operand
	switch defn.Bytes {
	case 2:
		v, err := mc.read(mc.PC + 1)
		if err != nil {
			return result, err
		}
		result.InstructionData = uint16(v)
	case 3:
		v, err := mc.read16(mc.PC + 1)
		if err != nil {
			return result, err
		}
		result.InstructionData = v
	}
	mc.PC += uint16(defn.Bytes)

	var address uint16
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Relative:
	case instructions.Immediate:
		value = uint8(result.InstructionData)
	default:
		address, result.PageFault, err = mc.resolve(defn.AddressingMode, result.InstructionData)
		if err != nil {
			return result, err
		}
		if defn.PageSensitive && result.PageFault {
			result.Cycles++
		}
		if defn.Category == instructions.Read || defn.Category == instructions.Modify {
			value, err = mc.read(address)
			if err != nil {
				return result, err
			}
		}
	}

	// accumulator mode of the shift and rotate instructions
	if defn.Category == instructions.Modify && defn.AddressingMode == instructions.Implied {
		value = mc.A
	}

	err = mc.execute(defn, &result, address, value)
	mc.LastResult = result
	mc.Cycles += uint64(result.Cycles)

	return result, err
}

// store the result of a read-modify-write instruction
func (mc *CPU) store(defn *instructions.Definition, address uint16, v uint8) error {
	if defn.AddressingMode == instructions.Implied {
		mc.A = v
		return nil
	}
	return mc.write(address, v)
}

func (mc *CPU) branch(result *Result, condition bool) {
	if !condition {
		return
	}
	result.BranchSuccess = true
	result.Cycles++
	dest := mc.PC + uint16(int8(uint8(result.InstructionData)))
	if dest&0xff00 != mc.PC&0xff00 {
		result.PageFault = true
		result.Cycles++
	}
	mc.PC = dest
}

func (mc *CPU) compare(r uint8, v uint8) {
	mc.Status.Carry = r >= v
	mc.Status.setNZ(r - v)
}

func (mc *CPU) execute(defn *instructions.Definition, result *Result, address uint16, value uint8) error {
	switch defn.Operator {
	case "NOP":

	case "CLC":
		mc.Status.Carry = false
	case "CLD":
		mc.Status.DecimalMode = false
	case "CLI":
		mc.Status.InterruptDisable = false
	case "CLV":
		mc.Status.Overflow = false
	case "SEC":
		mc.Status.Carry = true
	case "SED":
		mc.Status.DecimalMode = true
	case "SEI":
		mc.Status.InterruptDisable = true

	case "LDA":
		mc.A = value
		mc.Status.setNZ(mc.A)
	case "LDX":
		mc.X = value
		mc.Status.setNZ(mc.X)
	case "LDY":
		mc.Y = value
		mc.Status.setNZ(mc.Y)

	case "STA":
		return mc.write(address, mc.A)
	case "STX":
		return mc.write(address, mc.X)
	case "STY":
		return mc.write(address, mc.Y)

	case "TAX":
		mc.X = mc.A
		mc.Status.setNZ(mc.X)
	case "TAY":
		mc.Y = mc.A
		mc.Status.setNZ(mc.Y)
	case "TSX":
		mc.X = mc.SP
		mc.Status.setNZ(mc.X)
	case "TXA":
		mc.A = mc.X
		mc.Status.setNZ(mc.A)
	case "TXS":
		mc.SP = mc.X
	case "TYA":
		mc.A = mc.Y
		mc.Status.setNZ(mc.A)

	case "INX":
		mc.X++
		mc.Status.setNZ(mc.X)
	case "INY":
		mc.Y++
		mc.Status.setNZ(mc.Y)
	case "DEX":
		mc.X--
		mc.Status.setNZ(mc.X)
	case "DEY":
		mc.Y--
		mc.Status.setNZ(mc.Y)

	case "INC":
		value++
		mc.Status.setNZ(value)
		return mc.write(address, value)
	case "DEC":
		value--
		mc.Status.setNZ(value)
		return mc.write(address, value)

	case "AND":
		mc.A &= value
		mc.Status.setNZ(mc.A)
	case "ORA":
		mc.A |= value
		mc.Status.setNZ(mc.A)
	case "EOR":
		mc.A ^= value
		mc.Status.setNZ(mc.A)

	case "BIT":
		mc.Status.Zero = mc.A&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case "CMP":
		mc.compare(mc.A, value)
	case "CPX":
		mc.compare(mc.X, value)
	case "CPY":
		mc.compare(mc.Y, value)

	case "ADC":
		if mc.Status.DecimalMode {
			mc.addDecimal(value)
		} else {
			mc.addBinary(value)
		}
	case "SBC":
		if mc.Status.DecimalMode {
			mc.subtractDecimal(value)
		} else {
			mc.addBinary(^value)
		}

	case "ASL":
		mc.Status.Carry = value&0x80 == 0x80
		value <<= 1
		mc.Status.setNZ(value)
		return mc.store(defn, address, value)
	case "LSR":
		mc.Status.Carry = value&0x01 == 0x01
		value >>= 1
		mc.Status.setNZ(value)
		return mc.store(defn, address, value)
	case "ROL":
		c := mc.Status.Carry
		mc.Status.Carry = value&0x80 == 0x80
		value <<= 1
		if c {
			value |= 0x01
		}
		mc.Status.setNZ(value)
		return mc.store(defn, address, value)
	case "ROR":
		c := mc.Status.Carry
		mc.Status.Carry = value&0x01 == 0x01
		value >>= 1
		if c {
			value |= 0x80
		}
		mc.Status.setNZ(value)
		return mc.store(defn, address, value)

	case "PHA":
		return mc.push(mc.A)
	case "PHP":
		return mc.push(mc.Status.Value() | breakBit)
	case "PLA":
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.A = v
		mc.Status.setNZ(mc.A)
	case "PLP":
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)
		mc.Status.Break = false

	case "BCC":
		mc.branch(result, !mc.Status.Carry)
	case "BCS":
		mc.branch(result, mc.Status.Carry)
	case "BEQ":
		mc.branch(result, mc.Status.Zero)
	case "BNE":
		mc.branch(result, !mc.Status.Zero)
	case "BMI":
		mc.branch(result, mc.Status.Sign)
	case "BPL":
		mc.branch(result, !mc.Status.Sign)
	case "BVC":
		mc.branch(result, !mc.Status.Overflow)
	case "BVS":
		mc.branch(result, mc.Status.Overflow)

	case "JMP":
		mc.PC = address
	case "JSR":
		if err := mc.push16(mc.PC - 1); err != nil {
			return err
		}
		mc.PC = address
	case "RTS":
		pc, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.PC = pc + 1

	case "BRK":
		// the byte following BRK is skipped on return
		if err := mc.push16(mc.PC + 1); err != nil {
			return err
		}
		if err := mc.push(mc.Status.Value() | breakBit); err != nil {
			return err
		}
		mc.Status.InterruptDisable = true
		pc, err := mc.read16(IRQVector)
		if err != nil {
			return err
		}
		mc.PC = pc
	case "RTI":
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)
		mc.Status.Break = false
		pc, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.PC = pc

	default:
		return curated.Errorf(UnimplementedInstruction, defn.OpCode, result.Address)
	}

	return nil
}
