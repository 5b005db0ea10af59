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

package cpu_test

import (
	"testing"

	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/hardware/cpu"
	"github.com/hakka/hakka/hardware/memory"
	"github.com/hakka/hakka/test"
	"pgregory.net/rapid"
)

const origin = 0xc000

// newCPU loads the program at origin and resets the CPU so that it is ready
// to execute the first instruction
func newCPU(t *testing.T, program ...uint8) (*cpu.CPU, *memory.RAM) {
	t.Helper()
	mem := memory.NewRAM()
	test.DemandSuccess(t, mem.Load(origin, program))
	mem.Poke(cpu.ResetVector, uint8(origin&0xff))
	mem.Poke(cpu.ResetVector+1, uint8(origin>>8))
	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset())
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU, n int) cpu.Result {
	t.Helper()
	var r cpu.Result
	var err error
	for range n {
		r, err = mc.ExecuteInstruction()
		test.DemandSuccess(t, err)
	}
	return r
}

func TestReset(t *testing.T) {
	mc, _ := newCPU(t, 0xea)
	test.ExpectEquality(t, mc.PC, uint16(origin))
	test.ExpectEquality(t, mc.SP, uint8(0xfd))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
}

func TestLoadStore(t *testing.T) {
	mc, mem := newCPU(t,
		0xa9, 0x80, // LDA #$80
		0x85, 0x02, // STA $02
		0xa2, 0x00, // LDX #$00
		0xa4, 0x02, // LDY $02
		0x96, 0x90, // STX $90,Y
	)

	r := step(t, mc, 1)
	test.ExpectEquality(t, mc.A, uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectEquality(t, r.Cycles, 2)

	step(t, mc, 1)
	test.ExpectEquality(t, mem.Peek(0x02), uint8(0x80))

	step(t, mc, 1)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.Y, uint8(0x80))

	// zero page indexing wraps around
	mem.Poke(0x10, 0xff)
	step(t, mc, 1)
	test.ExpectEquality(t, mem.Peek(0x10), uint8(0x00))
	test.ExpectEquality(t, mc.PC, uint16(origin+10))
}

func TestArithmetic(t *testing.T) {
	mc, _ := newCPU(t,
		0x18,       // CLC
		0xa9, 0x7f, // LDA #$7f
		0x69, 0x01, // ADC #$01
		0x38,       // SEC
		0xe9, 0x01, // SBC #$01
		0x69, 0x80, // ADC #$80
	)

	step(t, mc, 3)
	test.ExpectEquality(t, mc.A, uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, uint8(0x7f))
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Carry)

	// carry is set so 0x7f + 0x80 + 1 = 0x100
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestDecimalMode(t *testing.T) {
	mc, _ := newCPU(t,
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x09, // LDA #$09
		0x69, 0x01, // ADC #$01
		0x69, 0x90, // ADC #$90
		0x38,       // SEC
		0xe9, 0x01, // SBC #$01
	)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.A, uint8(0x10))
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, uint8(0x99))
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestBranching(t *testing.T) {
	mc, _ := newCPU(t,
		0xa2, 0x02, // LDX #$02
		0xca,       // DEX
		0xd0, 0xfd, // BNE -3
		0xea, // NOP
	)

	step(t, mc, 2)
	r := step(t, mc, 1)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC, uint16(origin+2))

	step(t, mc, 1)
	r = step(t, mc, 1)
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC, uint16(origin+5))
}

func TestBranchPageFault(t *testing.T) {
	mem := memory.NewRAM()
	mem.Poke(cpu.ResetVector, 0xf0)
	mem.Poke(cpu.ResetVector+1, 0xc0)
	test.DemandSuccess(t, mem.Load(0xc0f0, []uint8{0x18, 0x90, 0x20})) // CLC; BCC +32
	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset())

	step(t, mc, 1)
	r := step(t, mc, 1)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC, uint16(0xc113))
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t,
		0x20, 0x06, 0xc0, // JSR $c006
		0xa9, 0x01, // LDA #$01
		0xea,       // NOP
		0xa2, 0x05, // LDX #$05
		0x60, // RTS
	)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, uint16(0xc006))
	test.ExpectEquality(t, mc.SP, uint8(0xfb))
	test.ExpectEquality(t, mem.Peek(0x01fd), uint8(0xc0))
	test.ExpectEquality(t, mem.Peek(0x01fc), uint8(0x02))

	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, uint16(0xc003))
	test.ExpectEquality(t, mc.SP, uint8(0xfd))
	test.ExpectEquality(t, mc.X, uint8(0x05))
}

func TestJumpIndirectBug(t *testing.T) {
	mc, mem := newCPU(t, 0x6c, 0xff, 0x02) // JMP ($02ff)
	mem.Poke(0x02ff, 0x34)
	mem.Poke(0x0300, 0x99)
	mem.Poke(0x0200, 0x12)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, uint16(0x1234))
}

func TestInterrupt(t *testing.T) {
	mc, mem := newCPU(t,
		0x58,       // CLI
		0x00, 0xff, // BRK (with padding byte)
		0xea, // NOP
	)
	mem.Poke(cpu.IRQVector, 0x00)
	mem.Poke(cpu.IRQVector+1, 0xd0)
	mem.Poke(0xd000, 0x40) // RTI

	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, uint16(0xd000))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// status pushed with the break bit set
	test.ExpectEquality(t, mem.Peek(0x01fb)&0x10, uint8(0x10))

	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, uint16(origin+3))
	test.ExpectFailure(t, mc.Status.InterruptDisable)
	test.ExpectFailure(t, mc.Status.Break)
}

func TestStack(t *testing.T) {
	mc, _ := newCPU(t,
		0xa9, 0x42, // LDA #$42
		0x48,       // PHA
		0xa9, 0x00, // LDA #$00
		0x08, // PHP
		0x38, // SEC
		0x28, // PLP
		0x68, // PLA
	)

	step(t, mc, 4)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc, 2)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, uint8(0x42))
	test.ExpectEquality(t, mc.SP, uint8(0xfd))
}

func TestShifts(t *testing.T) {
	mc, mem := newCPU(t,
		0xa9, 0x81, // LDA #$81
		0x0a,       // ASL A
		0x2a,       // ROL A
		0x46, 0x10, // LSR $10
		0x66, 0x10, // ROR $10
	)
	mem.Poke(0x10, 0x01)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, uint8(0x02))
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, uint8(0x05))
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc, 1)
	test.ExpectEquality(t, mem.Peek(0x10), uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc, 1)
	test.ExpectEquality(t, mem.Peek(0x10), uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestUnimplemented(t *testing.T) {
	mc, _ := newCPU(t, 0x02)

	_, err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))
	test.ExpectEquality(t, mc.PC, uint16(origin))
}

func TestStatusRegisterProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint8().Draw(t, "status")

		var sr cpu.StatusRegister
		sr.Load(v)

		// the unused bit is always set
		if sr.Value() != v|0x20 {
			t.Fatalf("status register value %#02x loaded as %#02x", v, sr.Value())
		}
	})
}
