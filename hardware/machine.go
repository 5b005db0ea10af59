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

package hardware

import (
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/hardware/cpu"
	"github.com/hakka/hakka/hardware/memory"
	"github.com/hakka/hakka/logger"
)

// DefaultOrigin is the address at which programs are loaded unless another
// address is requested.
const DefaultOrigin = 0xc000

// Halted is returned by Run() and Step() when the machine has stopped
// because of an earlier error. The machine must be reset to continue.
const Halted = "machine: halted: %v"

// Machine is the emulated computer.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.RAM

	program []uint8
	origin  uint16

	// a paused machine does not run instructions with Run(). Step() is
	// still allowed
	Paused bool

	// the error that stopped the machine
	halt error
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine() *Machine {
	mem := memory.NewRAM()
	return &Machine{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// Load a program into memory at the origin and reset the machine. The reset
// and interrupt vectors both point to the origin.
func (m *Machine) Load(program []uint8, origin uint16) error {
	m.program = append(m.program[:0], program...)
	m.origin = origin
	return m.Reset()
}

// Program returns the most recently loaded program and its origin.
func (m *Machine) Program() ([]uint8, uint16) {
	return m.program, m.origin
}

// Reset clears memory, reloads the program and resets the CPU. The interrupt
// disable flag is cleared after the reset.
func (m *Machine) Reset() error {
	m.halt = nil
	m.Mem.Clear()

	if err := m.Mem.Load(m.origin, m.program); err != nil {
		return err
	}

	for _, v := range []uint16{cpu.ResetVector, cpu.IRQVector, cpu.NMIVector} {
		m.Mem.Poke(v, uint8(m.origin))
		m.Mem.Poke(v+1, uint8(m.origin>>8))
	}

	if err := m.CPU.Reset(); err != nil {
		return err
	}
	m.CPU.Status.InterruptDisable = false

	logger.Logf("machine", "reset: %d bytes at %#04x", len(m.program), m.origin)

	return nil
}

// Halted returns the error that stopped the machine, or nil if the machine is
// running.
func (m *Machine) Halted() error {
	return m.halt
}

// Step executes a single instruction, whether or not the machine is paused.
func (m *Machine) Step() (cpu.Result, error) {
	if m.halt != nil {
		return cpu.Result{}, curated.Errorf(Halted, m.halt)
	}

	r, err := m.CPU.ExecuteInstruction()
	if err != nil {
		m.halt = err
		logger.Log("machine", err)
		return r, err
	}

	return r, nil
}

// Run executes up to n instructions. Nothing is executed if the machine is
// paused.
func (m *Machine) Run(n int) error {
	if m.Paused {
		return nil
	}
	for range n {
		if _, err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RenderingEnabled returns true if the program allows the display to be
// drawn. A program disables the display by setting the interrupt disable
// flag.
func (m *Machine) RenderingEnabled() bool {
	return !m.CPU.Status.InterruptDisable
}
