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

// Package memory implements the flat 64KiB address space of the machine.
//
// Read() and Write() are used by the CPU and satisfy the cpu.Memory
// interface. Peek() and Poke() are used by the rest of the application (the
// ship, the command processor) and never fail.
package memory

import (
	"fmt"

	"github.com/hakka/hakka/curated"
)

// Size of the address space.
const Size = 0x10000

// ProgramTooLarge is returned by Load() when the program does not fit into
// memory at the requested origin.
const ProgramTooLarge = "memory: program of %d bytes does not fit at origin %#04x"

// RAM is the memory of the machine.
type RAM struct {
	data [Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

func (ram *RAM) String() string {
	return fmt.Sprintf("RAM: %d bytes", Size)
}

// Read implements the cpu.Memory interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.data[address], nil
}

// Write implements the cpu.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.data[address] = data
	return nil
}

// Peek returns the value at address.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.data[address]
}

// Poke sets the value at address.
func (ram *RAM) Poke(address uint16, data uint8) {
	ram.data[address] = data
}

// Load copies data into memory starting at origin.
func (ram *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf(ProgramTooLarge, len(data), origin)
	}
	copy(ram.data[origin:], data)
	return nil
}

// Clear sets every address to zero.
func (ram *RAM) Clear() {
	ram.data = [Size]uint8{}
}
