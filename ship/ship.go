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

// Package ship is the memory mapped player ship. The running program reads
// the input key from memory and writes the ship position back to memory.
//
//	$02/$03	X position (lo/hi)
//	$04	input key (39 right, 37 left, 0 none)
//	$05/$06	Y position (lo/hi)
package ship

// Memory is the machine memory as seen by the ship.
type Memory interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Memory map.
const (
	AddrXLo   = 0x02
	AddrXHi   = 0x03
	AddrInput = 0x04
	AddrYLo   = 0x05
	AddrYHi   = 0x06
)

// Input is the value stored at AddrInput.
type Input uint8

// List of valid Input values.
const (
	InputNone  Input = 0
	InputLeft  Input = 37
	InputRight Input = 39
)

func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	}
	return "unknown"
}

// Ship position as last read from memory.
type Ship struct {
	X int32
	Y int32
}

// Initialise writes the starting position to memory.
func Initialise(mem Memory) {
	mem.Poke(AddrXLo, 0x80)
	mem.Poke(AddrXHi, 0x00)
	mem.Poke(AddrInput, uint8(InputNone))
	mem.Poke(AddrYLo, 0x19)
	mem.Poke(AddrYHi, 0x00)
}

// SetInput writes the input key to memory. Releasing any key clears the
// input.
func (sh *Ship) SetInput(mem Memory, in Input, down bool) {
	if !down {
		in = InputNone
	}
	mem.Poke(AddrInput, uint8(in))
}

// Update reads the position from memory.
func (sh *Ship) Update(mem Memory) {
	sh.X = int32(uint16(mem.Peek(AddrXHi))<<8 | uint16(mem.Peek(AddrXLo)))
	sh.Y = int32(uint16(mem.Peek(AddrYHi))<<8 | uint16(mem.Peek(AddrYLo)))
}
