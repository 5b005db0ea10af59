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

import "strings"

// StatusRegister is the processor status register.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bits of the status register as pushed onto the stack.
const (
	sign             = 0x80
	overflow         = 0x40
	unused           = 0x20
	breakBit         = 0x10
	decimalMode      = 0x08
	interruptDisable = 0x04
	zero             = 0x02
	carry            = 0x01
)

// String returns the flags as letters. Upper case letters are set flags.
func (sr StatusRegister) String() string {
	var s strings.Builder
	flag := func(set bool, c byte) {
		if set {
			s.WriteByte(c)
		} else {
			s.WriteByte(c + 'a' - 'A')
		}
	}
	flag(sr.Sign, 'S')
	flag(sr.Overflow, 'V')
	s.WriteByte('-')
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')
	return s.String()
}

// Value returns the register as a byte. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(unused)
	if sr.Sign {
		v |= sign
	}
	if sr.Overflow {
		v |= overflow
	}
	if sr.Break {
		v |= breakBit
	}
	if sr.DecimalMode {
		v |= decimalMode
	}
	if sr.InterruptDisable {
		v |= interruptDisable
	}
	if sr.Zero {
		v |= zero
	}
	if sr.Carry {
		v |= carry
	}
	return v
}

// Load sets the register from a byte.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&sign == sign
	sr.Overflow = v&overflow == overflow
	sr.Break = v&breakBit == breakBit
	sr.DecimalMode = v&decimalMode == decimalMode
	sr.InterruptDisable = v&interruptDisable == interruptDisable
	sr.Zero = v&zero == zero
	sr.Carry = v&carry == carry
}

func (sr *StatusRegister) setNZ(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
}
