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

func (mc *CPU) addBinary(v uint8) {
	sum := uint16(mc.A) + uint16(v)
	if mc.Status.Carry {
		sum++
	}
	r := uint8(sum)
	mc.Status.Overflow = (mc.A^r)&(v^r)&0x80 != 0
	mc.Status.Carry = sum > 0xff
	mc.A = r
	mc.Status.setNZ(mc.A)
}

// addDecimal follows the NMOS behaviour. the zero flag is taken from the
// binary result while the sign and overflow flags are taken from the
// intermediate result before the tens are adjusted
func (mc *CPU) addDecimal(v uint8) {
	c := 0
	if mc.Status.Carry {
		c = 1
	}

	lo := int(mc.A&0x0f) + int(v&0x0f) + c
	hi := int(mc.A>>4) + int(v>>4)
	if lo > 0x09 {
		lo += 0x06
	}
	if lo > 0x0f {
		hi++
	}

	mc.Status.Zero = uint8(int(mc.A)+int(v)+c) == 0
	mc.Status.Sign = hi&0x08 == 0x08
	mc.Status.Overflow = (uint8(hi<<4)^mc.A)&0x80 != 0 && (mc.A^v)&0x80 == 0

	if hi > 0x09 {
		hi += 0x06
	}
	mc.Status.Carry = hi > 0x0f
	mc.A = uint8(hi<<4) | uint8(lo&0x0f)
}

// subtractDecimal follows the NMOS behaviour. all flags are taken from the
// binary result
func (mc *CPU) subtractDecimal(v uint8) {
	c := 0
	if mc.Status.Carry {
		c = 1
	}

	a := mc.A
	mc.addBinary(^v)

	lo := int(a&0x0f) - int(v&0x0f) - (1 - c)
	hi := int(a>>4) - int(v>>4)
	if lo < 0 {
		lo -= 0x06
		hi--
	}
	if hi < 0 {
		hi -= 0x06
	}
	mc.A = uint8(hi<<4) | uint8(lo&0x0f)
}
