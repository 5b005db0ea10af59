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

package programloader

// the built-in program moves the ship left and right according to the input
// key stored at $04. the 16bit X position is stored at $02/$03
//
//	c000  a5 04     LDA $04
//	c002  c9 27     CMP #$27
//	c004  d0 09     BNE $c00f
//	c006  e6 02     INC $02
//	c008  d0 02     BNE $c00c
//	c00a  e6 03     INC $03
//	c00c  4c 00 c0  JMP $c000
//	c00f  c9 25     CMP #$25
//	c011  d0 f9     BNE $c00c
//	c013  a5 02     LDA $02
//	c015  d0 02     BNE $c019
//	c017  c6 03     DEC $03
//	c019  c6 02     DEC $02
//	c01b  4c 00 c0  JMP $c000
var builtin = []byte{
	0xa5, 0x04,
	0xc9, 0x27,
	0xd0, 0x09,
	0xe6, 0x02,
	0xd0, 0x02,
	0xe6, 0x03,
	0x4c, 0x00, 0xc0,
	0xc9, 0x25,
	0xd0, 0xf9,
	0xa5, 0x02,
	0xd0, 0x02,
	0xc6, 0x03,
	0xc6, 0x02,
	0x4c, 0x00, 0xc0,
}

// Builtin returns a copy of the built-in program.
func Builtin() []byte {
	return append([]byte{}, builtin...)
}
