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

// Package cpu emulates the NMOS 6502 microprocessor. Only the documented
// instructions are implemented. Executing an undocumented opcode returns an
// UnimplementedInstruction error and leaves the CPU state unchanged.
//
// The CPU is not cycle accurate. Each call to ExecuteInstruction() runs a
// whole instruction and reports the number of cycles it would have taken.
package cpu
