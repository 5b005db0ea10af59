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

	"github.com/hakka/hakka/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// address of the opcode
	Address uint16

	Defn *instructions.Definition

	// the operand of the instruction. for Relative addressing this is the
	// signed offset stored as a byte
	InstructionData uint16

	// number of cycles the instruction took, including any page fault or
	// branch penalty
	Cycles int

	PageFault bool

	// only meaningful for branch instructions
	BranchSuccess bool
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x: undecoded", r.Address)
	}
	return fmt.Sprintf("%#04x: %s (%d cycles)", r.Address, r.Defn.Operator, r.Cycles)
}
