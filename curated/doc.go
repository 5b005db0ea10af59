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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(). The pattern used to create the
// error is retained, so that an error can later be tested for its origin
// with Is() or, if it wraps other curated errors, with Has().
//
// Patterns should be declared as package level constants, for example:
//
//	const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
//
// The error message is formatted only when Error() is called. Leading
// message parts that are repeated (eg. "cpu: cpu: ...") are collapsed.
package curated
