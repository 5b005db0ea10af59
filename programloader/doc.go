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

// Package programloader loads the 6502 program that the machine runs. A
// program is a flat binary loaded at the machine's origin. When no filename
// is given the built-in program is used.
//
// Loaded files can be watched for changes with the Watch() function. The
// application uses this to reload and reset the machine whenever the program
// file is reassembled.
package programloader
