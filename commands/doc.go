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

// Package commands implements the command language of the application.
// Command lines come from the console overlay and from the stdin terminal.
// Output is sent to whichever of the two the command came from.
//
// Help and usage text is held in a gettext catalogue, compiled into the
// package.
package commands
