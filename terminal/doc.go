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

// Package terminal defines the interface for reading commands from, and
// printing results to, the terminal that the application was started from.
// Implementations are found in the plainterm and colorterm sub-packages.
//
// Reading from a terminal blocks, so the Run() function reads on its own
// goroutine and delivers complete lines on a channel. The channel is polled
// by the application's frame loop.
package terminal
