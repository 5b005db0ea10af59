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

// Package logger is the central log for the application. Entries are grouped
// by tag and consecutive entries with the same tag and detail are collapsed
// into a single entry with a repeat count.
//
// Only the most recent entries are kept. The log can be echoed to an
// io.Writer as entries are added, and it can be tailed into the console with
// the "log" command.
package logger
