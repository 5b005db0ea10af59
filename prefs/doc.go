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

// Package prefs provides typed preference values that can be stored on disk
// and overridden from the command line.
//
// Preference values are declared as fields of a package's preferences type
// and registered with a Disk under a unique key:
//
//	var p prefs.Int
//	err = dsk.Add("console.fontsize", &p)
//
// A Disk saves its values as a text file, one "key :: value" line per
// preference. Keys in the file which have not been added to the Disk are
// preserved when saving, so more than one Disk instance can share a file.
//
// Values pushed onto the command-line stack with PushCommandLineStack() take
// precedence over the values loaded from disk.
package prefs
