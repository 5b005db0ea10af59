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

// Package paths contains functions to prepare paths for resources used by the
// application: the preferences file, locale catalogues and files written by
// commands such as "save" and "memviz".
//
// Resources are found in a ".hakka" directory in the current working
// directory if it exists, otherwise in a "hakka" directory in the user's
// configuration directory.
package paths
