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

// Package statsview runs a local HTTP server offering graphs of the Go
// runtime statistics of the application, provided by
// github.com/go-echarts/statsview. The graphs are found at:
//
//	http://localhost:12600/debug/statsview
//
// The standard pprof endpoints are served under /debug/pprof/.
package statsview
