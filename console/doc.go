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

// Package console implements the developer console overlay: an editable input
// line with a cursor, a command history, a scroll-back log of output and a
// renderer that draws the visible part of the log once per frame.
//
// The Console type is a pure state machine. It knows nothing about how it is
// drawn or where its events come from. Events are delivered with
// HandleEvent(), committed command lines are collected with
// TryTakeCommittedCommand() and output is added with Print(), Println() and
// PrintLines().
//
// The Renderer type draws a Console through the Typeface and Target
// interfaces. A concrete implementation of both, using SDL, can be found in
// the gui/sdlplay package.
package console
