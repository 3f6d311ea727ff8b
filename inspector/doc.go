// This file is part of ZXTapInspector.
//
// ZXTapInspector is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZXTapInspector is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZXTapInspector.  If not, see <https://www.gnu.org/licenses/>.

// Package inspector implements the inspection commands that the command
// line exposes. Each command walks the tape image afresh through the tape
// package and renders its findings to the Inspector's Output writer.
//
// Block selection is common to all commands that operate on a single block:
// a Selection with a Name matches headers by their announced filename, a
// Selection with an Index matches the nth header on the tape (counting from
// one) and the zero Selection matches the first header of whatever datatype
// the command requires.
package inspector
