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

// Package basic converts the tokenized byte encoding of a ZX Spectrum BASIC
// program back into readable source text.
//
// The Spectrum ROM stores a program as a sequence of lines, each line a
// big-endian line number, a little-endian byte length and then the tokenized
// line itself. Within a line, bytes below 0x20 are control codes (some with
// trailing argument bytes), the ASCII range is literal, 0x80-0x8f are block
// graphics, 0x90 onwards are user-defined graphics and the remainder of the
// byte range expands to keyword strings.
//
// Two details of the encoding deserve a warning. First, a number appearing
// in program text is stored twice: as its ASCII rendering and then, after a
// 0x0e marker, as a 5-byte binary value. The binary form carries no new
// information and is skipped. Second, the meaning of bytes 0xa3 and 0xa4
// depends on quote context: inside a string literal they are still UDG
// glyphs, outside they are the 128K keywords SPECTRUM and PLAY.
//
// Tape dumps in the wild routinely contain non-conformant bytes, so unknown
// values are always rendered defensively rather than failing the decode.
package basic
