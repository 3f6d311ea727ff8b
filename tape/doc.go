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

// Package tape reads the ZX Spectrum TAP container format.
//
// A TAP file is a concatenation of length-prefixed blocks, each one the
// image of a block as the Spectrum ROM saved it to cassette:
//
//	offset  size  field
//	0       2     block length L (little-endian), counts tag+payload+checksum
//	2       1     tag byte (0x00 header / 0xff data / other values opaque)
//	3       L-2   payload
//	3+L-2   1     checksum (XOR of tag and payload; advisory)
//
// ReadBlock() walks the stream one block at a time. Blocks come in pairs: a
// 17-byte header block describing type, name and size, followed by the data
// block it announces. ParseHeader() classifies a block and extracts the
// header fields when it genuinely is a header.
//
// The package is synchronous and keeps no state between calls. The read
// cursor of the byte source is the only shared resource, so a source must
// not be read by two block readers concurrently.
package tape
