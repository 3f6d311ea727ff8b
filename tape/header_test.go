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

package tape_test

import (
	"testing"

	"github.com/martin-rizzo/zxtapinspector/tape"
	"github.com/martin-rizzo/zxtapinspector/test"
)

// headerPayload builds the 17-byte header payload at the exact offsets of
// the format.
func headerPayload(datatype byte, filename string, length, param1, param2 uint16) []byte {
	p := make([]byte, tape.HeaderPayloadSize)
	p[0] = datatype
	copy(p[1:11], "          ")
	copy(p[1:11], filename)
	p[11] = byte(length)
	p[12] = byte(length >> 8)
	p[13] = byte(param1)
	p[14] = byte(param1 >> 8)
	p[15] = byte(param2)
	p[16] = byte(param2 >> 8)
	return p
}

func TestParseHeader(t *testing.T) {
	blk := &tape.Block{
		Kind:    0x00,
		Payload: headerPayload(3, "SCREEN", 6912, 16384, 0x8000),
	}

	hdr, ok := tape.ParseHeader(blk)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, hdr.DataType.String(), "CODE")
	test.Equate(t, hdr.Filename, "SCREEN")
	test.Equate(t, hdr.Length, 6912)
	test.Equate(t, hdr.Param1, 16384)
	test.Equate(t, hdr.Param2, 0x8000)
}

func TestParseHeaderNotAHeader(t *testing.T) {
	// a data block with a header-sized payload is not a header
	blk := &tape.Block{Kind: 0xff, Payload: headerPayload(0, "HELLO", 1, 2, 3)}
	_, ok := tape.ParseHeader(blk)
	test.ExpectedFailure(t, ok)

	// a header tag with the wrong payload length is not a header either
	blk = &tape.Block{Kind: 0x00, Payload: make([]byte, 16)}
	_, ok = tape.ParseHeader(blk)
	test.ExpectedFailure(t, ok)

	blk = &tape.Block{Kind: 0x00, Payload: make([]byte, 18)}
	_, ok = tape.ParseHeader(blk)
	test.ExpectedFailure(t, ok)

	// nil blocks classify cleanly
	_, ok = tape.ParseHeader(nil)
	test.ExpectedFailure(t, ok)
}

func TestFilenameTrimming(t *testing.T) {
	blk := &tape.Block{Kind: 0x00, Payload: headerPayload(0, "LOADER", 100, 10, 0)}

	hdr, ok := tape.ParseHeader(blk)
	test.ExpectedSuccess(t, ok)

	// trailing space padding is stripped; no NUL artifacts remain
	test.Equate(t, hdr.Filename, "LOADER")
	test.Equate(t, len(hdr.Filename), 6)

	// an all-space filename is legal and trims to empty
	blk = &tape.Block{Kind: 0x00, Payload: headerPayload(0, "", 100, 10, 0)}
	hdr, _ = tape.ParseHeader(blk)
	test.Equate(t, hdr.Filename, "")

	// interior spaces survive
	blk = &tape.Block{Kind: 0x00, Payload: headerPayload(0, "JET SET", 100, 10, 0)}
	hdr, _ = tape.ParseHeader(blk)
	test.Equate(t, hdr.Filename, "JET SET")
}

func TestDataTypeNames(t *testing.T) {
	test.Equate(t, tape.BasicProgram.String(), "BASIC-PROGRAM")
	test.Equate(t, tape.NumberArray.String(), "NUMBER-ARRAY")
	test.Equate(t, tape.StringArray.String(), "STRING-ARRAY")
	test.Equate(t, tape.Code.String(), "CODE")

	// unrecognised ordinals are preserved and rendered defensively
	test.Equate(t, tape.DataType(7).String(), "UNKNOWN(7)")

	blk := &tape.Block{Kind: 0x00, Payload: headerPayload(7, "ODD", 0, 0, 0)}
	hdr, ok := tape.ParseHeader(blk)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, hdr.DataType.String(), "UNKNOWN(7)")
}

// the 16-bit fields must round-trip through the parser for any value,
// including those with the high bit set in either byte.
func TestHeaderFieldRange(t *testing.T) {
	for v := 0; v <= 0xffff; v++ {
		blk := &tape.Block{
			Kind:    0x00,
			Payload: headerPayload(byte(v), "X", uint16(v), uint16(v), uint16(v^0xffff)),
		}
		hdr, ok := tape.ParseHeader(blk)
		test.ExpectedSuccess(t, ok)
		test.Equate(t, hdr.Length, uint16(v))
		test.Equate(t, hdr.Param1, uint16(v))
		test.Equate(t, hdr.Param2, uint16(v^0xffff))
		test.Equate(t, byte(hdr.DataType), byte(v))
	}
}
