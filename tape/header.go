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

package tape

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderPayloadSize is the exact payload length of a header block. Blocks
// tagged as headers but with a different payload length are treated as
// opaque data.
const HeaderPayloadSize = 17

// DataType describes the content of the data block that follows a header
// block.
type DataType byte

// the datatype values written by the Spectrum ROM. values outside this list
// are preserved as-is and rendered as UNKNOWN(n).
const (
	BasicProgram DataType = 0
	NumberArray  DataType = 1
	StringArray  DataType = 2
	Code         DataType = 3

	// AnyDataType matches every datatype during a header search. it never
	// appears in a tape image.
	AnyDataType DataType = 0xff
)

func (dt DataType) String() string {
	switch dt {
	case BasicProgram:
		return "BASIC-PROGRAM"
	case NumberArray:
		return "NUMBER-ARRAY"
	case StringArray:
		return "STRING-ARRAY"
	case Code:
		return "CODE"
	}
	return fmt.Sprintf("UNKNOWN(%d)", byte(dt))
}

// Header is the parsed form of a header block. It describes the data block
// that should immediately follow it in the stream. Note that the reader does
// not validate that the following block's size matches the Length field;
// tape images in the wild do not always agree with themselves and a mismatch
// is for the caller to judge.
type Header struct {
	DataType DataType

	// filename as stored on tape is a fixed 10-byte space-padded field. the
	// trailing padding run is stripped. not necessarily unique and may be
	// empty
	Filename string

	// declared size in bytes of the data block that follows
	Length uint16

	// meaning depends on DataType. for CODE: Param1 is the load address; for
	// BASIC: Param1 is the autostart line number and Param2 the offset of
	// the variables area
	Param1 uint16
	Param2 uint16
}

// field offsets in the header payload.
const (
	hdrDataType = 0
	hdrFilename = 1
	hdrLength   = 11
	hdrParam1   = 13
	hdrParam2   = 15
)

// number of bytes in the filename field.
const filenameFieldSize = 10

// ParseHeader interprets a block as a header. The boolean return value is
// false when the block is not a header block. That is the expected outcome
// for every data block in the stream and is a classification result, not a
// failure.
func ParseHeader(blk *Block) (Header, bool) {
	if blk == nil || !blk.IsHeader() {
		return Header{}, false
	}

	p := blk.Payload

	return Header{
		DataType: DataType(p[hdrDataType]),
		Filename: strings.TrimRight(string(p[hdrFilename:hdrFilename+filenameFieldSize]), " \x00"),
		Length:   binary.LittleEndian.Uint16(p[hdrLength:]),
		Param1:   binary.LittleEndian.Uint16(p[hdrParam1:]),
		Param2:   binary.LittleEndian.Uint16(p[hdrParam2:]),
	}, true
}
