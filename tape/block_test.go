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
	"bytes"
	"testing"

	"github.com/martin-rizzo/zxtapinspector/curated"
	"github.com/martin-rizzo/zxtapinspector/tape"
	"github.com/martin-rizzo/zxtapinspector/test"
)

// appendBlock writes a block image as the Spectrum ROM would have saved it.
func appendBlock(stream []byte, tag byte, payload []byte) []byte {
	length := len(payload) + 2
	stream = append(stream, byte(length), byte(length>>8))
	stream = append(stream, tag)
	stream = append(stream, payload...)

	checksum := tag
	for _, b := range payload {
		checksum ^= b
	}
	return append(stream, checksum)
}

func TestReadBlockRoundTrip(t *testing.T) {
	var stream []byte
	stream = appendBlock(stream, 0x00, []byte{1, 2, 3, 4, 5})
	stream = appendBlock(stream, 0xff, []byte{0xaa, 0xbb})

	src := bytes.NewReader(stream)

	blk, err := tape.ReadBlock(src)
	test.ExpectedSuccess(t, err)
	test.Equate(t, blk.Kind, 0x00)
	test.Equate(t, len(blk.Payload), 5)
	test.ExpectedSuccess(t, blk.ChecksumOK())
	test.Equate(t, blk.Size(), 9)

	// the first read consumed exactly one block; the second starts exactly
	// where the first ended
	blk, err = tape.ReadBlock(src)
	test.ExpectedSuccess(t, err)
	test.Equate(t, blk.Kind, 0xff)
	test.Equate(t, len(blk.Payload), 2)
	test.Equate(t, blk.Payload[0], 0xaa)
	test.Equate(t, blk.Payload[1], 0xbb)
	test.ExpectedSuccess(t, blk.ChecksumOK())

	// stream is exhausted
	_, err = tape.ReadBlock(src)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, tape.EndOfTape))
}

func TestReadBlockEmptyPayload(t *testing.T) {
	// the smallest legal block is tag+checksum with no payload at all
	stream := appendBlock(nil, 0xff, nil)

	blk, err := tape.ReadBlock(bytes.NewReader(stream))
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(blk.Payload), 0)
	test.ExpectedSuccess(t, blk.ChecksumOK())
}

func TestReadBlockShortLength(t *testing.T) {
	// declared lengths of 0 and 1 cannot accommodate the tag and checksum
	for _, length := range []byte{0, 1} {
		_, err := tape.ReadBlock(bytes.NewReader([]byte{length, 0x00, 0xff}))
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, tape.MalformedTape))
	}
}

func TestReadBlockTruncated(t *testing.T) {
	stream := appendBlock(nil, 0xff, []byte{1, 2, 3, 4})

	// removing trailing bytes after the length prefix has been written makes
	// the stream inconsistent with itself
	for cut := 1; cut < len(stream)-2; cut++ {
		_, err := tape.ReadBlock(bytes.NewReader(stream[:len(stream)-cut]))
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, tape.MalformedTape))
	}
}

func TestReadBlockEndOfTape(t *testing.T) {
	// no bytes at all
	_, err := tape.ReadBlock(bytes.NewReader(nil))
	test.ExpectedSuccess(t, curated.Is(err, tape.EndOfTape))

	// a single trailing byte is not enough for a length prefix. the source
	// is considered exhausted
	_, err = tape.ReadBlock(bytes.NewReader([]byte{0x13}))
	test.ExpectedSuccess(t, curated.Is(err, tape.EndOfTape))
}

func TestChecksumAdvisory(t *testing.T) {
	stream := appendBlock(nil, 0xff, []byte{1, 2, 3})

	// corrupt the checksum byte. the block must still read successfully
	stream[len(stream)-1] ^= 0x55

	blk, err := tape.ReadBlock(bytes.NewReader(stream))
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, blk.ChecksumOK())
}
