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
	"io"

	"github.com/martin-rizzo/zxtapinspector/curated"
)

// sentinel errors returned by ReadBlock.
const (
	// EndOfTape is the normal termination condition for a read loop. it is
	// returned when the byte source is exhausted before a new length prefix
	// could be read.
	EndOfTape = "end of tape"

	// MalformedTape indicates that the declared block layout is inconsistent
	// with the bytes actually available. it is fatal to the current read
	// pass.
	MalformedTape = "malformed tape: %v"
)

// tag byte values with a defined meaning in the TAP format. any other value
// is vendor specific and the block is treated as opaque data.
const (
	tagHeader = 0x00
	tagData   = 0xff
)

// the length prefix counts the tag byte and the checksum byte as well as the
// payload.
const blockOverhead = 2

// Block is one length-delimited unit read from a TAP byte source. It is
// immutable once built; ownership transfers to the caller of ReadBlock().
type Block struct {
	// tag byte. 0x00 for headers, 0xff for data blocks
	Kind byte

	// payload does not include the tag or checksum bytes
	Payload []byte

	// trailing checksum byte as stored on tape. advisory only, see
	// ChecksumOK()
	Checksum byte
}

// ReadBlock reads the next block from the byte source.
//
// Returns an EndOfTape error when the source is exhausted before the 2-byte
// length prefix is available. This is how a well-formed tape ends and the
// caller should treat it as the normal termination condition.
//
// Returns a MalformedTape error if the declared length is less than the
// two bytes needed for the tag and checksum, or if the source runs dry after
// the length prefix has been consumed.
func ReadBlock(src io.Reader) (*Block, error) {
	var prefix [2]byte

	if _, err := io.ReadFull(src, prefix[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, curated.Errorf(EndOfTape)
		}
		return nil, curated.Errorf(MalformedTape, err)
	}

	length := int(binary.LittleEndian.Uint16(prefix[:]))
	if length < blockOverhead {
		return nil, curated.Errorf(MalformedTape,
			curated.Errorf("declared block length %d leaves no room for tag and checksum", length))
	}

	// tag byte, payload and checksum byte in one read
	buf := make([]byte, length)
	if n, err := io.ReadFull(src, buf); err != nil {
		return nil, curated.Errorf(MalformedTape,
			curated.Errorf("block truncated (%d of %d bytes)", n, length))
	}

	return &Block{
		Kind:     buf[0],
		Payload:  buf[1 : length-1],
		Checksum: buf[length-1],
	}, nil
}

// IsHeader returns true if the block is tagged as a header and has the exact
// payload size of a header block. Use ParseHeader() to interpret the fields.
func (blk *Block) IsHeader() bool {
	return blk.Kind == tagHeader && len(blk.Payload) == HeaderPayloadSize
}

// IsData returns true if the block is tagged as a standard data block.
func (blk *Block) IsData() bool {
	return blk.Kind == tagData
}

// ChecksumOK compares the stored checksum byte against the XOR of the tag
// and payload bytes. The TAP format records the checksum but loaders in the
// wild do not enforce it, so neither does ReadBlock(). Callers may surface
// the result of this function as a diagnostic.
func (blk *Block) ChecksumOK() bool {
	c := blk.Kind
	for _, b := range blk.Payload {
		c ^= b
	}
	return c == blk.Checksum
}

// Size returns the total number of bytes the block occupied in the byte
// source, including the length prefix.
func (blk *Block) Size() int {
	return 2 + 1 + len(blk.Payload) + 1
}
