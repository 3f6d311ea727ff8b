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

package inspector

import (
	"fmt"
	"io"
	"strings"

	"github.com/martin-rizzo/zxtapinspector/basic"
	"github.com/martin-rizzo/zxtapinspector/curated"
	"github.com/martin-rizzo/zxtapinspector/hexfile"
	"github.com/martin-rizzo/zxtapinspector/logger"
	"github.com/martin-rizzo/zxtapinspector/tape"
	"github.com/martin-rizzo/zxtapinspector/tapeloader"
)

// sentinel errors returned by the inspection commands.
const (
	// NoBlockFound means the tape was walked to the end without a header
	// matching the selection.
	NoBlockFound = "inspector: no %s block found"

	// WrongDataType means the selection matched a header but the header
	// does not announce the requested type of data.
	WrongDataType = "inspector: block %q holds %s, not %s"

	// NoDataBlock means the tape ends immediately after the selected
	// header.
	NoDataBlock = "inspector: no data block follows the selected header"
)

// Inspector drives the tape and basic packages to implement the inspection
// commands. All output is written to the Output field; an Inspector never
// prints to stdout/stderr of its own accord.
type Inspector struct {
	// where table and program output is written
	Output io.Writer

	// apply ANSI colour to output
	Colour bool

	loader tapeloader.Loader
}

// New is the preferred method of initialisation for the Inspector type. The
// tape image is loaded immediately.
func New(output io.Writer, loader tapeloader.Loader, colour bool) (*Inspector, error) {
	if err := loader.Load(); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "inspector", "loaded %s (%d bytes)", loader.Filename, len(loader.Data))
	logger.Logf(logger.Allow, "inspector", "sha1: %s", loader.Hash)

	return &Inspector{
		Output: output,
		Colour: colour,
		loader: loader,
	}, nil
}

// Selection identifies which header a command should operate on. Name
// matching takes precedence, then the 1-based header index. The zero value
// selects the first header of the datatype the command requires.
type Selection struct {
	Name  string
	Index int
}

// matches decides whether a parsed header satisfies the selection. index is
// the 1-based position of the header among all headers on the tape.
func (sel Selection) matches(hdr tape.Header, index int, dt tape.DataType) bool {
	if sel.Name != "" {
		return hdr.Filename == sel.Name
	}
	if sel.Index > 0 {
		return index == sel.Index
	}
	return dt == tape.AnyDataType || hdr.DataType == dt
}

// findHeader walks the tape until a header satisfying the selection is
// found. On success the reader is positioned at the start of the block
// following the header.
func (ins *Inspector) findHeader(src io.Reader, sel Selection, dt tape.DataType) (tape.Header, error) {
	index := 0

	for {
		blk, err := tape.ReadBlock(src)
		if err != nil {
			if curated.Is(err, tape.EndOfTape) {
				return tape.Header{}, curated.Errorf(NoBlockFound, dt.String())
			}
			return tape.Header{}, err
		}

		hdr, ok := tape.ParseHeader(blk)
		if !ok {
			continue
		}
		index++

		if sel.matches(hdr, index, dt) {
			if dt != tape.AnyDataType && hdr.DataType != dt {
				return hdr, curated.Errorf(WrongDataType, hdr.Filename, hdr.DataType.String(), dt.String())
			}
			return hdr, nil
		}
	}
}

// readFollowingData reads the data block paired with a header that has just
// been found.
func readFollowingData(src io.Reader) (*tape.Block, error) {
	blk, err := tape.ReadBlock(src)
	if err != nil {
		if curated.Is(err, tape.EndOfTape) {
			return nil, curated.Errorf(NoDataBlock)
		}
		return nil, err
	}
	return blk, nil
}

// penForType chooses a pen for rendering a datatype name.
func penForType(dt tape.DataType) string {
	switch dt {
	case tape.BasicProgram:
		return "green"
	case tape.Code:
		return "cyan"
	case tape.NumberArray, tape.StringArray:
		return "yellow"
	}
	return "red"
}

// List prints a table of every block on the tape. Header blocks print their
// parsed metadata; data and opaque blocks print as anonymous rows beneath
// the header that announced them. With detail, every row also carries the
// block's offset in the image and its checksum status.
func (ins *Inspector) List(detail bool) error {
	src := ins.loader.NewReader()

	fmt.Fprintf(ins.Output, "IDX: name       : type         : Length : Param1 : Param2\n")
	fmt.Fprintf(ins.Output, "---:------------:--------------:--------:--------:--------\n")

	headerIndex := 0
	dataIndex := 0
	offset := 0

	for {
		blk, err := tape.ReadBlock(src)
		if err != nil {
			if curated.Is(err, tape.EndOfTape) {
				return nil
			}
			return err
		}

		if hdr, ok := tape.ParseHeader(blk); ok {
			headerIndex++
			dataIndex = 0

			name := fmt.Sprintf("%-12s", fmt.Sprintf("%q", hdr.Filename))
			typ := fmt.Sprintf("%-14s", hdr.DataType.String())
			fmt.Fprintf(ins.Output, " %02d:%s:%s %6d    %6d  %6d\n",
				headerIndex,
				ins.pen("white", name),
				ins.pen(penForType(hdr.DataType), typ),
				hdr.Length, hdr.Param1, hdr.Param2)
		} else {
			name := fmt.Sprintf("//data%d", dataIndex)
			dataIndex++
			fmt.Fprintf(ins.Output, "    %-12s %s %6d\n",
				"",
				ins.dimPen("white", fmt.Sprintf("%-14s", name)),
				len(blk.Payload))
		}

		if detail {
			status := "ok"
			if !blk.ChecksumOK() {
				status = "BAD"
			}
			fmt.Fprintf(ins.Output, "%s\n",
				ins.dimPen("cyan", fmt.Sprintf("      offset=%05x tag=%02x checksum=%s", offset, blk.Kind, status)))
		}

		offset += blk.Size()
	}
}

// Basic locates a BASIC program on the tape and prints it in detokenized
// form. Lines decoded before any point of malformation are printed before
// the error is returned.
func (ins *Inspector) Basic(sel Selection) error {
	src := ins.loader.NewReader()

	hdr, err := ins.findHeader(src, sel, tape.BasicProgram)
	if err != nil {
		return err
	}

	blk, err := readFollowingData(src)
	if err != nil {
		return err
	}

	if int(hdr.Length) != len(blk.Payload) {
		logger.Logf(logger.Allow, "inspector", "header %q declares %d bytes but data block has %d",
			hdr.Filename, hdr.Length, len(blk.Payload))
	}

	lines, derr := basic.DetokenizeProgram(blk.Payload)
	for _, l := range lines {
		fmt.Fprintf(ins.Output, "%s%s", ins.pen("yellow", fmt.Sprintf("%4d ", l.Number)), l.Text)
		if !strings.HasSuffix(l.Text, "\n") {
			fmt.Fprintf(ins.Output, "\n")
		}
	}

	return derr
}

// Code locates a CODE block on the tape and prints it in Intel HEX format,
// loading at the address the header declares in its first parameter.
func (ins *Inspector) Code(sel Selection) error {
	src := ins.loader.NewReader()

	hdr, err := ins.findHeader(src, sel, tape.Code)
	if err != nil {
		return err
	}

	blk, err := readFollowingData(src)
	if err != nil {
		return err
	}

	if int(hdr.Length) != len(blk.Payload) {
		logger.Logf(logger.Allow, "inspector", "header %q declares %d bytes but data block has %d",
			hdr.Filename, hdr.Length, len(blk.Payload))
	}

	return hexfile.Write(ins.Output, hdr.Param1, blk.Payload)
}
