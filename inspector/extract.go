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
	"os"
	"path/filepath"
	"strings"

	"github.com/martin-rizzo/zxtapinspector/basic"
	"github.com/martin-rizzo/zxtapinspector/curated"
	"github.com/martin-rizzo/zxtapinspector/hexfile"
	"github.com/martin-rizzo/zxtapinspector/logger"
	"github.com/martin-rizzo/zxtapinspector/paths"
	"github.com/martin-rizzo/zxtapinspector/tape"
)

// ExtractError is the sentinel wrapping any failure during extraction.
const ExtractError = "extract: %v"

// safeFilename removes characters from a tape filename that would be
// misinterpreted by the host filesystem.
func safeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, name)
}

// extractBasic detokenizes a program payload and writes it as text.
func extractBasic(filename string, payload []byte) error {
	lines, derr := basic.DetokenizeProgram(payload)

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ExtractError, err)
	}
	defer f.Close()

	for _, l := range lines {
		fmt.Fprintf(f, "%4d %s", l.Number, l.Text)
		if !strings.HasSuffix(l.Text, "\n") {
			fmt.Fprintf(f, "\n")
		}
	}

	if derr != nil {
		return curated.Errorf(ExtractError, derr)
	}
	return nil
}

// extractCode writes a machine-code payload as an Intel HEX file.
func extractCode(filename string, address uint16, payload []byte) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ExtractError, err)
	}
	defer f.Close()

	if err := hexfile.Write(f, address, payload); err != nil {
		return curated.Errorf(ExtractError, err)
	}
	return nil
}

// Extract walks the tape and writes every block satisfying the selection to
// a file on disk. BASIC programs are written as detokenized .bas text and
// CODE blocks as Intel HEX .hex files. Array blocks are reported and
// skipped.
//
// Files are written into dir, which is created if necessary. An empty dir
// means a directory named after the tape image.
func (ins *Inspector) Extract(dir string, sel Selection) error {
	if dir == "" {
		dir = ins.loader.ShortName()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return curated.Errorf(ExtractError, err)
	}

	src := ins.loader.NewReader()
	index := 0
	extracted := 0

	for {
		blk, err := tape.ReadBlock(src)
		if err != nil {
			if curated.Is(err, tape.EndOfTape) {
				break
			}
			return err
		}

		hdr, ok := tape.ParseHeader(blk)
		if !ok {
			continue
		}
		index++

		if !sel.matches(hdr, index, tape.AnyDataType) {
			continue
		}

		data, err := readFollowingData(src)
		if err != nil {
			return err
		}

		name := safeFilename(hdr.Filename)
		if strings.TrimSpace(name) == "" {
			name = paths.UniqueFilename("block", ins.loader.ShortName())
		}
		stem := filepath.Join(dir, fmt.Sprintf("%02d_%s", index, name))

		switch hdr.DataType {
		case tape.BasicProgram:
			fmt.Fprintf(ins.Output, "extracting: %s\n", ins.pen("green", stem+".bas"))
			if err := extractBasic(stem+".bas", data.Payload); err != nil {
				return err
			}
			extracted++

		case tape.Code:
			fmt.Fprintf(ins.Output, "extracting: %s\n", ins.pen("cyan", stem+".hex"))
			if err := extractCode(stem+".hex", hdr.Param1, data.Payload); err != nil {
				return err
			}
			extracted++

		default:
			fmt.Fprintf(ins.Output, "skipping: %s (%s)\n",
				ins.dimPen("white", fmt.Sprintf("%02d_%s", index, name)),
				hdr.DataType.String())
			logger.Logf(logger.Allow, "extract", "skipping %q: %s blocks are not supported",
				hdr.Filename, hdr.DataType.String())
		}
	}

	if extracted == 0 {
		return curated.Errorf(NoBlockFound, "matching")
	}

	logger.Logf(logger.Allow, "extract", "%d blocks written to %s", extracted, dir)
	return nil
}
