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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/martin-rizzo/zxtapinspector/curated"
	"github.com/martin-rizzo/zxtapinspector/tape"
)

// vizBlock is the node type rendered by Viz. Only fields useful in the
// graph are carried over from the tape block.
type vizBlock struct {
	Offset     int
	Kind       byte
	Bytes      int
	ChecksumOK bool
	Header     *tape.Header
}

// vizTape is the root node of the visualisation.
type vizTape struct {
	Filename string
	Blocks   []*vizBlock
}

// Viz writes the block structure of the tape in graphviz dot format,
// suitable for piping to the dot command.
func (ins *Inspector) Viz(w io.Writer) error {
	src := ins.loader.NewReader()

	graph := &vizTape{Filename: ins.loader.ShortName()}
	offset := 0

	for {
		blk, err := tape.ReadBlock(src)
		if err != nil {
			if curated.Is(err, tape.EndOfTape) {
				break
			}
			return err
		}

		node := &vizBlock{
			Offset:     offset,
			Kind:       blk.Kind,
			Bytes:      len(blk.Payload),
			ChecksumOK: blk.ChecksumOK(),
		}
		if hdr, ok := tape.ParseHeader(blk); ok {
			node.Header = &hdr
		}

		graph.Blocks = append(graph.Blocks, node)
		offset += blk.Size()
	}

	memviz.Map(w, graph)
	return nil
}
