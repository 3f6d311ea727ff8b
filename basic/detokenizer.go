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

package basic

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/martin-rizzo/zxtapinspector/curated"
)

// sentinel error for structurally malformed program data. unknown byte
// values are not errors; they are rendered defensively.
const MalformedProgram = "detokenization: %v"

// line numbers at or above this value mark the end of BASIC program text.
// the bytes that follow belong to the variables area, not the program.
const endOfProgramLine = 16384

// Line is one decoded BASIC line.
type Line struct {
	Number uint16
	Text   string
}

// decode state scoped to a single line. a fresh instance is created per
// DetokenizeLine() call so concurrent decodes of different lines never share
// state.
type lineState struct {
	// toggled by unescaped quote bytes. widens the UDG range, see udgEnd()
	inQuotes bool

	// set permanently (for the rest of the line) once a REM token is seen.
	// quote toggling is suppressed while true
	inRem bool

	// whether the last emitted character was a space. used to collapse a
	// keyword's leading space against a space already emitted. starts true:
	// the caller's line-number prefix ends in a space, so a keyword opening
	// the line must not emit its own padding
	lastSpace bool
}

// udgEnd returns the first byte value after the UDG range. Inside a string
// literal, bytes 0xa3 and 0xa4 are still UDG glyphs; outside, they start the
// keyword range.
func (st *lineState) udgEnd() byte {
	if st.inQuotes {
		return KeywordsStart + 2
	}
	return KeywordsStart
}

// DetokenizeLine converts the tokenized bytes of one BASIC line into
// readable text.
//
// Unknown or reserved byte values are rendered via their table entry or
// literal form; they never fail the decode. A MalformedProgram error is
// returned only on structural malformation, ie. a control-code argument or
// an inline number literal running past the end of the line.
func DetokenizeLine(data []byte) (string, error) {
	s := strings.Builder{}
	st := lineState{lastSpace: true}

	for i := 0; i < len(data); i++ {
		b := data[i]

		switch {
		case b < 0x20:
			// control codes. the table entry may declare argument bytes
			format := ControlChars[b]

			if b == numberMarker {
				// the 5-byte binary form of a number whose ASCII rendering
				// has already been emitted. skip it without interpreting
				if i+5 >= len(data) {
					return s.String(), curated.Errorf(MalformedProgram,
						curated.Errorf("inline number literal overruns the line"))
				}
				i += 5
			} else {
				n := strings.Count(format, "%d")
				if i+n >= len(data) && n > 0 {
					return s.String(), curated.Errorf(MalformedProgram,
						curated.Errorf("control code %#02x is missing its argument bytes", b))
				}
				switch n {
				case 0:
					s.WriteString(format)
				case 1:
					s.WriteString(fmt.Sprintf(format, data[i+1]))
				case 2:
					s.WriteString(fmt.Sprintf(format, data[i+1], data[i+2]))
				}
				i += n
			}
			st.lastSpace = false

		case b == 0x7f:
			s.WriteString(CopyrightChar)
			st.lastSpace = false

		case b < GraphicsCharsStart:
			// plain ASCII
			s.WriteByte(b)
			st.lastSpace = b == ' '

		case b < UDGCharsStart:
			s.WriteString(GraphicsChars[b-GraphicsCharsStart])
			st.lastSpace = false

		case b < st.udgEnd():
			s.WriteString(UDGChars[b-UDGCharsStart])
			st.lastSpace = false

		default:
			kw := Keywords[b-KeywordsStart]
			if st.lastSpace && strings.HasPrefix(kw, " ") {
				kw = kw[1:]
			}
			s.WriteString(kw)
			st.lastSpace = strings.HasSuffix(kw, " ")
		}

		// state updates applied after emitting each byte
		if b == quoteChar && !st.inRem {
			st.inQuotes = !st.inQuotes
		}
		if b == remToken {
			st.inRem = true
		}
	}

	return s.String(), nil
}

// DetokenizeProgram converts the payload of a BASIC data block into decoded
// lines. The layout of each line is:
//
//	offset  size  field
//	0       2     line number (BIG-endian; a quirk of the format, every
//	              other numeric field is little-endian)
//	2       2     line length LL (little-endian)
//	4       LL    tokenized line bytes
//
// A line number of 16384 or above terminates the decode normally: it marks
// the start of the variables area, not an error.
//
// On structural malformation the lines decoded so far are returned along
// with a MalformedProgram error.
func DetokenizeProgram(data []byte) ([]Line, error) {
	lines := []Line{}

	for len(data) > 0 {
		if len(data) < 2 {
			return lines, curated.Errorf(MalformedProgram,
				curated.Errorf("buffer overflow reading line number"))
		}
		number := binary.BigEndian.Uint16(data)
		data = data[2:]

		if number >= endOfProgramLine {
			return lines, nil
		}

		if len(data) < 2 {
			return lines, curated.Errorf(MalformedProgram,
				curated.Errorf("buffer overflow reading line length"))
		}
		length := binary.LittleEndian.Uint16(data)
		data = data[2:]

		if int(length) > len(data) {
			return lines, curated.Errorf(MalformedProgram,
				curated.Errorf("line %d declares %d bytes but only %d remain", number, length, len(data)))
		}

		text, err := DetokenizeLine(data[:length])
		if err != nil {
			return lines, err
		}

		lines = append(lines, Line{Number: number, Text: text})
		data = data[length:]
	}

	return lines, nil
}
