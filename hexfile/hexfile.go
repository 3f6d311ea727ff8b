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

package hexfile

import (
	"fmt"
	"io"

	"github.com/martin-rizzo/zxtapinspector/curated"
)

// sentinel for all Intel HEX writing errors.
const WriteError = "hexfile: %v"

// maximum number of data bytes in a single record.
const maxRecordBytes = 16

// record types used by this package. the Intel HEX format defines more but
// a 16-bit address space needs only these two.
const (
	recordData = 0x00
	recordEOF  = 0x01
)

// checksum returns the record checksum: the two's complement of the sum of
// the byte count, address bytes, record type and data bytes.
func checksum(recordType byte, address uint16, data []byte) byte {
	sum := byte(len(data))
	sum += byte(address >> 8)
	sum += byte(address)
	sum += recordType
	for _, b := range data {
		sum += b
	}
	return -sum
}

func writeDataRecord(w io.Writer, address uint16, data []byte) error {
	if _, err := fmt.Fprintf(w, ":%02X%04X%02X", len(data), address, recordData); err != nil {
		return curated.Errorf(WriteError, err)
	}
	for _, b := range data {
		if _, err := fmt.Fprintf(w, "%02X", b); err != nil {
			return curated.Errorf(WriteError, err)
		}
	}
	if _, err := fmt.Fprintf(w, "%02X\n", checksum(recordData, address, data)); err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}

func writeEOFRecord(w io.Writer) error {
	if _, err := fmt.Fprintf(w, ":%02X%04X%02X%02X\n", 0, 0, recordEOF, checksum(recordEOF, 0, nil)); err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}

// Write emits data as Intel HEX data records loading at the given address,
// followed by the end-of-file record. Records carry at most 16 data bytes
// each. Addresses wrap at the 16-bit boundary, as they do in the Z80 address
// space the format is describing.
func Write(w io.Writer, address uint16, data []byte) error {
	for i := 0; i < len(data); i += maxRecordBytes {
		chunk := data[i:]
		if len(chunk) > maxRecordBytes {
			chunk = chunk[:maxRecordBytes]
		}
		if err := writeDataRecord(w, address+uint16(i), chunk); err != nil {
			return err
		}
	}
	return writeEOFRecord(w)
}
