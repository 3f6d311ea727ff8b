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

// Package curated is a helper package for the plain Go language error type.
//
// Errors are created with the Errorf() function. It looks like fmt.Errorf()
// but the formatting pattern is retained alongside the formatted values,
// which lets callers test for a specific class of error with the Is()
// function:
//
//	err := tape.ReadBlock(f)
//	if curated.Is(err, tape.EndOfTape) {
//		// normal termination
//	}
//
// The Has() function is the equivalent test for a pattern anywhere in the
// error chain, which is useful when an error has been wrapped by an
// intermediate layer.
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, in the package that creates them.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. Parts are the sub-strings separated by ": ", as suggested
// on p239 of "The Go Programming Language" (Donovan, Kernighan).
package curated
