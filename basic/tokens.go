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

// Most of the information about ZX Spectrum BASIC tokens is available at:
//
//	https://en.wikipedia.org/wiki/ZX_Spectrum_character_set
//
// The tables below are static, read-only and never mutated after
// initialisation. Lookups into them are always bounds-checked by the
// detokenizer; a byte without an in-range mapping is rendered defensively,
// never treated as fatal.

// CopyrightChar is the rendering of byte 0x7f, the copyright symbol glyph.
const CopyrightChar = "{(C)}"

// bytes with special meaning to the detokenizer state machine.
const (
	// marker for an inline 5-byte binary number. the ASCII rendering of the
	// number precedes the marker in the byte stream so the binary form is
	// skipped without output
	numberMarker = 0x0e

	// quote byte toggles the in-quotes state (unless inside a REM comment)
	quoteChar = 0x22

	// the REM keyword byte. everything after it on the line is comment text
	remToken = 0xea
)

// ControlChars renders the 32 control codes 0x00-0x1f. Entries containing
// "%d" placeholders consume that many argument bytes from the stream. The
// empty entry at 0x0e is the inline-number marker, handled specially.
var ControlChars = [32]string{
	/* 0x00 */ "{00}", "{01}", "{02}", "{03}", "{04}", "{05}", "\t", "{07}",
	/* 0x08 */ "{08}", "{09}", "{0A}", "{0B}", "{0C}", "\n", "", "{0F}",
	/* 0x10 */ "{INK %d}", "{PAPER %d}", "{FLASH %d}", "{BRIGHT %d}",
	/* 0x14 */ "{INVERSE %d}", "{OVER %d}", "{AT %d,%d}", "{TAB %d,%d}",
	/* 0x18 */ "{18}", "{19}", "{1A}", "{1B}", "{1C}", "{1D}", "{1E}", "{1F}",
}

// GraphicsCharsStart is the first byte value of the block-graphics range.
const GraphicsCharsStart = 0x80

// GraphicsChars renders the 16 block-graphics glyphs 0x80-0x8f.
var GraphicsChars = [16]string{
	/* 0x80 */ "{-8}", "{-1}", "{-2}", "{-3}", "{-4}", "{-5}", "{-6}", "{-7}",
	/* 0x88 */ "{+7}", "{+6}", "{+5}", "{+4}", "{+3}", "{+2}", "{+1}", "{+8}",
}

// UDGCharsStart is the first byte value of the user-defined graphics range.
// The end of the range depends on quote context: inside a string literal the
// range runs to 0xa4, outside it stops at 0xa2 because 0xa3 and 0xa4 are
// keyword bytes there.
const UDGCharsStart = 0x90

// UDGChars renders the user-defined graphics glyphs 0x90-0xa4.
var UDGChars = [21]string{
	/* 0x90 */ "{A}", "{B}", "{C}", "{D}", "{E}", "{F}", "{G}", "{H}",
	/* 0x98 */ "{I}", "{J}", "{K}", "{L}", "{M}", "{N}", "{O}", "{P}",
	/* 0xa0 */ "{Q}", "{R}", "{S}", "{T}", "{U}",
}

// KeywordsStart is the first byte value of the keyword range, which runs to
// 0xff. 0xa3 and 0xa4 are the 128K-era extension keywords.
const KeywordsStart = 0xa3

// Keywords renders the 93 keyword tokens 0xa3-0xff. Leading/trailing spaces
// are part of the ROM's own keyword expansion; the detokenizer collapses a
// leading space against a space already emitted.
var Keywords = [93]string{
	/* 0xa3 */ " SPECTRUM ", " PLAY ", "RND", "INKEY$", "PI",
	/* 0xa8 */ "FN ", "POINT ", "SCREEN$ ", "ATTR ", "AT ", "TAB ", "VAL$ ", "CODE ",
	/* 0xb0 */ "VAL ", "LEN ", "SIN ", "COS ", "TAN ", "ASN ", "ACS ", "ATN ",
	/* 0xb8 */ "LN ", "EXP ", "INT ", "SQR ", "SGN ", "ABS ", "PEEK ", "IN ",
	/* 0xc0 */ "USR ", "STR$ ", "CHR$ ", "NOT ", "BIN ", " OR ", " AND ", "<=",
	/* 0xc8 */ ">=", "<>", " LINE ", " THEN ", " TO ", " STEP ", " DEF FN ", " CAT ",
	/* 0xd0 */ " FORMAT ", " MOVE ", " ERASE ", " OPEN #", " CLOSE #", " MERGE ", " VERIFY ", " BEEP ",
	/* 0xd8 */ " CIRCLE ", " INK ", " PAPER ", " FLASH ", " BRIGHT ", " INVERSE ", " OVER ", " OUT ",
	/* 0xe0 */ " LPRINT ", " LLIST ", " STOP ", " READ ", " DATA ", " RESTORE ", " NEW ", " BORDER ",
	/* 0xe8 */ " CONTINUE ", " DIM ", " REM ", " FOR ", " GO TO ", " GO SUB ", " INPUT ", " LOAD ",
	/* 0xf0 */ " LIST ", " LET ", " PAUSE ", " NEXT ", " POKE ", " PRINT ", " PLOT ", " RUN ",
	/* 0xf8 */ " SAVE ", " RANDOMIZE ", " IF ", " CLS ", " DRAW ", " CLEAR ", " RETURN ", " COPY ",
}
