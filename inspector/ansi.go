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
	"strings"
)

// ansi colour
const (
	ansiRed     = 1
	ansiGreen   = 2
	ansiYellow  = 3
	ansiBlue    = 4
	ansiMagenta = 5
	ansiCyan    = 6
	ansiWhite   = 7
)

// ansi pen type
const (
	penNormal = 3
	penBright = 9
)

var pens map[string]string
var dimPens map[string]string
var ansiOff string

func init() {
	pens = make(map[string]string)
	dimPens = make(map[string]string)

	ansiOff = "\033[0m"

	pens["red"] = ansiBuild("red", true)
	pens["green"] = ansiBuild("green", true)
	pens["yellow"] = ansiBuild("yellow", true)
	pens["blue"] = ansiBuild("blue", true)
	pens["magenta"] = ansiBuild("magenta", true)
	pens["cyan"] = ansiBuild("cyan", true)
	pens["white"] = ansiBuild("white", true)

	dimPens["red"] = ansiBuild("red", false)
	dimPens["green"] = ansiBuild("green", false)
	dimPens["yellow"] = ansiBuild("yellow", false)
	dimPens["blue"] = ansiBuild("blue", false)
	dimPens["magenta"] = ansiBuild("magenta", false)
	dimPens["cyan"] = ansiBuild("cyan", false)
	dimPens["white"] = ansiBuild("white", false)
}

func ansiBuild(pen string, bright bool) string {
	penType := penNormal
	if bright {
		penType = penBright
	}

	var colour int
	switch strings.ToUpper(pen)[0] {
	case 'R':
		colour = ansiRed
	case 'G':
		colour = ansiGreen
	case 'Y':
		colour = ansiYellow
	case 'B':
		colour = ansiBlue
	case 'M':
		colour = ansiMagenta
	case 'C':
		colour = ansiCyan
	case 'W':
		colour = ansiWhite
	}

	return fmt.Sprintf("\033[%d%dm", penType, colour)
}

// pen wraps s in the named ANSI pen, or returns it unchanged when colour is
// turned off.
func (ins *Inspector) pen(name string, s string) string {
	if !ins.Colour {
		return s
	}
	return fmt.Sprintf("%s%s%s", pens[name], s, ansiOff)
}

// dimPen is like pen but with the low-intensity variant of the colour.
func (ins *Inspector) dimPen(name string, s string) string {
	if !ins.Colour {
		return s
	}
	return fmt.Sprintf("%s%s%s", dimPens[name], s, ansiOff)
}
