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

package main

import (
	"fmt"
	"os"

	"github.com/martin-rizzo/zxtapinspector/inspector"
	"github.com/martin-rizzo/zxtapinspector/logger"
	"github.com/martin-rizzo/zxtapinspector/modalflag"
	"github.com/martin-rizzo/zxtapinspector/statsview"
	"github.com/martin-rizzo/zxtapinspector/tapeloader"
	"github.com/martin-rizzo/zxtapinspector/version"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the command line and runs the selected mode. the returned
// value is suitable for os.Exit(): zero on success, 10 for a command line
// error and 20 for an error during inspection.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("LIST", "DETAIL", "BASIC", "CODE", "EXTRACT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "LIST":
		err = list(md, false)

	case "DETAIL":
		err = list(md, true)

	case "BASIC":
		err = basicProgram(md)

	case "CODE":
		err = codeBlock(md)

	case "EXTRACT":
		err = extract(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// newInspector builds an inspector for the tape image named in the one
// remaining command line argument.
func newInspector(md *modalflag.Modes, colour bool) (*inspector.Inspector, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("tape image required for %s mode", md)
	case 1:
		return inspector.New(os.Stdout, tapeloader.NewLoader(md.GetArg(0)), colour)
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

// setEcho attaches or detaches the central log from stdout according to the
// -log flag.
func setEcho(log bool) {
	if log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

func list(md *modalflag.Modes, detail bool) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	colour := md.AddBool("colour", colourTerminal(os.Stdout), "ANSI colour in output")

	var viz *string
	if detail {
		viz = md.AddString("viz", "", "write block structure to file in graphviz dot format")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	ins, err := newInspector(md, *colour)
	if err != nil {
		return err
	}

	if viz != nil && *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := ins.Viz(f); err != nil {
			return err
		}
	}

	return ins.List(detail)
}

// selection builds the common block selection flags and returns a function
// that reads them after parsing.
func selection(md *modalflag.Modes) func() inspector.Selection {
	name := md.AddString("name", "", "select block by its announced filename")
	index := md.AddInt("index", 0, "select block by its position on the tape (first header is 1)")

	return func() inspector.Selection {
		return inspector.Selection{Name: *name, Index: *index}
	}
}

func basicProgram(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	colour := md.AddBool("colour", colourTerminal(os.Stdout), "ANSI colour in output")
	sel := selection(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	ins, err := newInspector(md, *colour)
	if err != nil {
		return err
	}

	return ins.Basic(sel())
}

func codeBlock(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	sel := selection(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	// hex records are often redirected to a file so colour is never applied
	ins, err := newInspector(md, false)
	if err != nil {
		return err
	}

	return ins.Code(sel())
}

func extract(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	colour := md.AddBool("colour", colourTerminal(os.Stdout), "ANSI colour in output")
	dir := md.AddString("dir", "", "directory for extracted files (default: named after the tape)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))
	sel := selection(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	if *stats {
		statsview.Launch(os.Stdout)
	}

	ins, err := newInspector(md, *colour)
	if err != nil {
		return err
	}

	return ins.Extract(*dir, sel())
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintf(md.Output, "  %s\n", rev)
	}

	return nil
}
