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

package tapeloader_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/martin-rizzo/zxtapinspector/curated"
	"github.com/martin-rizzo/zxtapinspector/tapeloader"
	"github.com/martin-rizzo/zxtapinspector/test"
)

func TestShortName(t *testing.T) {
	ld := tapeloader.NewLoader("/home/user/tapes/manic_miner.tap")
	test.Equate(t, ld.ShortName(), "manic_miner")

	ld = tapeloader.NewLoader("jetset.tap")
	test.Equate(t, ld.ShortName(), "jetset")

	// no extension to strip
	ld = tapeloader.NewLoader("jetset")
	test.Equate(t, ld.ShortName(), "jetset")
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tiny.tap")
	if err := os.WriteFile(fn, []byte{0x02, 0x00, 0xff, 0xff}, 0644); err != nil {
		t.Fatal(err)
	}

	ld := tapeloader.NewLoader(fn)
	test.ExpectedFailure(t, ld.HasLoaded())

	err := ld.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, ld.HasLoaded())
	test.Equate(t, len(ld.Data), 4)

	// sha1 of the four bytes written above
	test.Equate(t, ld.Hash, "01fb8e2bd9d819d253e5a60bb556c2f694c405ad")

	// reading through the cursor returns the same bytes
	d, err := io.ReadAll(ld.NewReader())
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(d), 4)
}

func TestLoadMissingFile(t *testing.T) {
	ld := tapeloader.NewLoader(filepath.Join(t.TempDir(), "no_such.tap"))

	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, tapeloader.LoadError))
}

func TestHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tiny.tap")
	if err := os.WriteFile(fn, []byte{0x02, 0x00, 0xff, 0xff}, 0644); err != nil {
		t.Fatal(err)
	}

	ld := tapeloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"

	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, tapeloader.LoadError))
}
