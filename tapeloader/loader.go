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

package tapeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/martin-rizzo/zxtapinspector/curated"
)

// sentinel for all loading errors.
const LoadError = "tapeloader: %v"

// Loader is used to specify the tape image to inspect. Loading is deferred
// until the Load() function is called.
type Loader struct {
	// filename or URL of the tape image to load
	Filename string

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the tape filename without directory or extension. Used
// to name extraction output.
func (tl Loader) ShortName() string {
	shortTapeName := path.Base(tl.Filename)
	shortTapeName = strings.TrimSuffix(shortTapeName, path.Ext(tl.Filename))
	return shortTapeName
}

// HasLoaded returns true if Load() has been successfully called.
func (tl Loader) HasLoaded() bool {
	return len(tl.Data) > 0
}

// Load the tape image data. Loader filenames with a valid scheme will use
// that method to load the data. Currently supported schemes are HTTP(S) and
// local files.
func (tl *Loader) Load() error {
	if len(tl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(tl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(tl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		tl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		f, err := os.Open(tl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer f.Close()

		tl.Data, err = io.ReadAll(f)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash and check for consistency with any expected value
	hash := fmt.Sprintf("%x", sha1.Sum(tl.Data))
	if tl.Hash != "" && tl.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}
	tl.Hash = hash

	return nil
}

// NewReader returns a reader positioned at the start of the loaded data.
// Each call returns an independent read cursor; a single reader must not be
// shared by concurrent block readers.
func (tl Loader) NewReader() io.Reader {
	return bytes.NewReader(tl.Data)
}
