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

// Package tapeloader is used to specify the tape image that is to be
// inspected.
//
// When the image is ready to be read the Load() function should be used. It
// handles loading of data from different sources; currently local files and
// data over HTTP are supported. The SHA1 hash of the data is recorded on
// load and can be checked against an expected value.
//
// The simplest use of the Loader type:
//
//	tl := tapeloader.NewLoader("games/manic.tap")
//	err := tl.Load()
package tapeloader
