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

package curated_test

import (
	"errors"
	"testing"

	"github.com/martin-rizzo/zxtapinspector/curated"
	"github.com/martin-rizzo/zxtapinspector/test"
)

const testPattern = "test error: %s"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")
	test.ExpectedSuccess(t, curated.Is(err, testPattern))
	test.ExpectedFailure(t, curated.Is(err, "some other pattern"))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
	test.ExpectedFailure(t, curated.Is(errors.New("uncurated"), testPattern))

	test.ExpectedSuccess(t, curated.IsAny(err))
	test.ExpectedFailure(t, curated.IsAny(errors.New("uncurated")))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf("outer: %v", inner)

	test.ExpectedSuccess(t, curated.Has(outer, testPattern))
	test.ExpectedSuccess(t, curated.Has(outer, "outer: %v"))
	test.ExpectedFailure(t, curated.Is(outer, testPattern))
	test.ExpectedFailure(t, curated.Has(outer, "missing pattern"))
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("tape: %v", errors.New("short read"))
	outer := curated.Errorf("tape: %v", inner)

	// adjacent duplicate parts are removed when the message is built
	test.Equate(t, outer.Error(), "tape: short read")
}
