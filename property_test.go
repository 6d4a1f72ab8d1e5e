// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cell_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/cell"
)

// TestPropertyReplaceLastWriteWins proves that for any arbitrarily
// generated sequence of replacements, a read observes exactly the last
// fully applied value, never a mixture and never a stale intermediate.
func TestPropertyReplaceLastWriteWins(t *testing.T) {
	skipRace(t)

	property := func(payload []int64) bool {
		c := cell.StartEmpty()
		defer c.Owner().Cancel()

		want := cell.Empty()
		for _, n := range payload {
			v := cell.NewNumber(n)
			if _, err := c.Replace(v); err != nil {
				return false
			}
			want = v
		}
		held, err := c.Read()
		if err != nil {
			return false
		}
		return held == want
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyIncrementWalk proves that any arbitrary walk of increments
// and decrements from an arbitrary base tracks the running sum exactly,
// with every intermediate return value matching the held state.
func TestPropertyIncrementWalk(t *testing.T) {
	skipRace(t)

	property := func(base int32, steps []bool) bool {
		c, err := cell.Start(cell.NewNumber(int64(base)))
		if err != nil {
			return false
		}
		defer c.Owner().Cancel()

		want := int64(base)
		for _, up := range steps {
			var got int64
			if up {
				want++
				got, err = c.Increment()
			} else {
				want--
				got, err = c.Decrement()
			}
			if err != nil || got != want {
				return false
			}
		}
		held, err := c.Read()
		if err != nil {
			return false
		}
		return held == cell.NewNumber(want)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyTagTextRoundTrip proves that arbitrary labels survive a
// start/read round-trip with their shape intact: a tag never reads back
// as text and vice versa.
func TestPropertyTagTextRoundTrip(t *testing.T) {
	skipRace(t)

	property := func(label string, asTag bool) bool {
		v := cell.NewText(label)
		if asTag {
			v = cell.NewTag(label)
		}
		c, err := cell.Start(v)
		if err != nil {
			return false
		}
		defer c.Owner().Cancel()

		held, err := c.Read()
		if err != nil {
			return false
		}
		return held == v && held.Kind() == v.Kind()
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
