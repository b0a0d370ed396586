// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sliceutil_test

import (
	"testing"

	"cloudeng.io/calendar/sliceutil"
)

func TestAt(t *testing.T) {
	s := []int{1, 2, 3}
	for _, tc := range []struct {
		index int
		value int
		ok    bool
	}{
		{0, 1, true},
		{2, 3, true},
		{3, 0, false},
		{-1, 0, false},
		{100, 0, false},
	} {
		v, ok := sliceutil.At(s, tc.index)
		if got, want := v, tc.value; got != want {
			t.Errorf("%v: got %v, want %v", tc.index, got, want)
		}
		if got, want := ok, tc.ok; got != want {
			t.Errorf("%v: got %v, want %v", tc.index, got, want)
		}
	}
	if _, ok := sliceutil.At([]string(nil), 0); ok {
		t.Errorf("expected false for nil slice")
	}
	type names []string
	if got, want := sliceutil.AtOr(names{"a", "b"}, 1, "?"), "b"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sliceutil.AtOr(names{"a", "b"}, 2, "?"), "?"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
