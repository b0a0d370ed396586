// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sliceutil provides bounds-checked access to slice elements.
package sliceutil

// At returns the element at index i and true, or the zero value and
// false if i is out of bounds, including when it is negative.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}
	return s[i], true
}

// AtOr returns the element at index i or def if i is out of bounds.
func AtOr[S ~[]E, E any](s S, i int, def E) E {
	if v, ok := At(s, i); ok {
		return v
	}
	return def
}
