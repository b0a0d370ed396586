// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates_test

import (
	"testing"
	"time"

	"cloudeng.io/calendar"
	"golang.org/x/text/language"
)

func loadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load location %v: %v", name, err)
	}
	return loc
}

// usCalendar has Sunday as the first day of the week.
func usCalendar(loc *time.Location) *calendar.Gregorian {
	return calendar.MustNewGregorian(
		calendar.WithLocation(loc),
		calendar.WithLocale(language.AmericanEnglish))
}

// gbCalendar has Monday as the first day of the week.
func gbCalendar(loc *time.Location) *calendar.Gregorian {
	return calendar.MustNewGregorian(
		calendar.WithLocation(loc),
		calendar.WithLocale(language.BritishEnglish))
}

func utc(y int, m time.Month, d, h, mn, s int) time.Time {
	return time.Date(y, m, d, h, mn, s, 0, time.UTC)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func rangeOf(start, end time.Time) calendar.Range {
	return calendar.Range{Start: start, End: end}
}

func checkRange(t *testing.T, got, want calendar.Range) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func checkTime(t *testing.T, got, want time.Time) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
