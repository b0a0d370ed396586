// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"slices"
	"testing"
	"time"

	"cloudeng.io/calendar"
	"golang.org/x/text/language"
)

func TestAdjustedWeekdayIndices(t *testing.T) {
	for _, tc := range []struct {
		firstWeekday int
		indices      []int
	}{
		{1, []int{0, 1, 2, 3, 4, 5, 6}},
		{2, []int{1, 2, 3, 4, 5, 6, 0}},
		{3, []int{2, 3, 4, 5, 6, 0, 1}},
		{4, []int{3, 4, 5, 6, 0, 1, 2}},
		{5, []int{4, 5, 6, 0, 1, 2, 3}},
		{6, []int{5, 6, 0, 1, 2, 3, 4}},
		{7, []int{6, 0, 1, 2, 3, 4, 5}},
	} {
		cal := utcCalendar(tc.firstWeekday)
		indices := calendar.AdjustedWeekdayIndices(cal)
		if got, want := indices, tc.indices; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", tc.firstWeekday, got, want)
		}
		// Rotating by firstWeekday-1 yields 0..6 in order.
		shift := 7 - (tc.firstWeekday - 1)
		rotated := append(slices.Clone(indices[shift%7:]), indices[:shift%7]...)
		if got, want := rotated, []int{0, 1, 2, 3, 4, 5, 6}; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", tc.firstWeekday, got, want)
		}
	}
}

func TestWeekdaySymbols(t *testing.T) {
	cal := calendar.MustNewGregorian(calendar.WithLocale(language.BritishEnglish))
	if got, want := cal.FirstWeekday(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.WeekdaySymbols(cal), []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseWeekday(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want int
	}{
		{"1", 1},
		{"7", 7},
		{"su", 1},
		{"Mon", 2},
		{"TUESDAY", 3},
		{"wed", 4},
		{"th", 5},
		{"fri", 6},
		{"sa", 7},
	} {
		n, err := calendar.ParseWeekday(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := n, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, tc := range []string{"", "0", "8", "s", "t", "xyz", "mondays"} {
		if _, err := calendar.ParseWeekday(tc); err == nil {
			t.Errorf("%v: expected an error", tc)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
		days  int
	}{
		{2023, time.January, 31},
		{2023, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
		{2024, 0, 0},
		{2024, 13, 0},
	} {
		if got, want := calendar.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
	for _, year := range []int{1900, 2000, 2023, 2024} {
		total := 0
		for m := time.January; m <= time.December; m++ {
			total += calendar.DaysInMonth(year, m)
			last := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got, want := calendar.DaysInMonth(year, m), last; got != want {
				t.Errorf("%v-%v: got %v, want %v", year, m, got, want)
			}
		}
		want := 365
		if calendar.IsLeap(year) {
			want = 366
		}
		if got := total; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}
