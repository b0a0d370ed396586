// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// DaysInMonth returns the number of days in the given month for the given
// year. It returns 0 for months outside of the range 1-12.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		return DaysInFeb(year)
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	}
	return 0
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// ParseWeekday parses a weekday in either numeric format, 1 (Sunday) to 7
// (Saturday), or as an English name or any prefix of at least two
// letters, in any case, eg. "Mo", "tue" or "Wednesday".
func ParseWeekday(val string) (int, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > 7 {
			return 0, fmt.Errorf("invalid weekday: %d", n)
		}
		return n, nil
	}
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) < 2 {
		return 0, fmt.Errorf("invalid weekday: %q", val)
	}
	for i := range weekdays {
		if strings.HasPrefix(weekdays[i], lc) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", val)
}

// AdjustedWeekdayIndices returns the zero-based weekday indices, 0 for
// Sunday to 6 for Saturday, in the order used by the calendar, ie. starting
// with its first weekday. For a calendar whose first weekday is Monday
// the result is [1, 2, 3, 4, 5, 6, 0].
func AdjustedWeekdayIndices(cal Calendar) []int {
	first := cal.FirstWeekday()
	if first < 1 || first > 7 {
		first = 1
	}
	indices := make([]int, 0, 7)
	for i := first - 1; i < 7; i++ {
		indices = append(indices, i)
	}
	for i := 0; len(indices) < 7; i++ {
		indices = append(indices, i)
	}
	return indices
}

// WeekdaySymbols returns the weekday names in the order used by the
// calendar. Localized names are used if the calendar implements
// WeekdayNamer, English names otherwise.
func WeekdaySymbols(cal Calendar) []string {
	var names []string
	if wn, ok := cal.(WeekdayNamer); ok {
		names = wn.WeekdaySymbols()
	}
	if len(names) != 7 {
		names = make([]string, 7)
		for i := range names {
			names[i] = time.Weekday(i).String()
		}
	}
	ordered := make([]string, 0, 7)
	for _, idx := range AdjustedWeekdayIndices(cal) {
		ordered = append(ordered, names[idx])
	}
	return ordered
}

// adjustedIndex returns the offset of wd from the first day of the week.
func adjustedIndex(wd time.Weekday, firstWeekday int) int {
	return (int(wd) + 1 + (7 - firstWeekday)) % 7
}
