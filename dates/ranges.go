// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"slices"
	"time"

	"cloudeng.io/calendar"
)

// DatesIn returns the dates spanned by r, starting with r.Start and
// advancing a day at a time while still before r.End. r.Start is
// always returned, even for an empty range.
func DatesIn(cal calendar.Calendar, r calendar.Range) ([]time.Time, error) {
	dates := []time.Time{r.Start}
	date, err := AddDays(cal, r.Start, 1)
	if err != nil {
		return nil, err
	}
	for date.Before(r.End) {
		dates = append(dates, date)
		if date, err = AddDays(cal, date, 1); err != nil {
			return nil, err
		}
	}
	return dates, nil
}

// WeeksIn returns the week ranges that tile r. The first is the week
// containing r.Start and each subsequent week starts one week after the
// start of its predecessor, until a week would start on or after r.End.
func WeeksIn(cal calendar.Calendar, r calendar.Range) ([]calendar.Range, error) {
	return tile(cal, r, WeekRange, AddWeeks)
}

// MonthsIn returns the month ranges that tile r in the same manner as
// WeeksIn.
func MonthsIn(cal calendar.Calendar, r calendar.Range) ([]calendar.Range, error) {
	return tile(cal, r, MonthRange, AddMonths)
}

type (
	rangeFunc func(calendar.Calendar, time.Time) (calendar.Range, error)
	addFunc   func(calendar.Calendar, time.Time, int) (time.Time, error)
)

func tile(cal calendar.Calendar, r calendar.Range, rangeFn rangeFunc, addFn addFunc) ([]calendar.Range, error) {
	var ranges []calendar.Range
	for date := r.Start; date.Before(r.End); {
		sub, err := rangeFn(cal, date)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, sub)
		if date, err = addFn(cal, sub.Start, 1); err != nil {
			return nil, err
		}
	}
	return ranges, nil
}

// RangeOf returns the range from the earliest to the latest of the
// supplied times. It returns false if fewer than two times are supplied.
func RangeOf(times []time.Time) (calendar.Range, bool) {
	if len(times) <= 1 {
		return calendar.Range{}, false
	}
	sorted := slices.SortedFunc(slices.Values(times), time.Time.Compare)
	return calendar.Range{Start: sorted[0], End: sorted[len(sorted)-1]}, true
}

// DatesConstrained returns the dates in r, as per DatesIn, that satisfy
// the supplied constraints.
func DatesConstrained(cal calendar.Calendar, r calendar.Range, dc Constraints) ([]time.Time, error) {
	dates, err := DatesIn(cal, r)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(dates, func(t time.Time) bool {
		return !dc.Include(cal, t)
	}), nil
}
