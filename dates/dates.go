// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dates provides calendar-aware date arithmetic, range computation
// and range decomposition. All functions are evaluated relative to an
// explicitly supplied calendar.Calendar and none retain any state.
// Operations that delegate to the calendar return an error if the
// calendar does not support the components they require.
package dates

import (
	"math"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/sliceutil"
)

// DayInMonth returns the day of the month, eg. 13 for February 13th.
func DayInMonth(cal calendar.Calendar, t time.Time) int {
	return cal.Component(calendar.Day, t)
}

// MinutesInDay returns the number of minutes since midnight of the wall
// clock time of t.
func MinutesInDay(cal calendar.Calendar, t time.Time) int {
	return TimeOfDayIn(cal, t).Minutes()
}

// DayOfWeek returns the weekday, 1 for Sunday through 7 for Saturday.
func DayOfWeek(cal calendar.Calendar, t time.Time) int {
	return cal.Component(calendar.Weekday, t)
}

// AdjustedWeekdayIndex returns the zero-based offset of the weekday of t
// from the calendar's first weekday. For example, if the first weekday is
// Monday then 0 is returned for a Monday and 6 for a Sunday.
func AdjustedWeekdayIndex(cal calendar.Calendar, t time.Time) int {
	return (cal.Component(calendar.Weekday, t) + (7 - cal.FirstWeekday())) % 7
}

// Week returns the week of the year.
func Week(cal calendar.Calendar, t time.Time) int {
	return cal.Component(calendar.WeekOfYear, t)
}

// Month returns the month, 1 through 12.
func Month(cal calendar.Calendar, t time.Time) int {
	return cal.Component(calendar.Month, t)
}

// Year returns the year.
func Year(cal calendar.Calendar, t time.Time) int {
	return cal.Component(calendar.Year, t)
}

// ShortMonth returns the calendar's abbreviated name for the month of t.
func ShortMonth(cal calendar.Calendar, t time.Time) string {
	return sliceutil.AtOr(cal.ShortMonthSymbols(), Month(cal, t)-1, "")
}

// AddDays returns t with days added, days may be negative.
func AddDays(cal calendar.Calendar, t time.Time, days int) (time.Time, error) {
	return cal.DateByAdding(calendar.Day, days, t)
}

// AddWeeks returns t with weeks added, weeks may be negative.
func AddWeeks(cal calendar.Calendar, t time.Time, weeks int) (time.Time, error) {
	return cal.DateByAdding(calendar.WeekOfYear, weeks, t)
}

// AddMonths returns t with months added, months may be negative.
func AddMonths(cal calendar.Calendar, t time.Time, months int) (time.Time, error) {
	return cal.DateByAdding(calendar.Month, months, t)
}

// AddHours returns t with the possibly fractional number of hours
// added as elapsed time. Values beyond the range of a time.Duration,
// roughly 2.5 million hours, are clamped to it.
func AddHours(t time.Time, hours float64) time.Time {
	d := hours * float64(time.Hour)
	switch {
	case math.IsNaN(d):
		return t
	case d >= math.MaxInt64:
		return t.Add(math.MaxInt64)
	case d <= math.MinInt64:
		return t.Add(math.MinInt64)
	}
	return t.Add(time.Duration(d))
}

// AddDaysAndHours is equivalent to AddDays followed by AddHours.
func AddDaysAndHours(cal calendar.Calendar, t time.Time, days int, hours float64) (time.Time, error) {
	d, err := AddDays(cal, t, days)
	if err != nil {
		return time.Time{}, err
	}
	return AddHours(d, hours), nil
}

// NextDay returns t plus one day.
func NextDay(cal calendar.Calendar, t time.Time) (time.Time, error) {
	return AddDays(cal, t, 1)
}

// PreviousDay returns t minus one day.
func PreviousDay(cal calendar.Calendar, t time.Time) (time.Time, error) {
	return AddDays(cal, t, -1)
}

// NextWeek returns t plus seven days.
func NextWeek(cal calendar.Calendar, t time.Time) (time.Time, error) {
	return AddDays(cal, t, 7)
}

// PreviousWeek returns t minus seven days.
func PreviousWeek(cal calendar.Calendar, t time.Time) (time.Time, error) {
	return AddDays(cal, t, -7)
}

// StartOfDay returns the first instant of the day containing t.
func StartOfDay(cal calendar.Calendar, t time.Time) (time.Time, error) {
	r, err := DayRange(cal, t)
	return r.Start, err
}

// EndOfDay returns the last second of the day containing t, ie. one
// second before the start of the following day. Instants within that
// final second are therefore not before the value returned; use DayRange
// for a strict upper bound.
func EndOfDay(cal calendar.Calendar, t time.Time) (time.Time, error) {
	r, err := DayRange(cal, t)
	if err != nil {
		return time.Time{}, err
	}
	return r.End.Add(-time.Second), nil
}

// Noon returns twelve hours after the start of the day containing t.
func Noon(cal calendar.Calendar, t time.Time) (time.Time, error) {
	start, err := StartOfDay(cal, t)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(12 * time.Hour), nil
}

// IsLater returns true if t is strictly after u.
func IsLater(t, u time.Time) bool {
	return t.After(u)
}

// SameDay returns true if t and u fall on the same calendar day.
func SameDay(cal calendar.Calendar, t, u time.Time) (bool, error) {
	return sameInterval(cal, calendar.Day, t, u)
}

// SameWeek returns true if t and u fall in the same calendar week.
func SameWeek(cal calendar.Calendar, t, u time.Time) (bool, error) {
	return sameInterval(cal, calendar.WeekOfYear, t, u)
}

// SameMonth returns true if t and u fall in the same calendar month.
func SameMonth(cal calendar.Calendar, t, u time.Time) (bool, error) {
	return sameInterval(cal, calendar.Month, t, u)
}

func sameInterval(cal calendar.Calendar, c calendar.Component, t, u time.Time) (bool, error) {
	r, err := cal.DateInterval(c, t)
	if err != nil {
		return false, err
	}
	return r.Contains(u), nil
}

// DayRange returns the half-open range of the day containing t.
func DayRange(cal calendar.Calendar, t time.Time) (calendar.Range, error) {
	return cal.DateInterval(calendar.Day, t)
}

// WeekRange returns the half-open range of the week containing t.
func WeekRange(cal calendar.Calendar, t time.Time) (calendar.Range, error) {
	return cal.DateInterval(calendar.WeekOfYear, t)
}

// MonthRange returns the half-open range of the month containing t.
func MonthRange(cal calendar.Calendar, t time.Time) (calendar.Range, error) {
	return cal.DateInterval(calendar.Month, t)
}

// YearRange returns the half-open range of the year containing t.
func YearRange(cal calendar.Calendar, t time.Time) (calendar.Range, error) {
	return cal.DateInterval(calendar.Year, t)
}

// PreviousMonth returns the half-open range of the month preceding the
// one containing t.
func PreviousMonth(cal calendar.Calendar, t time.Time) (calendar.Range, error) {
	r, err := MonthRange(cal, t)
	if err != nil {
		return calendar.Range{}, err
	}
	mid, err := AddDays(cal, r.Start, -15)
	if err != nil {
		return calendar.Range{}, err
	}
	return MonthRange(cal, mid)
}

// LastSevenDays returns the start of each of the last seven days, oldest
// first, including the day containing t.
func LastSevenDays(cal calendar.Calendar, t time.Time) ([]time.Time, error) {
	week := make([]time.Time, 0, 7)
	for i := -6; i <= 0; i++ {
		d, err := AddDays(cal, t, i)
		if err != nil {
			return nil, err
		}
		start, err := StartOfDay(cal, d)
		if err != nil {
			return nil, err
		}
		week = append(week, start)
	}
	return week, nil
}

// LastSevenDaysRange returns the half-open range covering the last seven
// days including the day containing t.
func LastSevenDaysRange(cal calendar.Calendar, t time.Time) (calendar.Range, error) {
	week, err := LastSevenDays(cal, t)
	if err != nil {
		return calendar.Range{}, err
	}
	last, err := DayRange(cal, week[len(week)-1])
	if err != nil {
		return calendar.Range{}, err
	}
	return calendar.NewRange(week[0], last.End), nil
}

// DaysBetween returns the elapsed time from t to u in days.
func DaysBetween(t, u time.Time) float64 {
	return u.Sub(t).Hours() / 24
}

// HoursBetween returns the elapsed time from t to u in hours.
func HoursBetween(t, u time.Time) float64 {
	return u.Sub(t).Hours()
}

// MinutesBetween returns the elapsed time from t to u in whole minutes.
func MinutesBetween(t, u time.Time) int {
	return int(u.Sub(t) / time.Minute)
}

// MovingTo returns the wall clock time of t, to the second, on the
// calendar date of date.
func MovingTo(cal calendar.Calendar, t, date time.Time) time.Time {
	return TimeOfDayIn(cal, t).On(NewCalendarDate(cal, date), cal.Location())
}
