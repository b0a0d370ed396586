// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"cloudeng.io/calendar"
)

// Date represents a month and day that recurs every year.
type Date struct {
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%s %02d", d.Month, d.Day)
}

// DateList is a list of recurring dates.
type DateList []Date

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		fmt.Fprintf(&out, "%02d-%02d", int(d.Month), d.Day)
	}
	return out.String()
}

// Contains returns true if d is in the list.
func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

// CalendarDate represents a date with a year, month and day as seen
// in a specific calendar.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for t in cal.
func NewCalendarDate(cal calendar.Calendar, t time.Time) CalendarDate {
	return CalendarDate{
		Year:  cal.Component(calendar.Year, t),
		Month: time.Month(cal.Component(calendar.Month, t)),
		Day:   cal.Component(calendar.Day, t),
	}
}

// Date returns the recurring Date for the CalendarDate.
func (cd CalendarDate) Date() Date {
	return Date{Month: cd.Month, Day: cd.Day}
}

// Valid returns true if the CalendarDate refers to a day that exists,
// eg. February 29th is only valid in a leap year.
func (cd CalendarDate) Valid() bool {
	return cd.Day >= 1 && cd.Day <= calendar.DaysInMonth(cd.Year, cd.Month)
}

// Time returns the first instant of the CalendarDate in the specified
// location. The date is not validated, use Valid for that.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year, cd.Month, cd.Day, 0, 0, 0, 0, loc)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, int(cd.Month), cd.Day)
}

// CalendarDateList is a list of CalendarDates.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	return slices.Contains(cdl, d)
}
