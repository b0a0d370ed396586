// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"strings"
	"time"

	"cloudeng.io/calendar"
	bizcal "github.com/rickar/cal/v2"
)

// Constraints represents constraints on date values such
// as weekends or custom dates to exclude. Custom dates take precedence
// over weekdays and weekends, which in turn take precedence over
// the business calendar.
type Constraints struct {
	Weekdays       bool                     // If true, include weekdays
	Weekends       bool                     // If true, include weekends
	Custom         DateList                 // If non-empty, exclude these dates
	CustomCalendar CalendarDateList         // If non-empty, exclude these calendar dates
	Business       *bizcal.BusinessCalendar // If non-nil, exclude non-workdays
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Custom) > 0 || len(dc.CustomCalendar) > 0 {
		out.WriteString("excluding custom dates: ")
		out.WriteString(dc.Custom.String())
		if len(dc.Custom) > 0 && len(dc.CustomCalendar) > 0 {
			out.WriteString(", ")
		}
		out.WriteString(dc.CustomCalendar.String())
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case dc.Weekdays:
		out.WriteString("weekdays only")
	case dc.Weekends:
		out.WriteString("weekends only")
	}
	if dc.Business != nil {
		out.WriteString(" (business days)")
	}
	return strings.TrimSpace(out.String())
}

// Include returns true if the given date satisfies the constraints.
// The date is interpreted in cal.
// An empty set Constraints will return true, ie. include all dates.
func (dc Constraints) Include(cal calendar.Calendar, when time.Time) bool {
	cd := NewCalendarDate(cal, when)
	if dc.Custom.Contains(cd.Date()) || dc.CustomCalendar.Contains(cd) {
		return false
	}
	weekday := time.Weekday(cal.Component(calendar.Weekday, when) - 1)
	weekend := weekday == time.Saturday || weekday == time.Sunday
	switch {
	case dc.Weekdays && dc.Weekends:
	case dc.Weekdays && weekend:
		return false
	case dc.Weekends && !weekend:
		return false
	}
	if dc.Business != nil {
		return dc.Business.IsWorkday(when.In(cal.Location()))
	}
	return true
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0 && len(dc.CustomCalendar) == 0 && dc.Business == nil
}
