// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"time"

	"cloudeng.io/calendar"
)

// Duration represents a calendar-relative offset such as 3 days or
// -1 month. Unlike time.Duration the elapsed time it represents depends
// on the calendar and the instant it is applied to. A Duration is
// immutable.
type Duration struct {
	value int
	unit  calendar.Component
	cal   calendar.Calendar
}

// NewDuration returns a Duration of value units. The unit must be one
// of calendar.Year, Month, WeekOfYear, Day, Hour, Minute or Second.
func NewDuration(value int, unit calendar.Component) (Duration, error) {
	switch unit {
	case calendar.Year, calendar.Month, calendar.WeekOfYear, calendar.Day,
		calendar.Hour, calendar.Minute, calendar.Second:
		return Duration{value: value, unit: unit}, nil
	}
	return Duration{}, fmt.Errorf("duration unit %v: %w", unit, calendar.ErrUnsupportedComponent)
}

// Years returns a Duration of n years.
func Years(n int) Duration { return Duration{value: n, unit: calendar.Year} }

// Months returns a Duration of n months.
func Months(n int) Duration { return Duration{value: n, unit: calendar.Month} }

// Weeks returns a Duration of n weeks.
func Weeks(n int) Duration { return Duration{value: n, unit: calendar.WeekOfYear} }

// Days returns a Duration of n days.
func Days(n int) Duration { return Duration{value: n, unit: calendar.Day} }

// Hours returns a Duration of n hours.
func Hours(n int) Duration { return Duration{value: n, unit: calendar.Hour} }

// Minutes returns a Duration of n minutes.
func Minutes(n int) Duration { return Duration{value: n, unit: calendar.Minute} }

// Seconds returns a Duration of n seconds.
func Seconds(n int) Duration { return Duration{value: n, unit: calendar.Second} }

// Value returns the signed count of units.
func (d Duration) Value() int { return d.value }

// Unit returns the calendar unit.
func (d Duration) Unit() calendar.Component { return d.unit }

// Calendar returns the calendar that the Duration is applied in. If
// none has been set via In or InLocation then calendar.Current is
// returned, evaluated at the time of the call.
func (d Duration) Calendar() calendar.Calendar {
	if d.cal == nil {
		return calendar.Current()
	}
	return d.cal
}

// In returns a copy of d that is applied in cal.
func (d Duration) In(cal calendar.Calendar) Duration {
	d.cal = cal
	return d
}

// InLocation returns a copy of d that is applied in the current
// calendar pinned to loc.
func (d Duration) InLocation(loc *time.Location) Duration {
	d.cal = calendar.Current().In(loc)
	return d
}

// Neg returns d with the sign of its value flipped, the unit and
// calendar are unchanged.
func (d Duration) Neg() Duration {
	d.value = -d.value
	return d
}

// Add returns t plus d.
func (d Duration) Add(t time.Time) (time.Time, error) {
	return d.Calendar().DateByAdding(d.unit, d.value, t)
}

// Sub returns t minus d.
func (d Duration) Sub(t time.Time) (time.Time, error) {
	return d.Neg().Add(t)
}

// Add returns t plus d.
func Add(t time.Time, d Duration) (time.Time, error) {
	return d.Add(t)
}

// Sub returns t minus d.
func Sub(t time.Time, d Duration) (time.Time, error) {
	return d.Sub(t)
}

func (d Duration) String() string {
	if d.value == 1 || d.value == -1 {
		return fmt.Sprintf("%d %v", d.value, d.unit)
	}
	return fmt.Sprintf("%d %vs", d.value, d.unit)
}
