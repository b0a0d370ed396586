// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cloudeng.io/calendar"
)

// TimeOfDay represents a wall clock time of day to the second.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

// TimeOfDayIn returns the wall clock time of t in cal.
func TimeOfDayIn(cal calendar.Calendar, t time.Time) TimeOfDay {
	return NewTimeOfDay(
		cal.Component(calendar.Hour, t),
		cal.Component(calendar.Minute, t),
		cal.Component(calendar.Second, t))
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

// Minutes returns the number of whole minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour()*60 + t.Minute()
}

// Duration returns the time.Duration since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
}

// On returns the instant at which the wall clock in loc reads t on
// the specified date. Times that do not exist on that date, because
// of a daylight saving transition, are normalized by time.Date.
func (t TimeOfDay) On(cd CalendarDate, loc *time.Location) time.Time {
	return time.Date(cd.Year, cd.Month, cd.Day, t.Hour(), t.Minute(), t.Second(), 0, loc)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return len(s) > 0
}

func parseField(name, val string, limit int) (int, error) {
	n, err := strconv.Atoi(val)
	if !isDigits(val) || err != nil || n < 0 || n > limit {
		return 0, fmt.Errorf("invalid %s: %q", name, val)
	}
	return n, nil
}

// Parse val in formats '08[:12[:10]][am|pm]'.
func (t *TimeOfDay) Parse(val string) error {
	tl := strings.TrimSpace(strings.ToLower(val))
	if len(tl) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	ampm := ""
	if strings.HasSuffix(tl, "am") || strings.HasSuffix(tl, "pm") {
		tl, ampm = strings.TrimSpace(tl[:len(tl)-2]), tl[len(tl)-2:]
	}
	parts := strings.Split(tl, ":")
	if len(parts) > 3 {
		return fmt.Errorf("invalid format %q, expected '08[:12][:10][am|pm]'", val)
	}
	parts = append(parts, "0", "0")[:3]
	hourLimit := 23
	if ampm != "" {
		hourLimit = 12
	}
	hour, err := parseField("hour", parts[0], hourLimit)
	if err != nil {
		return err
	}
	minute, err := parseField("minute", parts[1], 59)
	if err != nil {
		return err
	}
	second, err := parseField("second", parts[2], 59)
	if err != nil {
		return err
	}
	switch {
	case ampm == "am" && hour == 12:
		hour = 0
	case ampm == "pm" && hour < 12:
		hour += 12
	}
	*t = NewTimeOfDay(hour, minute, second)
	return nil
}
