// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides a calendar abstraction over the time package
// that supports component extraction, calendar-aware date arithmetic and
// the computation of the day, week, month and year containing a given
// instant. Localization determines the first day of the week and the
// names used for months and weekdays.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Identifier identifies a calendar system.
type Identifier string

// GregorianIdentifier is the only calendar system currently supported.
const GregorianIdentifier Identifier = "gregorian"

// Component represents a calendar component such as a year or day.
type Component int

const (
	Year Component = iota + 1
	Month
	WeekOfYear
	Day
	Weekday
	Hour
	Minute
	Second
)

var componentNames = []string{"year", "month", "week", "day", "weekday", "hour", "minute", "second"}

func (c Component) String() string {
	if c < Year || c > Second {
		return fmt.Sprintf("component(%d)", int(c))
	}
	return componentNames[c-1]
}

// ErrUnsupportedComponent is returned (wrapped) by calendar operations
// that are not defined for the requested component.
var ErrUnsupportedComponent = errors.New("unsupported calendar component")

// Calendar represents the capabilities of a calendar system that are
// required by this module and its sub-packages. Implementations must be
// safe for concurrent use.
type Calendar interface {
	Identifier() Identifier
	// FirstWeekday returns the first day of the week, 1 for Sunday through
	// 7 for Saturday.
	FirstWeekday() int
	Location() *time.Location
	// MonthSymbols returns the localized full month names, January first.
	MonthSymbols() []string
	// ShortMonthSymbols returns the localized abbreviated month names.
	ShortMonthSymbols() []string
	// Component returns the value of the specified component for t in the
	// calendar's location. Weekday is returned as 1 (Sunday) to 7 (Saturday).
	Component(c Component, t time.Time) int
	// DateByAdding returns t with value units of c added to it.
	DateByAdding(c Component, value int, t time.Time) (time.Time, error)
	// DateInterval returns the half-open range of the day, week, month
	// or year (etc) that contains t.
	DateInterval(c Component, t time.Time) (Range, error)
}

// WeekdayNamer may be implemented by a Calendar to provide localized
// weekday names.
type WeekdayNamer interface {
	// WeekdaySymbols returns the localized weekday names, Sunday first.
	WeekdaySymbols() []string
}

// Range represents a half-open range of instants [Start, End).
type Range struct {
	Start, End time.Time
}

// NewRange returns a new Range, if end is before start they are swapped.
func NewRange(start, end time.Time) Range {
	if end.Before(start) {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// Contains returns true if t is within the range, ie. on or after Start
// and before End.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Empty returns true if the range contains no instants.
func (r Range) Empty() bool {
	return !r.Start.Before(r.End)
}

// Duration returns the elapsed time between Start and End.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Equal returns true if both ranges represent the same instants.
func (r Range) Equal(o Range) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
}
