// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"slices"
	"time"

	"github.com/jinzhu/now"
	"golang.org/x/text/language"
)

// Gregorian is an implementation of Calendar for the Gregorian calendar
// system. A Gregorian is immutable once created and is safe for
// concurrent use.
type Gregorian struct {
	loc          *time.Location
	locale       language.Tag
	firstWeekday int
	minDays      int
	months       []string
	shortMonths  []string
	weekdays     []string
	cfg          *now.Config
}

type options struct {
	loc          *time.Location
	locale       language.Tag
	firstWeekday int
	minDays      int
}

// Option represents an option to NewGregorian.
type Option func(o *options)

// WithLocation sets the location (timezone) used by the calendar,
// time.Local is used by default.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

// WithLocale sets the locale used by the calendar. The locale determines
// the month and weekday names, the first day of the week and the minimum
// number of days in the first week of the year. American English is
// used by default.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithFirstWeekday overrides the first day of the week implied by the
// locale, 1 for Sunday through 7 for Saturday.
func WithFirstWeekday(weekday int) Option {
	return func(o *options) {
		o.firstWeekday = weekday
	}
}

// WithMinimumDaysInFirstWeek overrides the minimum number of days of a
// new year that must be in the first week of that year implied by the
// locale. A value of 4 combined with Monday as the first weekday yields
// ISO 8601 week numbers.
func WithMinimumDaysInFirstWeek(days int) Option {
	return func(o *options) {
		o.minDays = days
	}
}

// NewGregorian returns a new Gregorian calendar configured using the
// supplied options.
func NewGregorian(opts ...Option) (*Gregorian, error) {
	o := options{
		loc:    time.Local,
		locale: language.AmericanEnglish,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.loc == nil {
		o.loc = time.Local
	}
	if o.firstWeekday == 0 {
		o.firstWeekday = FirstWeekdayForLocale(o.locale)
	}
	if o.minDays == 0 {
		o.minDays = MinimumDaysInFirstWeekForLocale(o.locale)
	}
	if o.firstWeekday < 1 || o.firstWeekday > 7 {
		return nil, fmt.Errorf("invalid first weekday: %d, must be in the range 1-7", o.firstWeekday)
	}
	if o.minDays < 1 || o.minDays > 7 {
		return nil, fmt.Errorf("invalid minimum days in first week: %d, must be in the range 1-7", o.minDays)
	}
	ml := matchLocale(o.locale)
	return &Gregorian{
		loc:          o.loc,
		locale:       o.locale,
		firstWeekday: o.firstWeekday,
		minDays:      o.minDays,
		months:       monthNames(ml, "January"),
		shortMonths:  monthNames(ml, "Jan"),
		weekdays:     weekdayNames(ml),
		cfg: &now.Config{
			WeekStartDay: time.Weekday(o.firstWeekday - 1),
			TimeLocation: o.loc,
		},
	}, nil
}

// MustNewGregorian is like NewGregorian but panics on error.
func MustNewGregorian(opts ...Option) *Gregorian {
	g, err := NewGregorian(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Current returns a Gregorian calendar for the local timezone and the
// locale specified by the environment (see EnvironmentLocale). It is
// evaluated on every call and is never cached.
func Current() *Gregorian {
	return MustNewGregorian(WithLocation(time.Local), WithLocale(EnvironmentLocale()))
}

// In returns a copy of the calendar that uses the specified location.
func (g *Gregorian) In(loc *time.Location) *Gregorian {
	if loc == nil {
		loc = time.Local
	}
	ng := *g
	ng.loc = loc
	ng.cfg = &now.Config{
		WeekStartDay: g.cfg.WeekStartDay,
		TimeLocation: loc,
	}
	return &ng
}

// Identifier implements Calendar.
func (g *Gregorian) Identifier() Identifier {
	return GregorianIdentifier
}

// FirstWeekday implements Calendar.
func (g *Gregorian) FirstWeekday() int {
	return g.firstWeekday
}

// MinimumDaysInFirstWeek returns the minimum number of days of a new year
// that must be in the first week of that year.
func (g *Gregorian) MinimumDaysInFirstWeek() int {
	return g.minDays
}

// Location implements Calendar.
func (g *Gregorian) Location() *time.Location {
	return g.loc
}

// Locale returns the locale the calendar was created with.
func (g *Gregorian) Locale() language.Tag {
	return g.locale
}

// MonthSymbols implements Calendar.
func (g *Gregorian) MonthSymbols() []string {
	return slices.Clone(g.months)
}

// ShortMonthSymbols implements Calendar.
func (g *Gregorian) ShortMonthSymbols() []string {
	return slices.Clone(g.shortMonths)
}

// WeekdaySymbols implements WeekdayNamer.
func (g *Gregorian) WeekdaySymbols() []string {
	return slices.Clone(g.weekdays)
}

func (g *Gregorian) String() string {
	return fmt.Sprintf("%s: %s: %s: first weekday: %s", GregorianIdentifier, g.locale, g.loc, time.Weekday(g.firstWeekday-1))
}

// Component implements Calendar. It returns 0 for unsupported components.
func (g *Gregorian) Component(c Component, t time.Time) int {
	t = t.In(g.loc)
	switch c {
	case Year:
		return t.Year()
	case Month:
		return int(t.Month())
	case WeekOfYear:
		return g.weekOfYear(t)
	case Day:
		return t.Day()
	case Weekday:
		return int(t.Weekday()) + 1
	case Hour:
		return t.Hour()
	case Minute:
		return t.Minute()
	case Second:
		return t.Second()
	}
	return 0
}

// DateByAdding implements Calendar. Years and months are added to the
// calendar date with the day of the month clamped to the number of days
// in the resulting month, so that January 31st plus one month is the last
// day of February. Days and weeks are added to the calendar date leaving
// the wall clock time unchanged, hours, minutes and seconds are added as
// elapsed time.
func (g *Gregorian) DateByAdding(c Component, value int, t time.Time) (time.Time, error) {
	t = t.In(g.loc)
	switch c {
	case Year:
		return addMonths(t, value*12), nil
	case Month:
		return addMonths(t, value), nil
	case WeekOfYear:
		return t.AddDate(0, 0, value*7), nil
	case Day:
		return t.AddDate(0, 0, value), nil
	case Hour:
		return t.Add(time.Duration(value) * time.Hour), nil
	case Minute:
		return t.Add(time.Duration(value) * time.Minute), nil
	case Second:
		return t.Add(time.Duration(value) * time.Second), nil
	}
	return time.Time{}, fmt.Errorf("adding %v: %w", c, ErrUnsupportedComponent)
}

// DateInterval implements Calendar. Years, months, weeks and days are
// computed using calendar dates in the calendar's location and hence
// may not be a multiple of 24 hours across daylight saving transitions.
func (g *Gregorian) DateInterval(c Component, t time.Time) (Range, error) {
	n := g.cfg.With(t.In(g.loc))
	var start, end time.Time
	switch c {
	case Year:
		start = n.BeginningOfYear()
		end = start.AddDate(1, 0, 0)
	case Month:
		start = n.BeginningOfMonth()
		end = start.AddDate(0, 1, 0)
	case WeekOfYear:
		start = n.BeginningOfWeek()
		end = start.AddDate(0, 0, 7)
	case Day:
		start = n.BeginningOfDay()
		end = start.AddDate(0, 0, 1)
	case Hour:
		start = n.BeginningOfHour()
		end = start.Add(time.Hour)
	case Minute:
		start = n.BeginningOfMinute()
		end = start.Add(time.Minute)
	case Second:
		start = n.Time.Truncate(time.Second)
		end = start.Add(time.Second)
	default:
		return Range{}, fmt.Errorf("interval for %v: %w", c, ErrUnsupportedComponent)
	}
	return Range{Start: start, End: end}, nil
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	years := total / 12
	months := total % 12
	if months < 0 {
		months += 12
		years--
	}
	ny, nm := y+years, time.Month(months+1)
	if dim := DaysInMonth(ny, nm); d > dim {
		d = dim
	}
	return time.Date(ny, nm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// firstWeekStart returns the start of the first week of the specified year.
func (g *Gregorian) firstWeekStart(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := adjustedIndex(jan1.Weekday(), g.firstWeekday)
	if 7-offset >= g.minDays {
		return jan1.AddDate(0, 0, -offset)
	}
	return jan1.AddDate(0, 0, 7-offset)
}

// weekOfYear computes the week number using calendar dates expressed
// in UTC to avoid daylight saving transitions.
func (g *Gregorian) weekOfYear(t time.Time) int {
	y, m, d := t.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := g.firstWeekStart(y)
	if date.Before(start) {
		start = g.firstWeekStart(y - 1)
	} else if next := g.firstWeekStart(y + 1); !date.Before(next) {
		start = next
	}
	days := int(date.Sub(start).Hours()) / 24
	return days/7 + 1
}
