// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package parse provides a loose, heuristic parser for dates embedded in
// free form text, such as "08.01.2001" or "3 march". It is not a general
// purpose date format parser: numbers greater than 1970 are taken to be
// years, numbers between 1 and 31 are taken to be days unless immediately
// preceded by a period in which case they are taken to be months, and
// words are matched against the calendar's month names. Components that
// are not found default to those of the current date.
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/dates"
	"golang.org/x/text/cases"
)

var (
	// ErrNoMatch is returned when the components extracted from the text
	// do not refer to a date that exists.
	ErrNoMatch = errors.New("no date matches")
	// ErrInvalidPattern is returned when a regular expression fails to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

var (
	numberRe  = regexp.MustCompile(`[[:punct:]]*?[0-9]+[[:punct:]]*?`)
	digitsRe  = regexp.MustCompile(`[0-9]+`)
	lettersRe = regexp.MustCompile(`\pL+`)
)

// Matching returns all non-overlapping matches of pattern in s.
func Matching(s, pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %v", pattern, ErrInvalidPattern, err)
	}
	return re.FindAllString(s, -1), nil
}

// ComponentsFrom extracts the year, month and day from text. Components
// not present in text are taken from now as seen in cal. Each word in text
// is compared, ignoring case, against every month name of cal and a word
// that is contained in a month name selects that month. Every word and every
// month name is considered, so when more than one matches the last match
// determines the month.
func ComponentsFrom(cal calendar.Calendar, text string, now time.Time) dates.CalendarDate {
	cd := dates.NewCalendarDate(cal, now)
	for _, tok := range numberRe.FindAllString(text, -1) {
		n, err := strconv.Atoi(digitsRe.FindString(tok))
		if err != nil {
			continue
		}
		switch {
		case n > 1970:
			cd.Year = n
		case n > 0 && n <= 31:
			if strings.HasPrefix(tok, ".") {
				cd.Month = time.Month(n)
			} else {
				cd.Day = n
			}
		}
	}
	fold := cases.Fold()
	months := cal.MonthSymbols()
	for i := range months {
		months[i] = fold.String(months[i])
	}
	for _, word := range lettersRe.FindAllString(text, -1) {
		word = fold.String(word)
		for i, name := range months {
			if strings.Contains(name, word) {
				cd.Month = time.Month(i + 1)
			}
		}
	}
	return cd
}

// Resolve returns the first instant of the date specified by cd in cal's
// location, or ErrNoMatch if no such date exists, eg. February 30th or
// a month of 13.
func Resolve(cal calendar.Calendar, cd dates.CalendarDate) (time.Time, error) {
	if !cd.Valid() {
		return time.Time{}, fmt.Errorf("%v: %w", cd, ErrNoMatch)
	}
	return dates.StartOfDay(cal, cd.Time(cal.Location()))
}

// ParseAt parses text as per ComponentsFrom, using now for the default
// components, and resolves the result as per Resolve.
func ParseAt(cal calendar.Calendar, text string, now time.Time) (time.Time, error) {
	return Resolve(cal, ComponentsFrom(cal, text, now))
}

// Parse is like ParseAt with now set to the current time.
func Parse(cal calendar.Calendar, text string) (time.Time, error) {
	return ParseAt(cal, text, time.Now())
}
