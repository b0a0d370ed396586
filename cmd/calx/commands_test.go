// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/dates"
	"golang.org/x/text/language"
)

func gbCalendar() *calendar.Gregorian {
	return calendar.MustNewGregorian(calendar.WithLocation(time.UTC), calendar.WithLocale(language.BritishEnglish))
}

func TestPrintWeekdays(t *testing.T) {
	out := &bytes.Buffer{}
	printWeekdays(out, gbCalendar())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), 7; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := lines[0], "1: Monday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := lines[6], "0: Sunday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPrintRanges(t *testing.T) {
	cal := gbCalendar()
	january := calendar.NewRange(
		time.Date(2001, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC))

	out := &bytes.Buffer{}
	if err := printRanges(out, cal, "week", january, dates.Constraints{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := lines[0], "Mon 2001-01-01 00:00:00 UTC ... Mon 2001-01-08 00:00:00 UTC"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	out.Reset()
	bc, err := businessCalendar("US")
	if err != nil {
		t.Fatal(err)
	}
	if err := printRanges(out, cal, "day", january, dates.Constraints{Business: bc}); err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	// 22 weekdays, less New Year's Day and Martin Luther King Jr. Day.
	if got, want := len(lines), 20; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := lines[0], "Tue 2001-01-02 00:00:00 UTC"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := printRanges(out, cal, "fortnight", january, dates.Constraints{}); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := businessCalendar("xx"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestAddPeriod(t *testing.T) {
	cal := gbCalendar()
	when, err := addPeriod(cal, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), "P1M1D")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := when, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := addPeriod(cal, when, "1M"); err == nil {
		t.Errorf("expected an error")
	}
}
