// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/dates"
	"cloudeng.io/calendar/parse"
	"cloudeng.io/logging/ctxlog"
	bizcal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const dateLayout = "Mon 2006-01-02 15:04:05 MST"

func weekdayIndicesCmd(ctx context.Context, values any, _ []string) error {
	fv := values.(*weekdayFlags)
	_, cal, err := fv.calendarFor(ctx)
	if err != nil {
		return err
	}
	printWeekdays(os.Stdout, cal)
	return nil
}

func printWeekdays(w io.Writer, cal calendar.Calendar) {
	names := calendar.WeekdaySymbols(cal)
	for i, idx := range calendar.AdjustedWeekdayIndices(cal) {
		fmt.Fprintf(w, "%d: %s\n", idx, names[i])
	}
}

func rangesCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*rangesFlags)
	ctx, cal, err := fv.calendarFor(ctx)
	if err != nil {
		return err
	}
	from, err := parse.Parse(cal, args[0])
	if err != nil {
		return err
	}
	to, err := parse.Parse(cal, args[1])
	if err != nil {
		return err
	}
	dc := dates.Constraints{Weekdays: fv.Weekdays, Weekends: fv.Weekends}
	if len(fv.Holidays) > 0 {
		if dc.Business, err = businessCalendar(fv.Holidays); err != nil {
			return err
		}
	}
	r := calendar.NewRange(from, to)
	ctxlog.Logger(ctx).Debug("ranges", "unit", fv.Unit, "range", r.String(), "constraints", dc.String())
	return printRanges(os.Stdout, cal, fv.Unit, r, dc)
}

func businessCalendar(country string) (*bizcal.BusinessCalendar, error) {
	switch strings.ToLower(country) {
	case "us":
		bc := bizcal.NewBusinessCalendar()
		bc.AddHoliday(us.Holidays...)
		return bc, nil
	}
	return nil, fmt.Errorf("unsupported holiday calendar: %q", country)
}

func printRanges(w io.Writer, cal calendar.Calendar, unit string, r calendar.Range, dc dates.Constraints) error {
	var ranges []calendar.Range
	var err error
	switch unit {
	case "day":
		var days []time.Time
		if days, err = dates.DatesConstrained(cal, r, dc); err != nil {
			return err
		}
		for _, d := range days {
			fmt.Fprintln(w, d.Format(dateLayout))
		}
		return nil
	case "week":
		ranges, err = dates.WeeksIn(cal, r)
	case "month":
		ranges, err = dates.MonthsIn(cal, r)
	default:
		return fmt.Errorf("unsupported unit: %q", unit)
	}
	if err != nil {
		return err
	}
	for _, sub := range ranges {
		fmt.Fprintf(w, "%v ... %v\n", sub.Start.Format(dateLayout), sub.End.Format(dateLayout))
	}
	return nil
}

func parseCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*parseFlags)
	ctx, cal, err := fv.calendarFor(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	ctxlog.Logger(ctx).Debug("parse", "text", args[0], "components", parse.ComponentsFrom(cal, args[0], now).String())
	when, err := parse.ParseAt(cal, args[0], now)
	if err != nil {
		return err
	}
	fmt.Println(when.Format(dateLayout))
	return nil
}

func addCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*addFlags)
	_, cal, err := fv.calendarFor(ctx)
	if err != nil {
		return err
	}
	when, err := parse.Parse(cal, args[0])
	if err != nil {
		return err
	}
	result, err := addPeriod(cal, when, args[1])
	if err != nil {
		return err
	}
	fmt.Println(result.Format(dateLayout))
	return nil
}

func addPeriod(cal calendar.Calendar, when time.Time, period string) (time.Time, error) {
	p, err := dates.ParsePeriod(period)
	if err != nil {
		return time.Time{}, err
	}
	return p.In(cal).AddTo(when)
}
