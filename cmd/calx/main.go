// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calx exercises the calendar packages from the command line.
package main

import (
	"context"
	"log/slog"
	"os"

	"cloudeng.io/calendar"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

type CommonFlags struct {
	Config   string `subcmd:"config,,YAML calendar configuration file"`
	Locale   string `subcmd:"locale,,'locale to use, eg. en-GB, overrides the configuration file'"`
	Timezone string `subcmd:"timezone,,'timezone to use, eg. Europe/Berlin, overrides the configuration file'"`
	Verbose  bool   `subcmd:"verbose,false,enable verbose logging"`
}

type weekdayFlags struct {
	CommonFlags
}

type rangesFlags struct {
	CommonFlags
	Unit     string `subcmd:"unit,week,'one of day, week or month'"`
	Weekdays bool   `subcmd:"weekdays,false,only include weekdays when the unit is day"`
	Weekends bool   `subcmd:"weekends,false,only include weekends when the unit is day"`
	Holidays string `subcmd:"holidays,,'exclude the national holidays of the named country (us) when the unit is day'"`
}

type parseFlags struct {
	CommonFlags
}

type addFlags struct {
	CommonFlags
}

var cmdSet *subcmd.CommandSet

func init() {
	weekdayFlagSet := subcmd.MustRegisterFlagStruct(&weekdayFlags{}, nil, nil)
	wcmd := subcmd.NewCommand("weekday-indices", weekdayFlagSet, weekdayIndicesCmd, subcmd.ExactlyNumArguments(0))
	wcmd.Document(`print the weekday indices and names in the order used by the calendar.`)

	rangesFlagSet := subcmd.MustRegisterFlagStruct(&rangesFlags{}, nil, nil)
	rcmd := subcmd.NewCommand("ranges", rangesFlagSet, rangesCmd, subcmd.ExactlyNumArguments(2))
	rcmd.Document(`print the days, weeks or months that span the range between two dates.`, "<from> <to>")

	parseFlagSet := subcmd.MustRegisterFlagStruct(&parseFlags{}, nil, nil)
	pcmd := subcmd.NewCommand("parse", parseFlagSet, parseCmd, subcmd.ExactlyNumArguments(1))
	pcmd.Document(`loosely parse a date, eg. '08.01.2001' or '3 march'.`, "<text>")

	addFlagSet := subcmd.MustRegisterFlagStruct(&addFlags{}, nil, nil)
	acmd := subcmd.NewCommand("add", addFlagSet, addCmd, subcmd.ExactlyNumArguments(2))
	acmd.Document(`add an ISO8601 period, eg. P1M2D, to a date.`, "<date> <period>")

	cmdSet = subcmd.NewCommandSet(wcmd, rcmd, pcmd, acmd)
	cmdSet.Document(`calendar aware date arithmetic, ranges and parsing.

Dates are parsed loosely: numbers greater than 1970 are years, numbers preceded
by a period are months and all other numbers up to 31 are days. Words are
matched against the month names of the calendar's locale. Missing values
default to today.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

// calendarFor creates the calendar specified by the configuration file,
// if any, and the command line flags. It also configures logging.
func (cf CommonFlags) calendarFor(ctx context.Context) (context.Context, *calendar.Gregorian, error) {
	level := slog.LevelWarn
	if cf.Verbose {
		level = slog.LevelDebug
	}
	ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: level})
	var cfg calendar.Config
	if len(cf.Config) > 0 {
		var err error
		if cfg, err = calendar.ReadConfig(cf.Config); err != nil {
			return ctx, nil, err
		}
		ctxlog.Logger(ctx).Debug("read configuration", "file", cf.Config)
	}
	if len(cf.Locale) > 0 {
		cfg.Locale = cf.Locale
	}
	if len(cf.Timezone) > 0 {
		cfg.Timezone = cf.Timezone
	}
	cal, err := cfg.Calendar()
	if err != nil {
		return ctx, nil, err
	}
	ctxlog.Logger(ctx).Debug("calendar", "calendar", cal.String(), "first_weekday", cal.FirstWeekday(), "minimum_days_in_first_week", cal.MinimumDaysInFirstWeek())
	return ctx, cal, nil
}
