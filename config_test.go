// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/calendar"
)

const berlinConfig = `locale: de-DE
timezone: Europe/Berlin
first_weekday: sunday
minimum_days_in_first_week: 4
`

func TestConfig(t *testing.T) {
	cfg, err := calendar.ParseConfig([]byte(berlinConfig))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.FirstWeekday, calendar.ConfigWeekday(1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	cal, err := cfg.Calendar()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cal.Location().String(), "Europe/Berlin"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.FirstWeekday(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.MinimumDaysInFirstWeek(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.MonthSymbols()[11], "Dezember"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cfg, err = calendar.ParseConfig([]byte("first_weekday: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.FirstWeekday, calendar.ConfigWeekday(2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	filename := filepath.Join(t.TempDir(), "calendar.yaml")
	if err := os.WriteFile(filename, []byte(berlinConfig), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err = calendar.ReadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Locale, "de-DE"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConfigErrors(t *testing.T) {
	for _, tc := range []string{
		"first_weekday: 8\n",
		"first_weekday: funday\n",
		"first_weekday: [1, 2]\n",
	} {
		if _, err := calendar.ParseConfig([]byte(tc)); err == nil {
			t.Errorf("%q: expected an error", tc)
		}
	}

	cfg, err := calendar.ParseConfig([]byte(`locale: "!!"
timezone: Mars/Olympus_Mons
minimum_days_in_first_week: 9
colour: blue
`))
	if err != nil {
		t.Fatal(err)
	}
	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, msg := range []string{
		`invalid locale: "!!"`,
		`invalid timezone: "Mars/Olympus_Mons"`,
		`invalid minimum days in first week: 9`,
		`unrecognised field: "colour"`,
	} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("%v: missing %q", err, msg)
		}
	}
	if _, err := cfg.Calendar(); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := calendar.ReadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error")
	}
}
