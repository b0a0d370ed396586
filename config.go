// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"os"
	"time"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the YAML configuration of a Gregorian calendar, eg.
//
//	locale: de-DE
//	timezone: Europe/Berlin
//	first_weekday: monday
//	minimum_days_in_first_week: 4
//
// All fields are optional.
type Config struct {
	Locale                 string         `yaml:"locale"`
	Timezone               string         `yaml:"timezone"`
	FirstWeekday           ConfigWeekday  `yaml:"first_weekday"`
	MinimumDaysInFirstWeek int            `yaml:"minimum_days_in_first_week"`
	Extra                  map[string]any `yaml:",inline"`
}

// ConfigWeekday is a weekday, 1 (Sunday) to 7 (Saturday), that may be
// specified in YAML either numerically or by name. The zero value means
// that the weekday is not set.
type ConfigWeekday int

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *ConfigWeekday) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: weekday must be a scalar", value.Line)
	}
	n, err := ParseWeekday(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*w = ConfigWeekday(n)
	return nil
}

// ParseConfig parses a YAML calendar configuration.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadConfig reads and parses a YAML calendar configuration from the
// specified file.
func ReadConfig(file string) (Config, error) {
	spec, err := os.ReadFile(file)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(spec)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return cfg, nil
}

// Validate returns all of the errors found in the configuration.
func (c Config) Validate() error {
	errs := &errors.M{}
	for k := range c.Extra {
		errs.Append(fmt.Errorf("unrecognised field: %q", k))
	}
	if len(c.Locale) > 0 {
		if _, ok := ParseLocale(c.Locale); !ok {
			errs.Append(fmt.Errorf("invalid locale: %q", c.Locale))
		}
	}
	if len(c.Timezone) > 0 {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			errs.Append(fmt.Errorf("invalid timezone: %q: %w", c.Timezone, err))
		}
	}
	if c.FirstWeekday < 0 || c.FirstWeekday > 7 {
		errs.Append(fmt.Errorf("invalid first weekday: %d", c.FirstWeekday))
	}
	if c.MinimumDaysInFirstWeek < 0 || c.MinimumDaysInFirstWeek > 7 {
		errs.Append(fmt.Errorf("invalid minimum days in first week: %d", c.MinimumDaysInFirstWeek))
	}
	return errs.Err()
}

// Options returns the options for NewGregorian that correspond to the
// configuration. The locale defaults to that of the environment and the
// timezone to time.Local.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []Option{WithLocale(EnvironmentLocale()), WithLocation(time.Local)}
	if len(c.Locale) > 0 {
		tag, _ := ParseLocale(c.Locale)
		opts = append(opts, WithLocale(tag))
	}
	if len(c.Timezone) > 0 {
		loc, _ := time.LoadLocation(c.Timezone)
		opts = append(opts, WithLocation(loc))
	}
	if c.FirstWeekday != 0 {
		opts = append(opts, WithFirstWeekday(int(c.FirstWeekday)))
	}
	if c.MinimumDaysInFirstWeek != 0 {
		opts = append(opts, WithMinimumDaysInFirstWeek(c.MinimumDaysInFirstWeek))
	}
	return opts, nil
}

// Calendar returns the Gregorian calendar described by the configuration.
func (c Config) Calendar() (*Gregorian, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return NewGregorian(opts...)
}
