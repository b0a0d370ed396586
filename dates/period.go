// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/calendar"
)

var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

// Period is a sequence of calendar-relative Durations, typically parsed
// from an ISO8601 duration such as P1Y2M3DT4H.
type Period []Duration

var (
	dateDesignators = map[byte]calendar.Component{
		'Y': calendar.Year,
		'M': calendar.Month,
		'W': calendar.WeekOfYear,
		'D': calendar.Day,
	}
	timeDesignators = map[byte]calendar.Component{
		'H': calendar.Hour,
		'M': calendar.Minute,
		'S': calendar.Second,
	}
	designators = map[calendar.Component]byte{
		calendar.Year:       'Y',
		calendar.Month:      'M',
		calendar.WeekOfYear: 'W',
		calendar.Day:        'D',
		calendar.Hour:       'H',
		calendar.Minute:     'M',
		calendar.Second:     'S',
	}
)

func consumeN(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// ParsePeriod parses a duration string in the ISO8601 format
// [-]PnYnMnWnDTnHnMnS into a Period. Only integer values are supported
// and each designator may appear at most once, in the order shown.
// A leading - negates every component. P on its own is an empty Period,
// but a T must be followed by at least one time component.
func ParsePeriod(dur string) (Period, error) {
	orig := dur
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return nil, fmt.Errorf("duration must start with P or -P: %s: %w", orig, ErrInvalidISO8601Duration)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	var period Period
	var last calendar.Component
	table, inTime, timeComponents := dateDesignators, false, 0
	for len(dur) > 0 {
		if dur[0] == 'T' {
			if inTime {
				return nil, fmt.Errorf("duplicate T: %s: %w", orig, ErrInvalidISO8601Duration)
			}
			table, inTime = timeDesignators, true
			dur = dur[1:]
			continue
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return nil, err
		}
		dur = dur[idx:]
		unit, ok := table[designator]
		if !ok {
			return nil, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
		}
		if unit <= last {
			return nil, fmt.Errorf("duplicate or out of order designator: %c: %s: %w", designator, orig, ErrInvalidISO8601Duration)
		}
		last = unit
		if inTime {
			timeComponents++
		}
		if hasNP {
			n = -n
		}
		period = append(period, Duration{value: n, unit: unit})
	}
	if inTime && timeComponents == 0 {
		return nil, fmt.Errorf("T without time components: %s: %w", orig, ErrInvalidISO8601Duration)
	}
	return period, nil
}

// In returns a copy of the Period with every Duration applied in cal.
func (p Period) In(cal calendar.Calendar) Period {
	np := make(Period, len(p))
	for i, d := range p {
		np[i] = d.In(cal)
	}
	return np
}

// AddTo applies each Duration in turn, starting with t.
func (p Period) AddTo(t time.Time) (time.Time, error) {
	for _, d := range p {
		var err error
		if t, err = d.Add(t); err != nil {
			return time.Time{}, err
		}
	}
	return t, nil
}

// String returns the ISO8601 representation of the Period. Mixed signs
// cannot be represented and are written using the sign of the first
// Duration. Durations are written in designator order, largest unit
// first, regardless of the order in which they are applied.
func (p Period) String() string {
	if len(p) == 0 {
		return "P0D"
	}
	var out strings.Builder
	if p[0].value < 0 {
		out.WriteByte('-')
	}
	out.WriteByte('P')
	inTime := false
	for _, d := range slices.SortedStableFunc(slices.Values(p), func(a, b Duration) int {
		return cmp.Compare(a.unit, b.unit)
	}) {
		if d.unit >= calendar.Hour && !inTime {
			out.WriteByte('T')
			inTime = true
		}
		v := d.value
		if v < 0 {
			v = -v
		}
		out.WriteString(strconv.Itoa(v))
		out.WriteByte(designators[d.unit])
	}
	return out.String()
}
