// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"os"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Locales for which localized month and weekday names are available,
// the first entry is used as the fallback.
var supportedLocales = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("en-GB"),
	language.MustParse("de-DE"),
	language.MustParse("fr-FR"),
	language.MustParse("fr-CA"),
	language.MustParse("es-ES"),
	language.MustParse("ca-ES"),
	language.MustParse("it-IT"),
	language.MustParse("nl-NL"),
	language.MustParse("nl-BE"),
	language.MustParse("pt-PT"),
	language.MustParse("pt-BR"),
	language.MustParse("da-DK"),
	language.MustParse("nb-NO"),
	language.MustParse("nn-NO"),
	language.MustParse("sv-SE"),
	language.MustParse("fi-FI"),
	language.MustParse("pl-PL"),
	language.MustParse("cs-CZ"),
	language.MustParse("hu-HU"),
	language.MustParse("ro-RO"),
	language.MustParse("bg-BG"),
	language.MustParse("ru-RU"),
	language.MustParse("uk-UA"),
	language.MustParse("tr-TR"),
	language.MustParse("el-GR"),
	language.MustParse("ja-JP"),
	language.MustParse("ko-KR"),
	language.MustParse("zh-CN"),
	language.MustParse("zh-TW"),
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Regions whose week starts on Sunday or Saturday, all others start on
// Monday. Derived from the CLDR weekData.
var (
	sundayRegions = map[string]bool{
		"AG": true, "AS": true, "BD": true, "BR": true, "BS": true, "BT": true,
		"BW": true, "BZ": true, "CA": true, "CN": true, "CO": true, "DM": true,
		"DO": true, "ET": true, "GT": true, "GU": true, "HK": true, "HN": true,
		"ID": true, "IL": true, "IN": true, "JM": true, "JP": true, "KE": true,
		"KH": true, "KR": true, "LA": true, "MH": true, "MM": true, "MO": true,
		"MT": true, "MX": true, "MZ": true, "NI": true, "NP": true, "PA": true,
		"PE": true, "PH": true, "PK": true, "PR": true, "PT": true, "PY": true,
		"SA": true, "SG": true, "SV": true, "TH": true, "TT": true, "TW": true,
		"UM": true, "US": true, "VE": true, "VI": true, "WS": true, "YE": true,
		"ZA": true, "ZW": true,
	}
	saturdayRegions = map[string]bool{
		"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true,
		"IQ": true, "IR": true, "JO": true, "KW": true, "LY": true, "OM": true,
		"QA": true, "SD": true, "SY": true,
	}
	// Regions that require four days of the new year in the first week
	// of the year (ISO 8601 style), all others require one.
	fourDayRegions = map[string]bool{
		"AD": true, "AN": true, "AT": true, "AX": true, "BE": true, "BG": true,
		"CH": true, "CZ": true, "DE": true, "DK": true, "EE": true, "ES": true,
		"FI": true, "FJ": true, "FO": true, "FR": true, "GB": true, "GF": true,
		"GG": true, "GI": true, "GP": true, "GR": true, "HU": true, "IE": true,
		"IM": true, "IS": true, "IT": true, "JE": true, "LI": true, "LT": true,
		"LU": true, "MC": true, "MQ": true, "NL": true, "NO": true, "PL": true,
		"PT": true, "RE": true, "RU": true, "SE": true, "SJ": true, "SK": true,
		"SM": true, "VA": true,
	}
)

func region(tag language.Tag) string {
	r, _ := tag.Region()
	return r.String()
}

// FirstWeekdayForLocale returns the first day of the week, 1 (Sunday)
// to 7 (Saturday), customarily used in the region of the supplied locale.
// The region is inferred when the locale does not specify one.
func FirstWeekdayForLocale(tag language.Tag) int {
	r := region(tag)
	switch {
	case sundayRegions[r]:
		return 1
	case saturdayRegions[r]:
		return 7
	}
	return 2
}

// MinimumDaysInFirstWeekForLocale returns the minimum number of days of
// a new year that must fall in the first week of that year for the
// region of the supplied locale.
func MinimumDaysInFirstWeekForLocale(tag language.Tag) int {
	if fourDayRegions[region(tag)] {
		return 4
	}
	return 1
}

// matchLocale returns the closest supported locale to tag in the form
// used for month and weekday names.
func matchLocale(tag language.Tag) monday.Locale {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	match := supportedLocales[idx]
	base, _ := match.Base()
	return monday.Locale(base.String() + "_" + region(match))
}

func monthNames(locale monday.Locale, layout string) []string {
	names := make([]string, 12)
	for i := range names {
		when := time.Date(2006, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		names[i] = monday.Format(when, layout, locale)
	}
	return names
}

func weekdayNames(locale monday.Locale) []string {
	// 2006-01-01 was a Sunday.
	names := make([]string, 7)
	for i := range names {
		when := time.Date(2006, time.January, i+1, 0, 0, 0, 0, time.UTC)
		names[i] = monday.Format(when, "Monday", locale)
	}
	return names
}

// EnvironmentLocale returns the locale named by the LC_ALL, LC_TIME or
// LANG environment variables, consulted in that order. Values such as
// "de_DE.UTF-8" are accepted. American English is returned if none
// are set or the value cannot be parsed.
func EnvironmentLocale() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		val := os.Getenv(env)
		if len(val) == 0 {
			continue
		}
		if tag, ok := ParseLocale(val); ok {
			return tag
		}
	}
	return language.AmericanEnglish
}

// ParseLocale parses a BCP 47 language tag or a POSIX locale name such as
// "en_GB.UTF-8@euro".
func ParseLocale(val string) (language.Tag, bool) {
	if idx := strings.IndexAny(val, ".@"); idx >= 0 {
		val = val[:idx]
	}
	switch val {
	case "", "C", "POSIX":
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(val, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
