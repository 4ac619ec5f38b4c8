package datefmt

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultRangeFormat is used by FormatRange when no format is supplied.
const DefaultRangeFormat = "{#years# years}{#year# year} {#months# months}{#month# month} {#days# days}{#day# day} {#hours# hours}{#hour# hour} {#minutes# minutes}{#minute# minute} {#seconds# seconds}{#second# second}"

// rangeUnits in descending magnitude order, singular names.
var rangeUnits = []string{"year", "month", "week", "day", "hour", "minute", "second"}

// groupPattern matches a placeholder with optional surrounding bracket group,
// capturing the literal text on either side of the token so it can be kept
// while the brackets are stripped. bracketPattern matches only the bracketed
// form, for deleting whole groups.
var (
	groupPattern   = map[string]*regexp.Regexp{}
	bracketPattern = map[string]*regexp.Regexp{}
)

func init() {
	for _, u := range rangeUnits {
		for _, name := range []string{u, u + "s"} {
			groupPattern[name] = regexp.MustCompile(`\{?([^{}]*)#` + name + `#([^{}]*)\}?`)
			bracketPattern[name] = regexp.MustCompile(`\{([^{}]*)#` + name + `#([^{}]*)\}`)
		}
	}
}

// FormatRange renders the difference between two Unix timestamps as a prose
// phrase. The format template language is described in the package
// documentation; an empty format uses DefaultRangeFormat. A nil location
// defaults to time.Local. Placeholders for units the template does not
// reference are skipped entirely, rolling their time into the next smaller
// referenced unit. Malformed templates are never an error: unmatched
// placeholders are simply left in place.
func FormatRange(startTS, endTS int64, format string, loc *time.Location) string {
	if format == "" {
		format = DefaultRangeFormat
	}
	if loc == nil {
		loc = time.Local
	}

	// A negative range is computed as its positive mirror and the sign is
	// reapplied to every substituted quantity.
	sign := ""
	if endTS < startTS {
		sign = "-"
		startTS, endTS = endTS, startTS
	}

	start := time.Unix(startTS, 0).In(loc)
	end := time.Unix(endTS, 0).In(loc)

	if wantsUnit(format, "year") {
		years := end.Year() - start.Year()
		// Counting calendar years can overshoot when the end is earlier in
		// its year than the start is in its own (leap days included).
		for years > 0 && start.AddDate(years, 0, 0).Unix() > endTS {
			years--
		}
		format = substituteUnit(format, "year", int64(years), sign)
		start = start.AddDate(years, 0, 0)
		startTS = start.Unix()
	}

	if wantsUnit(format, "month") {
		years := end.Year() - start.Year()
		months := years*12 + int(end.Month()) - int(start.Month())
		// Month adds normalize overflow (Jan 31 + 1 month lands in March),
		// so a single borrow is not always enough.
		for months > 0 && start.AddDate(0, months, 0).Unix() > endTS {
			months--
		}
		format = substituteUnit(format, "month", int64(months), sign)
		start = start.AddDate(0, months, 0)
		startTS = start.Unix()
	}

	if wantsUnit(format, "week") {
		weeks := (endTS - startTS) / 604800
		// Checked against a calendar add so a DST transition inside the
		// span cannot push the consumed weeks past the end.
		for weeks > 0 && start.AddDate(0, 0, int(weeks)*7).Unix() > endTS {
			weeks--
		}
		format = substituteUnit(format, "week", weeks, sign)
		start = start.AddDate(0, 0, int(weeks)*7)
		startTS = start.Unix()
	}

	if wantsUnit(format, "day") {
		days := (endTS - startTS) / 86400
		for days > 0 && start.AddDate(0, 0, int(days)).Unix() > endTS {
			days--
		}
		format = substituteUnit(format, "day", days, sign)
		start = start.AddDate(0, 0, int(days))
		startTS = start.Unix()
	}

	if wantsUnit(format, "hour") {
		hours := (endTS - startTS) / 3600
		format = substituteUnit(format, "hour", hours, sign)
		// Hours are a fixed length, so advance the raw timestamp rather
		// than the calendar: the resulting wall clock then reflects any
		// zone offset change inside the consumed span.
		startTS += hours * 3600
		start = time.Unix(startTS, 0).In(loc)
	}

	if wantsUnit(format, "minute") {
		minutes := (endTS - startTS) / 60
		format = substituteUnit(format, "minute", minutes, sign)
		startTS += minutes * 60
		start = time.Unix(startTS, 0).In(loc)
	}

	if wantsUnit(format, "second") {
		format = substituteUnit(format, "second", endTS-startTS, sign)
	}

	return strings.TrimSpace(format)
}

// wantsUnit reports whether the template references the unit in either
// grammatical number.
func wantsUnit(format, name string) bool {
	return strings.Contains(format, "#"+name+"#") || strings.Contains(format, "#"+name+"s#")
}

// substituteUnit rewrites the template for one unit: the singular form wins
// when the quantity is exactly one, otherwise the plural form is filled in
// (or its bracket group deleted when zero) and the singular group removed.
func substituteUnit(format, name string, qty int64, sign string) string {
	singular := "#" + name + "#"
	plural := "#" + name + "s#"

	switch {
	case strings.Contains(format, singular) && qty == 1:
		format = groupPattern[name].ReplaceAllString(format, "${1}"+sign+"1${2}")
		format = bracketPattern[name+"s"].ReplaceAllString(format, "")
	case strings.Contains(format, plural):
		if qty != 0 {
			format = groupPattern[name+"s"].ReplaceAllString(format, "${1}"+sign+strconv.FormatInt(qty, 10)+"${2}")
		} else {
			format = bracketPattern[name+"s"].ReplaceAllString(format, "")
			format = strings.ReplaceAll(format, plural, "0")
		}
		format = bracketPattern[name].ReplaceAllString(format, "")
	}

	return format
}
