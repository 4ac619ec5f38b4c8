package datefmt

import "time"

// Style selects one of the named rendering styles. Any value that is not a
// known style is treated as a custom Go time layout and passed through
// unchanged.
type Style string

const (
	// DateSort renders only the date, big endian and zero padded so it sorts.
	DateSort Style = "date_sort"
	// DateShort renders the date in compact numeric form.
	DateShort Style = "date_short"
	// DateMed renders the date with an abbreviated month name.
	DateMed Style = "date_med"
	// DateLong renders the full weekday, month, day, and year.
	DateLong Style = "date_long"

	// TimeSort renders only the time in 24 hour form with zone so it sorts.
	TimeSort Style = "time_sort"
	// TimeShort renders hours and minutes with meridiem.
	TimeShort Style = "time_short"
	// TimeMed renders hours, minutes, and seconds with meridiem.
	TimeMed Style = "time_med"
	// TimeLong renders hours, minutes, and seconds with meridiem and zone.
	TimeLong Style = "time_long"

	// FullSort renders date and time, big endian and 24 hour so it sorts.
	FullSort Style = "full_sort"
	// FullShort renders a compact numeric date with the short time.
	FullShort Style = "full_short"
	// FullMed renders the medium date with the short time and zone.
	FullMed Style = "full_med"
	// FullLong renders the long date with the short time and zone.
	FullLong Style = "full_long"
)

var layouts = map[Style]string{
	DateSort:  "2006-01-02",
	DateShort: "1/02/2006",
	DateMed:   "2 Jan 2006",
	DateLong:  "Monday, January 2, 2006",
	TimeSort:  "15:04 MST",
	TimeShort: "3:04 PM",
	TimeMed:   "3:04:05 PM",
	TimeLong:  "3:04:05 PM MST",
	FullSort:  "2006-01-02 15:04 MST",
	FullShort: "1/02/2006 3:04 PM MST",
	FullMed:   "2 Jan 2006 3:04 PM MST",
	FullLong:  "Monday, January 2, 2006 3:04 PM MST",
}

// Layout returns the Go time layout for a style. Unknown styles are returned
// as-is so callers can pass custom layouts through the same API.
func Layout(style Style) string {
	if l, ok := layouts[style]; ok {
		return l
	}
	return string(style)
}

// Format renders t using the given style in t's own location.
func Format(t time.Time, style Style) string {
	return t.Format(Layout(style))
}

// FormatUnix renders a Unix timestamp using the given style. A nil location
// defaults to time.Local.
func FormatUnix(ts int64, style Style, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return Format(time.Unix(ts, 0).In(loc), style)
}
