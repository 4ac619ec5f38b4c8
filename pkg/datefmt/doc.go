// Package datefmt formats timestamps and timestamp ranges for display in
// composed messages.
//
// Three families of helpers are provided:
//
//   - Format / FormatUnix render a single instant using one of twelve named
//     styles (sortable, short, medium, long - each for date, time, and
//     combined date+time).
//   - FormatRange renders the difference between two instants as a prose
//     phrase using a macro template language with singular/plural unit
//     placeholders and deletable bracket groups.
//   - Fuzzy renders a past instant as a rough human estimation such as
//     "a few minutes ago" or "about two months ago".
//
// # Range templates
//
// FormatRange templates use #unit# (singular) and #units# (plural)
// placeholders for the units year, month, week, day, hour, minute, and
// second. A placeholder may be wrapped in curly brackets together with
// surrounding literal text; the whole bracket group is removed when the
// unit's computed quantity is zero (or when the other grammatical number
// was chosen). Units that are not referenced roll their time into the next
// smaller referenced unit.
//
//	datefmt.FormatRange(start, end, "{#hours# hours}{#hour# hour} #minutes# minutes", nil)
//
// Unit quantities are calendar-correct: year, month, week, and day counts
// are computed with calendar arithmetic and carry-adjusted so the consumed
// amount never overshoots the end of the range, while hour and minute
// counts use raw offsets so daylight saving transitions are reflected.
package datefmt
