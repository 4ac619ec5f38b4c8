package datefmt

import (
	"fmt"
	"time"
)

var numberWords = map[int]string{
	1: "one", 2: "two", 3: "three", 4: "four", 5: "five",
	6: "six", 7: "seven", 8: "eight", 9: "nine", 10: "ten",
	11: "eleven", 12: "twelve", 13: "thirteen", 14: "fourteen",
	15: "fifteen", 16: "sixteen", 17: "seventeen", 18: "eighteen",
	19: "nineteen", 20: "twenty",
}

// Fuzzy converts a past instant into a rough human-readable estimation of
// the time that has elapsed since it, such as "just now", "yesterday around
// 5pm", or "about two months ago".
func Fuzzy(t time.Time) string {
	return FuzzyAt(t, time.Now())
}

// FuzzyAt is Fuzzy with an explicit reference instant.
func FuzzyAt(t, now time.Time) string {
	const (
		oneMinute = float64(60)
		oneHour   = float64(3600)
		oneDay    = float64(86400)
		oneWeek   = oneDay * 7
		oneMonth  = oneDay * 30.42
		oneYear   = oneDay * 365
	)

	loc := now.Location()
	t = t.In(loc)

	sod := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	sodNow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	elapsed := sodNow.Sub(sod).Seconds()

	// Today, or late yesterday but still within the hour.
	if sodNow.Equal(sod) || t.After(now.Add(-time.Hour)) {
		switch {
		case t.After(now.Add(-time.Minute)):
			return "just now"
		case t.After(now.Add(-3 * time.Minute)):
			return "just a moment ago"
		case t.After(now.Add(-7 * time.Minute)):
			return "a few minutes ago"
		case t.After(now.Add(-time.Hour)):
			return "less than an hour ago"
		}
		return "today at " + t.Format("3:04pm")
	}

	if elapsed <= oneDay {
		// Round up to the next hour when past the half hour.
		if t.Minute() > 30 {
			t = t.Add(30 * time.Minute)
		}
		return "yesterday around " + t.Format("3pm")
	}

	if elapsed <= oneDay*5 {
		str := t.Format("Monday")
		switch hour := t.Hour(); {
		case hour < 12:
			str += " morning"
		case hour < 17:
			str += " afternoon"
		case hour < 20:
			str += " evening"
		default:
			str += " night"
		}
		return str
	}

	if elapsed < oneWeek*3.5 {
		switch {
		case elapsed < oneWeek*1.5:
			return "about a week ago"
		case elapsed < oneWeek*2.5:
			return "about two weeks ago"
		default:
			return "about three weeks ago"
		}
	}

	if elapsed < oneMonth*11.5 {
		for i, m := oneWeek*3.5+oneMonth, 1; i < oneYear; i, m = i+oneMonth, m+1 {
			if elapsed <= i {
				return fmt.Sprintf("about %s month%s ago", numberWords[m], pluralSuffix(m))
			}
		}
	}

	for i, y := oneMonth*11.5+oneYear, 1; i < oneYear*21; i, y = i+oneYear, y+1 {
		if elapsed <= i {
			return fmt.Sprintf("about %s year%s ago", numberWords[y], pluralSuffix(y))
		}
	}

	return "more than twenty years ago"
}

func pluralSuffix(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
