package apod

import "time"

// DateLayout is the YYYY-MM-DD form the APOD API takes.
const DateLayout = "2006-01-02"

// cutoverHour is the local hour from which today's picture is requested.
// Earlier than that the feed has usually not published today's entry yet.
const cutoverHour = 12

// FirstDate is the first day APOD has an entry for.
var FirstDate = time.Date(1995, time.June, 16, 0, 0, 0, 0, time.UTC)

// TargetDate returns the date to request for a render at now: yesterday
// before noon, today from noon on. The calendar day is taken in now's
// location and shifted with AddDate, so DST changes never skip a day.
func TargetDate(now time.Time) string {
	if now.Hour() < cutoverHour {
		now = now.AddDate(0, 0, -1)
	}
	return now.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string and reports whether it names a day
// APOD can serve relative to now: not before FirstDate and not after
// TargetDate(now).
func ParseDate(s string, now time.Time) (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, false
	}

	latest, err := time.ParseInLocation(DateLayout, TargetDate(now), now.Location())
	if err != nil {
		return time.Time{}, false
	}
	first := time.Date(FirstDate.Year(), FirstDate.Month(), FirstDate.Day(), 0, 0, 0, 0, now.Location())

	if d.Before(first) || d.After(latest) {
		return time.Time{}, false
	}
	return d, true
}
