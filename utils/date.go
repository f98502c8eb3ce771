package utils

import "time"

// Date helpers operate in UTC, never the process-local calendar.

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.YearDay() == bu.YearDay()
}

// IsBetween reports whether t lies within [start, end], inclusive on
// both ends.
func IsBetween(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// AddMinutes returns a new instant offset by m minutes; the input is
// never mutated.
func AddMinutes(t time.Time, m int) time.Time {
	return t.Add(time.Duration(m) * time.Minute)
}
