// Package dates holds the calendar math used by the planning flow. Weeks run
// Monday through Sunday.
package dates

import (
	"fmt"
	"time"
)

// Monday returns the Monday of the week containing t, truncated to midnight
// in t's location.
func Monday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		diff = 6
	}
	return day.AddDate(0, 0, -diff)
}

// AddDays returns t shifted by days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// WeekDates returns the seven dates of the week starting at monday.
func WeekDates(monday time.Time) []time.Time {
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = AddDays(monday, i)
	}
	return week
}

// WeekRange formats a week as "Jan 24 - Jan 30, 2026".
func WeekRange(monday time.Time) string {
	sunday := AddDays(monday, 6)
	return fmt.Sprintf("%s %d - %s %d, %d",
		monday.Format("Jan"), monday.Day(),
		sunday.Format("Jan"), sunday.Day(),
		sunday.Year())
}

// DayName returns the full weekday name of t.
func DayName(t time.Time) string {
	return t.Format("Monday")
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
