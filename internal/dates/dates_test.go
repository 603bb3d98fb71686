package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonday(t *testing.T) {
	monday := date(2026, time.August, 24)

	// Wednesday mid-week, the Monday itself, and the trailing Sunday all
	// resolve to the same week start.
	assert.Equal(t, monday, Monday(date(2026, time.August, 26)))
	assert.Equal(t, monday, Monday(monday))
	assert.Equal(t, monday, Monday(date(2026, time.August, 30)))
}

func TestMonday_TruncatesTime(t *testing.T) {
	got := Monday(time.Date(2026, time.August, 26, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, date(2026, time.August, 24), got)
}

func TestWeekDates(t *testing.T) {
	week := WeekDates(date(2026, time.August, 24))

	assert.Len(t, week, 7)
	assert.Equal(t, "Monday", DayName(week[0]))
	assert.Equal(t, "Sunday", DayName(week[6]))
	assert.Equal(t, date(2026, time.August, 30), week[6])
}

func TestWeekRange(t *testing.T) {
	assert.Equal(t, "Aug 24 - Aug 30, 2026", WeekRange(date(2026, time.August, 24)))

	// Week spanning a month and year boundary.
	assert.Equal(t, "Dec 28 - Jan 3, 2027", WeekRange(date(2026, time.December, 28)))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.August, 24, 8, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.August, 24, 22, 15, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, AddDays(a, 1)))
}
