package domain

import "time"

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsWeekend returns true for Saturday and Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekBounds returns Monday and Sunday of the week containing date.
// Weeks start on Monday, so a Sunday belongs to the preceding Monday's week.
func WeekBounds(date time.Time) (monday, sunday time.Time) {
	d := DateOnly(date)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	monday = d.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// DateSet множество дат (без времени) для быстрой проверки праздников
type DateSet map[time.Time]struct{}

// NewDateSet builds a set from arbitrary timestamps, normalising each to DateOnly
func NewDateSet(dates []time.Time) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[DateOnly(d)] = struct{}{}
	}
	return set
}

// Contains reports whether the calendar date of t is in the set
func (s DateSet) Contains(t time.Time) bool {
	_, ok := s[DateOnly(t)]
	return ok
}
