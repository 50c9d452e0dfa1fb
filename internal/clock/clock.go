// Package clock provides wall-clock helpers for a fixed timezone.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Embedded zone database for hosts without one.
)

const (
	// MinutesPerDay is the number of minutes between two midnights.
	MinutesPerDay = 24 * 60

	timeLayout = "15:04:05"
)

var weekdaysID = [...]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

// LoadLocation resolves an IANA timezone name.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("timezone is empty")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Format renders t as a 24-hour time of day in loc followed by the zone label.
func Format(t time.Time, loc *time.Location, label string) string {
	s := t.In(loc).Format(timeLayout)
	if label == "" {
		return s
	}
	return s + " " + label
}

// MinuteOfDay returns the minutes elapsed since midnight in loc.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// Weekday returns the Indonesian weekday name of t in loc.
func Weekday(t time.Time, loc *time.Location) string {
	return weekdaysID[t.In(loc).Weekday()]
}

// ParseHHMM converts an "HH:MM" string to minutes since midnight.
// Both fields must be plain integers, so "05:35 (WIB)" is rejected.
func ParseHHMM(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// FormatMinutes renders a minute-of-day value as "HH:MM".
func FormatMinutes(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
