// Package model defines shared data structures.
package model

import "time"

// Config defines location and data source settings.
type Config struct {
	City      string
	Country   string
	Timezone  string
	ZoneLabel string
	Method    int
	BaseURL   string
	Timeout   time.Duration
}

// Timings holds the "HH:MM" times of a single calendar day.
type Timings struct {
	Imsak   string `json:"Imsak"`
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// LocalizedName carries a name in Latin and Arabic script.
type LocalizedName struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// HijriMonth identifies a lunar month.
type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

// Designation is the era suffix of a Hijri date.
type Designation struct {
	Abbreviated string `json:"abbreviated"`
	Expanded    string `json:"expanded"`
}

// HijriDate is the lunar calendar date paired with a Gregorian day.
type HijriDate struct {
	Date        string        `json:"date"`
	Day         string        `json:"day"`
	Weekday     LocalizedName `json:"weekday"`
	Month       HijriMonth    `json:"month"`
	Year        string        `json:"year"`
	Designation Designation   `json:"designation"`
}

// CalendarDate pairs the readable Gregorian date with its Hijri date.
type CalendarDate struct {
	Readable string    `json:"readable"`
	Hijri    HijriDate `json:"hijri"`
}

// Day is one fetched record: the timings and the date they belong to.
type Day struct {
	Timings Timings      `json:"timings"`
	Date    CalendarDate `json:"date"`
}

// PrayerKind enumerates the seven entries in canonical order.
type PrayerKind int

const (
	Imsak PrayerKind = iota
	Fajr
	Sunrise
	Dhuhr
	Asr
	Maghrib
	Isha
)

// PrayerKinds lists every kind in display order.
var PrayerKinds = []PrayerKind{Imsak, Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// Prayer is a display-ready entry derived from Timings.
type Prayer struct {
	Kind        PrayerKind
	Name        string
	Time        string
	Icon        string
	Description string
}

// ArchivedDay is a fetched day as recorded in the archive.
type ArchivedDay struct {
	ID        int64
	FetchedAt time.Time
	City      string
	Country   string
	Day       Day
}
