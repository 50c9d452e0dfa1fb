// Package prayer projects fetched timings into display entries and selects
// the upcoming one.
package prayer

import (
	"time"

	"github.com/verte-zerg/sholat/internal/clock"
	"github.com/verte-zerg/sholat/internal/model"
)

// NoNext is returned by NextIndex when there are no entries.
const NoNext = -1

type kindInfo struct {
	name        string
	icon        string
	description string
}

var kinds = map[model.PrayerKind]kindInfo{
	model.Imsak: {
		name:        "Imsak",
		icon:        "✦",
		description: "The time to stop eating and drinking for fasting.",
	},
	model.Fajr: {
		name:        "Subuh",
		icon:        "☱",
		description: "The dawn prayer, marking the beginning of the day's spiritual journey.",
	},
	model.Sunrise: {
		name:        "Terbit",
		icon:        "☼",
		description: "Sunrise. The time when the morning prayer (Subuh) period ends.",
	},
	model.Dhuhr: {
		name:        "Dzuhur",
		icon:        "◉",
		description: "The midday prayer, a moment of pause and remembrance in the midst of daily activities.",
	},
	model.Asr: {
		name:        "Ashar",
		icon:        "◒",
		description: "The afternoon prayer, a time for reflection as the day begins to wane.",
	},
	model.Maghrib: {
		name:        "Maghrib",
		icon:        "◓",
		description: "The sunset prayer, performed just after the sun has set.",
	},
	model.Isha: {
		name:        "Isya",
		icon:        "☾",
		description: "The night prayer, the final prayer of the day, offering peace before rest.",
	},
}

// Name returns the display label of a kind.
func Name(k model.PrayerKind) string {
	return kinds[k].name
}

// Icon returns the glyph associated with a kind.
func Icon(k model.PrayerKind) string {
	return kinds[k].icon
}

// Entries derives the ordered display list from a fetched day.
// A nil day yields no entries.
func Entries(day *model.Day) []model.Prayer {
	if day == nil {
		return nil
	}
	out := make([]model.Prayer, 0, len(model.PrayerKinds))
	for _, k := range model.PrayerKinds {
		info := kinds[k]
		out = append(out, model.Prayer{
			Kind:        k,
			Name:        info.name,
			Time:        timeFor(day.Timings, k),
			Icon:        info.icon,
			Description: info.description,
		})
	}
	return out
}

func timeFor(t model.Timings, k model.PrayerKind) string {
	switch k {
	case model.Imsak:
		return t.Imsak
	case model.Fajr:
		return t.Fajr
	case model.Sunrise:
		return t.Sunrise
	case model.Dhuhr:
		return t.Dhuhr
	case model.Asr:
		return t.Asr
	case model.Maghrib:
		return t.Maghrib
	case model.Isha:
		return t.Isha
	default:
		return ""
	}
}

// NextIndex returns the index of the first entry whose time is strictly
// after nowMinutes. When every entry has passed it wraps to 0. Entries with
// an unparsable time never qualify.
func NextIndex(entries []model.Prayer, nowMinutes int) int {
	if len(entries) == 0 {
		return NoNext
	}
	for i, p := range entries {
		minutes, ok := clock.ParseHHMM(p.Time)
		if !ok {
			continue
		}
		if minutes > nowMinutes {
			return i
		}
	}
	return 0
}

// Until returns how long remains from now until the entry at index next.
// A prayer that is not later today is assumed to be tomorrow's.
func Until(entries []model.Prayer, next int, now time.Time, loc *time.Location) (time.Duration, bool) {
	if next < 0 || next >= len(entries) {
		return 0, false
	}
	target, ok := clock.ParseHHMM(entries[next].Time)
	if !ok {
		return 0, false
	}
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	at := midnight.Add(time.Duration(target) * time.Minute)
	if !at.After(local) {
		at = midnight.AddDate(0, 0, 1).Add(time.Duration(target) * time.Minute)
	}
	return at.Sub(local), true
}
