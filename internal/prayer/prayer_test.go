package prayer

import (
	"testing"
	"time"

	"github.com/verte-zerg/sholat/internal/clock"
	"github.com/verte-zerg/sholat/internal/model"
)

func sampleDay() *model.Day {
	return &model.Day{Timings: model.Timings{
		Imsak:   "04:10",
		Fajr:    "04:20",
		Sunrise: "05:35",
		Dhuhr:   "11:50",
		Asr:     "15:10",
		Maghrib: "17:45",
		Isha:    "18:55",
	}}
}

func hm(h, m int) int { return h*60 + m }

func TestEntriesCanonicalOrder(t *testing.T) {
	entries := Entries(sampleDay())
	want := []string{"Imsak", "Subuh", "Terbit", "Dzuhur", "Ashar", "Maghrib", "Isya"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("entry %d: expected %s, got %s", i, name, entries[i].Name)
		}
		if entries[i].Kind != model.PrayerKinds[i] {
			t.Fatalf("entry %d: unexpected kind %d", i, entries[i].Kind)
		}
		if entries[i].Icon == "" || entries[i].Description == "" {
			t.Fatalf("entry %d: expected icon and description", i)
		}
	}
	if entries[1].Time != "04:20" || entries[6].Time != "18:55" {
		t.Fatalf("times not projected from timings: %+v", entries)
	}
}

func TestEntriesNilDay(t *testing.T) {
	if got := Entries(nil); len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestNextIndexScenario(t *testing.T) {
	entries := Entries(sampleDay())
	if got := NextIndex(entries, hm(16, 0)); got != 5 {
		t.Fatalf("expected Maghrib (5) at 16:00, got %d", got)
	}
	if got := NextIndex(entries, hm(19, 30)); got != 0 {
		t.Fatalf("expected wrap to Imsak at 19:30, got %d", got)
	}
}

func TestNextIndexWrapsAroundMidnight(t *testing.T) {
	entries := Entries(sampleDay())
	for _, now := range []int{hm(18, 56), hm(23, 59), hm(0, 0), hm(4, 9)} {
		if got := NextIndex(entries, now); got != 0 {
			t.Fatalf("expected 0 at minute %d, got %d", now, got)
		}
	}
}

func TestNextIndexStrictInequality(t *testing.T) {
	entries := Entries(sampleDay())
	for i, p := range entries {
		minutes, ok := clock.ParseHHMM(p.Time)
		if !ok {
			t.Fatalf("bad fixture time %q", p.Time)
		}
		got := NextIndex(entries, minutes)
		want := i + 1
		if want == len(entries) {
			want = 0
		}
		if got != want {
			t.Fatalf("at %s expected %d, got %d", p.Time, want, got)
		}
	}
}

func TestNextIndexImsakAtMidnight(t *testing.T) {
	day := sampleDay()
	day.Timings.Imsak = "00:00"
	entries := Entries(day)
	if got := NextIndex(entries, 0); got != 1 {
		t.Fatalf("expected Subuh (1) when Imsak equals now, got %d", got)
	}
	only := entries[:1]
	if got := NextIndex(only, 0); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
}

func TestNextIndexEmpty(t *testing.T) {
	if got := NextIndex(nil, hm(12, 0)); got != NoNext {
		t.Fatalf("expected NoNext, got %d", got)
	}
}

func TestNextIndexSkipsMalformed(t *testing.T) {
	day := sampleDay()
	day.Timings.Maghrib = ""
	entries := Entries(day)
	if got := NextIndex(entries, hm(16, 0)); got != 6 {
		t.Fatalf("expected Isya (6) when Maghrib is empty, got %d", got)
	}
}

func TestNextIndexSkipsSuffixedTime(t *testing.T) {
	day := sampleDay()
	day.Timings.Maghrib = "17:45 (WIB)"
	entries := Entries(day)
	if got := NextIndex(entries, hm(16, 0)); got != 6 {
		t.Fatalf("expected suffixed Maghrib to be skipped, got %d", got)
	}
	if entries[5].Time != "17:45 (WIB)" {
		t.Fatalf("expected raw time to be kept for display, got %q", entries[5].Time)
	}
}

func TestUntil(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	entries := Entries(sampleDay())
	now := time.Date(2025, 3, 1, 16, 0, 0, 0, loc)
	d, ok := Until(entries, 5, now, loc)
	if !ok || d != time.Hour+45*time.Minute {
		t.Fatalf("expected 1h45m, got %v (%v)", d, ok)
	}
	late := time.Date(2025, 3, 1, 19, 30, 0, 0, loc)
	d, ok = Until(entries, 0, late, loc)
	if !ok || d != 8*time.Hour+40*time.Minute {
		t.Fatalf("expected 8h40m until tomorrow's Imsak, got %v (%v)", d, ok)
	}
	if _, ok := Until(entries, NoNext, now, loc); ok {
		t.Fatalf("expected no duration for NoNext")
	}
}
