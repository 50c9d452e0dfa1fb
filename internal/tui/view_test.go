package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewHeaderShowsDates(t *testing.T) {
	m, _ := loadedModel(t, time.Date(2025, 3, 1, 16, 0, 0, 0, wib))
	out := m.View()
	for _, want := range []string{
		"Jadwal Sholat",
		"Semarang, Indonesia — Sabtu, 01 Mar 2025",
		"1 Ramadhan 1446 H",
		"16:00:00 WIB",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestViewListsEntriesInOrder(t *testing.T) {
	m, _ := loadedModel(t, time.Date(2025, 3, 1, 16, 0, 0, 0, wib))
	out := m.View()
	last := -1
	for _, name := range []string{"Imsak", "Subuh", "Terbit", "Dzuhur", "Ashar", "Maghrib", "Isya"} {
		idx := strings.Index(out, name)
		if idx <= last {
			t.Fatalf("expected %s after previous entry", name)
		}
		last = idx
	}
}

func TestViewShowsDescriptionOnlyWhenExpanded(t *testing.T) {
	m, _ := loadedModel(t, time.Date(2025, 3, 1, 16, 0, 0, 0, wib))
	if strings.Contains(m.View(), "sunset prayer") {
		t.Fatalf("expected description hidden while collapsed")
	}
	m.toggle("Maghrib")
	if !strings.Contains(m.View(), "sunset prayer") {
		t.Fatalf("expected description shown while expanded")
	}
}

func TestViewHighlightsNextRow(t *testing.T) {
	m, _ := loadedModel(t, time.Date(2025, 3, 1, 16, 0, 0, 0, wib))
	entries := m.entries()
	next := m.renderEntry(5, entries[5].Icon, entries[5].Name, entries[5].Time, entries[5].Description)
	plain := m.renderEntry(4, entries[4].Icon, entries[4].Name, entries[4].Time, entries[4].Description)
	border := lipgloss.ThickBorder().Left
	if !strings.Contains(next, border) {
		t.Fatalf("expected next row to carry a left border: %q", next)
	}
	if strings.Contains(plain, border) {
		t.Fatalf("expected plain row without border: %q", plain)
	}
	if !strings.Contains(next, "17:45") {
		t.Fatalf("expected time in next row: %q", next)
	}
}

func TestViewLoadingState(t *testing.T) {
	clk := &testClock{t: time.Date(2025, 3, 1, 16, 0, 0, 0, wib)}
	m := newTestModel(&fakeFetcher{day: sampleDay()}, nil, clk)
	m.startFetch()
	out := m.View()
	if !strings.Contains(out, "Loading prayer times") {
		t.Fatalf("expected loading text: %s", out)
	}
	if strings.Contains(out, "Ramadhan") {
		t.Fatalf("expected no hijri date before data")
	}
}

func TestViewFitsWindowHeight(t *testing.T) {
	m, _ := loadedModel(t, time.Date(2025, 3, 1, 16, 0, 0, 0, wib))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	out := m.View()
	if got := lipgloss.Height(out); got != 40 {
		t.Fatalf("expected 40 lines, got %d", got)
	}
	if !strings.Contains(out, "Maghrib in 1h 45m") {
		t.Fatalf("expected countdown in footer")
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := map[time.Duration]string{
		30 * time.Second:                 "<1m",
		45 * time.Minute:                 "45m",
		time.Hour + 5*time.Minute:        "1h 05m",
		8*time.Hour + 40*time.Minute + 9: "8h 40m",
	}
	for in, want := range cases {
		if got := formatCountdown(in); got != want {
			t.Fatalf("formatCountdown(%v) = %q, expected %q", in, got, want)
		}
	}
}

func TestRenderBigClock(t *testing.T) {
	style := lipgloss.NewStyle()
	big := renderBigClock("12:34:56", style, 80)
	if lipgloss.Height(big) != 3 {
		t.Fatalf("expected 3-line glyph clock, got %d", lipgloss.Height(big))
	}
	if !strings.Contains(big, "▀▀█") {
		t.Fatalf("expected half-block glyphs")
	}
	if got := renderBigClock("12:34:56", style, 20); got != "12:34:56" {
		t.Fatalf("expected plain clock on narrow terminal, got %q", got)
	}
}

func TestNextDescriptionStyleLeavesBaseStyle(t *testing.T) {
	if got := descStyle.GetForeground(); got != lipgloss.Color("#A7F3D0") {
		t.Fatalf("expected base description color to be unchanged, got %v", got)
	}
	if got := nextDescStyle.GetForeground(); got != lipgloss.Color("#4ADE80") {
		t.Fatalf("expected next description color, got %v", got)
	}
	if !nextDescStyle.GetItalic() || nextDescStyle.GetPaddingLeft() != 4 {
		t.Fatalf("expected next description to inherit base layout")
	}
}
