package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/sholat/internal/clock"
	"github.com/verte-zerg/sholat/internal/hijri"
	"github.com/verte-zerg/sholat/internal/model"
	"github.com/verte-zerg/sholat/internal/prayer"
	"github.com/verte-zerg/sholat/internal/report"
)

const defaultRuleWidth = 32

var headingStyle = lipgloss.NewStyle().Bold(true)

func writeToday(w io.Writer, cfg model.Config, loc *time.Location, day model.Day, now time.Time) error {
	entries := prayer.Entries(&day)
	next := prayer.NextIndex(entries, clock.MinuteOfDay(now, loc))

	title := fmt.Sprintf("%s, %s — %s, %s", cfg.City, cfg.Country, clock.Weekday(now, loc), day.Date.Readable)
	if isTerminal(w) {
		title = headingStyle.Render(title)
	}
	lines := []string{
		title,
		hijri.Format(day.Date.Hijri),
		strings.Repeat("─", ruleWidth(w)),
	}
	lines = append(lines, report.Today(entries, next)...)
	if d, ok := prayer.Until(entries, next, now, loc); ok {
		lines = append(lines, "", fmt.Sprintf("%s in %s (now %s)", entries[next].Name, d.Truncate(time.Minute), clock.Format(now, loc, cfg.ZoneLabel)))
	}
	return writeLines(w, lines)
}

func writeHistory(w io.Writer, days []model.ArchivedDay, loc *time.Location) error {
	return writeLines(w, report.History(days, loc))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func ruleWidth(w io.Writer) int {
	if !isTerminal(w) {
		return defaultRuleWidth
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil || width <= 0 {
		return defaultRuleWidth
	}
	if width > defaultRuleWidth*2 {
		return defaultRuleWidth * 2
	}
	return width
}
