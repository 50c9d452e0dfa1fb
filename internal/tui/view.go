package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/sholat/internal/clock"
	"github.com/verte-zerg/sholat/internal/hijri"
	"github.com/verte-zerg/sholat/internal/prayer"
)

const (
	title            = "Jadwal Sholat"
	defaultListWidth = 48
	maxListWidth     = 60
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#DCFCE7")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BBF7D0"))
	hijriStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#86EFAC"))
	clockStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#BBF7D0")).Bold(true)
	zoneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#86EFAC"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4D4F")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF4D4F"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1FAE5")).
			PaddingLeft(1)
	nextRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#052E16")).
			Background(lipgloss.Color("#BBF7D0")).
			Bold(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#16A34A"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A7F3D0")).Italic(true).PaddingLeft(4)
	nextDescStyle = descStyle.Foreground(lipgloss.Color("#4ADE80"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type rowSpan struct {
	start int
	end   int
}

type frame struct {
	content string
	rows    []rowSpan
}

// View implements tea.Model.
func (m *Model) View() string {
	f := m.frame()
	if m.width == 0 || m.height == 0 {
		return f.content
	}
	bodyHeight := m.bodyHeight()
	top := m.bodyTop(f.content, bodyHeight)
	lines := make([]string, 0, m.height)
	for i := 0; i < top; i++ {
		lines = append(lines, "")
	}
	placed := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, f.content)
	lines = append(lines, strings.Split(placed, "\n")...)
	for len(lines) < bodyHeight {
		lines = append(lines, "")
	}
	lines = lines[:bodyHeight]
	if bodyHeight < m.height {
		lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderFooter()))
	}
	return strings.Join(lines, "\n")
}

// bodyHeight is the screen height left above the footer.
func (m *Model) bodyHeight() int {
	footerHeight := lipgloss.Height(m.renderFooter())
	if m.height-footerHeight < 2 {
		return m.height
	}
	return m.height - footerHeight
}

// bodyTop is the number of blank lines above content when vertically centered.
func (m *Model) bodyTop(content string, bodyHeight int) int {
	gap := bodyHeight - lipgloss.Height(content)
	if gap <= 0 {
		return 0
	}
	return gap / 2
}

// rowAt maps a screen line to the entry rendered there, or -1.
func (m *Model) rowAt(y int) int {
	if m.width == 0 || m.height == 0 {
		return -1
	}
	f := m.frame()
	line := y - m.bodyTop(f.content, m.bodyHeight())
	for i, span := range f.rows {
		if line >= span.start && line < span.end {
			return i
		}
	}
	return -1
}

func (m *Model) frame() frame {
	header := m.renderHeader()
	parts := []string{header, ""}
	offset := lipgloss.Height(header) + 1

	var rows []rowSpan
	switch {
	case m.loading:
		parts = append(parts, m.spinner.View()+" "+mutedStyle.Render("Loading prayer times…"))
	case m.errMsg != "":
		parts = append(parts, errorStyle.Width(m.listWidth()).Render(m.errMsg))
	case m.day != nil:
		var blocks []string
		for i, p := range m.entries() {
			block := m.renderEntry(i, p.Icon, p.Name, p.Time, p.Description)
			h := lipgloss.Height(block)
			rows = append(rows, rowSpan{start: offset, end: offset + h})
			offset += h
			blocks = append(blocks, block)
		}
		parts = append(parts, strings.Join(blocks, "\n"))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return frame{content: content, rows: rows}
}

func (m *Model) renderHeader() string {
	lines := []string{titleStyle.Render(title)}
	place := fmt.Sprintf("%s, %s", m.config.City, m.config.Country)
	if m.day != nil {
		place = fmt.Sprintf("%s — %s, %s", place, clock.Weekday(m.current, m.loc), m.day.Date.Readable)
	}
	lines = append(lines, subtitleStyle.Render(place))
	if m.day != nil {
		lines = append(lines, hijriStyle.Render(hijri.Format(m.day.Date.Hijri)))
	}
	hms := clock.Format(m.current, m.loc, "")
	if m.width >= bigClockMinWidth {
		lines = append(lines, "", renderBigClock(hms, clockStyle, m.width))
		if m.config.ZoneLabel != "" {
			lines = append(lines, zoneStyle.Render(m.config.ZoneLabel))
		}
	} else {
		lines = append(lines, clockStyle.Render(clock.Format(m.current, m.loc, m.config.ZoneLabel)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderEntry(i int, icon, name, at, description string) string {
	width := m.listWidth()
	isNext := i == m.next
	marker := " "
	if i == m.cursor {
		marker = "›"
	}
	label := fmt.Sprintf("%s %s  %s", marker, icon, name)
	gap := width - 2 - runewidth.StringWidth(label) - runewidth.StringWidth(at)
	if gap < 1 {
		gap = 1
	}
	line := label + strings.Repeat(" ", gap) + at

	style := rowStyle
	desc := descStyle
	if isNext {
		style = nextRowStyle
		desc = nextDescStyle
	}
	out := style.Width(width).Render(line)
	if m.expanded == name && description != "" {
		out += "\n" + desc.Width(width).Render(description)
	}
	return out
}

func (m *Model) listWidth() int {
	if m.width == 0 {
		return defaultListWidth
	}
	w := m.width - 4
	if w > maxListWidth {
		w = maxListWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) renderFooter() string {
	segments := []string{}
	if countdown := m.countdown(); countdown != "" {
		segments = append(segments, countdown)
	}
	segments = append(segments, m.help.View(m.keys))
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}

func (m *Model) countdown() string {
	entries := m.entries()
	d, ok := prayer.Until(entries, m.next, m.current, m.loc)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s in %s", entries[m.next].Name, formatCountdown(d))
}

func formatCountdown(d time.Duration) string {
	if d < time.Minute {
		return "<1m"
	}
	d = d.Truncate(time.Minute)
	h := int(d / time.Hour)
	mins := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", h, mins)
}
