package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bigClockMinWidth is the narrowest terminal that gets the glyph clock.
const bigClockMinWidth = 40

// digitGlyphs maps digits and colon to a 3-line half-block font.
var digitGlyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▀█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", "▀▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {"▀", " ", "▀"},
}

// renderBigClock draws an "HH:MM:SS" string in the glyph font. Narrow
// terminals get the plain string.
func renderBigClock(hms string, style lipgloss.Style, width int) string {
	if width < bigClockMinWidth {
		return style.Render(hms)
	}
	var lines [3]string
	for _, ch := range hms {
		glyph, ok := digitGlyphs[ch]
		if !ok {
			continue
		}
		for i := range lines {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}
	styled := make([]string, 0, len(lines))
	for _, line := range lines {
		styled = append(styled, style.Render(line))
	}
	return strings.Join(styled, "\n")
}
