// Package report renders plain-text tables for non-interactive output.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align controls how a cell is padded to its column width.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. An empty Header on every column
// suppresses the header line.
type Column struct {
	Header string
	Align  Align
}

// Table collects rows for columns whose widths are measured in terminal
// cells, so prayer glyphs and Arabic month names line up.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable starts a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// Row appends one row. Missing cells render empty and extra cells are dropped.
func (t *Table) Row(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Lines renders the table, one string per line, without trailing spaces.
func (t *Table) Lines() []string {
	if len(t.columns) == 0 {
		return nil
	}
	widths := t.widths()
	lines := make([]string, 0, len(t.rows)+1)
	if t.hasHeader() {
		headers := make([]string, len(t.columns))
		for i, c := range t.columns {
			headers[i] = c.Header
		}
		lines = append(lines, t.render(headers, widths))
	}
	for _, row := range t.rows {
		lines = append(lines, t.render(row, widths))
	}
	return lines
}

func (t *Table) hasHeader() bool {
	for _, c := range t.columns {
		if c.Header != "" {
			return true
		}
	}
	return false
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = runewidth.StringWidth(c.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func (t *Table) render(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		if t.columns[i].Align == AlignRight {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell + pad)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
