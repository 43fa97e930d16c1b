package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column.
type Column struct {
	Title string
	Width int
}

// Table is a simple scrollable table for short lists.
type Table struct {
	columns     []Column
	rows        [][]string
	selected    int
	offset      int
	visibleRows int

	headerStyle   lipgloss.Style
	rowStyle      lipgloss.Style
	rowAltStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

// NewTable creates a table with the given columns.
func NewTable(columns []Column) *Table {
	return &Table{
		columns:       columns,
		rows:          [][]string{},
		visibleRows:   12,
		headerStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD75F")),
		rowStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB000")),
		rowAltStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#AA7700")),
		selectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("#FFB000")).Foreground(lipgloss.Color("#000000")),
	}
}

// SetStyles overrides the default styles with themed ones.
func (t *Table) SetStyles(header, row, rowAlt, selected lipgloss.Style) {
	t.headerStyle = header
	t.rowStyle = row
	t.rowAltStyle = rowAlt
	t.selectedStyle = selected
}

// SetRows replaces the table data and clamps the selection.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	if t.selected >= len(rows) {
		t.selected = len(rows) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}
	if t.offset > t.selected {
		t.offset = t.selected
	}
}

// SetVisibleRows sets how many rows render at once.
func (t *Table) SetVisibleRows(n int) {
	if n > 0 {
		t.visibleRows = n
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Selected returns the currently selected row index.
func (t *Table) Selected() int {
	return t.selected
}

// SelectedRow returns the currently selected row data, or nil.
func (t *Table) SelectedRow() []string {
	if t.selected >= 0 && t.selected < len(t.rows) {
		return t.rows[t.selected]
	}
	return nil
}

// MoveUp moves the selection up, scrolling as needed.
func (t *Table) MoveUp() {
	if t.selected > 0 {
		t.selected--
		if t.selected < t.offset {
			t.offset = t.selected
		}
	}
}

// MoveDown moves the selection down, scrolling as needed.
func (t *Table) MoveDown() {
	if t.selected < len(t.rows)-1 {
		t.selected++
		if t.selected >= t.offset+t.visibleRows {
			t.offset = t.selected - t.visibleRows + 1
		}
	}
}

// Render renders the table.
func (t *Table) Render() string {
	var b strings.Builder

	// Header
	var header strings.Builder
	for _, col := range t.columns {
		header.WriteString(pad(col.Title, col.Width))
		header.WriteString("  ")
	}
	b.WriteString(t.headerStyle.Render(strings.TrimRight(header.String(), " ")))
	b.WriteString("\n")

	// Rows in the visible window
	end := t.offset + t.visibleRows
	if end > len(t.rows) {
		end = len(t.rows)
	}

	for i := t.offset; i < end; i++ {
		var line strings.Builder
		for c, col := range t.columns {
			cell := ""
			if c < len(t.rows[i]) {
				cell = t.rows[i][c]
			}
			line.WriteString(pad(cell, col.Width))
			line.WriteString("  ")
		}

		text := strings.TrimRight(line.String(), " ")
		switch {
		case i == t.selected:
			b.WriteString(t.selectedStyle.Render(text))
		case i%2 == 1:
			b.WriteString(t.rowAltStyle.Render(text))
		default:
			b.WriteString(t.rowStyle.Render(text))
		}
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(t.rows) > t.visibleRows {
		b.WriteString(fmt.Sprintf("(%d-%d of %d)", t.offset+1, end, len(t.rows)))
	}

	return b.String()
}

// pad truncates or right-pads a cell to the column width.
func pad(s string, width int) string {
	if len(s) > width {
		if width > 1 {
			return s[:width-1] + "…"
		}
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
