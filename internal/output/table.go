package output

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a simple styled table renderer. Cells may contain styled
// (ANSI-escaped) text; widths are computed on the visible characters.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
	right   map[int]bool
}

// NewTable creates a new table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visualLen(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
		right:   make(map[int]bool),
	}
}

// AlignRight right-aligns the given columns, for numeric cells.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// AddRow adds a row of values to the table. Missing trailing values render
// as empty cells.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
		if w := visualLen(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the formatted table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	var sb strings.Builder

	// Header row.
	for i, h := range t.headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(headerStyle.Render(t.pad(h, i)))
	}
	sb.WriteString("\n")

	// Separator.
	for i, w := range t.widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleMuted.Render(strings.Repeat("─", w)))
	}
	sb.WriteString("\n")

	// Data rows.
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(t.pad(cell, i))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// pad fills a cell to its column width, honoring the column alignment.
func (t *Table) pad(s string, col int) string {
	gap := t.widths[col] - visualLen(s)
	if gap <= 0 {
		return s
	}
	if t.right[col] {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// visualLen returns the number of visible characters in s, ignoring ANSI
// escape sequences. Counts runes, not bytes, so bar glyphs measure correctly.
func visualLen(s string) int {
	return len([]rune(ansiPattern.ReplaceAllString(s, "")))
}
