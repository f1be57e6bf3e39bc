// Package output renders profiler summaries for the terminal.
package output

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// defaultGutter is the number of spaces between columns in the plain table.
const defaultGutter = 4

// TextTable renders rows as plain left-aligned columns, each column as wide
// as its widest cell. This is the default renderer for profiler summaries.
type TextTable struct {
	Gutter int
}

// NewTextTable creates a plain table renderer with the default gutter.
func NewTextTable() *TextTable {
	return &TextTable{Gutter: defaultGutter}
}

// Render returns one printable line per row, header first, with columns
// aligned across all rows. Cells are used verbatim; formatting is the
// caller's job.
func (t *TextTable) Render(header []string, rows [][]string) []string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, header)
	all = append(all, rows...)

	// Column widths track the widest cell in each position.
	var widths []int
	for _, row := range all {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	gutter := t.Gutter
	if gutter <= 0 {
		gutter = defaultGutter
	}
	sep := strings.Repeat(" ", gutter)

	lines := make([]string, 0, len(all))
	for _, row := range all {
		var sb strings.Builder
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
				sb.WriteString(sep)
			}
		}
		lines = append(lines, sb.String())
	}

	return lines
}

// StyledTable renders rows as a bordered, styled terminal table. Used by the
// CLI when writing to a color-capable terminal.
type StyledTable struct{}

// NewStyledTable creates a styled table renderer.
func NewStyledTable() *StyledTable {
	return &StyledTable{}
}

// Render returns the styled table split into printable lines.
func (s *StyledTable) Render(header []string, rows [][]string) []string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(header...).
		Rows(rows...)

	return strings.Split(t.String(), "\n")
}
