// Package table renders profile listings as aligned text tables. Two
// renderers exist: a lipgloss-backed one for interactive terminals and a
// manual fallback for plain output (pipes, dumb terminals, forced plain
// style). The choice is made once at startup by capability probing rather
// than per row.
package table

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

// Renderer produces an aligned textual table from column headers and rows.
type Renderer interface {
	Render(headers []string, rows [][]string) string
}

// New selects a renderer for the given output style. "rich" and "plain"
// force a renderer; "auto" picks rich only when out is a terminal.
func New(style string, out *os.File) Renderer {
	switch style {
	case "rich":
		return richRenderer{}
	case "plain":
		return plainRenderer{}
	default:
		if out != nil && isatty.IsTerminal(out.Fd()) {
			return richRenderer{}
		}
		return plainRenderer{}
	}
}

type richRenderer struct{}

func (richRenderer) Render(headers []string, rows [][]string) string {
	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

type plainRenderer struct{}

func (plainRenderer) Render(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	divider := make([]string, len(headers))
	for i := range divider {
		divider[i] = strings.Repeat("-", widths[i])
	}
	writeRow(divider)
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
