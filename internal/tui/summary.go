package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ghostscrub/internal/palette"
)

type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary lays out the end-of-run figures as an aligned two-column
// table with horizontal rules.
func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, hline)
	for _, row := range rows {
		// Pad before styling: ANSI escapes would throw off %-*s widths.
		label := fmt.Sprintf("%-*s", labelWidth, row.Label)
		value := fmt.Sprintf("%*s", valueWidth, row.Value)
		lines = append(lines, fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value)))
	}
	lines = append(lines, hline)

	return strings.Join(lines, "\n")
}

var valueStyle = lipgloss.NewStyle().Foreground(palette.ColorInk).Bold(true)
