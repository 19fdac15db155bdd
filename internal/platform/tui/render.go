package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// styleFor returns the foreground style of a core color.
func styleFor(c core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if idx := c.Palette(); idx >= 0 {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(idx)))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display,
// one rendered span per color run.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var sb strings.Builder
		for _, span := range s.Spans(y) {
			if span.Color == core.ColorDefault {
				sb.WriteString(span.Text)
				continue
			}
			sb.WriteString(styleFor(span.Color).Render(span.Text))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
