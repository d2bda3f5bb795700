package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/datatable/internal/theme"
)

// Box frames content with a rounded border and a bracketed title line.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return b.Content
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width - 2).
		MaxHeight(height)
	return style.Render(theme.HeaderActive.Render("["+b.Title+"]") + "\n" + b.Content)
}
