// Package theme holds the Catppuccin Mocha palette and the lipgloss styles
// shared by the table and its control primitives.
package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	Pink     lipgloss.Color = "#f5c2e7"
	Mauve    lipgloss.Color = "#cba6f7"
	Red      lipgloss.Color = "#f38ba8"
	Peach    lipgloss.Color = "#fab387"
	Yellow   lipgloss.Color = "#f9e2af"
	Green    lipgloss.Color = "#a6e3a1"
	Teal     lipgloss.Color = "#94e2d5"
	Blue     lipgloss.Color = "#89b4fa"
	Lavender lipgloss.Color = "#b4befe"

	Text     lipgloss.Color = "#cdd6f4"
	Subtext0 lipgloss.Color = "#a6adc8"
	Overlay1 lipgloss.Color = "#7f849c"
	Overlay0 lipgloss.Color = "#6c7086"
	Surface1 lipgloss.Color = "#45475a"
	Surface0 lipgloss.Color = "#313244"
	Base     lipgloss.Color = "#1e1e2e"
	Mantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	Accent   = Pink
	Focus    = Lavender
	Muted    = Overlay1
	Border   = Surface1
	Danger   = Red
	Edit     = Blue
	Disabled = Overlay0
)

var (
	HeaderStyle   = lipgloss.NewStyle().Foreground(Subtext0).Bold(true)
	HeaderActive  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	CellStyle     = lipgloss.NewStyle().Foreground(Text)
	CursorStyle   = lipgloss.NewStyle().Foreground(Text).Background(Surface0)
	HandleStyle   = lipgloss.NewStyle().Foreground(Border)
	HandleActive  = lipgloss.NewStyle().Foreground(Focus).Bold(true)
	PinStyle      = lipgloss.NewStyle().Foreground(Peach)
	SortStyle     = lipgloss.NewStyle().Foreground(Accent)
	ButtonStyle   = lipgloss.NewStyle().Foreground(Text).Background(Surface1)
	ButtonOff     = lipgloss.NewStyle().Foreground(Disabled).Background(Surface0)
	EditStyle     = lipgloss.NewStyle().Foreground(Edit)
	DeleteStyle   = lipgloss.NewStyle().Foreground(Danger)
	LabelStyle    = lipgloss.NewStyle().Foreground(Muted)
	StatusStyle   = lipgloss.NewStyle().Foreground(Green)
	StatusErr     = lipgloss.NewStyle().Foreground(Danger)
	DropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)
