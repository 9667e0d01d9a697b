package formatter

import (
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var enabled = true

// SetEnabled switches all styling on or off; off renders plain text for
// non-terminal output.
func SetEnabled(on bool) {
	enabled = on
}

func render(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}

// Header renders s in the header style.
func Header(s string) string { return render(StyleHeader, s) }

// Dim renders s in the dim style.
func Dim(s string) string { return render(StyleDim, s) }

// Bold renders s in the bold foreground style.
func Bold(s string) string { return render(StyleBold, s) }

// StatusStyle returns the style for an item status.
func StatusStyle(status domain.ItemStatus) lipgloss.Style {
	switch status {
	case domain.StatusDone:
		return StyleGreen
	case domain.StatusInProgress:
		return StyleYellow
	case domain.StatusTodo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusLabel returns a colored status indicator such as "● in-progress".
func StatusLabel(status domain.ItemStatus) string {
	return render(StatusStyle(status), "● "+string(status))
}

// PriorityLabel returns a colored priority indicator.
func PriorityLabel(priority domain.ItemPriority) string {
	switch priority {
	case domain.PriorityHigh:
		return render(StyleRed, "high")
	case domain.PriorityMedium:
		return render(StyleYellow, "medium")
	case domain.PriorityLow:
		return render(StyleBlue, "low")
	default:
		return render(StyleDim, string(priority))
	}
}

// LinkSwatch renders a block in the link's own display color.
func LinkSwatch(hex string) string {
	if hex == "" {
		return render(StyleDim, "■")
	}
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)), "■")
}
