package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	ModePill   lipgloss.Style
	Section    lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	Category   lipgloss.Style

	RatingHigh lipgloss.Style
	RatingMid  lipgloss.Style
	RatingLow  lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		Category:   lipgloss.NewStyle().Foreground(cpTeal),
		RatingHigh: lipgloss.NewStyle().Bold(true).Foreground(cpYellow),
		RatingMid:  lipgloss.NewStyle().Foreground(cpPeach),
		RatingLow:  lipgloss.NewStyle().Foreground(cpOverlay1),
	}
}

// StyleRating colours an already rendered rating by how high it sits on the
// scale: top third, middle third, bottom third.
func (t Theme) StyleRating(rating, maxRating int, rendered string) string {
	if rendered == "" || maxRating < 1 {
		return rendered
	}
	switch {
	case rating*3 >= maxRating*2:
		return t.RatingHigh.Render(rendered)
	case rating*3 >= maxRating:
		return t.RatingMid.Render(rendered)
	default:
		return t.RatingLow.Render(rendered)
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
