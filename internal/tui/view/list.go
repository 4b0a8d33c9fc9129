package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/connoisseur/internal/tui/theme"

	"github.com/glabrego/connoisseur/internal/journal"
)

type ReviewLineParams struct {
	Review    journal.Review
	Rating    string
	MaxRating int
	Pos       int
	Active    bool
	Cursor    bool
	Width     int
}

// RenderReviewLine draws a one-line summary: position, title, category and
// rating. With a positive Width the category and rating are right-aligned.
func RenderReviewLine(p ReviewLineParams, th tuitheme.Theme) string {
	prefix := linePrefix(p.Pos, p.Cursor, p.Active)
	right := th.Category.Render("["+p.Review.Category+"]") + " " + th.StyleRating(p.Review.Rating, p.MaxRating, p.Rating)
	return th.RenderActiveLine(p.Active, layoutLine(prefix, strings.TrimSpace(p.Review.Title), right, p.Width))
}

type RecommendationLineParams struct {
	Recommendation journal.Recommendation
	Pos            int
	Active         bool
	Cursor         bool
	Width          int
}

func RenderRecommendationLine(p RecommendationLineParams, th tuitheme.Theme) string {
	prefix := linePrefix(p.Pos, p.Cursor, p.Active)
	right := ""
	if p.Recommendation.Category != "" {
		right = th.Category.Render("[" + p.Recommendation.Category + "]")
	}
	if by := strings.TrimSpace(p.Recommendation.RecommendedBy); by != "" {
		right = strings.TrimSpace(right + " " + th.MetaValue.Render("from "+by))
	}
	return th.RenderActiveLine(p.Active, layoutLine(prefix, strings.TrimSpace(p.Recommendation.Title), right, p.Width))
}

func linePrefix(pos int, cursor, active bool) string {
	if !cursor {
		return fmt.Sprintf("%2d. ", pos+1)
	}
	marker := " "
	if active {
		marker = ">"
	}
	return fmt.Sprintf("%s %2d. ", marker, pos+1)
}

func layoutLine(prefix, label, right string, width int) string {
	if width <= 0 {
		if right == "" {
			return prefix + label
		}
		return prefix + label + " " + right
	}
	available := width - ansi.StringWidth(prefix) - 1 - ansi.StringWidth(right)
	if available < 1 {
		available = 1
	}
	label = ansi.Truncate(label, available, "…")
	gap := width - ansi.StringWidth(prefix) - ansi.StringWidth(label) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return prefix + label + strings.Repeat(" ", gap) + right
}

// StripANSI removes terminal escape sequences, leaving the printable text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
