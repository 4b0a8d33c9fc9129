package view

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/connoisseur/internal/tui/theme"

	"github.com/glabrego/connoisseur/internal/journal"
)

type WrapFunc func(string, int) []string

func ReviewDetailLines(review journal.Review, rating string, maxRating, width int, wrap WrapFunc, th tuitheme.Theme) []string {
	lines := titleBlock(review.Title, width, wrap, th)

	lines = append(lines, meta("Category", review.Category, th))
	lines = append(lines, meta("Rating", th.StyleRating(review.Rating, maxRating, rating), th))
	if !review.CreatedAt.IsZero() {
		lines = append(lines, meta("Reviewed", review.CreatedAt.Local().Format(time.DateOnly), th))
	}
	return appendDescription(lines, review.Description, width, wrap)
}

func RecommendationDetailLines(rec journal.Recommendation, width int, wrap WrapFunc, th tuitheme.Theme) []string {
	lines := titleBlock(rec.Title, width, wrap, th)

	if rec.Category != "" {
		lines = append(lines, meta("Category", rec.Category, th))
	}
	if rec.RecommendedBy != "" {
		lines = append(lines, wrap(meta("Recommended by", rec.RecommendedBy, th), width)...)
	}
	if !rec.CreatedAt.IsZero() {
		lines = append(lines, meta("Added", rec.CreatedAt.Local().Format(time.DateOnly), th))
	}
	return appendDescription(lines, rec.Description, width, wrap)
}

func titleBlock(title string, width int, wrap WrapFunc, th tuitheme.Theme) []string {
	lines := make([]string, 0, 16)
	for _, l := range wrap(title, width) {
		lines = append(lines, th.Title.Render(l))
	}
	underline := ansi.StringWidth(title)
	if width > 0 {
		underline = min(width, underline)
	}
	lines = append(lines, strings.Repeat("=", max(1, underline)))
	return lines
}

func appendDescription(lines []string, description string, width int, wrap WrapFunc) []string {
	if strings.TrimSpace(description) == "" {
		return lines
	}
	lines = append(lines, "")
	return append(lines, wrap(description, width)...)
}

func meta(label, value string, th tuitheme.Theme) string {
	return th.MetaLabel.Render(label+":") + " " + th.MetaValue.Render(value)
}

// WrapText word-wraps text to width columns; width < 1 disables wrapping.
func WrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for ansi.StringWidth(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				head := splitWord(word, width)
				out = append(out, head)
				word = word[len(head):]
			}

			if line == "" {
				line = word
				continue
			}
			if ansi.StringWidth(line)+1+ansi.StringWidth(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// splitWord returns the longest prefix of word that fits in width cells. A
// character wider than width is returned on its own so wrapping always advances.
func splitWord(word string, width int) string {
	if head := ansi.Truncate(word, width, ""); head != "" {
		return head
	}
	_, size := utf8.DecodeRuneInString(word)
	return word[:size]
}
