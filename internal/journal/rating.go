package journal

import (
	"fmt"
	"strings"
)

// DefaultMaxRating is the top of the rating scale unless configured otherwise.
const DefaultMaxRating = 5

type DisplayMode string

const (
	DisplayStars     DisplayMode = "stars"
	DisplayAsterisks DisplayMode = "asterisks"
)

func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(s))) {
	case DisplayStars:
		return DisplayStars, nil
	case DisplayAsterisks:
		return DisplayAsterisks, nil
	default:
		return "", fmt.Errorf("%w: %q (use stars or asterisks)", ErrInvalidDisplayType, s)
	}
}

// RenderRating draws rating as exactly maxRating cells: one filled cell per
// point, padded with empty cells. Out-of-range ratings are clamped.
func RenderRating(rating, maxRating int, mode DisplayMode) string {
	if maxRating < 1 {
		maxRating = DefaultMaxRating
	}
	rating = min(max(rating, 0), maxRating)

	filled, empty := "★", "☆"
	if mode == DisplayAsterisks {
		filled, empty = "*", " "
	}
	return strings.Repeat(filled, rating) + strings.Repeat(empty, maxRating-rating)
}
