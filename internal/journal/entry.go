// Package journal holds the review and recommendation collections and the
// rules that keep them consistent.
package journal

import (
	"strings"
	"time"
)

type Review struct {
	Title       string    `yaml:"title"`
	Category    string    `yaml:"category"`
	Rating      int       `yaml:"rating"`
	Description string    `yaml:"description,omitempty"`
	CreatedAt   time.Time `yaml:"created_at"`
}

type Recommendation struct {
	Title         string    `yaml:"title"`
	Category      string    `yaml:"category"`
	RecommendedBy string    `yaml:"recommended_by,omitempty"`
	Description   string    `yaml:"description,omitempty"`
	CreatedAt     time.Time `yaml:"created_at"`
}

// ReviewInput carries the user-editable fields of a review.
type ReviewInput struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Rating      int
	Description string
}

// RecommendationInput carries the user-editable fields of a recommendation.
type RecommendationInput struct {
	Title         string `validate:"required"`
	Category      string
	RecommendedBy string
	Description   string
}

// Input returns the review's fields as an input, for pre-filling edits.
func (r Review) Input() ReviewInput {
	return ReviewInput{
		Title:       r.Title,
		Category:    r.Category,
		Rating:      r.Rating,
		Description: r.Description,
	}
}

func (r Recommendation) Input() RecommendationInput {
	return RecommendationInput{
		Title:         r.Title,
		Category:      r.Category,
		RecommendedBy: r.RecommendedBy,
		Description:   r.Description,
	}
}

func (in ReviewInput) normalized() ReviewInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = normalizeCategory(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

func (in RecommendationInput) normalized() RecommendationInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = normalizeCategory(in.Category)
	in.RecommendedBy = strings.TrimSpace(in.RecommendedBy)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// sameTitle compares titles the way every lookup in this package does.
func sameTitle(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
