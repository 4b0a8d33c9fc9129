package journal

import (
	"fmt"
	"strings"
	"time"
)

// RecommendationList owns the pending recommendations. It holds the review
// list so that a finished recommendation can be turned into a review.
type RecommendationList struct {
	recommendations []Recommendation
	reviews         *ReviewList
	nowFn           func() time.Time
}

func NewRecommendationList(recommendations []Recommendation, reviews *ReviewList) *RecommendationList {
	return &RecommendationList{
		recommendations: append([]Recommendation(nil), recommendations...),
		reviews:         reviews,
		nowFn:           time.Now,
	}
}

func (l *RecommendationList) SetClock(now func() time.Time) {
	if now != nil {
		l.nowFn = now
	}
}

func (l *RecommendationList) Len() int { return len(l.recommendations) }

// List returns the recommendations in insertion order.
func (l *RecommendationList) List() []Recommendation {
	return append([]Recommendation(nil), l.recommendations...)
}

// Add appends a recommendation. Titles only have to be unique among
// recommendations; a review may already carry the same title.
func (l *RecommendationList) Add(in RecommendationInput) (Recommendation, error) {
	in = in.normalized()
	if err := validateRecommendation(in); err != nil {
		return Recommendation{}, err
	}
	if l.indexOf(in.Title) >= 0 {
		return Recommendation{}, fmt.Errorf("%w: recommendation %q", ErrDuplicateTitle, in.Title)
	}

	rec := Recommendation{
		Title:         in.Title,
		Category:      in.Category,
		RecommendedBy: in.RecommendedBy,
		Description:   in.Description,
		CreatedAt:     l.nowFn().UTC(),
	}
	l.recommendations = append(l.recommendations, rec)
	return rec, nil
}

func (l *RecommendationList) Get(title string) (Recommendation, error) {
	idx := l.indexOf(title)
	if idx < 0 {
		return Recommendation{}, notFound("recommendation", title)
	}
	return l.recommendations[idx], nil
}

func (l *RecommendationList) Edit(title string, in RecommendationInput) (Recommendation, error) {
	idx := l.indexOf(title)
	if idx < 0 {
		return Recommendation{}, notFound("recommendation", title)
	}
	in = in.normalized()
	if err := validateRecommendation(in); err != nil {
		return Recommendation{}, err
	}
	if other := l.indexOf(in.Title); other >= 0 && other != idx {
		return Recommendation{}, fmt.Errorf("%w: recommendation %q", ErrDuplicateTitle, in.Title)
	}

	rec := l.recommendations[idx]
	rec.Title = in.Title
	rec.Category = in.Category
	rec.RecommendedBy = in.RecommendedBy
	rec.Description = in.Description
	l.recommendations[idx] = rec
	return rec, nil
}

func (l *RecommendationList) Delete(title string) (Recommendation, error) {
	idx := l.indexOf(title)
	if idx < 0 {
		return Recommendation{}, notFound("recommendation", title)
	}
	removed := l.recommendations[idx]
	l.recommendations = append(l.recommendations[:idx], l.recommendations[idx+1:]...)
	return removed, nil
}

func (l *RecommendationList) Find(keyword string) []Recommendation {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	out := make([]Recommendation, 0)
	for _, r := range l.recommendations {
		if containsFold(r.Title, needle) || containsFold(r.Category, needle) ||
			containsFold(r.RecommendedBy, needle) || containsFold(r.Description, needle) {
			out = append(out, r)
		}
	}
	return out
}

// CheckConvertible reports whether title can be converted right now, without
// changing either list.
func (l *RecommendationList) CheckConvertible(title string) (Recommendation, error) {
	rec, err := l.Get(title)
	if err != nil {
		return Recommendation{}, err
	}
	if l.reviews.Has(rec.Title) {
		return Recommendation{}, fmt.Errorf("%w: a review titled %q already exists", ErrDuplicateTitle, rec.Title)
	}
	return rec, nil
}

// Convert turns the recommendation titled title into a review built from in.
// The review keeps the recommendation's title. Either both the removal and the
// append happen, or neither does: a title clash with an existing review or an
// invalid input leaves both lists as they were.
func (l *RecommendationList) Convert(title string, in ReviewInput) (Review, error) {
	rec, err := l.CheckConvertible(title)
	if err != nil {
		return Review{}, err
	}

	in.Title = rec.Title
	in = in.normalized()
	if err := validateReview(in, l.reviews.MaxRating()); err != nil {
		return Review{}, err
	}

	review := l.reviews.appendReview(in)
	if _, err := l.Delete(rec.Title); err != nil {
		return Review{}, err
	}
	return review, nil
}

func (l *RecommendationList) indexOf(title string) int {
	for i, r := range l.recommendations {
		if sameTitle(r.Title, title) {
			return i
		}
	}
	return -1
}
