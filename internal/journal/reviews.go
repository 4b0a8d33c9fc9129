package journal

import (
	"fmt"
	"strings"
	"time"
)

type ReviewListOptions struct {
	MaxRating  int
	SortMethod SortMethod
	Display    DisplayMode
}

// ReviewList owns the reviews together with the list-wide sort method and
// display mode. Reviews are held in the order they were added; the sort method
// only shapes what readers get back.
type ReviewList struct {
	reviews   []Review
	sorter    Sorter
	display   DisplayMode
	maxRating int
	nowFn     func() time.Time
}

func NewReviewList(reviews []Review, opts ReviewListOptions) *ReviewList {
	if opts.MaxRating < 1 {
		opts.MaxRating = DefaultMaxRating
	}
	display, err := ParseDisplayMode(string(opts.Display))
	if err != nil {
		display = DisplayStars
	}
	return &ReviewList{
		reviews:   append([]Review(nil), reviews...),
		sorter:    NewSorter(opts.SortMethod),
		display:   display,
		maxRating: opts.MaxRating,
		nowFn:     time.Now,
	}
}

// SetClock replaces the time source used to stamp new reviews.
func (l *ReviewList) SetClock(now func() time.Time) {
	if now != nil {
		l.nowFn = now
	}
}

func (l *ReviewList) Len() int               { return len(l.reviews) }
func (l *ReviewList) Display() DisplayMode   { return l.display }
func (l *ReviewList) SortMethod() SortMethod { return l.sorter.Method() }
func (l *ReviewList) MaxRating() int         { return l.maxRating }
func (l *ReviewList) Has(title string) bool  { return l.indexOf(title) >= 0 }

// Reviews returns a copy of the reviews ordered by the current sort method.
func (l *ReviewList) Reviews() []Review { return l.sorter.Sort(l.reviews) }

// inserted returns a copy of the reviews in the order they were added.
func (l *ReviewList) inserted() []Review { return append([]Review(nil), l.reviews...) }

func (l *ReviewList) RenderRating(r Review) string {
	return RenderRating(r.Rating, l.maxRating, l.display)
}

func (l *ReviewList) Add(in ReviewInput) (Review, error) {
	in = in.normalized()
	if err := validateReview(in, l.maxRating); err != nil {
		return Review{}, err
	}
	if l.Has(in.Title) {
		return Review{}, fmt.Errorf("%w: review %q", ErrDuplicateTitle, in.Title)
	}

	return l.appendReview(in), nil
}

// Edit replaces the fields of the review titled title, keeping its position
// in the list and its creation time.
func (l *ReviewList) Edit(title string, in ReviewInput) (Review, error) {
	idx := l.indexOf(title)
	if idx < 0 {
		return Review{}, notFound("review", title)
	}
	in = in.normalized()
	if err := validateReview(in, l.maxRating); err != nil {
		return Review{}, err
	}
	if other := l.indexOf(in.Title); other >= 0 && other != idx {
		return Review{}, fmt.Errorf("%w: review %q", ErrDuplicateTitle, in.Title)
	}

	review := l.reviews[idx]
	review.Title = in.Title
	review.Category = in.Category
	review.Rating = in.Rating
	review.Description = in.Description
	l.reviews[idx] = review
	return review, nil
}

func (l *ReviewList) Delete(title string) (Review, error) {
	idx := l.indexOf(title)
	if idx < 0 {
		return Review{}, notFound("review", title)
	}
	removed := l.reviews[idx]
	l.reviews = append(l.reviews[:idx], l.reviews[idx+1:]...)
	return removed, nil
}

func (l *ReviewList) View(title string) (Review, error) {
	idx := l.indexOf(title)
	if idx < 0 {
		return Review{}, notFound("review", title)
	}
	return l.reviews[idx], nil
}

// List returns the reviews in sorted order. A non-empty sortHint becomes the
// list's sort method from then on.
func (l *ReviewList) List(sortHint string) ([]Review, error) {
	if strings.TrimSpace(sortHint) != "" {
		if err := l.Sort(sortHint); err != nil {
			return nil, err
		}
	}
	return l.Reviews(), nil
}

func (l *ReviewList) Sort(sortType string) error {
	return l.sorter.SetMethod(sortType)
}

func (l *ReviewList) ChangeDisplay(displayType string) error {
	mode, err := ParseDisplayMode(displayType)
	if err != nil {
		return err
	}
	l.display = mode
	return nil
}

// Find returns reviews whose title, category or description contains keyword,
// ignoring case.
func (l *ReviewList) Find(keyword string) []Review {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	out := make([]Review, 0)
	for _, r := range l.Reviews() {
		if containsFold(r.Title, needle) || containsFold(r.Category, needle) || containsFold(r.Description, needle) {
			out = append(out, r)
		}
	}
	return out
}

// appendReview stamps and appends a review. Callers have already validated in
// and checked for duplicates.
func (l *ReviewList) appendReview(in ReviewInput) Review {
	review := Review{
		Title:       in.Title,
		Category:    in.Category,
		Rating:      in.Rating,
		Description: in.Description,
		CreatedAt:   l.nowFn().UTC(),
	}
	l.reviews = append(l.reviews, review)
	return review
}

func (l *ReviewList) indexOf(title string) int {
	for i, r := range l.reviews {
		if sameTitle(r.Title, title) {
			return i
		}
	}
	return -1
}

func notFound(kind, title string) error {
	return fmt.Errorf("%w: no %s titled %q", ErrNotFound, kind, strings.TrimSpace(title))
}
