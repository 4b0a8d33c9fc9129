package journal

import (
	"time"
)

// steppingClock returns a clock that advances one minute per call so that
// creation order is unambiguous in tests.
func steppingClock() func() time.Time {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func newTestReviews() *ReviewList {
	l := NewReviewList(nil, ReviewListOptions{})
	l.SetClock(steppingClock())
	return l
}

func titles(reviews []Review) []string {
	out := make([]string, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.Title)
	}
	return out
}
