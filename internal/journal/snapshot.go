package journal

import "time"

// Snapshot is everything that survives between sessions.
type Snapshot struct {
	SortMethod      SortMethod       `yaml:"sort_method"`
	Display         DisplayMode      `yaml:"display"`
	Reviews         []Review         `yaml:"reviews"`
	Recommendations []Recommendation `yaml:"recommendations"`
}

// Restore rebuilds both lists from a snapshot.
func Restore(snap Snapshot, maxRating int) (*ReviewList, *RecommendationList) {
	reviews := NewReviewList(snap.Reviews, ReviewListOptions{
		MaxRating:  maxRating,
		SortMethod: snap.SortMethod,
		Display:    snap.Display,
	})
	return reviews, NewRecommendationList(snap.Recommendations, reviews)
}

// Capture copies the current state of both lists. Reviews are captured in the
// order they were added so a restored list sorts by date the same way.
func Capture(reviews *ReviewList, recommendations *RecommendationList) Snapshot {
	return Snapshot{
		SortMethod:      reviews.SortMethod(),
		Display:         reviews.Display(),
		Reviews:         reviews.inserted(),
		Recommendations: recommendations.List(),
	}
}

// Normalized checks a snapshot that came from outside the application, such
// as an imported file, against the same rules the lists enforce. It returns
// the snapshot as the lists would hold it: preferences and fields normalized,
// order and creation times kept.
func (s Snapshot) Normalized(maxRating int) (Snapshot, error) {
	sortMethod, err := ParseSortMethod(string(s.SortMethod))
	if err != nil {
		return Snapshot{}, err
	}
	display, err := ParseDisplayMode(string(s.Display))
	if err != nil {
		return Snapshot{}, err
	}

	var createdAt time.Time
	clock := func() time.Time {
		if createdAt.IsZero() {
			return time.Now()
		}
		return createdAt
	}

	reviews := NewReviewList(nil, ReviewListOptions{MaxRating: maxRating, SortMethod: sortMethod, Display: display})
	reviews.SetClock(clock)
	for _, r := range s.Reviews {
		createdAt = r.CreatedAt
		if _, err := reviews.Add(r.Input()); err != nil {
			return Snapshot{}, err
		}
	}
	recs := NewRecommendationList(nil, reviews)
	recs.SetClock(clock)
	for _, r := range s.Recommendations {
		createdAt = r.CreatedAt
		if _, err := recs.Add(r.Input()); err != nil {
			return Snapshot{}, err
		}
	}
	return Capture(reviews, recs), nil
}
