package journal

import (
	"fmt"
	"sort"
	"strings"
)

type SortMethod string

const (
	SortByDate      SortMethod = "date"
	SortByTitle     SortMethod = "title"
	SortByCategory  SortMethod = "category"
	SortByRating    SortMethod = "rating"
	SortByRatingAsc SortMethod = "rating-asc"
)

// DefaultSortMethod keeps reviews in the order they were written.
const DefaultSortMethod = SortByDate

var sortMethods = []SortMethod{SortByDate, SortByTitle, SortByCategory, SortByRating, SortByRatingAsc}

// SortMethods lists every recognised sort method.
func SortMethods() []SortMethod {
	return append([]SortMethod(nil), sortMethods...)
}

func ParseSortMethod(s string) (SortMethod, error) {
	want := SortMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range sortMethods {
		if m == want {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortType, s)
}

// Sorter remembers the active sort method and orders reviews by it.
type Sorter struct {
	method SortMethod
}

func NewSorter(method SortMethod) Sorter {
	if _, err := ParseSortMethod(string(method)); err != nil {
		method = DefaultSortMethod
	}
	return Sorter{method: method}
}

func (s Sorter) Method() SortMethod {
	if s.method == "" {
		return DefaultSortMethod
	}
	return s.method
}

func (s *Sorter) SetMethod(name string) error {
	method, err := ParseSortMethod(name)
	if err != nil {
		return err
	}
	s.method = method
	return nil
}

// Sort returns a sorted copy of reviews, which must be in the order they were
// added. The sort is stable, so entries that compare equal keep that order and
// the date method returns them unchanged.
func (s Sorter) Sort(reviews []Review) []Review {
	sorted := append([]Review(nil), reviews...)
	if s.Method() == SortByDate {
		return sorted
	}
	sort.SliceStable(sorted, s.less(sorted))
	return sorted
}

func (s Sorter) less(reviews []Review) func(i, j int) bool {
	switch s.Method() {
	case SortByTitle:
		return func(i, j int) bool {
			return titleLess(reviews[i], reviews[j])
		}
	case SortByCategory:
		return func(i, j int) bool {
			return strings.ToLower(reviews[i].Category) < strings.ToLower(reviews[j].Category)
		}
	case SortByRating:
		return func(i, j int) bool {
			if reviews[i].Rating != reviews[j].Rating {
				return reviews[i].Rating > reviews[j].Rating
			}
			return titleLess(reviews[i], reviews[j])
		}
	case SortByRatingAsc:
		return func(i, j int) bool {
			if reviews[i].Rating != reviews[j].Rating {
				return reviews[i].Rating < reviews[j].Rating
			}
			return titleLess(reviews[i], reviews[j])
		}
	default:
		return func(i, j int) bool { return false }
	}
}

func titleLess(a, b Review) bool {
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}
