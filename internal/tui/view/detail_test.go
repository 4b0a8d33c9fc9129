package view

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tuitheme "github.com/glabrego/connoisseur/internal/tui/theme"

	"github.com/glabrego/connoisseur/internal/journal"
)

func TestReviewDetailLines(t *testing.T) {
	th := tuitheme.Default()
	review := journal.Review{
		Title:       "Ramen Shop",
		Category:    "food",
		Rating:      4,
		Description: "Rich broth, thin noodles.",
		CreatedAt:   time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
	}

	lines := ReviewDetailLines(review, "**** ", 5, 60, WrapText, th)
	plain := make([]string, 0, len(lines))
	for _, l := range lines {
		plain = append(plain, StripANSI(l))
	}
	joined := strings.Join(plain, "\n")

	for _, want := range []string{"Ramen Shop\n==========", "Category: food", "Rating: ****", "Reviewed: ", "Rich broth, thin noodles."} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in detail, got:\n%s", want, joined)
		}
	}
}

func TestRecommendationDetailLines_SkipsEmptyFields(t *testing.T) {
	th := tuitheme.Default()
	lines := RecommendationDetailLines(journal.Recommendation{Title: "Heat"}, 40, WrapText, th)

	plain := make([]string, 0, len(lines))
	for _, l := range lines {
		plain = append(plain, StripANSI(l))
	}
	if !reflect.DeepEqual(plain, []string{"Heat", "===="}) {
		t.Fatalf("unexpected lines: %q", plain)
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WrapText = %q, want %q", got, want)
	}

	got = WrapText("abcdefghij", 4)
	want = []string{"abcd", "efgh", "ij"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WrapText long word = %q, want %q", got, want)
	}

	got = WrapText("麺麺麺 ramen", 4)
	want = []string{"麺麺", "麺", "ramen"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WrapText wide word = %q, want %q", got, want)
	}

	if got := WrapText("麺", 1); !reflect.DeepEqual(got, []string{"麺"}) {
		t.Fatalf("expected a character wider than the line on its own, got %q", got)
	}

	if got := WrapText("keep", 0); !reflect.DeepEqual(got, []string{"keep"}) {
		t.Fatalf("expected unwrapped text, got %q", got)
	}
}
