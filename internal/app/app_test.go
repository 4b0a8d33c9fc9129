package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/glabrego/connoisseur/internal/journal"
)

type fakeRepo struct {
	stored  journal.Snapshot
	saved   []journal.Snapshot
	loadErr error
	saveErr error
}

func (f *fakeRepo) Load(context.Context) (journal.Snapshot, error) {
	if f.loadErr != nil {
		return journal.Snapshot{}, f.loadErr
	}
	return f.stored, nil
}

func (f *fakeRepo) Save(_ context.Context, snap journal.Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, snap)
	f.stored = snap
	return nil
}

func sampleSnapshot() journal.Snapshot {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return journal.Snapshot{
		SortMethod: journal.SortByTitle,
		Display:    journal.DisplayAsterisks,
		Reviews: []journal.Review{
			{Title: "Ramen Shop", Category: "food", Rating: 4, CreatedAt: created},
		},
		Recommendations: []journal.Recommendation{
			{Title: "Tapas Bar", Category: "food", RecommendedBy: "Ana", CreatedAt: created},
		},
	}
}

func TestService_Open_RestoresStoredJournal(t *testing.T) {
	svc := NewService(&fakeRepo{stored: sampleSnapshot()}, Defaults{}, zerolog.Nop())

	j, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if j.Reviews.Len() != 1 || j.Recommendations.Len() != 1 {
		t.Fatalf("unexpected journal sizes: %d reviews, %d recommendations", j.Reviews.Len(), j.Recommendations.Len())
	}
	if j.Reviews.SortMethod() != journal.SortByTitle || j.Reviews.Display() != journal.DisplayAsterisks {
		t.Fatalf("stored preferences were not restored: %s/%s", j.Reviews.SortMethod(), j.Reviews.Display())
	}
}

func TestService_Open_AppliesDefaultsToUnsetPreferences(t *testing.T) {
	defaults := Defaults{MaxRating: 10, SortMethod: journal.SortByRating, Display: journal.DisplayAsterisks}
	svc := NewService(&fakeRepo{}, defaults, zerolog.Nop())

	j, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if j.Reviews.SortMethod() != journal.SortByRating {
		t.Fatalf("expected rating sort, got %s", j.Reviews.SortMethod())
	}
	if j.Reviews.Display() != journal.DisplayAsterisks {
		t.Fatalf("expected asterisks display, got %s", j.Reviews.Display())
	}
	if j.Reviews.MaxRating() != 10 {
		t.Fatalf("expected max rating 10, got %d", j.Reviews.MaxRating())
	}
}

func TestService_Open_StartsEmptyWhenLoadFails(t *testing.T) {
	svc := NewService(&fakeRepo{loadErr: errors.New("boom")}, Defaults{}, zerolog.Nop())

	j, err := svc.Open(context.Background())
	if err == nil {
		t.Fatal("expected load error")
	}
	if j.Reviews == nil || j.Recommendations == nil {
		t.Fatal("expected usable empty lists")
	}
	if j.Reviews.Len() != 0 || j.Recommendations.Len() != 0 {
		t.Fatal("expected empty journal after failed load")
	}
	if j.Reviews.SortMethod() != journal.DefaultSortMethod {
		t.Fatalf("expected default sort, got %s", j.Reviews.SortMethod())
	}
}

func TestService_Save_PropagatesError(t *testing.T) {
	svc := NewService(&fakeRepo{saveErr: errors.New("disk full")}, Defaults{}, zerolog.Nop())

	err := svc.Save(context.Background(), sampleSnapshot())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
}

func TestService_ExportThenImport(t *testing.T) {
	source := &fakeRepo{stored: sampleSnapshot()}
	var buf bytes.Buffer
	if err := NewService(source, Defaults{}, zerolog.Nop()).Export(context.Background(), &buf); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	target := &fakeRepo{}
	snap, err := NewService(target, Defaults{}, zerolog.Nop()).Import(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if len(target.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(target.saved))
	}
	if len(snap.Reviews) != 1 || snap.Reviews[0].Title != "Ramen Shop" {
		t.Fatalf("unexpected imported reviews: %+v", snap.Reviews)
	}
	if snap.Recommendations[0].RecommendedBy != "Ana" {
		t.Fatalf("unexpected imported recommendations: %+v", snap.Recommendations)
	}
}

func TestService_Import_RejectsInvalidJournal(t *testing.T) {
	doc := `version: 1
journal:
  sort_method: date
  display: stars
  reviews:
    - title: Ramen Shop
      category: food
      rating: 9
`
	repo := &fakeRepo{}
	svc := NewService(repo, Defaults{}, zerolog.Nop())

	_, err := svc.Import(context.Background(), strings.NewReader(doc))
	if !errors.Is(err, journal.ErrInvalidEntry) {
		t.Fatalf("expected invalid entry error, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatal("invalid journal must not be saved")
	}
}

func TestService_Import_RejectsDuplicateTitles(t *testing.T) {
	doc := `version: 1
journal:
  reviews:
    - {title: Ramen Shop, category: food, rating: 3}
    - {title: ramen shop, category: food, rating: 4}
`
	svc := NewService(&fakeRepo{}, Defaults{}, zerolog.Nop())

	_, err := svc.Import(context.Background(), strings.NewReader(doc))
	if !errors.Is(err, journal.ErrDuplicateTitle) {
		t.Fatalf("expected duplicate title error, got %v", err)
	}
}

func TestService_Import_SavesNormalizedJournal(t *testing.T) {
	doc := `version: 1
journal:
  sort_method: " Rating "
  display: STARS
  reviews:
    - title: "  Ramen Shop  "
      category: " Food "
      rating: 4
      description: "  rich broth "
      created_at: 2026-03-01T12:00:00Z
  recommendations:
    - title: " Tapas Bar"
      category: FOOD
      recommended_by: " Ana "
`
	repo := &fakeRepo{}
	svc := NewService(repo, Defaults{}, zerolog.Nop())

	snap, err := svc.Import(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(repo.saved))
	}
	saved := repo.saved[0]
	if saved.SortMethod != journal.SortByRating || saved.Display != journal.DisplayStars {
		t.Fatalf("expected normalized preferences, got %q/%q", saved.SortMethod, saved.Display)
	}
	review := saved.Reviews[0]
	if review.Title != "Ramen Shop" || review.Category != "food" || review.Description != "rich broth" {
		t.Fatalf("expected normalized review, got %+v", review)
	}
	if !review.CreatedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected creation time to survive import, got %v", review.CreatedAt)
	}
	rec := saved.Recommendations[0]
	if rec.Title != "Tapas Bar" || rec.Category != "food" || rec.RecommendedBy != "Ana" {
		t.Fatalf("expected normalized recommendation, got %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected a creation time for an undated recommendation")
	}
	if snap.Reviews[0].Title != review.Title {
		t.Fatalf("returned snapshot differs from saved one: %+v", snap.Reviews)
	}
}
