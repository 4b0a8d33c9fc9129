package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/glabrego/connoisseur/internal/journal"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "connoisseur.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	return repo
}

func sampleSnapshot() journal.Snapshot {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return journal.Snapshot{
		SortMethod: journal.SortByRating,
		Display:    journal.DisplayAsterisks,
		Reviews: []journal.Review{
			{Title: "Ramen Shop", Category: "food", Rating: 4, CreatedAt: base.Add(2 * time.Hour)},
			{Title: "Arrival", Category: "movie", Rating: 5, Description: "quiet and sad", CreatedAt: base},
		},
		Recommendations: []journal.Recommendation{
			{Title: "Tapas", Category: "food", RecommendedBy: "Ana", CreatedAt: base.Add(time.Hour)},
			{Title: "Heat", Category: "movie", Description: "the diner scene", CreatedAt: base.Add(3 * time.Hour)},
		},
	}
}

func TestRepository_SaveAndLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	want := sampleSnapshot()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestRepository_SaveReplacesPreviousState(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("initial Save returned error: %v", err)
	}

	next := sampleSnapshot()
	next.Reviews = next.Reviews[1:]
	next.Recommendations = []journal.Recommendation{}
	next.Display = journal.DisplayStars
	if err := repo.Save(ctx, next); err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got.Reviews) != 1 || got.Reviews[0].Title != "Arrival" {
		t.Fatalf("expected only Arrival to remain, got %+v", got.Reviews)
	}
	if len(got.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %+v", got.Recommendations)
	}
	if got.Display != journal.DisplayStars {
		t.Fatalf("expected stars display, got %q", got.Display)
	}
}

func TestRepository_LoadEmptyLeavesPreferencesUnset(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got.SortMethod != "" || got.Display != "" {
		t.Fatalf("expected unset preferences, got %+v", got)
	}
	if len(got.Reviews) != 0 || len(got.Recommendations) != 0 {
		t.Fatalf("expected empty journal, got %+v", got)
	}
}

func TestRepository_CheckWritable(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.CheckWritable(context.Background()); err != nil {
		t.Fatalf("CheckWritable returned error: %v", err)
	}
}
