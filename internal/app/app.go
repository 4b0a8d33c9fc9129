// Package app loads and stores the journal on behalf of the shell and the
// browser, filling in configured defaults where the store has none.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/glabrego/connoisseur/internal/journal"
	"github.com/glabrego/connoisseur/internal/storage"
)

type Repository interface {
	Load(ctx context.Context) (journal.Snapshot, error)
	Save(ctx context.Context, snap journal.Snapshot) error
}

// Defaults apply to a journal whose preferences were never saved.
type Defaults struct {
	MaxRating  int
	SortMethod journal.SortMethod
	Display    journal.DisplayMode
}

// Journal is the pair of lists a session works on.
type Journal struct {
	Reviews         *journal.ReviewList
	Recommendations *journal.RecommendationList
}

func (j Journal) Snapshot() journal.Snapshot {
	return journal.Capture(j.Reviews, j.Recommendations)
}

type Service struct {
	repo     Repository
	defaults Defaults
	log      zerolog.Logger
}

func NewService(repo Repository, defaults Defaults, logger zerolog.Logger) *Service {
	if defaults.MaxRating < 1 {
		defaults.MaxRating = journal.DefaultMaxRating
	}
	return &Service{repo: repo, defaults: defaults, log: logger}
}

// Open loads the stored journal. When loading fails the session still starts,
// from an empty journal, and the load error is returned for reporting.
func (s *Service) Open(ctx context.Context) (Journal, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("journal load failed, starting empty")
		return s.restore(journal.Snapshot{}), fmt.Errorf("load journal from storage: %w", err)
	}
	s.log.Info().
		Int("reviews", len(snap.Reviews)).
		Int("recommendations", len(snap.Recommendations)).
		Msg("journal loaded")
	return s.restore(snap), nil
}

func (s *Service) Save(ctx context.Context, snap journal.Snapshot) error {
	if err := s.repo.Save(ctx, s.withDefaults(snap)); err != nil {
		return fmt.Errorf("write journal to storage: %w", err)
	}
	s.log.Info().
		Int("reviews", len(snap.Reviews)).
		Int("recommendations", len(snap.Recommendations)).
		Msg("journal saved")
	return nil
}

// Export writes the stored journal to w as YAML.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load journal from storage: %w", err)
	}
	return storage.WriteYAML(w, s.withDefaults(snap))
}

// Import replaces the stored journal with the YAML document read from r. The
// document is checked in full before anything is written.
func (s *Service) Import(ctx context.Context, r io.Reader) (journal.Snapshot, error) {
	snap, err := storage.ReadYAML(r)
	if err != nil {
		return journal.Snapshot{}, err
	}
	snap, err = s.withDefaults(snap).Normalized(s.defaults.MaxRating)
	if err != nil {
		return journal.Snapshot{}, fmt.Errorf("validate imported journal: %w", err)
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		return journal.Snapshot{}, fmt.Errorf("write journal to storage: %w", err)
	}
	s.log.Info().
		Int("reviews", len(snap.Reviews)).
		Int("recommendations", len(snap.Recommendations)).
		Msg("journal imported")
	return snap, nil
}

func (s *Service) restore(snap journal.Snapshot) Journal {
	reviews, recs := journal.Restore(s.withDefaults(snap), s.defaults.MaxRating)
	return Journal{Reviews: reviews, Recommendations: recs}
}

func (s *Service) withDefaults(snap journal.Snapshot) journal.Snapshot {
	if snap.SortMethod == "" {
		snap.SortMethod = s.defaults.SortMethod
	}
	if snap.SortMethod == "" {
		snap.SortMethod = journal.DefaultSortMethod
	}
	if snap.Display == "" {
		snap.Display = s.defaults.Display
	}
	if snap.Display == "" {
		snap.Display = journal.DisplayStars
	}
	return snap
}
