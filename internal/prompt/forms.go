package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/glabrego/connoisseur/internal/journal"
)

// Forms prompts with huh forms. It needs a terminal on stdin and stdout.
type Forms struct {
	theme *huh.Theme
}

func NewForms() *Forms {
	return &Forms{theme: huh.ThemeCatppuccin()}
}

func (f *Forms) Review(ctx context.Context, req ReviewRequest) (journal.ReviewInput, error) {
	in := req.Seed
	maxRating := req.MaxRating
	if maxRating < 1 {
		maxRating = journal.DefaultMaxRating
	}

	fields := make([]huh.Field, 0, 5)
	if req.Heading != "" {
		fields = append(fields, huh.NewNote().Title(req.Heading))
	}
	if !req.LockTitle {
		fields = append(fields, huh.NewInput().
			Title("Title").
			Value(&in.Title).
			Validate(required("title")))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Category").
			Placeholder("food, movie, book...").
			Value(&in.Category).
			Validate(required("category")),
		huh.NewSelect[int]().
			Title("Rating").
			Options(ratingOptions(maxRating)...).
			Value(&in.Rating),
	)
	if req.Long {
		fields = append(fields, huh.NewText().
			Title("Description").
			Value(&in.Description))
	}

	if err := f.run(ctx, fields); err != nil {
		return journal.ReviewInput{}, err
	}
	return in, nil
}

func (f *Forms) Recommendation(ctx context.Context, req RecommendationRequest) (journal.RecommendationInput, error) {
	in := req.Seed

	fields := make([]huh.Field, 0, 5)
	if req.Heading != "" {
		fields = append(fields, huh.NewNote().Title(req.Heading))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Title").
			Value(&in.Title).
			Validate(required("title")),
		huh.NewInput().
			Title("Category").
			Placeholder("food, movie, book...").
			Value(&in.Category),
		huh.NewInput().
			Title("Recommended by").
			Value(&in.RecommendedBy),
		huh.NewText().
			Title("Description").
			Value(&in.Description),
	)

	if err := f.run(ctx, fields); err != nil {
		return journal.RecommendationInput{}, err
	}
	return in, nil
}

func (f *Forms) run(ctx context.Context, fields []huh.Field) error {
	err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(f.theme).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	if err != nil {
		return fmt.Errorf("form: %w", err)
	}
	return nil
}

func ratingOptions(maxRating int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, maxRating+1)
	for r := maxRating; r >= 0; r-- {
		label := fmt.Sprintf("%s  %d", journal.RenderRating(r, maxRating, journal.DisplayStars), r)
		opts = append(opts, huh.NewOption(label, r))
	}
	return opts
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
