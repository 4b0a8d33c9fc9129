package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/glabrego/connoisseur/internal/journal"
	"github.com/glabrego/connoisseur/internal/prompt"
	"github.com/glabrego/connoisseur/internal/tui/view"
)

func (s *Shell) switchMode(verb string) error {
	switch verb {
	case "review":
		s.mode = ReviewMode
		s.println(msgReviewMode)
	case "reco":
		s.mode = RecommendationMode
		s.println(msgRecommendationMode)
	}
	return nil
}

func (s *Shell) help(topic string) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		s.println(generalHelp(s.mode))
		return
	}
	text, ok := helpTopics[topic]
	if !ok {
		s.println(msgInvalidHelpTopic)
		return
	}
	s.println(text)
}

func (s *Shell) display(verb, displayType string) error {
	switch s.mode {
	case ReviewMode:
		if err := s.reviews.ChangeDisplay(displayType); err != nil {
			return err
		}
		s.println("Ratings are now shown as " + string(s.reviews.Display()) + ".")
		return nil
	case RecommendationMode:
		return modeMismatch(verb, s.mode)
	default:
		return unknownMode(s.mode)
	}
}

func (s *Shell) sort(verb, sortType string) error {
	switch s.mode {
	case ReviewMode:
		if err := s.reviews.Sort(sortType); err != nil {
			return err
		}
		s.println("Reviews are now sorted by " + string(s.reviews.SortMethod()) + ".")
		return nil
	case RecommendationMode:
		return modeMismatch(verb, s.mode)
	default:
		return unknownMode(s.mode)
	}
}

func (s *Shell) list(verb, sortHint string) error {
	switch s.mode {
	case ReviewMode:
		reviews, err := s.reviews.List(sortHint)
		if err != nil {
			return err
		}
		s.printReviews(reviews, msgNoReviews)
		return nil
	case RecommendationMode:
		if sortHint != "" {
			return modeMismatch(verb+" "+sortHint, s.mode)
		}
		s.printRecommendations(s.recs.List(), msgNoRecommendations)
		return nil
	default:
		return unknownMode(s.mode)
	}
}

func (s *Shell) find(keyword string) error {
	switch s.mode {
	case ReviewMode:
		s.printReviews(s.reviews.Find(keyword), msgNoMatches)
		return nil
	case RecommendationMode:
		s.printRecommendations(s.recs.Find(keyword), msgNoMatches)
		return nil
	default:
		return unknownMode(s.mode)
	}
}

func (s *Shell) view(verb, title string) error {
	switch s.mode {
	case ReviewMode:
		review, err := s.reviews.View(title)
		if err != nil {
			return err
		}
		s.printLines(view.ReviewDetailLines(review, s.reviews.RenderRating(review), s.reviews.MaxRating(), s.width, view.WrapText, s.theme))
		return nil
	case RecommendationMode:
		return modeMismatch(verb, s.mode)
	default:
		return unknownMode(s.mode)
	}
}

func (s *Shell) delete(title string) error {
	switch s.mode {
	case ReviewMode:
		removed, err := s.reviews.Delete(title)
		if err != nil {
			return err
		}
		s.log.Info().Str("title", removed.Title).Msg("review deleted")
		s.println(fmt.Sprintf("Deleted review %q.", removed.Title))
		return nil
	case RecommendationMode:
		removed, err := s.recs.Delete(title)
		if err != nil {
			return err
		}
		s.log.Info().Str("title", removed.Title).Msg("recommendation deleted")
		s.println(fmt.Sprintf("Deleted recommendation %q.", removed.Title))
		return nil
	default:
		return unknownMode(s.mode)
	}
}

func (s *Shell) add(ctx context.Context, args []string) error {
	switch s.mode {
	case ReviewMode:
		if len(args) > 1 {
			return ErrInvalidParameters
		}
		long := false
		if len(args) == 1 {
			switch strings.ToLower(args[0]) {
			case "quick":
			case "long":
				long = true
			default:
				return ErrInvalidParameters
			}
		}
		in, err := s.prompter.Review(ctx, prompt.ReviewRequest{
			Heading:   "New review",
			Long:      long,
			MaxRating: s.reviews.MaxRating(),
		})
		if err != nil {
			return err
		}
		review, err := s.reviews.Add(in)
		if err != nil {
			return err
		}
		s.log.Info().Str("title", review.Title).Int("rating", review.Rating).Msg("review added")
		s.println(fmt.Sprintf("Added review %q.", review.Title))
		return nil
	case RecommendationMode:
		if len(args) != 0 {
			return ErrInvalidParameters
		}
		in, err := s.prompter.Recommendation(ctx, prompt.RecommendationRequest{Heading: "New recommendation"})
		if err != nil {
			return err
		}
		rec, err := s.recs.Add(in)
		if err != nil {
			return err
		}
		s.log.Info().Str("title", rec.Title).Msg("recommendation added")
		s.println(fmt.Sprintf("Added recommendation %q.", rec.Title))
		return nil
	default:
		return unknownMode(s.mode)
	}
}

func (s *Shell) edit(ctx context.Context, title string) error {
	switch s.mode {
	case ReviewMode:
		current, err := s.reviews.View(title)
		if err != nil {
			return err
		}
		in, err := s.prompter.Review(ctx, prompt.ReviewRequest{
			Heading:   "Edit review",
			Seed:      current.Input(),
			Long:      true,
			MaxRating: s.reviews.MaxRating(),
		})
		if err != nil {
			return err
		}
		updated, err := s.reviews.Edit(current.Title, in)
		if err != nil {
			return err
		}
		s.log.Info().Str("title", current.Title).Str("new_title", updated.Title).Msg("review edited")
		s.println(fmt.Sprintf("Updated review %q.", updated.Title))
		return nil
	case RecommendationMode:
		current, err := s.recs.Get(title)
		if err != nil {
			return err
		}
		in, err := s.prompter.Recommendation(ctx, prompt.RecommendationRequest{
			Heading: "Edit recommendation",
			Seed:    current.Input(),
		})
		if err != nil {
			return err
		}
		updated, err := s.recs.Edit(current.Title, in)
		if err != nil {
			return err
		}
		s.log.Info().Str("title", current.Title).Str("new_title", updated.Title).Msg("recommendation edited")
		s.println(fmt.Sprintf("Updated recommendation %q.", updated.Title))
		return nil
	default:
		return unknownMode(s.mode)
	}
}

// done moves a recommendation over to the reviews once it has been tried. The
// clash check runs before prompting so the user is not asked for a rating
// that cannot be stored.
func (s *Shell) done(ctx context.Context, verb, title string) error {
	switch s.mode {
	case ReviewMode:
		return modeMismatch(verb, s.mode)
	case RecommendationMode:
		rec, err := s.recs.CheckConvertible(title)
		if err != nil {
			return err
		}
		in, err := s.prompter.Review(ctx, prompt.ReviewRequest{
			Heading: "Review " + rec.Title,
			Seed: journal.ReviewInput{
				Title:       rec.Title,
				Category:    rec.Category,
				Description: rec.Description,
			},
			Long:      true,
			LockTitle: true,
			MaxRating: s.reviews.MaxRating(),
		})
		if err != nil {
			return err
		}
		review, err := s.recs.Convert(rec.Title, in)
		if err != nil {
			return err
		}
		s.log.Info().Str("title", review.Title).Int("rating", review.Rating).Msg("recommendation converted")
		s.println(fmt.Sprintf("Moved %q to your reviews.", review.Title))
		return nil
	default:
		return unknownMode(s.mode)
	}
}

func (s *Shell) exit(ctx context.Context) error {
	if s.saver != nil {
		if err := s.saver.Save(ctx, s.snapshot()); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFailed, err)
		}
	}
	s.println(msgExit)
	return nil
}

func (s *Shell) printReviews(reviews []journal.Review, empty string) {
	if len(reviews) == 0 {
		s.println(empty)
		return
	}
	for i, r := range reviews {
		s.println(view.RenderReviewLine(view.ReviewLineParams{
			Review:    r,
			Rating:    s.reviews.RenderRating(r),
			MaxRating: s.reviews.MaxRating(),
			Pos:       i,
		}, s.theme))
	}
}

func (s *Shell) printRecommendations(recs []journal.Recommendation, empty string) {
	if len(recs) == 0 {
		s.println(empty)
		return
	}
	for i, r := range recs {
		s.println(view.RenderRecommendationLine(view.RecommendationLineParams{
			Recommendation: r,
			Pos:            i,
		}, s.theme))
	}
}

func (s *Shell) printLines(lines []string) {
	for _, line := range lines {
		s.println(line)
	}
}
