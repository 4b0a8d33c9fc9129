package prompt

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/connoisseur/internal/journal"
)

func newLines(input string) (*Lines, *bytes.Buffer) {
	var out bytes.Buffer
	return NewLines(bufio.NewReader(strings.NewReader(input)), &out), &out
}

func TestLines_QuickReview(t *testing.T) {
	p, out := newLines("Ramen Shop\nfood\n4\n")

	in, err := p.Review(context.Background(), ReviewRequest{Heading: "New review", MaxRating: 5})
	require.NoError(t, err)
	assert.Equal(t, journal.ReviewInput{Title: "Ramen Shop", Category: "food", Rating: 4}, in)
	assert.Contains(t, out.String(), "New review")
	assert.Contains(t, out.String(), "Rating (0-5): ")
}

func TestLines_LongReviewAsksDescription(t *testing.T) {
	p, _ := newLines("Arrival\nmovie\n5\nquiet and sad\n")

	in, err := p.Review(context.Background(), ReviewRequest{Long: true})
	require.NoError(t, err)
	assert.Equal(t, "quiet and sad", in.Description)
}

func TestLines_EditKeepsBlankAnswers(t *testing.T) {
	p, out := newLines("\n\n2\n\n")
	seed := journal.ReviewInput{Title: "Dune", Category: "book", Rating: 4, Description: "sand"}

	in, err := p.Review(context.Background(), ReviewRequest{Seed: seed, Long: true})
	require.NoError(t, err)
	assert.Equal(t, journal.ReviewInput{Title: "Dune", Category: "book", Rating: 2, Description: "sand"}, in)
	assert.Contains(t, out.String(), "Title [Dune]: ")
	assert.Contains(t, out.String(), "Rating (0-5) [4]: ")
}

func TestLines_LockedTitleSkipsTitlePrompt(t *testing.T) {
	p, out := newLines("food\n3\n")

	in, err := p.Review(context.Background(), ReviewRequest{Seed: journal.ReviewInput{Title: "Tapas"}, LockTitle: true})
	require.NoError(t, err)
	assert.Equal(t, "Tapas", in.Title)
	assert.Equal(t, 3, in.Rating)
	assert.NotContains(t, out.String(), "Title")
}

func TestLines_BadRating(t *testing.T) {
	p, _ := newLines("Pho\nfood\nfive\n")

	_, err := p.Review(context.Background(), ReviewRequest{})
	require.ErrorIs(t, err, journal.ErrInvalidEntry)
}

func TestLines_EOFAborts(t *testing.T) {
	p, _ := newLines("Pho\n")

	_, err := p.Review(context.Background(), ReviewRequest{})
	require.ErrorIs(t, err, ErrAborted)
}

func TestLines_LastLineWithoutNewline(t *testing.T) {
	p, _ := newLines("Tapas\nfood\nAna\nsmall plates")

	in, err := p.Recommendation(context.Background(), RecommendationRequest{})
	require.NoError(t, err)
	assert.Equal(t, journal.RecommendationInput{Title: "Tapas", Category: "food", RecommendedBy: "Ana", Description: "small plates"}, in)
}

func TestLines_CancelledContext(t *testing.T) {
	p, _ := newLines("Tapas\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Recommendation(ctx, RecommendationRequest{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_ExplicitModes(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	assert.IsType(t, &Lines{}, New(ModePlain, r, &bytes.Buffer{}))
	assert.IsType(t, &Forms{}, New(ModeForm, r, &bytes.Buffer{}))
}

func TestRatingOptions(t *testing.T) {
	opts := ratingOptions(3)
	require.Len(t, opts, 4)
	assert.Equal(t, 3, opts[0].Value)
	assert.Equal(t, 0, opts[3].Value)
	assert.Equal(t, "★★★  3", opts[0].Key)
}
