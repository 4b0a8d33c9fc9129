package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/glabrego/connoisseur/internal/journal"
)

// Lines asks one question per line. An empty answer keeps the value shown in
// brackets, which makes the same prompts work for adding and editing.
type Lines struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLines(in *bufio.Reader, out io.Writer) *Lines {
	return &Lines{in: in, out: out}
}

func (l *Lines) Review(ctx context.Context, req ReviewRequest) (journal.ReviewInput, error) {
	in := req.Seed
	if req.Heading != "" {
		fmt.Fprintln(l.out, req.Heading)
	}

	var err error
	if !req.LockTitle {
		if in.Title, err = l.ask(ctx, "Title", in.Title); err != nil {
			return journal.ReviewInput{}, err
		}
	}
	if in.Category, err = l.ask(ctx, "Category", in.Category); err != nil {
		return journal.ReviewInput{}, err
	}

	maxRating := req.MaxRating
	if maxRating < 1 {
		maxRating = journal.DefaultMaxRating
	}
	// Only an existing review has a rating worth offering as the default.
	current := ""
	if req.Seed.Title != "" && !req.LockTitle {
		current = strconv.Itoa(in.Rating)
	}
	raw, err := l.ask(ctx, fmt.Sprintf("Rating (0-%d)", maxRating), current)
	if err != nil {
		return journal.ReviewInput{}, err
	}
	if in.Rating, err = strconv.Atoi(strings.TrimSpace(raw)); err != nil {
		return journal.ReviewInput{}, fmt.Errorf("%w: rating must be a whole number, got %q", journal.ErrInvalidEntry, raw)
	}

	if req.Long {
		if in.Description, err = l.ask(ctx, "Description", in.Description); err != nil {
			return journal.ReviewInput{}, err
		}
	}
	return in, nil
}

func (l *Lines) Recommendation(ctx context.Context, req RecommendationRequest) (journal.RecommendationInput, error) {
	in := req.Seed
	if req.Heading != "" {
		fmt.Fprintln(l.out, req.Heading)
	}

	fields := []struct {
		label string
		value *string
	}{
		{"Title", &in.Title},
		{"Category", &in.Category},
		{"Recommended by", &in.RecommendedBy},
		{"Description", &in.Description},
	}
	for _, f := range fields {
		answer, err := l.ask(ctx, f.label, *f.value)
		if err != nil {
			return journal.RecommendationInput{}, err
		}
		*f.value = answer
	}
	return in, nil
}

func (l *Lines) ask(ctx context.Context, label, current string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if current != "" {
		fmt.Fprintf(l.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(l.out, "%s: ", label)
	}

	line, err := l.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return current, nil
	}
	return answer, nil
}
