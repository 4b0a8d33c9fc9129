// Package prompt collects entry fields from the user, either with interactive
// forms or with plain line prompts when input is not a terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/glabrego/connoisseur/internal/journal"
)

// ErrAborted is returned when the user abandons a prompt.
var ErrAborted = errors.New("prompt aborted")

type ReviewRequest struct {
	Heading   string
	Seed      journal.ReviewInput
	Long      bool // also ask for a description
	LockTitle bool
	MaxRating int
}

type RecommendationRequest struct {
	Heading string
	Seed    journal.RecommendationInput
}

type Prompter interface {
	Review(ctx context.Context, req ReviewRequest) (journal.ReviewInput, error)
	Recommendation(ctx context.Context, req RecommendationRequest) (journal.RecommendationInput, error)
}

const (
	ModeAuto  = "auto"
	ModeForm  = "form"
	ModePlain = "plain"
)

// New picks a prompter for mode. In auto mode forms are used only when both
// stdin and stdout are terminals.
func New(mode string, in *bufio.Reader, out io.Writer) Prompter {
	switch mode {
	case ModeForm:
		return NewForms()
	case ModePlain:
		return NewLines(in, out)
	}
	if IsTerminal(os.Stdin) && IsTerminal(os.Stdout) {
		return NewForms()
	}
	return NewLines(in, out)
}

func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
