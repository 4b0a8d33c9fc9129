// Package shell runs the interactive command loop and routes each command to
// the review or recommendation list depending on the current mode.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/glabrego/connoisseur/internal/journal"
	"github.com/glabrego/connoisseur/internal/prompt"
	tuitheme "github.com/glabrego/connoisseur/internal/tui/theme"
)

// Saver persists the whole journal.
type Saver interface {
	Save(ctx context.Context, snap journal.Snapshot) error
}

type Options struct {
	Prompter prompt.Prompter
	Saver    Saver
	Out      io.Writer
	Logger   zerolog.Logger
	// Width wraps detail views; zero disables wrapping.
	Width int
}

type Shell struct {
	reviews  *journal.ReviewList
	recs     *journal.RecommendationList
	prompter prompt.Prompter
	saver    Saver
	out      io.Writer
	log      zerolog.Logger
	theme    tuitheme.Theme
	width    int
	mode     Mode
}

func New(reviews *journal.ReviewList, recs *journal.RecommendationList, opts Options) *Shell {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Shell{
		reviews:  reviews,
		recs:     recs,
		prompter: opts.Prompter,
		saver:    opts.Saver,
		out:      out,
		log:      opts.Logger,
		theme:    tuitheme.Default(),
		width:    opts.Width,
		mode:     ReviewMode,
	}
}

func (s *Shell) Mode() Mode { return s.mode }

// Run reads commands from in until exit or end of input. Both end the session
// the same way: the journal is saved before Run returns.
func (s *Shell) Run(ctx context.Context, in *bufio.Reader) error {
	s.println(msgWelcome)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s> ", s.promptLabel())

		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
			s.println("")
			_, exitErr := s.Execute(ctx, "exit")
			return exitErr
		}

		exit, cmdErr := s.Execute(ctx, line)
		if exit {
			return cmdErr
		}
		if cmdErr != nil {
			s.report(cmdErr)
		}
		if errors.Is(err, io.EOF) {
			_, exitErr := s.Execute(ctx, "exit")
			return exitErr
		}
	}
}

// Execute runs a single command line. It reports exit=true once the journal
// has been saved and the session should end.
func (s *Shell) Execute(ctx context.Context, line string) (exit bool, err error) {
	verb, rest := splitCommand(line)
	if verb == "" {
		return false, nil
	}
	args := strings.Fields(rest)
	s.log.Debug().Str("verb", verb).Str("mode", s.mode.String()).Msg("command")

	switch verb {
	case "review", "reco":
		if len(args) != 0 {
			return false, ErrInvalidParameters
		}
		return false, s.switchMode(verb)
	case "display":
		if len(args) != 1 {
			return false, ErrInvalidParameters
		}
		return false, s.display(verb, args[0])
	case "help":
		if len(args) > 1 {
			return false, ErrInvalidParameters
		}
		s.help(rest)
		return false, nil
	case "list":
		if len(args) > 1 {
			return false, ErrInvalidParameters
		}
		return false, s.list(verb, rest)
	case "sort":
		if len(args) != 1 {
			return false, ErrInvalidParameters
		}
		return false, s.sort(verb, args[0])
	case "delete":
		if rest == "" {
			return false, ErrInvalidParameters
		}
		return false, s.delete(rest)
	case "view":
		if rest == "" {
			return false, ErrInvalidParameters
		}
		return false, s.view(verb, rest)
	case "done":
		if rest == "" {
			return false, ErrInvalidParameters
		}
		return false, s.done(ctx, verb, rest)
	case "add", "new":
		return false, s.add(ctx, args)
	case "edit":
		if rest == "" {
			return false, ErrInvalidParameters
		}
		return false, s.edit(ctx, rest)
	case "find":
		if rest == "" {
			return false, ErrInvalidParameters
		}
		return false, s.find(rest)
	case "exit", "bye":
		if len(args) != 0 {
			return false, ErrInvalidParameters
		}
		// A failed save keeps the session open so nothing typed so far is lost.
		if err := s.exit(ctx); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidCommand, verb)
	}
}

func (s *Shell) report(err error) {
	if !isUserError(err) {
		s.log.Error().Err(err).Str("mode", s.mode.String()).Msg("command failed")
	}
	s.println(userMessage(err))
}

func (s *Shell) promptLabel() string {
	switch s.mode {
	case RecommendationMode:
		return "reco"
	default:
		return "review"
	}
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) snapshot() journal.Snapshot {
	return journal.Capture(s.reviews, s.recs)
}

// splitCommand separates the verb from the rest of the line. The rest keeps
// inner spacing so titles with spaces survive.
func splitCommand(line string) (verb, rest string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	verb, rest, _ = strings.Cut(line, " ")
	return strings.ToLower(verb), strings.TrimSpace(rest)
}

func isUserError(err error) bool {
	for _, target := range []error{
		ErrInvalidCommand, ErrInvalidParameters, ErrModeMismatch, prompt.ErrAborted,
		journal.ErrNotFound, journal.ErrDuplicateTitle, journal.ErrInvalidSortType,
		journal.ErrInvalidDisplayType, journal.ErrInvalidEntry,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
