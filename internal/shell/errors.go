package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glabrego/connoisseur/internal/journal"
	"github.com/glabrego/connoisseur/internal/prompt"
)

var (
	// ErrInvalidCommand is returned for verbs the shell does not know.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidParameters is returned when a known verb gets the wrong number of arguments.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrModeMismatch is returned when a known verb is used in the wrong mode.
	ErrModeMismatch = errors.New("command not available in this mode")
	// ErrSaveFailed is returned by exit when the journal could not be stored.
	ErrSaveFailed = errors.New("could not save journal")
)

func modeMismatch(verb string, mode Mode) error {
	return fmt.Errorf("%w: %q does not exist in %s mode", ErrModeMismatch, verb, mode)
}

func unknownMode(mode Mode) error {
	return fmt.Errorf("unknown mode %s", mode)
}

// userMessage turns an error from any layer into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCommand):
		return msgInvalidCommand
	case errors.Is(err, ErrInvalidParameters):
		return msgInvalidParameters
	case errors.Is(err, ErrModeMismatch):
		return "Sorry, " + detail(err, ErrModeMismatch) + "."
	case errors.Is(err, ErrSaveFailed):
		return fmt.Sprintf(msgSaveFailed, detail(err, ErrSaveFailed))
	case errors.Is(err, prompt.ErrAborted):
		return msgAborted
	case errors.Is(err, journal.ErrNotFound):
		return "Sorry, there is " + detail(err, journal.ErrNotFound) + "."
	case errors.Is(err, journal.ErrDuplicateTitle):
		return "Sorry, that title is already taken (" + detail(err, journal.ErrDuplicateTitle) + ")."
	case errors.Is(err, journal.ErrInvalidSortType):
		return msgInvalidSortType
	case errors.Is(err, journal.ErrInvalidDisplayType):
		return msgInvalidDisplayType
	case errors.Is(err, journal.ErrInvalidEntry):
		return "Sorry, that entry is not valid: " + detail(err, journal.ErrInvalidEntry) + "."
	default:
		return "Something went wrong: " + err.Error()
	}
}

// detail strips the sentinel prefix from a wrapped error message.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
