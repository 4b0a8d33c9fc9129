package journal

import "errors"

var (
	// ErrNotFound is returned when no entry matches a title.
	ErrNotFound = errors.New("entry not found")
	// ErrDuplicateTitle is returned when a title is already taken within a list.
	ErrDuplicateTitle     = errors.New("title already exists")
	ErrInvalidSortType    = errors.New("invalid sort type")
	ErrInvalidDisplayType = errors.New("invalid display type")
	// ErrInvalidEntry is returned when entry input fails validation.
	ErrInvalidEntry = errors.New("invalid entry")
)
