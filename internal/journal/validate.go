package journal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateReview(in ReviewInput, maxRating int) error {
	if err := validate.Struct(in); err != nil {
		return formatValidationErrors(err)
	}
	if err := validate.Var(in.Rating, fmt.Sprintf("min=0,max=%d", maxRating)); err != nil {
		return fmt.Errorf("%w: rating must be between 0 and %d", ErrInvalidEntry, maxRating)
	}
	return nil
}

func validateRecommendation(in RecommendationInput) error {
	if err := validate.Struct(in); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors folds validator output into a single ErrInvalidEntry.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation: %s", field, e.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidEntry, strings.Join(msgs, ", "))
}
