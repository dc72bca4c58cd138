// Package validation checks the input preconditions shared by the
// registration and ride services before any state is mutated.
package validation

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/gocomet/ride-matching/pkg/errors"
)

var validate = validator.New()

// ID requires a non-blank identifier
func ID(id string) error {
	if err := validate.Var(strings.TrimSpace(id), "required"); err != nil {
		return apperrors.Validation("invalid ID: ID must be a non-empty string", err)
	}
	return nil
}

// Coordinates requires a finite, non-negative x and y
func Coordinates(x, y float64) error {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return apperrors.Validation("invalid coordinates: X and Y must be finite numbers", nil)
	}
	if err := validate.Var(x, "gte=0"); err != nil {
		return apperrors.Validation("invalid coordinates: X and Y must be non-negative", err)
	}
	if err := validate.Var(y, "gte=0"); err != nil {
		return apperrors.Validation("invalid coordinates: X and Y must be non-negative", err)
	}
	return nil
}

// Duration requires a finite, non-negative elapsed time
func Duration(t float64) error {
	if math.IsInf(t, 0) {
		return apperrors.Validation("invalid time taken: must be a finite number", nil)
	}
	if err := validate.Var(t, "gte=0"); err != nil {
		return apperrors.Validation("invalid time taken: must be non-negative", err)
	}
	return nil
}
