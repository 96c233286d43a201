package countdown

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidYears is returned for NaN, infinite, negative or oversized year counts
var ErrInvalidYears = errors.New("years must be a finite number between 0 and 1000")

const (
	// MaxYears bounds the input so calendar arithmetic stays inside time.Time's range
	MaxYears = 1000

	// SecondsPerYear is the average year length used for the fractional part
	SecondsPerYear = 365.25 * 24 * 60 * 60
)

// TargetFor returns the absolute time years after now.
// Whole years use calendar arithmetic; the fractional year is converted with
// SecondsPerYear and truncated to whole seconds.
func TargetFor(now time.Time, years float64) (time.Time, error) {
	if err := ValidateYears(years); err != nil {
		return time.Time{}, err
	}

	whole := math.Floor(years)
	fracSeconds := (years - whole) * SecondsPerYear

	target := now.AddDate(int(whole), 0, 0)
	return target.Add(time.Duration(fracSeconds) * time.Second), nil
}

// ValidateYears reports whether years is acceptable input for Start
func ValidateYears(years float64) error {
	if math.IsNaN(years) || math.IsInf(years, 0) || years < 0 || years > MaxYears {
		return fmt.Errorf("%w: got %v", ErrInvalidYears, years)
	}
	return nil
}
