package kernel

import "pizzeria/internal/pkg/errs"

const (
	// MinRating is the lowest score a customer can give.
	MinRating Rating = 1
	// MaxRating is the highest score a customer can give.
	MaxRating Rating = 5
)

// Rating is a customer's 1..5 score for a delivered order's product.
// The zero value means "not rated".
type Rating int

// NewRating validates a score entered by the customer.
func NewRating(v int) (Rating, error) {
	r := Rating(v)
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r, nil
}

// Validate checks the score is within [MinRating, MaxRating].
func (r Rating) Validate() error {
	if r < MinRating || r > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", int(r), int(MinRating), int(MaxRating))
	}
	return nil
}

// IsSet is false for the zero value.
func (r Rating) IsSet() bool {
	return r != 0
}

// Float returns the score for running-average arithmetic.
func (r Rating) Float() float64 {
	return float64(r)
}
