package kernel

import (
	"fmt"
	"math"

	"pizzeria/internal/pkg/errs"
)

const centsPerUnit = 100

// Money is a non-negative amount in cents. Prices, promotion thresholds,
// discounts and charged totals are all expressed as Money so that
// the checkout arithmetic never accumulates floating point error.
//
// The zero value is $0.00 and is valid.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromFloat(12.00)
//	fmt.Println(price)         // $12.00
//	fmt.Println(price.Units()) // 12
type Money struct {
	cents int64
}

// NewMoney creates Money from a cent amount.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount in cents", cents, 0, int64(math.MaxInt64))
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates Money from a decimal currency amount, rounding to the nearest cent.
// Seed files and menu prices are written this way.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	return NewMoney(int64(math.Round(amount * centsPerUnit)))
}

// MustMoney is NewMoneyFromFloat for literals known to be valid.
func MustMoney(amount float64) Money {
	m, err := NewMoneyFromFloat(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Units returns the whole currency part, truncating cents.
// Loyalty accrual is based on this value.
func (m Money) Units() int64 {
	return m.cents / centsPerUnit
}

// Float returns the amount as a decimal number for presentation.
func (m Money) Float() float64 {
	return float64(m.cents) / centsPerUnit
}

// IsZero is true for $0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m - other, floored at zero: a discount never produces a negative charge.
func (m Money) Sub(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

// Percent returns pct percent of m, rounded half away from zero to the cent.
func (m Money) Percent(pct int64) Money {
	return Money{cents: int64(math.Round(float64(m.cents*pct) / 100))}
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// String renders the amount as "$12.00".
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/centsPerUnit, m.cents%centsPerUnit)
}
