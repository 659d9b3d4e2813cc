package model

import (
	"fmt"
	"strings"
)

// Money is an amount in minor units (cents) together with an
// upper-cased currency code. Storing cents keeps arithmetic exact
// and matches how ticket prices travel through the API.
type Money struct {
	Cents    int64
	Currency string
}

// NewMoney validates and normalizes a monetary amount. The currency
// is trimmed and upper-cased; negative amounts are rejected.
func NewMoney(cents int64, currency string) (Money, error) {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		return Money{}, fmt.Errorf("%w: currency cannot be blank", ErrValidation)
	}
	if cents < 0 {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	return Money{Cents: cents, Currency: cur}, nil
}

// PLN is a convenience constructor for the default currency.
func PLN(cents int64) Money {
	return Money{Cents: cents, Currency: "PLN"}
}

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: currency mismatch: %s vs %s", ErrValidation, m.Currency, other.Currency)
	}
	return Money{Cents: m.Cents + other.Cents, Currency: m.Currency}, nil
}

// Times multiplies the amount by a non-negative factor.
func (m Money) Times(multiplier int) (Money, error) {
	if multiplier < 0 {
		return Money{}, fmt.Errorf("%w: multiplier cannot be negative", ErrValidation)
	}
	return Money{Cents: m.Cents * int64(multiplier), Currency: m.Currency}, nil
}

// String formats the amount with two decimal places, e.g. "25.00 PLN".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.Cents/100, m.Cents%100, m.Currency)
}
