package domain

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic.
// It uses big.Rat internally to avoid floating-point precision issues and is
// immutable; all operations return new instances. Listings persist Money as
// numerator/denominator plus a lossy float used only for query ordering.
type Money struct {
	amount *big.Rat
}

// NewMoney creates Money from numerator and denominator.
// For example: NewMoney(1999, 100) represents $19.99.
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{amount: big.NewRat(numerator, denominator)}
}

// NewMoneyFromDecimal creates Money from a decimal string such as "19.99".
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	return &Money{amount: rat}, nil
}

// Add returns a new Money that is the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: new(big.Rat).Add(m.amount, other.amount)}
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// IsNegative reports whether the amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// Equals reports whether m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Numerator returns the numerator of the internal rational representation.
// Used for database persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Num().Int64()
}

// Denominator returns the denominator of the internal rational representation.
// Used for database persistence.
func (m *Money) Denominator() int64 {
	return m.amount.Denom().Int64()
}

// Float64 returns the amount as a float64. This loses precision and exists
// only for the query-ordering price field and display.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// FloatString returns a decimal string with the given precision.
func (m *Money) FloatString(prec int) string {
	return m.amount.FloatString(prec)
}

// String returns the amount formatted with two decimal places.
func (m *Money) String() string {
	return m.amount.FloatString(2)
}
