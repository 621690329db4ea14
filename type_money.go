package hedgefolio

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display-only USD amount. The calculators keep their math in
// float64 because several results are IEEE sentinels (+Inf health factor,
// +Inf loop leverage) that a decimal type cannot carry; Money exists so
// that renderers format dollar figures consistently.
type Money struct {
	value decimal.Decimal // as major unit value
}

// USD wraps a float dollar amount into a Money. Non-finite inputs
// collapse to zero, callers are expected to special-case them before
// formatting.
func USD(amount float64) Money {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		amount = 0
	}
	return Money{value: decimal.NewFromFloat(amount)}
}

// currency returns the USD currency descriptor.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.USD).Currency()
}

// String returns the formatted dollar amount, e.g. "$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }

func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the amount with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
