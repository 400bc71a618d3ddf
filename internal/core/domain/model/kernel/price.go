package kernel

import (
	"fmt"

	"mealdash/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed indicates a zero-value Price that was not created through
// one of the constructor functions.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"Price must be created via NewPrice, PriceFromString, or ZeroPrice")

// Price is a value object for money amounts. It wraps decimal.Decimal so that
// price arithmetic is exact; an amount frozen at checkout never drifts when
// summed or multiplied. Price is non-negative and immutable.
type Price struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewPrice creates a Price from a decimal amount.
// Returns an error if the amount is negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount))
	}
	return Price{amount: amount, isConstructed: true}, nil
}

// PriceFromString parses a Price from its decimal string form, e.g. "13.50".
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// ZeroPrice returns a valid Price of zero, the identity for Add.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero, isConstructed: true}
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount), isConstructed: true}
}

// MulQuantity returns the price multiplied by an item quantity.
func (p Price) MulQuantity(quantity int) Price {
	return Price{amount: p.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

// IsEqual reports whether two prices hold the same amount.
// Scale is ignored: 13.5 equals 13.50.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount for persistence mapping.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// String returns the decimal string form with two decimal places.
func (p Price) String() string {
	return p.amount.StringFixed(2)
}

// Validate returns ErrPriceIsNotConstructed for a zero-value Price.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
