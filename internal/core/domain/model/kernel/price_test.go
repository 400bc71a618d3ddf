package kernel_test

import (
	"testing"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create price from non-negative amount", func(t *testing.T) {
		price, err := kernel.NewPrice(decimal.NewFromFloat(5.00))

		require.NoError(t, err)
		require.NoError(t, price.Validate())
		assert.Equal(t, "5.00", price.String())
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		price, err := kernel.NewPrice(decimal.Zero)

		require.NoError(t, err)
		require.NoError(t, price.Validate())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPriceFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		price, err := kernel.PriceFromString("3.50")

		require.NoError(t, err)
		assert.Equal(t, "3.50", price.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.PriceFromString("three fifty")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative strings", func(t *testing.T) {
		_, err := kernel.PriceFromString("-1.00")

		require.Error(t, err)
	})
}

func TestPrice_Arithmetic(t *testing.T) {
	t.Run("should multiply by quantity exactly", func(t *testing.T) {
		price, _ := kernel.PriceFromString("5.00")

		subtotal := price.MulQuantity(2)

		assert.Equal(t, "10.00", subtotal.String())
	})

	t.Run("should add without drift", func(t *testing.T) {
		a, _ := kernel.PriceFromString("10.00")
		b, _ := kernel.PriceFromString("3.50")

		total := a.Add(b)

		expected, _ := kernel.PriceFromString("13.50")
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("zero price is additive identity", func(t *testing.T) {
		a, _ := kernel.PriceFromString("7.25")

		total := kernel.ZeroPrice().Add(a)

		assert.True(t, total.IsEqual(a))
	})

	t.Run("equality ignores scale", func(t *testing.T) {
		a, _ := kernel.PriceFromString("13.5")
		b, _ := kernel.PriceFromString("13.50")

		assert.True(t, a.IsEqual(b))
	})
}

func TestPrice_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var price kernel.Price

		err := price.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}
