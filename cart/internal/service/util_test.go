package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tropics/poolscape/cart/pkg/response"
	"github.com/tropics/poolscape/internal/constants"
)

func TestComputeTotalsEmpty(t *testing.T) {
	cart := ComputeTotals([]response.CartItem{})

	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())
	assert.True(t, cart.Shipping.IsZero())
	assert.True(t, cart.Tax.IsZero())
	assert.True(t, cart.Total.IsZero())
}

func TestComputeTotalsSingleItem(t *testing.T) {
	items := []response.CartItem{
		{Price: decimal.NewFromFloat(1499.50), Quantity: 2},
	}

	cart := ComputeTotals(items)

	assert.True(t, decimal.NewFromFloat(2999).Equal(cart.Subtotal))
	assert.True(t, cart.Total.Equal(cart.Subtotal))
}

func TestComputeTotalsMultipleItems(t *testing.T) {
	items := []response.CartItem{
		{Price: decimal.NewFromInt(250), Quantity: 3},
		{Price: decimal.NewFromFloat(99.99), Quantity: 1},
		{Price: decimal.Zero, Quantity: 5},
	}

	cart := ComputeTotals(items)

	assert.True(t, decimal.NewFromFloat(849.99).Equal(cart.Subtotal))
	assert.True(t, cart.Shipping.IsZero())
	assert.True(t, cart.Tax.IsZero())
	assert.True(t, decimal.NewFromFloat(849.99).Equal(cart.Total))
}

func TestPaymentInstructionsGcash(t *testing.T) {
	orderID := uuid.New()

	instructions := PaymentInstructions(constants.PaymentMethodGcash, orderID)

	assert.Len(t, instructions, 3)
	assert.Contains(t, instructions[0], constants.GcashRecipientNumber)
	assert.Contains(t, instructions[1], orderID.String())
}

func TestPaymentInstructionsPickup(t *testing.T) {
	instructions := PaymentInstructions(constants.PaymentMethodPickup, uuid.New())

	assert.Len(t, instructions, 2)
	assert.Contains(t, instructions[0], "cash")
}

func TestDecimalToNumericRoundTrip(t *testing.T) {
	d := decimal.NewFromFloat(1234.56)

	n := decimalToNumeric(d)

	assert.True(t, n.Valid)
	assert.Equal(t, d.Coefficient().Int64(), n.Int.Int64())
	assert.Equal(t, d.Exponent(), n.Exp)
}
