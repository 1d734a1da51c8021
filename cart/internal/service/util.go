package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tropics/poolscape/cart/pkg/response"
	"github.com/tropics/poolscape/internal/constants"
)

// ComputeTotals sums the cart line items. Orders are picked up or paid
// manually so shipping and tax stay zero and the total equals the subtotal.
func ComputeTotals(items []response.CartItem) response.Cart {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return response.Cart{
		Items:    items,
		Subtotal: subtotal,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    subtotal,
	}
}

// PaymentInstructions are shown once after checkout. Payments are settled
// manually, either in cash at pickup or by a GCash transfer referenced with
// the order id.
func PaymentInstructions(paymentMethod string, orderID uuid.UUID) []string {
	if paymentMethod == constants.PaymentMethodGcash {
		return []string{
			fmt.Sprintf("Send the total amount via GCash to %s.", constants.GcashRecipientNumber),
			fmt.Sprintf("Use order %s as the payment reference.", orderID),
			"Your order will be processed once payment is confirmed.",
		}
	}
	return []string{
		"Pay in cash when you pick up your order.",
		"We will contact you when your order is ready for pickup.",
	}
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		Int:              d.Coefficient(),
		NaN:              false,
		Valid:            true,
	}
}
