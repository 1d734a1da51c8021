package service

import (
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tropics/poolscape/internal/repository"
	"github.com/tropics/poolscape/order/pkg/response"
)

const (
	PaymentTypeOrder   = "order"
	PaymentTypeBooking = "booking"

	// Bookings carry no payment method of their own; they are settled in
	// cash on site unless the admin recorded otherwise.
	DefaultBookingPaymentMethod = "Cash"
)

func PaymentFromOrder(order repository.Order) response.Payment {
	return response.Payment{
		ID:          order.ID.String(),
		Type:        PaymentTypeOrder,
		Description: "Product Order",
		Amount:      numericToDecimal(order.Total),
		Method:      order.PaymentMethod,
		Status:      order.Status,
		Date:        order.CreatedAt.Time,
	}
}

// PaymentFromBooking is dated by the booked service date, not the row's
// creation time.
func PaymentFromBooking(booking repository.Booking, amount decimal.Decimal) response.Payment {
	method := booking.PaymentMethod.String
	if method == "" {
		method = DefaultBookingPaymentMethod
	}
	return response.Payment{
		ID:          booking.ID.String(),
		Type:        PaymentTypeBooking,
		Description: fmt.Sprintf("Service Booking: %s", booking.Service),
		Amount:      amount,
		Method:      method,
		Status:      booking.Status,
		Date:        booking.Date.Time,
	}
}

func SortPaymentsNewestFirst(payments []response.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
