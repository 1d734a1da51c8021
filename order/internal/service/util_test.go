package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tropics/poolscape/internal/repository"
	"github.com/tropics/poolscape/order/pkg/response"
)

func TestPaymentFromOrder(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	order := repository.Order{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Status:        "completed",
		PaymentMethod: "gcash",
		Total:         pgtype.Numeric{Int: decimal.NewFromInt(150000).Coefficient(), Exp: -2, Valid: true},
		CreatedAt:     pgtype.Timestamptz{Time: created, Valid: true},
	}

	payment := PaymentFromOrder(order)

	assert.Equal(t, order.ID.String(), payment.ID)
	assert.Equal(t, PaymentTypeOrder, payment.Type)
	assert.Equal(t, "Product Order", payment.Description)
	assert.Equal(t, "gcash", payment.Method)
	assert.Equal(t, "completed", payment.Status)
	assert.True(t, decimal.NewFromInt(1500).Equal(payment.Amount))
	assert.Equal(t, created, payment.Date)
}

func TestPaymentFromBookingDefaultsMethod(t *testing.T) {
	booked := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	booking := repository.Booking{
		ID:        uuid.New(),
		Service:   "Pool Cleaning",
		Status:    "approved",
		Date:      pgtype.Date{Time: booked, Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	payment := PaymentFromBooking(booking, decimal.NewFromInt(2500))

	assert.Equal(t, PaymentTypeBooking, payment.Type)
	assert.Equal(t, "Service Booking: Pool Cleaning", payment.Description)
	assert.Equal(t, DefaultBookingPaymentMethod, payment.Method)
	assert.True(t, decimal.NewFromInt(2500).Equal(payment.Amount))
	assert.Equal(t, booked, payment.Date, "payment should carry the booked date")
}

func TestPaymentFromBookingKeepsRecordedMethod(t *testing.T) {
	booking := repository.Booking{
		ID:            uuid.New(),
		Service:       "Landscaping",
		Status:        "completed",
		PaymentMethod: pgtype.Text{String: "gcash", Valid: true},
		CreatedAt:     pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	payment := PaymentFromBooking(booking, decimal.Zero)

	assert.Equal(t, "gcash", payment.Method)
}

func TestSortPaymentsNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	payments := []response.Payment{
		{ID: "a", Date: base},
		{ID: "b", Date: base.AddDate(0, 0, 5)},
		{ID: "c", Date: base.AddDate(0, 0, 2)},
	}

	SortPaymentsNewestFirst(payments)

	assert.Equal(t, "b", payments[0].ID)
	assert.Equal(t, "c", payments[1].ID)
	assert.Equal(t, "a", payments[2].ID)
}
