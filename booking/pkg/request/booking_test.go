package request

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func validBooking() Booking {
	return Booking{
		Name:     "Juan Dela Cruz",
		Email:    "juan.delacruz@example.com",
		Contact:  "09157362648",
		Location: "Davao City",
		Service:  "Pool Cleaning",
		Date:     "2026-09-15",
		Message:  "Morning preferred.",
	}
}

func TestBookingRequestValid(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	assert.NoError(t, validate.Struct(validBooking()))
}

func TestBookingRequestMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Booking)
		field  string
	}{
		{
			name:   "missing name should fail naming the field",
			mutate: func(b *Booking) { b.Name = "" },
			field:  "Name",
		},
		{
			name:   "missing contact should fail naming the field",
			mutate: func(b *Booking) { b.Contact = "" },
			field:  "Contact",
		},
		{
			name:   "missing location should fail naming the field",
			mutate: func(b *Booking) { b.Location = "" },
			field:  "Location",
		},
		{
			name:   "missing service should fail naming the field",
			mutate: func(b *Booking) { b.Service = "" },
			field:  "Service",
		},
		{
			name:   "missing date should fail naming the field",
			mutate: func(b *Booking) { b.Date = "" },
			field:  "Date",
		},
		{
			name:   "malformed date should fail naming the field",
			mutate: func(b *Booking) { b.Date = "15-09-2026" },
			field:  "Date",
		},
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(&booking)

			err := validate.Struct(booking)

			assert.Error(t, err)
			validationErrs := validator.ValidationErrors{}
			assert.True(t, errors.As(err, &validationErrs))
			assert.Len(t, validationErrs, 1)
			assert.Equal(t, tt.field, validationErrs[0].Field())
		})
	}
}

func TestBookingRequestOptionalFields(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	booking := validBooking()
	booking.Email = ""
	booking.Message = ""

	assert.NoError(t, validate.Struct(booking), "email and message are optional")
}
