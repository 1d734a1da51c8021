package response

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Contact       string    `json:"contact"`
	Location      string    `json:"location"`
	Service       string    `json:"service"`
	Date          string    `json:"date"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

type UnavailableDates struct {
	Service string   `json:"service"`
	Dates   []string `json:"dates"`
}
