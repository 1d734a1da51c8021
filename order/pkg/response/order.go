package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID              uuid.UUID       `json:"id"`
	OrderId         uuid.UUID       `json:"order_id"`
	ProductId       uuid.UUID       `json:"product_id"`
	Quantity        int32           `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	ProductName     string          `json:"product_name"`
	ProductImageUrl string          `json:"product_image_url"`
}

type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserId        uuid.UUID       `json:"user_id"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Total         decimal.Decimal `json:"total"`
	OrderItems    []OrderItem     `json:"order_items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Payment is one row of the derived payment history: a completed or approved
// order or booking, rendered as a settled transaction.
type Payment struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	Date        time.Time       `json:"date"`
}
