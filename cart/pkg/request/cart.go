package request

import (
	"github.com/google/uuid"
)

type AddCartItem struct {
	ProductId uuid.UUID `validate:"required,uuid"  json:"product_id"`
	Quantity  int32     `validate:"required,gte=1" json:"quantity"`
}

type UpdateCartItem struct {
	Quantity int32 `json:"quantity"`
}

type CheckoutCart struct {
	PaymentMethod string `validate:"required,oneof=pickup gcash" json:"payment_method"`
}
