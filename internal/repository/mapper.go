package repository

import (
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	bookingResponse "github.com/tropics/poolscape/booking/pkg/response"
	cartResponse "github.com/tropics/poolscape/cart/pkg/response"
	catalogResponse "github.com/tropics/poolscape/catalog/pkg/response"
	"github.com/tropics/poolscape/internal/constants"
	orderResponse "github.com/tropics/poolscape/order/pkg/response"
)

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func (p Product) Response() catalogResponse.Product {
	return catalogResponse.Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       numericToDecimal(p.Price),
		ImageUrl:    p.ImageUrl.String,
		CategoryID:  p.CategoryID,
		Description: p.Description.String,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt.Time,
	}
}

func (s Service) Response() catalogResponse.Service {
	return catalogResponse.Service{
		ID:          s.ID,
		Name:        s.Name,
		Price:       numericToDecimal(s.Price),
		Category:    s.Category.String,
		IsAvailable: s.IsAvailable,
	}
}

func (r Review) Response() catalogResponse.Review {
	return catalogResponse.Review{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Time,
	}
}

func (b Booking) Response() bookingResponse.Booking {
	return bookingResponse.Booking{
		ID:            b.ID,
		UserID:        b.UserID,
		Name:          b.Name,
		Email:         b.Email,
		Contact:       b.Contact,
		Location:      b.Location,
		Service:       b.Service,
		Date:          b.Date.Time.Format("2006-01-02"),
		Message:       b.Message.String,
		Status:        b.Status,
		PaymentMethod: b.PaymentMethod.String,
		CreatedAt:     b.CreatedAt.Time,
	}
}

// Response maps a cart row to its view, substituting placeholders when the
// joined product row is gone.
func (f FindCartItemsWithProductRow) Response() cartResponse.CartItem {
	name := f.ProductName.String
	if !f.ProductName.Valid {
		name = constants.UnknownProductName
	}
	imageUrl := f.ProductImageUrl.String
	if imageUrl == "" {
		imageUrl = constants.FallbackProductImageURL
	}
	return cartResponse.CartItem{
		ID:          f.ID,
		ProductID:   f.ProductID,
		Name:        name,
		Price:       numericToDecimal(f.ProductPrice),
		Quantity:    f.Quantity,
		ImageUrl:    imageUrl,
		Description: f.ProductDescription.String,
		AddedAt:     f.AddedAt.Time,
	}
}

func (f FindOrdersWithItemsRow) Response() (orderResponse.Order, error) {
	orderItems := []orderResponse.OrderItem{}
	err := json.Unmarshal(f.OrderItems, &orderItems)
	if err != nil {
		return orderResponse.Order{}, err
	}
	return orderResponse.Order{
		ID:            f.ID,
		UserId:        f.UserID,
		Status:        f.Status,
		PaymentMethod: f.PaymentMethod,
		Total:         numericToDecimal(f.Total),
		OrderItems:    orderItems,
		CreatedAt:     f.CreatedAt.Time,
	}, nil
}

func (f FindOrderByIdRow) Response() (orderResponse.Order, error) {
	return FindOrdersWithItemsRow(f).Response()
}
