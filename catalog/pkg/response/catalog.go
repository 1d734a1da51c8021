package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageUrl    string          `json:"image_url"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Description string          `json:"description"`
	IsFeatured  bool            `json:"is_featured"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductPage is one page of the home feed; HasMore reports whether a full
// page was returned, so another fetch may yield more rows.
type ProductPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	HasMore  bool      `json:"has_more"`
}

type ProductDetail struct {
	Product Product   `json:"product"`
	Related []Product `json:"related"`
	Reviews []Review  `json:"reviews"`
}

type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageUrl string    `json:"image_url"`
}

type Service struct {
	ID          int32           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
}

type Banner struct {
	ID       uuid.UUID `json:"id"`
	ImageUrl string    `json:"image_url"`
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageUrl    string    `json:"image_url"`
}

type Home struct {
	Banners    []Banner   `json:"banners"`
	Categories []Category `json:"categories"`
	Services   []Service  `json:"services"`
	Projects   []Project  `json:"projects"`
}

type Contact struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	FacebookURL string `json:"facebook_url"`
}
