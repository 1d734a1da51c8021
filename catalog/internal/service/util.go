package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tropics/poolscape/catalog/pkg/response"
)

// PageSize is the fixed product page size of the home feed.
const PageSize = 12

// HasMore reports whether another page may exist. A short page stops the
// feed; only a full page schedules a further fetch.
func HasMore(fetched int) bool {
	return fetched == PageSize
}

func PageOffset(page int) int32 {
	if page < 1 {
		page = 1
	}
	return int32((page - 1) * PageSize)
}

// ResolveImageURL turns a stored object key into a public URL. Absolute
// URLs are passed through untouched.
func ResolveImageURL(publicBaseURL, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimSuffix(publicBaseURL, "/") + "/" + strings.TrimPrefix(ref, "/")
}

// SampleReviews stands in for review rows when the reviews table has not
// been provisioned.
func SampleReviews(productID uuid.UUID) []response.Review {
	now := time.Now()
	return []response.Review{
		{
			ID:        uuid.New(),
			ProductID: productID,
			UserName:  "John D.",
			Rating:    5,
			Comment:   "Excellent product! Exactly as described and arrived quickly.",
			CreatedAt: now.AddDate(0, 0, -7),
		},
		{
			ID:        uuid.New(),
			ProductID: productID,
			UserName:  "Maria S.",
			Rating:    4,
			Comment:   "Good quality, works well for our pool.",
			CreatedAt: now.AddDate(0, 0, -14),
		},
		{
			ID:        uuid.New(),
			ProductID: productID,
			UserName:  "Carlo R.",
			Rating:    5,
			Comment:   "Great value for the price. Will order again.",
			CreatedAt: now.AddDate(0, 0, -30),
		},
	}
}
