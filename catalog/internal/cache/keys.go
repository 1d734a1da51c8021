package cache

import "time"

const (
	KeyHome             = "catalog:home"
	KeyReviewsByProduct = "catalog:reviews:%s"

	// Catalog writes happen out of band, so the home aggregate expires
	// instead of being invalidated.
	HomeTTL = 5 * time.Minute
)
