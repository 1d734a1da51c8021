package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasMore(t *testing.T) {
	assert.False(t, HasMore(0))
	assert.False(t, HasMore(PageSize-1))
	assert.True(t, HasMore(PageSize))
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, int32(0), PageOffset(0))
	assert.Equal(t, int32(0), PageOffset(1))
	assert.Equal(t, int32(PageSize), PageOffset(2))
	assert.Equal(t, int32(4*PageSize), PageOffset(5))
}

func TestResolveImageURL(t *testing.T) {
	base := "https://storage.example.com/public/categories"

	assert.Equal(t, "", ResolveImageURL(base, ""))
	assert.Equal(
		t,
		"https://cdn.example.com/pool.jpg",
		ResolveImageURL(base, "https://cdn.example.com/pool.jpg"),
	)
	assert.Equal(
		t,
		"https://storage.example.com/public/categories/pool.jpg",
		ResolveImageURL(base, "pool.jpg"),
	)
	assert.Equal(
		t,
		"https://storage.example.com/public/categories/pool.jpg",
		ResolveImageURL(base+"/", "/pool.jpg"),
	)
}

func TestSampleReviews(t *testing.T) {
	productID := uuid.New()

	reviews := SampleReviews(productID)

	assert.NotEmpty(t, reviews)
	for _, review := range reviews {
		assert.Equal(t, productID, review.ProductID)
		assert.GreaterOrEqual(t, review.Rating, int32(1))
		assert.LessOrEqual(t, review.Rating, int32(5))
		assert.NotEmpty(t, review.Comment)
		assert.NotEmpty(t, review.UserName)
	}
}
