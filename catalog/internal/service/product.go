package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/tropics/poolscape/catalog/internal/otel"
	"github.com/tropics/poolscape/catalog/pkg/response"
	inErrors "github.com/tropics/poolscape/internal/errors"
	"github.com/tropics/poolscape/internal/log"
	"github.com/tropics/poolscape/internal/repository"
)

// FindProducts returns one product page. A non-empty query always wins over
// the category filter; clearing it restores the filtered or full list.
func (s CatalogService) FindProducts(
	c context.Context,
	query string,
	categoryID uuid.UUID,
	page int,
) (response.ProductPage, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProducts")
	defer span.End()

	if page < 1 {
		page = 1
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProducts").
		Str(log.KeyQuery, query).
		Int(log.KeyPage, page).
		Logger()

	var (
		products []repository.Product
		err      error
	)
	switch {
	case query != "":
		logger = logger.With().Str(log.KeyProcess, "searching products").Logger()
		logger.Info().Msg("searching products")
		products, err = s.queries.SearchProducts(c, repository.SearchProductsParams{
			Query:  query,
			Limit:  PageSize,
			Offset: PageOffset(page),
		})
	case categoryID != uuid.Nil:
		logger = logger.With().
			Str(log.KeyProcess, "finding products by category").
			Str(log.KeyCategoryID, categoryID.String()).
			Logger()
		logger.Info().Msg("finding products by category")
		products, err = s.queries.FindProductsByCategoryId(
			c,
			repository.FindProductsByCategoryIdParams{
				CategoryID: categoryID,
				Limit:      PageSize,
				Offset:     PageOffset(page),
			},
		)
	default:
		logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
		logger.Info().Msg("finding products")
		products, err = s.queries.FindProducts(c, repository.FindProductsParams{
			Limit:  PageSize,
			Offset: PageOffset(page),
		})
	}
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.ProductPage{}, err
	}
	logger.Info().Msgf("found %d products", len(products))

	res := make([]response.Product, 0, len(products))
	for _, product := range products {
		res = append(res, product.Response())
	}
	return response.ProductPage{
		Products: res,
		Page:     page,
		HasMore:  HasMore(len(products)),
	}, nil
}

// FindFeaturedProducts falls back to the newest products when nothing is
// flagged featured, so the home strip is never empty.
func (s CatalogService) FindFeaturedProducts(c context.Context) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindFeaturedProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindFeaturedProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding featured products").Logger()
	logger.Info().Msg("finding featured products")
	products, err := s.queries.FindFeaturedProducts(c, 10)
	if err != nil {
		err = fmt.Errorf("failed finding featured products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d featured products", len(products))

	if len(products) == 0 {
		logger = logger.With().Str(log.KeyProcess, "falling back to newest products").Logger()
		logger.Info().Msg("no featured products, falling back to newest products")
		products, err = s.queries.FindProducts(c, repository.FindProductsParams{
			Limit:  10,
			Offset: 0,
		})
		if err != nil {
			err = fmt.Errorf("failed finding newest products with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		logger.Info().Msgf("found %d newest products", len(products))
	}

	res := make([]response.Product, 0, len(products))
	for _, product := range products {
		res = append(res, product.Response())
	}
	return res, nil
}

func (s CatalogService) FindProductDetail(
	c context.Context,
	productID uuid.UUID,
) (response.ProductDetail, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProductDetail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProductDetail").
		Str(log.KeyProductID, productID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	product, err := s.queries.FindProductById(c, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed finding product by id=%s with error=%w",
				productID,
				inErrors.ErrProductNotFound,
			)
		} else {
			err = fmt.Errorf("failed finding product by id=%s with error=%w", productID, err)
		}
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.ProductDetail{}, err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "finding related products").Logger()
	logger.Info().Msg("finding related products")
	related, err := s.queries.FindRelatedProducts(c, repository.FindRelatedProductsParams{
		CategoryID: product.CategoryID,
		ID:         product.ID,
		Limit:      4,
	})
	if err != nil {
		err = fmt.Errorf("failed finding related products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.ProductDetail{}, err
	}
	logger.Info().Msgf("found %d related products", len(related))

	logger = logger.With().Str(log.KeyProcess, "finding reviews").Logger()
	logger.Info().Msg("finding reviews")
	c = logger.WithContext(c)
	reviews, err := s.FindReviews(c, productID)
	if err != nil {
		err = fmt.Errorf("failed finding reviews with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.ProductDetail{}, err
	}
	logger.Info().Msgf("found %d reviews", len(reviews))

	relatedRes := make([]response.Product, 0, len(related))
	for _, p := range related {
		relatedRes = append(relatedRes, p.Response())
	}
	return response.ProductDetail{
		Product: product.Response(),
		Related: relatedRes,
		Reviews: reviews,
	}, nil
}
