package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/tropics/poolscape/catalog/internal/cache"
	"github.com/tropics/poolscape/catalog/internal/otel"
	"github.com/tropics/poolscape/catalog/pkg/request"
	"github.com/tropics/poolscape/catalog/pkg/response"
	inErrors "github.com/tropics/poolscape/internal/errors"
	"github.com/tropics/poolscape/internal/log"
	"github.com/tropics/poolscape/internal/repository"
)

// FindReviews reads review rows when the reviews table is provisioned.
// Otherwise it serves sample reviews plus any reviews written to the cache
// while the table was absent.
func (s CatalogService) FindReviews(
	c context.Context,
	productID uuid.UUID,
) ([]response.Review, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindReviews")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindReviews").
		Str(log.KeyProductID, productID.String()).
		Logger()

	if !s.hasReviews {
		logger = logger.With().Str(log.KeyProcess, "finding local reviews").Logger()
		logger.Info().Msg("reviews table absent, finding local reviews")
		reviews := SampleReviews(productID)

		cacheKey := fmt.Sprintf(cache.KeyReviewsByProduct, productID.String())
		entries, err := s.cache.LRange(c, cacheKey, 0, -1).Result()
		if err != nil {
			err = fmt.Errorf("failed finding local reviews with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return reviews, nil
		}
		for _, entry := range entries {
			review := response.Review{}
			if err := json.Unmarshal([]byte(entry), &review); err != nil {
				err = fmt.Errorf("failed unmarshaling local review with error=%w", err)
				inErrors.HandleError(err, span)
				logger.Error().Err(err).Msg(err.Error())
				continue
			}
			reviews = append(reviews, review)
		}
		logger.Info().Msgf("found %d reviews", len(reviews))
		return reviews, nil
	}

	logger = logger.With().Str(log.KeyProcess, "finding reviews").Logger()
	logger.Info().Msg("finding reviews")
	rows, err := s.queries.FindReviewsByProductId(c, productID)
	if err != nil {
		err = fmt.Errorf("failed finding reviews with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d reviews", len(rows))

	reviews := make([]response.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.Response())
	}
	return reviews, nil
}

func (s CatalogService) CreateReview(
	c context.Context,
	productID uuid.UUID,
	param request.Review,
	userID uuid.UUID,
) (response.Review, error) {
	c, span := otel.Tracer.Start(c, "CatalogService CreateReview")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService CreateReview").
		Str(log.KeyProductID, productID.String()).
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	if _, err := s.queries.FindProductById(c, productID); err != nil {
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
		return response.Review{}, err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "finding user").Logger()
	logger.Info().Msg("finding user")
	user, err := s.queries.FindUserById(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding user by id=%s with error=%w", userID, err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Review{}, err
	}
	logger.Info().Msg("found user")

	if !s.hasReviews {
		logger = logger.With().Str(log.KeyProcess, "inserting local review").Logger()
		logger.Info().Msg("reviews table absent, inserting local review")
		review := response.Review{
			ID:        uuid.New(),
			ProductID: productID,
			UserName:  user.Username,
			Rating:    param.Rating,
			Comment:   param.Comment,
			CreatedAt: time.Now(),
		}
		encoded, err := json.Marshal(review)
		if err != nil {
			err = fmt.Errorf("failed marshaling local review with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Review{}, err
		}
		cacheKey := fmt.Sprintf(cache.KeyReviewsByProduct, productID.String())
		if err := s.cache.RPush(c, cacheKey, encoded).Err(); err != nil {
			err = fmt.Errorf("failed inserting local review with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Review{}, err
		}
		logger.Info().Msg("inserted local review")
		return review, nil
	}

	logger = logger.With().Str(log.KeyProcess, "inserting review").Logger()
	logger.Info().Msg("inserting review")
	inserted, err := s.queries.InsertReview(c, repository.InsertReviewParams{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		UserName:  user.Username,
		Rating:    param.Rating,
		Comment:   param.Comment,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting review with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Review{}, err
	}
	logger.Info().Msg("inserted review")

	return inserted.Response(), nil
}
