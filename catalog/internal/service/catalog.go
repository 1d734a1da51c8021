package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tropics/poolscape/catalog/internal/cache"
	"github.com/tropics/poolscape/catalog/internal/otel"
	"github.com/tropics/poolscape/catalog/pkg/response"
	"github.com/tropics/poolscape/internal/config"
	"github.com/tropics/poolscape/internal/constants"
	inErrors "github.com/tropics/poolscape/internal/errors"
	"github.com/tropics/poolscape/internal/log"
	"github.com/tropics/poolscape/internal/repository"
)

type CatalogService struct {
	pool       *pgxpool.Pool
	queries    *repository.Queries
	cache      *redis.Client
	storage    config.Storage
	hasReviews bool
}

func NewCatalogService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cacheClient *redis.Client,
	storage config.Storage,
	hasReviews bool,
) *CatalogService {
	return &CatalogService{
		pool:       pool,
		queries:    queries,
		cache:      cacheClient,
		storage:    storage,
		hasReviews: hasReviews,
	}
}

// FindHome builds the home screen aggregate. Banners, categories and
// services are required; a projects failure only empties the strip.
func (s CatalogService) FindHome(c context.Context) (response.Home, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindHome")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindHome").
		Str(log.KeyCacheKey, cache.KeyHome).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding home in cache").Logger()
	logger.Info().Msg("finding home in cache")
	jsonCache, err := s.cache.JSONGet(c, cache.KeyHome).Result()
	if err == nil && jsonCache != "" {
		logger.Info().Msg("found home in cache")
		home := response.Home{}
		if err := json.Unmarshal([]byte(jsonCache), &home); err == nil {
			return home, nil
		}
		err = fmt.Errorf("failed unmarshaling cache with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("home not found in cache")

	logger = logger.With().Str(log.KeyProcess, "finding banners").Logger()
	logger.Info().Msg("finding banners")
	banners, err := s.queries.FindBanners(c, 10)
	if err != nil {
		err = fmt.Errorf("failed finding banners with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Home{}, err
	}
	logger.Info().Msgf("found %d banners", len(banners))

	logger = logger.With().Str(log.KeyProcess, "finding categories").Logger()
	logger.Info().Msg("finding categories")
	categories, err := s.queries.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Home{}, err
	}
	logger.Info().Msgf("found %d categories", len(categories))

	logger = logger.With().Str(log.KeyProcess, "finding services").Logger()
	logger.Info().Msg("finding services")
	services, err := s.queries.FindServices(c)
	if err != nil {
		err = fmt.Errorf("failed finding services with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Home{}, err
	}
	logger.Info().Msgf("found %d services", len(services))

	logger = logger.With().Str(log.KeyProcess, "finding featured projects").Logger()
	logger.Info().Msg("finding featured projects")
	projects, err := s.queries.FindFeaturedProjects(c, 4)
	if err != nil {
		err = fmt.Errorf("failed finding featured projects with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		projects = []repository.Project{}
	} else {
		logger.Info().Msgf("found %d featured projects", len(projects))
	}

	logger = logger.With().Str(log.KeyProcess, "mapping home").Logger()
	logger.Info().Msg("mapping home")
	home := response.Home{
		Banners:    make([]response.Banner, 0, len(banners)),
		Categories: make([]response.Category, 0, len(categories)),
		Services:   make([]response.Service, 0, len(services)),
		Projects:   make([]response.Project, 0, len(projects)),
	}
	for _, banner := range banners {
		home.Banners = append(home.Banners, response.Banner{
			ID:       banner.ID,
			ImageUrl: banner.ImageUrl,
		})
	}
	for _, category := range categories {
		home.Categories = append(home.Categories, s.mapCategory(category))
	}
	for _, svc := range services {
		home.Services = append(home.Services, svc.Response())
	}
	for _, project := range projects {
		home.Projects = append(home.Projects, response.Project{
			ID:          project.ID,
			Title:       project.Title,
			Description: project.Description.String,
			ImageUrl:    project.ImageUrl.String,
		})
	}
	logger.Info().Msg("mapped home")

	logger = logger.With().Str(log.KeyProcess, "inserting home to cache").Logger()
	logger.Info().Msg("inserting home to cache")
	if err := s.cache.JSONSet(c, cache.KeyHome, "$", home).Err(); err != nil {
		err = fmt.Errorf("failed inserting home to cache with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	} else if err := s.cache.Expire(c, cache.KeyHome, cache.HomeTTL).Err(); err != nil {
		err = fmt.Errorf("failed setting home cache expiry with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	} else {
		logger.Info().Msg("inserted home to cache")
	}

	return home, nil
}

func (s CatalogService) FindCategories(c context.Context) ([]response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindCategories").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding categories").Logger()
	logger.Info().Msg("finding categories")
	categories, err := s.queries.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d categories", len(categories))

	res := make([]response.Category, 0, len(categories))
	for _, category := range categories {
		res = append(res, s.mapCategory(category))
	}
	return res, nil
}

func (s CatalogService) FindServices(c context.Context) ([]response.Service, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindServices")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindServices").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding services").Logger()
	logger.Info().Msg("finding services")
	services, err := s.queries.FindServices(c)
	if err != nil {
		err = fmt.Errorf("failed finding services with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d services", len(services))

	res := make([]response.Service, 0, len(services))
	for _, svc := range services {
		res = append(res, svc.Response())
	}
	return res, nil
}

func (s CatalogService) Contact() response.Contact {
	return response.Contact{
		Phone:       constants.ContactPhone,
		Email:       constants.ContactEmail,
		Address:     constants.ContactAddress,
		FacebookURL: constants.ContactFacebookURL,
	}
}

func (s CatalogService) mapCategory(category repository.Category) response.Category {
	return response.Category{
		ID:       category.ID,
		Name:     category.Name,
		ImageUrl: ResolveImageURL(s.storage.PublicBaseURL, category.ImageUrl.String),
	}
}
