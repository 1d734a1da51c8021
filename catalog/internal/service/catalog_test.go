package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/tropics/poolscape/catalog/internal/cache"
	"github.com/tropics/poolscape/internal/config"
	"github.com/tropics/poolscape/internal/repository"
)

var (
	seedPoolCategoryID = uuid.MustParse("111a2b3c-4d5e-4f6a-8b9c-0d1e2f3a4b5c")
	seedPoolBrushID    = uuid.MustParse("333c4d5e-6f7a-4b8c-0d1e-2f3a4b5c6d7e")
	seedGardenBrushID  = uuid.MustParse("444d5e6f-7a8b-4c9d-1e2f-3a4b5c6d7e8f")
)

type setupFunc func(context.Context) (*redis.Client, *pgxpool.Pool, *postgres.PostgresContainer, *testRedis.RedisContainer, *CatalogService)

type teardownFunc func(*redis.Client, *pgxpool.Pool, *postgres.PostgresContainer, *testRedis.RedisContainer)

func setup(t *testing.T) setupFunc {
	return func(c context.Context) (*redis.Client, *pgxpool.Pool, *postgres.PostgresContainer, *testRedis.RedisContainer, *CatalogService) {
		pgContainer, err := postgres.Run(
			c,
			"postgres:16.6-alpine3.21",
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			postgres.WithDatabase("postgres"),
			postgres.BasicWaitStrategies(),
			postgres.WithInitScripts(
				filepath.Join("..", "..", "..", "migrations", "20250301091500_create_table_catalog.up.sql"),
				filepath.Join("seed", "catalog.seed.sql"),
			),
		)
		if err != nil {
			t.Fatalf("failed running postgres container with error: %s", err)
		}

		pgConnStr, err := pgContainer.ConnectionString(c)
		if err != nil {
			t.Fatalf("failed getting postgres connection string with error: %s", err)
		}

		pgConfig, err := pgxpool.ParseConfig(pgConnStr)
		if err != nil {
			t.Fatalf("failed parsing pgxpool config with error: %s", err)
		}

		pool, err := pgxpool.NewWithConfig(c, pgConfig)
		if err != nil {
			t.Fatalf("failed creating postgres pool with error: %s", err)
		}

		if err = pool.Ping(c); err != nil {
			t.Fatalf("failed ping postgres pool with error: %s", err)
		}

		// The home aggregate is stored with JSON commands, so the test
		// needs the stack image rather than plain redis.
		redisContainer, err := testRedis.Run(
			c,
			"redis/redis-stack-server:7.4.0-v3",
			testRedis.WithLogLevel(testRedis.LogLevelVerbose),
		)
		if err != nil {
			t.Fatalf("failed running redis container with error: %s", err)
		}

		redisConnStr, err := redisContainer.ConnectionString(c)
		if err != nil {
			t.Fatalf("failed getting redis connection string with error: %s", err)
		}

		redisOpt, err := redis.ParseURL(redisConnStr)
		if err != nil {
			t.Fatalf("failed parsing redis connection string with error: %s", err)
		}

		redisClient := redis.NewClient(redisOpt)
		if err = redisClient.Ping(c).Err(); err != nil {
			t.Fatalf("failed ping redis client with error: %s", err)
		}

		queries := repository.New(pool)
		storage := config.Storage{PublicBaseURL: "https://storage.example.com/public/images"}
		catalogService := NewCatalogService(pool, queries, redisClient, storage, false)
		return redisClient, pool, pgContainer, redisContainer, catalogService
	}
}

func teardown(t *testing.T) teardownFunc {
	return func(redisClient *redis.Client, pool *pgxpool.Pool, pgContainer *postgres.PostgresContainer, redisContainer *testRedis.RedisContainer) {
		redisClient.Close()
		pool.Close()
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}
}

func TestFindProductsSearchPrecedence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	c := context.Background()
	c = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(c)
	redisClient, pool, pgContainer, redisContainer, catalogService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	// A non-empty query wins over the category filter: both brushes come
	// back even though only one belongs to the requested category.
	searched, err := catalogService.FindProducts(c, "brush", seedPoolCategoryID, 1)
	assert.NoError(t, err)
	assert.Len(t, searched.Products, 2)
	found := map[uuid.UUID]bool{}
	for _, product := range searched.Products {
		found[product.ID] = true
	}
	assert.True(t, found[seedPoolBrushID])
	assert.True(t, found[seedGardenBrushID])
	assert.False(t, searched.HasMore)

	// Clearing the query restores the category result set.
	filtered, err := catalogService.FindProducts(c, "", seedPoolCategoryID, 1)
	assert.NoError(t, err)
	assert.Len(t, filtered.Products, 2)
	for _, product := range filtered.Products {
		assert.NotEqual(t, seedGardenBrushID, product.ID)
	}
}

func TestFindProductsSearchSecondPage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	c := context.Background()
	c = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(c)
	redisClient, pool, pgContainer, redisContainer, catalogService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	page, err := catalogService.FindProducts(c, "brush", uuid.Nil, 2)
	assert.NoError(t, err)
	assert.Empty(t, page.Products, "second search page must not repeat the first")
	assert.Equal(t, 2, page.Page)
	assert.False(t, page.HasMore)
}

func TestFindHomeCacheExpires(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	c := context.Background()
	c = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(c)
	redisClient, pool, pgContainer, redisContainer, catalogService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	home, err := catalogService.FindHome(c)
	assert.NoError(t, err)
	assert.Len(t, home.Banners, 1)
	assert.Len(t, home.Categories, 2)
	assert.Len(t, home.Services, 1)

	ttl, err := redisClient.TTL(c, cache.KeyHome).Result()
	if err != nil {
		t.Fatalf("failed reading cache ttl with error: %s", err)
	}
	assert.Greater(t, ttl, time.Duration(0), "home cache must expire, catalog has no write path to invalidate it")
	assert.LessOrEqual(t, ttl, cache.HomeTTL)
}
