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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/tropics/poolscape/cart/pkg/request"
	"github.com/tropics/poolscape/internal/constants"
	inErrors "github.com/tropics/poolscape/internal/errors"
	"github.com/tropics/poolscape/internal/repository"
)

var (
	seedUserID     = uuid.MustParse("6f1c1f4e-9d2a-4b3e-8c5d-1a2b3c4d5e6f")
	seedFilterID   = uuid.MustParse("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d")
	seedChlorineID = uuid.MustParse("b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e")
)

type (
	setupFunc    func(context.Context, ...string) (*redis.Client, *pgxpool.Pool, *postgres.PostgresContainer, *testRedis.RedisContainer, *repository.Queries, *CartService)
	teardownFunc func(*redis.Client, *pgxpool.Pool, *postgres.PostgresContainer, *testRedis.RedisContainer)
)

func setup(t *testing.T) setupFunc {
	return func(c context.Context, seedPaths ...string) (*redis.Client, *pgxpool.Pool, *postgres.PostgresContainer, *testRedis.RedisContainer, *repository.Queries, *CartService) {
		pgContainer, err := postgres.Run(
			c,
			"postgres:16.6-alpine3.21",
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			postgres.WithDatabase("postgres"),
			postgres.BasicWaitStrategies(),
			postgres.WithInitScripts(
				append(
					[]string{
						filepath.Join("..", "..", "..", "migrations", "20250301090000_create_table_users.up.sql"),
						filepath.Join("..", "..", "..", "migrations", "20250301091500_create_table_catalog.up.sql"),
						filepath.Join("..", "..", "..", "migrations", "20250301093000_create_table_cart_items.up.sql"),
						filepath.Join("..", "..", "..", "migrations", "20250301100000_create_table_orders.up.sql"),
					},
					seedPaths...)...,
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

		redisContainer, err := testRedis.Run(
			c,
			"redis:7.4.2-alpine3.21",
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
		cartService := NewCartService(pool, queries, redisClient)
		return redisClient, pool, pgContainer, redisContainer, queries, cartService
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

type UpdateQuantityTest struct {
	name     string
	quantity int32
	setup    setupFunc
	teardown teardownFunc
}

func TestUpdateCartItemBelowOneRemovesRow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	seedPath := []string{
		filepath.Join("seed", "users.seed.sql"),
		filepath.Join("seed", "products.seed.sql"),
	}
	tests := []UpdateQuantityTest{
		{
			name:     "given quantity zero update should delete the cart row",
			quantity: 0,
			setup:    setup(t),
			teardown: teardown(t),
		},
		{
			name:     "given negative quantity update should delete the cart row",
			quantity: -2,
			setup:    setup(t),
			teardown: teardown(t),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := context.Background()
			c = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
				WithContext(c)
			redisClient, pool, pgContainer, redisContainer, queries, cartService := tt.setup(
				c,
				seedPath...,
			)
			defer tt.teardown(redisClient, pool, pgContainer, redisContainer)

			cart, err := cartService.AddCartItem(
				c,
				request.AddCartItem{ProductId: seedFilterID, Quantity: 2},
				seedUserID,
			)
			if err != nil {
				t.Fatalf("failed adding cart item with error: %s", err)
			}
			if len(cart.Items) != 1 {
				t.Fatalf("expected one cart item, got %d", len(cart.Items))
			}
			cartItemID := cart.Items[0].ID

			cart, err = cartService.UpdateCartItem(
				c,
				cartItemID,
				request.UpdateCartItem{Quantity: tt.quantity},
				seedUserID,
			)
			assert.NoError(t, err, "update below one should remove, not fail")
			assert.Empty(t, cart.Items, "cart should be empty after removal")
			assert.True(t, decimal.Zero.Equal(cart.Total), "total should be zero after removal")

			remaining, err := queries.FindCartItemsWithProduct(c, seedUserID)
			if err != nil {
				t.Fatalf("failed finding cart items with error: %s", err)
			}
			assert.Empty(t, remaining, "no row with zero or negative quantity may persist")
		})
	}
}

type CheckoutTest struct {
	name          string
	items         []request.AddCartItem
	paymentMethod string
	seedPath      []string
	setup         setupFunc
	teardown      teardownFunc
	expectedTotal decimal.Decimal
	expectedErr   error
}

func TestCheckout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	seedPath := []string{
		filepath.Join("seed", "users.seed.sql"),
		filepath.Join("seed", "products.seed.sql"),
	}
	tests := []CheckoutTest{
		{
			name:          "given empty cart checkout should return error cart empty",
			items:         nil,
			paymentMethod: constants.PaymentMethodPickup,
			seedPath:      seedPath,
			setup:         setup(t),
			teardown:      teardown(t),
			expectedErr:   inErrors.ErrCartEmpty,
		},
		{
			name: "given cart with items checkout should create order and clear cart",
			items: []request.AddCartItem{
				{ProductId: seedFilterID, Quantity: 2},
				{ProductId: seedChlorineID, Quantity: 1},
			},
			paymentMethod: constants.PaymentMethodGcash,
			seedPath:      seedPath,
			setup:         setup(t),
			teardown:      teardown(t),
			expectedTotal: decimal.RequireFromString("3250.50"),
			expectedErr:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := context.Background()
			c = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
				WithContext(c)
			redisClient, pool, pgContainer, redisContainer, queries, cartService := tt.setup(
				c,
				tt.seedPath...,
			)
			defer tt.teardown(redisClient, pool, pgContainer, redisContainer)

			for _, item := range tt.items {
				if _, err := cartService.AddCartItem(c, item, seedUserID); err != nil {
					t.Fatalf("failed adding cart item with error: %s", err)
				}
			}

			actual, err := cartService.Checkout(
				c,
				request.CheckoutCart{PaymentMethod: tt.paymentMethod},
				seedUserID,
			)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr, "error should be equal to expected")
				return
			}
			assert.NoError(t, err, "checkout should not return error")
			assert.Equal(t, tt.paymentMethod, actual.PaymentMethod)
			assert.True(
				t,
				tt.expectedTotal.Equal(actual.Total),
				"total should be %s but got %s", tt.expectedTotal, actual.Total,
			)
			assert.NotEmpty(t, actual.Instructions, "payment instructions should not be empty")

			order, err := queries.FindOrderById(c, repository.FindOrderByIdParams{
				ID:     actual.OrderID,
				UserID: seedUserID,
			})
			if err != nil {
				t.Fatalf("failed finding order with error: %s", err)
			}
			assert.Equal(t, constants.OrderStatusPending, order.Status)
			assert.Equal(t, tt.paymentMethod, order.PaymentMethod)

			remaining, err := queries.FindCartItemsWithProduct(c, seedUserID)
			if err != nil {
				t.Fatalf("failed finding cart items with error: %s", err)
			}
			assert.Empty(t, remaining, "cart should be empty after checkout")
		})
	}
}
