package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tropics/poolscape/cart/internal/cache"
	"github.com/tropics/poolscape/cart/internal/otel"
	"github.com/tropics/poolscape/cart/pkg/request"
	"github.com/tropics/poolscape/cart/pkg/response"
	"github.com/tropics/poolscape/internal/constants"
	inErrors "github.com/tropics/poolscape/internal/errors"
	"github.com/tropics/poolscape/internal/log"
	"github.com/tropics/poolscape/internal/repository"
)

type CartService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewCartService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) *CartService {
	return &CartService{pool: pool, queries: queries, cache: cache}
}

func (s CartService) FindCart(c context.Context, userID uuid.UUID) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KeyCartByUserId, userID.String())

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCart").
		Str(log.KeyUserID, userID.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart in cache").Logger()
	logger.Info().Msg("finding cart in cache")
	jsonCache, err := s.cache.JSONGet(c, cacheKey).Result()
	if err == nil && jsonCache != "" {
		logger.Info().Msg("found cart in cache")

		logger = logger.With().Str(log.KeyProcess, "unmarshaling cache").Logger()
		cart := response.Cart{}
		if err := json.Unmarshal([]byte(jsonCache), &cart); err == nil {
			return cart, nil
		}
		err = fmt.Errorf("failed unmarshaling cache with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("cart not found in cache")

	logger = logger.With().Str(log.KeyProcess, "finding cart items in db").Logger()
	logger.Info().Msg("finding cart items in db")
	rows, err := s.queries.FindCartItemsWithProduct(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msgf("found %d cart items in db", len(rows))

	logger = logger.With().Str(log.KeyProcess, "computing cart totals").Logger()
	logger.Info().Msg("computing cart totals")
	items := make([]response.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Response())
	}
	cart := ComputeTotals(items)
	logger.Info().Msg("computed cart totals")

	logger = logger.With().Str(log.KeyProcess, "inserting cart to cache").Logger()
	logger.Info().Msg("inserting cart to cache")
	if err := s.cache.JSONSet(c, cacheKey, "$", cart).Err(); err != nil {
		err = fmt.Errorf("failed inserting cart to cache with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	} else {
		logger.Info().Msg("inserted cart to cache")
	}

	return cart, nil
}

func (s CartService) AddCartItem(
	c context.Context,
	param request.AddCartItem,
	userID uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddCartItem").
		Str(log.KeyUserID, userID.String()).
		Str(log.KeyProductID, param.ProductId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	if _, err := s.queries.FindProductById(c, param.ProductId); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed finding product by id=%s with error=%w",
				param.ProductId,
				inErrors.ErrProductNotFound,
			)
		} else {
			err = fmt.Errorf("failed finding product by id=%s with error=%w", param.ProductId, err)
		}
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "finding existing cart item").Logger()
	logger.Info().Msg("finding existing cart item")
	existing, err := s.queries.FindCartItemByUserAndProduct(
		c,
		repository.FindCartItemByUserAndProductParams{UserID: userID, ProductID: param.ProductId},
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed finding existing cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	if err == nil {
		logger = logger.With().
			Str(log.KeyProcess, "incrementing cart item quantity").
			Str(log.KeyCartItemID, existing.ID.String()).
			Logger()
		logger.Info().Msg("incrementing cart item quantity")
		_, err = s.queries.UpdateCartItemQuantity(c, repository.UpdateCartItemQuantityParams{
			ID:       existing.ID,
			UserID:   userID,
			Quantity: existing.Quantity + param.Quantity,
		})
		if err != nil {
			err = fmt.Errorf("failed incrementing cart item quantity with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Cart{}, err
		}
		logger.Info().Msg("incremented cart item quantity")
	} else {
		logger = logger.With().Str(log.KeyProcess, "inserting cart item").Logger()
		logger.Info().Msg("inserting cart item")
		inserted, err := s.queries.InsertCartItem(c, repository.InsertCartItemParams{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: param.ProductId,
			Quantity:  param.Quantity,
		})
		if err != nil {
			err = fmt.Errorf("failed inserting cart item with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Cart{}, err
		}
		logger = logger.With().Str(log.KeyCartItemID, inserted.ID.String()).Logger()
		logger.Info().Msg("inserted cart item")
	}

	s.invalidateCart(c, userID)

	c = logger.WithContext(c)
	return s.FindCart(c, userID)
}

func (s CartService) UpdateCartItem(
	c context.Context,
	cartItemID uuid.UUID,
	param request.UpdateCartItem,
	userID uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateCartItem").
		Str(log.KeyUserID, userID.String()).
		Str(log.KeyCartItemID, cartItemID.String()).
		Logger()

	// A decrement below one removes the line entirely.
	if param.Quantity < 1 {
		logger = logger.With().Str(log.KeyProcess, "removing cart item").Logger()
		logger.Info().Msg("quantity below one, removing cart item")
		c = logger.WithContext(c)
		return s.RemoveCartItem(c, cartItemID, userID)
	}

	logger = logger.With().Str(log.KeyProcess, "updating cart item quantity").Logger()
	logger.Info().Msg("updating cart item quantity")
	_, err := s.queries.UpdateCartItemQuantity(c, repository.UpdateCartItemQuantityParams{
		ID:       cartItemID,
		UserID:   userID,
		Quantity: param.Quantity,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed updating cart item=%s with error=%w",
				cartItemID,
				inErrors.ErrCartItemNotFound,
			)
		} else {
			err = fmt.Errorf("failed updating cart item quantity with error=%w", err)
		}
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("updated cart item quantity")

	s.invalidateCart(c, userID)

	c = logger.WithContext(c)
	return s.FindCart(c, userID)
}

func (s CartService) RemoveCartItem(
	c context.Context,
	cartItemID uuid.UUID,
	userID uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveCartItem").
		Str(log.KeyUserID, userID.String()).
		Str(log.KeyCartItemID, cartItemID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting cart item").Logger()
	logger.Info().Msg("deleting cart item")
	deleted, err := s.queries.DeleteCartItem(
		c,
		repository.DeleteCartItemParams{ID: cartItemID, UserID: userID},
	)
	if err != nil {
		err = fmt.Errorf("failed deleting cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if deleted == 0 {
		err = fmt.Errorf(
			"failed deleting cart item=%s with error=%w",
			cartItemID,
			inErrors.ErrCartItemNotFound,
		)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("deleted cart item")

	s.invalidateCart(c, userID)

	c = logger.WithContext(c)
	return s.FindCart(c, userID)
}

func (s CartService) ClearCart(c context.Context, userID uuid.UUID) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ClearCart").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting cart items").Logger()
	logger.Info().Msg("deleting cart items")
	deleted, err := s.queries.DeleteCartItemsByUserId(c, userID)
	if err != nil {
		err = fmt.Errorf("failed deleting cart items with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msgf("deleted %d cart items", deleted)

	s.invalidateCart(c, userID)

	return ComputeTotals([]response.CartItem{}), nil
}

func (s CartService) Checkout(
	c context.Context,
	param request.CheckoutCart,
	userID uuid.UUID,
) (response.Checkout, error) {
	c, span := otel.Tracer.Start(c, "CartService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService Checkout").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart items in db").Logger()
	logger.Info().Msg("finding cart items in db")
	rows, err := s.queries.FindCartItemsWithProduct(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	if len(rows) == 0 {
		err = fmt.Errorf("failed checking out with error=%w", inErrors.ErrCartEmpty)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger.Info().Msgf("found %d cart items in db", len(rows))

	logger = logger.With().Str(log.KeyProcess, "computing cart totals").Logger()
	logger.Info().Msg("computing cart totals")
	items := make([]response.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Response())
	}
	cart := ComputeTotals(items)
	logger.Info().Msg("computed cart totals")

	logger = logger.With().Str(log.KeyProcess, "begin transaction").Logger()
	logger.Info().Msg("starting transaction")
	tx, err := s.pool.Begin(c)
	if err != nil {
		err = fmt.Errorf("failed starting transaction with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger.Info().Msg("started transaction")
	defer func(lg zerolog.Logger) {
		l := lg.With().Str(log.KeyProcess, "rolling back transaction").Logger()
		l.Info().Msg("rolling back transaction")
		err = tx.Rollback(c)
		if err != nil {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			if errors.Is(err, pgx.ErrTxClosed) {
				l.Info().Err(err).Msg(err.Error())
				return
			}
			inErrors.HandleError(err, span)
			l.Error().Err(err).Msg(err.Error())
			return
		}
		l.Info().Msg("rolled back transaction")
	}(logger)

	qtx := s.queries.WithTx(tx)

	logger = logger.With().Str(log.KeyProcess, "inserting order").Logger()
	logger.Info().Msg("inserting order")
	order, err := qtx.InsertOrder(c, repository.InsertOrderParams{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        constants.OrderStatusPending,
		PaymentMethod: param.PaymentMethod,
		Total:         decimalToNumeric(cart.Total),
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID.String()).Logger()
	logger.Info().Msg("inserted order")

	logger = logger.With().Str(log.KeyProcess, "inserting order items").Logger()
	logger.Info().Msg("inserting order items")
	args := make([]repository.InsertOrderItemsParams, len(cart.Items))
	for i, item := range cart.Items {
		args[i] = repository.InsertOrderItemsParams{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     decimalToNumeric(item.Price),
		}
	}
	insertedCount, err := qtx.InsertOrderItems(c, args)
	if err != nil {
		err = fmt.Errorf("failed inserting order items with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger.Info().Msgf("inserted %d order items", insertedCount)

	logger = logger.With().Str(log.KeyProcess, "deleting cart items").Logger()
	logger.Info().Msg("deleting cart items")
	deleted, err := qtx.DeleteCartItemsByUserId(c, userID)
	if err != nil {
		err = fmt.Errorf("failed deleting cart items with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger.Info().Msgf("deleted %d cart items", deleted)

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	if err = tx.Commit(c); err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Checkout{}, err
	}
	logger.Info().Msg("committed transaction")

	s.invalidateCart(c, userID)

	return response.Checkout{
		OrderID:       order.ID,
		PaymentMethod: param.PaymentMethod,
		Total:         cart.Total,
		Instructions:  PaymentInstructions(param.PaymentMethod, order.ID),
	}, nil
}

func (s CartService) invalidateCart(c context.Context, userID uuid.UUID) {
	cacheKey := fmt.Sprintf(cache.KeyCartByUserId, userID.String())
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyProcess, "invalidating cart cache").
		Str(log.KeyCacheKey, cacheKey).
		Logger()
	logger.Info().Msg("invalidating cart cache")
	if err := s.cache.JSONDel(c, cacheKey, "$").Err(); err != nil {
		err = fmt.Errorf("failed invalidating cart cache with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("invalidated cart cache")
}
