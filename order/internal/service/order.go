package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	inErrors "github.com/tropics/poolscape/internal/errors"
	"github.com/tropics/poolscape/internal/log"
	"github.com/tropics/poolscape/internal/repository"
	"github.com/tropics/poolscape/order/internal/otel"
	"github.com/tropics/poolscape/order/pkg/response"
)

type OrderService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewOrderService(pool *pgxpool.Pool, queries *repository.Queries) *OrderService {
	return &OrderService{pool: pool, queries: queries}
}

func (s OrderService) FindOrdersByUserId(
	c context.Context,
	userID uuid.UUID,
) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrdersByUserId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrdersByUserId").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding orders").Logger()
	logger.Info().Msg("finding orders")
	rows, err := s.queries.FindOrdersWithItems(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d orders", len(rows))

	logger = logger.With().Str(log.KeyProcess, "mapping orders").Logger()
	logger.Info().Msg("mapping orders")
	orders := make([]response.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.Response()
		if err != nil {
			err = fmt.Errorf("failed mapping order=%s with error=%w", row.ID, err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		orders = append(orders, order)
	}
	logger.Info().Msg("mapped orders")

	return orders, nil
}

func (s OrderService) FindOrderById(
	c context.Context,
	orderID uuid.UUID,
	userID uuid.UUID,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderById").
		Str(log.KeyOrderID, orderID.String()).
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding order").Logger()
	logger.Info().Msg("finding order")
	row, err := s.queries.FindOrderById(
		c,
		repository.FindOrderByIdParams{ID: orderID, UserID: userID},
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed finding order by id=%s with error=%w",
				orderID,
				inErrors.ErrOrderNotFound,
			)
		} else {
			err = fmt.Errorf("failed finding order by id=%s with error=%w", orderID, err)
		}
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order")

	logger = logger.With().Str(log.KeyProcess, "mapping order").Logger()
	logger.Info().Msg("mapping order")
	order, err := row.Response()
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("mapped order")

	return order, nil
}

// PaymentHistory merges approved and completed orders and bookings into a
// single settled-transaction feed, newest first. Booking amounts come from
// the service price at read time.
func (s OrderService) PaymentHistory(
	c context.Context,
	userID uuid.UUID,
) ([]response.Payment, error) {
	c, span := otel.Tracer.Start(c, "OrderService PaymentHistory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService PaymentHistory").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding settled orders").Logger()
	logger.Info().Msg("finding settled orders")
	orders, err := s.queries.FindApprovedOrCompletedOrders(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding settled orders with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d settled orders", len(orders))

	logger = logger.With().Str(log.KeyProcess, "finding settled bookings").Logger()
	logger.Info().Msg("finding settled bookings")
	bookings, err := s.queries.FindApprovedOrCompletedBookings(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding settled bookings with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d settled bookings", len(bookings))

	logger = logger.With().Str(log.KeyProcess, "merging payment history").Logger()
	logger.Info().Msg("merging payment history")
	payments := make([]response.Payment, 0, len(orders)+len(bookings))
	for _, order := range orders {
		payments = append(payments, PaymentFromOrder(order))
	}
	for _, booking := range bookings {
		amount := decimal.Zero
		svc, err := s.queries.FindServiceByName(c, booking.Service)
		if err != nil {
			err = fmt.Errorf(
				"failed finding service=%s with error=%w",
				booking.Service,
				err,
			)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		} else {
			amount = numericToDecimal(svc.Price)
		}
		payments = append(payments, PaymentFromBooking(booking, amount))
	}
	SortPaymentsNewestFirst(payments)
	logger.Info().Msgf("merged %d payments", len(payments))

	return payments, nil
}
