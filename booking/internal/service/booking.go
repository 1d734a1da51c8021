package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tropics/poolscape/booking/internal/otel"
	"github.com/tropics/poolscape/booking/pkg/request"
	"github.com/tropics/poolscape/booking/pkg/response"
	"github.com/tropics/poolscape/internal/constants"
	inErrors "github.com/tropics/poolscape/internal/errors"
	"github.com/tropics/poolscape/internal/log"
	"github.com/tropics/poolscape/internal/repository"
)

type BookingService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewBookingService(pool *pgxpool.Pool, queries *repository.Queries) *BookingService {
	return &BookingService{pool: pool, queries: queries}
}

func (s BookingService) FindUnavailableDates(
	c context.Context,
	serviceName string,
) (response.UnavailableDates, error) {
	c, span := otel.Tracer.Start(c, "BookingService FindUnavailableDates")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BookingService FindUnavailableDates").
		Str(log.KeyService, serviceName).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding approved booking dates").Logger()
	logger.Info().Msg("finding approved booking dates")
	dates, err := s.queries.FindApprovedBookingDates(c, serviceName)
	if err != nil {
		err = fmt.Errorf("failed finding approved booking dates with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.UnavailableDates{}, err
	}
	logger.Info().Msgf("found %d approved booking dates", len(dates))

	return response.UnavailableDates{
		Service: serviceName,
		Dates:   UnavailableDates(dates),
	}, nil
}

func (s BookingService) CreateBooking(
	c context.Context,
	param request.Booking,
	userID uuid.UUID,
) (response.Booking, error) {
	c, span := otel.Tracer.Start(c, "BookingService CreateBooking")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BookingService CreateBooking").
		Str(log.KeyService, param.Service).
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().
		Str(log.KeyProcess, fmt.Sprintf("finding user by userId=%s in %s", userID.String(), constants.AppUserService)).
		Logger()
	logger.Info().Msgf("finding user by userId=%s", userID.String())
	req, err := http.NewRequestWithContext(
		c,
		http.MethodGet,
		constants.URLUserService+"/"+userID.String(),
		nil,
	)
	if err != nil {
		err = fmt.Errorf("failed getting userId=%s with error=%w", userID.String(), err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Booking{}, err
	}
	req.Header.Add(log.KeyRequestID, log.RequestIDFromContext(c))
	resp, err := otelhttp.DefaultClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed getting userId=%s with error=%w", userID.String(), err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Booking{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("userId=%s not found with error=%w", userID.String(), inErrors.ErrUserNotFound)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Booking{}, err
	}
	logger.Info().Msgf("found user by userId=%s", userID.String())

	logger = logger.With().Str(log.KeyProcess, "parsing booking date").Logger()
	logger.Info().Msg("parsing booking date")
	date, err := time.Parse("2006-01-02", param.Date)
	if err != nil {
		err = fmt.Errorf("failed parsing booking date=%s with error=%w", param.Date, err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Booking{}, err
	}
	logger.Info().Msg("parsed booking date")

	logger = logger.With().Str(log.KeyProcess, "checking date availability").Logger()
	logger.Info().Msg("checking date availability")
	approved, err := s.queries.FindApprovedBookingDates(c, param.Service)
	if err != nil {
		err = fmt.Errorf("failed finding approved booking dates with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Booking{}, err
	}
	if IsDateUnavailable(param.Date, UnavailableDates(approved)) {
		err = fmt.Errorf(
			"failed booking date=%s with error=%w",
			param.Date,
			inErrors.ErrDateUnavailable,
		)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Booking{}, err
	}
	logger.Info().Msg("checked date availability")

	logger = logger.With().Str(log.KeyProcess, "inserting booking").Logger()
	logger.Info().Msg("inserting booking")
	booking, err := s.queries.InsertBooking(c, repository.InsertBookingParams{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     param.Name,
		Email:    param.Email,
		Contact:  param.Contact,
		Location: param.Location,
		Service:  param.Service,
		Date:     pgtype.Date{Time: date, Valid: true},
		Message:  pgtype.Text{String: param.Message, Valid: param.Message != ""},
		Status:   constants.BookingStatusPending,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting booking with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Booking{}, err
	}
	logger = logger.With().Str(log.KeyBookingID, booking.ID.String()).Logger()
	logger.Info().Msg("inserted booking")

	return booking.Response(), nil
}

func (s BookingService) FindBookingsByUserId(
	c context.Context,
	userID uuid.UUID,
) ([]response.Booking, error) {
	c, span := otel.Tracer.Start(c, "BookingService FindBookingsByUserId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BookingService FindBookingsByUserId").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding bookings").Logger()
	logger.Info().Msg("finding bookings")
	bookings, err := s.queries.FindBookingsByUserId(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding bookings with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d bookings", len(bookings))

	res := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, b.Response())
	}
	return res, nil
}
