package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/tropics/poolscape/booking/internal/otel"
	"github.com/tropics/poolscape/booking/internal/service"
	"github.com/tropics/poolscape/booking/pkg/request"
	"github.com/tropics/poolscape/internal"
	inErrors "github.com/tropics/poolscape/internal/errors"
	inHttp "github.com/tropics/poolscape/internal/http"
	"github.com/tropics/poolscape/internal/log"
	"github.com/tropics/poolscape/internal/middleware"
)

type BookingController struct {
	service *service.BookingService
}

func AttachBookingController(router *mux.Router, service *service.BookingService) {
	controller := BookingController{service: service}

	bookingRouter := router.PathPrefix("/bookings").Subrouter()
	bookingRouter.HandleFunc("/unavailable-dates", controller.FindUnavailableDates).
		Methods(http.MethodGet)

	authRouter := bookingRouter.NewRoute().Subrouter()
	authRouter.Use(middleware.Auth)
	authRouter.HandleFunc("", controller.CreateBooking).Methods(http.MethodPost)
	authRouter.HandleFunc("", controller.FindBookings).Methods(http.MethodGet)
}

func (t BookingController) FindUnavailableDates(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "BookingController FindUnavailableDates")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BookingController FindUnavailableDates").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting service from query").Logger()
	logger.Info().Msg("getting service from query")
	serviceName := r.URL.Query().Get("service")
	if serviceName == "" {
		err := fmt.Errorf("failed getting service from query with error=%w", inErrors.ErrEmptyService)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyService, serviceName).Logger()
	logger.Info().Msgf("got service=%s from query", serviceName)

	logger = logger.With().Str(log.KeyProcess, "finding unavailable dates").Logger()
	logger.Info().Msg("finding unavailable dates")
	c = logger.WithContext(c)
	unavailable, err := t.service.FindUnavailableDates(c, serviceName)
	if err != nil {
		err = fmt.Errorf("failed finding unavailable dates with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found unavailable dates")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "unavailable dates found",
		"data":       unavailable,
	})
}

func (t BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "BookingController CreateBooking")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BookingController CreateBooking").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.Booking{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("initializing validator")
	validate := validator.New(validator.WithRequiredStructEnabled())
	logger.Info().Msg("initialized validator")

	logger.Info().Msg("validating request body")
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := internal.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msgf("got userId=%s", userId.String())

	logger = logger.With().Str(log.KeyProcess, "creating booking").Logger()
	logger.Info().Msg("creating booking")
	c = logger.WithContext(c)
	booking, err := t.service.CreateBooking(c, reqBody, userId)
	if err != nil {
		err = fmt.Errorf("failed creating booking with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrDateUnavailable) {
			statusCode = http.StatusConflict
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("created booking")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "booking created",
		"data":       booking,
	})
}

func (t BookingController) FindBookings(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "BookingController FindBookings")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "BookingController FindBookings").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting userId from jwtToken").Logger()
	logger.Info().Msg("getting userId from jwtToken")
	userId, err := internal.UserIdFromJwtToken(c)
	if err != nil {
		err = fmt.Errorf("failed getting userId from jwtToken with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userId.String()).Logger()
	logger.Info().Msgf("got userId=%s", userId.String())

	logger = logger.With().Str(log.KeyProcess, "finding bookings").Logger()
	logger.Info().Msg("finding bookings")
	c = logger.WithContext(c)
	bookings, err := t.service.FindBookingsByUserId(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding bookings with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found bookings")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "bookings found",
		"data":       bookings,
	})
}
