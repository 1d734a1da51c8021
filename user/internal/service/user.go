package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tropics/poolscape/internal/config"
	"github.com/tropics/poolscape/internal/constants"
	inErrors "github.com/tropics/poolscape/internal/errors"
	"github.com/tropics/poolscape/internal/log"
	"github.com/tropics/poolscape/internal/repository"
	"github.com/tropics/poolscape/user/internal/otel"
	"github.com/tropics/poolscape/user/pkg/request"
	"github.com/tropics/poolscape/user/pkg/response"
)

type UserService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	config  config.Application
}

func NewUserService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	config config.Application,
) *UserService {
	return &UserService{pool: pool, queries: queries, config: config}
}

func (u UserService) Register(
	c context.Context,
	param request.RegisterRequest,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Register").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "hashing password").Logger()
	logger.Info().Msg("hashing password")
	hashed, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("failed hashing password with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, errors.Join(err, inErrors.ErrFailedHashToken)
	}
	logger.Info().Msg("hashed password")

	logger = logger.With().Str(log.KeyProcess, "begin transaction").Logger()
	logger.Info().Msg("starting transaction")
	tx, err := u.pool.Begin(c)
	if err != nil {
		err = fmt.Errorf("failed starting transaction with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
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

	qtx := u.queries.WithTx(tx)

	logger = logger.With().Str(log.KeyProcess, "inserting user").Logger()
	logger.Info().Msg("inserting user")
	user, err := qtx.InsertUser(c, repository.InsertUserParams{
		Username: param.Username,
		Email:    param.Email,
		Password: string(hashed),
	})
	if err != nil {
		err = fmt.Errorf("failed inserting user with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger = logger.With().Str(log.KeyUserID, user.ID.String()).Logger()
	logger.Info().Msg("inserted user")

	logger = logger.With().Str(log.KeyProcess, "inserting profile").Logger()
	logger.Info().Msg("inserting profile")
	_, err = qtx.InsertProfile(c, repository.InsertProfileParams{
		UserID:   user.ID,
		FullName: pgtype.Text{String: param.FullName, Valid: param.FullName != ""},
	})
	if err != nil {
		err = fmt.Errorf("failed inserting profile with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("inserted profile")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	if err = tx.Commit(c); err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("committed transaction")

	return response.User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Time,
	}, nil
}

func (u UserService) Login(c context.Context, param request.LoginRequest) (string, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Login").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user").Logger()
	logger.Info().Msg("finding user by email")
	user, err := u.queries.FindUserByEmail(c, param.Email)
	if err != nil {
		err = fmt.Errorf(
			"failed finding user by email=%s with error=%w",
			param.Email,
			inErrors.ErrUserNotFound,
		)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("found user by email")

	logger = logger.With().Str(log.KeyProcess, "verifying password").Logger()
	logger.Info().Msg("verifying password")
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(param.Password))
	if err != nil {
		err = fmt.Errorf("failed verifying password with error=%w", inErrors.ErrPasswordMismatch)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("verified password")

	logger = logger.With().Str(log.KeyProcess, "creating login token").Logger()
	logger.Info().Msg("creating login token")
	tokenCreationTime := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{constants.AudienceUser},
			Issuer:    constants.AppUserService,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(tokenCreationTime.Add(30 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(tokenCreationTime),
		},
	)
	logger.Info().Msg("created login token")

	logger = logger.With().Str(log.KeyProcess, "signing token").Logger()
	logger.Info().Msg("signing token")
	signedToken, err := token.SignedString([]byte(u.config.SecretKey))
	if err != nil {
		err = fmt.Errorf("failed signing token with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("signed token")

	return signedToken, nil
}

func (u UserService) FindUserById(c context.Context, userID uuid.UUID) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService FindUserById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService FindUserById").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user").Logger()
	logger.Info().Msg("finding user by id")
	user, err := u.queries.FindUserById(c, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed finding user by id=%s with error=%w",
				userID,
				inErrors.ErrUserNotFound,
			)
		} else {
			err = fmt.Errorf("failed finding user by id=%s with error=%w", userID, err)
		}
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("found user by id")

	return response.User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Time,
	}, nil
}

func (u UserService) FindSettings(
	c context.Context,
	userID uuid.UUID,
) (response.Settings, error) {
	c, span := otel.Tracer.Start(c, "UserService FindSettings")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService FindSettings").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding profile").Logger()
	logger.Info().Msg("finding profile")
	profile, err := u.queries.FindProfileByUserId(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding profile with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Settings{}, err
	}
	logger.Info().Msg("found profile")

	return response.Settings{
		UserID:   profile.UserID,
		FullName: profile.FullName.String,
		DarkMode: profile.DarkMode,
	}, nil
}

func (u UserService) UpdateSettings(
	c context.Context,
	param request.UpdateSettings,
	userID uuid.UUID,
) (response.Settings, error) {
	c, span := otel.Tracer.Start(c, "UserService UpdateSettings")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService UpdateSettings").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating profile settings").Logger()
	logger.Info().Msg("updating profile settings")
	profile, err := u.queries.UpdateProfileSettings(c, repository.UpdateProfileSettingsParams{
		UserID:   userID,
		DarkMode: param.DarkMode,
	})
	if err != nil {
		err = fmt.Errorf("failed updating profile settings with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Settings{}, err
	}
	logger.Info().Msg("updated profile settings")

	return response.Settings{
		UserID:   profile.UserID,
		FullName: profile.FullName.String,
		DarkMode: profile.DarkMode,
	}, nil
}
