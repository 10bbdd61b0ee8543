package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/internal/validators"
	"github.com/MKhiriev/go-task-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// idGenerator assigns user ids.
	idGenerator utils.IDGenerator

	// validator checks that signup and login requests carry every required field.
	validator validators.Validator

	// passwordHashCost is the bcrypt work factor used at registration.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the optional "iss" claim embedded in every issued JWT.
	// When set, tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, idGenerator utils.IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		idGenerator:      idGenerator,
		validator:        validators.NewRequestValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		now:              time.Now,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// Name, email and password must be non-empty. The password is stored as a
// bcrypt hash and never returned.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a field is missing.
//   - ErrEmailAlreadyRegistered if the email is taken.
//   - A wrapped storage error if the repository call fails otherwise.
func (a *authService) RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", req.Email).Msg("email already registered")
		return models.User{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user := models.User{
		UserID:    a.idGenerator.Generate(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: a.now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		// a concurrent signup may win the race past the lookup above
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Str("email", req.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// callers cannot probe which emails are registered.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid login data provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", req.Email).Msg("login with unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, foundUser.Password) {
		log.Warn().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.CreateToken(ctx, foundUser)
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user's email, id and name, is signed with the
// configured tokenSignKey and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(models.ClaimsFromUser(user), a.tokenIssuer, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; any other failure (bad
// signature, wrong algorithm, wrong issuer, malformed input) yields
// ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
