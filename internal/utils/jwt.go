package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
// parameter is missing.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// ErrEmptyUserIDClaim is returned by ValidateAndParseJWTToken when a token
// verifies but does not carry a user identifier.
var ErrEmptyUserIDClaim = errors.New("empty user id claim")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying the given
// identity claims.
//
// The token includes the following standard claims:
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//   - Issuer    (iss): issuer, only when non-empty
//
// The user ID, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(claims, "", time.Now(), 24*time.Hour, "secret")
func GenerateJWTToken(claims models.Claims, issuer string, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if claims.UserID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signing method check (HS256 only)
//   - Signature verification using tokenSignKey
//   - Expiration (exp) claim check
//   - Issuer (iss) claim check, only when tokenIssuer is non-empty
//   - Presence of the user id claim
//
// The returned error wraps the jwt library error, so callers can match
// [jwt.ErrTokenExpired] with [errors.Is].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, ErrEmptyUserIDClaim
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}
