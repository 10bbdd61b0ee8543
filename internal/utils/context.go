// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, identifier generation, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key used to store verified token claims in the context.
// Used together with GetClaimsFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, claims)
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the verified token claims from the context.
//
// Returns ok == false when the value is missing, has an unexpected type or
// carries an empty user ID.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	if !ok || claims.UserID == "" {
		return models.Claims{}, false
	}
	return claims, true
}

// GetUserIDFromContext is a shortcut returning only the owner identifier
// from the claims stored under [ClaimsCtxKey].
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetClaimsFromContext(ctx)
	return claims.UserID, ok
}
