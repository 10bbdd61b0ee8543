package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity bundle carried by a bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard exp/iat/iss/sub claims.
// Subject always mirrors UserID.
type Claims struct {
	Email  string `json:"email"`
	UserID string `json:"id"`
	Name   string `json:"name"`

	jwt.RegisteredClaims
}

// ClaimsFromUser builds the token claims for u.
func ClaimsFromUser(u User) Claims {
	return Claims{
		Email:  u.Email,
		UserID: u.UserID,
		Name:   u.Name,
	}
}

// Token wraps a signed JWT together with the claims it carries.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims are the identity claims encoded in the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
