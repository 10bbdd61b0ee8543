package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

var testClaims = models.Claims{
	Email:  "al@x.com",
	UserID: "0192b3c4-0000-7000-8000-000000000001",
	Name:   "Al",
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	now := time.Now()
	key := "secret-key"

	token, err := GenerateJWTToken(testClaims, issuer, now, 24*time.Hour, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Fatal("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(models.Claims)
	if !ok {
		t.Fatal("could not cast claims to models.Claims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != testClaims.UserID {
		t.Errorf("expected subject %s, got %s", testClaims.UserID, claims.Subject)
	}
	if got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); got != 24*time.Hour {
		t.Errorf("expected 24h lifetime, got %v", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		claims   models.Claims
		duration time.Duration
		key      string
	}{
		{"empty user id", models.Claims{Email: "a@b.c"}, time.Hour, "key"},
		{"zero duration", testClaims, 0, "key"},
		{"negative duration", testClaims, -time.Hour, "key"},
		{"empty key", testClaims, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.claims, "", time.Now(), tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	key := "secret-key"

	genToken, err := GenerateJWTToken(testClaims, "", time.Now(), 5*time.Minute, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, "")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Claims.UserID != testClaims.UserID {
		t.Errorf("expected userID %s, got %s", testClaims.UserID, parsedToken.Claims.UserID)
	}
	if parsedToken.Claims.Email != testClaims.Email || parsedToken.Claims.Name != testClaims.Name {
		t.Errorf("claims mismatch: %+v", parsedToken.Claims)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken(testClaims, "", time.Now(), time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		t.Error("signature mismatch must not be reported as expiry")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	key := "key"
	// issued 25 hours ago with a 24 hour lifetime
	genToken, _ := GenerateJWTToken(testClaims, "", time.Now().Add(-25*time.Hour), 24*time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken(testClaims, "", time.Now(), time.Hour, key)

	// swap the user id inside the payload and keep the original signature
	parts := strings.Split(genToken.SignedString, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	payload = bytes.Replace(payload, []byte(testClaims.UserID), []byte("someone-else"), 1)
	parts[1] = base64.RawURLEncoding.EncodeToString(payload)
	tampered := strings.Join(parts, ".")

	_, err = ValidateAndParseJWTToken(tampered, key, "")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("expected signature error for tampered token, got %v", err)
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		t.Error("tampered token must not be reported as expired")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken(testClaims, "real-issuer", time.Now(), time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	key := "key"
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, models.Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, key, "")
	if err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_MissingUserID(t *testing.T) {
	key := "key"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{
		Email: "a@b.c",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, _ := token.SignedString([]byte(key))

	_, err := ValidateAndParseJWTToken(signed, key, "")
	if !errors.Is(err, ErrEmptyUserIDClaim) {
		t.Errorf("expected ErrEmptyUserIDClaim, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
	if !strings.Contains(err.Error(), "error occurred validating and parsing token") {
		t.Errorf("expected wrapped parse error, got %v", err)
	}
}
