package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key-with-enough-entropy-0"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("error signing test token: %v", err)
	}
	return signed
}

func TestTokenValidator_ValidateToken(t *testing.T) {
	validator := NewTokenValidator(testSecret)

	t.Run("Valid Token", func(t *testing.T) {
		signed := signToken(t, testSecret, &UserClaims{
			UserID: 42,
			Email:  "emp@acme.com",
			Role:   "employee",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := validator.ValidateToken(signed)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "emp@acme.com", claims.Email)
		assert.Equal(t, "employee", claims.Role)
	})

	t.Run("Expired Token", func(t *testing.T) {
		signed := signToken(t, testSecret, &UserClaims{
			UserID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		claims, err := validator.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Nil(t, claims)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		signed := signToken(t, "some-other-secret-key-entirely-000000", &UserClaims{
			UserID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := validator.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		claims, err := validator.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("UserID From Subject", func(t *testing.T) {
		signed := signToken(t, testSecret, &UserClaims{
			Email: "emp@acme.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "17",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := validator.ValidateToken(signed)
		assert.NoError(t, err)
		assert.Equal(t, int32(17), claims.UserID)
	})
}
