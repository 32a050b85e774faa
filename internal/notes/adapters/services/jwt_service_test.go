package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/notes/adapters/services"
	portservices "notekeeper/internal/notes/ports/services"
)

const testSecretKey = "test-secret-key"

func signToken(t *testing.T, secret string, claims services.Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenString
}

func TestServiceJWT_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecretKey)

	t.Run("valid token returns user id", func(t *testing.T) {
		tokenString := signToken(t, testSecretKey, services.Claims{
			UserID: "user-123",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		userID, err := service.ValidateAccessToken(ctx, tokenString)

		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString := signToken(t, testSecretKey, services.Claims{
			UserID: "user-123",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		userID, err := service.ValidateAccessToken(ctx, tokenString)

		require.ErrorIs(t, err, portservices.ErrExpiredJWTToken)
		assert.Empty(t, userID)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		tokenString := signToken(t, "another-secret", services.Claims{
			UserID: "user-123",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		userID, err := service.ValidateAccessToken(ctx, tokenString)

		require.ErrorIs(t, err, portservices.ErrInvalidJWTToken)
		assert.Empty(t, userID)
	})

	t.Run("unexpected signing algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, services.Claims{UserID: "user-123"})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		userID, err := service.ValidateAccessToken(ctx, tokenString)

		require.ErrorIs(t, err, portservices.ErrInvalidJWTToken)
		assert.Empty(t, userID)
	})

	t.Run("empty user id claim", func(t *testing.T) {
		tokenString := signToken(t, testSecretKey, services.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		userID, err := service.ValidateAccessToken(ctx, tokenString)

		require.ErrorIs(t, err, portservices.ErrInvalidJWTToken)
		assert.Empty(t, userID)
	})

	t.Run("malformed token", func(t *testing.T) {
		userID, err := service.ValidateAccessToken(ctx, "not.a.token")

		require.ErrorIs(t, err, portservices.ErrInvalidJWTToken)
		assert.Empty(t, userID)
	})
}
