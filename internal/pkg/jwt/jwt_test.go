//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"roombook/internal/domain/principal"
	"roombook/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	service := jwt.NewService("test-secret")
	p := principal.Principal{ID: "user-1", DisplayName: "Alice", Role: principal.RoleMember}

	t.Run("valid token round trip", func(t *testing.T) {
		token, err := service.GenerateToken(p, time.Hour)
		require.NoError(t, err)

		got, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := service.GenerateToken(p, -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other-secret")
		token, err := other.GenerateToken(p, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		bad := principal.Principal{ID: "user-1", Role: principal.Role("superuser")}
		token, err := service.GenerateToken(bad, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing subject is rejected", func(t *testing.T) {
		anon := principal.Principal{ID: "", Role: principal.RoleMember}
		token, err := service.GenerateToken(anon, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
