//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/pkg/session"
	"salon-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T, cfg config.AdminConfig) (usecase.AuthUseCase, *clock.MockClock) {
	t.Helper()

	verifier, err := usecase.NewVerifier(cfg)
	require.NoError(t, err)

	clk := clock.NewMockClock(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	sessions := session.NewManager(clk, cfg.SessionTTL)
	return usecase.NewAuthUseCase(cfg, verifier, sessions), clk
}

func TestNewVerifier(t *testing.T) {
	t.Run("hash preferred when both are set", func(t *testing.T) {
		digest, err := password.Hash("hashed-secret")
		require.NoError(t, err)

		v, err := usecase.NewVerifier(config.AdminConfig{
			Username:     "admin",
			PasswordHash: digest,
			Password:     "plain-secret",
		})
		require.NoError(t, err)

		assert.NoError(t, v.Verify("hashed-secret"))
		assert.Error(t, v.Verify("plain-secret"))
	})

	t.Run("plaintext fallback", func(t *testing.T) {
		v, err := usecase.NewVerifier(config.AdminConfig{
			Username: "admin",
			Password: "plain-secret",
		})
		require.NoError(t, err)
		assert.NoError(t, v.Verify("plain-secret"))
	})

	t.Run("no credential configured", func(t *testing.T) {
		_, err := usecase.NewVerifier(config.AdminConfig{Username: "admin"})
		require.ErrorIs(t, err, password.ErrNoCredential)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	cfg := config.AdminConfig{
		Username:   "admin",
		Password:   "secret",
		SessionTTL: 24 * time.Hour,
	}

	t.Run("valid credentials issue a session", func(t *testing.T) {
		auth, _ := newAuth(t, cfg)

		token, err := auth.Login(ctx, "admin", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		principal, ok := auth.Validate(token)
		require.True(t, ok)
		assert.Equal(t, "admin", principal)
	})

	t.Run("wrong password", func(t *testing.T) {
		auth, _ := newAuth(t, cfg)
		_, err := auth.Login(ctx, "admin", "wrong")
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("wrong username", func(t *testing.T) {
		auth, _ := newAuth(t, cfg)
		_, err := auth.Login(ctx, "root", "secret")
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("logout revokes only that session", func(t *testing.T) {
		auth, _ := newAuth(t, cfg)

		first, err := auth.Login(ctx, "admin", "secret")
		require.NoError(t, err)
		second, err := auth.Login(ctx, "admin", "secret")
		require.NoError(t, err)

		auth.Logout(first)

		_, ok := auth.Validate(first)
		assert.False(t, ok)
		_, ok = auth.Validate(second)
		assert.True(t, ok)
	})

	t.Run("session expires after the TTL", func(t *testing.T) {
		auth, clk := newAuth(t, cfg)

		token, err := auth.Login(ctx, "admin", "secret")
		require.NoError(t, err)

		clk.Add(25 * time.Hour)

		_, ok := auth.Validate(token)
		assert.False(t, ok)
	})
}
