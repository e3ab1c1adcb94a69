//go:build unit

package session_test

import (
	"testing"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("issue and validate", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		m := session.NewManager(clk, 24*time.Hour)

		token := m.Issue("admin")
		require.NotEmpty(t, token)

		principal, ok := m.Validate(token)
		require.True(t, ok)
		assert.Equal(t, "admin", principal)
	})

	t.Run("tokens are unique per issue", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		m := session.NewManager(clk, 24*time.Hour)

		assert.NotEqual(t, m.Issue("admin"), m.Issue("admin"))
		assert.Equal(t, 2, m.ActiveCount())
	})

	t.Run("session survives until the TTL boundary", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		m := session.NewManager(clk, 24*time.Hour)

		token := m.Issue("admin")
		clk.Add(23*time.Hour + 59*time.Minute)

		_, ok := m.Validate(token)
		assert.True(t, ok)
	})

	t.Run("expired session is rejected and evicted", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		m := session.NewManager(clk, 24*time.Hour)

		token := m.Issue("admin")
		clk.Add(24*time.Hour + time.Minute)

		_, ok := m.Validate(token)
		assert.False(t, ok)
		assert.Equal(t, 0, m.ActiveCount())

		// 期限内に戻しても復活しない
		clk.Add(-2 * time.Hour)
		_, ok = m.Validate(token)
		assert.False(t, ok)
	})

	t.Run("validate sweeps other expired entries", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		m := session.NewManager(clk, time.Hour)

		m.Issue("admin")
		clk.Add(2 * time.Hour)
		fresh := m.Issue("admin")

		_, ok := m.Validate(fresh)
		require.True(t, ok)
		assert.Equal(t, 1, m.ActiveCount())
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		m := session.NewManager(clk, 24*time.Hour)

		token := m.Issue("admin")
		m.Revoke(token)
		m.Revoke(token)

		_, ok := m.Validate(token)
		assert.False(t, ok)
	})

	t.Run("unknown token", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		m := session.NewManager(clk, 24*time.Hour)

		_, ok := m.Validate("no-such-token")
		assert.False(t, ok)
	})
}
