// Package session owns the in-memory admin session map. Tokens are opaque
// and die with the process; nothing outside this package touches the map.
package session

import (
	"sync"
	"time"

	"salon-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type entry struct {
	principal string
	createdAt time.Time
}

type Manager struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewManager(clk clock.Clock, ttl time.Duration) *Manager {
	return &Manager{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

// Issue creates a session for the principal and returns the opaque token.
func (m *Manager) Issue(principal string) string {
	token := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = entry{principal: principal, createdAt: m.clock.Now()}
	return token
}

// Validate returns the principal for a live token. Expired entries are
// evicted as a side effect, the probed token included.
func (m *Manager) Validate(token string) (string, bool) {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for t, e := range m.entries {
		if now.Sub(e.createdAt) > m.ttl {
			delete(m.entries, t)
		}
	}

	e, ok := m.entries[token]
	if !ok {
		return "", false
	}
	return e.principal, true
}

// Revoke removes the token unconditionally. Revoking an unknown token is a
// no-op.
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
}

// ActiveCount reports live (non-expired) sessions, for operational logging.
func (m *Manager) ActiveCount() int {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, e := range m.entries {
		if now.Sub(e.createdAt) <= m.ttl {
			n++
		}
	}
	return n
}
