// Package session tracks the current admin session and persists it across
// restarts. A persisted session is trusted until explicit logout; there is no
// refresh or expiry.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/omegapc/omegacms/internal/backend"
	"github.com/omegapc/omegacms/internal/models"
	"github.com/omegapc/omegacms/internal/store"
)

// Manager holds the current user, or none. Constructed once at startup and
// passed to every consumer.
type Manager struct {
	store  store.Store
	client backend.Client
	logger *slog.Logger

	mu    sync.RWMutex
	user  *models.User
	token string
}

// NewManager creates an anonymous session manager.
func NewManager(s store.Store, client backend.Client, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: s, client: client, logger: logger}
}

// Restore loads a previously persisted session. A corrupt session record is
// cleared and the manager stays anonymous; this never returns an error to the
// caller because a missing session is a normal state.
func (m *Manager) Restore() {
	raw, err := m.store.Get(store.KeyUserSession)
	if err != nil {
		return
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		m.logger.Warn("session: corrupt record cleared", slog.String("error", err.Error()))
		_ = m.store.Delete(store.KeyUserSession)
		_ = m.store.Delete(store.KeyToken)
		return
	}
	token := store.Load(m.store, store.KeyToken, "")

	m.mu.Lock()
	m.user = &user
	m.token = token
	m.mu.Unlock()

	m.logger.Info("session: restored", slog.String("email", user.Email))
}

// Login authenticates against the backend. On success the user record and
// token are persisted first, then the in-memory state flips to authenticated.
// On failure the state is unchanged and the error propagates.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	sess, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := store.Save(m.store, store.KeyUserSession, sess.User); err != nil {
		return nil, fmt.Errorf("session: persist user: %w", err)
	}
	if err := store.Save(m.store, store.KeyToken, sess.Token); err != nil {
		return nil, fmt.Errorf("session: persist token: %w", err)
	}

	m.mu.Lock()
	user := sess.User
	m.user = &user
	m.token = sess.Token
	m.mu.Unlock()

	m.logger.Info("session: login", slog.String("email", email))
	return &user, nil
}

// Logout clears the in-memory state and both persisted slots.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()

	_ = m.store.Delete(store.KeyUserSession)
	_ = m.store.Delete(store.KeyToken)

	m.logger.Info("session: logout")
}

// User returns a copy of the current user, or nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the current session token, or "".
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Authenticated reports whether a user is signed in.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}
