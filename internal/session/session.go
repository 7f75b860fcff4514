// Package session tracks the currently authenticated principal and the
// visibility flags derived from it. Only a lightweight token (the account
// email) is ever persisted; the principal itself is rehydrated from the
// store on startup.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrportal/employee-portal/internal"
	"github.com/hrportal/employee-portal/internal/storage"
	"github.com/hrportal/employee-portal/internal/store"
)

type Manager struct {
	substrate storage.Substrate
	store     *store.Repository
	logger    *slog.Logger
	principal *store.Account
}

func NewManager(substrate storage.Substrate, storeRepo *store.Repository, logger *slog.Logger) *Manager {
	return &Manager{substrate: substrate, store: storeRepo, logger: logger}
}

// SetAuthState sets or clears the principal. The derived flags
// (Authenticated, IsAdmin) are what the rendering layer keys off.
func (m *Manager) SetAuthState(authenticated bool, account *store.Account) {
	if authenticated && account != nil {
		m.principal = account
		return
	}
	m.principal = nil
}

func (m *Manager) Principal() *store.Account {
	return m.principal
}

func (m *Manager) Authenticated() bool {
	return m.principal != nil
}

func (m *Manager) IsAdmin() bool {
	return m.principal != nil && m.principal.IsAdmin()
}

func (m *Manager) DisplayName() string {
	if m.principal == nil {
		return ""
	}
	return m.principal.DisplayName()
}

// Login authenticates as the given account and persists the session token
// so a later startup can restore the session.
func (m *Manager) Login(ctx context.Context, account *store.Account) error {
	if err := m.substrate.Set(ctx, storage.SessionEmailKey, store.NormalizeEmail(account.Email)); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	m.SetAuthState(true, account)
	return nil
}

// Logout clears the persisted token and the in-memory principal.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.substrate.Delete(ctx, storage.SessionEmailKey); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	m.SetAuthState(false, nil)
	return nil
}

// Restore rehydrates the session from the persisted token. The token is
// honored only if a verified account with a matching email still exists in
// the store; otherwise the stale token is discarded silently.
func (m *Manager) Restore(ctx context.Context) error {
	// Startup reads against a slow substrate should not hang the portal;
	// zero picks the default timeout.
	ctx, cancel := internal.WithTimeout(ctx, 0)
	defer cancel()

	email, present, err := m.substrate.Get(ctx, storage.SessionEmailKey)
	if err != nil {
		return fmt.Errorf("failed to read session token: %w", err)
	}
	if !present {
		return nil
	}

	db, err := m.store.Load(ctx)
	if err != nil {
		return err
	}

	account := db.FindAccountByEmail(email)
	if account == nil || !account.Verified {
		m.logger.Debug("discarding stale session token", "email", email)
		if err := m.substrate.Delete(ctx, storage.SessionEmailKey); err != nil {
			return fmt.Errorf("failed to discard stale session token: %w", err)
		}
		return nil
	}

	m.SetAuthState(true, account)
	return nil
}
