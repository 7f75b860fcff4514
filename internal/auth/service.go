// Package auth implements the simulated authentication workflows:
// registration, email-verification, login, and logout. Every workflow
// mutates the store and/or session, surfaces its outcome as a
// notification, and ends with a navigation.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrportal/employee-portal/internal"
	"github.com/hrportal/employee-portal/internal/identity"
	"github.com/hrportal/employee-portal/internal/notify"
	"github.com/hrportal/employee-portal/internal/storage"
	"github.com/hrportal/employee-portal/internal/store"
	"github.com/hrportal/employee-portal/pkg/logger"
)

// StoreRepository is the slice of the store the workflows need.
type StoreRepository interface {
	Load(ctx context.Context) (*store.Database, error)
	Save(ctx context.Context, db *store.Database) error
}

// SessionManager is the session surface the workflows drive.
type SessionManager interface {
	Login(ctx context.Context, account *store.Account) error
	Logout(ctx context.Context) error
}

// Navigator performs the navigation side effect that ends each workflow.
type Navigator interface {
	Navigate(ctx context.Context, fragment string)
}

type Service struct {
	store     StoreRepository
	substrate storage.Substrate
	session   SessionManager
	ids       identity.Generator
	notifier  notify.Notifier
	nav       Navigator
	logger    *slog.Logger
}

func NewService(
	storeRepo StoreRepository,
	substrate storage.Substrate,
	session SessionManager,
	ids identity.Generator,
	notifier notify.Notifier,
	nav Navigator,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:     storeRepo,
		substrate: substrate,
		session:   session,
		ids:       ids,
		notifier:  notifier,
		nav:       nav,
		logger:    logger,
	}
}

// Register creates an unverified User account. Validation failures and
// duplicate emails leave the store unchanged.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) error {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		s.notifier.Notify(ctx, err.Error(), internal.SeverityFor(err))
		return err
	}

	db, err := s.store.Load(ctx)
	if err != nil {
		return s.reportStorageError(ctx, "could not load accounts", err)
	}

	if db.FindAccountByEmail(dto.Email) != nil {
		s.notifier.Notify(ctx, internal.ErrEmailTaken.Message, internal.ErrEmailTaken.Severity)
		return internal.ErrEmailTaken
	}

	account := store.Account{
		ID:        s.ids.NewID(),
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Password:  dto.Password,
		Role:      store.RoleUser,
		Verified:  false,
	}
	db.Accounts = append(db.Accounts, account)

	if err := s.store.Save(ctx, db); err != nil {
		// The in-memory value may now diverge from the persisted one;
		// the operation still proceeds.
		s.notifyStorageError(ctx, "could not save your registration", err)
	}

	if err := s.substrate.Set(ctx, storage.UnverifiedEmailKey, account.Email); err != nil {
		s.notifyStorageError(ctx, "could not record pending verification", err)
	}

	s.logger.Info("account registered", "email", account.Email)
	s.notifier.Notify(ctx, "Registration successful. Please verify your email.", notify.SeveritySuccess)
	s.nav.Navigate(ctx, "#/verify-email")
	return nil
}

// Verify marks the pending account as verified and arms the one-shot
// "just verified" marker consumed by the login view.
func (s *Service) Verify(ctx context.Context) error {
	email, present, err := s.substrate.Get(ctx, storage.UnverifiedEmailKey)
	if err != nil {
		return s.reportStorageError(ctx, "could not read pending verification", err)
	}
	if !present {
		s.notifier.Notify(ctx, internal.ErrNoPendingVerification.Message, internal.ErrNoPendingVerification.Severity)
		return internal.ErrNoPendingVerification
	}

	db, err := s.store.Load(ctx)
	if err != nil {
		return s.reportStorageError(ctx, "could not load accounts", err)
	}

	account := db.FindAccountByEmail(email)
	if account == nil {
		s.notifier.Notify(ctx, internal.ErrAccountNotFound.Message, internal.ErrAccountNotFound.Severity)
		return internal.ErrAccountNotFound
	}

	account.Verified = true
	if err := s.store.Save(ctx, db); err != nil {
		s.notifyStorageError(ctx, "could not save verification", err)
	}

	if err := s.substrate.Delete(ctx, storage.UnverifiedEmailKey); err != nil {
		s.notifyStorageError(ctx, "could not clear pending verification", err)
	}
	if err := s.substrate.Set(ctx, storage.EmailVerifiedKey, "true"); err != nil {
		s.notifyStorageError(ctx, "could not record verification", err)
	}

	s.logger.Info("account verified", "email", account.Email)
	s.notifier.Notify(ctx, "Email verified. You can now log in.", notify.SeveritySuccess)
	s.nav.Navigate(ctx, "#/login")
	return nil
}

// Login requires an exact match on normalized email, password, and
// verified=true. Wrong password and unverified account produce the same
// error on purpose.
func (s *Service) Login(ctx context.Context, dto LoginDTO) error {
	if err := dto.Validate(); err != nil {
		s.notifier.Notify(ctx, err.Error(), internal.SeverityFor(err))
		return err
	}

	db, err := s.store.Load(ctx)
	if err != nil {
		return s.reportStorageError(ctx, "could not load accounts", err)
	}

	account := db.FindAccountByEmail(dto.Email)
	if account == nil || account.Password != dto.Password || !account.Verified {
		s.notifier.Notify(ctx, internal.ErrInvalidCredentials.Message, internal.ErrInvalidCredentials.Severity)
		return internal.ErrInvalidCredentials
	}

	if err := s.session.Login(ctx, account); err != nil {
		s.notifyStorageError(ctx, "could not persist your session", err)
	}

	// Downstream collaborators (router, views) see the principal through
	// the context rather than through a shared session reference.
	ctx = internal.ContextWithPrincipalEmail(ctx, account.Email)
	ctx = logger.With(ctx, "principal", account.Email)

	logger.From(ctx).Info("login successful")
	s.notifier.Notify(ctx, fmt.Sprintf("Welcome back, %s!", account.DisplayName()), notify.SeveritySuccess)
	s.nav.Navigate(ctx, "#/profile")
	return nil
}

// Logout clears the session and returns to home.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.Logout(ctx); err != nil {
		s.notifyStorageError(ctx, "could not clear your session", err)
	}

	s.logger.Info("logged out")
	s.notifier.Notify(ctx, "You have been logged out.", notify.SeverityInfo)
	s.nav.Navigate(ctx, "#/")
	return nil
}

// notifyStorageError surfaces a failed write as a warning toast. The
// workflow proceeds with the in-memory value.
func (s *Service) notifyStorageError(ctx context.Context, message string, err error) {
	s.logger.Error(message, "code", internal.ErrCodeStoreWriteFailed, "error", err)
	s.notifier.Notify(ctx, message, notify.SeverityWarning)
}

// reportStorageError surfaces a failed read and aborts the workflow.
func (s *Service) reportStorageError(ctx context.Context, message string, err error) error {
	appErr := internal.NewStorageError(message, internal.ErrCodeStoreReadFailed, err)
	s.logger.Error(message, "code", appErr.Code, "error", err)
	s.notifier.Notify(ctx, message, appErr.Severity)
	return appErr
}
