package internal

import (
	"fmt"

	"github.com/hrportal/employee-portal/internal/notify"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypePrecondition ErrorType = "PRECONDITION_FAILED"
	ErrorTypeStorage      ErrorType = "STORAGE_ERROR"
)

type ErrorCode string

const (
	ErrCodeFieldRequired         ErrorCode = "FIELD_REQUIRED"
	ErrCodeEmailTaken            ErrorCode = "EMAIL_TAKEN"
	ErrCodePasswordTooShort      ErrorCode = "PASSWORD_TOO_SHORT"
	ErrCodeInvalidCredentials    ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeNoPendingVerification ErrorCode = "NO_PENDING_VERIFICATION"
	ErrCodeAccountNotFound       ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeLoginRequired         ErrorCode = "LOGIN_REQUIRED"
	ErrCodeAdminOnly             ErrorCode = "ADMIN_ONLY"
	ErrCodeStoreReadFailed       ErrorCode = "STORE_READ_FAILED"
	ErrCodeStoreWriteFailed      ErrorCode = "STORE_WRITE_FAILED"
)

// AppError carries the taxonomy used across the portal. Nothing here is
// fatal: callers turn every AppError into a notification and a no-op.
type AppError struct {
	Type     ErrorType
	Code     ErrorCode
	Message  string
	Severity notify.Severity
	Cause    error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:     ErrorTypeValidation,
		Code:     code,
		Message:  message,
		Severity: notify.SeverityDanger,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:     ErrorTypeUnauthorized,
		Code:     code,
		Message:  message,
		Severity: notify.SeverityWarning,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:     ErrorTypeForbidden,
		Code:     code,
		Message:  message,
		Severity: notify.SeverityDanger,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:     ErrorTypeNotFound,
		Code:     code,
		Message:  message,
		Severity: notify.SeverityDanger,
	}
}

func NewPreconditionError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:     ErrorTypePrecondition,
		Code:     code,
		Message:  message,
		Severity: notify.SeverityWarning,
	}
}

func NewStorageError(message string, code ErrorCode, cause error) *AppError {
	return &AppError{
		Type:     ErrorTypeStorage,
		Code:     code,
		Message:  message,
		Severity: notify.SeverityWarning,
		Cause:    cause,
	}
}

var (
	ErrEmailTaken = NewValidationError("An account with this email already exists", ErrCodeEmailTaken)
	// Password rule matches the registration form: at least 6 characters.
	ErrPasswordTooShort = NewValidationError("Password must be at least 6 characters", ErrCodePasswordTooShort)
	// Deliberately does not distinguish a wrong password from an unverified
	// account, so login failures never leak which one it was.
	ErrInvalidCredentials    = NewUnauthorizedError("Invalid email or password, or email not verified", ErrCodeInvalidCredentials)
	ErrNoPendingVerification = NewPreconditionError("No email is pending verification", ErrCodeNoPendingVerification)
	ErrAccountNotFound       = NewNotFoundError("No account found for this email", ErrCodeAccountNotFound)
	ErrLoginRequired         = NewUnauthorizedError("Please log in first", ErrCodeLoginRequired)
	ErrAdminOnly             = NewForbiddenError("Access denied. Admin only.", ErrCodeAdminOnly)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

// SeverityFor maps an error to the notification severity it should be
// surfaced with. Unknown errors are shown as danger.
func SeverityFor(err error) notify.Severity {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Severity
	}
	return notify.SeverityDanger
}
