// Package storage provides the key-value substrate the portal persists
// through: string keys to string values, synchronous, single writer.
package storage

import "context"

// Well-known keys. The store blob and the small session/marker flags are
// the only values the portal writes.
const (
	StoreBlobKey       = "portal_db"
	SessionEmailKey    = "session_email"
	UnverifiedEmailKey = "unverified_email"
	EmailVerifiedKey   = "email_verified"
)

type Substrate interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
