// Package store provides session persistence interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/edutena/pathways/internal/domain"
)

// ErrUnknownMutation is returned when Apply receives a mutation variant
// outside the closed domain set. This is a programming error and must
// fail the request rather than corrupt other fields.
var ErrUnknownMutation = errors.New("store: unknown mutation variant")

// Repository defines the interface for persisting assessment sessions.
type Repository interface {
	// Get retrieves a session, or nil when the phone has never written
	// on this channel.
	Get(ctx context.Context, key domain.Key) (*domain.Session, error)

	// Create inserts a fresh session in the language-selection state.
	Create(ctx context.Context, key domain.Key) (*domain.Session, error)

	// Apply persists a transition's mutations in a single transaction,
	// so a failed transition leaves the stored session untouched.
	Apply(ctx context.Context, key domain.Key, muts []domain.Mutation) error

	// Reset clears every field except the phone and returns the session
	// to the language-selection state. The record itself is kept.
	Reset(ctx context.Context, key domain.Key) error

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
