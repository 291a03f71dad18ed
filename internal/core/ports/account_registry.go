package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
)

// AccountRegistry holds registered accounts. Accounts are never removed.
// Returned accounts are copies; changes go through Update.
type AccountRegistry interface {
	// Register creates an account. A contact number that is already registered
	// fails with ValueIsInvalidError.
	Register(ctx context.Context, name string, contact kernel.ContactNumber) (*account.Account, error)

	// FindByContact looks an account up by its contact number.
	// Returns ObjectNotFoundError if nobody registered with it.
	FindByContact(ctx context.Context, contact kernel.ContactNumber) (*account.Account, error)

	// Get returns an account by identifier, or ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*account.Account, error)

	// Update applies mutate to the stored account atomically and returns the result.
	// If mutate fails the stored account is left unchanged.
	Update(ctx context.Context, id kernel.ID, mutate func(*account.Account) error) (*account.Account, error)
}
