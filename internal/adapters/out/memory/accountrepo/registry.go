// Package accountrepo keeps registered accounts in memory.
package accountrepo

import (
	"context"
	"fmt"
	"sync"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Registry implements ports.AccountRegistry.
type Registry struct {
	mu        sync.RWMutex
	seq       kernel.Sequence
	accounts  map[kernel.ID]*account.Account
	byContact map[string]kernel.ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		accounts:  make(map[kernel.ID]*account.Account),
		byContact: make(map[string]kernel.ID),
	}
}

// Register checks contact uniqueness and stores the new account in one critical section.
func (r *Registry) Register(ctx context.Context, name string, contact kernel.ContactNumber) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acc, err := account.NewAccount(name, contact)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byContact[contact.String()]; taken {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"contact number",
			fmt.Errorf("%s is already registered", contact),
		)
	}

	id := r.seq.Next()
	if err = acc.AssignID(id); err != nil {
		return nil, err
	}
	r.accounts[id] = acc
	r.byContact[contact.String()] = id

	return acc.Clone(), nil
}

// FindByContact returns a copy of the account registered with contact.
func (r *Registry) FindByContact(ctx context.Context, contact kernel.ContactNumber) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byContact[contact.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("contact number", contact)
	}
	return r.accounts[id].Clone(), nil
}

// Get returns a copy of the account.
func (r *Registry) Get(ctx context.Context, id kernel.ID) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("account", id)
	}
	return acc.Clone(), nil
}

// Update runs mutate on a working copy and stores it only if mutate succeeds.
func (r *Registry) Update(ctx context.Context, id kernel.ID, mutate func(*account.Account) error) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("account", id)
	}

	working := acc.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	r.accounts[id] = working

	return working.Clone(), nil
}
