package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/ports"
)

// FavoriteCommandHandler maintains favorites lists.
// Only products present in the catalog can be added; removal works on any
// identifier in the list.
type FavoriteCommandHandler struct {
	accounts ports.AccountRegistry
	catalog  ports.CatalogRegistry
}

func NewFavoriteCommandHandler(accounts ports.AccountRegistry, catalog ports.CatalogRegistry) FavoriteCommandHandler {
	return FavoriteCommandHandler{
		accounts: accounts,
		catalog:  catalog,
	}
}

// Handle returns the updated account.
func (h *FavoriteCommandHandler) Handle(ctx context.Context, cmd FavoriteCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.IsRemoval() {
		return h.accounts.Update(ctx, cmd.AccountID(), func(a *account.Account) error {
			return a.RemoveFavorite(cmd.ProductID())
		})
	}

	if _, err := h.catalog.Get(ctx, cmd.ProductID()); err != nil {
		return nil, err
	}

	return h.accounts.Update(ctx, cmd.AccountID(), func(a *account.Account) error {
		return a.AddFavorite(cmd.ProductID())
	})
}
