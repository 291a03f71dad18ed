package queries

import (
	"context"
	"errors"

	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// GetProfileQueryHandler joins an account with the catalog entries of its favorites.
// Favorites that are no longer in the catalog are skipped.
type GetProfileQueryHandler struct {
	accounts ports.AccountRegistry
	catalog  ports.CatalogRegistry
}

func NewGetProfileQueryHandler(accounts ports.AccountRegistry, catalog ports.CatalogRegistry) GetProfileQueryHandler {
	return GetProfileQueryHandler{accounts: accounts, catalog: catalog}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	acc, err := h.accounts.Get(ctx, query.AccountID())
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	profile := GetProfileQueryResponse{
		ID:            acc.ID(),
		Name:          acc.Name(),
		Contact:       acc.Contact().String(),
		Address:       acc.Address(),
		HasAddress:    acc.HasAddress(),
		LoyaltyPoints: acc.LoyaltyPoints(),
		Favorites:     make([]ProductResponse, 0, len(acc.Favorites())),
	}

	for _, id := range acc.Favorites() {
		p, getErr := h.catalog.Get(ctx, id)
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			continue
		}
		if getErr != nil {
			return GetProfileQueryResponse{}, getErr
		}
		profile.Favorites = append(profile.Favorites, newProductResponse(p))
	}

	return profile, nil
}
