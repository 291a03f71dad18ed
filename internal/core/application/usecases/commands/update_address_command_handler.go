package commands

import (
	"context"
	"fmt"
	"slices"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// UpdateAddressCommandHandler saves delivery addresses inside the served areas.
// An empty area list accepts any area.
type UpdateAddressCommandHandler struct {
	accounts ports.AccountRegistry
	areas    []string
}

func NewUpdateAddressCommandHandler(accounts ports.AccountRegistry, areas []string) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		accounts: accounts,
		areas:    slices.Clone(areas),
	}
}

// Handle returns the updated account.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if len(h.areas) > 0 && !slices.Contains(h.areas, cmd.Area()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("area", fmt.Errorf("%q is not a delivery area", cmd.Area()))
	}

	return h.accounts.Update(ctx, cmd.AccountID(), func(a *account.Account) error {
		return a.UpdateAddress(cmd.Address())
	})
}
