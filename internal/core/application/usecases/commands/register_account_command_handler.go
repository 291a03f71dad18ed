package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/ports"
)

// RegisterAccountCommandHandler creates customer accounts.
// A contact number may be registered once; a second attempt fails with
// ValueIsInvalidError from the registry.
type RegisterAccountCommandHandler struct {
	accounts ports.AccountRegistry
}

func NewRegisterAccountCommandHandler(accounts ports.AccountRegistry) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		accounts: accounts,
	}
}

// Handle registers the account and returns it with its identifier assigned.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.accounts.Register(ctx, cmd.Name(), cmd.Contact())
}
