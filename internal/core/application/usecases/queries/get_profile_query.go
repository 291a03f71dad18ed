package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetProfileQueryIsNotConstructed = errors.New(
		"GetProfileQuery must be created via NewGetProfileQuery constructor",
	)
)

// GetProfileQuery reads an account together with its favorite products.
type GetProfileQuery struct {
	accountID kernel.ID
	guard     guard.ConstructorGuard
}

func NewGetProfileQuery(accountID kernel.ID) (GetProfileQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) AccountID() kernel.ID {
	return q.accountID
}

// GetProfileQueryResponse is the customer profile read model.
type GetProfileQueryResponse struct {
	ID            kernel.ID
	Name          string
	Contact       string
	Address       string
	HasAddress    bool
	LoyaltyPoints int64
	Favorites     []ProductResponse
}
