package queries

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetPromotionsQueryIsNotConstructed = errors.New(
		"GetPromotionsQuery must be created via NewGetPromotionsQuery constructor",
	)
)

// GetPromotionsQuery lists the seasonal promotions.
type GetPromotionsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPromotionsQuery() GetPromotionsQuery {
	return GetPromotionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPromotionsQuery) Validate() error {
	return q.guard.Validate(ErrGetPromotionsQueryIsNotConstructed)
}

type GetPromotionsQueryResponse struct {
	Description   string
	Discount      kernel.Money
	MinimumAmount kernel.Money
}

type GetPromotionsQueryHandler struct {
	promotions ports.PromotionCatalog
}

func NewGetPromotionsQueryHandler(promotions ports.PromotionCatalog) GetPromotionsQueryHandler {
	return GetPromotionsQueryHandler{promotions: promotions}
}

func (h GetPromotionsQueryHandler) Handle(ctx context.Context, query GetPromotionsQuery) ([]GetPromotionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	promotions, err := h.promotions.All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]GetPromotionsQueryResponse, 0, len(promotions))
	for _, p := range promotions {
		result = append(result, GetPromotionsQueryResponse{
			Description:   p.Description(),
			Discount:      p.Discount(),
			MinimumAmount: p.MinimumAmount(),
		})
	}
	return result, nil
}
