package services_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPromotion(t *testing.T, description string, discount, minimum float64) promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(description, kernel.MustMoney(discount), kernel.MustMoney(minimum))
	require.NoError(t, err)
	return p
}

func TestPromotionSelector_ApplyBest(t *testing.T) {
	seasonal := mustPromotion(t, "$2 off on orders above $20", 2, 20)
	big := mustPromotion(t, "$5 off on orders above $40", 5, 40)
	alsoTwo := mustPromotion(t, "$2 off weekends", 2, 10)
	selector := services.NewPromotionSelector()

	t.Run("should return amount unchanged when nothing qualifies", func(t *testing.T) {
		total, applied := selector.ApplyBest(kernel.MustMoney(12), []promotion.Promotion{seasonal, big})

		assert.Equal(t, "$12.00", total.String())
		assert.Nil(t, applied)
	})

	t.Run("should return amount unchanged without promotions", func(t *testing.T) {
		total, applied := selector.ApplyBest(kernel.MustMoney(50), nil)

		assert.Equal(t, "$50.00", total.String())
		assert.Nil(t, applied)
	})

	t.Run("should pick the largest qualifying discount", func(t *testing.T) {
		total, applied := selector.ApplyBest(kernel.MustMoney(45), []promotion.Promotion{seasonal, big})

		require.NotNil(t, applied)
		assert.Equal(t, big.Description(), applied.Description())
		assert.Equal(t, "$40.00", total.String())
	})

	t.Run("should skip larger discounts that do not qualify", func(t *testing.T) {
		total, applied := selector.ApplyBest(kernel.MustMoney(20), []promotion.Promotion{big, seasonal})

		require.NotNil(t, applied)
		assert.Equal(t, seasonal.Description(), applied.Description())
		assert.Equal(t, "$18.00", total.String())
	})

	t.Run("should prefer the first promotion on ties", func(t *testing.T) {
		_, applied := selector.ApplyBest(kernel.MustMoney(25), []promotion.Promotion{seasonal, alsoTwo})

		require.NotNil(t, applied)
		assert.Equal(t, seasonal.Description(), applied.Description())
	})
}
