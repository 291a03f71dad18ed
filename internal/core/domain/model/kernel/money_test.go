package kernel_test

import (
	"math"
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive cents", func(t *testing.T) {
		zero, err := kernel.NewMoney(0)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())

		m, err := kernel.NewMoney(1250)
		require.NoError(t, err)
		assert.Equal(t, int64(1250), m.Cents())
	})

	t.Run("should reject negative cents", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	testCases := []struct {
		in       float64
		cents    int64
		rendered string
	}{
		{10.0, 1000, "$10.00"},
		{12.0, 1200, "$12.00"},
		{19.999, 2000, "$20.00"},
		{0.05, 5, "$0.05"},
		{7.1, 710, "$7.10"},
	}

	for _, tc := range testCases {
		t.Run(tc.rendered, func(t *testing.T) {
			m, err := kernel.NewMoneyFromFloat(tc.in)

			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents())
			assert.Equal(t, tc.rendered, m.String())
		})
	}

	t.Run("should reject non finite input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(math.NaN())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewMoneyFromFloat(math.Inf(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-2)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	twenty := kernel.MustMoney(20)
	two := kernel.MustMoney(2)

	t.Run("Units truncates cents", func(t *testing.T) {
		assert.Equal(t, int64(12), kernel.MustMoney(12.99).Units())
	})

	t.Run("Add and Sub", func(t *testing.T) {
		assert.Equal(t, kernel.MustMoney(22), twenty.Add(two))
		assert.Equal(t, kernel.MustMoney(18), twenty.Sub(two))
	})

	t.Run("Sub floors at zero", func(t *testing.T) {
		assert.True(t, two.Sub(twenty).IsZero())
	})

	t.Run("Percent rounds to the cent", func(t *testing.T) {
		assert.Equal(t, kernel.MustMoney(0.9), kernel.MustMoney(18).Percent(5))
		assert.Equal(t, int64(51), kernel.MustMoney(10.25).Percent(5).Cents())
	})

	t.Run("LessThan", func(t *testing.T) {
		assert.True(t, two.LessThan(twenty))
		assert.False(t, twenty.LessThan(twenty))
	})

	t.Run("Float", func(t *testing.T) {
		assert.InDelta(t, 20.0, twenty.Float(), 1e-9)
	})
}
