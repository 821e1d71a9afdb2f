package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ifind-attorney/internal/domain/model"
)

func TestEstimateFees(t *testing.T) {
	svc := NewFeesService()

	t.Run("single band", func(t *testing.T) {
		estimate, err := svc.Estimate(model.FeeCategoryPropertySale, 3_000_000)
		require.NoError(t, err)
		assert.InDelta(t, 150_000, estimate.Fee, 0.01) // 3M at 5%
		assert.False(t, estimate.MinimumApplied)
		require.Len(t, estimate.Breakdown, 1)
		assert.InDelta(t, 3_000_000, estimate.Breakdown[0].AmountInBand, 0.01)
	})

	t.Run("marginal bands accumulate", func(t *testing.T) {
		estimate, err := svc.Estimate(model.FeeCategoryPropertySale, 30_000_000)
		require.NoError(t, err)
		// 5M at 5% + 15M at 3.75% + 10M at 2.5%
		assert.InDelta(t, 250_000+562_500+250_000, estimate.Fee, 0.01)
		require.Len(t, estimate.Breakdown, 3)

		var sum float64
		for _, line := range estimate.Breakdown {
			sum += line.Fee
		}
		assert.InDelta(t, estimate.Fee, sum, 0.01, "breakdown sums to the total")
	})

	t.Run("unbounded top band", func(t *testing.T) {
		estimate, err := svc.Estimate(model.FeeCategoryPropertySale, 80_000_000)
		require.NoError(t, err)
		require.Len(t, estimate.Breakdown, 4)
		top := estimate.Breakdown[3]
		assert.InDelta(t, 30_000_000, top.AmountInBand, 0.01)
		assert.Contains(t, top.Band, "Above")
	})

	t.Run("minimum fee applies to small amounts", func(t *testing.T) {
		estimate, err := svc.Estimate(model.FeeCategoryPropertySale, 1_000_000)
		require.NoError(t, err)
		assert.True(t, estimate.MinimumApplied)
		assert.InDelta(t, 100_000, estimate.Fee, 0.01)
	})

	t.Run("monotonic in amount", func(t *testing.T) {
		for _, category := range []string{model.FeeCategoryPropertySale, model.FeeCategoryLease, model.FeeCategoryMortgage} {
			previous := 0.0
			for amount := 500_000.0; amount <= 100_000_000; amount *= 2 {
				estimate, err := svc.Estimate(category, amount)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, estimate.Fee, previous, "category %s amount %.0f", category, amount)
				previous = estimate.Fee
			}
		}
	})

	t.Run("category is case-insensitive", func(t *testing.T) {
		estimate, err := svc.Estimate("  Property_Sale ", 3_000_000)
		require.NoError(t, err)
		assert.Equal(t, model.FeeCategoryPropertySale, estimate.Category)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.Estimate("divorce", 1_000_000)
		assert.ErrorIs(t, err, ErrUnknownFeeCategory)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := svc.Estimate(model.FeeCategoryLease, 0)
		assert.ErrorIs(t, err, ErrInvalidFeeAmount)
	})
}

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "5,000,000", formatNaira(5_000_000))
	assert.Equal(t, "950", formatNaira(950))
	assert.Equal(t, "1,000", formatNaira(1_000))
}
