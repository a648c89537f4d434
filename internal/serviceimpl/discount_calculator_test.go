package serviceimpl_test

import (
	"testing"

	"github.com/DevFolio/go-client-referral/internal/serviceimpl"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeDiscountRate(t *testing.T) {
	assert.Equal(t, int64(0), serviceimpl.ComputeDiscountRate(0))
	assert.Equal(t, int64(3), serviceimpl.ComputeDiscountRate(1))
	assert.Equal(t, int64(6), serviceimpl.ComputeDiscountRate(2))
	assert.Equal(t, int64(9), serviceimpl.ComputeDiscountRate(3))
	assert.Equal(t, int64(9), serviceimpl.ComputeDiscountRate(4))
	assert.Equal(t, int64(9), serviceimpl.ComputeDiscountRate(100))
}

func TestComputeDiscountedPrice(t *testing.T) {
	base := decimal.NewFromInt(1000)

	assert.Equal(t, "1000", serviceimpl.ComputeDiscountedPrice(base, 0).String())
	assert.Equal(t, "970", serviceimpl.ComputeDiscountedPrice(base, 1).String())
	assert.Equal(t, "911.8", serviceimpl.ComputeDiscountedPrice(base, 2).String())
	assert.Equal(t, "829.738", serviceimpl.ComputeDiscountedPrice(base, 3).String())

	// Counts past the cap do not change the stored price.
	assert.Equal(t, "829.738", serviceimpl.ComputeDiscountedPrice(base, 4).String())
	assert.Equal(t, "829.738", serviceimpl.ComputeDiscountedPrice(base, 10).String())
}

func TestComputeInvoicePreviewPrice(t *testing.T) {
	base := decimal.NewFromInt(1000)

	assert.Equal(t, "970", serviceimpl.ComputeInvoicePreviewPrice(base, 1).String())
	assert.Equal(t, "911.8", serviceimpl.ComputeInvoicePreviewPrice(base, 2).String())
	// The per-stage rounding makes the third stage land on cents, unlike the
	// unrounded chain which keeps the full 829.738.
	assert.Equal(t, "829.74", serviceimpl.ComputeInvoicePreviewPrice(base, 3).String())

	odd := decimal.NewFromFloat(333.33)
	preview := serviceimpl.ComputeInvoicePreviewPrice(odd, 3)
	assert.Equal(t, int32(-2), preview.Exponent(), "preview prices stay at cent precision")
}

func TestDiscountStages(t *testing.T) {
	base := decimal.NewFromInt(1000)

	assert.Nil(t, serviceimpl.DiscountStages(base, 0))

	stages := serviceimpl.DiscountStages(base, 5)
	assert.Equal(t, 5, len(stages))

	assert.Equal(t, int64(1), stages[0].Level)
	assert.Equal(t, int64(3), stages[0].Rate)
	assert.Equal(t, "1000", stages[0].PriceBefore.String())
	assert.Equal(t, "30", stages[0].Amount.String())
	assert.Equal(t, "970", stages[0].PriceAfter.String())

	assert.Equal(t, int64(6), stages[1].Rate)
	assert.Equal(t, "58.2", stages[1].Amount.String())
	assert.Equal(t, "911.8", stages[1].PriceAfter.String())

	assert.Equal(t, int64(9), stages[2].Rate)
	assert.Equal(t, "82.062", stages[2].Amount.String())
	assert.Equal(t, "829.738", stages[2].PriceAfter.String())

	// Bonus stages past the cap fall back to the flat rate and keep walking
	// down the running price.
	assert.Equal(t, int64(4), stages[3].Level)
	assert.Equal(t, int64(3), stages[3].Rate)
	assert.Equal(t, "829.738", stages[3].PriceBefore.String())
	assert.Equal(t, "24.89214", stages[3].Amount.String())
	assert.Equal(t, "804.84586", stages[3].PriceAfter.String())

	assert.Equal(t, int64(5), stages[4].Level)
	assert.Equal(t, int64(3), stages[4].Rate)
	assert.Equal(t, "24.1453758", stages[4].Amount.String())
}

func TestComputeTotalEarnings(t *testing.T) {
	base := decimal.NewFromInt(1000)

	assert.Equal(t, "0", serviceimpl.ComputeTotalEarnings(base, 0).String())
	assert.Equal(t, "30", serviceimpl.ComputeTotalEarnings(base, 1).String())
	assert.Equal(t, "170.262", serviceimpl.ComputeTotalEarnings(base, 3).String())
	assert.Equal(t, "219.2995158", serviceimpl.ComputeTotalEarnings(base, 5).String())

	// At or below the cap earnings equal base minus final price.
	final := serviceimpl.ComputeDiscountedPrice(base, 3)
	assert.Equal(t, base.Sub(final).String(), serviceimpl.ComputeTotalEarnings(base, 3).String())

	assert.Equal(t, "15", serviceimpl.ComputeTotalEarnings(decimal.NewFromInt(500), 1).String())
}
