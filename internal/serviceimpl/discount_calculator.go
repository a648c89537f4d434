package serviceimpl

import (
	"github.com/shopspring/decimal"
)

// The discount schedule: referral n (for n = 1..3) subtracts n*3 percent of
// the running price, so stages compound multiplicatively. Referrals beyond
// the third do not raise the base rate; each one is a flat bonus stage of
// bonusStageRate percent tracked in the ledger only.
const (
	ratePerReferral  int64 = 3
	maxDiscountRate  int64 = 9
	maxCompoundStage int64 = 3
	bonusStageRate   int64 = 3
)

var oneHundred = decimal.NewFromInt(100)

// ComputeDiscountRate returns the stored percentage for a referral count:
// min(n*3, 9).
func ComputeDiscountRate(referralCount int64) int64 {
	rate := referralCount * ratePerReferral
	if rate > maxDiscountRate {
		return maxDiscountRate
	}
	return rate
}

// ComputeDiscountedPrice applies the staged schedule to originalPrice.
// Counts above 3 are ignored here: bonus stages live in the ledger, not in
// the customer's stored final price. The chain is deliberately unrounded;
// ComputeInvoicePreviewPrice is the rounded variant.
func ComputeDiscountedPrice(originalPrice decimal.Decimal, referralCount int64) decimal.Decimal {
	price := originalPrice
	stages := referralCount
	if stages > maxCompoundStage {
		stages = maxCompoundStage
	}
	for i := int64(1); i <= stages; i++ {
		percentage := decimal.NewFromInt(i * ratePerReferral)
		price = price.Sub(price.Mul(percentage).Div(oneHundred))
	}
	return price
}

// ComputeInvoicePreviewPrice is the invoice-preview variant of
// ComputeDiscountedPrice: each stage is rounded to cents before the next one
// is applied. It is intentionally a separate computation from the unrounded
// server-side chain and must not be unified with it.
func ComputeInvoicePreviewPrice(originalPrice decimal.Decimal, referralCount int64) decimal.Decimal {
	price := originalPrice
	stages := referralCount
	if stages > maxCompoundStage {
		stages = maxCompoundStage
	}
	for i := int64(1); i <= stages; i++ {
		percentage := decimal.NewFromInt(i * ratePerReferral)
		price = price.Sub(price.Mul(percentage).Div(oneHundred)).Round(2)
	}
	return price
}

// DiscountStage is one applied discount step over a referrer's base price.
type DiscountStage struct {
	Level       int64
	Rate        int64
	PriceBefore decimal.Decimal
	Amount      decimal.Decimal
	PriceAfter  decimal.Decimal
}

// DiscountStages expands a referral count into the full stage sequence over
// basePrice, including the flat bonus stages past the compounding cap. Each
// stage's amount is taken off the running price of the sequence.
func DiscountStages(basePrice decimal.Decimal, referralCount int64) []DiscountStage {
	if referralCount <= 0 {
		return nil
	}
	stages := make([]DiscountStage, 0, referralCount)
	price := basePrice
	for i := int64(1); i <= referralCount; i++ {
		rate := i * ratePerReferral
		if i > maxCompoundStage {
			rate = bonusStageRate
		}
		amount := price.Mul(decimal.NewFromInt(rate)).Div(oneHundred)
		after := price.Sub(amount)
		stages = append(stages, DiscountStage{
			Level:       i,
			Rate:        rate,
			PriceBefore: price,
			Amount:      amount,
			PriceAfter:  after,
		})
		price = after
	}
	return stages
}

// ComputeTotalEarnings is the cumulative monetary value of all discounts a
// referrer has earned: the sum of per-stage amounts across every triggered
// stage, bonus stages included. For counts at or below the cap this equals
// basePrice minus the final price; beyond it the bonus stages keep adding.
func ComputeTotalEarnings(basePrice decimal.Decimal, referralCount int64) decimal.Decimal {
	total := decimal.Zero
	for _, stage := range DiscountStages(basePrice, referralCount) {
		total = total.Add(stage.Amount)
	}
	return total
}
