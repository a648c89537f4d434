package serviceimpl

import (
	"github.com/shopspring/decimal"
)

// PolicyReason explains why a referral was not applied.
type PolicyReason string

const (
	ReasonNoReferenceProvided PolicyReason = "no_reference_provided"
	ReasonNoPriceProvided     PolicyReason = "no_price_provided"
	ReasonAlreadyHasReference PolicyReason = "already_has_reference"
)

// PolicyResult is a tagged decision: callers branch on ShouldApply instead of
// catching exceptions for the ineligible cases.
type PolicyResult struct {
	ShouldApply  bool
	ReferralCode string
	Price        decimal.Decimal
	Reason       PolicyReason
}

// IsReferralEligible reports whether a non-empty code and a strictly positive
// price are present.
func IsReferralEligible(code *string, price *decimal.Decimal) bool {
	return code != nil && *code != "" && price != nil && price.IsPositive()
}

// IsFirstTimeReferralUse enforces the invariant that a customer's reference
// is set at most once.
func IsFirstTimeReferralUse(newReference *string, newPrice *decimal.Decimal, existingReference *string) bool {
	return IsReferralEligible(newReference, newPrice) && (existingReference == nil || *existingReference == "")
}

// EvaluateReferralPolicy decides whether a referral should be applied for a
// create or update request. existingReference is nil on create.
func EvaluateReferralPolicy(newReference *string, price *decimal.Decimal, existingReference *string) PolicyResult {
	if newReference == nil || *newReference == "" {
		return PolicyResult{Reason: ReasonNoReferenceProvided}
	}
	if price == nil || !price.IsPositive() {
		return PolicyResult{Reason: ReasonNoPriceProvided}
	}
	if existingReference != nil && *existingReference != "" {
		return PolicyResult{Reason: ReasonAlreadyHasReference}
	}
	return PolicyResult{
		ShouldApply:  true,
		ReferralCode: *newReference,
		Price:        *price,
	}
}
