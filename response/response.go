package response

import (
	"github.com/shopspring/decimal"
	"time"
)

// ReferralProcessResult is returned by one referral application. A nil
// ReferrerCode means the code did not match any customer and nothing was
// persisted.
type ReferralProcessResult struct {
	ReferrerCode            *string          `json:"referrerCode"`
	ReferrerDiscount        int64            `json:"referrerDiscount"`
	ReferrerOriginalPrice   *decimal.Decimal `json:"referrerOriginalPrice"`
	ReferrerDiscountedPrice *decimal.Decimal `json:"referrerDiscountedPrice"`
	EmailSent               bool             `json:"emailSent"`
	NewReferralCount        int64            `json:"newReferralCount"`
}

// ReferralNotification carries everything an external mailer needs to tell a
// referrer about a new credit.
type ReferralNotification struct {
	TransactionID   uint            `json:"transactionID"`
	ReferrerCode    string          `json:"referrerCode"`
	ReferrerEmail   string          `json:"referrerEmail"`
	ReferrerName    string          `json:"referrerName"`
	DiscountRate    int64           `json:"discountRate"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	ReferralLevel   int64           `json:"referralLevel"`
}

// CustomerStats is a per-customer referral summary reconciled against the
// transaction ledger.
type CustomerStats struct {
	ID            uint            `json:"id"`
	ReferenceID   string          `json:"referenceID"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	ReferralCode  string          `json:"referralCode"`
	ReferralCount int64           `json:"referralCount"`
	TotalEarned   decimal.Decimal `json:"totalEarned"`
	IsReferred    bool            `json:"isReferred"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
