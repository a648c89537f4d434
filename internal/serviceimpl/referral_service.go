package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/DevFolio/go-client-referral/models"
	"github.com/DevFolio/go-client-referral/response"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type referralService struct {
	DB *gorm.DB
}

func NewReferralService(db *gorm.DB) *referralService {
	return &referralService{DB: db}
}

func noOpResult() *response.ReferralProcessResult {
	return &response.ReferralProcessResult{
		ReferrerCode:     nil,
		ReferrerDiscount: 0,
		EmailSent:        false,
	}
}

// ProcessReferral credits one referral to the customer owning code. The
// referrer update and the ledger insert run in a single transaction with the
// referrer row locked, so concurrent applications against the same referrer
// serialize instead of losing increments.
//
// An unknown code, a referrer without a quoted price, or a non-positive
// price are silent no-ops: a mistyped code must never fail the referred
// customer's own signup. Persistence failures are returned to the caller,
// who decides whether they are fatal to the surrounding operation.
func (s *referralService) ProcessReferral(code string, price decimal.Decimal, referredCustomerID uint, discountsEnabled bool) (*response.ReferralProcessResult, error) {
	if code == "" || !price.IsPositive() {
		return noOpResult(), nil
	}

	var referrer models.Customer
	if err := s.DB.Where("referral_code = ?", code).First(&referrer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return noOpResult(), nil
		}
		return nil, fmt.Errorf("failed to look up referrer for code %s: %w", code, err)
	}
	if referrer.Price == nil || !referrer.Price.IsPositive() {
		return noOpResult(), nil
	}

	var result *response.ReferralProcessResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Re-fetch under a row lock: the count read below must not race with
		// a concurrent referral against the same referrer.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&referrer, referrer.ID).Error; err != nil {
			return fmt.Errorf("failed to lock referrer %d: %w", referrer.ID, err)
		}
		if referrer.Price == nil || !referrer.Price.IsPositive() {
			result = noOpResult()
			return nil
		}

		basePrice := *referrer.Price
		newCount := referrer.ReferralCount + 1
		newRate := ComputeDiscountRate(newCount)

		stages := DiscountStages(basePrice, newCount)
		stage := stages[newCount-1]

		updates := map[string]interface{}{
			"referral_count": newCount,
			"total_earnings": ComputeTotalEarnings(basePrice, newCount),
		}
		if discountsEnabled {
			// The flag suppresses the monetary effect on the referrer's
			// record while the count and earnings bookkeeping continue.
			updates["discount_rate"] = newRate
			updates["final_price"] = ComputeDiscountedPrice(basePrice, newCount)
		}
		if err := tx.Model(&models.Customer{}).Where("id = ?", referrer.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update referrer %d: %w", referrer.ID, err)
		}

		var referredReferenceID string
		if err := tx.Model(&models.Customer{}).Select("reference_id").
			Where("id = ?", referredCustomerID).Row().Scan(&referredReferenceID); err != nil {
			referredReferenceID = ""
		}

		txn := &models.ReferralTransaction{
			ReferrerCode:                code,
			ReferredCustomerID:          referredCustomerID,
			ReferredCustomerReferenceID: referredReferenceID,
			DiscountRate:                newRate,
			OriginalPrice:               stage.PriceBefore,
			FinalPrice:                  stage.PriceAfter,
			ReferralLevel:               stage.Level,
			InvoiceStatus:               "pending",
			EmailSent:                   false,
		}
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("failed to create referral transaction: %w", err)
		}

		result = &response.ReferralProcessResult{
			ReferrerCode:            &referrer.ReferralCode,
			ReferrerDiscount:        newRate,
			ReferrerOriginalPrice:   &stage.PriceBefore,
			ReferrerDiscountedPrice: &stage.PriceAfter,
			EmailSent:               false,
			NewReferralCount:        newCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
