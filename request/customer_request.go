package request

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateCustomerRequest struct {
	FirstName     string           `json:"firstName" binding:"required"`
	LastName      string           `json:"lastName" binding:"required"`
	Company       *string          `json:"company"`
	Email         string           `json:"email" binding:"required"`
	Phone         *string          `json:"phone"`
	Address       *string          `json:"address"`
	City          *string          `json:"city"`
	Postcode      *string          `json:"postcode"`
	Price         *decimal.Decimal `json:"price"`
	Reference     *string          `json:"reference"`     // referral code this customer signed up with
	PreferredCode *string          `json:"preferredCode"` // own referral code; generated when empty
}

type UpdateCustomerRequest struct {
	FirstName     *string          `json:"firstName"`
	LastName      *string          `json:"lastName"`
	Company       *string          `json:"company"`
	Email         *string          `json:"email"`
	Phone         *string          `json:"phone"`
	Address       *string          `json:"address"`
	City          *string          `json:"city"`
	Postcode      *string          `json:"postcode"`
	Price         *decimal.Decimal `json:"price"`
	Reference     *string          `json:"reference"`
	ReferralCount *int64           `json:"referralCount"`
}

type GetCustomersRequest struct {
	ID                   *uint                `form:"id"`
	ReferenceID          *string              `form:"referenceID"`
	Email                *string              `form:"email"`
	ReferralCode         *string              `form:"referralCode"`
	Reference            *string              `form:"reference"`
	City                 *string              `form:"city"`
	Search               *string              `form:"search"` // matches first name, last name or company
	IsReferred           *bool                `form:"isReferred"`
	MinReferralCount     *int64               `form:"minReferralCount"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetCustomersRequest(req GetCustomersRequest, query *gorm.DB) *gorm.DB {
	// Filters carry the explicit table name so the builder also works inside
	// joined aggregator queries.
	if req.ID != nil {
		query = query.Where("customers.id = ?", *req.ID)
	}
	if req.ReferenceID != nil {
		query = query.Where("customers.reference_id = ?", *req.ReferenceID)
	}
	if req.Email != nil {
		query = query.Where("customers.email = ?", *req.Email)
	}
	if req.ReferralCode != nil {
		query = query.Where("customers.referral_code = ?", *req.ReferralCode)
	}
	if req.Reference != nil {
		query = query.Where("customers.reference = ?", *req.Reference)
	}
	if req.City != nil {
		query = query.Where("customers.city = ?", *req.City)
	}
	if req.Search != nil && *req.Search != "" {
		pattern := "%" + *req.Search + "%"
		query = query.Where(
			"customers.first_name LIKE ? OR customers.last_name LIKE ? OR customers.company LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if req.IsReferred != nil {
		if *req.IsReferred {
			query = query.Where("customers.reference IS NOT NULL")
		} else {
			query = query.Where("customers.reference IS NULL")
		}
	}
	if req.MinReferralCount != nil {
		query = query.Where("customers.referral_count >= ?", *req.MinReferralCount)
	}
	return query
}
