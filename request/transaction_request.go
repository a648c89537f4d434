package request

import "gorm.io/gorm"

type GetTransactionsRequest struct {
	ID                          *uint                `form:"id"`
	ReferrerCode                *string              `form:"referrerCode"`
	ReferredCustomerID          *uint                `form:"referredCustomerID"`
	ReferredCustomerReferenceID *string              `form:"referredCustomerReferenceID"`
	ReferralLevel               *int64               `form:"referralLevel"`
	InvoiceStatus               *string              `form:"invoiceStatus"`
	EmailSent                   *bool                `form:"emailSent"`
	PaginationConditions        PaginationConditions `form:"paginationConditions"`
}

func ApplyGetTransactionsRequest(req GetTransactionsRequest, query *gorm.DB) *gorm.DB {
	if req.ID != nil {
		query = query.Where("referral_transactions.id = ?", *req.ID)
	}
	if req.ReferrerCode != nil {
		query = query.Where("referral_transactions.referrer_code = ?", *req.ReferrerCode)
	}
	if req.ReferredCustomerID != nil {
		query = query.Where("referral_transactions.referred_customer_id = ?", *req.ReferredCustomerID)
	}
	if req.ReferredCustomerReferenceID != nil {
		query = query.Where("referral_transactions.referred_customer_reference_id = ?", *req.ReferredCustomerReferenceID)
	}
	if req.ReferralLevel != nil {
		query = query.Where("referral_transactions.referral_level = ?", *req.ReferralLevel)
	}
	if req.InvoiceStatus != nil {
		query = query.Where("referral_transactions.invoice_status = ?", *req.InvoiceStatus)
	}
	if req.EmailSent != nil {
		query = query.Where("referral_transactions.email_sent = ?", *req.EmailSent)
	}
	return query
}
