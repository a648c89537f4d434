package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"time"
)

type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"index" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Customer is both a client record and a potential referrer. ReferralCode is
// the code this customer hands out; Reference is the code this customer used
// at signup and is set at most once.
type Customer struct {
	BaseModel
	ReferenceID string  `gorm:"size:100;not null;uniqueIndex" json:"referenceID"`
	FirstName   string  `gorm:"size:100;not null;index" json:"firstName"`
	LastName    string  `gorm:"size:100;not null;index" json:"lastName"`
	Company     *string `gorm:"size:255" json:"company"`
	Email       string  `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone       *string `gorm:"size:50" json:"phone"`
	Address     *string `gorm:"size:255" json:"address"`
	City        *string `gorm:"size:100;index" json:"city"`
	Postcode    *string `gorm:"size:20" json:"postcode"`

	Price         *decimal.Decimal `gorm:"type:decimal(38,18)" json:"price"`      // original quoted price
	FinalPrice    *decimal.Decimal `gorm:"type:decimal(38,18)" json:"finalPrice"` // price after staged discounts
	DiscountRate  *int64           `gorm:"" json:"discountRate"`                  // percentage, nil until first referral credit
	ReferralCount int64            `gorm:"not null;default:0;index" json:"referralCount"`
	TotalEarnings decimal.Decimal  `gorm:"type:decimal(38,18);not null;default:0" json:"totalEarnings"`
	ReferralCode  string           `gorm:"size:50;not null;uniqueIndex" json:"referralCode"`
	Reference     *string          `gorm:"size:50;index" json:"reference"`
}

func (Customer) TableName() string {
	return "customers"
}

// ReferralTransaction is one ledger entry per successful referral
// application. It is an immutable snapshot of the discount computed at that
// moment; only InvoiceStatus and EmailSent transition afterwards.
type ReferralTransaction struct {
	BaseModel
	ReferrerCode                string          `gorm:"size:50;not null;index" json:"referrerCode"`
	ReferredCustomerID          uint            `gorm:"not null;index" json:"referredCustomerID"`
	ReferredCustomerReferenceID string          `gorm:"size:100;not null;index" json:"referredCustomerReferenceID"`
	DiscountRate                int64           `gorm:"not null" json:"discountRate"`
	OriginalPrice               decimal.Decimal `gorm:"type:decimal(38,18);not null" json:"originalPrice"`
	FinalPrice                  decimal.Decimal `gorm:"type:decimal(38,18);not null" json:"finalPrice"`
	ReferralLevel               int64           `gorm:"not null;index" json:"referralLevel"`
	InvoiceStatus               string          `gorm:"size:50;default:'pending';not null;index" json:"invoiceStatus"`
	EmailSent                   bool            `gorm:"default:false;not null;index" json:"emailSent"`

	ReferredCustomer *Customer `gorm:"foreignKey:ReferredCustomerID;references:ID" json:"referredCustomer,omitempty"`
}

func (ReferralTransaction) TableName() string {
	return "referral_transactions"
}

type Setting struct {
	BaseModel
	Key   string `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

// Project is a portfolio entry for the marketing site.
type Project struct {
	BaseModel
	Title       string         `gorm:"size:255;not null;index" json:"title"`
	Slug        string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Summary     *string        `gorm:"size:500" json:"summary"`
	Description *string        `gorm:"type:text" json:"description"`
	Tags        datatypes.JSON `gorm:"" json:"tags"`
	CoverURL    *string        `gorm:"size:500" json:"coverURL"`
	LiveURL     *string        `gorm:"size:500" json:"liveURL"`
	RepoURL     *string        `gorm:"size:500" json:"repoURL"`
	Published   bool           `gorm:"default:false;index" json:"published"`
	SortOrder   int            `gorm:"default:0;index" json:"sortOrder"`
}

func (Project) TableName() string {
	return "projects"
}
