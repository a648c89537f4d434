package service

import (
	"github.com/DevFolio/go-client-referral/models"
	"github.com/DevFolio/go-client-referral/request"
	"github.com/DevFolio/go-client-referral/response"
	"github.com/shopspring/decimal"
)

// CustomerService handles customer CRUD and orchestrates referral crediting
// on create and update.
type CustomerService interface {
	CreateCustomer(req request.CreateCustomerRequest) (*models.Customer, error)
	GetCustomers(req request.GetCustomersRequest) ([]models.Customer, int64, error)
	GetTotalCustomers(req request.GetCustomersRequest) (int64, error)
	UpdateCustomer(id uint, req request.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(id uint) error
}

// ReferralService applies one referral against the referrer identified by
// code. An unknown code is a no-op result, not an error.
type ReferralService interface {
	ProcessReferral(code string, price decimal.Decimal, referredCustomerID uint, discountsEnabled bool) (*response.ReferralProcessResult, error)
}

// TransactionService queries the referral ledger and performs the two allowed
// status transitions.
type TransactionService interface {
	GetTransactions(req request.GetTransactionsRequest) ([]models.ReferralTransaction, int64, error)
	GetTotalTransactions(req request.GetTransactionsRequest) (int64, error)
	GetTotalEarnings(req request.GetTransactionsRequest) (decimal.Decimal, error)
	MarkInvoiceSent(id uint) (*models.ReferralTransaction, error)
	MarkEmailSent(id uint) (*models.ReferralTransaction, error)
}

type ProjectService interface {
	CreateProject(req request.CreateProjectRequest) (*models.Project, error)
	GetProjects(req request.GetProjectsRequest) ([]models.Project, int64, error)
	UpdateProject(id uint, req request.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(id uint) error
}

// SettingsService persists the discounts feature flag. The flag is read once
// per use-case invocation and passed down explicitly.
type SettingsService interface {
	GetDiscountsEnabled() (bool, error)
	SetDiscountsEnabled(enabled bool) error
}

type AggregatorService interface {
	GetCustomerStats(req request.GetCustomersRequest) ([]response.CustomerStats, int64, error)
}

// Notifier delivers referral notifications. The engine never sends email
// itself; embedders plug in their own delivery.
type Notifier interface {
	Notify(n response.ReferralNotification) error
}

type Worker interface {
	SetNotifier(n Notifier)
	ProcessPendingNotifications() error
}
