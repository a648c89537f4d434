package go_client_referral

import (
	db2 "github.com/DevFolio/go-client-referral/internal/db"
	"github.com/DevFolio/go-client-referral/internal/serviceimpl"
	"github.com/DevFolio/go-client-referral/service"
	"gorm.io/gorm"
)

type ClientReferralService struct {
	Customers    service.CustomerService
	Referrals    service.ReferralService
	Transactions service.TransactionService
	Projects     service.ProjectService
	Settings     service.SettingsService
	Aggregator   service.AggregatorService
	Worker       service.Worker
}

func NewClientReferralService(db *gorm.DB) *ClientReferralService {
	db2.Migrate(db)
	return &ClientReferralService{
		Customers:    serviceimpl.NewCustomerService(db),
		Referrals:    serviceimpl.NewReferralService(db),
		Transactions: serviceimpl.NewTransactionService(db),
		Projects:     serviceimpl.NewProjectService(db),
		Settings:     serviceimpl.NewSettingsService(db),
		Aggregator:   serviceimpl.NewAggregatorService(db),
		Worker:       serviceimpl.NewNotificationWorker(db),
	}
}
