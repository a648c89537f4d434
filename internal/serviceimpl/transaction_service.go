package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/DevFolio/go-client-referral/models"
	"github.com/DevFolio/go-client-referral/request"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transactionService struct {
	DB *gorm.DB
}

func NewTransactionService(db *gorm.DB) *transactionService {
	return &transactionService{DB: db}
}

// GetTransactions fetches ledger entries based on the provided request.
func (s *transactionService) GetTransactions(req request.GetTransactionsRequest) ([]models.ReferralTransaction, int64, error) {
	var transactions []models.ReferralTransaction
	var count int64

	query := s.DB.Model(&models.ReferralTransaction{})
	query = request.ApplyGetTransactionsRequest(req, query)

	countQuery := query
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count referral transactions: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Preload("ReferredCustomer").Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch referral transactions: %w", err)
	}

	return transactions, count, nil
}

func (s *transactionService) GetTotalTransactions(req request.GetTransactionsRequest) (int64, error) {
	var count int64

	query := s.DB.Model(&models.ReferralTransaction{})
	query = request.ApplyGetTransactionsRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count referral transactions: %w", err)
	}

	return count, nil
}

// GetTotalEarnings sums the discount value captured by the matching ledger
// entries, each entry contributing its original minus final price.
func (s *transactionService) GetTotalEarnings(req request.GetTransactionsRequest) (decimal.Decimal, error) {
	var total decimal.Decimal

	query := s.DB.Model(&models.ReferralTransaction{}).
		Select("COALESCE(SUM(original_price - final_price), 0)")
	query = request.ApplyGetTransactionsRequest(req, query)

	if err := query.Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate total earnings: %w", err)
	}

	return total, nil
}

// MarkInvoiceSent transitions a ledger entry from pending to sent.
func (s *transactionService) MarkInvoiceSent(id uint) (*models.ReferralTransaction, error) {
	var txn models.ReferralTransaction

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txn, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("referral transaction %d not found", id)
			}
			return fmt.Errorf("failed to fetch referral transaction %d: %w", id, err)
		}

		if txn.InvoiceStatus == "sent" {
			return fmt.Errorf("invoice for referral transaction %d is already sent", id)
		}

		txn.InvoiceStatus = "sent"
		if err := tx.Save(&txn).Error; err != nil {
			return fmt.Errorf("failed to update invoice status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

func (s *transactionService) MarkEmailSent(id uint) (*models.ReferralTransaction, error) {
	var txn models.ReferralTransaction

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txn, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("referral transaction %d not found", id)
			}
			return fmt.Errorf("failed to fetch referral transaction %d: %w", id, err)
		}

		if txn.EmailSent {
			return nil
		}

		txn.EmailSent = true
		if err := tx.Save(&txn).Error; err != nil {
			return fmt.Errorf("failed to update email sent flag: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &txn, nil
}
