package serviceimpl

import (
	"errors"
	"fmt"
	"log"

	"github.com/DevFolio/go-client-referral/models"
	"github.com/DevFolio/go-client-referral/response"
	"github.com/DevFolio/go-client-referral/service"
	"gorm.io/gorm"
)

type notificationWorker struct {
	DB       *gorm.DB
	Notifier service.Notifier
}

var _ service.Worker = &notificationWorker{}

func NewNotificationWorker(db *gorm.DB) *notificationWorker {
	return &notificationWorker{DB: db}
}

func (w *notificationWorker) SetNotifier(n service.Notifier) {
	w.Notifier = n
}

// ProcessPendingNotifications hands every un-notified ledger entry to the
// configured notifier and marks it as sent on success. Per-entry failures
// are logged and processing continues with the remaining entries.
func (w *notificationWorker) ProcessPendingNotifications() error {
	if w.Notifier == nil {
		return errors.New("no notifier configured")
	}

	var pending []models.ReferralTransaction
	if err := w.DB.Where("email_sent = ?", false).Find(&pending).Error; err != nil {
		return fmt.Errorf("failed to fetch pending referral transactions: %w", err)
	}

	for _, txn := range pending {
		err := w.DB.Transaction(func(tx *gorm.DB) error {
			var referrer models.Customer
			if err := tx.Where("referral_code = ?", txn.ReferrerCode).First(&referrer).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("referrer not found for code %s", txn.ReferrerCode)
				}
				return fmt.Errorf("failed to fetch referrer for code %s: %w", txn.ReferrerCode, err)
			}

			notification := response.ReferralNotification{
				TransactionID:   txn.ID,
				ReferrerCode:    txn.ReferrerCode,
				ReferrerEmail:   referrer.Email,
				ReferrerName:    referrer.FirstName + " " + referrer.LastName,
				DiscountRate:    txn.DiscountRate,
				OriginalPrice:   txn.OriginalPrice,
				DiscountedPrice: txn.FinalPrice,
				ReferralLevel:   txn.ReferralLevel,
			}

			if err := w.Notifier.Notify(notification); err != nil {
				return fmt.Errorf("notifier failed for transaction %d: %w", txn.ID, err)
			}

			return tx.Model(&models.ReferralTransaction{}).
				Where("id = ?", txn.ID).
				Update("email_sent", true).Error
		})
		if err != nil {
			log.Printf("Error notifying referral transaction %d: %v", txn.ID, err)
		}
	}

	return nil
}
