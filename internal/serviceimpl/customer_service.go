package serviceimpl

import (
	"errors"
	"fmt"
	"log"
	"net/mail"

	"github.com/DevFolio/go-client-referral/models"
	"github.com/DevFolio/go-client-referral/request"
	"github.com/DevFolio/go-client-referral/service"
	"github.com/DevFolio/go-client-referral/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	referralCodeLength      = 7
	referralCodeMaxAttempts = 5
)

type customerService struct {
	DB        *gorm.DB
	referrals *referralService
	settings  *settingsService
}

func NewCustomerService(db *gorm.DB) *customerService {
	return &customerService{
		DB:        db,
		referrals: NewReferralService(db),
		settings:  NewSettingsService(db),
	}
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	return nil
}

// emailConflict returns an EmailConflictError naming the existing owner when
// email already belongs to a different customer.
func emailConflict(db *gorm.DB, email string, excludeID uint) error {
	var owner models.Customer
	err := db.Where("email = ? AND id <> ?", email, excludeID).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return &service.EmailConflictError{
		Email:          email,
		OwnerFirstName: owner.FirstName,
		OwnerLastName:  owner.LastName,
	}
}

// generateUniqueReferralCode retries generation against a uniqueness check.
// The unique index on referral_code is the backstop for the remaining race
// between concurrent signups.
func generateUniqueReferralCode(db *gorm.DB) (string, error) {
	for attempt := 0; attempt < referralCodeMaxAttempts; attempt++ {
		code, err := utils.CreateReferralCode(referralCodeLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate referral code: %w", err)
		}
		var count int64
		if err := db.Model(&models.Customer{}).Where("referral_code = ?", code).Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check referral code uniqueness: %w", err)
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique referral code after %d attempts", referralCodeMaxAttempts)
}

// CreateCustomer validates and persists a new customer, then applies the
// submitted referral code when the eligibility policy allows it. Referral
// processing failures are logged and never fail the signup itself.
func (s *customerService) CreateCustomer(req request.CreateCustomerRequest) (*models.Customer, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if req.Price != nil && !req.Price.IsPositive() {
		return nil, fmt.Errorf("price must be greater than 0")
	}
	if err := emailConflict(s.DB, req.Email, 0); err != nil {
		return nil, err
	}

	code := ""
	if req.PreferredCode != nil && *req.PreferredCode != "" {
		var count int64
		if err := s.DB.Model(&models.Customer{}).Where("referral_code = ?", *req.PreferredCode).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check referral code uniqueness: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("referral code %s is already taken", *req.PreferredCode)
		}
		code = *req.PreferredCode
	} else {
		generated, err := generateUniqueReferralCode(s.DB)
		if err != nil {
			return nil, err
		}
		code = generated
	}

	customer := &models.Customer{
		ReferenceID:   uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Company:       req.Company,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Postcode:      req.Postcode,
		Price:         req.Price,
		FinalPrice:    req.Price,
		ReferralCount: 0,
		Reference:     req.Reference,
		ReferralCode:  code,
	}

	if err := s.DB.Create(customer).Error; err != nil {
		// A concurrent signup can slip past the pre-check; the unique index
		// rejects it here, so name the owner from a re-read.
		var conflict *service.EmailConflictError
		if cErr := emailConflict(s.DB, req.Email, 0); errors.As(cErr, &conflict) {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	policy := EvaluateReferralPolicy(req.Reference, req.Price, nil)
	if policy.ShouldApply {
		s.applyReferral(policy, customer.ID)
	}

	return customer, nil
}

// applyReferral reads the discounts flag once and processes one referral.
// Errors are secondary bookkeeping failures: they are logged, and the
// primary customer operation proceeds.
func (s *customerService) applyReferral(policy PolicyResult, customerID uint) {
	enabled, err := s.settings.GetDiscountsEnabled()
	if err != nil {
		log.Printf("failed to read discounts flag, assuming enabled: %v", err)
		enabled = true
	}
	if _, err := s.referrals.ProcessReferral(policy.ReferralCode, policy.Price, customerID, enabled); err != nil {
		log.Printf("referral processing failed for code %s: %v", policy.ReferralCode, err)
	}
}

// UpdateCustomer applies a partial update. A valid, first-time reference in
// the request credits the referrer and permanently sets the customer's
// reference; the customer's own final price and earnings are then recomputed
// from the updated price and referral count.
func (s *customerService) UpdateCustomer(id uint, req request.UpdateCustomerRequest) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", id, service.ErrCustomerNotFound)
		}
		return nil, fmt.Errorf("failed to fetch customer %d: %w", id, err)
	}

	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return nil, err
		}
		if err := emailConflict(s.DB, *req.Email, customer.ID); err != nil {
			return nil, err
		}
	}
	if req.Price != nil && !req.Price.IsPositive() {
		return nil, fmt.Errorf("price must be greater than 0")
	}

	policyPrice := req.Price
	if policyPrice == nil {
		policyPrice = customer.Price
	}
	policy := EvaluateReferralPolicy(req.Reference, policyPrice, customer.Reference)
	if policy.ShouldApply {
		s.applyReferral(policy, customer.ID)
	}

	var updated *models.Customer
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the row: a concurrent referral credit against this customer
		// must not interleave with the recomputation below.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&customer, customer.ID).Error; err != nil {
			return fmt.Errorf("failed to lock customer %d: %w", customer.ID, err)
		}

		if req.FirstName != nil {
			customer.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			customer.LastName = *req.LastName
		}
		if req.Company != nil {
			customer.Company = req.Company
		}
		if req.Email != nil {
			customer.Email = *req.Email
		}
		if req.Phone != nil {
			customer.Phone = req.Phone
		}
		if req.Address != nil {
			customer.Address = req.Address
		}
		if req.City != nil {
			customer.City = req.City
		}
		if req.Postcode != nil {
			customer.Postcode = req.Postcode
		}
		if req.Price != nil {
			customer.Price = req.Price
		}
		if req.ReferralCount != nil && *req.ReferralCount >= 0 {
			customer.ReferralCount = *req.ReferralCount
		}
		if policy.ShouldApply && customer.Reference == nil {
			reference := policy.ReferralCode
			customer.Reference = &reference
		}

		if customer.Price != nil {
			finalPrice := ComputeDiscountedPrice(*customer.Price, customer.ReferralCount)
			customer.FinalPrice = &finalPrice
			customer.TotalEarnings = ComputeTotalEarnings(*customer.Price, customer.ReferralCount)
			if customer.ReferralCount > 0 {
				rate := ComputeDiscountRate(customer.ReferralCount)
				customer.DiscountRate = &rate
			}
		}

		if err := tx.Save(&customer).Error; err != nil {
			if req.Email != nil {
				var conflict *service.EmailConflictError
				if cErr := emailConflict(s.DB, *req.Email, customer.ID); errors.As(cErr, &conflict) {
					return conflict
				}
			}
			return fmt.Errorf("failed to save customer updates: %w", err)
		}

		updated = &customer
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *customerService) GetCustomers(req request.GetCustomersRequest) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var count int64

	query := s.DB.Model(&models.Customer{})
	query = request.ApplyGetCustomersRequest(req, query)

	countQuery := query
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch customers: %w", err)
	}

	return customers, count, nil
}

func (s *customerService) GetTotalCustomers(req request.GetCustomersRequest) (int64, error) {
	var count int64

	query := s.DB.Model(&models.Customer{})
	query = request.ApplyGetCustomersRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}

func (s *customerService) DeleteCustomer(id uint) error {
	result := s.DB.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", id, service.ErrCustomerNotFound)
	}
	return nil
}
