package serviceimpl

import (
	"fmt"
	"github.com/DevFolio/go-client-referral/request"
	"github.com/DevFolio/go-client-referral/response"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type aggregatorService struct {
	DB *gorm.DB
}

func NewAggregatorService(db *gorm.DB) *aggregatorService {
	return &aggregatorService{DB: db}
}

// GetCustomerStats reconciles each customer's referral activity against the
// transaction ledger: credited referrals are counted from ledger entries and
// earnings are summed from the per-entry price snapshots.
func (s *aggregatorService) GetCustomerStats(req request.GetCustomersRequest) ([]response.CustomerStats, int64, error) {
	var result []response.CustomerStats
	var totalCount int64

	query := s.DB.Table("customers").
		Select(`
			customers.id AS id,
			customers.reference_id AS reference_id,
			customers.first_name AS first_name,
			customers.last_name AS last_name,
			customers.referral_code AS referral_code,
			COUNT(rt.id) AS referral_count,
			COALESCE(CAST(SUM(rt.original_price - rt.final_price) AS TEXT), '0') AS total_earned,
			CASE
				WHEN customers.reference IS NOT NULL AND customers.reference <> ''
				THEN TRUE
				ELSE FALSE
			END AS is_referred,
			customers.created_at AS created_at,
			customers.updated_at AS updated_at
		`).
		Joins(`
			LEFT JOIN referral_transactions rt ON rt.referrer_code = customers.referral_code AND rt.deleted_at IS NULL
		`).
		Where("customers.deleted_at IS NULL")

	query = query.Group(`
		customers.id, customers.reference_id, customers.first_name, customers.last_name,
		customers.referral_code, customers.reference, customers.created_at, customers.updated_at
	`)

	query = request.ApplyGetCustomersRequest(req, query)

	countQuery := s.DB.Table("(?) AS subquery", query).Select("COUNT(*)")
	if err := countQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customer stats: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	rows, err := query.Rows()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch customer stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stats response.CustomerStats
		var totalEarnedStr string

		err := rows.Scan(
			&stats.ID, &stats.ReferenceID, &stats.FirstName, &stats.LastName, &stats.ReferralCode,
			&stats.ReferralCount, &totalEarnedStr, &stats.IsReferred,
			&stats.CreatedAt, &stats.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer stats: %w", err)
		}

		totalEarned, convErr := decimal.NewFromString(totalEarnedStr)
		if convErr != nil {
			return nil, 0, fmt.Errorf("failed to parse total_earned: %w", convErr)
		}
		stats.TotalEarned = totalEarned

		result = append(result, stats)
	}

	return result, totalCount, nil
}
