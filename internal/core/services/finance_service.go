package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
)

// FinanceService aggregates the ledger for the financial summary.
// It queries the database directly rather than going through the
// repositories; the summary is pure reporting.
type FinanceService struct {
	db *gorm.DB
}

// NewFinanceService creates a new finance service
func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{db: db}
}

// CategoryTotal is one row of the per-category breakdown
type CategoryTotal struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Total    float64 `json:"total"`
}

// Summary is the financial summary payload
type Summary struct {
	TotalIncome  float64         `json:"total_income"`
	TotalExpense float64         `json:"total_expense"`
	Net          float64         `json:"net"`
	ByCategory   []CategoryTotal `json:"by_category"`
}

// GetSummary aggregates a tenant's ledger, optionally over a date range
func (s *FinanceService) GetSummary(ctx context.Context, companyID uint, from, to *time.Time) (*Summary, error) {
	summary := &Summary{ByCategory: []CategoryTotal{}}

	type typeTotal struct {
		Type  string
		Total float64
	}
	var totals []typeTotal
	err := s.ledgerQuery(ctx, companyID, from, to).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	for _, t := range totals {
		switch t.Type {
		case models.TxTypeIncome:
			summary.TotalIncome = t.Total
		case models.TxTypeExpense:
			summary.TotalExpense = t.Total
		}
	}
	summary.Net = summary.TotalIncome - summary.TotalExpense

	err = s.ledgerQuery(ctx, companyID, from, to).
		Select("category, type, COALESCE(SUM(amount), 0) AS total").
		Group("category, type").
		Order("total DESC").
		Scan(&summary.ByCategory).Error
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// ledgerQuery builds a fresh tenant-scoped ledger query
func (s *FinanceService) ledgerQuery(ctx context.Context, companyID uint, from, to *time.Time) *gorm.DB {
	query := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("company_id = ?", companyID)
	if from != nil {
		query = query.Where("date >= ?", from)
	}
	if to != nil {
		query = query.Where("date <= ?", to)
	}
	return query
}
